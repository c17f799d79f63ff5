package advanced

import (
	"embed"
	"log"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It finds the single polygon in the file and
// converts it into a CCW Polygon. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	// Point pairs go through the same coercion as everything else, so "1,2"
	// becomes a sequence of two numeric strings.
	var values []interface{}
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		pair := strings.Split(pointString, ",")
		if len(pair) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		values = append(values, pair)
	}
	result, err := NewPolygon(values...)
	if err != nil {
		log.Fatalf("Invalid points in fixture %q: %v", name, err)
	}

	if result.IsCW() {
		result = result.Reverse()
	}
	return result
}
