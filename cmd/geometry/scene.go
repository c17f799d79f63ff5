package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geometry"
	"github.com/osuushi/geometry/dbg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// A scene is a set of named objects. Ordinates are left undecoded so that
// anything a Point accepts (integers, floats, numeric strings) can be used.
//
//	[[points]]
//	name = "p"
//	at = [0.5, 0.5]
//
//	[[segments]]
//	a = [0, 0]
//	b = [1, 1]
type scene struct {
	Points    []scenePoint    `toml:"points"`
	Segments  []scenePair     `toml:"segments"`
	Lines     []scenePair     `toml:"lines"`
	Rays      []scenePair     `toml:"rays"`
	Triangles []sceneTriangle `toml:"triangles"`
	Polygons  []scenePolygon  `toml:"polygons"`
}

type scenePoint struct {
	Name string      `toml:"name"`
	At   interface{} `toml:"at"`
}

type scenePair struct {
	Name string      `toml:"name"`
	A    interface{} `toml:"a"`
	B    interface{} `toml:"b"`
}

type sceneTriangle struct {
	Name string      `toml:"name"`
	A    interface{} `toml:"a"`
	B    interface{} `toml:"b"`
	C    interface{} `toml:"c"`
}

type scenePolygon struct {
	Name   string        `toml:"name"`
	Points []interface{} `toml:"points"`
}

func loadScene(path string) (scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return scene{}, err
	}
	defer f.Close()
	s, err := decodeScene(f)
	return s, errors.Wrapf(err, "scene %s", path)
}

func decodeScene(r io.Reader) (scene, error) {
	var s scene
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return scene{}, err
	}
	for _, key := range md.Undecoded() {
		log.WithField("key", key.String()).Warn("ignoring unknown scene key")
	}
	return s, nil
}

func objectName(name, kind string, i int) string {
	if name != "" {
		return name
	}
	return dbg.Name(fmt.Sprintf("%s %d", kind, i))
}

type namedPoint struct {
	name  string
	point geometry.Point
}

type namedLine struct {
	name string
	kind string
	line geometry.LineLike
}

type namedTriangle struct {
	name     string
	triangle geometry.Triangle
}

type namedPolygon struct {
	name    string
	polygon geometry.Polygon
}

type builtScene struct {
	points    []namedPoint
	lines     []namedLine
	triangles []namedTriangle
	polygons  []namedPolygon
}

func (s scene) build() (builtScene, error) {
	var b builtScene
	for i, p := range s.Points {
		name := objectName(p.Name, "point", i)
		point, err := geometry.NewPoint(p.At)
		if err != nil {
			return b, errors.Wrapf(err, "point %s", name)
		}
		b.points = append(b.points, namedPoint{name, point})
	}

	pairs := []struct {
		kind  string
		pairs []scenePair
	}{
		{"segment", s.Segments},
		{"line", s.Lines},
		{"ray", s.Rays},
	}
	for _, group := range pairs {
		for i, p := range group.pairs {
			name := objectName(p.Name, group.kind, i)
			a, err := geometry.NewPoint(p.A)
			if err != nil {
				return b, errors.Wrapf(err, "%s %s", group.kind, name)
			}
			c, err := geometry.NewPoint(p.B)
			if err != nil {
				return b, errors.Wrapf(err, "%s %s", group.kind, name)
			}
			line, err := newLineLike(group.kind, a, c)
			if err != nil {
				return b, err
			}
			b.lines = append(b.lines, namedLine{name, group.kind, line})
		}
	}

	for i, t := range s.Triangles {
		name := objectName(t.Name, "triangle", i)
		tri, err := geometry.NewTriangle(t.A, t.B, t.C)
		if err != nil {
			return b, errors.Wrapf(err, "triangle %s", name)
		}
		b.triangles = append(b.triangles, namedTriangle{name, tri})
	}

	for i, p := range s.Polygons {
		name := objectName(p.Name, "polygon", i)
		poly, err := geometry.NewPolygon(p.Points...)
		if err != nil {
			return b, errors.Wrapf(err, "polygon %s", name)
		}
		b.polygons = append(b.polygons, namedPolygon{name, poly})
	}
	return b, nil
}

func formatLength(length float64, err error) string {
	if errors.Is(err, geometry.ErrInfiniteLength) {
		return fmt.Sprint(math.Inf(1))
	}
	return fmt.Sprint(length)
}

func classify(t geometry.Triangle) string {
	if t.IsDegenerate() {
		return "degenerate"
	}
	var kinds []string
	switch {
	case t.IsEquilateral():
		kinds = append(kinds, "equilateral")
	case t.IsIsosceles():
		kinds = append(kinds, "isosceles")
	default:
		kinds = append(kinds, "scalene")
	}
	switch {
	case t.IsRight():
		kinds = append(kinds, "right")
	case t.IsObtuse():
		kinds = append(kinds, "obtuse")
	default:
		kinds = append(kinds, "acute")
	}
	return strings.Join(kinds, " ")
}

func runScene(w io.Writer, au aurora.Aurora, s scene, dump bool) error {
	if dump {
		fmt.Fprintf(w, "%# v\n", pretty.Formatter(s))
	}

	b, err := s.build()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"points":    len(b.points),
		"lines":     len(b.lines),
		"triangles": len(b.triangles),
		"polygons":  len(b.polygons),
	}).Info("loaded scene")

	for _, p := range b.points {
		fmt.Fprintf(w, "point %s: %v\n", au.Cyan(p.name), p.point)
		for _, t := range b.triangles {
			if t.triangle.Contains(p.point) {
				fmt.Fprintf(w, "  inside triangle %s\n", t.name)
			}
		}
		for _, poly := range b.polygons {
			if poly.polygon.Contains(p.point) {
				fmt.Fprintf(w, "  inside polygon %s\n", poly.name)
			}
		}
		for _, l := range b.lines {
			if l.line.Contains(p.point) {
				fmt.Fprintf(w, "  on %s %s\n", l.kind, l.name)
			}
		}
	}

	for _, l := range b.lines {
		fmt.Fprintf(w, "%s %s: %v length=%s\n", l.kind, au.Cyan(l.name), l.line, formatLength(l.line.Length()))
	}
	for i, l := range b.lines {
		for _, other := range b.lines[i+1:] {
			p, err := geometry.Intersection(l.line, other.line)
			if err != nil {
				log.WithError(err).WithFields(logrus.Fields{"first": l.name, "next": other.name}).Debug("no intersection")
				continue
			}
			fmt.Fprintf(w, "%s × %s: %v\n", l.name, other.name, p)
		}
	}

	for _, t := range b.triangles {
		fmt.Fprintf(w, "triangle %s: %v area=%g perimeter=%g %s %s\n",
			au.Cyan(t.name), t.triangle, t.triangle.Area(), t.triangle.Perimeter(),
			classify(t.triangle), orientationName(au, t.triangle.Orientation()))
	}
	for i, ti := range b.triangles {
		for _, tj := range b.triangles[i+1:] {
			if ti.triangle.DoesIntersect(tj.triangle) {
				fmt.Fprintf(w, "%s overlaps %s\n", ti.name, tj.name)
			}
		}
	}

	for _, poly := range b.polygons {
		perimeter, err := poly.polygon.Perimeter()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "polygon %s: points=%d area=%g perimeter=%g centroid=(%v)\n",
			au.Cyan(poly.name), len(poly.polygon.Points), poly.polygon.Area(), perimeter, poly.polygon.Centroid())
	}
	return nil
}
