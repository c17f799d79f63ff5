// Command geometry runs orientation, intersection and polygon queries from the
// command line.
//
// Points are given as "x,y" or "x,y,z". Polygons for the polygon command are
// read from stdin as newline separated points in the form "x y", with each
// polygon separated by an extra newline.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geometry"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app      = kingpin.New("geometry", "Exact Euclidean geometry queries.")
	logLevel = app.Flag("log-level", "Logging level.").Default("info").Enum("debug", "info", "warn", "error")
	noColor  = app.Flag("no-color", "Disable coloured output.").Bool()

	ccwCmd  = app.Command("ccw", "Orientation of three points.")
	ccwA    = pointArg(ccwCmd.Arg("a", "First point.").Required())
	ccwB    = pointArg(ccwCmd.Arg("b", "Second point.").Required())
	ccwC    = pointArg(ccwCmd.Arg("c", "Third point.").Required())
	ccwAxis = ccwCmd.Flag("axis", "Normal of the projection plane.").Default("z").Enum("x", "y", "z")

	intersectCmd  = app.Command("intersect", "Intersection of AB and CD.")
	intersectA    = pointArg(intersectCmd.Arg("a", "First point of AB.").Required())
	intersectB    = pointArg(intersectCmd.Arg("b", "Second point of AB.").Required())
	intersectC    = pointArg(intersectCmd.Arg("c", "First point of CD.").Required())
	intersectD    = pointArg(intersectCmd.Arg("d", "Second point of CD.").Required())
	intersectKind = intersectCmd.Flag("kind", "Kind of both lines.").Default("segment").Enum("segment", "line", "ray")

	distanceCmd = app.Command("distance", "Distance between two points.")
	distanceA   = pointArg(distanceCmd.Arg("a", "First point.").Required())
	distanceB   = pointArg(distanceCmd.Arg("b", "Second point.").Required())

	polygonCmd = app.Command("polygon", "Report on polygons read from stdin.")

	sceneCmd  = app.Command("scene", "Report on the objects in a TOML scene.")
	sceneFile = sceneCmd.Arg("file", "Scene file.").Required().ExistingFile()
	sceneDump = sceneCmd.Flag("dump", "Print the decoded scene.").Bool()
)

var log = logrus.New()

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		kingpin.Fatalf("%v", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: *noColor,
		FullTimestamp: true,
	})
	au := aurora.NewAurora(!*noColor)

	switch command {
	case ccwCmd.FullCommand():
		err = runCcw(os.Stdout, au, *ccwA, *ccwB, *ccwC, *ccwAxis)
	case intersectCmd.FullCommand():
		err = runIntersect(os.Stdout, au, *intersectKind, *intersectA, *intersectB, *intersectC, *intersectD)
	case distanceCmd.FullCommand():
		err = runDistance(os.Stdout, *distanceA, *distanceB)
	case polygonCmd.FullCommand():
		err = runPolygon(os.Stdin, os.Stdout, au)
	case sceneCmd.FullCommand():
		var s scene
		s, err = loadScene(*sceneFile)
		if err == nil {
			err = runScene(os.Stdout, au, s, *sceneDump)
		}
	}
	if err != nil {
		log.WithError(err).WithField("command", command).Fatal("command failed")
	}
}

// pointValue lets kingpin parse "x,y[,z]" arguments straight into a Point.
type pointValue geometry.Point

func (v *pointValue) Set(s string) error {
	p, err := parsePoint(strings.Split(s, ","))
	if err != nil {
		return err
	}
	*v = pointValue(p)
	return nil
}

func (v *pointValue) String() string {
	return geometry.Point(*v).String()
}

func pointArg(s kingpin.Settings) *geometry.Point {
	p := new(geometry.Point)
	s.SetValue((*pointValue)(p))
	return p
}

func parsePoint(parts []string) (geometry.Point, error) {
	if len(parts) < 2 || len(parts) > 3 {
		return geometry.Point{}, errors.Errorf("expected 2 or 3 ordinates, got %d", len(parts))
	}
	return geometry.NewPoint(parts)
}

func orientationName(au aurora.Aurora, o geometry.Orientation) string {
	switch o {
	case geometry.CounterClockwise:
		return au.Green(o).String()
	case geometry.Clockwise:
		return au.Red(o).String()
	}
	return au.Yellow(o).String()
}

func runCcw(w io.Writer, au aurora.Aurora, a, b, c geometry.Point, axisName string) error {
	axis, err := geometry.ParseAxis(axisName)
	if err != nil {
		return err
	}
	ccw, err := a.CcwAxis(b, c, axis)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"a": a, "b": b, "c": c, "axis": axis}).Debug("computed ccw")
	fmt.Fprintf(w, "%g %s\n", ccw, orientationName(au, geometry.OrientationOf(ccw)))
	return nil
}

func newLineLike(kind string, a, b geometry.Point) (geometry.LineLike, error) {
	switch kind {
	case "line":
		l, err := geometry.NewLine(a, b)
		return l, err
	case "ray":
		r, err := geometry.NewRay(a, b)
		return r, err
	case "segment":
		s, err := geometry.NewSegment(a, b)
		return s, err
	}
	return nil, errors.Errorf("unknown line kind %q", kind)
}

func runIntersect(w io.Writer, au aurora.Aurora, kind string, a, b, c, d geometry.Point) error {
	first, err := newLineLike(kind, a, b)
	if err != nil {
		return err
	}
	next, err := newLineLike(kind, c, d)
	if err != nil {
		return err
	}

	p, err := geometry.Intersection(first, next)
	switch {
	case err == nil:
		fmt.Fprintln(w, p)
	case errors.Is(err, geometry.ErrParallelOrCoincidentLines):
		log.WithError(err).Debug("no intersection")
		fmt.Fprintln(w, au.Yellow(err.Error()))
	default:
		return err
	}
	return nil
}

func runDistance(w io.Writer, a, b geometry.Point) error {
	fmt.Fprintf(w, "distance=%g squared=%g\n", a.Distance(b), a.DistanceSquared(b))
	return nil
}

func runPolygon(in io.Reader, w io.Writer, au aurora.Aurora) error {
	polygons, err := readPolygons(in)
	if err != nil {
		return err
	}
	log.WithField("count", len(polygons)).Info("read polygons")

	for i, poly := range polygons {
		perimeter, err := poly.Perimeter()
		if err != nil {
			return err
		}
		orientation := geometry.Collinear
		if poly.IsCCW() {
			orientation = geometry.CounterClockwise
		} else if poly.IsCW() {
			orientation = geometry.Clockwise
		}
		fmt.Fprintf(w, "polygon %d: points=%d area=%g perimeter=%g centroid=(%v) %s\n",
			i, len(poly.Points), poly.Area(), perimeter, poly.Centroid(), orientationName(au, orientation))

		if orientation != geometry.CounterClockwise {
			continue
		}
		triangles, err := poly.TriangulateMonotone()
		if err != nil {
			log.WithError(err).WithField("polygon", i).Debug("not triangulated")
			continue
		}
		fmt.Fprintf(w, "  triangles=%d\n", len(triangles))
	}
	return nil
}

func readPolygons(in io.Reader) ([]geometry.Polygon, error) {
	polygons := []geometry.Polygon{}
	scanner := bufio.NewScanner(in)
	points := []geometry.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// An empty line ends the current polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, geometry.Polygon{Points: points})
				points = []geometry.Point{}
			}
			continue
		}

		point, err := parsePoint(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, geometry.Polygon{Points: points})
	}
	return polygons, nil
}
