package pointio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/delaunay/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Point = internal.Point
type Triangle = internal.Triangle

// Formats accepted by Read
var Formats = []string{"text", "yaml", "svg"}

func Read(format string, r io.Reader) ([]Point, error) {
	switch format {
	case "text":
		return ReadText(r)
	case "yaml":
		return ReadYAML(r)
	case "svg":
		return ReadSVG(r)
	}
	return nil, errors.Errorf("unknown point format %q", format)
}

// Read newline separated points in the form "x y". Commas may be used in
// place of whitespace. Blank lines and lines starting with # are skipped.
func ReadText(r io.Reader) ([]Point, error) {
	points := []Point{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (Point, error) {
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) != 2 {
		return Point{}, errors.Errorf("expected 2 coordinates, got %d in %q", len(parts), line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return Point{X: x, Y: y}, nil
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Read a YAML sequence of {x, y} mappings.
func ReadYAML(r io.Reader) ([]Point, error) {
	var raw []yamlPoint
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return []Point{}, nil
		}
		return nil, errors.Wrap(err, "decoding yaml points")
	}
	points := make([]Point, len(raw))
	for i, p := range raw {
		points[i] = Point{X: p.X, Y: p.Y}
	}
	return points, nil
}

// Read the centers of every circle in an SVG document. This is not a full
// SVG reader: transforms are ignored, and so is every element other than
// <circle>.
func ReadSVG(r io.Reader) ([]Point, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	circles := root.FindAll("circle")
	points := make([]Point, 0, len(circles))
	for _, circle := range circles {
		x, err := strconv.ParseFloat(circle.Attributes["cx"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid cx value %q", circle.Attributes["cx"])
		}
		y, err := strconv.ParseFloat(circle.Attributes["cy"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid cy value %q", circle.Attributes["cy"])
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}

// Write one triangle per line as "ax ay bx by cx cy".
func WriteText(w io.Writer, triangles []Triangle) error {
	bw := bufio.NewWriter(w)
	for _, t := range triangles {
		_, err := fmt.Fprintf(bw, "%s %s %s %s %s %s\n",
			formatFloat(t.A.X), formatFloat(t.A.Y),
			formatFloat(t.B.X), formatFloat(t.B.Y),
			formatFloat(t.C.X), formatFloat(t.C.Y),
		)
		if err != nil {
			return errors.Wrap(err, "writing triangles")
		}
	}
	return errors.Wrap(bw.Flush(), "writing triangles")
}

// Write the triangles as SVG polygons, with the input points as circles so
// that the output can be read back with ReadSVG.
func WriteSVG(w io.Writer, points []Point, triangles []Triangle) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, `<svg xmlns="http://www.w3.org/2000/svg">`)
	for _, t := range triangles {
		fmt.Fprintf(bw, `  <polygon points="%s,%s %s,%s %s,%s" fill="none" stroke="black"/>`+"\n",
			formatFloat(t.A.X), formatFloat(t.A.Y),
			formatFloat(t.B.X), formatFloat(t.B.Y),
			formatFloat(t.C.X), formatFloat(t.C.Y),
		)
	}
	for _, p := range points {
		fmt.Fprintf(bw, `  <circle cx="%s" cy="%s" r="1"/>`+"\n", formatFloat(p.X), formatFloat(p.Y))
	}
	fmt.Fprintln(bw, `</svg>`)
	return errors.Wrap(bw.Flush(), "writing svg")
}

// Shortest representation that parses back to the same float
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
