package main

import (
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/internal"
	"github.com/osuushi/delaunay/internal/pointio"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Triangulate a point set and print, verify or render the result.
//
// Points are read from --in (stdin by default) as newline separated "x y"
// pairs, a YAML list of {x, y} mappings, or the circles of an SVG file.
// Alternatively, --random generates points uniformly in a disk.
var (
	app = kingpin.New("delaunay", "Delaunay triangulation of a point set.")

	in     = app.Flag("in", "Read points from this file instead of stdin.").Short('i').ExistingFile()
	format = app.Flag("format", "Input format.").Short('f').Default("text").Enum(pointio.Formats...)

	random = app.Flag("random", "Generate this many random points instead of reading them.").Short('n').Int()
	radius = app.Flag("radius", "Radius of the disk for random points.").Default("10").Float64()
	seed   = app.Flag("seed", "Seed for random points.").Default("1").Int64()

	out  = app.Flag("out", "Write triangles to this file instead of stdout.").Short('o').String()
	emit = app.Flag("emit", "Output format for triangles.").Short('e').Default("text").Enum("text", "svg", "pretty", "none")

	png        = app.Flag("png", "Render the triangulation to this PNG file.").String()
	scale      = app.Flag("scale", "Pixels per unit when rendering.").Default("10").Float64()
	circles    = app.Flag("circles", "Draw circumcircles when rendering.").Bool()
	showInTerm = app.Flag("imgcat", "Print the rendered image in the terminal (iTerm only).").Bool()
	check      = app.Flag("check", "Verify the Delaunay property and exit 1 on failure.").Bool()
	verbose    = app.Flag("verbose", "Log every triangle.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	points, err := loadPoints()
	if err != nil {
		log.Fatalf("Could not load points: %v", err)
	}
	log.Printf("Read %v points", aurora.Bold(len(points)))

	triangles, err := delaunay.Triangulate(points)
	if err != nil {
		log.Fatalf("Could not triangulate: %v", err)
	}
	log.Printf("Produced %v triangles", aurora.Bold(len(triangles)))
	if *verbose {
		for _, t := range triangles {
			log.Println(t)
		}
	}

	if err := writeTriangles(points, triangles); err != nil {
		log.Fatalf("Could not write triangles: %v", err)
	}

	var violations []internal.Triangle
	ok := true
	if *check {
		violations, ok = verify(points, triangles)
	}

	if *png != "" {
		c := internal.Draw(points, triangles, internal.DrawOptions{
			Scale:         *scale,
			Circumcircles: *circles,
			Highlight:     violations,
		})
		if err := c.SavePNG(*png); err != nil {
			log.Fatalf("Could not save %s: %v", *png, err)
		}
		if *showInTerm {
			imgcat.CatFile(*png, os.Stdout)
		}
	}

	if !ok {
		os.Exit(1)
	}
}

func loadPoints() ([]internal.Point, error) {
	if *random > 0 {
		rng := rand.New(rand.NewSource(*seed))
		return internal.RandomPointsInDisk(rng, *random, *radius), nil
	}

	var r io.Reader = os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	}
	return pointio.Read(*format, r)
}

func writeTriangles(points []internal.Point, triangles []internal.Triangle) error {
	if *emit == "none" {
		return nil
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer f.Close()
		w = f
	}

	switch *emit {
	case "svg":
		return pointio.WriteSVG(w, points, triangles)
	case "pretty":
		_, err := pretty.Fprintf(w, "%# v\n", triangles)
		return errors.Wrap(err, "writing triangles")
	}
	return pointio.WriteText(w, triangles)
}

// Check the Delaunay property and vertex closure, logging what's wrong.
// Returns every triangle whose circumcircle contains an input point.
func verify(points []internal.Point, triangles []internal.Triangle) ([]internal.Triangle, bool) {
	ok := true
	var bad []internal.Triangle
	for _, t := range triangles {
		if violation, found := internal.FindViolation(points, []internal.Triangle{t}); found {
			log.Println(aurora.Red("Violation:"), violation)
			bad = append(bad, t)
			ok = false
		}
	}
	if v, found := internal.FindForeignVertex(points, triangles); found {
		log.Println(aurora.Red("Foreign vertex:"), v)
		ok = false
	}
	if ok {
		log.Println(aurora.Green("Triangulation is Delaunay"))
	}
	return bad, ok
}
