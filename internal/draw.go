package internal

import (
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the triangulation, in pixels
const drawPadding = 20

type DrawOptions struct {
	// Pixels per unit
	Scale float64
	// Outline the circumcircle of every triangle
	Circumcircles bool
	// Triangles to highlight, e.g. Delaunay violations
	Highlight []Triangle
}

// Draw the points and triangles into a new context. The context is flipped so
// that the origin is at the bottom left, like the input coordinates.
func Draw(points []Point, triangles []Triangle, opts DrawOptions) *gg.Context {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	bounds := drawBounds(points, triangles)
	width := int(scale*bounds.X.Length()) + drawPadding*2
	height := int(scale*bounds.Y.Length()) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bounds.X.Lo, -bounds.Y.Lo)

	c.SetLineWidth(1)
	for _, t := range triangles {
		traceTriangle(c, t)
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	for _, t := range opts.Highlight {
		traceTriangle(c, t)
		c.SetRGBA(1, 0, 0, 0.6)
		c.Fill()
	}

	if opts.Circumcircles {
		c.SetRGBA(1, 1, 0, 0.3)
		for _, t := range triangles {
			circle, ok := t.Circumcircle()
			if !ok {
				continue
			}
			c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius())
			c.Stroke()
		}
	}

	// Radii are in user space, so undo the scale to get pixels
	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}

	return c
}

func traceTriangle(c *gg.Context, t Triangle) {
	c.MoveTo(t.A.X, t.A.Y)
	c.LineTo(t.B.X, t.B.Y)
	c.LineTo(t.C.X, t.C.Y)
	c.ClosePath()
}

// Bounding box of everything that will be drawn. Infinite points are skipped,
// and an empty input gets a unit box at the origin.
func drawBounds(points []Point, triangles []Triangle) r2.Rect {
	var finite []r2.Point
	for _, p := range points {
		if p.IsFinite() {
			finite = append(finite, r2.Point{X: p.X, Y: p.Y})
		}
	}
	for _, t := range triangles {
		for _, v := range [3]Point{t.A, t.B, t.C} {
			if v.IsFinite() {
				finite = append(finite, r2.Point{X: v.X, Y: v.Y})
			}
		}
	}
	if len(finite) == 0 {
		return r2.RectFromPoints(r2.Point{}, r2.Point{X: 1, Y: 1})
	}
	return r2.RectFromPoints(finite...)
}

// Helper to draw a triangulation and print it in the terminal (iTerm only) for
// debugging.
func dbgDraw(points []Point, triangles []Triangle, highlight []Triangle, scale float64) {
	c := Draw(points, triangles, DrawOptions{Scale: scale, Circumcircles: true, Highlight: highlight})
	path := filepath.Join(os.TempDir(), "triangulation.png")
	c.SavePNG(path)
	imgcat.CatFile(path, os.Stdout)
}
