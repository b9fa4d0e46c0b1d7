// painter.go — Anti-aliased shape drawing with golang.org/x/image/vector.
//
// Each shape is rasterized into a rasterizer sized to the shape's bounding box
// clipped to the destination, so drawing cost follows the shape, not the canvas.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points for a quarter ellipse.
const kappa = 0.5522847498307936

// Point is a canvas position in pixels.
type Point struct {
	X, Y float64
}

// Painter draws filled primitives onto a destination image.
type Painter struct {
	dst draw.Image
	z   *vector.Rasterizer

	// OnDraw, if set, receives every destination region a primitive touched.
	OnDraw func(image.Rectangle)
}

// NewPainter creates a painter for dst.
func NewPainter(dst draw.Image) *Painter {
	return &Painter{dst: dst, z: &vector.Rasterizer{}}
}

// Bounds returns the destination bounds.
func (p *Painter) Bounds() image.Rectangle {
	return p.dst.Bounds()
}

// Rect fills the half-open rectangle [x0,x1)×[y0,y1), rounded to whole pixels.
func (p *Painter) Rect(x0, y0, x1, y1 float64, c color.Color) {
	r := image.Rect(round(x0), round(y0), round(x1), round(y1)).Intersect(p.dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(p.dst, r, &image.Uniform{C: c}, image.Point{}, draw.Over)
	p.touch(r)
}

// Ellipse fills an axis-aligned ellipse centered at (cx, cy).
func (p *Painter) Ellipse(cx, cy, rx, ry float64, c color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	clip, ok := p.clip(cx-rx, cy-ry, cx+rx, cy+ry)
	if !ok {
		return
	}
	z := p.begin(clip)
	x, y := cx-float64(clip.Min.X), cy-float64(clip.Min.Y)
	kx, ky := rx*kappa, ry*kappa
	z.MoveTo(f32(x+rx), f32(y))
	z.CubeTo(f32(x+rx), f32(y+ky), f32(x+kx), f32(y+ry), f32(x), f32(y+ry))
	z.CubeTo(f32(x-kx), f32(y+ry), f32(x-rx), f32(y+ky), f32(x-rx), f32(y))
	z.CubeTo(f32(x-rx), f32(y-ky), f32(x-kx), f32(y-ry), f32(x), f32(y-ry))
	z.CubeTo(f32(x+kx), f32(y-ry), f32(x+rx), f32(y-ky), f32(x+rx), f32(y))
	z.ClosePath()
	p.end(clip, c)
}

// Polygon fills the closed ring through pts using the non-zero winding rule.
// Self-intersecting rings are drawn as-is.
func (p *Painter) Polygon(pts []Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, pt := range pts[1:] {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}
	clip, ok := p.clip(minX, minY, maxX, maxY)
	if !ok {
		return
	}
	z := p.begin(clip)
	ox, oy := float64(clip.Min.X), float64(clip.Min.Y)
	z.MoveTo(f32(pts[0].X-ox), f32(pts[0].Y-oy))
	for _, pt := range pts[1:] {
		z.LineTo(f32(pt.X-ox), f32(pt.Y-oy))
	}
	z.ClosePath()
	p.end(clip, c)
}

// Line draws a segment of the given width as a filled quad.
func (p *Painter) Line(x0, y0, x1, y1, width float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	hw := width / 2
	if l == 0 {
		p.Rect(x0-hw, y0-hw, x0+hw, y0+hw, c)
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	p.Polygon([]Point{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}, c)
}

// clip returns the pixel bounds of the given float box within the destination.
func (p *Painter) clip(x0, y0, x1, y1 float64) (image.Rectangle, bool) {
	r := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	).Intersect(p.dst.Bounds())
	return r, !r.Empty()
}

func (p *Painter) begin(clip image.Rectangle) *vector.Rasterizer {
	p.z.Reset(clip.Dx(), clip.Dy())
	return p.z
}

func (p *Painter) end(clip image.Rectangle, c color.Color) {
	p.z.Draw(p.dst, clip, &image.Uniform{C: c}, image.Point{})
	p.touch(clip)
}

func (p *Painter) touch(r image.Rectangle) {
	if p.OnDraw != nil {
		p.OnDraw(r)
	}
}

func f32(v float64) float32 {
	return float32(v)
}

func round(v float64) int {
	return int(math.Round(v))
}
