// overlay.go — Region-limited alpha overlays (glows, haze, nebulae).
//
// An Overlay is a coverage mask covering only the region it is created for.
// Shapes or radial profiles are painted into the mask, the mask is blurred, and
// a color is blended through it onto the destination. Mask buffers are pooled.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/disintegration/imaging"
)

var maskPool = sync.Pool{
	New: func() any { return new([]uint8) },
}

// Overlay is a scoped alpha layer over part of a painter's destination.
// Callers must Release it; Release is idempotent.
type Overlay struct {
	dst    draw.Image
	mask   *image.Alpha
	buf    *[]uint8
	shapes *Painter
	onDraw func(image.Rectangle)
}

// Overlay acquires a transparent mask for r (clipped to the destination).
func (p *Painter) Overlay(r image.Rectangle) *Overlay {
	r = r.Intersect(p.dst.Bounds())
	n := r.Dx() * r.Dy()

	buf := maskPool.Get().(*[]uint8)
	if cap(*buf) < n {
		*buf = make([]uint8, n)
	} else {
		*buf = (*buf)[:n]
		clear(*buf)
	}

	mask := &image.Alpha{Pix: *buf, Stride: r.Dx(), Rect: r}
	return &Overlay{
		dst:    p.dst,
		mask:   mask,
		buf:    buf,
		shapes: &Painter{dst: mask, z: p.z},
		onDraw: p.OnDraw,
	}
}

// Bounds returns the overlay region.
func (o *Overlay) Bounds() image.Rectangle {
	if o.mask == nil {
		return image.Rectangle{}
	}
	return o.mask.Rect
}

// Ellipse adds a fully covered ellipse to the mask.
func (o *Overlay) Ellipse(cx, cy, rx, ry float64) {
	if o.mask != nil {
		o.shapes.Ellipse(cx, cy, rx, ry, color.Opaque)
	}
}

// Rect adds a fully covered rectangle to the mask.
func (o *Overlay) Rect(x0, y0, x1, y1 float64) {
	if o.mask != nil {
		o.shapes.Rect(x0, y0, x1, y1, color.Opaque)
	}
}

// Radial sets every mask pixel from its distance to (cx, cy).
func (o *Overlay) Radial(cx, cy float64, alpha func(d float64) uint8) {
	if o.mask == nil {
		return
	}
	r := o.mask.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := o.mask.Pix[(y-r.Min.Y)*o.mask.Stride:]
		dy := float64(y) + 0.5 - cy
		for x := r.Min.X; x < r.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			row[x-r.Min.X] = alpha(math.Hypot(dx, dy))
		}
	}
}

// Composite blurs the mask with the given sigma and blends c through it onto
// the destination. A non-positive sigma skips the blur.
func (o *Overlay) Composite(c color.Color, sigma float64) {
	if o.mask == nil || o.mask.Rect.Empty() {
		return
	}
	if sigma > 0 {
		blurMask(o.mask, sigma)
	}
	r := o.mask.Rect
	draw.DrawMask(o.dst, r, &image.Uniform{C: c}, image.Point{}, o.mask, r.Min, draw.Over)
	if o.onDraw != nil {
		o.onDraw(r)
	}
}

// Release returns the mask buffer to the pool.
func (o *Overlay) Release() {
	if o.buf == nil {
		return
	}
	maskPool.Put(o.buf)
	o.buf = nil
	o.mask = nil
}

// blurMask applies a Gaussian blur to m in place. Large sigmas are applied at
// reduced resolution; the result is smooth enough that the difference is not
// visible.
func blurMask(m *image.Alpha, sigma float64) {
	w, h := m.Rect.Dx(), m.Rect.Dy()
	scale := 1
	if sigma > 4 {
		scale = int(sigma / 3)
	}
	for scale > 1 && (w/scale < 4 || h/scale < 4) {
		scale--
	}

	var blurred *image.NRGBA
	if scale > 1 {
		small := imaging.Resize(m, w/scale, h/scale, imaging.Box)
		small = imaging.Blur(small, sigma/float64(scale))
		blurred = imaging.Resize(small, w, h, imaging.Linear)
	} else {
		blurred = imaging.Blur(m, sigma)
	}

	for y := 0; y < h; y++ {
		src := blurred.Pix[y*blurred.Stride:]
		dst := m.Pix[y*m.Stride : y*m.Stride+w]
		for x := range dst {
			dst[x] = src[4*x+3]
		}
	}
}
