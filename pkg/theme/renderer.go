// renderer.go - Theme compositor. Renders in layers:
// base fill (solid or gradient) -> scatter layers in order -> uniform noise.
// Layers later in the list draw over earlier ones; only overlay kinds blend.
package theme

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/xob0t/GoBackdrop/pkg/raster"
)

// DefaultReference is the canvas extent layer sizes are authored at.
const DefaultReference = 5000

// Renderer draws themes onto canvases of a fixed size.
type Renderer struct {
	Width     int
	Height    int
	Reference int

	// OnDraw, if set, observes every canvas region a layer touched.
	OnDraw func(image.Rectangle)
}

// NewRenderer creates a renderer for the preset's canvas.
func NewRenderer(c Canvas) *Renderer {
	return &Renderer{
		Width:     c.Width,
		Height:    c.Height,
		Reference: c.Reference,
	}
}

// Render composes th with randomness drawn only from rng.
func (r *Renderer) Render(th Theme, rng *rand.Rand) (*image.RGBA, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", r.Width, r.Height)
	}

	img, err := drawBackground(th.Background, r.Width, r.Height)
	if err != nil {
		return nil, fmt.Errorf("theme %q background: %w", th.ID, err)
	}

	ref := r.Reference
	if ref <= 0 {
		ref = DefaultReference
	}
	p := raster.NewPainter(img)
	p.OnDraw = r.OnDraw
	ps := &pass{
		p:     p,
		rng:   rng,
		w:     float64(r.Width),
		h:     float64(r.Height),
		scale: float64(min(r.Width, r.Height)) / float64(ref),
	}

	for _, l := range th.Layers {
		draw, ok := kinds[l.Kind]
		if !ok {
			return nil, fmt.Errorf("theme %q layer %q: unknown kind %q", th.ID, l.ID, l.Kind)
		}
		if err := draw(ps, l); err != nil {
			return nil, fmt.Errorf("theme %q layer %q: %w", th.ID, l.ID, err)
		}
	}

	return raster.AddNoise(img, th.Noise, rng), nil
}

// drawBackground creates the base canvas.
func drawBackground(bg Background, w, h int) (*image.RGBA, error) {
	switch bg.Type {
	case "gradient":
		dir, err := raster.ParseDirection(bg.Direction)
		if err != nil {
			return nil, err
		}
		return raster.NewGradient(w, h, bg.From.RGBA(), bg.To.RGBA(), dir), nil
	case "", "solid":
		c := bg.Color.RGBA()
		c.A = 255
		return raster.NewSolid(w, h, c), nil
	}
	return nil, fmt.Errorf("unknown background type %q", bg.Type)
}

// ── Layer kinds ──

type layerFunc func(*pass, Layer) error

var kinds = map[string]layerFunc{
	"ellipse":  drawEllipses,
	"rect":     drawRects,
	"blob":     drawBlobs,
	"pine":     drawPines,
	"cactus":   drawCacti,
	"waves":    drawWaves,
	"ridge":    drawRidges,
	"building": drawBuildings,
	"road":     drawRoads,
	"haze":     drawHaze,
	"nebula":   drawNebulae,
	"star":     drawStars,
	"planet":   drawPlanets,
}

// Kinds lists the registered layer kinds in sorted order.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// KnownKind reports whether kind has a drawing routine.
func KnownKind(kind string) bool {
	_, ok := kinds[kind]
	return ok
}

// pass is the state shared by all layers of one render.
type pass struct {
	p     *raster.Painter
	rng   *rand.Rand
	w, h  float64
	scale float64 // canvas pixels per reference pixel
}

var unit = Range{0, 1}

// px converts reference pixels to canvas pixels.
func (ps *pass) px(v float64) float64 {
	return v * ps.scale
}

// point samples a canvas position inside region.
func (ps *pass) point(r Region) (x, y float64) {
	x = r.X.Or(unit).Sample(ps.rng) * ps.w
	y = r.Y.Or(unit).Sample(ps.rng) * ps.h
	return x, y
}

// chance reports true with probability p.
func (ps *pass) chance(p float64) bool {
	return ps.rng.Float64() < p
}

// overlay runs fn on a scoped overlay covering extent around (cx, cy).
func (ps *pass) overlay(cx, cy, extent float64, fn func(*raster.Overlay)) {
	r := image.Rect(
		int(math.Floor(cx-extent)), int(math.Floor(cy-extent)),
		int(math.Ceil(cx+extent)), int(math.Ceil(cy+extent)),
	)
	ov := ps.p.Overlay(r)
	defer ov.Release()
	fn(ov)
}

// ring samples a closed polygon around (cx, cy) with a vertex every step
// degrees. Each vertex radius is scaled by a multiplier from mx (and my for
// the y axis when set).
func (ps *pass) ring(cx, cy, rx, ry float64, step int, mx, my Range) []raster.Point {
	pts := make([]raster.Point, 0, 360/step+1)
	for a := 0; a < 360; a += step {
		rad := float64(a) * math.Pi / 180
		kx := mx.Sample(ps.rng)
		ky := kx
		if !my.IsZero() {
			ky = my.Sample(ps.rng)
		}
		pts = append(pts, raster.Point{
			X: cx + rx*math.Cos(rad)*kx,
			Y: cy + ry*math.Sin(rad)*ky,
		})
	}
	return pts
}

func opaque(c Color) color.RGBA {
	rgba := c.RGBA()
	rgba.A = 255
	return rgba
}

func errMissing(kind, field string) error {
	return fmt.Errorf("kind %q needs %q", kind, field)
}
