package raster

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
)

func TestNewGradientVerticalEndpointsAndMonotonic(t *testing.T) {
	from := color.RGBA{135, 206, 235, 255}
	to := color.RGBA{34, 139, 34, 255}
	const w, h = 7, 120
	img := NewGradient(w, h, from, to, Vertical)

	if got := img.RGBAAt(3, 0); got != from {
		t.Fatalf("expected top row %v, got %v", from, got)
	}
	last := img.RGBAAt(3, h-1)
	for _, ch := range []struct{ got, want uint8 }{{last.R, to.R}, {last.G, to.G}, {last.B, to.B}} {
		// The last row sits at t=(h-1)/h, one step short of the end color.
		if d := absDiff(ch.got, ch.want); d > 2 {
			t.Fatalf("expected bottom row near %v, got %v", to, last)
		}
	}

	prev := img.RGBAAt(0, 0)
	for y := 1; y < h; y++ {
		cur := img.RGBAAt(0, y)
		if cur.R > prev.R || cur.G > prev.G || cur.B > prev.B {
			t.Fatalf("expected monotonic decrease at row %d: %v after %v", y, cur, prev)
		}
		for x := 1; x < w; x++ {
			if img.RGBAAt(x, y) != cur {
				t.Fatalf("expected uniform row %d, column %d differs", y, x)
			}
		}
		prev = cur
	}
}

func TestNewGradientHorizontal(t *testing.T) {
	from := color.RGBA{0, 0, 0, 255}
	to := color.RGBA{200, 100, 50, 255}
	img := NewGradient(100, 3, from, to, Horizontal)

	if got := img.RGBAAt(0, 2); got != from {
		t.Fatalf("expected left column %v, got %v", from, got)
	}
	mid := img.RGBAAt(50, 1)
	want := color.RGBA{100, 50, 25, 255}
	if mid != want {
		t.Fatalf("expected middle column %v, got %v", want, mid)
	}
	for x := 1; x < 100; x++ {
		if img.RGBAAt(x, 0).R < img.RGBAAt(x-1, 0).R {
			t.Fatalf("expected monotonic increase at column %d", x)
		}
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{"": Vertical, "vertical": Vertical, "horizontal": Horizontal}
	for in, want := range cases {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Fatalf("ParseDirection(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDirection("diagonal"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}

func TestAddNoiseStaysWithinIntensity(t *testing.T) {
	const k = 15
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(i % 256)
		img.Pix[i+1] = 5
		img.Pix[i+2] = 250
		img.Pix[i+3] = 255
	}
	orig := append([]uint8(nil), img.Pix...)

	AddNoise(img, k, rand.New(rand.NewPCG(1, 2)))

	changed := false
	for i := range img.Pix {
		if i%4 == 3 {
			if img.Pix[i] != 255 {
				t.Fatalf("expected alpha untouched at %d", i)
			}
			continue
		}
		lo := max(0, int(orig[i])-k)
		hi := min(255, int(orig[i])+k)
		if v := int(img.Pix[i]); v < lo || v > hi {
			t.Fatalf("channel %d out of range: %d not in [%d,%d]", i, v, lo, hi)
		}
		if img.Pix[i] != orig[i] {
			changed = true
		}
	}
	if !changed {
		t.Fatalf("expected noise to change at least one channel")
	}
}

func TestAddNoiseZeroIntensityIsNoop(t *testing.T) {
	img := NewSolid(8, 8, color.RGBA{10, 20, 30, 255})
	orig := append([]uint8(nil), img.Pix...)
	AddNoise(img, 0, rand.New(rand.NewPCG(1, 2)))
	for i := range orig {
		if img.Pix[i] != orig[i] {
			t.Fatalf("expected no change at %d", i)
		}
	}
}

func TestPainterEllipseFillsCenterAndClipsToCanvas(t *testing.T) {
	bg := color.RGBA{0, 0, 20, 255}
	fg := color.RGBA{255, 255, 255, 255}
	img := NewSolid(50, 50, bg)
	p := NewPainter(img)

	var touched []image.Rectangle
	p.OnDraw = func(r image.Rectangle) { touched = append(touched, r) }

	p.Ellipse(25, 25, 10, 5, fg)
	if got := img.RGBAAt(25, 25); got != fg {
		t.Fatalf("expected ellipse center filled, got %v", got)
	}
	if got := img.RGBAAt(25, 33); got != bg {
		t.Fatalf("expected pixel outside ellipse untouched, got %v", got)
	}

	// Partly off-canvas shapes must not panic and must clip.
	p.Ellipse(-5, 48, 20, 20, fg)
	p.Ellipse(500, 500, 20, 20, fg)

	if len(touched) != 2 {
		t.Fatalf("expected 2 touched regions, got %d", len(touched))
	}
	for _, r := range touched {
		if !r.In(img.Bounds()) {
			t.Fatalf("touched region %v outside canvas", r)
		}
	}
}

func TestPainterPolygonAndRect(t *testing.T) {
	bg := color.RGBA{10, 10, 10, 255}
	red := color.RGBA{255, 0, 0, 255}
	img := NewSolid(40, 40, bg)
	p := NewPainter(img)

	p.Polygon([]Point{{5, 5}, {35, 5}, {20, 35}}, red)
	if got := img.RGBAAt(20, 12); got != red {
		t.Fatalf("expected triangle interior filled, got %v", got)
	}
	if got := img.RGBAAt(2, 38); got != bg {
		t.Fatalf("expected outside triangle untouched, got %v", got)
	}

	p.Rect(0, 30, 10, 40, red)
	if got := img.RGBAAt(9, 39); got != red {
		t.Fatalf("expected rect filled, got %v", got)
	}
	if got := img.RGBAAt(10, 39); got != bg {
		t.Fatalf("expected rect to be half-open, got %v", got)
	}
}

func TestPainterLineVertical(t *testing.T) {
	bg := color.RGBA{0, 0, 0, 255}
	red := color.RGBA{255, 0, 0, 255}
	img := NewSolid(30, 30, bg)
	NewPainter(img).Line(15, 25, 15, 5, 4, red)
	if got := img.RGBAAt(14, 15); got != red {
		t.Fatalf("expected line body filled, got %v", got)
	}
	if got := img.RGBAAt(20, 15); got != bg {
		t.Fatalf("expected beside line untouched, got %v", got)
	}
}

func TestOverlayCompositeBlendsWithinRegion(t *testing.T) {
	bg := color.RGBA{0, 0, 0, 255}
	img := NewSolid(60, 60, bg)
	p := NewPainter(img)

	ov := p.Overlay(image.Rect(10, 10, 30, 30))
	defer ov.Release()
	ov.Rect(10, 10, 30, 30)
	ov.Composite(WithAlpha(color.RGBA{255, 255, 255, 255}, 128), 0)

	inside := img.RGBAAt(20, 20)
	if inside.R < 120 || inside.R > 135 || inside.A != 255 {
		t.Fatalf("expected half blend inside overlay, got %v", inside)
	}
	if got := img.RGBAAt(40, 40); got != bg {
		t.Fatalf("expected outside overlay untouched, got %v", got)
	}

	ov.Release()
	ov.Release()
	if !ov.Bounds().Empty() {
		t.Fatalf("expected released overlay to be empty")
	}
}

func TestOverlayBlurSoftensEdges(t *testing.T) {
	img := NewSolid(200, 200, color.RGBA{0, 0, 0, 255})
	p := NewPainter(img)

	ov := p.Overlay(image.Rect(0, 0, 200, 200))
	ov.Radial(100, 100, func(d float64) uint8 {
		if d <= 40 {
			return 255
		}
		return 0
	})
	ov.Composite(color.RGBA{255, 0, 0, 255}, 12)
	ov.Release()

	center := img.RGBAAt(100, 100).R
	edge := img.RGBAAt(140, 100).R
	far := img.RGBAAt(195, 100).R
	if center < 200 {
		t.Fatalf("expected strong center, got %d", center)
	}
	if edge == 0 || edge >= center {
		t.Fatalf("expected soft edge between 0 and %d, got %d", center, edge)
	}
	if far > 5 {
		t.Fatalf("expected far pixel nearly untouched, got %d", far)
	}
}

func TestDarkenAndParseColor(t *testing.T) {
	c, err := ParseColor("#FF8C00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (color.RGBA{255, 140, 0, 255}) {
		t.Fatalf("unexpected parse result %v", c)
	}
	if got := Darken(c, 30); got != (color.RGBA{225, 110, 0, 255}) {
		t.Fatalf("unexpected darken result %v", got)
	}
	if Hex(c) != "#ff8c00" {
		t.Fatalf("unexpected hex %s", Hex(c))
	}
	if _, err := ParseColor("ff8c"); err == nil {
		t.Fatalf("expected error for malformed color")
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
