// terrain.go — Full-width landscape layers: sine wave bands and mountain ridges.
package theme

import (
	"fmt"
	"image/color"
	"math"

	"github.com/xob0t/GoBackdrop/pkg/raster"
)

// drawWaves draws Count sine bands, each closed to the canvas bottom. Band i
// starts Spacing*i below the first and grows in amplitude and frequency.
// Shades advance through the palette every ShadeEvery bands.
func drawWaves(ps *pass, l Layer) error {
	wv := l.Waves
	if wv == nil {
		return errMissing(l.Kind, "waves")
	}
	sample := max(ps.px(max(wv.Sample, 1)), 1)
	every := max(wv.ShadeEvery, 1)

	for i := range l.Count {
		fi := float64(i)
		base := wv.Start*ps.h + ps.px(fi*wv.Spacing)
		amp := ps.px(wv.Amplitude + fi*wv.AmplitudeStep)
		freq := (wv.Frequency + fi*wv.FrequencyStep) / ps.scale

		pts := make([]raster.Point, 0, int(ps.w/sample)+3)
		for x := 0.0; x < ps.w; x += sample {
			pts = append(pts, raster.Point{X: x, Y: base + amp*math.Sin(x*freq+fi)})
		}
		pts = append(pts, raster.Point{X: ps.w, Y: ps.h}, raster.Point{X: 0, Y: ps.h})

		c := color.RGBA{A: 255}
		if n := len(l.Palette); n > 0 {
			c = opaque(l.Palette[min(i/every, n-1)])
		}
		ps.p.Polygon(pts, c)
	}
	return nil
}

// drawRidges draws Count mountain silhouettes from the bottom-left corner
// through Peaks evenly spaced, jittered peaks to the bottom-right corner.
// Peaks rising more than Snow.Above over the baseline get a snow cap.
func drawRidges(ps *pass, l Layer) error {
	rd := l.Ridge
	if rd == nil {
		return errMissing(l.Kind, "ridge")
	}
	if rd.Peaks <= 0 {
		return fmt.Errorf("kind %q needs ridge.peaks > 0, got %d", l.Kind, rd.Peaks)
	}
	base := rd.Base * ps.h

	for range max(l.Count, 1) {
		pts := make([]raster.Point, 0, rd.Peaks+2)
		pts = append(pts, raster.Point{X: 0, Y: ps.h})
		for i := range rd.Peaks {
			x := float64(i) / float64(rd.Peaks) * ps.w
			y := base - ps.px(l.Size.Sample(ps.rng))
			x += ps.px((ps.rng.Float64()*2 - 1) * rd.Jitter)
			x = math.Max(0, math.Min(x, ps.w))
			pts = append(pts, raster.Point{X: x, Y: y})
		}
		pts = append(pts, raster.Point{X: ps.w, Y: ps.h})
		ps.p.Polygon(pts, pick(ps.rng, l.Palette))

		if l.Snow == nil {
			continue
		}
		above := ps.px(l.Snow.Above)
		snow := opaque(l.Snow.Color)
		for _, pt := range pts[1 : len(pts)-1] {
			if pt.Y >= base-above {
				continue
			}
			s := ps.px(l.Snow.Size.Sample(ps.rng))
			ps.p.Polygon([]raster.Point{
				{X: pt.X, Y: pt.Y},
				{X: pt.X - s, Y: pt.Y + s},
				{X: pt.X + s, Y: pt.Y + s},
			}, snow)
		}
	}
	return nil
}
