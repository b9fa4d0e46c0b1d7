// cosmic.go — Space layers: nebulae, stars with glows and spikes, planets.
package theme

import (
	"cmp"
	"image/color"
	"math"

	"github.com/xob0t/GoBackdrop/pkg/raster"
)

// drawNebulae draws soft clouds made of concentric rings, densest at the
// center. All rings of one cloud share a single mask and blur. A translucent
// palette entry scales the whole cloud.
func drawNebulae(ps *pass, l Layer) error {
	if l.Rings == nil {
		return errMissing(l.Kind, "rings")
	}
	sigma := ps.px(l.Blur)
	for range l.Count {
		x, y := ps.point(l.Region)
		size := ps.px(l.Size.Sample(ps.rng))
		c := pickAlpha(ps.rng, l.Palette, 0)
		profile := ringProfile(size, ps.px(l.Rings.Step), l.Rings.MaxAlpha)

		ps.overlay(x, y, size+3*sigma+1, func(ov *raster.Overlay) {
			ov.Radial(x, y, profile)
			ov.Composite(c, sigma)
		})
	}
	return nil
}

// ringProfile returns the combined coverage of discs of radius size,
// size-step, size-2*step, ... as a function of distance from the center.
// Disc k has opacity maxAlpha*r_k/size; overlapping discs stack with the
// "over" operator.
func ringProfile(size, step, maxAlpha float64) func(d float64) uint8 {
	if size <= 0 {
		return func(float64) uint8 { return 0 }
	}
	step = max(step, 1)
	n := int(math.Ceil(size / step))

	cover := make([]uint8, n)
	through := 1.0
	for k := range n {
		r := size - float64(k)*step
		a := math.Floor(maxAlpha*r/size) / 255
		through *= 1 - a
		cover[k] = uint8(math.Round((1 - through) * 255))
	}

	return func(d float64) uint8 {
		if d > size {
			return 0
		}
		k := int((size - d) / step)
		return cover[min(k, n-1)]
	}
}

// drawStars scatters star discs. Glow halos are blended around a random
// share of them; Spikes add a cross flare to every star in the layer.
func drawStars(ps *pass, l Layer) error {
	for range l.Count {
		x, y := ps.point(l.Region)
		r := ps.px(l.Size.Sample(ps.rng))
		entry := pickAlpha(ps.rng, l.Palette, 0)
		c := color.RGBA{R: entry.R, G: entry.G, B: entry.B, A: 255}
		ps.p.Ellipse(x, y, r, r, c)

		if g := l.Glow; g != nil && ps.chance(g.Chance) {
			gr := r * g.Scale
			sigma := ps.px(g.Blur)
			glow := raster.WithAlpha(c, cmp.Or(g.Alpha, entry.A))
			ps.overlay(x, y, gr+3*sigma+1, func(ov *raster.Overlay) {
				ov.Ellipse(x, y, gr, gr)
				ov.Composite(glow, sigma)
			})
		}
		if s := l.Spikes; s != nil {
			length := r * s.Scale
			width := max(ps.px(s.Width), 1)
			ps.p.Line(x-length, y, x+length, y, width, c)
			ps.p.Line(x, y-length, x, y+length, width, c)
		}
	}
	return nil
}

// drawPlanets draws discs with darker craters scattered around the center.
func drawPlanets(ps *pass, l Layer) error {
	for range l.Count {
		x, y := ps.point(l.Region)
		r := ps.px(l.Size.Sample(ps.rng))
		c := pick(ps.rng, l.Palette)
		ps.p.Ellipse(x, y, r, r, c)

		cr := l.Craters
		if cr == nil {
			continue
		}
		dark := raster.Darken(c, cr.Darken)
		lo := ps.px(cr.Min)
		for range cr.Count {
			s := lo + ps.rng.Float64()*max(0, r*cr.Max-lo)
			off := r * cr.Spread
			cx := x + (ps.rng.Float64()*2-1)*off
			cy := y + (ps.rng.Float64()*2-1)*off
			ps.p.Ellipse(cx, cy, s, s, dark)
		}
	}
	return nil
}
