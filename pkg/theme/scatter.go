// scatter.go — Layers that scatter independent primitives over a region.
package theme

import (
	"github.com/xob0t/GoBackdrop/pkg/raster"
)

// drawEllipses scatters circles, or ellipses when Aspect != 1.
func drawEllipses(ps *pass, l Layer) error {
	aspect := l.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	for range l.Count {
		x, y := ps.point(l.Region)
		r := ps.px(l.Size.Sample(ps.rng))
		c := pick(ps.rng, l.Palette)
		ps.p.Ellipse(x, y, r, r*aspect, c)
	}
	return nil
}

// drawRects scatters rectangles Size wide and Height tall, either centered on
// the sampled point or standing on it (trunks, columns).
func drawRects(ps *pass, l Layer) error {
	height := l.Height.Or(l.Size)
	for range l.Count {
		x, y := ps.point(l.Region)
		w := ps.px(l.Size.Sample(ps.rng))
		h := ps.px(height.Sample(ps.rng))
		c := pick(ps.rng, l.Palette)
		if l.Anchor == "bottom" {
			ps.p.Rect(x-w/2, y-h, x+w/2, y, c)
			continue
		}
		ps.p.Rect(x-w/2, y-h/2, x+w/2, y+h/2, c)
	}
	return nil
}

// drawBlobs scatters irregular rings: dunes, islands, clearings, rock masses.
func drawBlobs(ps *pass, l Layer) error {
	step := l.Step
	if step <= 0 {
		step = 20
	}
	radius := l.Radius.Or(Range{1, 1})
	for range l.Count {
		cx, cy := ps.point(l.Region)
		rx := ps.px(l.Size.Sample(ps.rng))
		ry := rx
		if !l.Height.IsZero() {
			ry = ps.px(l.Height.Sample(ps.rng))
		}
		body := ps.ring(cx, cy, rx, ry, step, radius, l.RadiusY)
		c := pick(ps.rng, l.Palette)

		if l.Halo != nil {
			halo := ps.ring(cx, cy, rx, ry, step, l.Halo.Radius, Range{})
			ps.p.Polygon(halo, opaque(l.Halo.Color))
		}
		ps.p.Polygon(body, c)
	}
	return nil
}

// drawPines scatters upright triangles with their base on the sampled point.
func drawPines(ps *pass, l Layer) error {
	for range l.Count {
		x, y := ps.point(l.Region)
		s := ps.px(l.Size.Sample(ps.rng))
		c := pick(ps.rng, l.Palette)
		ps.p.Polygon([]raster.Point{
			{X: x, Y: y - s},
			{X: x - s/3, Y: y},
			{X: x + s/3, Y: y},
		}, c)
	}
	return nil
}

// drawCacti scatters columns standing on the sampled point, some with an arm
// reaching right from half height.
func drawCacti(ps *pass, l Layer) error {
	for range l.Count {
		x, y := ps.point(l.Region)
		w := ps.px(l.Size.Sample(ps.rng))
		h := ps.px(l.Height.Sample(ps.rng))
		c := pick(ps.rng, l.Palette)
		ps.p.Rect(x-w/2, y-h, x+w/2, y, c)

		if l.Arms == nil || !ps.chance(l.Arms.Chance) {
			continue
		}
		armY := y - h/2
		length := ps.px(l.Arms.Length.Sample(ps.rng))
		half := ps.px(l.Arms.Thickness) / 2
		ps.p.Rect(x+w/2, armY-half, x+w/2+length, armY+half, c)
	}
	return nil
}
