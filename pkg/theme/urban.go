// urban.go — City layers: buildings with window grids, roads, smog haze.
package theme

import (
	"github.com/xob0t/GoBackdrop/pkg/raster"
)

// drawBuildings draws blocks standing on the bottom of the region, with an
// optional window grid and rooftop antenna.
func drawBuildings(ps *pass, l Layer) error {
	ground := l.Region.Y.Or(unit).Max * ps.h
	for range l.Count {
		x := l.Region.X.Or(unit).Sample(ps.rng) * ps.w
		w := ps.px(l.Size.Sample(ps.rng))
		h := ps.px(l.Height.Sample(ps.rng))
		top := ground - h
		ps.p.Rect(x, top, x+w, ground, pick(ps.rng, l.Palette))

		if l.Windows != nil {
			ps.windows(l.Windows, x, top, x+w, ground)
		}
		if a := l.Antenna; a != nil && ps.chance(a.Chance) {
			ah := ps.px(a.Height.Sample(ps.rng))
			ps.p.Line(x+w/2, top, x+w/2, top-ah, max(ps.px(a.Width), 1), opaque(a.Color))
		}
	}
	return nil
}

// windows fills the facade [x0,x1)×[y0,y1) with a grid of lit windows.
func (ps *pass) windows(win *Windows, x0, y0, x1, y1 float64) {
	size := ps.px(win.Size)
	step := max(ps.px(win.Spacing), 1)
	ix, iy := ps.px(win.InsetX), ps.px(win.InsetY)
	warm, cool := opaque(win.WarmColor), opaque(win.CoolColor)

	for wy := y0 + iy; wy < y1-iy; wy += step {
		for wx := x0 + ix; wx < x1-ix; wx += step {
			if !ps.chance(win.Lit) {
				continue
			}
			c := cool
			if ps.chance(win.Warm) {
				c = warm
			}
			ps.p.Rect(wx, wy, wx+size, wy+size, c)
		}
	}
}

// drawRoads draws full-length road bands with dashed lane markings along
// their center line.
func drawRoads(ps *pass, l Layer) error {
	vertical := l.Direction == "vertical"
	for range l.Count {
		thick := ps.px(l.Size.Sample(ps.rng))
		c := pick(ps.rng, l.Palette)
		var pos float64
		if vertical {
			pos = l.Region.X.Or(unit).Sample(ps.rng) * ps.w
			ps.p.Rect(pos, 0, pos+thick, ps.h, c)
		} else {
			pos = l.Region.Y.Or(unit).Sample(ps.rng) * ps.h
			ps.p.Rect(0, pos, ps.w, pos+thick, c)
		}
		if l.Dashes != nil {
			ps.dashes(l.Dashes, pos+thick/2, vertical)
		}
	}
	return nil
}

// dashes marks a lane line centered on mid, one dash every Period.
func (ps *pass) dashes(d *Dashes, mid float64, vertical bool) {
	length := ps.px(d.Length)
	period := max(ps.px(d.Period), 1)
	half := ps.px(d.Thickness) / 2
	c := opaque(d.Color)

	extent := ps.w
	if vertical {
		extent = ps.h
	}
	for t := ps.px(d.Offset); t < extent; t += period {
		if vertical {
			ps.p.Rect(mid-half, t, mid+half, t+length, c)
		} else {
			ps.p.Rect(t, mid-half, t+length, mid+half, c)
		}
	}
}

// drawHaze blends translucent, blurred patches (smog, mist) over the canvas.
func drawHaze(ps *pass, l Layer) error {
	sigma := ps.px(l.Blur)
	for range l.Count {
		x, y := ps.point(l.Region)
		s := ps.px(l.Size.Sample(ps.rng))
		c := pickAlpha(ps.rng, l.Palette, l.Alpha)
		ps.overlay(x, y, s+3*sigma+1, func(ov *raster.Overlay) {
			if l.Shape == "ellipse" {
				ov.Ellipse(x, y, s, s)
			} else {
				ov.Rect(x-s, y-s, x+s, y+s)
			}
			ov.Composite(c, sigma)
		})
	}
	return nil
}
