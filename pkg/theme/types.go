// types.go — JSON value types shared by presets and overrides.
package theme

import (
	"cmp"
	"encoding/json"
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/xob0t/GoBackdrop/pkg/raster"
)

// Color is an 8-bit RGBA color. In JSON it is "#rrggbb", [r,g,b] or [r,g,b,a].
// The zero value means "unset".
type Color color.RGBA

// RGBA returns c as a color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA(c)
}

// IsZero reports whether c was left unset.
func (c Color) IsZero() bool {
	return c == Color{}
}

// UnmarshalJSON accepts a hex string or a 3/4-element channel array.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*c = Color{}
			return nil
		}
		rgba, err := raster.ParseColor(s)
		if err != nil {
			return err
		}
		*c = Color(rgba)
		return nil
	}

	var ch []int
	if err := json.Unmarshal(data, &ch); err != nil {
		return fmt.Errorf("color must be \"#rrggbb\" or [r,g,b(,a)]: %s", data)
	}
	if len(ch) != 3 && len(ch) != 4 {
		return fmt.Errorf("color array needs 3 or 4 channels, got %d", len(ch))
	}
	for _, v := range ch {
		if v < 0 || v > 255 {
			return fmt.Errorf("color channel %d out of range 0-255", v)
		}
	}
	*c = Color{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2]), A: 255}
	if len(ch) == 4 {
		c.A = uint8(ch[3])
	}
	return nil
}

// MarshalJSON writes opaque colors as hex and translucent ones as arrays.
func (c Color) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return json.Marshal("")
	}
	if c.A == 255 {
		return json.Marshal(raster.Hex(c.RGBA()))
	}
	return json.Marshal([]int{int(c.R), int(c.G), int(c.B), int(c.A)})
}

// Range is a [min, max] interval sampled uniformly. In JSON it is a
// two-element array or a single number.
type Range struct {
	Min, Max float64
}

// IsZero reports whether r was left unset.
func (r Range) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// Or returns r, or def when r is unset.
func (r Range) Or(def Range) Range {
	if r.IsZero() {
		return def
	}
	return r
}

// Sample draws a uniform value from [Min, Max).
func (r Range) Sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// UnmarshalJSON accepts [min, max] or a single number.
func (r *Range) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*r = Range{v, v}
		return nil
	}
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil || len(pair) != 2 {
		return fmt.Errorf("range must be [min, max] or a number: %s", data)
	}
	*r = Range{pair[0], pair[1]}
	return nil
}

// MarshalJSON writes the range as [min, max].
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{r.Min, r.Max})
}

// pick returns a uniformly chosen palette entry as an opaque color.
func pick(rng *rand.Rand, palette []Color) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{A: 255}
	}
	return opaque(palette[rng.IntN(len(palette))])
}

// pickAlpha returns a uniformly chosen palette entry for blended layers.
// A non-zero alpha overrides the entry's own opacity; otherwise the entry's
// alpha is kept, so translucent palette colors blend as written.
func pickAlpha(rng *rand.Rand, palette []Color, alpha uint8) color.NRGBA {
	if len(palette) == 0 {
		return color.NRGBA{A: cmp.Or(alpha, 255)}
	}
	c := color.NRGBA(palette[rng.IntN(len(palette))])
	if alpha > 0 {
		c.A = alpha
	}
	return c
}
