// merge.go — Merge overrides onto preset themes.
package theme

import "sort"

// MergeOverrides returns the preset's themes with ov applied, in preset
// order. Invisible themes and layers are excluded. Layers are sorted by
// z-index (lower draws first); equal z-indices keep file order.
// The preset itself is not modified.
func MergeOverrides(p *Preset, ov *Overrides) []Theme {
	var result []Theme

	for _, th := range p.Themes {
		var to ThemeOverride
		if ov != nil {
			to = ov.Themes[th.ID]
		}
		if to.Visible != nil && !*to.Visible {
			continue
		}

		if to.Noise != nil {
			th.Noise = max(*to.Noise, 0)
		}
		if to.Background != nil {
			mergeBackground(&th.Background, *to.Background)
		}

		layers := make([]Layer, 0, len(th.Layers))
		for _, l := range th.Layers {
			lo, ok := to.Layers[l.ID]
			if ok {
				if lo.Visible != nil && !*lo.Visible {
					continue
				}
				mergeLayer(&l, lo)
			}
			layers = append(layers, l)
		}
		sort.SliceStable(layers, func(i, j int) bool {
			return layers[i].ZIndex < layers[j].ZIndex
		})
		th.Layers = layers

		result = append(result, th)
	}

	return result
}

// mergeLayer applies non-nil layer overrides.
func mergeLayer(base *Layer, over LayerOverride) {
	if over.Count != nil {
		base.Count = max(*over.Count, 0)
	}
	if over.ZIndex != nil {
		base.ZIndex = *over.ZIndex
	}
	if over.Palette != nil {
		base.Palette = over.Palette // replace, not append
	}
}

// mergeBackground applies set background fields.
func mergeBackground(base *Background, over Background) {
	if over.Type != "" {
		base.Type = over.Type
	}
	if !over.Color.IsZero() {
		base.Color = over.Color
	}
	if !over.From.IsZero() {
		base.From = over.From
	}
	if !over.To.IsZero() {
		base.To = over.To
	}
	if over.Direction != "" {
		base.Direction = over.Direction
	}
}
