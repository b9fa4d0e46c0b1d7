// validator.go — Check presets and overrides for likely mistakes.
package theme

import (
	"fmt"
	"strings"
)

// Validate checks a preset for problems that do not stop loading but would
// produce a broken or surprising render. Returns warnings, never errors.
func Validate(p *Preset) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if len(p.Themes) == 0 {
		warn("preset %q defines no themes", p.Meta.Name)
	}

	ids := make(map[string]struct{}, len(p.Themes))
	files := make(map[string]string, len(p.Themes))
	for _, th := range p.Themes {
		if th.ID == "" {
			warn("theme %q has no id", th.Name)
		} else if _, dup := ids[th.ID]; dup {
			warn("duplicate theme id %q", th.ID)
		}
		ids[th.ID] = struct{}{}

		if other, dup := files[th.File]; dup {
			warn("themes %q and %q both write %s", other, th.ID, th.File)
		}
		files[th.File] = th.ID

		if th.Noise < 0 {
			warn("theme %q: negative noise %d is ignored", th.ID, th.Noise)
		}
		switch th.Background.Type {
		case "solid", "gradient":
		default:
			warn("theme %q: unknown background type %q", th.ID, th.Background.Type)
		}

		layerIDs := make(map[string]struct{}, len(th.Layers))
		for _, l := range th.Layers {
			if _, dup := layerIDs[l.ID]; dup {
				warn("theme %q: duplicate layer id %q", th.ID, l.ID)
			}
			layerIDs[l.ID] = struct{}{}
			for _, msg := range validateLayer(l) {
				warn("theme %q layer %q: %s", th.ID, l.ID, msg)
			}
		}
	}

	return warnings
}

// validateLayer returns problems with one layer's parameters.
func validateLayer(l Layer) []string {
	var out []string
	if !KnownKind(l.Kind) {
		return []string{fmt.Sprintf("unknown kind %q (known: %s)", l.Kind, strings.Join(Kinds(), ", "))}
	}
	if len(l.Palette) == 0 && l.Kind != "waves" {
		out = append(out, "empty palette, drawing black")
	}
	if l.Count < 0 {
		out = append(out, fmt.Sprintf("negative count %d", l.Count))
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"size", l.Size}, {"height", l.Height},
		{"region.x", l.Region.X}, {"region.y", l.Region.Y},
		{"radius", l.Radius}, {"radiusY", l.RadiusY},
	}
	for _, nr := range ranges {
		if nr.r.Min > nr.r.Max {
			out = append(out, fmt.Sprintf("%s range [%g, %g] is inverted", nr.name, nr.r.Min, nr.r.Max))
		}
	}

	need := map[string]bool{
		"waves":  l.Waves != nil,
		"ridge":  l.Ridge != nil,
		"nebula": l.Rings != nil,
	}
	if ok, checked := need[l.Kind]; checked && !ok {
		out = append(out, "missing kind parameters, render will fail")
	}

	switch {
	case l.Kind == "ridge" && l.Ridge != nil && l.Ridge.Peaks <= 0:
		out = append(out, fmt.Sprintf("ridge.peaks %d must be positive, render will fail", l.Ridge.Peaks))
	case l.Kind == "waves" && l.Waves != nil && l.Waves.Spacing <= 0 && l.Count > 1:
		out = append(out, fmt.Sprintf("waves.spacing %g does not move bands down, later bands cover earlier ones", l.Waves.Spacing))
	case l.Kind == "nebula" && l.Rings != nil && l.Rings.Step <= 0:
		out = append(out, fmt.Sprintf("rings.step %g is treated as 1px", l.Rings.Step))
	}
	if l.Kind == "nebula" && l.Rings != nil && l.Rings.MaxAlpha <= 0 {
		out = append(out, "rings.maxAlpha is not positive, nebula draws nothing")
	}
	out = append(out, transparentPalette(l)...)
	return out
}

// transparentPalette flags palette entries that blend to nothing in layers
// whose opacity falls back to the palette alpha.
func transparentPalette(l Layer) []string {
	var what string
	switch {
	case l.Kind == "haze" && l.Alpha == 0:
		what = "haze"
	case l.Kind == "nebula":
		what = "nebula"
	case l.Kind == "star" && l.Glow != nil && l.Glow.Alpha == 0:
		what = "star glow"
	default:
		return nil
	}
	var out []string
	for i, c := range l.Palette {
		if c.A == 0 {
			out = append(out, fmt.Sprintf("palette[%d] is fully transparent, %s draws nothing with it", i, what))
		}
	}
	return out
}

// ValidateOverrides checks that overrides reference only known themes and
// layers. Returns warnings (never fatal errors) for graceful degradation.
func ValidateOverrides(ov *Overrides, p *Preset) []string {
	if ov == nil {
		return nil
	}

	known := make(map[string]map[string]struct{}, len(p.Themes))
	for _, th := range p.Themes {
		layers := make(map[string]struct{}, len(th.Layers))
		for _, l := range th.Layers {
			layers[l.ID] = struct{}{}
		}
		known[th.ID] = layers
	}

	var warnings []string
	for id, to := range ov.Themes {
		layers, ok := known[id]
		if !ok {
			msg := fmt.Sprintf("overrides reference unknown theme %q, ignored", id)
			if s := Suggest(id, p.Themes); s != "" {
				msg += fmt.Sprintf(" (did you mean %q?)", s)
			}
			warnings = append(warnings, msg)
			continue
		}
		for lid := range to.Layers {
			if _, ok := layers[lid]; !ok {
				warnings = append(warnings, fmt.Sprintf("overrides reference unknown layer %q in theme %q, ignored", lid, id))
			}
		}
	}

	return warnings
}

// FormatCatalog returns a human-readable description of the preset's themes.
func FormatCatalog(p *Preset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Preset: %s", p.Meta.Name)
	if p.Meta.Version != "" {
		fmt.Fprintf(&b, " (v%s)", p.Meta.Version)
	}
	if p.Meta.Author != "" {
		fmt.Fprintf(&b, " by %s", p.Meta.Author)
	}
	b.WriteString("\n")
	if p.Meta.Description != "" {
		b.WriteString(p.Meta.Description + "\n")
	}
	fmt.Fprintf(&b, "Canvas: %dx%d (sizes authored at %d px)\n\n", p.Canvas.Width, p.Canvas.Height, p.Canvas.Reference)

	b.WriteString("Themes:\n")
	for _, th := range p.Themes {
		fmt.Fprintf(&b, "\n  [%s] %s -> %s\n", th.ID, th.Name, th.File)
		if th.Description != "" {
			fmt.Fprintf(&b, "    %s\n", th.Description)
		}
		for _, l := range th.Layers {
			fmt.Fprintf(&b, "    %-14s %-9s x%d\n", l.ID, l.Kind, l.Count)
		}
	}
	return b.String()
}
