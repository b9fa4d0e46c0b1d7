// loader.go — Load built-in and user presets, and overrides files.
package theme

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"
)

//go:embed presets/*.json
var builtinFS embed.FS

// Built-in preset names.
const (
	Landscape = "landscape"
	TopDown   = "topdown"
)

// BuiltinNames lists the embedded presets, default first.
func BuiltinNames() []string {
	return []string{Landscape, TopDown}
}

// BuiltinJSON returns the raw JSON of an embedded preset.
func BuiltinJSON(name string) ([]byte, error) {
	data, err := builtinFS.ReadFile(path.Join("presets", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("unknown mode %q (want %s)", name, strings.Join(BuiltinNames(), " or "))
	}
	return data, nil
}

// Builtin parses an embedded preset.
func Builtin(name string) (*Preset, error) {
	data, err := BuiltinJSON(name)
	if err != nil {
		return nil, err
	}
	p, err := ParsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	return p, nil
}

// LoadPreset reads a preset JSON file.
func LoadPreset(file string) (*Preset, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	p, err := ParsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	return p, nil
}

// ParsePreset decodes preset JSON and applies defaults.
func ParsePreset(data []byte) (*Preset, error) {
	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	applyDefaults(&p)
	return &p, nil
}

// LoadOverrides reads an overrides file. A malformed file is reported as a
// warning and treated as empty.
func LoadOverrides(file string) (*Overrides, []string, error) {
	var warnings []string

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, nil, fmt.Errorf("read overrides: %w", err)
	}

	var ov Overrides
	if err := json.Unmarshal(data, &ov); err != nil {
		warnings = append(warnings, fmt.Sprintf("malformed %s: %v, using preset as is", file, err))
		return &Overrides{Themes: make(map[string]ThemeOverride)}, warnings, nil
	}

	if ov.Themes == nil {
		ov.Themes = make(map[string]ThemeOverride)
	}
	return &ov, warnings, nil
}

// applyDefaults fills fields left out of the JSON.
func applyDefaults(p *Preset) {
	if p.Canvas.Width <= 0 {
		p.Canvas.Width = DefaultReference
	}
	if p.Canvas.Height <= 0 {
		p.Canvas.Height = DefaultReference
	}
	if p.Canvas.Reference <= 0 {
		p.Canvas.Reference = DefaultReference
	}

	for i := range p.Themes {
		th := &p.Themes[i]
		if th.File == "" && th.ID != "" {
			th.File = th.ID + ".png"
		}
		if th.Name == "" {
			th.Name = th.ID
		}
		if th.Background.Type == "" {
			th.Background.Type = "solid"
			if !th.Background.From.IsZero() || !th.Background.To.IsZero() {
				th.Background.Type = "gradient"
			}
		}
		for j := range th.Layers {
			applyLayerDefaults(&th.Layers[j], j)
		}
	}
}

// applyLayerDefaults sets fallbacks for a layer's shared parameters.
func applyLayerDefaults(l *Layer, index int) {
	if l.ID == "" {
		l.ID = fmt.Sprintf("%s-%d", l.Kind, index)
	}
	if l.Aspect <= 0 {
		l.Aspect = 1
	}
	if l.Step <= 0 {
		l.Step = 20
	}
	if l.Anchor == "" {
		l.Anchor = "center"
	}
	if l.Shape == "" {
		l.Shape = "rect"
	}
	if l.Direction == "" {
		l.Direction = "horizontal"
	}
	if l.Kind == "ridge" && l.Count <= 0 {
		l.Count = 1
	}
}
