// Package theme provides JSON-driven background themes and the compositor that
// renders them: base fill, ordered scatter layers, optional noise.
package theme

// ── Preset types ──

// Preset is the top-level structure of a preset JSON file.
type Preset struct {
	Meta   Meta    `json:"meta"`
	Canvas Canvas  `json:"canvas"`
	Themes []Theme `json:"themes"`
}

// Meta holds preset metadata.
type Meta struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// Canvas defines output dimensions. Layer sizes are given in pixels at
// Reference and scaled to the actual canvas.
type Canvas struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	Reference int `json:"reference"`
}

// Theme is one background: where it is written and how it is drawn.
type Theme struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	File        string     `json:"file"`
	Background  Background `json:"background"`
	Layers      []Layer    `json:"layers"`
	Noise       int        `json:"noise"` // uniform noise intensity, 0 = none
}

// Background defines the base fill.
type Background struct {
	Type      string `json:"type"` // "solid" or "gradient"
	Color     Color  `json:"color"`
	From      Color  `json:"from"`
	To        Color  `json:"to"`
	Direction string `json:"direction"` // "vertical" (default) or "horizontal"
}

// ── Layer types ──

// Layer is one drawing pass. Kind selects the routine; the remaining fields
// are its parameters. Sizes are in reference pixels, regions are fractions.
type Layer struct {
	ID      string  `json:"id"`
	Kind    string  `json:"kind"`
	ZIndex  int     `json:"zIndex"`
	Count   int     `json:"count"`
	Region  Region  `json:"region"`
	Size    Range   `json:"size"`
	Height  Range   `json:"height"`
	Aspect  float64 `json:"aspect"`  // ellipse y/x ratio (default 1)
	Anchor  string  `json:"anchor"`  // "center" (default) or "bottom"
	Palette []Color `json:"palette"` // uniform random pick per primitive
	Step    int     `json:"step"`    // blob vertex spacing in degrees
	Radius  Range   `json:"radius"`  // blob per-vertex radius multiplier
	RadiusY Range   `json:"radiusY"` // independent y multiplier, empty = same as Radius

	Alpha     uint8   `json:"alpha"`     // haze opacity, 0 = palette alpha
	Blur      float64 `json:"blur"`      // overlay blur sigma
	Shape     string  `json:"shape"`     // haze shape: "rect" (default) or "ellipse"
	Direction string  `json:"direction"` // road axis: "horizontal" (default) or "vertical"

	Halo    *Halo    `json:"halo,omitempty"`
	Arms    *Arms    `json:"arms,omitempty"`
	Ridge   *Ridge   `json:"ridge,omitempty"`
	Snow    *Snow    `json:"snow,omitempty"`
	Waves   *Waves   `json:"waves,omitempty"`
	Windows *Windows `json:"windows,omitempty"`
	Antenna *Antenna `json:"antenna,omitempty"`
	Dashes  *Dashes  `json:"dashes,omitempty"`
	Rings   *Rings   `json:"rings,omitempty"`
	Glow    *Glow    `json:"glow,omitempty"`
	Spikes  *Spikes  `json:"spikes,omitempty"`
	Craters *Craters `json:"craters,omitempty"`
}

// Region is a fractional sub-rectangle of the canvas.
type Region struct {
	X Range `json:"x"`
	Y Range `json:"y"`
}

// Halo is a ring drawn beneath a blob (an island's beach).
type Halo struct {
	Radius Range `json:"radius"`
	Color  Color `json:"color"`
}

// Arms gives a cactus an optional side arm.
type Arms struct {
	Chance    float64 `json:"chance"`
	Length    Range   `json:"length"`
	Thickness float64 `json:"thickness"`
}

// Ridge describes one mountain silhouette across the canvas width.
type Ridge struct {
	Base   float64 `json:"base"` // baseline as a fraction of height
	Peaks  int     `json:"peaks"`
	Jitter float64 `json:"jitter"` // max horizontal peak offset
}

// Snow caps ridge peaks rising more than Above over the baseline.
type Snow struct {
	Above float64 `json:"above"`
	Size  Range   `json:"size"`
	Color Color   `json:"color"`
}

// Waves describes Count sine bands, one palette shade per ShadeEvery bands.
type Waves struct {
	Start         float64 `json:"start"` // first band baseline as a fraction of height
	Spacing       float64 `json:"spacing"`
	Amplitude     float64 `json:"amplitude"`
	AmplitudeStep float64 `json:"amplitudeStep"`
	Frequency     float64 `json:"frequency"` // radians per reference pixel
	FrequencyStep float64 `json:"frequencyStep"`
	Sample        float64 `json:"sample"` // x distance between vertices
	ShadeEvery    int     `json:"shadeEvery"`
}

// Windows is the lit window grid on a building face.
type Windows struct {
	Size      float64 `json:"size"`
	Spacing   float64 `json:"spacing"`
	InsetX    float64 `json:"insetX"`
	InsetY    float64 `json:"insetY"`
	Lit       float64 `json:"lit"`  // chance a window is drawn
	Warm      float64 `json:"warm"` // chance a drawn window is warm
	WarmColor Color   `json:"warmColor"`
	CoolColor Color   `json:"coolColor"`
}

// Antenna is an optional rooftop spire.
type Antenna struct {
	Chance float64 `json:"chance"`
	Height Range   `json:"height"`
	Width  float64 `json:"width"`
	Color  Color   `json:"color"`
}

// Dashes are lane markings along a road.
type Dashes struct {
	Length    float64 `json:"length"`
	Period    float64 `json:"period"`
	Offset    float64 `json:"offset"`
	Thickness float64 `json:"thickness"`
	Color     Color   `json:"color"`
}

// Rings shapes a nebula: concentric discs every Step pixels with opacity
// falling from MaxAlpha at the rim towards the center.
type Rings struct {
	Step     float64 `json:"step"`
	MaxAlpha float64 `json:"maxAlpha"`
}

// Glow is an optional blurred halo around a star.
type Glow struct {
	Chance float64 `json:"chance"`
	Scale  float64 `json:"scale"`
	Alpha  uint8   `json:"alpha"` // 0 = star palette alpha
	Blur   float64 `json:"blur"`
}

// Spikes are cross-shaped flares on bright stars.
type Spikes struct {
	Scale float64 `json:"scale"`
	Width float64 `json:"width"`
}

// Craters are darker discs scattered over a planet.
type Craters struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`    // fraction of the planet radius
	Spread float64 `json:"spread"` // max offset as a fraction of the radius
	Darken int     `json:"darken"`
}

// ── Override types ──

// Overrides adjusts a preset without editing it.
type Overrides struct {
	Themes map[string]ThemeOverride `json:"themes"`
}

// ThemeOverride holds optional per-theme changes.
type ThemeOverride struct {
	Visible    *bool                    `json:"visible,omitempty"`
	Noise      *int                     `json:"noise,omitempty"`
	Background *Background              `json:"background,omitempty"`
	Layers     map[string]LayerOverride `json:"layers,omitempty"`
}

// LayerOverride holds optional per-layer changes.
type LayerOverride struct {
	Visible *bool   `json:"visible,omitempty"`
	Count   *int    `json:"count,omitempty"`
	ZIndex  *int    `json:"zIndex,omitempty"`
	Palette []Color `json:"palette,omitempty"`
}
