package theme

import (
	"encoding/json"
	"testing"
)

func TestColorUnmarshalForms(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{in: `"#228b22"`, want: Color{R: 0x22, G: 0x8b, B: 0x22, A: 255}},
		{in: `[128, 128, 128]`, want: Color{R: 128, G: 128, B: 128, A: 255}},
		{in: `[128, 128, 128, 30]`, want: Color{R: 128, G: 128, B: 128, A: 30}},
		{in: `""`, want: Color{}},
	}
	for _, tc := range tests {
		var c Color
		if err := json.Unmarshal([]byte(tc.in), &c); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tc.in, err)
		}
		if c != tc.want {
			t.Fatalf("Unmarshal(%s)=%v want=%v", tc.in, c, tc.want)
		}
	}
}

func TestColorUnmarshalRejectsBadInput(t *testing.T) {
	for _, in := range []string{`"#12"`, `[1, 2]`, `[0, 0, 300]`, `true`} {
		var c Color
		if err := json.Unmarshal([]byte(in), &c); err == nil {
			t.Fatalf("expected error for %s", in)
		}
	}
}

func TestColorMarshal(t *testing.T) {
	out, err := json.Marshal([]Color{{R: 255, A: 255}, {R: 1, G: 2, B: 3, A: 4}})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(out), `["#ff0000",[1,2,3,4]]`; got != want {
		t.Fatalf("Marshal=%s want=%s", got, want)
	}
}

func TestRangeUnmarshalNumberOrPair(t *testing.T) {
	var v struct {
		A Range `json:"a"`
		B Range `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a": 50, "b": [0.25, 0.75]}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.A != (Range{50, 50}) || v.B != (Range{0.25, 0.75}) {
		t.Fatalf("unexpected ranges %+v", v)
	}
	var r Range
	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &r); err == nil {
		t.Fatalf("expected error for three-element range")
	}
}

func TestRangeSampleStaysInside(t *testing.T) {
	rng := newTestRNG(11)
	r := Range{3, 8}
	for range 1000 {
		v := r.Sample(rng)
		if v < 3 || v >= 8 {
			t.Fatalf("expected sample in [3, 8), got %g", v)
		}
	}
	if got := (Range{}).Or(r); got != r {
		t.Fatalf("expected Or to fall back, got %+v", got)
	}
}

func TestPickIsOpaque(t *testing.T) {
	rng := newTestRNG(5)
	c := pick(rng, []Color{{R: 9, A: 10}})
	if c.A != 255 || c.R != 9 {
		t.Fatalf("expected opaque palette color, got %v", c)
	}
	if c := pick(rng, nil); c.A != 255 || c.R != 0 {
		t.Fatalf("expected black for empty palette, got %v", c)
	}
}

func TestPickAlphaKeepsPaletteOpacity(t *testing.T) {
	palette := []Color{{R: 9, A: 128}}
	if c := pickAlpha(newTestRNG(5), palette, 0); c.A != 128 || c.R != 9 {
		t.Fatalf("expected palette alpha 128, got %v", c)
	}
	if c := pickAlpha(newTestRNG(5), palette, 40); c.A != 40 || c.R != 9 {
		t.Fatalf("expected layer alpha 40, got %v", c)
	}
	if c := pickAlpha(newTestRNG(5), nil, 0); c.A != 255 {
		t.Fatalf("expected opaque black for empty palette, got %v", c)
	}
}
