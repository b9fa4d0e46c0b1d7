// fonts.go - Label font for contact sheets, with custom TTF support.
// Uses golang.org/x/image/font for OpenType rendering. Defaults to the
// embedded Go Regular font when no custom font is given or it fails to load.
package generator

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontManager parses one font and hands out faces for it.
type FontManager struct {
	parsed *opentype.Font
}

// NewFontManager loads the font at customPath. If customPath is empty or
// unreadable, the embedded Go font is used.
func NewFontManager(customPath string) (*FontManager, error) {
	data := goregular.TTF
	if customPath != "" {
		custom, err := os.ReadFile(customPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load font %q, using default\n", customPath)
		} else {
			data = custom
		}
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FontManager{parsed: parsed}, nil
}

// Face returns a face at size points (72 DPI, so points equal pixels).
func (fm *FontManager) Face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// drawLabel draws text with its baseline at y, horizontally centered in
// [x0, x1). Text wider than the span is cut with an ellipsis.
func drawLabel(dst draw.Image, face font.Face, text string, x0, x1, y int, col color.Color) {
	text = fitText(face, text, x1-x0)
	width := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x0+(x1-x0-width)/2, y),
	}
	d.DrawString(text)
}

// fitText shortens text until it fits maxWidth pixels.
func fitText(face font.Face, text string, maxWidth int) string {
	if font.MeasureString(face, text).Ceil() <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		s := string(runes) + "…"
		if font.MeasureString(face, s).Ceil() <= maxWidth {
			return s
		}
	}
	return ""
}
