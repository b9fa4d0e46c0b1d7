// preview.go — Contact sheet: a labeled grid of downscaled backgrounds.
package generator

import (
	"errors"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Tile is one image on a contact sheet.
type Tile struct {
	Label string
	Image image.Image
}

// SheetOptions configures ContactSheet.
type SheetOptions struct {
	Columns    int        // default: 3
	TileWidth  int        // default: 320; tile height follows the image aspect
	Padding    int        // default: 16
	LabelSize  float64    // default: 18
	Background color.RGBA // default: near black
	Foreground color.RGBA // default: white
	FontPath   string     // empty = embedded Go font
}

func (o *SheetOptions) defaults() {
	if o.Columns <= 0 {
		o.Columns = 3
	}
	if o.TileWidth <= 0 {
		o.TileWidth = 320
	}
	if o.Padding <= 0 {
		o.Padding = 16
	}
	if o.LabelSize <= 0 {
		o.LabelSize = 18
	}
	if o.Background == (color.RGBA{}) {
		o.Background = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	}
	if o.Foreground == (color.RGBA{}) {
		o.Foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}

// ContactSheet lays tiles out left to right, top to bottom. Each tile is
// scaled with Catmull-Rom to TileWidth and labeled underneath.
func ContactSheet(tiles []Tile, opts SheetOptions) (*image.RGBA, error) {
	if len(tiles) == 0 {
		return nil, errors.New("contact sheet: no tiles")
	}
	opts.defaults()

	fm, err := NewFontManager(opts.FontPath)
	if err != nil {
		return nil, err
	}
	face, err := fm.Face(opts.LabelSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	// Cells share the tallest tile's height so rows line up.
	tileH := 0
	for _, t := range tiles {
		b := t.Image.Bounds()
		if b.Dx() <= 0 {
			return nil, errors.New("contact sheet: empty tile " + t.Label)
		}
		tileH = max(tileH, opts.TileWidth*b.Dy()/b.Dx())
	}
	labelH := int(opts.LabelSize * 1.6)
	cellW := opts.TileWidth + opts.Padding
	cellH := tileH + labelH + opts.Padding

	cols := min(opts.Columns, len(tiles))
	rows := (len(tiles) + cols - 1) / cols
	sheet := image.NewRGBA(image.Rect(0, 0, cols*cellW+opts.Padding, rows*cellH+opts.Padding))
	xdraw.Draw(sheet, sheet.Bounds(), &image.Uniform{C: opts.Background}, image.Point{}, xdraw.Src)

	for i, t := range tiles {
		x := opts.Padding + (i%cols)*cellW
		y := opts.Padding + (i/cols)*cellH
		b := t.Image.Bounds()
		h := opts.TileWidth * b.Dy() / b.Dx()
		dst := image.Rect(x, y, x+opts.TileWidth, y+h)
		xdraw.CatmullRom.Scale(sheet, dst, t.Image, b, xdraw.Src, nil)

		baseline := y + tileH + int(opts.LabelSize*1.2)
		drawLabel(sheet, face, t.Label, x, x+opts.TileWidth, baseline, opts.Foreground)
	}
	return sheet, nil
}
