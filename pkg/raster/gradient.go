// gradient.go — Two-color linear gradient canvases.
package raster

import (
	"fmt"
	"image"
	"image/color"
)

// Direction selects the gradient axis.
type Direction int

const (
	// Vertical interpolates from the top row to the bottom row.
	Vertical Direction = iota
	// Horizontal interpolates from the left column to the right column.
	Horizontal
)

// ParseDirection maps "vertical"/"horizontal" (or "") to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("unknown gradient direction %q", s)
}

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// NewGradient creates a canvas where each row (or column) is interpolated
// between from and to by t = index/extent.
func NewGradient(w, h int, from, to color.RGBA, dir Direction) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}

	if dir == Horizontal {
		row := img.Pix[:4*w]
		for x := 0; x < w; x++ {
			putRGBA(row[4*x:], Lerp(from, to, float64(x)/float64(w)))
		}
		for y := 1; y < h; y++ {
			copy(img.Pix[y*img.Stride:], row)
		}
		return img
	}

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+4*w]
		putRGBA(row, Lerp(from, to, float64(y)/float64(h)))
		// Double the filled prefix until the row is complete.
		for n := 4; n < len(row); n *= 2 {
			copy(row[n:], row[:n])
		}
	}
	return img
}

func putRGBA(p []uint8, c color.RGBA) {
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 255
}
