// noise.go — Uniform per-pixel noise post-processing.
package raster

import (
	"image"
	"math/rand/v2"
)

// AddNoise adds independent uniform noise in [-k, k] to every color channel of
// every pixel and clamps the result to [0, 255]. Alpha is left unchanged.
// The canvas is modified in place and returned.
func AddNoise(img *image.RGBA, k int, rng *rand.Rand) *image.RGBA {
	if k <= 0 {
		return img
	}
	span := 2*k + 1
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		row := img.Pix[off : off+4*b.Dx()]
		for i := 0; i < len(row); i += 4 {
			row[i] = clamp8(int(row[i]) + rng.IntN(span) - k)
			row[i+1] = clamp8(int(row[i+1]) + rng.IntN(span) - k)
			row[i+2] = clamp8(int(row[i+2]) + rng.IntN(span) - k)
		}
	}
	return img
}
