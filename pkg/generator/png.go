// png.go — PNG writer.
package generator

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
)

// writePNG encodes img as PNG. Opaque RGBA canvases come out as 8-bit
// truecolor without an alpha channel.
func writePNG(w io.Writer, img image.Image, level png.CompressionLevel) error {
	bw := bufio.NewWriter(w)
	enc := &png.Encoder{CompressionLevel: level}
	if err := enc.Encode(bw, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write PNG: %w", err)
	}
	return nil
}
