// bmp.go - 24-bit uncompressed BMP writer.
// Manually constructs BMP file headers (BITMAPFILEHEADER + BITMAPINFOHEADER) and
// handles BGR pixel ordering and bottom-up rows as required by the format.
package generator

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"
)

const bmpHeaderSize = 54

// writeBMP encodes img as a bottom-up 24-bit BMP. Alpha is dropped.
func writeBMP(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("encode BMP: empty image")
	}

	rowSize := ((width*3 + 3) / 4) * 4 // Row size padded to 4 bytes
	pixelDataSize := rowSize * height
	fileSize := bmpHeaderSize + pixelDataSize

	header := make([]byte, bmpHeaderSize)

	// BMP File Header (14 bytes)
	header[0] = 'B'
	header[1] = 'M'
	binary.LittleEndian.PutUint32(header[2:6], uint32(fileSize))
	binary.LittleEndian.PutUint32(header[10:14], bmpHeaderSize) // Pixel data offset

	// DIB Header (40 bytes) - BITMAPINFOHEADER
	dib := header[14:]
	binary.LittleEndian.PutUint32(dib[0:4], 40)              // Header size
	binary.LittleEndian.PutUint32(dib[4:8], uint32(width))   // Width
	binary.LittleEndian.PutUint32(dib[8:12], uint32(height)) // Height (positive = bottom-up)
	binary.LittleEndian.PutUint16(dib[12:14], 1)             // Color planes
	binary.LittleEndian.PutUint16(dib[14:16], 24)            // Bits per pixel
	binary.LittleEndian.PutUint32(dib[20:24], uint32(pixelDataSize))

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("write BMP header: %w", err)
	}

	row := make([]byte, rowSize)
	rgba, _ := img.(*image.RGBA)
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		if rgba != nil {
			pix := rgba.Pix[rgba.PixOffset(b.Min.X, y):]
			for x := range width {
				row[x*3] = pix[x*4+2]
				row[x*3+1] = pix[x*4+1]
				row[x*3+2] = pix[x*4]
			}
		} else {
			for x := range width {
				c := color.RGBAModel.Convert(img.At(b.Min.X+x, y)).(color.RGBA)
				row[x*3] = c.B
				row[x*3+1] = c.G
				row[x*3+2] = c.R
			}
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("write BMP pixels: %w", err)
		}
	}

	return bw.Flush()
}
