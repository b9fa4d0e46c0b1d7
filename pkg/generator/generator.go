// Package generator writes rendered backgrounds to disk and drives batch runs.
//
// All output follows one pipeline: render an image.Image first, then encode
// it as PNG or 24-bit BMP chosen by the file extension.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Config holds encoding parameters.
type Config struct {
	Compression png.CompressionLevel // PNG only (default: png.DefaultCompression)
}

// Formats lists the supported output extensions.
var Formats = []string{".png", ".bmp"}

// ParseCompression maps a CLI name to a PNG compression level.
func ParseCompression(s string) (png.CompressionLevel, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return png.DefaultCompression, nil
	case "speed", "fast":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	case "none":
		return png.NoCompression, nil
	}
	return png.DefaultCompression, fmt.Errorf("unknown compression %q: use default, speed, best or none", s)
}

// Save writes img to output. The format is inferred from the file extension:
//   - ".png" → PNG image
//   - ".bmp" → 24-bit uncompressed bitmap
func Save(output string, img image.Image, cfg Config) error {
	ext := strings.ToLower(filepath.Ext(output))
	if !slices.Contains(Formats, ext) {
		return unsupported(ext)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := Encode(f, ext, img, cfg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}
	return nil
}

// Encode writes img to w. The format is specified by ext (".png" or ".bmp").
func Encode(w io.Writer, ext string, img image.Image, cfg Config) error {
	switch strings.ToLower(ext) {
	case ".png":
		return writePNG(w, img, cfg.Compression)
	case ".bmp":
		return writeBMP(w, img)
	default:
		return unsupported(ext)
	}
}

// SwapExt replaces the extension of file with ext.
func SwapExt(file, ext string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + ext
}

func unsupported(ext string) error {
	return fmt.Errorf("unsupported format %q: use .png or .bmp", ext)
}
