package generator

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xob0t/GoBackdrop/pkg/theme"
)

func solidGenerator(c color.RGBA) Generator {
	return GeneratorFunc(func(context.Context, *rand.Rand) (image.Image, error) {
		img := image.NewRGBA(image.Rect(0, 0, 8, 6))
		for i := 0; i < len(img.Pix); i += 4 {
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
		}
		return img, nil
	})
}

func TestBatchIsolatesFailuresAndPanics(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets", "backgrounds")
	var out bytes.Buffer
	b := &Batch{
		Dir: dir,
		Out: &out,
		Entries: []Entry{
			{ID: "forest", File: "forest.png", Generator: solidGenerator(color.RGBA{G: 139, A: 255})},
			{ID: "desert", File: "desert.png", Generator: GeneratorFunc(func(context.Context, *rand.Rand) (image.Image, error) {
				return nil, errors.New("sand storm")
			})},
			{ID: "ocean", File: "ocean.png", Generator: GeneratorFunc(func(context.Context, *rand.Rand) (image.Image, error) {
				panic("sea monster")
			})},
			{ID: "space", File: "space.png", Generator: solidGenerator(color.RGBA{B: 20, A: 255})},
		},
	}

	report, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Failed() != 2 {
		t.Fatalf("expected 2 failures, got %d", report.Failed())
	}
	if err := report.Err(); err == nil || !strings.Contains(err.Error(), "sand storm") || !strings.Contains(err.Error(), "sea monster") {
		t.Fatalf("expected joined failure errors, got %v", err)
	}

	for _, name := range []string{"forest.png", "space.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("expected %s written: %v", name, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("expected valid PNG %s: %v", name, err)
		}
		if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
			t.Fatalf("expected 8x6 %s, got %v", name, img.Bounds())
		}
	}
	for _, name := range []string{"desert.png", "ocean.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Fatalf("expected no %s, stat err=%v", name, err)
		}
	}

	log := out.String()
	for _, want := range []string{
		"✓ Saved forest.png",
		"✗ Failed to generate desert.png: sand storm",
		"✗ Failed to generate ocean.png: panic: sea monster",
		"✓ Saved space.png",
		"2/4 saved",
	} {
		if !strings.Contains(log, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, log)
		}
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	g := Guard(GeneratorFunc(func(context.Context, *rand.Rand) (image.Image, error) {
		var peaks []int
		_ = make([]int, 0, len(peaks)-5)
		return nil, nil
	}))
	img, err := g.Generate(context.Background(), NewRNG(1, "mountains.png"))
	if img != nil || err == nil || !strings.HasPrefix(err.Error(), "panic: ") {
		t.Fatalf("expected recovered panic error, got %v, %v", img, err)
	}

	img, err = Guard(solidGenerator(color.RGBA{A: 255})).Generate(context.Background(), NewRNG(1, "x"))
	if err != nil || img == nil {
		t.Fatalf("expected passthrough result, got %v, %v", img, err)
	}
}

func themeBatch(t *testing.T, dir string, seed int64, parallel int) *Batch {
	t.Helper()
	p, err := theme.Builtin(theme.Landscape)
	if err != nil {
		t.Fatal(err)
	}
	r := &theme.Renderer{Width: 64, Height: 48, Reference: p.Canvas.Reference}
	return &Batch{
		Entries:  Entries(r, p.Themes),
		Dir:      dir,
		Seed:     seed,
		Parallel: parallel,
	}
}

func readAll(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	out := make(map[string][]byte, len(files))
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			t.Fatal(err)
		}
		out[f.Name()] = data
	}
	return out
}

func TestBatchSeedDeterminismAndParallelEquivalence(t *testing.T) {
	root := t.TempDir()
	runs := []struct {
		name     string
		seed     int64
		parallel int
	}{
		{name: "a", seed: 99, parallel: 1},
		{name: "b", seed: 99, parallel: 1},
		{name: "parallel", seed: 99, parallel: 4},
		{name: "other", seed: 100, parallel: 1},
	}
	results := map[string]map[string][]byte{}
	for _, run := range runs {
		dir := filepath.Join(root, run.name)
		report, err := themeBatch(t, dir, run.seed, run.parallel).Run(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if err := report.Err(); err != nil {
			t.Fatalf("run %s: %v", run.name, err)
		}
		results[run.name] = readAll(t, dir)
	}

	if len(results["a"]) != 6 {
		t.Fatalf("expected 6 files, got %d", len(results["a"]))
	}
	for name, data := range results["a"] {
		if !bytes.Equal(data, results["b"][name]) {
			t.Fatalf("expected identical %s for the same seed", name)
		}
		if !bytes.Equal(data, results["parallel"][name]) {
			t.Fatalf("expected parallel %s to equal sequential", name)
		}
		if bytes.Equal(data, results["other"][name]) {
			t.Fatalf("expected %s to change with the seed", name)
		}
	}
}

func TestNewRNGDependsOnSeedAndSalt(t *testing.T) {
	a := NewRNG(1, "forest.png").Uint64()
	if b := NewRNG(1, "forest.png").Uint64(); a != b {
		t.Fatalf("expected same stream for same seed and salt")
	}
	if c := NewRNG(1, "desert.png").Uint64(); a == c {
		t.Fatalf("expected salt to change the stream")
	}
	if d := NewRNG(2, "forest.png").Uint64(); a == d {
		t.Fatalf("expected seed to change the stream")
	}
}

func TestEncodeBMPHeaderAndPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255}) // top-left
	img.SetRGBA(0, 1, color.RGBA{R: 40, G: 50, B: 60, A: 255}) // bottom-left

	var buf bytes.Buffer
	if err := Encode(&buf, ".bmp", img, Config{}); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	const rowSize = 12 // 3*3 bytes padded to 4
	if len(data) != 54+rowSize*2 {
		t.Fatalf("expected %d bytes, got %d", 54+rowSize*2, len(data))
	}
	if string(data[:2]) != "BM" {
		t.Fatalf("expected BM signature, got %q", data[:2])
	}
	if got := binary.LittleEndian.Uint32(data[2:6]); got != uint32(len(data)) {
		t.Fatalf("expected file size %d, got %d", len(data), got)
	}
	if got := binary.LittleEndian.Uint32(data[10:14]); got != 54 {
		t.Fatalf("expected pixel offset 54, got %d", got)
	}
	if w, h := binary.LittleEndian.Uint32(data[18:22]), binary.LittleEndian.Uint32(data[22:26]); w != 3 || h != 2 {
		t.Fatalf("expected 3x2, got %dx%d", w, h)
	}
	if bpp := binary.LittleEndian.Uint16(data[28:30]); bpp != 24 {
		t.Fatalf("expected 24 bpp, got %d", bpp)
	}
	// Rows are stored bottom-up in BGR order.
	if got := data[54:57]; !bytes.Equal(got, []byte{60, 50, 40}) {
		t.Fatalf("expected bottom-left BGR first, got %v", got)
	}
	if got := data[54+rowSize : 54+rowSize+3]; !bytes.Equal(got, []byte{30, 20, 10}) {
		t.Fatalf("expected top-left BGR in last row, got %v", got)
	}
}

func TestEncodePNGIsOpaqueTruecolor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	var buf bytes.Buffer
	if err := Encode(&buf, ".PNG", img, Config{Compression: png.BestSpeed}); err != nil {
		t.Fatal(err)
	}
	// IHDR color type lives at byte 25: 2 = truecolor RGB.
	if got := buf.Bytes()[25]; got != 2 {
		t.Fatalf("expected truecolor PNG, got color type %d", got)
	}
}

func TestSaveRejectsUnknownFormat(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "forest.gif"), image.NewRGBA(image.Rect(0, 0, 1, 1)), Config{})
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in   string
		want png.CompressionLevel
	}{
		{in: "", want: png.DefaultCompression},
		{in: "speed", want: png.BestSpeed},
		{in: "BEST", want: png.BestCompression},
		{in: "none", want: png.NoCompression},
	}
	for _, tc := range tests {
		got, err := ParseCompression(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("ParseCompression(%q)=%v,%v want=%v", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseCompression("zip"); err == nil {
		t.Fatalf("expected error for unknown compression")
	}
}

func TestBatchFormatOverride(t *testing.T) {
	dir := t.TempDir()
	b := &Batch{
		Dir:     dir,
		Format:  ".bmp",
		Entries: []Entry{{ID: "city", File: "city.png", Generator: solidGenerator(color.RGBA{R: 64, G: 64, B: 64, A: 255})}},
	}
	report, err := b.Run(context.Background())
	if err != nil || report.Err() != nil {
		t.Fatalf("Run: %v %v", err, report.Err())
	}
	if _, err := os.Stat(filepath.Join(dir, "city.bmp")); err != nil {
		t.Fatalf("expected city.bmp: %v", err)
	}
}

func TestWriteManifestListsSuccessfulEntries(t *testing.T) {
	dir := t.TempDir()
	report := &Report{
		Dir:  dir,
		Seed: 7,
		Results: []Result{
			{Entry: Entry{ID: "forest", Name: "Forest", Description: "Trees."}, Path: filepath.Join(dir, "forest.png")},
			{Entry: Entry{ID: "desert", Name: "Desert"}, Path: filepath.Join(dir, "desert.png"), Err: errors.New("boom")},
		},
	}
	path, err := WriteManifest(dir, report)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if m.Seed != 7 || len(m.Backgrounds) != 1 {
		t.Fatalf("expected one background with seed 7, got %+v", m)
	}
	if got := m.Backgrounds[0]; got.ID != "forest" || got.File != "forest.png" || got.Name != "Forest" {
		t.Fatalf("unexpected manifest entry %+v", got)
	}
}

func TestContactSheetLayout(t *testing.T) {
	tiles := make([]Tile, 4)
	for i := range tiles {
		tiles[i] = Tile{Label: "tile", Image: image.NewRGBA(image.Rect(0, 0, 100, 50))}
	}
	sheet, err := ContactSheet(tiles, SheetOptions{Columns: 3, TileWidth: 40, Padding: 10, LabelSize: 10})
	if err != nil {
		t.Fatal(err)
	}
	// 3 columns of (40+10) plus leading padding; 2 rows of (20 + 16 label + 10).
	if got, want := sheet.Bounds(), image.Rect(0, 0, 160, 102); got != want {
		t.Fatalf("expected sheet bounds %v, got %v", want, got)
	}
	if _, err := ContactSheet(nil, SheetOptions{}); err == nil {
		t.Fatalf("expected error for empty sheet")
	}
}
