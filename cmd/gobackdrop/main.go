// GoBackdrop — Procedural theme backgrounds for the game's maps.
//
// Usage:
//
//	gobackdrop [-o <dir>] [--mode landscape|topdown] [options]
//	gobackdrop list [--mode <mode>] [--preset <path>]
//	gobackdrop init [--preset <path>] [--data <path>]
//	gobackdrop preview [-o <file>] [options]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/xob0t/GoBackdrop/pkg/generator"
	"github.com/xob0t/GoBackdrop/pkg/theme"
)

func main() {
	args := os.Args[1:]
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	var err error
	switch cmd {
	case "list":
		err = runList(args[1:])
	case "init":
		err = runInit(args[1:])
	case "preview":
		err = runPreview(args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		// Default: generate all backgrounds (all flags on root).
		err = run(args)
	}
	if err != nil {
		fatal(err)
	}
}

// sourceFlags selects the preset, overrides and themes to work on.
type sourceFlags struct {
	mode       string
	presetPath string
	dataPath   string
	themes     string
}

func (s *sourceFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&s.mode, "mode", theme.Landscape, "Built-in preset: landscape or topdown")
	fs.StringVar(&s.presetPath, "preset", "", "Path to a preset JSON (overrides --mode)")
	fs.StringVar(&s.dataPath, "data", "", "Path to an overrides JSON (optional)")
	fs.StringVar(&s.themes, "theme", "", "Comma-separated theme ids (default: all)")
}

// load resolves the preset and the themes to render. Warnings go to stderr.
func (s *sourceFlags) load() (*theme.Preset, []theme.Theme, error) {
	var preset *theme.Preset
	var err error
	if s.presetPath != "" {
		preset, err = theme.LoadPreset(s.presetPath)
	} else {
		preset, err = theme.Builtin(s.mode)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load preset: %w", err)
	}
	warn(theme.Validate(preset))

	var ov *theme.Overrides
	if s.dataPath != "" {
		var warnings []string
		ov, warnings, err = theme.LoadOverrides(s.dataPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load overrides: %w", err)
		}
		warn(warnings)
		warn(theme.ValidateOverrides(ov, preset))
	}

	themes := theme.MergeOverrides(preset, ov)
	if s.themes != "" {
		themes, err = theme.Select(themes, strings.Split(s.themes, ","))
		if err != nil {
			return nil, nil, err
		}
	}
	if len(themes) == 0 {
		return nil, nil, fmt.Errorf("no themes to render")
	}
	return preset, themes, nil
}

// seedFlag is an optional seed; unset means a fresh random one.
type seedFlag struct {
	value int64
	set   bool
}

func (s *seedFlag) String() string { return fmt.Sprint(s.value) }

func (s *seedFlag) Set(v string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid seed %q", v)
	}
	s.value, s.set = n, true
	return nil
}

func (s *seedFlag) resolve() int64 {
	if !s.set {
		s.value = time.Now().UnixNano()
	}
	return s.value
}

func run(args []string) error {
	fs := flag.NewFlagSet("gobackdrop", flag.ExitOnError)

	var (
		src         sourceFlags
		outDir      string
		seed        seedFlag
		size        int
		parallel    int
		format      string
		compression string
		manifest    bool
	)

	src.register(fs)
	fs.StringVar(&outDir, "o", "assets/backgrounds", "Output directory")
	fs.StringVar(&outDir, "out", "assets/backgrounds", "Output directory")
	fs.Var(&seed, "seed", "Random seed (default: random, printed)")
	fs.IntVar(&size, "size", 0, "Square canvas size in pixels (default: preset canvas)")
	fs.IntVar(&parallel, "parallel", 1, "Themes rendered at once")
	fs.StringVar(&format, "format", "png", "Output format: png or bmp")
	fs.StringVar(&compression, "compression", "default", "PNG compression: default, speed, best or none")
	fs.BoolVar(&manifest, "manifest", false, "Also write backgrounds.json")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		printUsage()
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	level, err := generator.ParseCompression(compression)
	if err != nil {
		return err
	}
	ext := "." + strings.TrimPrefix(strings.ToLower(format), ".")
	if ext != ".png" && ext != ".bmp" {
		return fmt.Errorf("unknown format %q: use png or bmp", format)
	}

	preset, themes, err := src.load()
	if err != nil {
		return err
	}

	renderer := theme.NewRenderer(preset.Canvas)
	if size > 0 {
		renderer.Width, renderer.Height = size, size
	}

	b := &generator.Batch{
		Entries:  generator.Entries(renderer, themes),
		Dir:      outDir,
		Seed:     seed.resolve(),
		Parallel: parallel,
		Format:   ext,
		Config:   generator.Config{Compression: level},
		Out:      os.Stdout,
	}

	fmt.Printf("Generating %d background images...\n", len(b.Entries))
	fmt.Printf("Output directory: %s\n", outDir)
	fmt.Printf("Image size: %dx%d\n", renderer.Width, renderer.Height)
	fmt.Printf("Seed: %d\n", b.Seed)
	fmt.Println(strings.Repeat("-", 50))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := b.Run(ctx)
	if err != nil {
		return err
	}

	if manifest {
		path, err := generator.WriteManifest(outDir, report)
		if err != nil {
			return err
		}
		fmt.Printf("Manifest: %s\n", path)
	}

	fmt.Println("\nTo use these backgrounds:")
	fmt.Println("1. Rebuild the game so it picks up the new assets")
	fmt.Println("2. Select your background from the menu")
	fmt.Printf("Reproduce this set with --seed %d\n", b.Seed)

	if n := report.Failed(); n > 0 {
		return fmt.Errorf("%d of %d backgrounds failed", n, len(report.Results))
	}
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var src sourceFlags
	src.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	preset, themes, err := src.load()
	if err != nil {
		return err
	}
	preset.Themes = themes
	fmt.Print(theme.FormatCatalog(preset))
	fmt.Printf("\nLayer kinds: %s\n", strings.Join(theme.Kinds(), ", "))
	return nil
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	var mode, presetOut, dataOut string
	fs.StringVar(&mode, "mode", theme.Landscape, "Built-in preset to copy: landscape or topdown")
	fs.StringVar(&presetOut, "preset", "preset.json", "Output path for the editable preset")
	fs.StringVar(&dataOut, "data", "overrides.json", "Output path for sample overrides")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := theme.BuiltinJSON(mode)
	if err != nil {
		return err
	}
	if err := os.WriteFile(presetOut, p, 0o644); err != nil {
		return fmt.Errorf("write preset: %w", err)
	}
	if err := os.WriteFile(dataOut, []byte(exampleOverrides), 0o644); err != nil {
		return fmt.Errorf("write overrides: %w", err)
	}

	fmt.Printf("Created: %s, %s\n", presetOut, dataOut)
	fmt.Printf("Run: gobackdrop --preset %s --data %s\n", presetOut, dataOut)
	return nil
}

const exampleOverrides = `{
  "themes": {
    "forest": {
      "noise": 8,
      "layers": {
        "canopies": { "count": 600, "zIndex": 1 }
      }
    },
    "city": {
      "background": { "type": "solid", "color": "#2f2f3a" }
    },
    "space": { "visible": false }
  }
}
`

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	var (
		src      sourceFlags
		output   string
		seed     seedFlag
		tile     int
		columns  int
		fontPath string
	)
	src.register(fs)
	fs.StringVar(&output, "o", "preview.png", "Output file (.png or .bmp)")
	fs.StringVar(&output, "out", "preview.png", "Output file (.png or .bmp)")
	fs.Var(&seed, "seed", "Random seed (default: random, printed)")
	fs.IntVar(&tile, "tile", 320, "Tile width on the sheet in pixels")
	fs.IntVar(&columns, "columns", 3, "Tiles per row")
	fs.StringVar(&fontPath, "font", "", "TTF for labels (default: embedded Go font)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	preset, themes, err := src.load()
	if err != nil {
		return err
	}

	// Render at twice the tile width so the downscale has detail to work with.
	renderer := theme.NewRenderer(preset.Canvas)
	renderer.Width = max(tile, 1) * 2
	renderer.Height = renderer.Width * max(preset.Canvas.Height, 1) / max(preset.Canvas.Width, 1)

	s := seed.resolve()
	fmt.Printf("Rendering %d previews at %dx%d (seed %d)\n", len(themes), renderer.Width, renderer.Height, s)

	tiles := make([]generator.Tile, 0, len(themes))
	for _, th := range themes {
		g := generator.Guard(generator.ThemeGenerator(renderer, th))
		img, err := g.Generate(context.Background(), generator.NewRNG(s, th.File))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}
		tiles = append(tiles, generator.Tile{Label: th.Name, Image: img})
	}

	sheet, err := generator.ContactSheet(tiles, generator.SheetOptions{
		Columns:   columns,
		TileWidth: tile,
		FontPath:  fontPath,
	})
	if err != nil {
		return err
	}
	if err := generator.Save(output, sheet, generator.Config{}); err != nil {
		return err
	}
	fmt.Printf("Done: %s\n", output)
	return nil
}

func warn(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`GoBackdrop — Procedural Theme Backgrounds (Pure Go)

USAGE:
    gobackdrop [options]
    gobackdrop list [--mode <mode>] [--preset <path>] [--data <path>]
    gobackdrop init [--mode <mode>] [--preset <path>] [--data <path>]
    gobackdrop preview [-o <file>] [options]

GENERATE:
    -o, --out <dir>          Output directory (default: assets/backgrounds)
    --mode <mode>            Built-in preset: landscape (default) or topdown
    --preset <path>          Preset JSON (replaces --mode)
    --data <path>            Overrides JSON (optional)
    --theme <ids>            Comma-separated themes to render (default: all)
    --seed <n>               Random seed (default: random, printed)
    --size <px>              Square canvas size (default: 5000)
    --parallel <n>           Themes rendered at once (default: 1, ~100 MB each at 5000px)
    --format <fmt>           png (default) or bmp
    --compression <level>    PNG: default, speed, best or none
    --manifest               Also write backgrounds.json

PREVIEW:
    -o, --out <file>         Contact sheet path (default: preview.png)
    --tile <px>              Tile width (default: 320)
    --columns <n>            Tiles per row (default: 3)
    --font <path>            TTF for labels (default: embedded Go font)

EXAMPLES:
    gobackdrop
    gobackdrop --mode topdown --seed 42 --manifest
    gobackdrop --theme forest,space --size 2048 --parallel 2
    gobackdrop list --mode topdown
    gobackdrop init && gobackdrop --preset preset.json --data overrides.json
    gobackdrop preview --mode topdown -o topdown.png
`)
}
