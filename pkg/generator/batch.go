// batch.go — Generate a fixed list of backgrounds into one directory.
//
// Each entry is rendered and saved independently: a failure (error or panic)
// is recorded and reported, and the batch moves on to the next entry.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Entry is one background to generate.
type Entry struct {
	ID          string
	File        string // output file name inside the batch directory
	Name        string
	Description string
	Generator   Generator
}

// Result is the outcome of one entry.
type Result struct {
	Entry   Entry
	Path    string
	Err     error
	Elapsed time.Duration
}

// Report collects the results of a batch run in entry order.
type Report struct {
	Dir     string
	Seed    int64
	Results []Result
}

// Failed returns the number of entries that did not produce a file.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Err joins the errors of all failed entries, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Entry.File, res.Err))
		}
	}
	return errors.Join(errs...)
}

// Batch generates Entries into Dir.
type Batch struct {
	Entries  []Entry
	Dir      string
	Seed     int64
	Parallel int    // entries rendered at once (default: 1)
	Format   string // output extension overriding each entry's (".png" or ".bmp")
	Config   Config

	// Out receives progress lines. Nil discards them.
	Out io.Writer

	mu sync.Mutex
}

// Run creates the output directory and generates every entry. The returned
// error is non-nil only when the batch could not start; per-entry failures
// are in the report.
func (b *Batch) Run(ctx context.Context) (*Report, error) {
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	report := &Report{
		Dir:     b.Dir,
		Seed:    b.Seed,
		Results: make([]Result, len(b.Entries)),
	}

	if b.Parallel <= 1 {
		for i, e := range b.Entries {
			report.Results[i] = b.runOne(ctx, e)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(b.Parallel)
		for i, e := range b.Entries {
			g.Go(func() error {
				report.Results[i] = b.runOne(ctx, e)
				return nil
			})
		}
		_ = g.Wait()
	}

	b.printf("%s\n", separator)
	b.printf("Background generation complete! %d/%d saved\n", len(b.Entries)-report.Failed(), len(b.Entries))
	b.printf("Images saved in: %s\n", b.Dir)
	return report, nil
}

const separator = "--------------------------------------------------"

// runOne generates and saves a single entry. Panics are recovered into the
// entry's error.
func (b *Batch) runOne(ctx context.Context, e Entry) (res Result) {
	file := e.File
	if b.Format != "" {
		file = SwapExt(file, b.Format)
	}
	res = Result{Entry: e, Path: filepath.Join(b.Dir, file)}
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("panic: %v", p)
		}
		res.Elapsed = time.Since(start)
		if res.Err != nil {
			b.printf("✗ Failed to generate %s: %v\n", file, res.Err)
			return
		}
		b.printf("✓ Saved %s (%s)\n", file, res.Elapsed.Round(time.Millisecond))
	}()

	if e.Generator == nil {
		res.Err = errors.New("no generator")
		return res
	}
	b.printf("Generating %s background...\n", nameOf(e))

	img, err := Guard(e.Generator).Generate(ctx, NewRNG(b.Seed, e.File))
	if err != nil {
		res.Err = err
		return res
	}
	res.Err = Save(res.Path, img, b.Config)
	return res
}

func (b *Batch) printf(format string, args ...any) {
	if b.Out == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintf(b.Out, format, args...)
}

func nameOf(e Entry) string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID
}
