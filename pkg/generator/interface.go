// Package generator provides background encoding and batch generation.
package generator

import (
	"context"
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/xob0t/GoBackdrop/pkg/theme"
)

// Generator is the interface for background generators. Implementations must
// draw all randomness from rng.
type Generator interface {
	Generate(ctx context.Context, rng *rand.Rand) (image.Image, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, rng *rand.Rand) (image.Image, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, rng *rand.Rand) (image.Image, error) {
	return f(ctx, rng)
}

// Guard wraps g so that a panic inside Generate is returned as an error.
func Guard(g Generator) Generator {
	return GeneratorFunc(func(ctx context.Context, rng *rand.Rand) (img image.Image, err error) {
		defer func() {
			if p := recover(); p != nil {
				img, err = nil, fmt.Errorf("panic: %v", p)
			}
		}()
		return g.Generate(ctx, rng)
	})
}

// ThemeGenerator renders th with r.
func ThemeGenerator(r *theme.Renderer, th theme.Theme) Generator {
	return GeneratorFunc(func(ctx context.Context, rng *rand.Rand) (image.Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return r.Render(th, rng)
	})
}

// Entries builds one batch entry per theme, in order.
func Entries(r *theme.Renderer, themes []theme.Theme) []Entry {
	entries := make([]Entry, 0, len(themes))
	for _, th := range themes {
		entries = append(entries, Entry{
			ID:          th.ID,
			File:        th.File,
			Name:        th.Name,
			Description: th.Description,
			Generator:   ThemeGenerator(r, th),
		})
	}
	return entries
}
