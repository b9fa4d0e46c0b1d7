// manifest.go — backgrounds.json listing for the game's background menu.
package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestFile is the manifest's name inside the output directory.
const ManifestFile = "backgrounds.json"

// Manifest describes the backgrounds of one batch run.
type Manifest struct {
	Seed        int64           `json:"seed"`
	Backgrounds []ManifestEntry `json:"backgrounds"`
}

// ManifestEntry is one generated background.
type ManifestEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	File        string `json:"file"`
}

// NewManifest lists the successful entries of report, in entry order.
func NewManifest(report *Report) Manifest {
	m := Manifest{Seed: report.Seed, Backgrounds: []ManifestEntry{}}
	for _, res := range report.Results {
		if res.Err != nil {
			continue
		}
		m.Backgrounds = append(m.Backgrounds, ManifestEntry{
			ID:          res.Entry.ID,
			Name:        res.Entry.Name,
			Description: res.Entry.Description,
			File:        filepath.Base(res.Path),
		})
	}
	return m
}

// WriteManifest writes backgrounds.json into dir and returns its path.
func WriteManifest(dir string, report *Report) (string, error) {
	data, err := json.MarshalIndent(NewManifest(report), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}
