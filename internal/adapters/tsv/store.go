package tsv

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/dendro/pkg/domain"
)

// Suffix is appended to the taxonomy id to name its table file.
const Suffix = "_markers_denormalised.tsv"

// Store implements ports.MarkerStore using the local filesystem.
// It stores one TSV table per taxonomy in a configured directory.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to "markers".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = "markers"
	}
	return &Store{BasePath: basePath}
}

// Path returns the file a taxonomy's table is stored in.
func (s *Store) Path(taxonomy string) string {
	return filepath.Join(s.BasePath, taxonomy+Suffix)
}

// Save writes the table atomically: temp file in the same directory, fsync, rename.
func (s *Store) Save(ctx context.Context, taxonomy string, enriched domain.EnrichedMarkers) error {
	if taxonomy == "" {
		return fmt.Errorf("taxonomy cannot be empty")
	}
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure marker directory: %w", err)
	}
	return WriteFile(s.Path(taxonomy), enriched)
}

// WriteFile writes enriched to path atomically.
func WriteFile(path string, enriched domain.EnrichedMarkers) error {
	var buf bytes.Buffer
	if err := Write(&buf, enriched); err != nil {
		return fmt.Errorf("failed to encode marker table: %w", err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // No-op once renamed
	}()

	if _, err := tmpFile.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists.
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove existing table for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}
	return nil
}

// Load reads the table of a taxonomy.
func (s *Store) Load(ctx context.Context, taxonomy string) (domain.EnrichedMarkers, error) {
	if taxonomy == "" {
		return nil, fmt.Errorf("taxonomy cannot be empty")
	}

	f, err := os.Open(s.Path(taxonomy))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrTaxonomyNotFound
		}
		return nil, fmt.Errorf("failed to open marker table: %w", err)
	}
	defer f.Close()

	enriched, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read marker table: %w", err)
	}
	return enriched, nil
}

// Delete removes the table file.
func (s *Store) Delete(ctx context.Context, taxonomy string) error {
	if taxonomy == "" {
		return fmt.Errorf("taxonomy cannot be empty")
	}

	err := os.Remove(s.Path(taxonomy))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete marker table: %w", err)
	}
	return nil
}

// List returns the taxonomies with a table in the directory.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list marker tables: %w", err)
	}

	var taxonomies []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasSuffix(name, Suffix) && !strings.HasPrefix(name, "tmp-") {
			taxonomies = append(taxonomies, strings.TrimSuffix(name, Suffix))
		}
	}
	return taxonomies, nil
}
