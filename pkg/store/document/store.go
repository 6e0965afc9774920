package document

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/deal-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

const indent = "  "

// Store reads and writes deals documents.
type Store interface {
	Load(ctx context.Context, path string) (*domain.DealsDocument, error)
	Save(ctx context.Context, path string, doc *domain.DealsDocument) error
}

type fileStore struct{}

// NewStore returns a Store backed by JSON files on the local filesystem.
func NewStore() Store {
	return &fileStore{}
}

func (s *fileStore) Load(ctx context.Context, path string) (*domain.DealsDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deals file: %w", err)
	}

	var doc domain.DealsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse deals file %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("deals", len(doc.Deals)).
		Msg("loaded deals document")

	return &doc, nil
}

// Save writes doc as 2-space indented JSON. The file is written to a temporary
// sibling first and renamed into place, so readers never observe a partial document.
func (s *fileStore) Save(ctx context.Context, path string, doc *domain.DealsDocument) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write deals file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close deals file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to move deals file into place: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("deals", len(doc.Deals)).
		Msg("saved deals document")

	return nil
}

// Encode renders doc the way Save writes it.
func Encode(doc *domain.DealsDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode deals document: %w", err)
	}
	return buf.Bytes(), nil
}
