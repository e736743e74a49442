package cashbuddy

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists a ledger between runs.
type Store interface {
	// Load returns the stored ledger, or an empty one if nothing was stored yet.
	Load(ctx context.Context) (*Ledger, error)
	// Save replaces the stored ledger.
	Save(ctx context.Context, ledger *Ledger) error
}

// FileStore stores a ledger in a single JSONL file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store for the JSONL file at path.
func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// Load decodes the ledger file. A missing file is an empty ledger.
func (s *FileStore) Load(_ context.Context) (*Ledger, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.Path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", s.Path, err)
	}
	return ledger, nil
}

// Save writes the ledger to a temporary file in the same directory then
// renames it over the ledger file, so a failed save never leaves a truncated
// ledger behind.
func (s *FileStore) Save(_ context.Context, ledger *Ledger) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", s.Path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", s.Path, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := EncodeLedger(tmp, ledger); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing ledger file %q: %w", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing ledger file %q: %w", s.Path, err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("error replacing ledger file %q: %w", s.Path, err)
	}
	return nil
}
