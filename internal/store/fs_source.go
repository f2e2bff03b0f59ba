package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/insightai/site/internal/model"
)

// FSSource reads <locale>.json documents from a filesystem
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates a source over fsys, e.g. the embedded locales
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// NewDirSource creates a source over a directory on disk
func NewDirSource(dir string) *FSSource {
	return NewFSSource(os.DirFS(dir))
}

// Messages returns the raw document for a locale
func (s *FSSource) Messages(ctx context.Context, locale model.Locale) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := string(locale) + ".json"
	data, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
