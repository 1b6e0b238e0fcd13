package catalog

import (
	"errors"

	"github.com/Aaryadeep-Coder/cine-stream/internal/store"
)

// ErrNotFound indicates the requested entity does not exist.
var ErrNotFound = errors.New("catalog: not found")

// ErrInvalidInput indicates a caller supplied a missing or malformed argument.
var ErrInvalidInput = errors.New("catalog: invalid input")

// Catalog aggregates the query and progress surfaces over a single store.
type Catalog struct {
	Movies   *Movies
	Progress *Progress
}

// New constructs a Catalog backed by the provided store.
func New(st *store.Store) *Catalog {
	return &Catalog{
		Movies:   &Movies{store: st},
		Progress: &Progress{store: st},
	}
}
