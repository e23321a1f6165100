// Package fs provides filesystem-backed freshness sources: modification
// time stamps for path targets and the predicate tag store.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"time"

	"go.trai.ch/zerr"
)

// Stamper reads modification times from the local filesystem.
type Stamper struct{}

// NewStamper creates a Stamper.
func NewStamper() *Stamper {
	return &Stamper{}
}

// Stamp returns path's mtime. A missing path is not an error; it reports
// exists=false, which the resolver treats as "always stale".
func (s *Stamper) Stamp(path string) (time.Time, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, zerr.With(zerr.Wrap(err, "failed to stat target"), "path", path)
	}
	return info.ModTime(), true, nil
}
