package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// tagSuffix marks files owned by the tag store inside its directory.
const tagSuffix = ".tag"

// TagStore records predicate evaluations as tag files, one per predicate
// name. A tag file's presence means "evaluated this invocation"; its
// mtime encodes the result: the evaluation time for "updated", the epoch
// for "not updated". File names are the xxhash of the predicate name, so
// arbitrary names never produce illegal paths.
//
// The store directory is cleared on construction: tags are valid for a
// single build invocation only.
type TagStore struct {
	dir string
}

// NewTagStore creates the store directory if needed and removes tags left
// over from previous invocations.
func NewTagStore(dir string) (*TagStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create tag directory"), "dir", dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read tag directory"), "dir", dir)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), tagSuffix) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to clear stale tag"), "tag", entry.Name())
		}
	}
	return &TagStore{dir: dir}, nil
}

// Get reports whether name was evaluated this invocation and with which
// result.
func (t *TagStore) Get(name string) (bool, bool, error) {
	info, err := os.Stat(t.tagPath(name))
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, false, nil
		}
		return false, false, zerr.With(zerr.Wrap(err, "failed to stat tag"), "predicate", name)
	}
	return info.ModTime().Unix() > 0, true, nil
}

// Put records the evaluation result for name.
func (t *TagStore) Put(name string, updated bool) error {
	path := t.tagPath(name)
	f, err := os.Create(path) //nolint:gosec // path derives from a hash
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create tag"), "predicate", name)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close tag"), "predicate", name)
	}
	if !updated {
		epoch := time.Unix(0, 0)
		if err := os.Chtimes(path, epoch, epoch); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to mark tag"), "predicate", name)
		}
	}
	return nil
}

func (t *TagStore) tagPath(name string) string {
	return filepath.Join(t.dir, fmt.Sprintf("%016x%s", xxhash.Sum64String(name), tagSuffix))
}
