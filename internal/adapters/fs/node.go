package fs

import (
	"context"
	"path/filepath"

	"github.com/gird-dev/gird/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// StamperNodeID is the unique identifier for the Stamper Graft node.
	StamperNodeID graft.ID = "adapter.fs.stamper"
	// TagStoreNodeID is the unique identifier for the TagStore Graft node.
	TagStoreNodeID graft.ID = "adapter.fs.tag_store"
)

// tagDir is where predicate tags live, relative to the invocation's
// working directory.
var tagDir = filepath.Join(".gird", "tmp")

func init() {
	graft.Register(graft.Node[ports.Stamper]{
		ID:        StamperNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Stamper, error) {
			return NewStamper(), nil
		},
	})

	graft.Register(graft.Node[ports.PredicateCache]{
		ID:        TagStoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PredicateCache, error) {
			return NewTagStore(tagDir)
		},
	})
}
