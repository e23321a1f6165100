package resolver

import (
	"context"

	"github.com/gird-dev/gird/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"github.com/gird-dev/gird/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/gird-dev/gird/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.StamperNodeID,
			fs.TagStoreNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			stamper, err := graft.Dep[ports.Stamper](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.PredicateCache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(stamper, cache, log), nil
		},
	})
}
