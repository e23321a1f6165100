package shell

import (
	"context"

	"github.com/gird-dev/gird/internal/adapters/logger"
	"github.com/gird-dev/gird/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the recipe runner Graft node.
const NodeID graft.ID = "adapter.shell"

func init() {
	graft.Register(graft.Node[ports.RecipeRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RecipeRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
