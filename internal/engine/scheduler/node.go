package scheduler

import (
	"context"

	"github.com/gird-dev/gird/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/gird-dev/gird/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"github.com/gird-dev/gird/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/gird-dev/gird/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			runner, err := graft.Dep[ports.RecipeRunner](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, tracer, log), nil
		},
	})
}
