package telemetry

import (
	"context"
	"os"

	progrockadapter "github.com/gird-dev/gird/internal/adapters/telemetry/progrock"
	"github.com/gird-dev/gird/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.telemetry"

// envProgress selects the progress surface. "tape" records a progrock
// tape; anything else means no recording.
const envProgress = "GIRD_PROGRESS"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			if os.Getenv(envProgress) == "tape" {
				return progrockadapter.New(), nil
			}
			return NewNoop(), nil
		},
	})
}
