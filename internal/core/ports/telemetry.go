package ports

import (
	"context"
	"io"
)

// Tracer records the execution progress of a build, one span per rule.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Tracer interface {
	// Start opens a span for a unit of work.
	Start(ctx context.Context, name string) (context.Context, Span)
	// Close flushes and closes the recording session.
	Close() error
}

// Span represents one unit of work. Writes carry the unit's output.
type Span interface {
	io.Writer
	// End completes the span; a non-nil err marks it failed.
	End(err error)
}
