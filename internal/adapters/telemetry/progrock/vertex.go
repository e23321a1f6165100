package progrock

import (
	"github.com/vito/progrock"
)

// Vertex implements ports.Span wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Write forwards recipe output to the vertex's stdout stream.
func (v *Vertex) Write(p []byte) (int, error) {
	return v.vertex.Stdout().Write(p)
}

// End marks the vertex as finished, failed when err is non-nil.
func (v *Vertex) End(err error) {
	v.vertex.Done(err)
}
