package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gird-dev/gird/internal/adapters/telemetry"
	"github.com/stretchr/testify/require"
)

func TestNoop(t *testing.T) {
	tracer := telemetry.NewNoop()

	ctx, span := tracer.Start(context.Background(), "build")
	require.NotNil(t, ctx)

	n, err := span.Write([]byte("output"))
	require.NoError(t, err)
	require.Equal(t, 6, n)

	span.End(errors.New("ignored"))
	require.NoError(t, tracer.Close())
}
