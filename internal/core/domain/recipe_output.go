package domain

import (
	"context"
	"io"
	"os"
)

type recipeOutputKey struct{}

// WithRecipeOutput returns a context carrying the writer a rule's output
// is collected on. The recipe runner sets it before invoking call
// subrecipes, so their output lands in the same stream as command output
// and takes part in output-synced flushing.
func WithRecipeOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, recipeOutputKey{}, w)
}

// RecipeOutput returns the writer call subrecipes should print to.
// Outside a recipe run it falls back to the process stdout.
func RecipeOutput(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(recipeOutputKey{}).(io.Writer); ok {
		return w
	}
	return os.Stdout
}
