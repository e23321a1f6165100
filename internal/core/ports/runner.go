// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/gird-dev/gird/internal/core/domain"
)

// RecipeRunner executes the recipe of a single rule as one logical unit.
//
// Consecutive command subrecipes share one shell session, so exported
// variables set by one command are visible to the next. A non-zero exit
// status or an error from a call subrecipe aborts the remaining
// subrecipes and fails the rule.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type RecipeRunner interface {
	// Run executes rule's recipe. With opts.DryRun it only prints the
	// trace; with opts.OutputSync it flushes the rule's output in one
	// write after the recipe finishes.
	Run(ctx context.Context, rule *domain.Rule, opts domain.RunOptions) error
}
