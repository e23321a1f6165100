package ports

import "github.com/gird-dev/gird/internal/core/domain"

// RuleLoader materializes the rule registry from a rules file.
//
//go:generate go run go.uber.org/mock/mockgen -source=rule_loader.go -destination=mocks/mock_rule_loader.go -package=mocks
type RuleLoader interface {
	// Load reads the rules file at path and returns the validated,
	// duplicate-free registry.
	Load(path string) (*domain.RuleSet, error)
}
