package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateTarget is returned when a second rule is registered for
	// a target identity already present in the registry.
	ErrDuplicateTarget = zerr.New("duplicate rule target")

	// ErrInvalidRule is returned for rule construction errors: empty
	// identities, nil predicate or recipe functions, empty commands.
	ErrInvalidRule = zerr.New("invalid rule")

	// ErrTargetNotFound is returned when the requested target identity is
	// not owned by any registered rule.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrUnresolvableDependency is returned when a dependency has no
	// owning rule and is either phony or a path missing from disk.
	ErrUnresolvableDependency = zerr.New("unresolvable dependency")

	// ErrCycleDetected is returned when the dependency walk revisits a
	// rule that is still being resolved.
	ErrCycleDetected = zerr.New("dependency cycle detected")

	// ErrRecipeFailed is returned when a subrecipe exits non-zero or a
	// call subrecipe returns an error. The exit status travels as
	// "exit_code" metadata.
	ErrRecipeFailed = zerr.New("recipe failed")

	// ErrTargetOutdated is the question-mode result for a target that is
	// not up to date. The CLI maps it to exit status 1.
	ErrTargetOutdated = zerr.New("target is outdated")
)
