package ports

// PredicateCache remembers predicate evaluations for one build
// invocation. Predicates may have side effects, so a predicate name must
// evaluate at most once per invocation even across several resolve calls
// (the list command resolves once per rule).
//
//go:generate go run go.uber.org/mock/mockgen -source=predicate_cache.go -destination=mocks/mock_predicate_cache.go -package=mocks
type PredicateCache interface {
	// Get returns the recorded result for name. ok is false when the
	// predicate has not been evaluated this invocation.
	Get(name string) (updated bool, ok bool, err error)
	// Put records the result of evaluating name.
	Put(name string, updated bool) error
}
