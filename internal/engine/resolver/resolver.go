// Package resolver computes the outdatedness graph for a requested
// target: the minimal subgraph of rules that must run to bring the target
// up to date.
package resolver

import (
	"strings"
	"time"

	"github.com/gird-dev/gird/internal/core/domain"
	"github.com/gird-dev/gird/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver walks rule dependencies and decides which rules are outdated.
// The walk is single-threaded; predicate functions are never invoked
// concurrently.
type Resolver struct {
	stamper ports.Stamper
	cache   ports.PredicateCache
	logger  ports.Logger
}

// New creates a Resolver. cache persists predicate results across resolve
// calls within one invocation; pass NewMemoryCache() when no tag store is
// wired.
func New(stamper ports.Stamper, cache ports.PredicateCache, logger ports.Logger) *Resolver {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Resolver{stamper: stamper, cache: cache, logger: logger}
}

// Resolve returns the graph of outdated rules reachable from target.
// The requested rule itself appears in the graph iff it is outdated,
// directly or transitively. An empty graph means the target is up to
// date.
//
// A rule is outdated when any of the following holds:
//   - its target is phony, or does not exist;
//   - any predicate dependency reports "updated";
//   - any dependency rule is itself outdated;
//   - any time-tracked dependency is strictly newer than its target.
//
// Every predicate dependency is evaluated even when the result can no
// longer change the answer, because predicates may have side effects;
// each predicate still runs at most once per invocation.
func (r *Resolver) Resolve(rules *domain.RuleSet, target domain.InternedString) (*domain.BuildGraph, error) {
	rule, ok := rules.Lookup(target)
	if !ok {
		return nil, zerr.With(domain.ErrTargetNotFound, "target", target.String())
	}

	w := &walk{
		resolver: r,
		rules:    rules,
		graph:    domain.NewBuildGraph(),
		state:    make(map[domain.InternedString]visitState),
		outdated: make(map[domain.InternedString]bool),
		seen:     make(map[*domain.Predicate]bool),
	}
	if _, err := w.visit(rule); err != nil {
		return nil, err
	}
	return w.graph, nil
}

type visitState uint8

const (
	stateUnvisited visitState = iota
	stateVisiting
	stateDone
)

// walk is the transient state of one Resolve call. Rule results are
// memoized so shared subtrees resolve once, and predicate instances are
// deduplicated by pointer identity on top of the name-keyed cache.
type walk struct {
	resolver *Resolver
	rules    *domain.RuleSet
	graph    *domain.BuildGraph
	state    map[domain.InternedString]visitState
	outdated map[domain.InternedString]bool
	seen     map[*domain.Predicate]bool
	path     []domain.InternedString
}

// visit resolves one rule and reports whether it is outdated. The rule's
// subgraph is merged into w.graph as a side effect.
func (w *walk) visit(rule *domain.Rule) (bool, error) {
	id := rule.ID()
	switch w.state[id] {
	case stateDone:
		return w.outdated[id], nil
	case stateVisiting:
		return false, w.cycleError(id)
	}
	w.state[id] = stateVisiting
	w.path = append(w.path, id)
	defer func() {
		w.path = w.path[:len(w.path)-1]
	}()

	targetStamp, targetExists, err := w.freshness(rule.Target)
	if err != nil {
		return false, err
	}

	// Phony and missing targets are unconditionally outdated, but their
	// dependencies are still resolved so predicate side effects happen
	// and dependency rules run first.
	isOutdated := !targetExists
	var preds []domain.InternedString

	for _, dep := range rule.Deps {
		switch dep.Kind() {
		case domain.DepPredicate:
			updated, err := w.evalPredicate(dep.Predicate())
			if err != nil {
				return false, err
			}
			isOutdated = isOutdated || updated

		case domain.DepTarget:
			depTarget := dep.Target()
			depRule, owned := w.rules.Lookup(depTarget.ID())
			if owned {
				depOutdated, err := w.visit(depRule)
				if err != nil {
					return false, err
				}
				if depOutdated {
					preds = append(preds, depRule.ID())
				}
				isOutdated = isOutdated || depOutdated
				// Timestamp comparison below uses the owning rule's
				// target, which may be a different variant than the
				// declared dependency value.
				depTarget = depRule.Target
			} else if depTarget.Kind() == domain.KindPhony {
				return false, zerr.With(
					zerr.Wrap(domain.ErrUnresolvableDependency, "phony target of no rule used as a dependency"),
					"dependency", depTarget.ID().String(),
				)
			}

			if targetExists && depTarget.TimeTracked() {
				depStamp, depExists, err := w.freshness(depTarget)
				if err != nil {
					return false, err
				}
				if !owned && !depExists {
					return false, zerr.With(
						zerr.Wrap(domain.ErrUnresolvableDependency, "nonexistent dependency is not the target of any rule"),
						"dependency", depTarget.ID().String(),
					)
				}
				if depExists && depStamp.After(targetStamp) {
					// Strict comparison: a dependency with an equal
					// timestamp leaves the rule fresh.
					isOutdated = true
				}
			} else if !owned && depTarget.Kind() != domain.KindPhony {
				// The target side is missing or phony, so no timestamp
				// comparison happens, but a leaf dependency must still
				// exist to be legal.
				_, depExists, err := w.freshness(depTarget)
				if err != nil {
					return false, err
				}
				if !depExists {
					return false, zerr.With(
						zerr.Wrap(domain.ErrUnresolvableDependency, "nonexistent dependency is not the target of any rule"),
						"dependency", depTarget.ID().String(),
					)
				}
			}
		}
	}

	if isOutdated {
		w.graph.Add(id)
		for _, p := range preds {
			w.graph.AddEdge(id, p)
		}
	}

	w.state[id] = stateDone
	w.outdated[id] = isOutdated
	return isOutdated, nil
}

// freshness returns the timestamp and existence of a target, dispatching
// on its kind.
func (w *walk) freshness(t domain.Target) (time.Time, bool, error) {
	switch t.Kind() {
	case domain.KindPhony:
		return time.Time{}, false, nil
	case domain.KindTimed:
		stamp, exists := t.Stamp()
		return stamp, exists, nil
	case domain.KindPath:
		return w.resolver.stamper.Stamp(t.Path())
	default:
		return time.Time{}, false, zerr.With(zerr.New("unknown target kind"), "target", t.ID().String())
	}
}

// evalPredicate runs a predicate at most once. Within one resolve call
// the instance pointer deduplicates; across resolve calls of the same
// invocation the name-keyed cache does.
func (w *walk) evalPredicate(p *domain.Predicate) (bool, error) {
	if updated, ok := w.seen[p]; ok {
		return updated, nil
	}
	updated, cached, err := w.resolver.cache.Get(p.Name)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to read predicate cache"), "predicate", p.Name)
	}
	if !cached {
		w.resolver.logger.Info("evaluating predicate '" + p.Name + "'")
		updated, err = p.Eval()
		if err != nil {
			return false, zerr.With(zerr.Wrap(err, "predicate evaluation failed"), "predicate", p.Name)
		}
		if err := w.resolver.cache.Put(p.Name, updated); err != nil {
			return false, zerr.With(zerr.Wrap(err, "failed to record predicate result"), "predicate", p.Name)
		}
	}
	w.seen[p] = updated
	return updated, nil
}

func (w *walk) cycleError(id domain.InternedString) error {
	var b strings.Builder
	start := 0
	for i, node := range w.path {
		if node == id {
			start = i
			break
		}
	}
	for _, node := range w.path[start:] {
		b.WriteString(node.String())
		b.WriteString(" -> ")
	}
	b.WriteString(id.String())
	return zerr.With(domain.ErrCycleDetected, "cycle", b.String())
}
