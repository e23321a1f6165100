// Package scheduler executes the outdatedness graph in dependency order.
package scheduler

import (
	"context"
	"errors"

	"github.com/gird-dev/gird/internal/core/domain"
	"github.com/gird-dev/gird/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// RuleStatus represents the execution state of one rule.
type RuleStatus string

const (
	// StatusPending indicates the rule still has unfinished predecessors.
	StatusPending RuleStatus = "Pending"
	// StatusRunning indicates the rule's recipe is executing.
	StatusRunning RuleStatus = "Running"
	// StatusCompleted indicates the recipe finished successfully.
	StatusCompleted RuleStatus = "Completed"
	// StatusFailed indicates the recipe failed.
	StatusFailed RuleStatus = "Failed"
)

// Scheduler runs every rule of a build graph exactly once, honoring the
// partial order implied by the predecessor sets. Rules marked parallel
// are dispatched to a worker pool; serial rules run on the scheduler
// goroutine itself so rules that depend on shared local state never
// overlap.
type Scheduler struct {
	runner ports.RecipeRunner
	tracer ports.Tracer
	logger ports.Logger
}

// New creates a Scheduler.
func New(runner ports.RecipeRunner, tracer ports.Tracer, logger ports.Logger) *Scheduler {
	return &Scheduler{runner: runner, tracer: tracer, logger: logger}
}

// Execute runs the rules of graph. It returns once every rule completed
// or, after the first failure, once all already-dispatched work drained.
// No new rule starts after a failure or context cancellation; in-flight
// recipes are not cancelled beyond what ctx itself propagates.
func (s *Scheduler) Execute(ctx context.Context, graph *domain.BuildGraph, rules *domain.RuleSet, opts domain.RunOptions) error {
	if graph.IsEmpty() {
		return nil
	}

	state, err := s.newRunState(ctx, graph, rules, opts)
	if err != nil {
		return err
	}

	for state.active > 0 || len(state.ready) > 0 {
		state.dispatch(ctx)

		if state.active == 0 {
			continue
		}
		select {
		case res := <-state.results:
			state.complete(res)
		case <-ctx.Done():
			if !state.aborted {
				state.abort(ctx.Err())
			}
			// Keep draining: in-flight recipes observe ctx themselves.
			res := <-state.results
			state.complete(res)
		}
	}

	// All results are in; Wait only releases the pool.
	_ = state.pool.Wait()

	return state.errs
}

type result struct {
	id  domain.InternedString
	err error
}

// runState is the transient bookkeeping of one Execute call. It is
// mutated only by the scheduler goroutine; workers communicate results
// exclusively through the buffered results channel.
type runState struct {
	s          *Scheduler
	rules      map[domain.InternedString]*domain.Rule
	status     map[domain.InternedString]RuleStatus
	inDegree   map[domain.InternedString]int
	successors map[domain.InternedString][]domain.InternedString
	ready      []domain.InternedString
	active     int
	results    chan result
	pool       *errgroup.Group
	opts       domain.RunOptions
	aborted    bool
	errs       error
}

func (s *Scheduler) newRunState(ctx context.Context, graph *domain.BuildGraph, rules *domain.RuleSet, opts domain.RunOptions) (*runState, error) {
	ids := graph.IDs()

	state := &runState{
		s:          s,
		rules:      make(map[domain.InternedString]*domain.Rule, len(ids)),
		status:     make(map[domain.InternedString]RuleStatus, len(ids)),
		inDegree:   make(map[domain.InternedString]int, len(ids)),
		successors: make(map[domain.InternedString][]domain.InternedString, len(ids)),
		// Buffered so a worker never blocks on delivering its result.
		results: make(chan result, len(ids)),
		opts:    opts,
	}
	state.pool, _ = errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		state.pool.SetLimit(opts.Workers)
	}

	for _, id := range ids {
		rule, ok := rules.Lookup(id)
		if !ok {
			return nil, zerr.With(domain.ErrTargetNotFound, "target", id.String())
		}
		state.rules[id] = rule
		state.status[id] = StatusPending
		preds := graph.Predecessors(id)
		state.inDegree[id] = len(preds)
		for _, p := range preds {
			state.successors[p] = append(state.successors[p], id)
		}
		if len(preds) == 0 {
			state.ready = append(state.ready, id)
		}
	}
	return state, nil
}

// dispatch starts every ready rule. Parallel rules go to the pool without
// blocking the loop on their completion; serial rules run inline, which
// intentionally stalls further dispatch until they finish.
func (state *runState) dispatch(ctx context.Context) {
	for len(state.ready) > 0 {
		if state.aborted {
			state.ready = nil
			return
		}

		id := state.ready[0]
		state.ready = state.ready[1:]
		rule := state.rules[id]

		state.status[id] = StatusRunning
		state.active++

		if rule.Parallel {
			state.pool.Go(func() error {
				state.results <- result{id: id, err: state.s.runRule(ctx, rule, state.opts)}
				return nil
			})
		} else {
			state.complete(result{id: id, err: state.s.runRule(ctx, rule, state.opts)})
		}
	}
}

// complete folds one finished rule back into the bookkeeping: on success
// its successors' predecessor counts drain and newly unblocked rules join
// the ready set; on failure the run aborts.
func (state *runState) complete(res result) {
	state.active--
	if res.err != nil {
		state.status[res.id] = StatusFailed
		state.abort(zerr.With(zerr.Wrap(res.err, "rule execution failed"), "target", res.id.String()))
		return
	}
	state.status[res.id] = StatusCompleted
	for _, succ := range state.successors[res.id] {
		state.inDegree[succ]--
		if state.inDegree[succ] == 0 {
			state.ready = append(state.ready, succ)
		}
	}
}

// abort records the first failure and stops any further dispatch. Results
// of rules dispatched before the failure are still collected, but their
// errors only join the report; they never start new work.
func (state *runState) abort(err error) {
	state.aborted = true
	state.ready = nil
	state.errs = errors.Join(state.errs, err)
}

// runRule executes one rule's recipe inside a telemetry span.
func (s *Scheduler) runRule(ctx context.Context, rule *domain.Rule, opts domain.RunOptions) error {
	s.logger.Info("running rule '" + rule.ID().String() + "'")
	_, span := s.tracer.Start(ctx, rule.ID().String())
	err := s.runner.Run(ctx, rule, opts)
	span.End(err)
	return err
}
