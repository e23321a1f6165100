package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/gird-dev/gird/internal/core/domain"
	"github.com/gird-dev/gird/internal/core/ports"
	"github.com/gird-dev/gird/internal/core/ports/mocks"
	"github.com/gird-dev/gird/internal/engine/scheduler"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type schedulerTestMocks struct {
	runner *mocks.MockRecipeRunner
	tracer *mocks.MockTracer
	logger *mocks.MockLogger
}

// setupSchedulerTest creates a scheduler over permissive tracer and
// logger mocks; runner expectations belong to the individual tests.
func setupSchedulerTest(t *testing.T) (*scheduler.Scheduler, schedulerTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := schedulerTestMocks{
		runner: mocks.NewMockRecipeRunner(ctrl),
		tracer: mocks.NewMockTracer(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End(gomock.Any()).AnyTimes()
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	s := scheduler.New(m.runner, m.tracer, m.logger)
	return s, m
}

// buildFixture constructs a rule set and a graph from a map of
// "target" -> outdated predecessors. Every key and predecessor becomes a
// phony rule; parallel controls the dispatch mode of all of them.
func buildFixture(t *testing.T, deps map[string][]string, parallel bool) (*domain.BuildGraph, *domain.RuleSet) {
	t.Helper()
	rules := domain.NewRuleSet()
	graph := domain.NewBuildGraph()

	added := make(map[string]bool)
	add := func(name string) {
		if added[name] {
			return
		}
		added[name] = true
		err := rules.Add(&domain.Rule{Target: domain.PhonyTarget(name), Parallel: parallel})
		require.NoError(t, err)
		graph.Add(domain.NewInternedString(name))
	}

	for name, preds := range deps {
		add(name)
		for _, p := range preds {
			add(p)
			graph.AddEdge(domain.NewInternedString(name), domain.NewInternedString(p))
		}
	}
	return graph, rules
}

// ruleMatcher implements gomock.Matcher for *domain.Rule.
type ruleMatcher struct {
	name string
}

func (m ruleMatcher) Matches(x any) bool {
	r, ok := x.(*domain.Rule)
	if !ok {
		return false
	}
	return r.ID().String() == m.name
}

func (m ruleMatcher) String() string {
	return "rule target is " + m.name
}

func matchRule(name string) gomock.Matcher {
	return ruleMatcher{name: name}
}

func TestScheduler_DiamondDependency(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		// a depends on b and c, which both depend on d.
		// Execution order must be: d, then b and c, then a.
		graph, rules := buildFixture(t, map[string][]string{
			"a": {"b", "c"},
			"b": {"d"},
			"c": {"d"},
		}, true)
		s, m := setupSchedulerTest(t)

		dCall := m.runner.EXPECT().Run(gomock.Any(), matchRule("d"), gomock.Any()).Return(nil).Times(1)
		bCall := m.runner.EXPECT().Run(gomock.Any(), matchRule("b"), gomock.Any()).Return(nil).Times(1).After(dCall)
		cCall := m.runner.EXPECT().Run(gomock.Any(), matchRule("c"), gomock.Any()).Return(nil).Times(1).After(dCall)
		m.runner.EXPECT().Run(gomock.Any(), matchRule("a"), gomock.Any()).Return(nil).Times(1).After(bCall).After(cCall)

		err := s.Execute(context.Background(), graph, rules, domain.RunOptions{})
		require.NoError(t, err)
	})
}

func TestScheduler_SerialChain(t *testing.T) {
	graph, rules := buildFixture(t, map[string][]string{
		"a": {"b"},
		"b": {"c"},
	}, false)
	s, m := setupSchedulerTest(t)

	cCall := m.runner.EXPECT().Run(gomock.Any(), matchRule("c"), gomock.Any()).Return(nil).Times(1)
	bCall := m.runner.EXPECT().Run(gomock.Any(), matchRule("b"), gomock.Any()).Return(nil).Times(1).After(cCall)
	m.runner.EXPECT().Run(gomock.Any(), matchRule("a"), gomock.Any()).Return(nil).Times(1).After(bCall)

	err := s.Execute(context.Background(), graph, rules, domain.RunOptions{})
	require.NoError(t, err)
}

func TestScheduler_ParallelRulesOverlap(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		graph, rules := buildFixture(t, map[string][]string{
			"a": {},
			"b": {},
		}, true)
		s, m := setupSchedulerTest(t)

		var mu sync.Mutex
		running, maxRunning := 0, 0
		m.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *domain.Rule, domain.RunOptions) error {
				mu.Lock()
				running++
				if running > maxRunning {
					maxRunning = running
				}
				mu.Unlock()
				time.Sleep(100 * time.Millisecond)
				mu.Lock()
				running--
				mu.Unlock()
				return nil
			},
		).Times(2)

		err := s.Execute(context.Background(), graph, rules, domain.RunOptions{})
		require.NoError(t, err)
		require.Equal(t, 2, maxRunning)
	})
}

func TestScheduler_WorkerLimit(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		graph, rules := buildFixture(t, map[string][]string{
			"a": {},
			"b": {},
			"c": {},
		}, true)
		s, m := setupSchedulerTest(t)

		var mu sync.Mutex
		running, maxRunning := 0, 0
		m.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *domain.Rule, domain.RunOptions) error {
				mu.Lock()
				running++
				if running > maxRunning {
					maxRunning = running
				}
				mu.Unlock()
				time.Sleep(100 * time.Millisecond)
				mu.Lock()
				running--
				mu.Unlock()
				return nil
			},
		).Times(3)

		err := s.Execute(context.Background(), graph, rules, domain.RunOptions{Workers: 1})
		require.NoError(t, err)
		require.Equal(t, 1, maxRunning)
	})
}

func TestScheduler_FailurePropagation(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		// a depends on b; b fails, so a never starts.
		graph, rules := buildFixture(t, map[string][]string{
			"a": {"b"},
		}, true)
		s, m := setupSchedulerTest(t)

		failure := errors.New("boom")
		m.runner.EXPECT().Run(gomock.Any(), matchRule("b"), gomock.Any()).Return(failure).Times(1)
		m.runner.EXPECT().Run(gomock.Any(), matchRule("a"), gomock.Any()).Times(0)

		err := s.Execute(context.Background(), graph, rules, domain.RunOptions{})
		require.Error(t, err)
		require.ErrorIs(t, err, failure)
	})
}

func TestScheduler_FailureDrainsInFlightWork(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		// b fails fast while c is still running; Execute must wait for c
		// and must never start a.
		graph, rules := buildFixture(t, map[string][]string{
			"a": {"b", "c"},
		}, true)
		s, m := setupSchedulerTest(t)

		failure := errors.New("boom")
		cDone := false
		m.runner.EXPECT().Run(gomock.Any(), matchRule("b"), gomock.Any()).Return(failure).Times(1)
		m.runner.EXPECT().Run(gomock.Any(), matchRule("c"), gomock.Any()).DoAndReturn(
			func(context.Context, *domain.Rule, domain.RunOptions) error {
				time.Sleep(time.Second)
				cDone = true
				return nil
			},
		).Times(1)
		m.runner.EXPECT().Run(gomock.Any(), matchRule("a"), gomock.Any()).Times(0)

		err := s.Execute(context.Background(), graph, rules, domain.RunOptions{})
		require.ErrorIs(t, err, failure)
		require.True(t, cDone)
	})
}

func TestScheduler_Cancellation(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		graph, rules := buildFixture(t, map[string][]string{
			"a": {},
		}, true)
		s, m := setupSchedulerTest(t)

		m.runner.EXPECT().Run(gomock.Any(), matchRule("a"), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ *domain.Rule, _ domain.RunOptions) error {
				<-ctx.Done()
				return ctx.Err()
			},
		).Times(1)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		err := s.Execute(ctx, graph, rules, domain.RunOptions{})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestScheduler_EmptyGraph(t *testing.T) {
	graph, rules := buildFixture(t, map[string][]string{}, true)
	s, m := setupSchedulerTest(t)

	m.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := s.Execute(context.Background(), graph, rules, domain.RunOptions{})
	require.NoError(t, err)
}

func TestScheduler_UnknownRuleInGraph(t *testing.T) {
	graph := domain.NewBuildGraph()
	graph.Add(domain.NewInternedString("ghost"))
	s, _ := setupSchedulerTest(t)

	err := s.Execute(context.Background(), graph, domain.NewRuleSet(), domain.RunOptions{})
	require.ErrorIs(t, err, domain.ErrTargetNotFound)
}
