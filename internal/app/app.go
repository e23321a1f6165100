// Package app implements the application layer: it wires the rule
// loader, the resolver and the scheduler into the run, question and list
// flows the CLI exposes.
package app

import (
	"context"

	"github.com/gird-dev/gird/internal/core/domain"
	"github.com/gird-dev/gird/internal/core/ports"
	"github.com/gird-dev/gird/internal/engine/resolver"
	"github.com/gird-dev/gird/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.RuleLoader
	resolver  *resolver.Resolver
	scheduler *scheduler.Scheduler
	logger    ports.Logger
}

// New creates an App instance.
func New(loader ports.RuleLoader, res *resolver.Resolver, sched *scheduler.Scheduler, logger ports.Logger) *App {
	return &App{
		loader:    loader,
		resolver:  res,
		scheduler: sched,
		logger:    logger,
	}
}

// RunConfig configures one run invocation.
type RunConfig struct {
	// Girdfile is the path of the rules file.
	Girdfile string
	// Target is the identity of the target to bring up to date.
	Target string
	// Question suppresses execution: the result is ErrTargetOutdated
	// when anything would run, nil when the target is up to date.
	Question bool
	// Options are forwarded to the scheduler and recipe runner.
	Options domain.RunOptions
}

// Run brings a target up to date: it loads the rules, resolves the
// outdated subgraph and executes it. A target that is already up to date
// is a successful no-op.
func (a *App) Run(ctx context.Context, cfg RunConfig) error {
	rules, err := a.loader.Load(cfg.Girdfile)
	if err != nil {
		return zerr.Wrap(err, "failed to load rules")
	}

	graph, err := a.resolver.Resolve(rules, domain.NewInternedString(cfg.Target))
	if err != nil {
		return zerr.Wrap(err, "failed to resolve target")
	}

	if cfg.Question {
		if graph.IsEmpty() {
			return nil
		}
		return zerr.With(domain.ErrTargetOutdated, "target", cfg.Target)
	}

	if graph.IsEmpty() {
		a.logger.Info("'" + cfg.Target + "' is up to date")
		return nil
	}

	a.logger.Info("executing rule '" + cfg.Target + "'")
	if err := a.scheduler.Execute(ctx, graph, rules, cfg.Options); err != nil {
		return zerr.Wrap(err, "build execution failed")
	}
	return nil
}

// ListConfig configures the list flow.
type ListConfig struct {
	// Girdfile is the path of the rules file.
	Girdfile string
	// All includes rules registered as unlisted.
	All bool
	// Question additionally resolves every rule to mark staleness.
	Question bool
}

// RuleInfo is one row of the listing.
type RuleInfo struct {
	Target string
	Help   string
	Listed bool
	// Outdated is meaningful only when the listing was produced with
	// ListConfig.Question; phony targets are never marked.
	Outdated bool
}

// List reports the registered rules in declaration order. With
// cfg.Question each rule's target is resolved and non-phony outdated
// targets are marked; predicate dependencies still run at most once
// across the whole listing.
func (a *App) List(cfg ListConfig) ([]RuleInfo, error) {
	rules, err := a.loader.Load(cfg.Girdfile)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load rules")
	}

	var infos []RuleInfo
	for rule := range rules.Rules() {
		if rule.Unlisted && !cfg.All {
			continue
		}
		info := RuleInfo{
			Target: rule.ID().String(),
			Help:   rule.Help,
			Listed: !rule.Unlisted,
		}
		if cfg.Question {
			graph, err := a.resolver.Resolve(rules, rule.ID())
			if err != nil {
				return nil, zerr.Wrap(err, "failed to resolve target")
			}
			info.Outdated = !graph.IsEmpty() && rule.Target.Kind() != domain.KindPhony
		}
		infos = append(infos, info)
	}
	return infos, nil
}
