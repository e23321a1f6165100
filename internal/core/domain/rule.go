package domain

import (
	"context"

	"go.trai.ch/zerr"
)

// Predicate is a dependency function. Eval returns true when the
// dependency is "updated", forcing every rule that depends on it to be
// considered outdated. Eval may have side effects (fetching, tagging), so
// the resolver guarantees it runs at most once per build invocation.
type Predicate struct {
	// Name identifies the predicate in dry-run output and in the tag
	// store. Two predicates with the same name share one evaluation.
	Name string
	// Eval reports whether the dependency is updated.
	Eval func() (bool, error)
}

// DependencyKind discriminates the dependency variants of a rule.
type DependencyKind uint8

const (
	// DepTarget references a target: either another rule's target (the
	// registry owns its identity) or a raw leaf target with no rule.
	DepTarget DependencyKind = iota
	// DepPredicate references a Predicate function.
	DepPredicate
)

// Dependency is one entry of a rule's ordered dependency list.
type Dependency struct {
	kind   DependencyKind
	target Target
	pred   *Predicate
}

// DepOn declares a dependency on a target value.
func DepOn(t Target) Dependency {
	return Dependency{kind: DepTarget, target: t}
}

// DepOnRule declares a rule-to-rule dependency via the rule's target.
func DepOnRule(r *Rule) Dependency {
	return Dependency{kind: DepTarget, target: r.Target}
}

// DepOnPredicate declares a dependency on a predicate function.
func DepOnPredicate(p *Predicate) Dependency {
	return Dependency{kind: DepPredicate, pred: p}
}

// Kind returns the dependency variant.
func (d Dependency) Kind() DependencyKind { return d.kind }

// Target returns the referenced target of a DepTarget dependency.
func (d Dependency) Target() Target { return d.target }

// Predicate returns the predicate of a DepPredicate dependency.
func (d Dependency) Predicate() *Predicate { return d.pred }

// SubRecipeKind discriminates the subrecipe variants.
type SubRecipeKind uint8

const (
	// SubRecipeCommand is a shell command string.
	SubRecipeCommand SubRecipeKind = iota
	// SubRecipeCall is an in-process function.
	SubRecipeCall
)

// SubRecipe is one step of a rule's recipe. Consecutive command subrecipes
// run in a single shell session; see the shell adapter.
type SubRecipe struct {
	kind    SubRecipeKind
	command string
	name    string
	call    func(context.Context) error
}

// Command returns a shell-command subrecipe.
func Command(cmd string) SubRecipe {
	return SubRecipe{kind: SubRecipeCommand, command: cmd}
}

// Call returns a function subrecipe. The name is printed by dry runs as
// "name()". The function receives the run context; RecipeOutput(ctx)
// yields the writer the rule's output is collected on.
func Call(name string, fn func(context.Context) error) SubRecipe {
	return SubRecipe{kind: SubRecipeCall, name: name, call: fn}
}

// Kind returns the subrecipe variant.
func (s SubRecipe) Kind() SubRecipeKind { return s.kind }

// CommandText returns the shell command of a SubRecipeCommand.
func (s SubRecipe) CommandText() string { return s.command }

// Name returns the function name of a SubRecipeCall.
func (s SubRecipe) Name() string { return s.name }

// Invoke runs the function of a SubRecipeCall.
func (s SubRecipe) Invoke(ctx context.Context) error { return s.call(ctx) }

// Rule binds a target to its dependencies and the recipe that updates it.
// Rules are registered once and never mutated afterwards; the registry
// owns them for the process lifetime.
type Rule struct {
	// Target is the identity the rule produces or updates.
	Target Target
	// Deps are evaluated in declaration order; order has no effect on the
	// outdatedness result.
	Deps []Dependency
	// Recipe runs as one logical unit when the rule is outdated.
	Recipe []SubRecipe
	// Help is the description shown by the list command.
	Help string
	// Parallel allows the recipe to run concurrently with other ready
	// rules. Serial rules block the scheduler loop while they run.
	Parallel bool
	// Unlisted hides the rule from listing unless explicitly requested.
	Unlisted bool
	// WorkDir is the directory the recipe runs in. Empty means the
	// invoking process's working directory.
	WorkDir string
}

// ID returns the rule's identity, which is its target's identity.
func (r *Rule) ID() InternedString { return r.Target.ID() }

// Validate checks the rule for construction errors: empty identities,
// nil functions, empty commands. It runs before registration so invalid
// values fail fast.
func (r *Rule) Validate() error {
	if r.Target.ID().String() == "" {
		return zerr.Wrap(ErrInvalidRule, "rule target has an empty identity")
	}
	if r.Target.Kind() == KindTimed && r.Target.stamp == nil {
		return zerr.With(
			zerr.Wrap(ErrInvalidRule, "timed target has no stamp function"),
			"target", r.Target.ID().String(),
		)
	}
	for i, dep := range r.Deps {
		if err := validateDependency(dep); err != nil {
			return zerr.With(zerr.With(err, "target", r.Target.ID().String()), "dep_index", i)
		}
	}
	for i, sub := range r.Recipe {
		if err := validateSubRecipe(sub); err != nil {
			return zerr.With(zerr.With(err, "target", r.Target.ID().String()), "recipe_index", i)
		}
	}
	return nil
}

func validateDependency(dep Dependency) error {
	switch dep.Kind() {
	case DepTarget:
		if dep.Target().ID().String() == "" {
			return zerr.Wrap(ErrInvalidRule, "dependency target has an empty identity")
		}
	case DepPredicate:
		p := dep.Predicate()
		if p == nil || p.Eval == nil {
			return zerr.Wrap(ErrInvalidRule, "predicate dependency has no function")
		}
		if p.Name == "" {
			return zerr.Wrap(ErrInvalidRule, "predicate dependency has no name")
		}
	}
	return nil
}

func validateSubRecipe(sub SubRecipe) error {
	switch sub.Kind() {
	case SubRecipeCommand:
		if sub.CommandText() == "" {
			return zerr.Wrap(ErrInvalidRule, "command subrecipe is empty")
		}
	case SubRecipeCall:
		if sub.call == nil {
			return zerr.Wrap(ErrInvalidRule, "call subrecipe has no function")
		}
		if sub.Name() == "" {
			return zerr.Wrap(ErrInvalidRule, "call subrecipe has no name")
		}
	}
	return nil
}
