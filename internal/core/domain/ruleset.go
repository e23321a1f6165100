package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// RuleSet is the ordered rule registry. It is the explicit collector the
// rule-definition front-ends fill and the engine reads; it is read-only
// during a build and safe to share across goroutines then.
type RuleSet struct {
	rules map[InternedString]*Rule
	order []InternedString
}

// NewRuleSet returns an empty registry.
func NewRuleSet() *RuleSet {
	return &RuleSet{rules: make(map[InternedString]*Rule)}
}

// Add validates r and registers it. Registering a second rule for an
// already-owned target identity fails with ErrDuplicateTarget.
func (s *RuleSet) Add(r *Rule) error {
	if err := r.Validate(); err != nil {
		return err
	}
	id := r.ID()
	if _, exists := s.rules[id]; exists {
		return zerr.With(ErrDuplicateTarget, "target", id.String())
	}
	frozen := *r
	s.rules[id] = &frozen
	s.order = append(s.order, id)
	return nil
}

// Lookup returns the rule owning the given target identity.
func (s *RuleSet) Lookup(id InternedString) (*Rule, bool) {
	r, ok := s.rules[id]
	return r, ok
}

// Len returns the number of registered rules.
func (s *RuleSet) Len() int { return len(s.order) }

// Rules yields the rules in declaration order.
func (s *RuleSet) Rules() iter.Seq[*Rule] {
	return func(yield func(*Rule) bool) {
		for _, id := range s.order {
			if !yield(s.rules[id]) {
				return
			}
		}
	}
}
