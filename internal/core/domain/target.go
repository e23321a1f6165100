// Package domain contains the core domain model of the build engine:
// targets, rules, the rule registry and the outdatedness graph.
package domain

import (
	"path/filepath"
	"time"
)

// TargetKind discriminates the closed set of target variants.
type TargetKind uint8

const (
	// KindPath is a file target identified by a normalized relative path.
	// It exists iff the file exists; its freshness is the file's mtime.
	KindPath TargetKind = iota
	// KindPhony is an abstract target with no backing file. It never
	// exists, so a rule with a phony target is always outdated.
	KindPhony
	// KindTimed is a target whose freshness comes from a caller-supplied
	// stamp function, e.g. the modification time of a remote resource.
	KindTimed
)

// String returns the kind name for error messages and logs.
func (k TargetKind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindPhony:
		return "phony"
	case KindTimed:
		return "timed"
	default:
		return "unknown"
	}
}

// StampFunc reports the freshness of a timed target. The boolean is false
// when the target does not exist, which makes it always stale.
type StampFunc func() (time.Time, bool)

// Target identifies a buildable entity. It is an immutable tagged variant;
// use the constructors below and switch exhaustively on Kind.
type Target struct {
	kind  TargetKind
	id    InternedString
	path  string
	stamp StampFunc
}

// PathTarget returns a file target. The identity is the cleaned,
// slash-separated form of path, so "./out/a" and "out//a" collide as
// intended.
func PathTarget(path string) Target {
	normalized := ""
	if path != "" {
		normalized = filepath.ToSlash(filepath.Clean(path))
	}
	return Target{
		kind: KindPath,
		id:   NewInternedString(normalized),
		path: normalized,
	}
}

// PhonyTarget returns an abstract target identified by name.
func PhonyTarget(name string) Target {
	return Target{
		kind: KindPhony,
		id:   NewInternedString(name),
	}
}

// TimedTarget returns a target with a caller-supplied freshness source.
func TimedTarget(id string, stamp StampFunc) Target {
	return Target{
		kind:  KindTimed,
		id:    NewInternedString(id),
		stamp: stamp,
	}
}

// Kind returns the target variant.
func (t Target) Kind() TargetKind { return t.kind }

// ID returns the interned identity of the target. Identities are unique
// across all rules of one registry.
func (t Target) ID() InternedString { return t.id }

// Path returns the normalized path of a KindPath target and "" otherwise.
func (t Target) Path() string { return t.path }

// Stamp reports the freshness of a KindTimed target. For any other kind
// the result is undefined; path freshness goes through ports.Stamper and
// phony targets never exist.
func (t Target) Stamp() (time.Time, bool) {
	if t.stamp == nil {
		return time.Time{}, false
	}
	return t.stamp()
}

// TimeTracked reports whether the target carries a freshness timestamp at
// all. Phony targets do not take part in timestamp comparisons.
func (t Target) TimeTracked() bool { return t.kind != KindPhony }
