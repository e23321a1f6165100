package domain_test

import (
	"testing"
	"time"

	"github.com/gird-dev/gird/internal/core/domain"
)

func TestPathTarget_Normalization(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"out/a", "out/a"},
		{"./out/a", "out/a"},
		{"out//a", "out/a"},
		{"out/./a", "out/a"},
		{"out/b/../a", "out/a"},
	}
	for _, c := range cases {
		target := domain.PathTarget(c.in)
		if target.ID().String() != c.want {
			t.Errorf("PathTarget(%q).ID() = %q, want %q", c.in, target.ID().String(), c.want)
		}
		if target.Path() != c.want {
			t.Errorf("PathTarget(%q).Path() = %q, want %q", c.in, target.Path(), c.want)
		}
	}
}

func TestPathTarget_EquivalentSpellingsCollide(t *testing.T) {
	a := domain.PathTarget("./out/a")
	b := domain.PathTarget("out//a")
	if a.ID() != b.ID() {
		t.Errorf("expected equivalent paths to share an identity, got %q and %q", a.ID().String(), b.ID().String())
	}
}

func TestPhonyTarget(t *testing.T) {
	target := domain.PhonyTarget("test")
	if target.Kind() != domain.KindPhony {
		t.Errorf("expected KindPhony, got %v", target.Kind())
	}
	if target.ID().String() != "test" {
		t.Errorf("expected identity 'test', got %q", target.ID().String())
	}
	if target.TimeTracked() {
		t.Error("phony targets must not be time tracked")
	}
	if target.Path() != "" {
		t.Errorf("expected empty path for phony target, got %q", target.Path())
	}
}

func TestTimedTarget_Stamp(t *testing.T) {
	now := time.Now()
	target := domain.TimedTarget("remote", func() (time.Time, bool) {
		return now, true
	})
	if target.Kind() != domain.KindTimed {
		t.Errorf("expected KindTimed, got %v", target.Kind())
	}
	stamp, exists := target.Stamp()
	if !exists {
		t.Fatal("expected timed target to exist")
	}
	if !stamp.Equal(now) {
		t.Errorf("expected stamp %v, got %v", now, stamp)
	}
	if !target.TimeTracked() {
		t.Error("timed targets must be time tracked")
	}
}

func TestTargetKind_String(t *testing.T) {
	cases := map[domain.TargetKind]string{
		domain.KindPath:  "path",
		domain.KindPhony: "phony",
		domain.KindTimed: "timed",
	}
	for kind, want := range cases {
		if kind.String() != want {
			t.Errorf("TargetKind(%d).String() = %q, want %q", kind, kind.String(), want)
		}
	}
}
