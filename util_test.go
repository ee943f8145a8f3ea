package grazil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func ptNear(t *testing.T, want, got Point, tol float64) {
	t.Helper()
	if want.Distance(got) > tol {
		t.Errorf("got point %v, want %v (tolerance %g)", got, want, tol)
	}
}

func near(t *testing.T, want, got, tol float64) {
	t.Helper()
	d := want - got
	if d < 0 {
		d = -d
	}
	if d > tol {
		t.Errorf("got %g, want %g (tolerance %g)", got, want, tol)
	}
}

// rendered compares a path against its expected mini-language rendering.
func rendered(t *testing.T, want string, p *Path) {
	t.Helper()
	if got := p.String(); got != want {
		t.Errorf("got rendering %q, want %q", got, want)
	}
}
