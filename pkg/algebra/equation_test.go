package algebra

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestSolveQuadraticTwoRoots(t *testing.T) {
	// t^2 - 3t + 2 = 0 -> (t-1)(t-2) -> a=1, halfB=-1.5, c=2
	t0, t1, ok := SolveQuadratic(1, -1.5, 2)
	if !ok {
		t.Fatal("expected real roots")
	}
	if math.Abs(t0-1) > 1e-9 || math.Abs(t1-2) > 1e-9 {
		t.Errorf("expected roots (1, 2), got (%v, %v)", t0, t1)
	}
}

func TestSolveQuadraticNoRealRoots(t *testing.T) {
	// t^2 + 1 = 0 has no real roots.
	_, _, ok := SolveQuadratic(1, 0, 1)
	if ok {
		t.Error("expected no real roots")
	}
}

func TestSolveQuadraticDoubleRoot(t *testing.T) {
	// t^2 - 2t + 1 = (t-1)^2 -> a=1, halfB=-1, c=1
	t0, t1, ok := SolveQuadratic(1, -1, 1)
	if !ok {
		t.Fatal("expected a real double root")
	}
	if math.Abs(t0-1) > 1e-9 || math.Abs(t1-1) > 1e-9 {
		t.Errorf("expected double root at 1, got (%v, %v)", t0, t1)
	}
}

func TestSolveQuarticRecoversKnownRoots(t *testing.T) {
	// (t-1)(t-2)(t+3)(t+4) = t^4 +4t^3 -7t^2 -22t +24
	roots := SolveQuartic(1, 4, -7, -22, 24)

	want := []float64{1, 2, -3, -4}
	for _, w := range want {
		found := false
		for _, r := range roots {
			if cmplx.Abs(r-complex(w, 0)) < 1e-6 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected root %v among %v", w, roots)
		}
	}
}
