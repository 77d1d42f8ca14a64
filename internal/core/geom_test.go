package core

import (
	"errors"
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "far apart",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(20, 20, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(V(400, 300), V(18, 18))
	if r.X != 391 || r.Y != 291 || r.W != 18 || r.H != 18 {
		t.Errorf("CenteredRect() = %+v, expected {391 291 18 18}", r)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, size, expected float64
	}{
		{-1, 800, 799},
		{800, 800, 0},
		{0, 800, 0},
		{799.5, 800, 799.5},
		{1601, 800, 1},
		{-801, 800, 799},
		{-1e-17, 800, 0},
		{650, 600, 50},
	}

	for _, tc := range tests {
		got := Wrap(tc.v, tc.size)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Wrap(%v, %v) = %v, expected %v", tc.v, tc.size, got, tc.expected)
		}
		if got < 0 || got >= tc.size {
			t.Errorf("Wrap(%v, %v) = %v, outside [0, %v)", tc.v, tc.size, got, tc.size)
		}
	}
}

func TestWrapCongruence(t *testing.T) {
	for v := -2000.0; v <= 2000; v += 37.25 {
		got := Wrap(v, 800)
		k := (v - got) / 800
		if math.Abs(k-math.Round(k)) > 1e-9 {
			t.Errorf("Wrap(%v, 800) = %v is not congruent modulo 800", v, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	n, err := V(3, 4).Normalize()
	if err != nil {
		t.Fatalf("Normalize() unexpected error: %v", err)
	}
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Y-0.8) > 1e-12 {
		t.Errorf("Normalize() = %v, expected (0.6, 0.8)", n)
	}

	if _, err := V(0, 0).Normalize(); !errors.Is(err, ErrDegenerateDirection) {
		t.Errorf("Normalize() of zero vector error = %v, expected ErrDegenerateDirection", err)
	}
	if _, err := V(math.NaN(), 1).Normalize(); !errors.Is(err, ErrDegenerateDirection) {
		t.Errorf("Normalize() of NaN vector error = %v, expected ErrDegenerateDirection", err)
	}

	if z := V(0, 0).NormalizeOrZero(); !z.IsZero() {
		t.Errorf("NormalizeOrZero() = %v, expected zero vector", z)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		v        Vec2
		expected bool
	}{
		{V(1, -2), true},
		{V(math.NaN(), 0), false},
		{V(0, math.Inf(1)), false},
		{V(math.Inf(-1), math.NaN()), false},
	}

	for _, tc := range tests {
		if got := tc.v.IsFinite(); got != tc.expected {
			t.Errorf("IsFinite(%v) = %v, expected %v", tc.v, got, tc.expected)
		}
	}
}
