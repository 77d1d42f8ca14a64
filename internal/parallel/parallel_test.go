package parallel

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestForEachVisitsEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 16} {
		p := New(workers)
		const n = 1000
		visits := make([]int32, n)

		if err := p.ForEach(n, func(i int) error {
			atomic.AddInt32(&visits[i], 1)
			return nil
		}); err != nil {
			t.Fatalf("workers=%d: ForEach() error: %v", workers, err)
		}

		for i, v := range visits {
			if v != 1 {
				t.Fatalf("workers=%d: index %d visited %d times", workers, i, v)
			}
		}
	}
}

func TestForEachReturnsError(t *testing.T) {
	boom := errors.New("boom")
	p := New(4)

	err := p.ForEach(100, func(i int) error {
		if i == 57 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("ForEach() error = %v, expected boom", err)
	}
}

func TestForEachEmpty(t *testing.T) {
	called := false
	if err := New(2).ForEach(0, func(int) error {
		called = true
		return nil
	}); err != nil || called {
		t.Errorf("ForEach(0) = %v, called %v; expected nil, false", err, called)
	}
}

func TestNewDefaultsToGOMAXPROCS(t *testing.T) {
	if got := New(0).Workers(); got != runtime.GOMAXPROCS(0) {
		t.Errorf("New(0).Workers() = %d, expected %d", got, runtime.GOMAXPROCS(0))
	}
}

func TestAny(t *testing.T) {
	p := New(4)

	hit, err := p.Any(50, func(i int) (bool, error) { return i == 49, nil })
	if err != nil || !hit {
		t.Errorf("Any(last) = %v, %v; expected true, nil", hit, err)
	}

	hit, err = p.Any(50, func(int) (bool, error) { return false, nil })
	if err != nil || hit {
		t.Errorf("Any(none) = %v, %v; expected false, nil", hit, err)
	}
}
