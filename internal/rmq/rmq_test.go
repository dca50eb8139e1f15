package rmq

import (
	"math/rand"
	"testing"
)

// randomPlusMinusOne builds a random ±1 walk of length n starting at start.
func randomPlusMinusOne(rng *rand.Rand, n, start int) []int {
	h := make([]int, n)
	h[0] = start

	for i := 1; i < n; i++ {
		if rng.Intn(2) == 0 {
			h[i] = h[i-1] + 1
		} else {
			h[i] = h[i-1] - 1
		}
	}

	return h
}

func naiveArgmin(h []int, l, r int) int {
	best := l

	for i := l + 1; i <= r; i++ {
		if h[i] < h[best] {
			best = i
		}
	}

	return best
}

func TestQueryMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 150; trial++ {
		n := rng.Intn(300) + 1
		h := randomPlusMinusOne(rng, n, rng.Intn(20))
		r := Build(h)

		for q := 0; q < 40; q++ {
			l := rng.Intn(n)
			rr := l + rng.Intn(n-l)

			got := r.QueryArgmin(l, rr)
			want := naiveArgmin(h, l, rr)

			if h[got] != h[want] {
				t.Fatalf("n=%d l=%d r=%d: QueryArgmin=%d (h=%d), naive=%d (h=%d); h=%v",
					n, l, rr, got, h[got], want, h[want], h)
			}

			if got < l || got > rr {
				t.Fatalf("QueryArgmin returned %d outside [%d, %d]", got, l, rr)
			}
		}
	}
}

func TestQuerySingleElement(t *testing.T) {
	r := Build([]int{3})

	if got := r.QueryArgmin(0, 0); got != 0 {
		t.Fatalf("QueryArgmin(0,0) = %d, want 0", got)
	}
}

func TestQueryFullRange(t *testing.T) {
	h := []int{0, 1, 0, 1, 2, 1, 0, -1, 0}
	r := Build(h)
	got := r.QueryArgmin(0, len(h)-1)

	if h[got] != -1 {
		t.Fatalf("full-range min should be -1, got h[%d]=%d", got, h[got])
	}
}

func TestQueryOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range query")
		}
	}()

	r := Build([]int{0, 1, 0})
	r.QueryArgmin(0, 5)
}

func TestQueryOnEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for query on empty structure")
		}
	}()

	r := Build(nil)
	r.QueryArgmin(0, 0)
}
