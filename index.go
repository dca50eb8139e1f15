/*
Copyright 2011-2017 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package lcpindex answers longest-common-prefix queries between any two
// suffixes of a fixed sequence of non-negative integers in O(1) time,
// after an O(n) one-time build. It composes a suffix array (built via the
// DC3/skew recursion), Kasai's LCP array, a Cartesian tree's Euler tour,
// and a ±1 range-minimum-query structure, none of which are exposed: an
// Index is an opaque handle.
package lcpindex

import (
	"fmt"

	"github.com/fenwicks/lcpindex/internal/cartesian"
	"github.com/fenwicks/lcpindex/internal/lcparray"
	"github.com/fenwicks/lcpindex/internal/rmq"
	"github.com/fenwicks/lcpindex/internal/sarray"
)

// Index is an opaque handle built once over a sequence, then queried
// repeatedly. It holds no reference to the original slice passed to
// Build, is safe for concurrent read-only use by multiple goroutines
// (Query never mutates it), and must not be copied after use by value
// (the zero Index is not valid; always obtain one from Build).
type Index struct {
	n int

	rank       []int
	firstOcc   []int
	lcpOfEuler []int
	rmq        *rmq.RMQ
}

// Build constructs an Index over a. a is not retained: Build only reads
// it to derive the suffix array, rank array, LCP array and its Euler
// tour. The returned Index keeps only what Query needs: the rank array,
// each LCP position's first occurrence in the tour, the LCP value at each
// tour step, and the RMQ over the tour's depths. Build never fails; it is
// total on every n >= 0 slice, including nil.
func Build(a []int) (*Index, error) {
	n := len(a)

	if n == 0 {
		return &Index{n: 0}, nil
	}

	sa, rank := sarray.Build(a)
	full := lcparray.Build(a, sa, rank)
	prefix := full[:n-1]

	euler, firstOcc, depth := cartesian.Build(prefix)

	h := make([]int, len(euler))
	lcpOfEuler := make([]int, len(euler))

	for t, v := range euler {
		h[t] = depth[v]
		lcpOfEuler[t] = prefix[v]
	}

	idx := &Index{
		n:          n,
		rank:       rank,
		firstOcc:   firstOcc,
		lcpOfEuler: lcpOfEuler,
	}

	if n > 1 {
		idx.rmq = rmq.Build(h)
	}

	return idx, nil
}

// Query returns the length of the longest common prefix of the suffixes
// of the sequence Build was called with, starting at i and at j. The
// result is always in [0, n - max(i, j)]. Query is O(1).
func (idx *Index) Query(i, j int) (int, error) {
	if idx.n == 0 {
		return 0, ErrEmptySequence
	}

	if i < 0 || i >= idx.n {
		return 0, fmt.Errorf("%w: i=%d, n=%d", ErrInvalidIndex, i, idx.n)
	}

	if j < 0 || j >= idx.n {
		return 0, fmt.Errorf("%w: j=%d, n=%d", ErrInvalidIndex, j, idx.n)
	}

	if i == j {
		return idx.n - i, nil
	}

	a, b := idx.rank[i], idx.rank[j]

	if a > b {
		a, b = b, a
	}

	b--

	tA, tB := idx.firstOcc[a], idx.firstOcc[b]
	l, r := tA, tB

	if l > r {
		l, r = r, l
	}

	t := idx.rmq.QueryArgmin(l, r)
	return idx.lcpOfEuler[t], nil
}
