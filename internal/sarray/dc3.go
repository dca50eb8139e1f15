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

// Package sarray builds a suffix array (and its inverse, the rank array)
// for a sequence of non-negative integers in linear time via the DC3/skew
// recursion (Karkkainen & Sanders). The alphabet is first compacted to a
// dense range so every recursion level's counting sort stays linear in the
// size of that level's (shrinking) alphabet.
package sarray

// naiveThreshold is the size below which a direct O(n^2 log n) sort of
// suffixes is used instead of paying for the skew recursion's overhead.
const naiveThreshold = 12

// builder carries no state: every scratch buffer is allocated inside the
// call that uses it. It exists, rather than a bare recursive function, so
// the top-level entry point is a small receiver object around a call into
// the recursive engine.
type builder struct{}

// Build constructs the suffix array and its inverse rank array for a.
// sa is a permutation of 0..n such that the suffixes of a starting at
// sa[0], sa[1], ... are in strictly increasing lexicographic order.
// rank is the inverse of sa: rank[sa[k]] = k.
func Build(a []int) (sa []int, rank []int) {
	n := len(a)

	if n == 0 {
		return []int{}, []int{}
	}

	if n == 1 {
		return []int{0}, []int{0}
	}

	b := builder{}
	compact, k := b.compactAlphabet(a)
	sa = b.skew(compact, n, k)
	rank = make([]int, n)

	for i, p := range sa {
		rank[p] = i
	}

	return sa, rank
}

// compactAlphabet renames the (possibly huge-magnitude) values of a to a
// dense range [1, k-1], where k-1 is the number of distinct values, and
// returns k, so the alphabet including the sentinel 0 the skew recursion
// reads past the end of the string is [0, k). Ties keep the original relative order
// irrelevant here since renaming is by value, not position.
func (builder) compactAlphabet(a []int) ([]int, int) {
	distinct := append([]int(nil), a...)
	sortInts(distinct)
	distinct = dedupSorted(distinct)

	out := make([]int, len(a))

	for i, v := range a {
		out[i] = rankOf(distinct, v) + 1
	}

	return out, len(distinct) + 1
}

func sortInts(xs []int) {
	// Insertion sort would be quadratic on large alphabets; use a plain
	// introsort-free quicksort since this runs once, over distinct values.
	quicksortInts(xs, 0, len(xs)-1)
}

func quicksortInts(xs []int, lo, hi int) {
	for lo < hi {
		if hi-lo < 16 {
			insertionSortInts(xs, lo, hi)
			return
		}

		p := partitionInts(xs, lo, hi)

		if p-lo < hi-p {
			quicksortInts(xs, lo, p-1)
			lo = p + 1
		} else {
			quicksortInts(xs, p+1, hi)
			hi = p - 1
		}
	}
}

func insertionSortInts(xs []int, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		v := xs[i]
		j := i - 1

		for j >= lo && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}

		xs[j+1] = v
	}
}

func partitionInts(xs []int, lo, hi int) int {
	mid := lo + (hi-lo)/2

	if xs[mid] < xs[lo] {
		xs[mid], xs[lo] = xs[lo], xs[mid]
	}

	if xs[hi] < xs[lo] {
		xs[hi], xs[lo] = xs[lo], xs[hi]
	}

	if xs[hi] < xs[mid] {
		xs[hi], xs[mid] = xs[mid], xs[hi]
	}

	pivot := xs[mid]
	xs[mid], xs[hi-1] = xs[hi-1], xs[mid]
	i := lo

	for j := lo; j < hi-1; j++ {
		if xs[j] < pivot {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}

	xs[i], xs[hi-1] = xs[hi-1], xs[i]
	return i
}

func dedupSorted(xs []int) []int {
	if len(xs) == 0 {
		return xs
	}

	out := xs[:1]

	for _, v := range xs[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

func rankOf(sortedDistinct []int, v int) int {
	lo, hi := 0, len(sortedDistinct)-1

	for lo < hi {
		mid := (lo + hi) / 2

		if sortedDistinct[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// skew runs the DC3 recursion on a string s of length n over alphabet
// [0, k), returning the suffix array of s[0:n]. s must have at least 3
// trailing zero sentinels beyond n for the triple reads to stay in range;
// skew appends them itself.
func (b builder) skew(s []int, n, k int) []int {
	if n < naiveThreshold {
		return b.naiveSuffixArray(s, n)
	}

	padded := make([]int, n+3)
	copy(padded, s[:n])

	sa := make([]int, n)
	b.suffixArrayDC3(padded, sa, n, k)
	return sa
}

// naiveSuffixArray sorts all n suffixes of s[0:n] directly by repeated
// comparison. Used as the recursion's base case for small n, where the
// constant factors of the linear construction outweigh its asymptotics.
func (builder) naiveSuffixArray(s []int, n int) []int {
	sa := make([]int, n)

	for i := range sa {
		sa[i] = i
	}

	less := func(i, j int) bool {
		for i < n && j < n {
			if s[i] != s[j] {
				return s[i] < s[j]
			}

			i++
			j++
		}

		return i >= n && j < n
	}

	quicksortBy(sa, less)
	return sa
}

func quicksortBy(xs []int, less func(i, j int) bool) {
	var qs func(lo, hi int)
	qs = func(lo, hi int) {
		if lo >= hi {
			return
		}

		pivot := xs[(lo+hi)/2]
		i, j := lo, hi

		for i <= j {
			for less(xs[i], pivot) {
				i++
			}

			for less(pivot, xs[j]) {
				j--
			}

			if i <= j {
				xs[i], xs[j] = xs[j], xs[i]
				i++
				j--
			}
		}

		qs(lo, j)
		qs(i, hi)
	}

	qs(0, len(xs)-1)
}

// getCounts fills dst[0:k+1] with a histogram of the key r[a[i]] for
// i in [0, n): dst[v] = number of a-entries whose key is v.
func getCounts(a, r, dst []int, n, k int) {
	for i := 0; i <= k; i++ {
		dst[i] = 0
	}

	for i := 0; i < n; i++ {
		dst[r[a[i]]]++
	}
}

// getBuckets turns a histogram src[0:k+1] into bucket start offsets in
// dst[0:k+1] by an exclusive prefix sum, so scattering n items key-by-key
// into those offsets in order yields a stable sort by key.
func getBuckets(src, dst []int, k int) {
	sum := 0

	for i := 0; i <= k; i++ {
		t := src[i]
		dst[i] = sum
		sum += t
	}
}

// radixPass stably sorts a (of length n, entries that index into s) into b
// by the key r[a[i]], for key range [0, k]. Sorting triples by their three
// components lexicographically is three calls to radixPass over
// successive offsets, least significant first.
func radixPass(a, b []int, r []int, n, k int) {
	c := make([]int, k+1)
	getCounts(a, r, c, n, k)

	starts := make([]int, k+1)
	getBuckets(c, starts, k)

	for i := 0; i < n; i++ {
		key := r[a[i]]
		b[starts[key]] = a[i]
		starts[key]++
	}
}

func leq2(a1, a2, b1, b2 int) bool {
	return a1 < b1 || (a1 == b1 && a2 <= b2)
}

func leq3(a1, a2, a3, b1, b2, b3 int) bool {
	return a1 < b1 || (a1 == b1 && leq2(a2, a3, b2, b3))
}

// suffixArrayDC3 is the Karkkainen-Sanders skew recursion: split positions
// into the mod-1/mod-2 class and the mod-0 class, recursively sort the
// former via a reduced alphabet, counting-sort the latter, then merge by
// case on the witness suffix's residue.
func (b builder) suffixArrayDC3(s []int, sa []int, n, k int) {
	n0 := (n + 2) / 3
	n1 := (n + 1) / 3
	n2 := n / 3
	n02 := n0 + n2

	s12 := make([]int, n02+3)
	sa12 := make([]int, n02+3)
	s0 := make([]int, n0)
	sa0 := make([]int, n0)

	j := 0

	for i := 0; i < n+(n0-n1); i++ {
		if i%3 != 0 {
			s12[j] = i
			j++
		}
	}

	radixPass(s12, sa12, s[2:], n02, k)
	radixPass(sa12, s12, s[1:], n02, k)
	radixPass(s12, sa12, s, n02, k)

	name := 0
	c0, c1, c2 := -1, -1, -1

	for i := 0; i < n02; i++ {
		if s[sa12[i]] != c0 || s[sa12[i]+1] != c1 || s[sa12[i]+2] != c2 {
			name++
			c0, c1, c2 = s[sa12[i]], s[sa12[i]+1], s[sa12[i]+2]
		}

		if sa12[i]%3 == 1 {
			s12[sa12[i]/3] = name
		} else {
			s12[sa12[i]/3+n0] = name
		}
	}

	if name < n02 {
		if n02 < naiveThreshold {
			copy(sa12, b.naiveSuffixArray(s12, n02))
		} else {
			b.suffixArrayDC3(s12, sa12, n02, name)
		}

		for i := 0; i < n02; i++ {
			s12[sa12[i]] = i + 1
		}
	} else {
		for i := 0; i < n02; i++ {
			sa12[s12[i]-1] = i
		}
	}

	j = 0

	for i := 0; i < n02; i++ {
		if sa12[i] < n0 {
			s0[j] = 3 * sa12[i]
			j++
		}
	}

	radixPass(s0, sa0, s, n0, k)

	getI := func(t int) int {
		if sa12[t] < n0 {
			return sa12[t]*3 + 1
		}

		return (sa12[t]-n0)*3 + 2
	}

	p, t, kk := 0, n0-n1, 0

	for ; kk < n; kk++ {
		i := getI(t)
		jIdx := sa0[p]

		var less bool

		if sa12[t] < n0 {
			less = leq2(s[i], s12[sa12[t]+n0], s[jIdx], s12[jIdx/3])
		} else {
			less = leq3(s[i], s[i+1], s12[sa12[t]-n0+1], s[jIdx], s[jIdx+1], s12[jIdx/3+n0])
		}

		if less {
			sa[kk] = i
			t++

			if t == n02 {
				kk++

				for ; p < n0; p++ {
					sa[kk] = sa0[p]
					kk++
				}

				break
			}
		} else {
			sa[kk] = jIdx
			p++

			if p == n0 {
				kk++

				for ; t < n02; t++ {
					sa[kk] = getI(t)
					kk++
				}

				break
			}
		}
	}
}
