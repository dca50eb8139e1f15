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

// Package rmq implements constant-time range-minimum queries over a
// sequence whose consecutive entries differ by exactly +-1 (the depth
// sequence of an Euler tour), via the four-Russians block decomposition:
// a sparse table over block minima plus a shared lookup table per
// within-block difference shape, so no query ever pays a log factor.
package rmq

import (
	"math"

	"github.com/fenwicks/lcpindex/internal/bits"
)

const debugAssert = false

// entry is a precomputed within-block answer: the minimum value relative
// to the block's first element, and the local offset (within the block)
// at which it occurs.
type entry struct {
	relMin int
	offset int
}

// RMQ answers argmin queries over the ±1 sequence it was built from.
// Every field is fixed at Build time; queries never mutate it, so a
// single RMQ can be shared across concurrent readers.
type RMQ struct {
	empty bool
	n     int
	b     int
	m     int

	firstValue []int
	blockLen   []int
	blockKey   []int
	tables     map[int][]entry

	// sparse[k][g] holds the (value, global index) minimum over the
	// 2^k blocks starting at block g, built by doubling.
	sparseVal [][]int
	sparseIdx [][]int
}

// Build constructs an RMQ structure over h, where consecutive entries of
// h must differ by exactly +1 or -1. Build is O(len(h)); Query is O(1).
func Build(h []int) *RMQ {
	n := len(h)

	if n == 0 {
		return &RMQ{empty: true}
	}

	if debugAssert {
		assertPlusMinusOne(h)
	}

	b := blockSize(n)
	m := (n + b - 1) / b

	r := &RMQ{
		n:          n,
		b:          b,
		m:          m,
		firstValue: make([]int, m),
		blockLen:   make([]int, m),
		blockKey:   make([]int, m),
		tables:     make(map[int][]entry),
	}

	argminGlobal := make([]int, m)

	for g := 0; g < m; g++ {
		start := g * b
		length := b

		if g == m-1 {
			length = n - start
		}

		block := h[start : start+length]
		r.blockLen[g] = length
		r.firstValue[g] = block[0]

		sig := signature(block)
		key := length*(1<<uint(b)) + sig
		r.blockKey[g] = key

		if _, ok := r.tables[key]; !ok {
			r.tables[key] = buildBlockTable(block)
		}

		localArgmin := 0

		for i := 1; i < length; i++ {
			if block[i] < block[localArgmin] {
				localArgmin = i
			}
		}

		argminGlobal[g] = start + localArgmin
	}

	r.buildSparseTable(h, argminGlobal)
	return r
}

// blockSize computes the four-Russians block length b = max(1, ceil(log2(n)/4)):
// large enough that the sparse table over m = n/b blocks stays O(n), small
// enough that a per-shape table of size O(2^b * b^2) stays sublinear in n.
func blockSize(n int) int {
	c := bits.Log2Ceil(uint(n))
	b := (int(c) + 3) / 4

	if b < 1 {
		b = 1
	}

	return b
}

// signature encodes the +-1 difference shape of block as a b-1 bit binary
// number (bit i set when h[i+1]-h[i] == +1). Blocks of different length
// never collide on this encoding because the key combines it with the
// block's length (see Build), so the shared table lookup stays correct
// for the one block whose length differs from the common block size b
// (the last, possibly short, block).
func signature(block []int) int {
	sig := 0

	for i := 0; i+1 < len(block); i++ {
		if block[i+1]-block[i] == 1 {
			sig |= 1 << uint(i)
		}
	}

	return sig
}

// queryIndex maps a within-block range [l, r] (0 <= l <= r < length) to a
// row in the triangular precomputed-answer table.
func queryIndex(l, r int) int {
	return r*(r+1)/2 + l
}

// buildBlockTable computes, for every 0 <= l <= r < len(block), the
// minimum of block[l..r] relative to block[0] and the offset at which it
// occurs (leftmost on ties). Cost is O(length^2), paid once per distinct
// (length, signature) pair and shared by every block with that shape.
func buildBlockTable(block []int) []entry {
	length := len(block)
	table := make([]entry, queryIndex(length-1, length-1)+1)

	for r := 0; r < length; r++ {
		bestIdx := r
		bestVal := block[r]

		for l := r; l >= 0; l-- {
			if block[l] <= bestVal {
				bestVal = block[l]
				bestIdx = l
			}

			table[queryIndex(l, r)] = entry{relMin: bestVal - block[0], offset: bestIdx}
		}
	}

	return table
}

func (r *RMQ) buildSparseTable(h []int, argminGlobal []int) {
	m := r.m
	levels := 1

	for (1 << uint(levels)) <= m {
		levels++
	}

	r.sparseVal = make([][]int, levels)
	r.sparseIdx = make([][]int, levels)

	r.sparseVal[0] = make([]int, m)
	r.sparseIdx[0] = make([]int, m)

	for g := 0; g < m; g++ {
		idx := argminGlobal[g]
		r.sparseVal[0][g] = h[idx]
		r.sparseIdx[0][g] = idx
	}

	for k := 1; k < levels; k++ {
		half := 1 << uint(k-1)
		r.sparseVal[k] = make([]int, m)
		r.sparseIdx[k] = make([]int, m)

		for g := 0; g < m; g++ {
			v1, i1 := r.sparseVal[k-1][g], r.sparseIdx[k-1][g]

			if g+half < m {
				v2, i2 := r.sparseVal[k-1][g+half], r.sparseIdx[k-1][g+half]

				if v2 < v1 {
					v1, i1 = v2, i2
				}
			}

			r.sparseVal[k][g] = v1
			r.sparseIdx[k][g] = i1
		}
	}
}

// sparseRangeMin returns the (value, index) minimum over blocks
// [lo, hi] inclusive, lo <= hi, using two overlapping power-of-two ranges.
func (r *RMQ) sparseRangeMin(lo, hi int) (int, int) {
	length := hi - lo + 1
	k := int(bits.Log2Floor(uint(length)))
	half := 1 << uint(k)

	v1, i1 := r.sparseVal[k][lo], r.sparseIdx[k][lo]
	v2, i2 := r.sparseVal[k][hi-half+1], r.sparseIdx[k][hi-half+1]

	if v2 < v1 {
		return v2, i2
	}

	return v1, i1
}

// QueryArgmin returns an index t in [l, r] such that h[t] is minimal over
// h[l..r], breaking ties by the leftmost such t. l and r must satisfy
// 0 <= l <= r < len(h); violating that is a programming error.
func (r *RMQ) QueryArgmin(l, rr int) int {
	if r.empty {
		panic("rmq: query against an empty structure")
	}

	if l < 0 || rr < l || rr >= r.n {
		panic("rmq: query range out of bounds")
	}

	gL, gR := l/r.b, rr/r.b
	lL, lR := l%r.b, rr%r.b

	if gL == gR {
		e := r.tables[r.blockKey[gL]][queryIndex(lL, lR)]
		return gL*r.b + e.offset
	}

	bestVal := math.MaxInt64
	bestIdx := -1

	consider := func(val, idx int) {
		if val < bestVal || (val == bestVal && idx < bestIdx) {
			bestVal = val
			bestIdx = idx
		}
	}

	leftEntry := r.tables[r.blockKey[gL]][queryIndex(lL, r.blockLen[gL]-1)]
	consider(r.firstValue[gL]+leftEntry.relMin, gL*r.b+leftEntry.offset)

	rightEntry := r.tables[r.blockKey[gR]][queryIndex(0, lR)]
	consider(r.firstValue[gR]+rightEntry.relMin, gR*r.b+rightEntry.offset)

	if gR-gL-1 > 0 {
		v, i := r.sparseRangeMin(gL+1, gR-1)
		consider(v, i)
	}

	return bestIdx
}

func assertPlusMinusOne(h []int) {
	for i := 0; i+1 < len(h); i++ {
		d := h[i+1] - h[i]

		if d != 1 && d != -1 {
			panic("rmq: ±1 invariant violated")
		}
	}
}
