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

// Package lcparray builds the LCP array for an already-sorted suffix array
// via Kasai's algorithm: a single left-to-right pass over the original
// sequence, amortized O(1) per position thanks to the
// lcp[rank[i+1]] >= lcp[rank[i]] - 1 invariant.
package lcparray

// Build computes lcp where lcp[k] is the length of the longest common
// prefix between the suffixes at sa[k] and sa[k+1], for k in [0, n-1).
// lcp[n-1] is defined as 0 and is never read by callers that only walk
// adjacent pairs.
func Build(a, sa, rank []int) []int {
	n := len(a)
	lcp := make([]int, n)

	if n == 0 {
		return lcp
	}

	h := 0

	for i := 0; i < n; i++ {
		if rank[i] == n-1 {
			h = 0
			lcp[n-1] = 0
			continue
		}

		j := sa[rank[i]+1]

		for i+h < n && j+h < n && a[i+h] == a[j+h] {
			h++
		}

		lcp[rank[i]] = h

		if h > 0 {
			h--
		}
	}

	return lcp
}
