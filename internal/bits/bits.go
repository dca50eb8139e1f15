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

// Package bits holds small integer helpers: floor and ceil of log2 (used
// by the RMQ stage for block and sparse-table sizing), a power-of-two test,
// and min/max of two ints.
package bits

// LOG2 is an array with 256 elements: LOG2[i] = floor(log2(i+1))
var LOG2 = [...]uint{
	0, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 8,
}

// Log2Floor returns floor(log2(x)) for x >= 1, via shift-and-table
// reduction over uint so block counts aren't limited to 2^32 items.
func Log2Floor(x uint) uint {
	var res uint

	for x >= 1<<16 {
		x >>= 16
		res += 16
	}

	if x >= 1<<8 {
		x >>= 8
		res += 8
	}

	return res + LOG2[x-1]
}

// Log2Ceil returns ceil(log2(x)) for x >= 1.
func Log2Ceil(x uint) uint {
	if x <= 1 {
		return 0
	}

	l := Log2Floor(x - 1)
	return l + 1
}

// IsPowerOf2 returns true if x is a power of two (x > 0).
func IsPowerOf2(x int) bool {
	return x > 0 && (x&(x-1)) == 0
}

// MaxInt returns the maximum of two ints.
func MaxInt(x, y int) int {
	if x > y {
		return x
	}

	return y
}

// MinInt returns the minimum of two ints.
func MinInt(x, y int) int {
	if x < y {
		return x
	}

	return y
}
