//  Copyright (c) 2017 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package editdistance provides the classical two-row dynamic
// programming Levenshtein distance, used as the oracle the automaton
// pipeline is tested against. It is not used by the automaton itself.
package editdistance

import "github.com/vellion/levtrie"

// Distance returns the Levenshtein edit distance between a and b:
// the minimum number of single-element insertions, deletions, and
// substitutions needed to transform a into b.
func Distance[C any, S any](alpha levtrie.Alphabet[C, S], a, b S) int {
	la, lb := alpha.Len(a), alpha.Len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	if sequenceEqual(alpha, a, b) {
		return 0
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		ca := alpha.Get(a, i-1)
		for j := 1; j <= lb; j++ {
			cb := alpha.Get(b, j-1)
			cost := 1
			if alpha.Compare(ca, cb) == 0 {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}

	return prev[lb]
}

func sequenceEqual[C any, S any](alpha levtrie.Alphabet[C, S], a, b S) bool {
	la, lb := alpha.Len(a), alpha.Len(b)
	if la != lb {
		return false
	}
	for i := 0; i < la; i++ {
		if alpha.Compare(alpha.Get(a, i), alpha.Get(b, i)) != 0 {
			return false
		}
	}
	return true
}

// DistanceBytes is the default byte-string instantiation of Distance.
func DistanceBytes(a, b []byte) int {
	return Distance[byte, []byte](levtrie.ByteAlphabet{}, a, b)
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
