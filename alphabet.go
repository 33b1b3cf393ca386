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

// Package levtrie implements a Levenshtein automaton and a companion
// persistent trie index that retrieves values whose keys lie within a
// bounded edit distance of a query, without enumerating the dictionary.
package levtrie

// Alphabet is the capability pack the core algorithms need over some
// opaque element type C and a sequence type S of those elements. It is
// the only place the core assumes anything about what a "character" is;
// everything downstream (NDA, DFA, trie) is written against it rather
// than against []byte directly.
type Alphabet[C any, S any] interface {
	// Len returns the number of elements in s.
	Len(s S) int

	// Get returns the element at position i, 0 <= i < Len(s).
	Get(s S, i int) C

	// FromList builds a sequence from an element list.
	FromList(cs []C) S

	// Compare returns <0, 0, >0 as a is less than, equal to, or
	// greater than b, giving C a total order.
	Compare(a, b C) int
}

// ByteAlphabet is the default Alphabet specialisation: C = byte,
// S = []byte. No normalisation is performed; equality is bit-identity
// of the byte.
type ByteAlphabet struct{}

// Len returns len(s).
func (ByteAlphabet) Len(s []byte) int { return len(s) }

// Get returns s[i].
func (ByteAlphabet) Get(s []byte, i int) byte { return s[i] }

// FromList copies cs into a fresh []byte.
func (ByteAlphabet) FromList(cs []byte) []byte {
	out := make([]byte, len(cs))
	copy(out, cs)
	return out
}

// Compare orders bytes numerically.
func (ByteAlphabet) Compare(a, b byte) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
