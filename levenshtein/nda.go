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

// Package levenshtein compiles a pattern and an edit-distance bound
// into a deterministic automaton: pattern -> NDA -> DFA. The NDA in
// this file is the nondeterministic half; it is built, handed to the
// subset construction in dfa.go, and then discarded.
package levenshtein

import "github.com/vellion/levtrie"

// kind discriminates the four NDA transition shapes from spec.md §3.
type kind int

const (
	kindMatch kind = iota
	kindAny
	kindEpsilon
	kindSuccess
)

// ndaState is the pair (i, j): consumed a query prefix aligned to
// P[0..i) using j edits.
type ndaState struct {
	i, j int
}

// transition is one outgoing edge from an NDA cell.
type transition[C any] struct {
	kind kind
	c    C // meaningful only when kind == kindMatch
	to   ndaState
}

// nda is the (|P|+1) x (k+1) grid of deduplicated transition lists.
type nda[C any, S any] struct {
	alpha   levtrie.Alphabet[C, S]
	pattern S
	limit   int
	rows    int // |P| + 1
	cols    int // limit + 1
	cells   [][][]transition[C]
}

func (n *nda[C, S]) flatten(s ndaState) int { return s.i*n.cols + s.j }

func (n *nda[C, S]) unflatten(idx int) ndaState {
	return ndaState{i: idx / n.cols, j: idx % n.cols}
}

func (n *nda[C, S]) size() int { return n.rows * n.cols }

// buildNDA constructs the NDA for pattern under the given edit
// distance limit, per spec.md §4.3.
func buildNDA[C any, S any](alpha levtrie.Alphabet[C, S], limit int, pattern S) *nda[C, S] {
	patLen := alpha.Len(pattern)
	n := &nda[C, S]{
		alpha:   alpha,
		pattern: pattern,
		limit:   limit,
		rows:    patLen + 1,
		cols:    limit + 1,
	}
	n.cells = make([][][]transition[C], n.rows)
	for i := range n.cells {
		n.cells[i] = make([][]transition[C], n.cols)
	}

	for i := 0; i < patLen; i++ {
		c := alpha.Get(pattern, i)
		for j := 0; j <= limit; j++ {
			n.add(i, j, transition[C]{kind: kindMatch, c: c, to: ndaState{i + 1, j}})
			if j < limit {
				n.add(i, j, transition[C]{kind: kindAny, to: ndaState{i + 1, j + 1}}) // substitution
				n.add(i, j, transition[C]{kind: kindAny, to: ndaState{i, j + 1}})     // deletion from query
				n.add(i, j, transition[C]{kind: kindEpsilon, to: ndaState{i + 1, j + 1}})
			}
		}
	}

	for j := 0; j <= limit; j++ {
		if j < limit {
			n.add(patLen, j, transition[C]{kind: kindAny, to: ndaState{patLen, j + 1}})
		}
		n.add(patLen, j, transition[C]{kind: kindSuccess})
	}

	return n
}

// add appends t to cell (i, j), deduplicating by structural equality
// (using Compare for the character, never host equality — the
// alphabet is parameterised).
func (n *nda[C, S]) add(i, j int, t transition[C]) {
	cell := n.cells[i][j]
	for _, existing := range cell {
		if n.equalTransitions(existing, t) {
			return
		}
	}
	n.cells[i][j] = append(cell, t)
}

func (n *nda[C, S]) equalTransitions(a, b transition[C]) bool {
	if a.kind != b.kind || a.to != b.to {
		return false
	}
	if a.kind == kindMatch {
		return n.alpha.Compare(a.c, b.c) == 0
	}
	return true
}
