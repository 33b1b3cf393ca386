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

package levtrie

// matchFrame is a seqFrame paired with the automaton state reached by
// descending to this node — the co-traversal's product state.
type matchFrame[C any, V any] struct {
	n            *node[C, V]
	state        int
	visitedValue bool
	childIdx     int
}

// ResultIterator lazily enumerates the values retrieved by Retrieve.
// Each Next pulls just far enough into the trie to produce (or rule
// out) the next match; a subtree is pruned the instant the automaton
// has no transition for the edge into it, so no more of the trie is
// explored than the query demands.
type ResultIterator[C any, V any] struct {
	auto  Automaton[C]
	stack []matchFrame[C, V]
}

// Retrieve co-traverses idx and auto: it walks idx in pre-order,
// stepping auto alongside trie descent, and yields the value of every
// node whose automaton state is a match. auto is typically a compiled
// Levenshtein DFA (see package levenshtein) but any Automaton[C]
// works, including AlwaysMatch for an unconstrained pre-order walk.
func Retrieve[C any, S any, V any](idx Index[C, S, V], auto Automaton[C]) *ResultIterator[C, V] {
	return &ResultIterator[C, V]{
		auto:  auto,
		stack: []matchFrame[C, V]{{n: idx.root, state: auto.Start()}},
	}
}

// RetrieveList is the forced (eager) form of Retrieve.
func RetrieveList[C any, S any, V any](idx Index[C, S, V], auto Automaton[C]) []V {
	it := Retrieve(idx, auto)
	var out []V
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Next advances the iterator and returns the next matching value, or
// (zero, false) once the reachable part of the trie is exhausted.
func (it *ResultIterator[C, V]) Next() (V, bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]

		if !top.visitedValue {
			top.visitedValue = true
			if top.n != nil && top.n.hasValue && it.auto.IsMatch(top.state) {
				return top.n.value, true
			}
		}

		if top.n != nil && top.childIdx < len(top.n.children) {
			ch := top.n.children[top.childIdx]
			top.childIdx++
			nextState, ok := it.auto.Step(top.state, ch.key)
			if !ok {
				continue // automaton blocked: prune this subtree
			}
			it.stack = append(it.stack, matchFrame[C, V]{n: ch.node, state: nextState})
			continue
		}

		it.stack = it.stack[:len(it.stack)-1]
	}

	var zero V
	return zero, false
}
