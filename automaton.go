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

// Automaton is the contract Retrieve co-traverses against: a state
// machine over C that can be stepped one element at a time and asked
// whether the current state is accepting. levenshtein.DFA implements
// this for the Levenshtein automaton; it is kept as its own interface
// (rather than folding DFA directly into Retrieve) so that retrieval
// isn't wedded to one particular automaton implementation.
type Automaton[C any] interface {
	// Start returns the start state.
	Start() int

	// IsMatch returns whether state s is accepting.
	IsMatch(s int) bool

	// Step returns the next state after consuming c from state s, or
	// (-1, false) if no transition exists (the automaton is stuck).
	Step(s int, c C) (int, bool)
}

// AlwaysMatch is an Automaton that accepts every state and never gets
// stuck; used where a co-traversal caller wants an unconstrained walk.
type AlwaysMatch[C any] struct{}

// Start returns the AlwaysMatch start state.
func (AlwaysMatch[C]) Start() int { return 0 }

// IsMatch always returns true.
func (AlwaysMatch[C]) IsMatch(int) bool { return true }

// Step always succeeds and stays in the same state.
func (AlwaysMatch[C]) Step(s int, _ C) (int, bool) { return s, true }
