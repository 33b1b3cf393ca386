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

package levenshtein

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vellion/levtrie"
	"github.com/willf/bitset"
)

// StateLimit bounds the number of states a compiled DFA may contain.
// In practice the "otherwise" edge keeps compiled automata far below
// this, but a pathological (limit, pattern) pair is rejected rather
// than left to run away.
const StateLimit = 10000

// ErrNegativeLimit is returned when the edit-distance bound is < 0.
var ErrNegativeLimit = errors.New("levenshtein: distance limit must be >= 0")

// ErrTooManyStates is returned if compiling a pattern would require
// more than StateLimit DFA states.
var ErrTooManyStates = fmt.Errorf("levenshtein: dfa contains more than %d states", StateLimit)

type dfaEdge[C any] struct {
	c    C
	next int
}

type dfaState[C any] struct {
	edges     []dfaEdge[C]
	otherwise int // -1 if none
	final     bool
}

// DFA is the compiled, immutable Levenshtein automaton. All of its
// methods are read-only and safe to call concurrently from multiple
// goroutines once construction has returned.
type DFA[C any, S any] struct {
	alpha  levtrie.Alphabet[C, S]
	states []dfaState[C]
}

// Of compiles a DFA recognising {Q : editDistance(pattern, Q) <= limit}.
func Of[C any, S any](alpha levtrie.Alphabet[C, S], limit int, pattern S) (*DFA[C, S], error) {
	if limit < 0 {
		return nil, ErrNegativeLimit
	}
	n := buildNDA(alpha, limit, pattern)
	b := &dfaBuilder[C, S]{
		alpha: alpha,
		nda:   n,
		cache: make(map[string]int, 1024),
	}
	if err := b.build(); err != nil {
		return nil, err
	}
	return &DFA[C, S]{alpha: alpha, states: b.states}, nil
}

// OfBytes is the default byte-alphabet instantiation of Of.
func OfBytes(limit int, pattern string) (*DFA[byte, []byte], error) {
	return Of[byte, []byte](levtrie.ByteAlphabet{}, limit, []byte(pattern))
}

// OfList is Of taking the pattern as an element list rather than an
// already-assembled sequence, for alphabets where building S by hand
// would be awkward.
func OfList[C any, S any](alpha levtrie.Alphabet[C, S], limit int, chars []C) (*DFA[C, S], error) {
	return Of(alpha, limit, alpha.FromList(chars))
}

// OfListBytes is the byte-alphabet instantiation of OfList.
func OfListBytes(limit int, chars []byte) (*DFA[byte, []byte], error) {
	return OfList[byte, []byte](levtrie.ByteAlphabet{}, limit, chars)
}

// Start returns the DFA's start state, 0.
func (d *DFA[C, S]) Start() int { return 0 }

// IsMatch reports whether s is a final (accepting) state.
func (d *DFA[C, S]) IsMatch(s int) bool { return d.states[s].final }

// Step runs one transition from state s on character c: an explicit
// edge for c if one exists, else the otherwise edge, else "stuck".
func (d *DFA[C, S]) Step(s int, c C) (int, bool) {
	st := &d.states[s]
	if i, ok := findEdge(d.alpha, st.edges, c); ok {
		return st.edges[i].next, true
	}
	if st.otherwise >= 0 {
		return st.otherwise, true
	}
	return -1, false
}

// MatchWith runs the DFA over query end to end, per spec.md §4.5.
func (d *DFA[C, S]) MatchWith(query S) bool {
	state := d.Start()
	n := d.alpha.Len(query)
	for i := 0; i < n; i++ {
		next, ok := d.Step(state, d.alpha.Get(query, i))
		if !ok {
			return false
		}
		state = next
	}
	return d.IsMatch(state)
}

// NumStates returns the number of states in the compiled DFA.
func (d *DFA[C, S]) NumStates() int { return len(d.states) }

func findEdge[C any, S any](alpha levtrie.Alphabet[C, S], edges []dfaEdge[C], c C) (int, bool) {
	i := sort.Search(len(edges), func(i int) bool {
		return alpha.Compare(edges[i].c, c) >= 0
	})
	if i < len(edges) && alpha.Compare(edges[i].c, c) == 0 {
		return i, true
	}
	return 0, false
}

// dfaBuilder runs subset construction over the NDA: ε-closed state
// sets become DFA states, discovered via a worklist and memoised
// through a StateSet -> DfaId map. Both the worklist and the map are
// local to one build call.
type dfaBuilder[C any, S any] struct {
	alpha  levtrie.Alphabet[C, S]
	nda    *nda[C, S]
	states []dfaState[C]
	cache  map[string]int
}

func (b *dfaBuilder[C, S]) build() error {
	start := bitset.New(uint(b.nda.size()))
	start.Set(uint(b.nda.flatten(ndaState{0, 0})))
	start = b.saturate(start)

	// stateFor's first call always allocates id 0, which is why
	// DFA.Start reports a constant 0 rather than storing an id.
	b.stateFor(start)

	// A state-set is pushed to the worklist exactly once: the moment
	// stateFor allocates it a fresh id, isNew is true precisely once
	// per distinct set (the cache map makes every later lookup of the
	// same set report isNew == false).
	worklist := []*bitset.BitSet{start}

	for len(worklist) > 0 {
		set := worklist[0]
		worklist = worklist[1:]
		id, _ := b.stateFor(set)

		for _, c := range b.charSet(set) {
			next := b.stepChar(set, c)
			if next == nil {
				continue
			}
			nextID, isNew := b.stateFor(next)
			b.states[id].edges = append(b.states[id].edges, dfaEdge[C]{c: c, next: nextID})
			if isNew {
				worklist = append(worklist, next)
			}
		}
		sort.Slice(b.states[id].edges, func(i, j int) bool {
			return b.alpha.Compare(b.states[id].edges[i].c, b.states[id].edges[j].c) < 0
		})

		if star := b.stepAny(set); star != nil {
			starID, isNew := b.stateFor(star)
			b.states[id].otherwise = starID
			if isNew {
				worklist = append(worklist, star)
			}
		}

		if len(b.states) > StateLimit {
			return ErrTooManyStates
		}
	}

	return nil
}

// stateFor returns the DFA id for an ε-closed state set, allocating a
// fresh state the first time a given set is seen.
func (b *dfaBuilder[C, S]) stateFor(set *bitset.BitSet) (id int, isNew bool) {
	k := bitsetKey(set)
	if id, ok := b.cache[k]; ok {
		return id, false
	}
	final := false
	for i, e := set.NextSet(0); e; i, e = set.NextSet(i + 1) {
		s := b.nda.unflatten(int(i))
		for _, t := range b.nda.cells[s.i][s.j] {
			if t.kind == kindSuccess {
				final = true
			}
		}
	}
	b.states = append(b.states, dfaState[C]{otherwise: -1, final: final})
	id = len(b.states) - 1
	b.cache[k] = id
	return id, true
}

// saturate computes the ε-closure of s via a FIFO worklist.
func (b *dfaBuilder[C, S]) saturate(s *bitset.BitSet) *bitset.BitSet {
	closure := s.Clone()
	var worklist []int
	for i, e := closure.NextSet(0); e; i, e = closure.NextSet(i + 1) {
		worklist = append(worklist, int(i))
	}
	for len(worklist) > 0 {
		idx := worklist[0]
		worklist = worklist[1:]
		st := b.nda.unflatten(idx)
		for _, t := range b.nda.cells[st.i][st.j] {
			if t.kind != kindEpsilon {
				continue
			}
			di := uint(b.nda.flatten(t.to))
			if !closure.Test(di) {
				closure.Set(di)
				worklist = append(worklist, int(di))
			}
		}
	}
	return closure
}

// charSet returns the distinct Match labels reachable from any state
// in s, deduplicated via Compare and sorted for deterministic output.
func (b *dfaBuilder[C, S]) charSet(s *bitset.BitSet) []C {
	var out []C
	for i, e := s.NextSet(0); e; i, e = s.NextSet(i + 1) {
		st := b.nda.unflatten(int(i))
		for _, t := range b.nda.cells[st.i][st.j] {
			if t.kind != kindMatch {
				continue
			}
			dup := false
			for _, existing := range out {
				if b.alpha.Compare(existing, t.c) == 0 {
					dup = true
					break
				}
			}
			if !dup {
				out = append(out, t.c)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return b.alpha.Compare(out[i], out[j]) < 0 })
	return out
}

// stepChar computes δ(S, c): Match(c) destinations union Any
// destinations, ε-closed. Returns nil if the result is empty.
func (b *dfaBuilder[C, S]) stepChar(s *bitset.BitSet, c C) *bitset.BitSet {
	dest := bitset.New(uint(b.nda.size()))
	matched := false
	for i, e := s.NextSet(0); e; i, e = s.NextSet(i + 1) {
		st := b.nda.unflatten(int(i))
		for _, t := range b.nda.cells[st.i][st.j] {
			switch {
			case t.kind == kindMatch && b.alpha.Compare(t.c, c) == 0:
				dest.Set(uint(b.nda.flatten(t.to)))
				matched = true
			case t.kind == kindAny:
				dest.Set(uint(b.nda.flatten(t.to)))
				matched = true
			}
		}
	}
	if !matched {
		return nil
	}
	return b.saturate(dest)
}

// stepAny computes δ(S, *): Any destinations only, ε-closed. Returns
// nil if the result is empty.
func (b *dfaBuilder[C, S]) stepAny(s *bitset.BitSet) *bitset.BitSet {
	dest := bitset.New(uint(b.nda.size()))
	matched := false
	for i, e := s.NextSet(0); e; i, e = s.NextSet(i + 1) {
		st := b.nda.unflatten(int(i))
		for _, t := range b.nda.cells[st.i][st.j] {
			if t.kind == kindAny {
				dest.Set(uint(b.nda.flatten(t.to)))
				matched = true
			}
		}
	}
	if !matched {
		return nil
	}
	return b.saturate(dest)
}

// bitsetKey canonicalises a state set into a map key. Built from the
// set's member indices rather than a library-specific byte encoding,
// in the same spirit as the teacher's fmt.Sprintf("%v", levState)
// cache key in levenshtein/dfa.go, but over a set of NDA states
// instead of one integer-cost row.
func bitsetKey(s *bitset.BitSet) string {
	var sb strings.Builder
	for i, e := s.NextSet(0); e; i, e = s.NextSet(i + 1) {
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
		sb.WriteByte(',')
	}
	return sb.String()
}
