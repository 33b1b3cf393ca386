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
	"strings"
	"testing"

	"github.com/vellion/levtrie/editdistance"
)

func TestMatchWithHello(t *testing.T) {
	dfa, err := OfBytes(1, "hello")
	if err != nil {
		t.Fatalf("OfBytes: %v", err)
	}

	tests := []struct {
		desc  string
		query string
		want  bool
	}{
		{"S1: one deletion", "hell", true},
		{"S2: one substitution and one deletion", "hall", false},
		{"S3: one substitution", "hellp", true},
		{"self", "hello", true},
		{"far away", "goodbye", false},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			got := dfa.MatchWith([]byte(tc.query))
			if got != tc.want {
				t.Errorf("MatchWith(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestNegativeLimitRejected(t *testing.T) {
	if _, err := OfBytes(-1, "cat"); err != ErrNegativeLimit {
		t.Fatalf("OfBytes(-1, ...) error = %v, want %v", err, ErrNegativeLimit)
	}
}

func TestSelfAcceptance(t *testing.T) {
	words := []string{"", "a", "cat", "hello", "distance", "aaaaaaaaaaaa"}
	for _, w := range words {
		for k := 0; k <= 2; k++ {
			dfa, err := OfBytes(k, w)
			if err != nil {
				t.Fatalf("OfBytes(%d, %q): %v", k, w, err)
			}
			if !dfa.MatchWith([]byte(w)) {
				t.Errorf("automaton(%d, %q) does not accept itself", k, w)
			}
		}
	}
}

func TestSingleEditStability(t *testing.T) {
	words := []string{"hello", "kitten", "a", "abcdef"}
	alphabet := "abcdefghijklmnopqrstuvwxyz"
	for _, w := range words {
		dfa, err := OfBytes(1, w)
		if err != nil {
			t.Fatalf("OfBytes(1, %q): %v", w, err)
		}
		for i := 0; i < len(w); i++ {
			for _, c := range alphabet {
				mutated := []byte(w)
				mutated[i] = byte(c)
				if !dfa.MatchWith(mutated) {
					t.Errorf("automaton(1, %q) rejects single-substitution mutation %q", w, mutated)
				}
			}
		}
	}
}

func TestMatchWithAgreesWithEditDistance(t *testing.T) {
	queries := []string{"", "a", "ab", "hello", "hall", "hell", "hellp", "help", "world", "held"}
	patterns := []string{"hello", "cat", ""}

	for _, p := range patterns {
		for k := 0; k <= 2; k++ {
			dfa, err := OfBytes(k, p)
			if err != nil {
				t.Fatalf("OfBytes(%d, %q): %v", k, p, err)
			}
			for _, q := range queries {
				want := editdistance.DistanceBytes([]byte(p), []byte(q)) <= k
				got := dfa.MatchWith([]byte(q))
				if got != want {
					t.Errorf("MatchWith(automaton(%d, %q), %q) = %v, want %v (edit distance %d)",
						k, p, q, got, want, editdistance.DistanceBytes([]byte(p), []byte(q)))
				}
			}
		}
	}
}

func TestDebugPrint(t *testing.T) {
	dfa, err := OfBytes(1, "ab")
	if err != nil {
		t.Fatalf("OfBytes: %v", err)
	}
	var sb strings.Builder
	if err := DebugPrint(dfa, &sb); err != nil {
		t.Fatalf("DebugPrint: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "state 0") {
		t.Errorf("DebugPrint output missing state 0 header: %s", out)
	}
	if strings.Count(out, "state ") != dfa.NumStates() {
		t.Errorf("DebugPrint printed %d states, want %d", strings.Count(out, "state "), dfa.NumStates())
	}
}
