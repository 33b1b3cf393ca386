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

package levtrie_test

import (
	"fmt"
	"sort"
	"testing"

	. "github.com/vellion/levtrie"
	"github.com/vellion/levtrie/editdistance"
	"github.com/vellion/levtrie/levenshtein"
)

func helloHallIndex() Index[byte, []byte, string] {
	return OfList[byte, []byte, string](ByteAlphabet{}, []Pair[[]byte, string]{
		{Key: []byte("hello"), Value: "world"},
		{Key: []byte("hall"), Value: "vestibule"},
	})
}

func asSet(vs []string) map[string]bool {
	out := make(map[string]bool, len(vs))
	for _, v := range vs {
		out[v] = true
	}
	return out
}

func TestRetrieveListHell(t *testing.T) {
	idx := helloHallIndex()
	got, err := levenshtein.RetrieveListBytes(idx, 1, "hell")
	if err != nil {
		t.Fatalf("RetrieveListBytes: %v", err)
	}
	want := asSet([]string{"world", "vestibule"})
	if got2 := asSet(got); len(got2) != len(want) || !setsEqual(got2, want) {
		t.Errorf("RetrieveListBytes(1, idx, %q) = %v, want %v", "hell", got, want)
	}
}

func TestRetrieveListHall(t *testing.T) {
	idx := helloHallIndex()
	got, err := levenshtein.RetrieveListBytes(idx, 1, "hall")
	if err != nil {
		t.Fatalf("RetrieveListBytes: %v", err)
	}
	want := asSet([]string{"vestibule"})
	if got2 := asSet(got); !setsEqual(got2, want) {
		t.Errorf("RetrieveListBytes(1, idx, %q) = %v, want %v", "hall", got, want)
	}
}

func TestRetrieveListExactHello(t *testing.T) {
	idx := helloHallIndex()
	got, err := levenshtein.RetrieveListBytes(idx, 0, "hello")
	if err != nil {
		t.Fatalf("RetrieveListBytes: %v", err)
	}
	if len(got) != 1 || got[0] != "world" {
		t.Errorf("RetrieveListBytes(0, idx, %q) = %v, want [world]", "hello", got)
	}
}

func setsEqual(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// TestRetrieveRespectsDistanceBound is spec.md's property 3: every
// value retrieved really is within the bound, verified against the
// independent editdistance oracle.
func TestRetrieveRespectsDistanceBound(t *testing.T) {
	pairs := []Pair[[]byte, string]{
		{Key: []byte("hello"), Value: "hello"},
		{Key: []byte("hall"), Value: "hall"},
		{Key: []byte("help"), Value: "help"},
		{Key: []byte("held"), Value: "held"},
		{Key: []byte("world"), Value: "world"},
		{Key: []byte("word"), Value: "word"},
	}
	idx := OfList[byte, []byte, string](ByteAlphabet{}, pairs)

	for _, query := range []string{"hell", "held", "wor", "xyz"} {
		for k := 0; k <= 2; k++ {
			got, err := levenshtein.RetrieveListBytes(idx, k, query)
			if err != nil {
				t.Fatalf("RetrieveListBytes(%d, idx, %q): %v", k, query, err)
			}
			for _, v := range got {
				d := editdistance.DistanceBytes([]byte(query), []byte(v))
				if d > k {
					t.Errorf("retrieve(%d, %q) returned %q at distance %d > %d", k, query, v, d, k)
				}
			}
		}
	}
}

// TestSelfRetrievalAtScale is spec.md's property 4: every key in a
// larger index retrieves itself at distance 1.
func TestSelfRetrievalAtScale(t *testing.T) {
	var pairs []Pair[[]byte, string]
	for i := 0; i < 500; i++ {
		key := fmt.Sprintf("word%04d", i)
		pairs = append(pairs, Pair[[]byte, string]{Key: []byte(key), Value: key})
	}
	idx := OfList[byte, []byte, string](ByteAlphabet{}, pairs)

	for _, p := range pairs {
		got, err := levenshtein.RetrieveListBytes(idx, 1, string(p.Key))
		if err != nil {
			t.Fatalf("RetrieveListBytes(1, idx, %q): %v", p.Key, err)
		}
		found := false
		for _, v := range got {
			if v == p.Value {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("retrieve(1, idx, %q) missing self-value %q (got %v)", p.Key, p.Value, got)
		}
	}
}

func TestRetrieveDeterministicOrder(t *testing.T) {
	idx := helloHallIndex()
	a, err := levenshtein.RetrieveListBytes(idx, 2, "hxll")
	if err != nil {
		t.Fatalf("RetrieveListBytes: %v", err)
	}
	b, err := levenshtein.RetrieveListBytes(idx, 2, "hxll")
	if err != nil {
		t.Fatalf("RetrieveListBytes: %v", err)
	}
	if fmt.Sprint(a) != fmt.Sprint(b) {
		t.Errorf("retrieve order not deterministic across calls: %v vs %v", a, b)
	}
}

func TestRetrieveEmptyIndex(t *testing.T) {
	idx := Empty[byte, []byte, string](ByteAlphabet{})
	got, err := levenshtein.RetrieveListBytes(idx, 2, "anything")
	if err != nil {
		t.Fatalf("RetrieveListBytes: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("retrieve on empty index returned %v, want none", got)
	}
}

func TestRetrieveUsingAlwaysMatch(t *testing.T) {
	idx := helloHallIndex()
	got := RetrieveList[byte, []byte, string](idx, AlwaysMatch[byte]{})
	sort.Strings(got)
	want := []string{"vestibule", "world"}
	sort.Strings(want)
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("RetrieveList with AlwaysMatch = %v, want %v", got, want)
	}
}
