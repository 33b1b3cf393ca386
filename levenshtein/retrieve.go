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

import "github.com/vellion/levtrie"

// Retrieve compiles the Levenshtein automaton for (limit, query) and
// co-traverses it against idx, one compilation per call as spec.md §4.6
// prescribes — every key sharing a trie prefix reuses the same DFA
// states during the walk rather than paying a fresh edit-distance
// computation per key.
func Retrieve[C any, S any, V any](idx levtrie.Index[C, S, V], limit int, query S) (*levtrie.ResultIterator[C, V], error) {
	dfa, err := Of(idx.Alpha(), limit, query)
	if err != nil {
		return nil, err
	}
	return levtrie.Retrieve[C, S, V](idx, dfa), nil
}

// RetrieveList is the forced (eager) form of Retrieve.
func RetrieveList[C any, S any, V any](idx levtrie.Index[C, S, V], limit int, query S) ([]V, error) {
	dfa, err := Of(idx.Alpha(), limit, query)
	if err != nil {
		return nil, err
	}
	return levtrie.RetrieveList[C, S, V](idx, dfa), nil
}

// RetrieveBytes is the default byte-alphabet instantiation of Retrieve.
func RetrieveBytes[V any](idx levtrie.Index[byte, []byte, V], limit int, query string) (*levtrie.ResultIterator[byte, V], error) {
	return Retrieve[byte, []byte, V](idx, limit, []byte(query))
}

// RetrieveListBytes is the default byte-alphabet instantiation of
// RetrieveList.
func RetrieveListBytes[V any](idx levtrie.Index[byte, []byte, V], limit int, query string) ([]V, error) {
	return RetrieveList[byte, []byte, V](idx, limit, []byte(query))
}
