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
	"bufio"
	"fmt"
	"io"
)

// DebugPrint writes a human-readable edge listing for the compiled
// DFA to w: for each state, a header line with its id and whether it
// is final, then one line per sorted explicit edge and one line for
// its otherwise target when it has one. The exact format is not
// part of the contract (spec.md §9); it exists for inspection, not
// for machine consumption.
func DebugPrint[C any, S any](d *DFA[C, S], w io.Writer) error {
	bw := bufio.NewWriter(w)

	for id, st := range d.states {
		mark := ""
		if st.final {
			mark = " [final]"
		}
		if _, err := fmt.Fprintf(bw, "state %d%s\n", id, mark); err != nil {
			return err
		}
		for _, e := range st.edges {
			if _, err := fmt.Fprintf(bw, "  %v -> %d\n", e.c, e.next); err != nil {
				return err
			}
		}
		if st.otherwise >= 0 {
			if _, err := fmt.Fprintf(bw, "  otherwise -> %d\n", st.otherwise); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
