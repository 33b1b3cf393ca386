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

// Package cmd implements the levtrie command line tool: build a fuzzy
// index from a CSV file, query it within an edit-distance bound, and
// inspect a compiled automaton's edge table.
package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd is the base command every subcommand registers itself on.
var RootCmd = &cobra.Command{
	Use:   "levtrie",
	Short: "levtrie builds and queries a fuzzy (Levenshtein) string index",
}
