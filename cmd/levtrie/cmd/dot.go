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

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vellion/levtrie/levenshtein"
)

var dotCmd = &cobra.Command{
	Use:   "dot [pattern] [limit]",
	Short: "Compiles a Levenshtein automaton for pattern/limit and prints its edge table.",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("pattern and limit are required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("limit must be an integer: %w", err)
		}

		dfa, err := levenshtein.OfBytes(limit, args[0])
		if err != nil {
			return err
		}

		return levenshtein.DebugPrint(dfa, cmd.OutOrStdout())
	},
}

func init() {
	RootCmd.AddCommand(dotCmd)
}
