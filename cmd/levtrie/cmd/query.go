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
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vellion/levtrie"
	"github.com/vellion/levtrie/levenshtein"
)

var queryLimit int

var queryCmd = &cobra.Command{
	Use:   "query [csv file] [query string]",
	Short: "Builds a fuzzy index from a CSV file of key,value rows and retrieves values within --limit edits of the query string.",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("csv path and query string are required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := loadIndex(args[0])
		if err != nil {
			return err
		}

		values, err := levenshtein.RetrieveListBytes(idx, queryLimit, args[1])
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

func loadIndex(path string) (levtrie.Index[byte, []byte, string], error) {
	f, err := os.Open(path)
	if err != nil {
		return levtrie.Index[byte, []byte, string]{}, err
	}
	defer f.Close()

	idx := levtrie.Empty[byte, []byte, string](levtrie.ByteAlphabet{})
	r := csv.NewReader(f)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return levtrie.Index[byte, []byte, string]{}, err
		}
		if len(record) < 2 {
			return levtrie.Index[byte, []byte, string]{}, fmt.Errorf("row %v: expected at least 2 columns", record)
		}
		idx = idx.Add([]byte(record[0]), record[1])
	}
	return idx, nil
}

func init() {
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "k", 1, "maximum edit distance")
	RootCmd.AddCommand(queryCmd)
}
