// Copyright 2026 The xmlcore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lattice-xml/xmlcore"
)

var queryAll bool

var queryCmd = &cobra.Command{
	Use:   "query <path> [file]",
	Short: "Find elements matching a path expression",
	Long: `Query parses a document and evaluates a slash-separated path
expression against it, e.g. "root/item?status=done". By default it prints
the first match; --all walks every match with FindNext.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().BoolVar(&queryAll, "all", false, "print every match, not just the first")
}

func runQuery(cmd *cobra.Command, args []string) error {
	path := args[0]
	root, err := parseInput(args[1:])
	if err != nil {
		return err
	}

	match := xmlcore.Find(root, path)
	if match == nil {
		color.Yellow("no match")
		return nil
	}
	printMatch(match)
	if !queryAll {
		return nil
	}
	for next := xmlcore.FindNext(match, path); next != nil; next = xmlcore.FindNext(next, path) {
		printMatch(next)
	}
	return nil
}

func printMatch(e *xmlcore.Element) {
	color.Green("<%s>", e.Key)
	for _, a := range e.Attributes {
		if v, ok := a.Value(); ok {
			fmt.Printf("  %s = %q\n", a.Key(), v)
		} else {
			fmt.Printf("  %s (no value)\n", a.Key())
		}
	}
	if body, ok := xmlcore.Content(e); ok {
		fmt.Printf("  content: %q\n", body)
	}
}
