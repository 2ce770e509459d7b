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

var contentCmd = &cobra.Command{
	Use:   "content <path> [file]",
	Short: "Print the concatenated character data under a path match",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runContent,
}

func init() {
	rootCmd.AddCommand(contentCmd)
}

func runContent(cmd *cobra.Command, args []string) error {
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
	body, ok := xmlcore.Content(match)
	if !ok {
		color.Yellow("no content")
		return nil
	}
	fmt.Printf("%s\n", body)
	return nil
}
