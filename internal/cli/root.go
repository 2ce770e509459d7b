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

// Package cli implements the xmlcore command-line tool: a thin driver over
// the xmlcore library for parsing a document, walking or querying its tree,
// and extracting character data, useful for exploring the library's
// behavior on a real file without writing Go.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xmlcore",
	Short: "A permissive, incremental XML tag reader",
	Long: `xmlcore reads XML-shaped input one chunk at a time, tolerating
malformed markup rather than rejecting it, and exposes the result as a tree
that can be walked or queried with a small path sublanguage.`,
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {}
