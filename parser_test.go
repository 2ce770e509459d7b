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

package xmlcore

import "testing"

// TestMultiRoundAppendAssistantTranscript mirrors a realistic streaming
// caller: an LLM response trickling in token by token, with a tool-call
// element appearing mid-stream.
func TestMultiRoundAppendAssistantTranscript(t *testing.T) {
	p := NewParser()
	rounds := []string{
		"I will look that ",
		"up.\n<use",
		"-tool name=\"sea",
		"rch\"><qu",
		"ery>weather tod",
		"ay</query></use-tool>\nDone.",
	}
	for _, r := range rounds {
		if err := p.ParseChunk([]byte(r)); err != nil {
			t.Fatalf("ParseChunk(%q): %v", r, err)
		}
	}
	root := p.Root()

	tool := Find(root, "use-tool")
	if tool == nil {
		t.Fatalf("use-tool not found in %+v", root.Children)
	}
	name := tool.FindAttribute("name")
	if name == nil {
		t.Fatalf("use-tool has no name attribute")
	}
	if v, ok := name.Value(); !ok || v != "search" {
		t.Fatalf("name attribute = (%q, %v), want (%q, true)", v, ok, "search")
	}
	content, ok := ContentFind(root, "use-tool/query")
	if !ok || string(content) != "weather today" {
		t.Fatalf("ContentFind(use-tool/query) = (%q, %v), want (%q, true)", content, ok, "weather today")
	}

	full, ok := Content(root)
	if !ok {
		t.Fatalf("Content(root) ok = false, want true")
	}
	want := "I will look that up.\nweather today\nDone."
	if string(full) != want {
		t.Fatalf("Content(root) = %q, want %q", full, want)
	}
}

// TestMultiRoundAppendBreakInTagName exercises a chunk boundary landing
// inside an element name, attribute text, and the closing '>' in turn.
func TestMultiRoundAppendBreakInTagName(t *testing.T) {
	p := NewParser()
	rounds := []string{
		"<ite",
		"m id=\"",
		"42\"",
		">",
		"payload",
		"</i",
		"tem>",
	}
	for _, r := range rounds {
		if err := p.ParseChunk([]byte(r)); err != nil {
			t.Fatalf("ParseChunk(%q): %v", r, err)
		}
	}
	root := p.Root()
	item := Find(root, "item?id=42")
	if item == nil {
		t.Fatalf("item?id=42 not found in %+v", root.Children)
	}
	content, ok := Content(item)
	if !ok || string(content) != "payload" {
		t.Fatalf("Content(item) = (%q, %v), want (%q, true)", content, ok, "payload")
	}
}

// TestMultiRoundAppendTextOnly feeds plain text with no markup across
// several rounds and checks it all lands in one coalesced text node.
func TestMultiRoundAppendTextOnly(t *testing.T) {
	p := NewParser()
	rounds := []string{"no ", "markup ", "here ", "at ", "all"}
	for _, r := range rounds {
		if err := p.ParseChunk([]byte(r)); err != nil {
			t.Fatalf("ParseChunk(%q): %v", r, err)
		}
	}
	root := p.Root()
	if len(root.Children) != 1 || root.Children[0].Kind != KindText {
		t.Fatalf("root.Children = %+v, want one text node", root.Children)
	}
	if got, want := string(root.Children[0].Value), "no markup here at all"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}

// TestDestroyThenReparseIsIndependent checks that Destroy on one parse's
// root doesn't affect a second, unrelated Parse call.
func TestDestroyThenReparseIsIndependent(t *testing.T) {
	root1, err := Parse([]byte("<a>x</a>"))
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	Destroy(root1)

	root2, err := Parse([]byte("<b>y</b>"))
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if len(root2.Children) != 1 || root2.Children[0].Key != "b" {
		t.Fatalf("root2.Children = %+v, want one element b", root2.Children)
	}
}
