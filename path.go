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

import "strings"

// Predicate is one "key" or "key=value" clause of a path segment's "?"
// filter. A predicate with HasValue false matches any element carrying an
// attribute named Key, regardless of its value (or lack of one).
type Predicate struct {
	Key      string
	Value    string
	HasValue bool
}

// Segment is one slash-separated component of a path: an element name plus
// zero or more "&"-joined attribute predicates.
type Segment struct {
	Name       string
	Predicates []Predicate
}

// parsePath splits path on '/' into segments, tolerating leading, trailing,
// and repeated slashes rather than rejecting them — consistent with the
// core's general refusal to treat malformed input as an error.
func parsePath(path string) []Segment {
	var segs []Segment
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		segs = append(segs, parseSegment(part))
	}
	return segs
}

func parseSegment(part string) Segment {
	name := part
	var preds []Predicate
	if qi := strings.IndexByte(part, '?'); qi >= 0 {
		name = part[:qi]
		for _, clause := range strings.Split(part[qi+1:], "&") {
			if clause == "" {
				continue
			}
			if ei := strings.IndexByte(clause, '='); ei >= 0 {
				preds = append(preds, Predicate{Key: clause[:ei], Value: clause[ei+1:], HasValue: true})
			} else {
				preds = append(preds, Predicate{Key: clause})
			}
		}
	}
	return Segment{Name: name, Predicates: preds}
}

// matchSegment reports whether element e satisfies seg: its name matches
// ASCII case-insensitively and every predicate is satisfied by some
// attribute of e. Attribute names and values are compared with exact byte
// equality, unlike element names.
func matchSegment(e *Element, seg Segment) bool {
	if e.Kind != KindElement {
		return false
	}
	if !asciiEqualFold(e.Key, seg.Name) {
		return false
	}
	for _, pred := range seg.Predicates {
		if !matchPredicate(e, pred) {
			return false
		}
	}
	return true
}

func matchPredicate(e *Element, pred Predicate) bool {
	for _, a := range e.Attributes {
		if a.Key() != pred.Key {
			continue
		}
		if !pred.HasValue {
			return true
		}
		if v, has := a.Value(); has && v == pred.Value {
			return true
		}
	}
	return false
}

func matchesOptional(e *Element, seg *Segment) bool {
	if e.Kind != KindElement {
		return false
	}
	if seg == nil {
		return true
	}
	return matchSegment(e, *seg)
}

// Find performs a depth-first, document-order search starting at root's
// children: for each child matching the path's first segment, if no
// further segments remain it is the result, otherwise the search recurses
// into it looking for the remainder. It returns the first match found, or
// nil if path is empty or nothing matches.
func Find(root *Element, path string) *Element {
	segs := parsePath(path)
	if len(segs) == 0 {
		return nil
	}
	return findFrom(root, segs)
}

func findFrom(parent *Element, segs []Segment) *Element {
	seg := segs[0]
	rest := segs[1:]
	for _, c := range parent.Children {
		if !matchSegment(c, seg) {
			continue
		}
		if len(rest) == 0 {
			return c
		}
		if m := findFrom(c, rest); m != nil {
			return m
		}
	}
	return nil
}

// FindNext resumes enumeration after a previously returned element. Only
// the deepest segment of path is used as the match predicate — the result
// is not re-validated against path's earlier segments, so it can surface an
// element reachable by a name/predicate match anywhere after last in
// document order, not only along the same ancestor chain last was found
// through (see DESIGN.md). An empty path matches any element.
//
// last's own descendants are never visited: the search begins at last's
// following siblings and, failing those, walks up to the parent to look for
// the next subtree, recursing until the document is exhausted.
func FindNext(last *Element, path string) *Element {
	if last == nil {
		return nil
	}
	var seg *Segment
	if segs := parsePath(path); len(segs) > 0 {
		s := segs[len(segs)-1]
		seg = &s
	}
	return findNextFrom(last, seg)
}

func findNextFrom(x *Element, seg *Segment) *Element {
	for sib := x.Next; sib != nil; sib = sib.Next {
		if matchesOptional(sib, seg) {
			return sib
		}
		if m := findFirstMatchIn(sib, seg); m != nil {
			return m
		}
	}
	if x.Parent == nil {
		return nil
	}
	return findNextFrom(x.Parent, seg)
}

// findFirstMatchIn performs a depth-first search of subtree's descendants
// for the first element matching seg.
func findFirstMatchIn(subtree *Element, seg *Segment) *Element {
	for _, c := range subtree.Children {
		if matchesOptional(c, seg) {
			return c
		}
		if m := findFirstMatchIn(c, seg); m != nil {
			return m
		}
	}
	return nil
}

// Content concatenates every KindText descendant of e, in document order,
// into one owned byte slice. It returns (nil, false) if e has no character
// data anywhere in its subtree, rather than an empty non-nil slice; text of
// total length zero is reported the same way (nil, false), though it cannot
// actually occur, since the tokenizer never creates a zero-length text node.
func Content(e *Element) ([]byte, bool) {
	total := 0
	walkText(e, func(v []byte) { total += len(v) })
	if total == 0 {
		return nil, false
	}
	out := make([]byte, 0, total)
	walkText(e, func(v []byte) { out = append(out, v...) })
	return out, true
}

func walkText(e *Element, visit func([]byte)) {
	if e.Kind == KindText {
		visit(e.Value)
	}
	for _, c := range e.Children {
		walkText(c, visit)
	}
}

// ContentFind is Find followed by Content: it locates the element named by
// path and returns its concatenated character data, or (nil, false) if
// either step fails.
func ContentFind(root *Element, path string) ([]byte, bool) {
	e := Find(root, path)
	if e == nil {
		return nil, false
	}
	return Content(e)
}
