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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseForPath(t *testing.T, doc string) *Element {
	t.Helper()
	root, err := Parse([]byte(doc))
	require.NoError(t, err)
	return root
}

func TestParseSegmentNameOnly(t *testing.T) {
	seg := parseSegment("item")
	assert.Equal(t, "item", seg.Name)
	assert.Empty(t, seg.Predicates)
}

func TestParseSegmentWithPredicates(t *testing.T) {
	seg := parseSegment("item?status=done&urgent")
	assert.Equal(t, "item", seg.Name)
	require.Len(t, seg.Predicates, 2)
	assert.Equal(t, Predicate{Key: "status", Value: "done", HasValue: true}, seg.Predicates[0])
	assert.Equal(t, Predicate{Key: "urgent"}, seg.Predicates[1])
}

func TestParsePathTrimsEmptySegments(t *testing.T) {
	segs := parsePath("/a//b/")
	require.Len(t, segs, 2)
	assert.Equal(t, "a", segs[0].Name)
	assert.Equal(t, "b", segs[1].Name)
}

func TestFindDirectChild(t *testing.T) {
	root := mustParseForPath(t, `<r><x k="1"/><x k="2"/></r>`)
	match := Find(root, "r/x?k=2")
	require.NotNil(t, match)
	v, ok := match.FindAttribute("k").Value()
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestFindNoMatchReturnsNil(t *testing.T) {
	root := mustParseForPath(t, `<r><x k="1"/></r>`)
	assert.Nil(t, Find(root, "r/x?k=99"))
	assert.Nil(t, Find(root, ""))
}

func TestFindNameMatchIsCaseInsensitive(t *testing.T) {
	root := mustParseForPath(t, `<Root><Item/></Root>`)
	assert.NotNil(t, Find(root, "root/item"))
}

func TestFindAttributePredicateIsCaseSensitive(t *testing.T) {
	root := mustParseForPath(t, `<r><x K="v"/></r>`)
	assert.Nil(t, Find(root, "r/x?k=v"))
	assert.NotNil(t, Find(root, "r/x?K=v"))
}

func TestFindNextAfterLastSiblingReturnsNil(t *testing.T) {
	root := mustParseForPath(t, `<r><x k="1"/><x k="2"/></r>`)
	last := Find(root, "r/x?k=2")
	require.NotNil(t, last)
	assert.Nil(t, FindNext(last, "r/x"))
}

func TestFindNextWalksIntoNextSubtree(t *testing.T) {
	root := mustParseForPath(t, `<root><a><x/></a><b><x/></b></root>`)
	first := Find(root, "root/a/x")
	require.NotNil(t, first)
	second := FindNext(first, "x")
	require.NotNil(t, second)
	assert.Same(t, Find(root, "root/b/x"), second)
}

func TestFindNextSkipsLastsOwnDescendants(t *testing.T) {
	// outer and inner are both named "x"; FindNext from outer must not
	// return inner, since inner is outer's own descendant.
	root := mustParseForPath(t, `<root><x><x/></x><after/></root>`)
	outer := root.Children[0].Children[0]
	require.Equal(t, "x", outer.Key)
	assert.Nil(t, FindNext(outer, "x"))
}

func TestFindNextEmptyPathMatchesAnyElement(t *testing.T) {
	root := mustParseForPath(t, `<root><a/><b/></root>`)
	a := root.Children[0].Children[0]
	next := FindNext(a, "")
	require.NotNil(t, next)
	assert.Equal(t, "b", next.Key)
}

func TestContentConcatenatesDescendantText(t *testing.T) {
	root := mustParseForPath(t, `<p>one<br/>two</p>`)
	p := root.Children[0]
	content, ok := Content(p)
	require.True(t, ok)
	assert.Equal(t, "onetwo", string(content))
}

func TestContentNoneWhenNoText(t *testing.T) {
	root := mustParseForPath(t, `<p><br/></p>`)
	p := root.Children[0]
	_, ok := Content(p)
	assert.False(t, ok)
}

func TestContentFindCombinesFindAndContent(t *testing.T) {
	root := mustParseForPath(t, `<r><x>hi</x></r>`)
	content, ok := ContentFind(root, "r/x")
	require.True(t, ok)
	assert.Equal(t, "hi", string(content))
}

func TestContentFindNoneWhenPathMisses(t *testing.T) {
	root := mustParseForPath(t, `<r><x>hi</x></r>`)
	_, ok := ContentFind(root, "r/y")
	assert.False(t, ok)
}
