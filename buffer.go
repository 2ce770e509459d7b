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

// growBuffer is the string-buffer primitive shared by the tokenizer: a
// growable byte slice with append-by-slice semantics. It exists as its own
// type (rather than a bare []byte) so the append-length accounting described
// by the core is centralized in one place instead of scattered across the
// tokenizer and attribute parser.
type growBuffer struct {
	data []byte
}

// append adds n bytes from src to the buffer. A zero-length append is a
// no-op and never allocates.
func (b *growBuffer) append(src []byte) {
	if len(src) == 0 {
		return
	}
	b.data = append(b.data, src...)
}

// appendByte adds a single byte, the common case in the tokenizer's
// byte-at-a-time scan.
func (b *growBuffer) appendByte(c byte) {
	b.data = append(b.data, c)
}

// len reports the logical length of the buffer, independent of any
// terminator convention a consumer may apply on top.
func (b *growBuffer) len() int {
	return len(b.data)
}

// bytes returns the buffer's current contents. The returned slice aliases
// the buffer's backing array and is only valid until the next append.
func (b *growBuffer) bytes() []byte {
	return b.data
}

// string materializes the buffer as an owned copy.
func (b *growBuffer) string() string {
	return string(b.data)
}

// reset empties the buffer without releasing its backing array, so the next
// tag or text run reuses the allocation.
func (b *growBuffer) reset() {
	b.data = b.data[:0]
}

// truncateSuffix drops the last n bytes, or all of them if n exceeds the
// buffer's length. A non-positive n is a no-op.
func (b *growBuffer) truncateSuffix(n int) {
	if n <= 0 {
		return
	}
	if n > len(b.data) {
		n = len(b.data)
	}
	b.data = b.data[:len(b.data)-n]
}
