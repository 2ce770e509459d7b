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

// parseAttributes scans el.attrBuf in place and appends the attributes it
// finds to el.Attributes. It never fails: an attribute name with no '=' is
// a bare attribute, an unterminated quoted value runs to the end of the
// buffer, and whitespace between attributes is simply skipped.
//
// A quoted value is compacted in place as it is scanned, so its key/value
// spans still land inside attrBuf even after backslash escapes are
// resolved: the write cursor trails the read cursor, overwriting each
// escaped byte's leading backslash, which shortens the final span without
// ever reading past where it has already written.
func parseAttributes(el *Element) {
	buf := el.attrBuf
	n := len(buf)
	i := 0

	for {
		for i < n && isSpace(buf[i]) {
			i++
		}
		if i >= n {
			return
		}

		nameStart := i
		for i < n && buf[i] != '=' && !isSpace(buf[i]) {
			i++
		}
		if i == nameStart {
			return
		}
		attr := &Attribute{keyStart: nameStart, keyEnd: i}

		for i < n && isSpace(buf[i]) {
			i++
		}

		if i < n && buf[i] == '=' {
			i++
			for i < n && isSpace(buf[i]) {
				i++
			}
			if i < n && (buf[i] == '\'' || buf[i] == '"') {
				quote := buf[i]
				i++
				valStart := i
				w := i
				for i < n && buf[i] != quote {
					if buf[i] == '\\' && i+1 < n {
						i++
					}
					buf[w] = buf[i]
					w++
					i++
				}
				attr.valStart = valStart
				attr.valEnd = w
				attr.hasValue = true
				if i < n {
					i++ // consume closing quote
				}
			} else if i < n {
				valStart := i
				for i < n && !isSpace(buf[i]) {
					i++
				}
				attr.valStart = valStart
				attr.valEnd = i
				attr.hasValue = true
			}
		}

		addAttribute(el, attr)
	}
}
