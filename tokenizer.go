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

// phase tracks which of the tokenizer's three scanning modes the cursor is
// currently in. Unlike a whole-buffer-rescan design, this and the
// openPhase/pattern fields below, together with Parser's cursor, body and
// current-element fields, are the entire carry-over state: a Parser
// can be interrupted between any two bytes of the input, across an arbitrary
// chunk boundary, and resumed later with no loss of position.
type phase uint8

const (
	phaseContent phase = iota
	phaseTagOpen
	phaseTagBody
)

// openPhase is the sub-state of phaseTagOpen: which prefix of an opening
// delimiter ("<!--", "<![CDATA[", or a bare "<!") has been matched so far.
type openPhase uint8

const (
	openInit openPhase = iota
	openBang
	openBangDash
	openCDATA
)

// pattern is the tag kind committed to once the opening delimiter is fully
// resolved. It is distinct from Kind because an element-close tag never
// produces an Element.
type pattern uint8

const (
	patElementOpen pattern = iota
	patElementClose
	patPI
	patDoctype
	patComment
	patCDATA
)

var (
	gtClose      = []byte(">")
	piClose      = []byte("?>")
	commentClose = []byte("-->")
	cdataClose   = []byte("]]>")

	cdataLiteral = "CDATA["
)

func closingPatternBytes(pat pattern) []byte {
	switch pat {
	case patPI:
		return piClose
	case patComment:
		return commentClose
	case patCDATA:
		return cdataClose
	default:
		return gtClose
	}
}

func kindForPattern(pat pattern) Kind {
	switch pat {
	case patElementOpen:
		return KindElement
	case patPI:
		return KindProcessingInstruction
	case patDoctype:
		return KindDoctype
	case patComment:
		return KindComment
	case patCDATA:
		return KindCDATA
	}
	return KindText
}

// Parser is the incremental reader. Its zero value is immediately usable:
// the first call to ParseChunk lazily installs DefaultConfig() and an empty
// root. All of Parser's fields together are the complete resumable state a
// caller needs to keep alive between chunks — there is no separate "parser
// state" type, matching the source's single carried structure.
type Parser struct {
	config Config

	root    *Element
	current *Element
	depth   int
	offset  int

	ph  phase
	op  openPhase
	pat pattern

	cdataIdx    int
	body        growBuffer
	closeCursor int
}

// NewParser returns a Parser configured with DefaultConfig().
func NewParser() *Parser {
	return NewParserWithConfig(DefaultConfig())
}

// NewParserWithConfig returns a Parser using cfg, falling back to
// DefaultConfig() if cfg fails Validate.
func NewParserWithConfig(cfg Config) *Parser {
	if err := cfg.Validate(); err != nil {
		cfg = DefaultConfig()
	}
	p := &Parser{config: cfg}
	p.root = &Element{Kind: KindRoot}
	p.current = p.root
	return p
}

// ensureInit installs a default configuration and root on first use of a
// zero-valued Parser.
func (p *Parser) ensureInit() {
	if p.root == nil {
		if err := p.config.Validate(); err != nil {
			p.config = DefaultConfig()
		}
		p.root = &Element{Kind: KindRoot}
		p.current = p.root
	}
}

// Root returns the synthetic root element accumulated so far. It is safe to
// call between ParseChunk calls, including before any chunk has arrived.
func (p *Parser) Root() *Element {
	p.ensureInit()
	return p.root
}

// Parse parses a complete document in one call and returns its root. It is
// a convenience wrapper around NewParser and ParseChunk for callers that
// already hold the whole document in memory.
func Parse(text []byte) (*Element, error) {
	p := NewParser()
	if err := p.ParseChunk(text); err != nil {
		return nil, err
	}
	return p.Root(), nil
}

// ParseChunk feeds the next chunk of the document to the parser. Chunks may
// split anywhere — mid tag-name, mid delimiter, mid attribute value — and
// successive calls must receive the chunks in document order. Unterminated
// structures at the end of the final chunk (an element never closed, a
// comment never terminated) are not errors; Root() still returns whatever
// was built.
//
// A returned error leaves the Parser in an indeterminate state; the only
// safe next step is to discard it (and Destroy its Root()) and start over.
func (p *Parser) ParseChunk(chunk []byte) error {
	if chunk == nil {
		return ErrNilChunk
	}
	p.ensureInit()

	i := 0
	n := len(chunk)
	for i < n {
		if p.ph == phaseContent {
			start := i
			for i < n && chunk[i] != '<' {
				i++
			}
			if i > start {
				p.appendTextRun(chunk[start:i])
				p.offset += i - start
			}
			if i >= n {
				break
			}
		}
		if err := p.feedByte(chunk[i]); err != nil {
			return err
		}
		p.offset++
		i++
	}
	return nil
}

// feedByte advances the state machine by exactly one input byte, possibly
// re-entering itself once when an opening-delimiter pattern resolves to a
// shorter match than first assumed (the "<!" doctype fallback) and the same
// byte must be replayed against the new phase.
func (p *Parser) feedByte(b byte) error {
	for {
		switch p.ph {
		case phaseContent:
			if b == '<' {
				p.ph = phaseTagOpen
				p.op = openInit
			} else {
				p.appendTextRun([]byte{b})
			}
			return nil

		case phaseTagOpen:
			transition, retry, err := p.stepOpen(b)
			if err != nil {
				return err
			}
			if !transition {
				return nil
			}
			p.ph = phaseTagBody
			if p.pat != patElementClose {
				el := newElement(p.current, kindForPattern(p.pat))
				p.current = el
			}
			if !retry {
				return nil
			}
			// Fall through and replay b against phaseTagBody below.

		case phaseTagBody:
			complete, err := p.stepBody(b)
			if err != nil {
				return err
			}
			if !complete {
				return nil
			}
			if err := p.finalizeTag(); err != nil {
				return err
			}
			p.ph = phaseContent
			return nil
		}
	}
}

// appendTextRun coalesces run into the current element's last child if that
// child is already a text island, or starts a new one. Character data is
// always materialized as a synthetic child rather than a parent's own
// value — see DESIGN.md for why the spec's worked examples, not its prose,
// govern this choice.
func (p *Parser) appendTextRun(run []byte) {
	if len(run) == 0 {
		return
	}
	cur := p.current
	var target *Element
	if n := len(cur.Children); n > 0 && cur.Children[n-1].isTextNode() {
		target = cur.Children[n-1]
	} else {
		target = newElement(cur, KindText)
	}
	target.Value = append(target.Value, run...)
}

// stepOpen advances the opening-delimiter sub-state machine by one byte.
// transition reports whether a pattern has now been committed (p.pat is
// set); retry reports whether b itself must be replayed against the tag
// body once the phase switches, because b was a tentative delimiter byte
// that turned out to belong to a shorter match (the bare "<!" case falling
// back from an unmatched "<!--" or "<![CDATA[" attempt).
func (p *Parser) stepOpen(b byte) (transition, retry bool, err error) {
	switch p.op {
	case openInit:
		switch {
		case b == '/':
			p.body.appendByte(b)
			p.pat = patElementClose
			return true, false, nil
		case b == '?':
			p.body.appendByte(b)
			p.pat = patPI
			return true, false, nil
		case b == '!':
			p.body.appendByte(b)
			p.op = openBang
			return false, false, nil
		case isSpace(b) || b == '>':
			p.config.logger().Debug("structural stall", "offset", p.offset)
			return false, false, parseErr(ErrStructuralStall, p.offset)
		default:
			p.body.appendByte(b)
			p.pat = patElementOpen
			return true, false, nil
		}

	case openBang:
		switch b {
		case '-':
			p.body.appendByte(b)
			p.op = openBangDash
			return false, false, nil
		case '[':
			p.body.appendByte(b)
			p.op = openCDATA
			p.cdataIdx = 0
			return false, false, nil
		default:
			p.pat = patDoctype
			return true, true, nil
		}

	case openBangDash:
		if b == '-' {
			p.body.appendByte(b)
			p.pat = patComment
			return true, false, nil
		}
		p.pat = patDoctype
		return true, true, nil

	case openCDATA:
		if b == cdataLiteral[p.cdataIdx] {
			p.body.appendByte(b)
			p.cdataIdx++
			if p.cdataIdx == len(cdataLiteral) {
				p.pat = patCDATA
				return true, false, nil
			}
			return false, false, nil
		}
		p.pat = patDoctype
		return true, true, nil
	}
	return false, false, nil
}

// stepBody advances the closing-delimiter match by one byte, implementing
// partial-match flushback: a tentative run of matched closing-pattern bytes
// that turns out not to complete the pattern is appended to the body
// verbatim before the byte is retried against the pattern's start, so no
// byte is lost. Because matching always restarts at the first pattern byte,
// an overlapping run such as "--->" inside a comment (or "]]]>" inside
// CDATA) does not close the tag: the bytes are kept in the body and the
// scan continues.
func (p *Parser) stepBody(b byte) (bool, error) {
	pat := closingPatternBytes(p.pat)
	for {
		if pat[p.closeCursor] == b {
			p.closeCursor++
			if p.closeCursor == len(pat) {
				if len(pat) > 1 {
					p.body.append(pat[:len(pat)-1])
				}
				p.closeCursor = 0
				return true, nil
			}
			return false, nil
		}
		if p.closeCursor == 0 {
			p.body.appendByte(b)
			return false, p.checkPendingLimit()
		}
		p.body.append(pat[:p.closeCursor])
		p.closeCursor = 0
		if err := p.checkPendingLimit(); err != nil {
			return false, err
		}
	}
}

func (p *Parser) checkPendingLimit() error {
	if p.body.len() > p.config.MaxPendingBytes {
		return parseErr(ErrPendingBufferTooLarge, p.offset)
	}
	return nil
}

// finalizeTag is called once stepBody reports a completed closing
// delimiter. p.current is already the element created when the opening
// pattern committed (or, for an element-close tag, still the parent that
// was current when the "</" was seen).
func (p *Parser) finalizeTag() error {
	switch p.pat {
	case patElementClose:
		if p.current.Parent != nil {
			p.current = p.current.Parent
			p.depth--
		}
		p.resetTagState()
		return nil

	case patElementOpen:
		return p.finalizeOpenTag()

	default:
		p.current.Key = p.body.string()
		p.current = p.current.Parent
		p.resetTagState()
		return nil
	}
}

// finalizeOpenTag splits the accumulated raw tag body into an element name
// and an attribute-text span: strip trailing whitespace, drop a trailing
// '/' as the self-closing flag, then split at the first remaining
// whitespace byte.
func (p *Parser) finalizeOpenTag() error {
	el := p.current

	raw := append([]byte(nil), p.body.bytes()...)
	end := len(raw)
	for end > 0 && isSpace(raw[end-1]) {
		end--
	}
	raw = raw[:end]

	selfClosing := false
	if len(raw) > 0 && raw[len(raw)-1] == '/' {
		selfClosing = true
		raw = raw[:len(raw)-1]
	}

	nameEnd := len(raw)
	for i := 0; i < len(raw); i++ {
		if isSpace(raw[i]) {
			nameEnd = i
			break
		}
	}
	el.Key = string(raw[:nameEnd])
	el.attrBuf = raw[nameEnd:]
	parseAttributes(el)

	if selfClosing {
		p.current = el.Parent
	} else {
		p.depth++
		if p.depth > p.config.MaxDepth {
			p.config.logger().Debug("max depth exceeded", "offset", p.offset, "depth", p.depth)
			return parseErr(ErrMaxDepthExceeded, p.offset)
		}
	}
	p.resetTagState()
	return nil
}

func (p *Parser) resetTagState() {
	p.body.reset()
	p.closeCursor = 0
	p.op = openInit
	p.cdataIdx = 0
}
