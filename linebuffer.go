package jsonfmt

import "strings"

// lineBuffer accumulates pieces of the current output line and flushes
// completed, right-trimmed lines into the document buffer (spec §4.G).
type lineBuffer struct {
	doc     strings.Builder
	pending strings.Builder
	width   int // measured width of pending, under the active length func
	length  StringLengthFunc
}

func newLineBuffer(length StringLengthFunc) *lineBuffer {
	return &lineBuffer{length: length}
}

// add appends one or more fragments to the pending line.
func (b *lineBuffer) add(strs ...string) {
	for _, s := range strs {
		b.pending.WriteString(s)
		b.width += b.length(s)
	}
}

// spaces appends n literal space characters to the pending line.
func (b *lineBuffer) spaces(n int) {
	if n <= 0 {
		return
	}
	s := spaces(n)
	b.pending.WriteString(s)
	b.width += n
}

// currentWidth reports the measured width of the not-yet-flushed line.
func (b *lineBuffer) currentWidth() int { return b.width }

// endLine flushes the pending line: trailing whitespace is trimmed before
// the EOL is appended, guaranteeing column padding never leaves trailing
// spaces in the output.
func (b *lineBuffer) endLine(eol string) {
	line := strings.TrimRight(b.pending.String(), " \t")
	b.doc.WriteString(line)
	b.doc.WriteString(eol)
	b.pending.Reset()
	b.width = 0
}

// String returns the accumulated document, including any unflushed pending
// content (right-trimmed, with no trailing EOL appended).
func (b *lineBuffer) String() string {
	if b.pending.Len() == 0 {
		return b.doc.String()
	}
	return b.doc.String() + strings.TrimRight(b.pending.String(), " \t")
}
