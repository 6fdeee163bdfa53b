package buffer

// MarkupBuffer accumulates rendered markup and tracks the paragraph that is
// currently open, if any.
type MarkupBuffer struct {
	parts []string

	inParagraph bool
	wrapped     bool // paragraph was opened with <p>
	openIndex   int  // index of the first part written for the paragraph
	lines       int  // lines written into the open paragraph
}

// New creates a new MarkupBuffer.
func New() *MarkupBuffer {
	return &MarkupBuffer{
		parts: make([]string, 0),
	}
}

// Write appends markup to the buffer.
func (mb *MarkupBuffer) Write(markup string) {
	mb.parts = append(mb.parts, markup)
}

// InParagraph reports whether a paragraph is open.
func (mb *MarkupBuffer) InParagraph() bool {
	return mb.inParagraph
}

// OpenParagraph starts a paragraph. When wrap is false the paragraph is a
// pass-through run and no <p> container is written.
func (mb *MarkupBuffer) OpenParagraph(wrap bool) {
	if mb.inParagraph {
		return
	}
	mb.inParagraph = true
	mb.wrapped = wrap
	mb.openIndex = len(mb.parts)
	mb.lines = 0
	if wrap {
		mb.Write("<p>")
	}
}

// WriteLine appends one line of paragraph content, preceded by lineBreak if
// it is not the first line of the paragraph.
func (mb *MarkupBuffer) WriteLine(content string, lineBreak string) {
	if mb.lines > 0 {
		mb.Write(lineBreak)
	}
	mb.Write(content)
	mb.lines++
}

// CloseParagraph ends the open paragraph. A wrapped paragraph with no content
// is removed instead of being closed.
func (mb *MarkupBuffer) CloseParagraph() {
	if !mb.inParagraph {
		return
	}
	mb.inParagraph = false
	if mb.wrapped && mb.lines == 0 {
		mb.parts = mb.parts[:mb.openIndex]
		return
	}
	if mb.wrapped {
		mb.Write("</p>")
	}
}

// ByteOffset returns the current byte offset (total string length).
func (mb *MarkupBuffer) ByteOffset() int {
	total := 0
	for _, p := range mb.parts {
		total += len(p)
	}
	return total
}

// String returns the accumulated markup.
func (mb *MarkupBuffer) String() string {
	if len(mb.parts) == 0 {
		return ""
	}
	totalLen := mb.ByteOffset()
	result := make([]byte, 0, totalLen)
	for _, p := range mb.parts {
		result = append(result, p...)
	}
	return string(result)
}

// Reset clears the buffer.
func (mb *MarkupBuffer) Reset() {
	mb.parts = mb.parts[:0]
	mb.inParagraph = false
	mb.wrapped = false
	mb.openIndex = 0
	mb.lines = 0
}
