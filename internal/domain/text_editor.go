package domain

import "strings"

// TextEditor is an Editor over a plain-text buffer where blocks are lines.
// The selection spans from anchor to head as byte offsets into the content;
// offsets are clamped to the buffer and normalized so anchor <= head.
type TextEditor struct {
	content string
	anchor  int
	head    int
}

// NewTextEditor creates an editor over content with the given selection.
// Equal anchor and head mean a collapsed selection (a bare cursor).
func NewTextEditor(content string, anchor, head int) *TextEditor {
	if anchor > head {
		anchor, head = head, anchor
	}
	return &TextEditor{
		content: content,
		anchor:  clamp(anchor, len(content)),
		head:    clamp(head, len(content)),
	}
}

func clamp(offset, max int) int {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

// SelectionEmpty reports whether the selection is collapsed.
func (e *TextEditor) SelectionEmpty() bool {
	return e.anchor == e.head
}

// SelectionText returns the selected substring with each run of line breaks
// collapsed into a single space, mirroring how the document model joins
// block boundaries.
func (e *TextEditor) SelectionText() string {
	selected := e.content[e.anchor:e.head]

	var b strings.Builder
	b.Grow(len(selected))
	inBreak := false
	for _, r := range selected {
		if r == '\n' || r == '\r' {
			inBreak = true
			continue
		}
		if inBreak {
			b.WriteByte(' ')
			inBreak = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PlainText returns the full document content.
func (e *TextEditor) PlainText() string {
	return e.content
}

// ReplaceSelection deletes the selected range and inserts text at the
// resulting cursor, collapsing the selection after it.
func (e *TextEditor) ReplaceSelection(text string) {
	e.content = e.content[:e.anchor] + text + e.content[e.head:]
	e.anchor += len(text)
	e.head = e.anchor
}

// SetContent replaces the whole document and moves the cursor to the end.
func (e *TextEditor) SetContent(text string) {
	e.content = text
	e.anchor = len(text)
	e.head = e.anchor
}

// Content returns the current buffer, for persisting back to the document.
func (e *TextEditor) Content() string {
	return e.content
}
