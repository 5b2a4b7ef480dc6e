package domain

// Editor is the contract with the host text editor. The pipeline consumes it
// only through ExtractContent and ApplyResult; it never depends on the
// editor's internal command mechanism.
type Editor interface {
	// SelectionEmpty reports whether the current selection is collapsed.
	SelectionEmpty() bool
	// SelectionText returns the text between selection anchor and head,
	// with block boundaries joined by a single space.
	SelectionText() string
	// PlainText returns the full plain-text serialization of the document.
	PlainText() string
	// ReplaceSelection deletes the selection and inserts text at the
	// resulting cursor.
	ReplaceSelection(text string)
	// SetContent replaces the entire document content.
	SetContent(text string)
}

// Selection describes the text chosen for processing. It is derived from the
// editor at request time and never persisted.
type Selection struct {
	IsEmpty bool
	Text    string
}

// ExtractContent reads the text an action should operate on: the active
// selection when one exists, otherwise the whole document. It fails with
// EmptyContentErr when there is neither a selection nor document content.
func ExtractContent(editor Editor) (Selection, error) {
	if !editor.SelectionEmpty() {
		return Selection{IsEmpty: false, Text: editor.SelectionText()}, nil
	}

	full := editor.PlainText()
	if full == "" {
		return Selection{}, NewEmptyContentErr("nothing to process: the document is empty")
	}
	return Selection{IsEmpty: true, Text: full}, nil
}

// ApplyResult writes generated text back into the editor: into the selection
// when one exists, otherwise replacing the whole document. Callers are
// responsible for confirming whole-document replacements with the user.
func ApplyResult(editor Editor, resultText string) {
	if !editor.SelectionEmpty() {
		editor.ReplaceSelection(resultText)
		return
	}
	editor.SetContent(resultText)
}
