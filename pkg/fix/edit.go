// Package fix provides text edit types and application logic for auto-fixing.
//
// Edits are always computed against the original, unmodified file content.
// Applying them never mutates a buffer in place: the output is rebuilt in a
// single pass, so offsets computed before application stay valid throughout.
package fix

// TextEdit represents a single text replacement in a file.
// It replaces the bytes [StartOffset, EndOffset) with NewText.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string

	// RuleID identifies the rule that proposed this edit.
	// Used to attribute conflicts; empty for edits built outside a rule.
	RuleID string
}

// Len returns the length of the replaced range in bytes.
func (e TextEdit) Len() int {
	return e.EndOffset - e.StartOffset
}

// IsDelete returns true if the edit removes text without inserting any.
func (e TextEdit) IsDelete() bool {
	return e.NewText == "" && e.EndOffset > e.StartOffset
}

// EditBuilder accumulates text edits proposed by a single rule for one file.
type EditBuilder struct {
	ruleID string
	Edits  []TextEdit
}

// NewEditBuilder creates an EditBuilder attributing edits to the given rule.
func NewEditBuilder(ruleID string) *EditBuilder {
	return &EditBuilder{
		ruleID: ruleID,
		Edits:  make([]TextEdit, 0),
	}
}

// ReplaceRange adds an edit that replaces bytes [start, end) with newText.
func (b *EditBuilder) ReplaceRange(start, end int, newText string) {
	b.Edits = append(b.Edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
		RuleID:      b.ruleID,
	})
}

// Insert adds an edit that inserts text at the given offset.
func (b *EditBuilder) Insert(offset int, text string) {
	b.ReplaceRange(offset, offset, text)
}

// Delete adds an edit that deletes bytes [start, end).
func (b *EditBuilder) Delete(start, end int) {
	b.ReplaceRange(start, end, "")
}
