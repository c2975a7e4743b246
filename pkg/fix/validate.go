package fix

import (
	"fmt"
	"sort"
)

// ValidationError describes an edit whose span does not fit the content.
// It indicates a defect in the proposing rule, not a user error.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	if e.Edit.RuleID != "" {
		return fmt.Sprintf("invalid edit [%d:%d] from %s: %s",
			e.Edit.StartOffset, e.Edit.EndOffset, e.Edit.RuleID, e.Message)
	}
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ConflictError describes two overlapping edits. When edits conflict the
// whole file's fix step is abandoned: applying either one would silently
// pick a winner, so the engine surfaces the conflict instead.
type ConflictError struct {
	Edit1 TextEdit
	Edit2 TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting edits: %s [%d:%d] overlaps %s [%d:%d]",
		ruleOrUnknown(e.Edit1.RuleID), e.Edit1.StartOffset, e.Edit1.EndOffset,
		ruleOrUnknown(e.Edit2.RuleID), e.Edit2.StartOffset, e.Edit2.EndOffset)
}

func ruleOrUnknown(id string) string {
	if id == "" {
		return "(unattributed)"
	}
	return id
}

// CheckEdit validates a single edit against the given content length.
// Returns nil if the edit's span is within bounds and well-formed.
func CheckEdit(edit TextEdit, contentLen int) error {
	if edit.StartOffset < 0 {
		return &ValidationError{Edit: edit, Message: "start offset is negative"}
	}
	if edit.EndOffset < edit.StartOffset {
		return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
	}
	if edit.EndOffset > contentLen {
		return &ValidationError{
			Edit:    edit,
			Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen),
		}
	}
	return nil
}

// ValidateEdits checks that all edits have valid ranges for the given content length.
// Returns nil if all edits are valid, or the first validation error encountered.
func ValidateEdits(edits []TextEdit, contentLen int) error {
	for _, edit := range edits {
		if err := CheckEdit(edit, contentLen); err != nil {
			return err
		}
	}
	return nil
}

// SortEdits sorts edits by start offset, then by end offset.
// This produces a deterministic order for conflict detection and application.
func SortEdits(edits []TextEdit) {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].StartOffset != edits[j].StartOffset {
			return edits[i].StartOffset < edits[j].StartOffset
		}
		return edits[i].EndOffset < edits[j].EndOffset
	})
}

// DetectConflicts checks for overlapping edits in a sorted slice.
// Returns nil if no conflicts, or a ConflictError naming the first pair found.
// Edits must be sorted by SortEdits before calling.
func DetectConflicts(edits []TextEdit) error {
	for i := 1; i < len(edits); i++ {
		prev := edits[i-1]
		curr := edits[i]
		// Overlap if current starts before previous ends.
		if curr.StartOffset < prev.EndOffset {
			return &ConflictError{Edit1: prev, Edit2: curr}
		}
	}
	return nil
}

// PrepareEdits validates, sorts, and checks for conflicts.
//
// On success it returns a new sorted slice ready for ApplyEdits; the input
// slice is not modified. On conflict it returns a ConflictError and no
// edits: the caller must apply all of a file's edits or none of them.
func PrepareEdits(edits []TextEdit, contentLen int) ([]TextEdit, error) {
	if len(edits) == 0 {
		return edits, nil
	}

	if err := ValidateEdits(edits, contentLen); err != nil {
		return nil, err
	}

	result := make([]TextEdit, len(edits))
	copy(result, edits)
	SortEdits(result)

	if err := DetectConflicts(result); err != nil {
		return nil, err
	}

	return result, nil
}
