package fix

// ApplyEdits applies a sorted, validated slice of edits to content.
// Edits must be prepared with PrepareEdits before calling.
//
// The output is assembled in one pass: bytes between edits are copied
// verbatim and each edit's replacement is substituted at its span. Prepared
// edits are disjoint, so the result does not depend on application order.
func ApplyEdits(content []byte, edits []TextEdit) []byte {
	if len(edits) == 0 {
		return content
	}

	size := len(content)
	for _, e := range edits {
		size += len(e.NewText) - (e.EndOffset - e.StartOffset)
	}

	out := make([]byte, 0, size)
	cursor := 0
	for _, e := range edits {
		out = append(out, content[cursor:e.StartOffset]...)
		out = append(out, e.NewText...)
		cursor = e.EndOffset
	}

	return append(out, content[cursor:]...)
}
