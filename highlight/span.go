package highlight

import "github.com/charmbracelet/lipgloss"

// Span is a styled byte-offset region within a line, for editor components
// that consume token streams instead of fragment lists. Spans returned by
// Highlighter.Spans satisfy the usual lexer contract:
//   - Spans are non-overlapping
//   - Spans are sorted by Start position (ascending)
//   - Gaps between spans render as plain text
//   - An empty slice means no matches on this line
type Span struct {
	// Start is the starting byte offset within the line (0-indexed).
	Start int

	// End is the ending byte offset (exclusive, like Go slices).
	End int

	// Style is the lipgloss style to apply to this span's text.
	Style lipgloss.Style
}

// Spans returns the match regions of line as styled spans. Unlike Line,
// gaps are not materialized; only matches are reported.
func (h *Highlighter) Spans(line string) []Span {
	if line == "" {
		return nil
	}

	var spans []Span
	for _, m := range h.re.FindAllStringIndex(line, -1) {
		spans = append(spans, Span{Start: m[0], End: m[1], Style: h.style})
	}
	return spans
}
