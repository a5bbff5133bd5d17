package highlight

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Render returns the fragment content with its style applied.
// Plain fragments render as their raw content.
func (f Fragment) Render() string {
	if !f.Styled {
		return f.Content
	}
	return f.Style.Render(f.Content)
}

// String returns the line's raw content with no styling applied.
func (l Line) String() string {
	var b strings.Builder
	for _, f := range l {
		b.WriteString(f.Content)
	}
	return b.String()
}

// Render returns the line with ANSI styling applied to matched fragments.
func (l Line) Render() string {
	var b strings.Builder
	for _, f := range l {
		b.WriteString(f.Render())
	}
	return b.String()
}

// Width returns the display width of the line in terminal columns.
// Accounts for wide characters (CJK, emoji) via go-runewidth.
func (l Line) Width() int {
	w := 0
	for _, f := range l {
		w += runewidth.StringWidth(f.Content)
	}
	return w
}

// Graphemes returns the number of grapheme clusters in the line.
func (l Line) Graphemes() int {
	n := 0
	for _, f := range l {
		n += uniseg.GraphemeClusterCount(f.Content)
	}
	return n
}

// Matches returns the number of styled fragments in the line.
func (l Line) Matches() int {
	n := 0
	for _, f := range l {
		if f.Styled {
			n++
		}
	}
	return n
}

// String returns the document's raw content, lines joined with '\n'.
func (t Text) String() string {
	lines := make([]string, len(t))
	for i, l := range t {
		lines[i] = l.String()
	}
	return strings.Join(lines, "\n")
}

// Render returns the document with ANSI styling applied, lines joined
// with '\n'.
func (t Text) Render() string {
	lines := make([]string, len(t))
	for i, l := range t {
		lines[i] = l.Render()
	}
	return strings.Join(lines, "\n")
}

// Matches returns the total number of styled fragments in the document.
func (t Text) Matches() int {
	n := 0
	for _, l := range t {
		n += l.Matches()
	}
	return n
}
