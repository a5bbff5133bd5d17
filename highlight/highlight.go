// Package highlight splits text into styled fragments based on a regular
// expression pattern. Matched substrings carry a lipgloss style, unmatched
// gaps stay plain, and line boundaries are preserved as separate renderable
// units. It sits between a regex engine and a terminal renderer: it performs
// no matching of its own beyond delegating to regexp, and no painting beyond
// delegating to lipgloss.
package highlight

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fragment is a contiguous substring with an optional highlight style.
// It owns its content; the original input is not referenced after creation.
type Fragment struct {
	// Content is the substring covered by this fragment.
	Content string

	// Style is the lipgloss style applied when rendering. Only meaningful
	// when Styled is true.
	Style lipgloss.Style

	// Styled reports whether this fragment is a pattern match.
	Styled bool
}

// Line is an ordered sequence of fragments for one row of text.
// Concatenating the fragments' contents in order reproduces the input line.
type Line []Fragment

// Text is an ordered sequence of lines for a full document.
type Text []Line

// Highlighter pairs a compiled pattern with the style applied to matches.
// It is immutable after construction and safe for concurrent use.
type Highlighter struct {
	re    *regexp.Regexp
	style lipgloss.Style
}

// New compiles pattern and returns a Highlighter that styles matches with
// style. Returns an error if the pattern is not a valid regular expression.
func New(pattern string, style lipgloss.Style) (*Highlighter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Highlighter{re: re, style: style}, nil
}

// MustNew is like New but panics if the pattern is invalid.
// Use when the pattern is a literal known at compile time.
func MustNew(pattern string, style lipgloss.Style) *Highlighter {
	h, err := New(pattern, style)
	if err != nil {
		panic("highlight: MustNew(" + strconv.Quote(pattern) + "): " + err.Error())
	}
	return h
}

// Pattern returns the source text of the compiled pattern.
func (h *Highlighter) Pattern() string {
	return h.re.String()
}

// Line partitions a single-line string into fragments. Matched substrings
// become styled fragments, gaps between matches become plain fragments.
// Empty input yields a nil Line. Adjacent matches produce no empty plain
// fragment between them.
func (h *Highlighter) Line(line string) Line {
	if line == "" {
		return nil
	}

	var frags Line
	cursor := 0
	for _, m := range h.re.FindAllStringIndex(line, -1) {
		start, end := m[0], m[1]
		if start > cursor {
			frags = append(frags, Fragment{Content: line[cursor:start]})
		}
		frags = append(frags, Fragment{Content: line[start:end], Style: h.style, Styled: true})
		cursor = end
	}
	if cursor < len(line) {
		frags = append(frags, Fragment{Content: line[cursor:]})
	}
	return frags
}

// Text splits text on '\n' and highlights each line. A trailing newline
// does not produce an empty final line, and empty input yields zero lines.
// The scan is a single forward pass so each line is matched exactly once.
func (h *Highlighter) Text(text string) Text {
	var lines Text
	cursor := 0
	for {
		i := strings.IndexByte(text[cursor:], '\n')
		if i < 0 {
			break
		}
		lines = append(lines, h.Line(text[cursor:cursor+i]))
		cursor += i + 1
	}
	if cursor < len(text) {
		lines = append(lines, h.Line(text[cursor:]))
	}
	return lines
}

// HighlightLine highlights a single line with an ad hoc pattern.
// Panics if the pattern is invalid; use New for untrusted patterns.
func HighlightLine(line, pattern string, style lipgloss.Style) Line {
	return MustNew(pattern, style).Line(line)
}

// HighlightText highlights a multi-line document with an ad hoc pattern.
// Panics if the pattern is invalid; use New for untrusted patterns.
func HighlightText(text, pattern string, style lipgloss.Style) Text {
	return MustNew(pattern, style).Text(text)
}
