package highlight

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func init() {
	// Force ANSI color output in tests (lipgloss disables colors when no TTY)
	lipgloss.SetColorProfile(termenv.ANSI256)
}

var blueBg = lipgloss.NewStyle().Background(lipgloss.Color("4"))

func TestHighlightLine_MentionAtEnd(t *testing.T) {
	line := HighlightLine("Hi @buddy", `@\w+`, blueBg)

	want := Line{
		{Content: "Hi "},
		{Content: "@buddy", Style: blueBg, Styled: true},
	}
	require.Equal(t, want, line)
}

func TestHighlightLine_MentionAtStart(t *testing.T) {
	line := HighlightLine("@stranger hello", `@\w+`, blueBg)

	want := Line{
		{Content: "@stranger", Style: blueBg, Styled: true},
		{Content: " hello"},
	}
	require.Equal(t, want, line)
}

func TestHighlightLine_AlternatingFragments(t *testing.T) {
	line := HighlightLine("Hello @Henry. Why are you named @nobody", `@\w+`, blueBg)

	want := Line{
		{Content: "Hello "},
		{Content: "@Henry", Style: blueBg, Styled: true},
		{Content: ". Why are you named "},
		{Content: "@nobody", Style: blueBg, Styled: true},
	}
	require.Equal(t, want, line)
}

func TestHighlightLine_NoMatch(t *testing.T) {
	line := HighlightLine("no mentions here", `@\w+`, blueBg)

	require.Equal(t, Line{{Content: "no mentions here"}}, line,
		"a line without matches should be a single plain fragment")
}

func TestHighlightLine_Empty(t *testing.T) {
	line := HighlightLine("", `@\w+`, blueBg)

	require.Empty(t, line, "empty input should yield no fragments")
}

func TestHighlightLine_AdjacentMatches(t *testing.T) {
	// Back-to-back matches must not produce an empty plain fragment
	// between them.
	line := HighlightLine("@a@b", `@\w`, blueBg)

	want := Line{
		{Content: "@a", Style: blueBg, Styled: true},
		{Content: "@b", Style: blueBg, Styled: true},
	}
	require.Equal(t, want, line)
}

func TestHighlightLine_WholeLineMatch(t *testing.T) {
	line := HighlightLine("@everything", `@\w+`, blueBg)

	require.Equal(t, Line{{Content: "@everything", Style: blueBg, Styled: true}}, line)
}

func TestHighlightLine_ZeroWidthMatches(t *testing.T) {
	// Patterns that can match the empty string must terminate and still
	// reconstruct the input exactly.
	line := HighlightLine("ab", `x*`, blueBg)

	require.Equal(t, "ab", line.String())
}

func TestHighlightText_TwoLines(t *testing.T) {
	text := HighlightText("Hi @buddy\n@stranger hello", `@\w+`, blueBg)

	want := Text{
		{
			{Content: "Hi "},
			{Content: "@buddy", Style: blueBg, Styled: true},
		},
		{
			{Content: "@stranger", Style: blueBg, Styled: true},
			{Content: " hello"},
		},
	}
	require.Equal(t, want, text)
}

func TestHighlightText_Mentions(t *testing.T) {
	text := HighlightText(
		"Hello @Henry. Why are you named @nobody\nBecause yes, and you @John. Btw Where @Bill is ?",
		`@\w+`, blueBg)

	want := Text{
		{
			{Content: "Hello "},
			{Content: "@Henry", Style: blueBg, Styled: true},
			{Content: ". Why are you named "},
			{Content: "@nobody", Style: blueBg, Styled: true},
		},
		{
			{Content: "Because yes, and you "},
			{Content: "@John", Style: blueBg, Styled: true},
			{Content: ". Btw Where "},
			{Content: "@Bill", Style: blueBg, Styled: true},
			{Content: " is ?"},
		},
	}
	require.Equal(t, want, text)
}

func TestHighlightText_TrailingNewline(t *testing.T) {
	text := HighlightText("Hi @buddy\n", `@\w+`, blueBg)

	require.Len(t, text, 1, "trailing newline should not produce an empty final line")
}

func TestHighlightText_Empty(t *testing.T) {
	text := HighlightText("", `@\w+`, blueBg)

	require.Empty(t, text, "empty input should yield zero lines, not one empty line")
}

func TestHighlightText_BlankInteriorLine(t *testing.T) {
	text := HighlightText("a\n\nb", `@\w+`, blueBg)

	require.Len(t, text, 3)
	require.Empty(t, text[1], "blank interior line should be present but empty")
}

func TestHighlightText_OnlyNewline(t *testing.T) {
	text := HighlightText("\n", `@\w+`, blueBg)

	require.Len(t, text, 1)
	require.Empty(t, text[0])
}

func TestNew_InvalidPattern(t *testing.T) {
	h, err := New("([unclosed", blueBg)

	require.Error(t, err)
	require.Nil(t, h)
}

func TestNew_ValidPattern(t *testing.T) {
	h, err := New(`@\w+`, blueBg)

	require.NoError(t, err)
	require.Equal(t, `@\w+`, h.Pattern())
}

func TestMustNew_InvalidPatternPanics(t *testing.T) {
	require.Panics(t, func() {
		MustNew("([unclosed", blueBg)
	})
}

func TestHighlightLine_InvalidPatternPanics(t *testing.T) {
	require.Panics(t, func() {
		HighlightLine("some text", "([unclosed", blueBg)
	})
}

func TestHighlightText_InvalidPatternPanics(t *testing.T) {
	require.Panics(t, func() {
		HighlightText("some\ntext", "([unclosed", blueBg)
	})
}

func TestHighlighter_Reuse(t *testing.T) {
	h := MustNew(`[0-9]+`, blueBg)

	first := h.Line("call 555 now")
	second := h.Line("call 555 now")

	require.Equal(t, first, second, "highlighting is a pure function of its input")
}
