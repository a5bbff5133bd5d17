package highlight

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

// ansiRegex matches ANSI escape sequences
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes all ANSI escape codes from a string
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// hasANSI returns true if the string contains ANSI escape codes
func hasANSI(s string) bool {
	return ansiRegex.MatchString(s)
}

func TestFragmentRender_Plain(t *testing.T) {
	f := Fragment{Content: "plain text"}

	require.Equal(t, "plain text", f.Render())
}

func TestFragmentRender_Styled(t *testing.T) {
	f := Fragment{Content: "@buddy", Style: blueBg, Styled: true}

	rendered := f.Render()
	require.True(t, hasANSI(rendered), "styled fragment should carry ANSI codes")
	require.Equal(t, "@buddy", stripANSI(rendered))
}

func TestLineRender_StripsBackToInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"with matches", "Hi @buddy and @pal"},
		{"no matches", "nothing to see"},
		{"all match", "@everything"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := HighlightLine(tt.input, `@\w+`, blueBg)
			require.Equal(t, tt.input, stripANSI(line.Render()))
		})
	}
}

func TestLineRender_NoMatchHasNoANSI(t *testing.T) {
	line := HighlightLine("nothing to see", `@\w+`, blueBg)

	require.False(t, hasANSI(line.Render()))
}

func TestLineString_IgnoresStyling(t *testing.T) {
	line := HighlightLine("Hi @buddy", `@\w+`, blueBg)

	require.Equal(t, "Hi @buddy", line.String())
}

func TestTextRender_JoinsWithNewlines(t *testing.T) {
	text := HighlightText("Hi @buddy\n@pal hello", `@\w+`, blueBg)

	require.Equal(t, "Hi @buddy\n@pal hello", stripANSI(text.Render()))
}

func TestTextString_BlankLinesPreserved(t *testing.T) {
	text := HighlightText("a\n\nb", `@\w+`, blueBg)

	require.Equal(t, "a\n\nb", text.String())
}

func TestLineWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"ascii", "Hi @buddy", 9},
		{"empty", "", 0},
		{"wide emoji", "Hi 🎉", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := HighlightLine(tt.input, `@\w+`, blueBg)
			require.Equal(t, tt.want, line.Width())
		})
	}
}

func TestLineGraphemes(t *testing.T) {
	// The skin-toned thumbs up is two runes but one grapheme cluster.
	line := HighlightLine("Hi 👍🏽", `@\w+`, blueBg)

	require.Equal(t, 4, line.Graphemes())
}

func TestMatches(t *testing.T) {
	text := HighlightText("Hi @buddy\n@a @b @c\nplain", `@\w+`, blueBg)

	require.Equal(t, 4, text.Matches())
	require.Equal(t, 1, text[0].Matches())
	require.Equal(t, 3, text[1].Matches())
	require.Equal(t, 0, text[2].Matches())
}
