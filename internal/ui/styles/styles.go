// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Main/primary text
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Match highlight colors (the default style applied to pattern matches)
	MatchBgColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#1A5276"}
	MatchFgColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

	// MatchStyle is the default highlight applied to matched fragments.
	MatchStyle = lipgloss.NewStyle().
			Foreground(MatchFgColor).
			Background(MatchBgColor)

	// Pattern input
	PatternLabelStyle = lipgloss.NewStyle().
				Foreground(TextMutedColor).
				Bold(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor).
			Padding(0, 1)

	// Error display (invalid in-progress patterns, unreadable files)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true)

	// Help footer
	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)
)

// MatchStyleFor returns the style for matched fragments. A non-empty
// hex color overrides the match background, as set per pattern preset;
// an empty color keeps the current MatchStyle (including theme overrides).
func MatchStyleFor(color string) lipgloss.Style {
	if color == "" {
		return MatchStyle
	}
	return lipgloss.NewStyle().
		Foreground(MatchFgColor).
		Background(lipgloss.AdaptiveColor{Light: color, Dark: color})
}

// ApplyTheme applies custom theme colors from configuration.
// Empty strings are ignored, keeping the default values.
// Parameters use semantic names matching the color constants:
// - match: MatchBgColor (background of highlighted fragments)
// - subtle: TextMutedColor (hints, help text, status bar)
// - errorColor: StatusErrorColor (error indicators)
func ApplyTheme(match, subtle, errorColor string) {
	if match != "" {
		MatchBgColor = lipgloss.AdaptiveColor{Light: match, Dark: match}
		MatchStyle = lipgloss.NewStyle().Foreground(MatchFgColor).Background(MatchBgColor)
	}
	if subtle != "" {
		TextMutedColor = lipgloss.AdaptiveColor{Light: subtle, Dark: subtle}
		PatternLabelStyle = lipgloss.NewStyle().Foreground(TextMutedColor).Bold(true)
		StatusBarStyle = lipgloss.NewStyle().Foreground(TextMutedColor).Padding(0, 1)
		HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	}
	if errorColor != "" {
		StatusErrorColor = lipgloss.AdaptiveColor{Light: errorColor, Dark: errorColor}
		ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)
	}
}
