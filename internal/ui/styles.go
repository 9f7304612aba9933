package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor   = lipgloss.Color("#B4A7D6")
	successColor   = lipgloss.Color("#A8E6CF")
	errorColor     = lipgloss.Color("#FFB3BA")
	warningColor   = lipgloss.Color("#FFE5B4")
	mutedColor     = lipgloss.Color("#C5C6C8")
	highlightColor = lipgloss.Color("#B3D9FF")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	WarningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// MatchStyle marks the matched span of a search hit
	MatchStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(highlightColor)

	PromptStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)
)

func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, SuccessStyle.Render("✓ "+message))
}

func PrintError(w io.Writer, message string) {
	fmt.Fprintln(w, ErrorStyle.Render("✗ "+message))
}

func PrintWarning(w io.Writer, message string) {
	fmt.Fprintln(w, WarningStyle.Render("! "+message))
}

func PrintMuted(w io.Writer, message string) {
	fmt.Fprintln(w, MutedStyle.Render(message))
}

func PrintTitle(w io.Writer, text string) {
	fmt.Fprintln(w, TitleStyle.Render(text))
}

func PrintPrompt(w io.Writer, message string) {
	fmt.Fprint(w, PromptStyle.Render(message))
}

func PrintBox(w io.Writer, content string) {
	fmt.Fprintln(w, BoxStyle.Render(content))
}

func PrintDivider(w io.Writer, width int) {
	if width < 1 {
		width = 41
	}
	fmt.Fprintln(w, lipgloss.NewStyle().Foreground(primaryColor).Render(strings.Repeat("─", width)))
}
