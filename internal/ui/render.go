package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BlankTuber/Tauri-PwdMngr/pkg/importer"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/notify"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/search"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/strength"
)

const barWidth = 20

// Highlight renders a with its matched span in MatchStyle.
func Highlight(a search.Annotated) string {
	before, match, after := a.Parts()
	if match == "" {
		return before
	}
	return before + MatchStyle.Render(match) + after
}

// StrengthBar renders a meter filled to the score in the tier color,
// followed by the tier caption.
func StrengthBar(r strength.Result) string {
	filled := r.Score * barWidth / 100
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(r.Label.Color()))
	bar := style.Render(strings.Repeat("█", filled)) + MutedStyle.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%s %s (%d/100)", bar, style.Render(r.Label.Text()), r.Score)
}

// Notification renders a status message in the style of its kind.
func Notification(msg notify.Message) string {
	if msg.Kind == notify.Failure {
		return ErrorStyle.Render("✗ " + msg.Text)
	}
	return SuccessStyle.Render("✓ " + msg.Text)
}

// RenderView prints one page of browse or search results.
func RenderView(w io.Writer, v *search.View) {
	if v.Mode == search.Searching {
		PrintTitle(w, fmt.Sprintf("Search results for %q", v.Term))
	} else {
		PrintTitle(w, "Passwords")
	}

	if v.NoResults() {
		if v.Mode == search.Searching {
			PrintMuted(w, "No passwords match your search.")
		} else {
			PrintMuted(w, "No passwords saved yet.")
		}
		return
	}

	for i, row := range v.Rows {
		fmt.Fprintf(w, "%d. %s  %s\n", i+1, Highlight(row.Website), Highlight(row.Username))
		if row.Record.WebsiteURL != "" {
			PrintMuted(w, "   "+row.Record.WebsiteURL)
		}
		if row.Notes.Text != "" {
			fmt.Fprintf(w, "   %s\n", Highlight(row.Notes))
		}
	}
	PrintDivider(w, 0)
	PrintMuted(w, fmt.Sprintf("Page %d of %d", v.Page, max(v.TotalPages, 1)))
}

// RenderPreview prints the masked import preview.
func RenderPreview(w io.Writer, rows []importer.PreviewRow, more int) {
	PrintTitle(w, "Import preview")
	for _, r := range rows {
		fmt.Fprintf(w, "  %-30s %-25s %s\n", r.Website, r.Username, r.Password)
	}
	if more > 0 {
		PrintMuted(w, fmt.Sprintf("  ...and %d more", more))
	}
}
