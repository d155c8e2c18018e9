// Package report turns a ranked board into markdown, for the clipboard and
// for terminal rendering.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Gulur101/quran-toolkit/internal/ranking"
)

const Title = "📖 Quran Family Tracker"

// Badges lists the labels earned by a participant. A lone participant both
// leads and lags.
func Badges(r ranking.Ranked) []string {
	var out []string
	if r.Leader {
		out = append(out, "🏆 Leader")
	}
	if r.Second {
		out = append(out, "🥈 2nd")
	}
	if r.Lagger {
		out = append(out, "🐢 Behind")
	}
	return out
}

// Markdown lists the board as a table followed by the group summary.
func Markdown(ranked []ranking.Ranked, summary ranking.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", Title)

	if len(ranked) == 0 {
		b.WriteString("_No participants yet._\n")
		return b.String()
	}

	b.WriteString("| # | Name | Page | Juz | Surah | Progress | |\n")
	b.WriteString("|---|------|------|-----|-------|----------|---|\n")
	for _, r := range ranked {
		fmt.Fprintf(&b, "| %d | %s | %d | %d | %s | %s%% | %s |\n",
			r.Position, escape(r.Name), r.CurrentPage, r.Juz, escape(r.Surah), r.Progress, strings.Join(Badges(r), " "))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "- Participants: %d\n", summary.Participants)
	fmt.Fprintf(&b, "- Pages read: %d\n", summary.PagesRead)
	fmt.Fprintf(&b, "- Average progress: %s%%\n", summary.AverageProgress)
	if summary.Finished > 0 {
		fmt.Fprintf(&b, "- Finished: %d\n", summary.Finished)
	}
	if len(summary.Leaders) > 0 {
		fmt.Fprintf(&b, "- Leading: %s\n", strings.Join(summary.Leaders, ", "))
	}
	return b.String()
}

// Render styles markdown for the terminal at the given wrap width.
func Render(markdown string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return out, nil
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
