package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Gulur101/quran-toolkit/internal/mushaf"
	"github.com/Gulur101/quran-toolkit/internal/ranking"
	"github.com/Gulur101/quran-toolkit/internal/report"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show participants ranked by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			board, err := a.client().Leaderboard(ctx)
			if err != nil {
				return err
			}
			if len(board.Standings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No participants yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), standingsTable(board.Standings))
			fmt.Fprintf(cmd.OutOrStdout(), "Average progress: %s%%\n", board.Summary.AverageProgress)
			return nil
		},
	}
}

func standingsTable(ranked []ranking.Ranked) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "ID", "Name", "Page", "Juz", "Surah", "Progress", "").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range ranked {
		t.Row(
			strconv.Itoa(r.Position),
			strconv.Itoa(r.ID),
			r.Name,
			strconv.Itoa(r.CurrentPage),
			strconv.Itoa(r.Juz),
			r.Surah,
			r.Progress+"%",
			strings.Join(report.Badges(r), " "),
		)
	}
	return t.String()
}

func (a *app) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME...",
		Short: "Add a participant on page 1",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			p, err := a.client().CreateUser(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (id %d)\n", p.Name, p.ID)
			return nil
		},
	}
}

func (a *app) setPageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-page ID PAGE",
		Short: "Record the page a participant has reached",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			page, err := strconv.Atoi(args[1])
			if err != nil || !mushaf.ValidPage(page) {
				return fmt.Errorf("page must be a number between 1 and %d", mushaf.TotalPages)
			}

			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			if _, err := a.client().UpdatePage(ctx, id, page); err != nil {
				return err
			}
			s, err := a.client().GetUser(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: page %d, juz %d, %s (%s%%)\n",
				s.Name, s.CurrentPage, s.Juz, s.Surah, s.Progress)
			return nil
		},
	}
}

func (a *app) renameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME...",
		Short: "Rename a participant",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			p, err := a.client().RenameUser(ctx, id, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %d to %s\n", p.ID, p.Name)
			return nil
		},
	}
}

func (a *app) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a participant",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			p, err := a.client().DeleteUser(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", p.Name)
			return nil
		},
	}
}

func (a *app) reportCommand() *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the leaderboard as markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			board, err := a.client().Leaderboard(ctx)
			if err != nil {
				return err
			}
			md := report.Markdown(board.Standings, board.Summary)
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			out, err := report.Render(md, width)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print plain markdown")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered output")
	return cmd
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid participant id %q", s)
	}
	return id, nil
}
