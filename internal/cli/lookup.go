package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gulur101/quran-toolkit/internal/mushaf"
	"github.com/Gulur101/quran-toolkit/internal/text"
)

func (a *app) lookupCommand() *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "lookup PAGE",
		Short: "Show the surah, juz and progress for a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits := text.SanitizeDigits(args[0])
			page, err := strconv.Atoi(digits)
			if err != nil || digits != args[0] {
				return fmt.Errorf("page must be a number, got %q", args[0])
			}
			if !mushaf.ValidPage(page) {
				a.logger.Debug("Page outside the mushaf, clamping", zap.Int("page", page))
			}

			info := mushaf.Lookup(page)
			if remote {
				ctx, cancel := a.requestContext(cmd)
				defer cancel()
				if info, err = a.client().Page(ctx, page); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Page:     %d\n", info.Page)
			fmt.Fprintf(out, "Juz:      %d\n", info.Juz)
			fmt.Fprintf(out, "Surah:    %s\n", info.Section.Name())
			fmt.Fprintf(out, "Arabic:   %s\n", info.Section.ArabicName())
			fmt.Fprintf(out, "Pages:    %d-%d\n", info.Section.Start, info.Section.End)
			fmt.Fprintf(out, "Progress: %s%%\n", info.Progress)
			return nil
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "Ask the server instead of the built-in table")
	return cmd
}

func (a *app) surahsCommand() *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "surahs",
		Short: "Print the surah start table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sections := mushaf.Sections()
			if remote {
				ctx, cancel := a.requestContext(cmd)
				defer cancel()
				var err error
				if sections, err = a.client().Surahs(ctx); err != nil {
					return err
				}
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "Pages", "Surah", "Arabic").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}
					return cellStyle
				})
			for _, s := range sections {
				t.Row(
					strconv.Itoa(s.FirstSurah),
					fmt.Sprintf("%d-%d", s.Start, s.End),
					s.Name(),
					s.ArabicName(),
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "Ask the server instead of the built-in table")
	return cmd
}
