package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Gulur101/quran-toolkit/internal/api"
	"github.com/Gulur101/quran-toolkit/internal/client"
	"github.com/Gulur101/quran-toolkit/internal/mushaf"
	"github.com/Gulur101/quran-toolkit/internal/ranking"
	"github.com/Gulur101/quran-toolkit/internal/report"
	"github.com/Gulur101/quran-toolkit/internal/text"
)

const (
	trackerTab = iota
	surahsTab
)

const (
	requestTimeout = 10 * time.Second
	cardHeight     = 6
)

type boardMsg struct {
	board api.Leaderboard
}

type actionMsg struct {
	status string
}

type errMsg struct {
	err error
}

type UiModel struct {
	api            client.API
	writeClipboard func(string) error

	standings   []ranking.Ranked
	summary     ranking.Summary
	currentIdx  int
	currentTab  int
	tabs        []string
	width       int
	height      int
	loaded      bool
	status      string
	err         error
	keys        keyMap
	help        help.Model
	bar         progress.Model
	surahTable  table.Model
	showPageDlg bool
	pageInput   textinput.Model
	showAddDlg  bool
	nameInput   textinput.Model
	dialogErr   string
}

// InitialModel builds the tracker UI on top of an API client.
func InitialModel(c client.API) UiModel {
	pageInput := textinput.New()
	pageInput.Placeholder = fmt.Sprintf("1-%d", mushaf.TotalPages)
	pageInput.CharLimit = 3
	pageInput.Width = 10

	nameInput := textinput.New()
	nameInput.Placeholder = "Name"
	nameInput.CharLimit = 60
	nameInput.Width = 30

	return UiModel{
		api:            c,
		writeClipboard: clipboard.WriteAll,
		tabs:           []string{"Tracker", "Surahs"},
		currentTab:     trackerTab,
		keys:           defaultKeyMap(),
		help:           help.New(),
		bar:            progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		surahTable:     newSurahTable(),
		pageInput:      pageInput,
		nameInput:      nameInput,
	}
}

func newSurahTable() table.Model {
	sections := mushaf.Sections()
	rows := make([]table.Row, 0, len(sections))
	for _, s := range sections {
		rows = append(rows, table.Row{
			strconv.Itoa(s.FirstSurah),
			fmt.Sprintf("%d-%d", s.Start, s.End),
			s.Name(),
			s.ArabicName(),
		})
	}
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Pages", Width: 9},
			{Title: "Surah", Width: 40},
			{Title: "Arabic", Width: 30},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
}

func (m UiModel) Init() tea.Cmd {
	return m.fetchBoard()
}

func (m UiModel) fetchBoard() tea.Cmd {
	c := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		board, err := c.Leaderboard(ctx)
		if err != nil {
			return errMsg{err}
		}
		return boardMsg{board}
	}
}

func (m UiModel) setPage(id, page int) tea.Cmd {
	c := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		p, err := c.UpdatePage(ctx, id, page)
		if err != nil {
			return errMsg{err}
		}
		return actionMsg{fmt.Sprintf("%s is on page %d", p.Name, p.CurrentPage)}
	}
}

func (m UiModel) addParticipant(name string) tea.Cmd {
	c := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		p, err := c.CreateUser(ctx, name)
		if err != nil {
			return errMsg{err}
		}
		return actionMsg{fmt.Sprintf("Added %s", p.Name)}
	}
}

func (m UiModel) deleteParticipant(id int) tea.Cmd {
	c := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		p, err := c.DeleteUser(ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return actionMsg{fmt.Sprintf("Removed %s", p.Name)}
	}
}

func (m UiModel) selected() (ranking.Ranked, bool) {
	if m.currentIdx < 0 || m.currentIdx >= len(m.standings) {
		return ranking.Ranked{}, false
	}
	return m.standings[m.currentIdx], true
}

func (m UiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showPageDlg {
			return m.updatePageDialog(msg)
		}
		if m.showAddDlg {
			return m.updateAddDialog(msg)
		}
		return m.updateMain(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = max(10, min(m.width-16, 50))
		m.surahTable.SetHeight(max(3, m.height-8))

	case boardMsg:
		prevID := -1
		if cur, ok := m.selected(); ok {
			prevID = cur.ID
		}
		m.standings = msg.board.Standings
		m.summary = msg.board.Summary
		m.loaded = true
		m.err = nil
		m.currentIdx = 0
		for i, r := range m.standings {
			if r.ID == prevID {
				m.currentIdx = i
				break
			}
		}

	case actionMsg:
		m.status = msg.status
		m.err = nil
		return m, m.fetchBoard()

	case errMsg:
		m.err = msg.err
	}
	return m, nil
}

func (m UiModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tracker):
		m.currentTab = trackerTab
		return m, nil
	case key.Matches(msg, m.keys.Surahs):
		m.currentTab = surahsTab
		if cur, ok := m.selected(); ok {
			m.surahTable.SetCursor(cur.SurahIndex)
		}
		return m, nil
	}

	if m.currentTab == surahsTab {
		var cmd tea.Cmd
		m.surahTable, cmd = m.surahTable.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.currentIdx < len(m.standings)-1 {
			m.currentIdx++
		}
	case key.Matches(msg, m.keys.Up):
		if m.currentIdx > 0 {
			m.currentIdx--
		}
	case key.Matches(msg, m.keys.SetPage):
		if _, ok := m.selected(); ok {
			m.showPageDlg = true
			m.dialogErr = ""
			m.pageInput.SetValue("")
			return m, m.pageInput.Focus()
		}
	case key.Matches(msg, m.keys.Add):
		m.showAddDlg = true
		m.dialogErr = ""
		m.nameInput.SetValue("")
		return m, m.nameInput.Focus()
	case key.Matches(msg, m.keys.Delete):
		if cur, ok := m.selected(); ok {
			return m, m.deleteParticipant(cur.ID)
		}
	case key.Matches(msg, m.keys.Refresh):
		m.status = "Refreshing..."
		return m, m.fetchBoard()
	case key.Matches(msg, m.keys.Copy):
		md := report.Markdown(m.standings, m.summary)
		if err := m.writeClipboard(md); err != nil {
			m.err = fmt.Errorf("copy to clipboard: %w", err)
		} else {
			m.err = nil
			m.status = "Leaderboard copied to clipboard"
		}
	}
	return m, nil
}

func (m UiModel) updatePageDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.showPageDlg = false
		m.pageInput.Blur()
		return m, nil
	case "enter":
		page, err := strconv.Atoi(m.pageInput.Value())
		if err != nil || !mushaf.ValidPage(page) {
			m.dialogErr = fmt.Sprintf("Enter a page between 1 and %d", mushaf.TotalPages)
			return m, nil
		}
		cur, ok := m.selected()
		m.showPageDlg = false
		m.pageInput.Blur()
		if !ok {
			return m, nil
		}
		return m, m.setPage(cur.ID, page)
	}

	var cmd tea.Cmd
	m.pageInput, cmd = m.pageInput.Update(msg)
	if clean := text.SanitizeDigits(m.pageInput.Value()); clean != m.pageInput.Value() {
		m.pageInput.SetValue(clean)
	}
	return m, cmd
}

func (m UiModel) updateAddDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.showAddDlg = false
		m.nameInput.Blur()
		return m, nil
	case "enter":
		name := text.CleanName(m.nameInput.Value())
		if name == "" {
			m.dialogErr = "Name required"
			return m, nil
		}
		m.showAddDlg = false
		m.nameInput.Blur()
		return m, m.addParticipant(name)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m UiModel) View() string {
	if m.showPageDlg {
		return m.renderWithDialog(m.renderPageDialog())
	}
	if m.showAddDlg {
		return m.renderWithDialog(m.renderAddDialog())
	}
	return m.renderMainContent()
}

func (m UiModel) renderMainContent() string {
	var content strings.Builder

	var tabViews []string
	for i, tab := range m.tabs {
		style := inactiveTabStyle
		if i == m.currentTab {
			style = activeTabStyle
		}
		tabViews = append(tabViews, style.Render(tab))
	}
	title := nameStyle.Render(report.Title)
	tabBar := lipgloss.JoinHorizontal(lipgloss.Center, append(tabViews, "  "+title)...)
	content.WriteString(tabBarStyle.Render(tabBar) + "\n")

	// tab bar (3) + status (1) + help (1)
	contentHeight := max(1, m.height-5)

	if m.currentTab == surahsTab {
		content.WriteString(m.surahTable.View() + "\n")
	} else {
		content.WriteString(m.renderCards(contentHeight))
	}

	content.WriteString(m.renderStatus() + "\n")

	bindings := m.keys.trackerHelp()
	if m.currentTab == surahsTab {
		bindings = m.keys.surahsHelp()
	}
	content.WriteString(m.help.ShortHelpView(bindings))
	return content.String()
}

func (m UiModel) renderCards(contentHeight int) string {
	if !m.loaded && m.err == nil {
		return emptyStyle.Render("Loading...") + "\n"
	}
	if len(m.standings) == 0 {
		return emptyStyle.Render("No participants yet. Press n to add one.") + "\n"
	}

	visible := max(1, contentHeight/cardHeight)
	viewStart := max(0, m.currentIdx-visible/2)
	viewEnd := min(len(m.standings), viewStart+visible)
	viewStart = max(0, viewEnd-visible)

	cards := make([]string, 0, viewEnd-viewStart)
	for i := viewStart; i < viewEnd; i++ {
		cards = append(cards, m.renderCard(m.standings[i], i == m.currentIdx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...) + "\n"
}

func (m UiModel) renderCard(r ranking.Ranked, isSelected bool) string {
	style := cardStyle
	switch {
	case isSelected:
		style = selectedCardStyle
	case r.Leader:
		style = leaderCardStyle
	case r.Lagger:
		style = laggerCardStyle
	}
	if m.width > 8 {
		style = style.Width(min(m.width-4, 72))
	}

	header := fmt.Sprintf("#%d %s", r.Position, nameStyle.Render(r.Name))
	if badges := report.Badges(r); len(badges) > 0 {
		header += "  " + badgeStyle.Render(strings.Join(badges, " "))
	}
	lines := []string{
		header,
		fmt.Sprintf("📖 Page %d   📍 Juz %d", r.CurrentPage, r.Juz),
		fmt.Sprintf("📌 %s %s", r.Surah, arabicStyle.Render("· "+r.SurahArabic)),
		m.bar.ViewAs(r.Percent/100) + " " + r.Progress + "%",
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m UiModel) renderStatus() string {
	style := statusStyle
	if m.width > 0 {
		style = style.Width(m.width)
	}
	if m.err != nil {
		return errorStatusStyle.Inherit(style).Render("Error: " + m.err.Error())
	}

	info := fmt.Sprintf("Participants: %d | Average: %s%%", m.summary.Participants, m.summary.AverageProgress)
	if m.currentTab == surahsTab {
		row := m.surahTable.SelectedRow()
		if len(row) > 2 {
			info = fmt.Sprintf("Surah %s | Pages %s", row[2], row[1])
		}
	} else if cur, ok := m.selected(); ok {
		info += fmt.Sprintf(" | Selected: %s (%d/%d)", cur.Name, m.currentIdx+1, len(m.standings))
	}
	if m.status != "" {
		info += " | " + m.status
	}
	return style.Render(info)
}

func (m UiModel) renderPageDialog() string {
	name := ""
	if cur, ok := m.selected(); ok {
		name = cur.Name
	}
	parts := []string{
		dialogTitleStyle.Render("Set page for " + name),
		m.pageInput.View(),
	}
	if m.dialogErr != "" {
		parts = append(parts, dialogErrorStyle.Render(m.dialogErr))
	}
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Center,
		okButtonStyle.Render("Save (Enter)"),
		cancelButtonStyle.Render("Cancel (Esc)")))
	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m UiModel) renderAddDialog() string {
	parts := []string{
		dialogTitleStyle.Render("Add participant"),
		m.nameInput.View(),
	}
	if m.dialogErr != "" {
		parts = append(parts, dialogErrorStyle.Render(m.dialogErr))
	}
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Center,
		okButtonStyle.Render("Add (Enter)"),
		cancelButtonStyle.Render("Cancel (Esc)")))
	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m UiModel) renderWithDialog(dialog string) string {
	background := m.renderMainContent()
	dialogCentered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		dialog,
	)
	return background + "\n" + dialogCentered
}
