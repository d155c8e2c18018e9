package ui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Margin(0, 1, 0, 0).
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("27")).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("51"))

	inactiveTabStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Margin(0, 1, 0, 0).
				Italic(true).
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("237")).
				Border(lipgloss.NormalBorder(), true).
				BorderForeground(lipgloss.Color("244"))

	tabBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Height(3).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			Foreground(lipgloss.Color("244"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("244")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("51")).
				Foreground(lipgloss.Color("15"))

	leaderCardStyle = cardStyle.BorderForeground(lipgloss.Color("220"))
	laggerCardStyle = cardStyle.BorderForeground(lipgloss.Color("160"))

	nameStyle   = lipgloss.NewStyle().Bold(true)
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	arabicStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	statusStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Height(1).
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("234")).
			Align(lipgloss.Left)

	errorStatusStyle = statusStyle.Background(lipgloss.Color("160"))

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2).
			Background(lipgloss.Color("235"))

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Bold(true)

	dialogErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	okButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("28")).
			Padding(0, 2).
			Margin(0, 1)

	cancelButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("160")).
				Padding(0, 2).
				Margin(0, 1)
)
