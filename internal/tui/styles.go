package tui

import "github.com/charmbracelet/lipgloss"

type playerColor struct {
	Name  string
	Color lipgloss.Color
}

var palette = []playerColor{
	{"Red", lipgloss.Color("#EF4444")},
	{"Yellow", lipgloss.Color("#FBBF24")},
	{"Green", lipgloss.Color("#22C55E")},
	{"Blue", lipgloss.Color("#3B82F6")},
	{"Violet", lipgloss.Color("#A855F7")},
	{"Orange", lipgloss.Color("#F97316")},
	{"Pink", lipgloss.Color("#EC4899")},
	{"Cyan", lipgloss.Color("#06B6D4")},
}

func colorOf(player int) playerColor {
	return palette[player%len(palette)]
}

func playerName(player int) string {
	return colorOf(player).Name
}

func playerStyle(player int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorOf(player).Color).Bold(true)
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	movingStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	celebrateStyle = lipgloss.NewStyle().
			Bold(true).
			Blink(true).
			Background(lipgloss.Color("#3C3C3C"))

	dieStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#EEEEEE")).
			Padding(0, 2).
			Bold(true)

	shakeStyle = dieStyle.
			BorderForeground(lipgloss.Color("#EF4444")).
			Foreground(lipgloss.Color("#EF4444"))

	logStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	focusedLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	blurredLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)
