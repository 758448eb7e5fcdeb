package cmd

import "github.com/charmbracelet/lipgloss"

var (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorMuted  = lipgloss.Color("8")

	passStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	rejectedStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	plainStyle = lipgloss.NewStyle()

	cellStyle = lipgloss.NewStyle().
			PaddingRight(2)
)

// row renders cells left-aligned in fixed-width columns.
func row(widths []int, style lipgloss.Style, cells ...string) string {
	rendered := make([]string, len(cells))
	for i, cell := range cells {
		rendered[i] = cellStyle.Width(widths[i]).Render(style.Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
