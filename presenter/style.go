package presenter

import "github.com/charmbracelet/lipgloss"

// Style controls how the terminal host paints each region.
type Style struct {
	Background lipgloss.Style
	Header     lipgloss.Style
	Body       lipgloss.Style
	Footer     lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Background: lipgloss.NewStyle(),
		Header:     lipgloss.NewStyle().Bold(true),
		Body:       lipgloss.NewStyle(),
		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15")),
	}
}
