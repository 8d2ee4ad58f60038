package logtally

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	severityColors = map[string]lipgloss.Color{
		SeverityInfo:    lipgloss.Color("#3498db"),
		SeverityError:   lipgloss.Color("#e74c3c"),
		SeverityWarning: lipgloss.Color("#f39c12"),
	}
	addressColor = lipgloss.Color("#2ecc71")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2c3e50"))
	emptyStyle = lipgloss.NewStyle().Faint(true)
)

// Render draws both sections of rp as horizontal bar charts no wider than
// width bar cells.
func (rp *Report) Render(width int) string {
	levels := renderBars(rp.LogLevels, width, func(n string) lipgloss.Color {
		return severityColors[n]
	})
	addresses := renderBars(rp.TopAddresses, width, func(string) lipgloss.Color {
		return addressColor
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Log Levels"),
		levels,
		"",
		titleStyle.Render(fmt.Sprintf("Top %d IP Addresses", rp.top)),
		addresses,
	)
}

func renderBars(es []Entry, width int, color func(string) lipgloss.Color) string {
	if len(es) == 0 {
		return emptyStyle.Render("No data available")
	}

	labelWidth, maxCount := 0, 0
	for _, e := range es {
		labelWidth = max(labelWidth, lipgloss.Width(e.Name))
		maxCount = max(maxCount, e.Count)
	}
	countWidth := len(fmt.Sprint(maxCount))

	ls := make([]string, 0, len(es))
	for _, e := range es {
		filled := 0
		if maxCount > 0 {
			filled = e.Count * width / maxCount
		}
		if filled == 0 && e.Count > 0 {
			filled = 1
		}

		bar := lipgloss.NewStyle().Foreground(color(e.Name)).Render(strings.Repeat("█", filled))
		ls = append(ls, fmt.Sprintf("%-*s %*d %s", labelWidth, e.Name, countWidth, e.Count, bar))
	}

	return strings.Join(ls, "\n")
}
