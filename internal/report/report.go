package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// Row is one labelled line of a summary. Warn highlights the value.
type Row struct {
	Label string
	Value string
	Warn  bool
}

// Summary is the end-of-run table a command prints.
type Summary struct {
	Title string
	Rows  []Row
	Total Row
}

func (s *Summary) Add(label string, format string, args ...any) {
	s.Rows = append(s.Rows, Row{Label: label, Value: fmt.Sprintf(format, args...)})
}

func (s *Summary) Warn(label string, format string, args ...any) {
	s.Rows = append(s.Rows, Row{Label: label, Value: fmt.Sprintf(format, args...), Warn: true})
}

// Render lays the rows out in two aligned columns inside a rounded box.
func (s Summary) Render() string {
	width := len(s.Total.Label)
	for _, r := range s.Rows {
		width = max(width, lipgloss.Width(r.Label))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(s.Title))
	b.WriteString("\n")
	for _, r := range s.Rows {
		style := valueStyle
		if r.Warn {
			style = warnStyle
		}
		b.WriteString(labelStyle.Width(width+2).Render(r.Label))
		b.WriteString(style.Render(r.Value))
		b.WriteString("\n")
	}
	if s.Total.Label != "" {
		b.WriteString("\n")
		b.WriteString(totalStyle.Width(width + 2).Render(s.Total.Label))
		b.WriteString(totalStyle.Render(s.Total.Value))
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
