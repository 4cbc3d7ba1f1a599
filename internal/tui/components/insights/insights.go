package insights

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindlog/internal/analysis"
	"github.com/julianstephens/mindlog/internal/chart"
	"github.com/julianstephens/mindlog/internal/models"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginTop(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(20)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)
)

// Model is a scrollable panel with summary cards, insights, advice and the
// focus trend for the selected history.
type Model struct {
	viewport viewport.Model
	history  []models.DailyEntry
	window   int
	width    int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetHistory replaces the analyzed entries; window is the insight window
func (m *Model) SetHistory(history []models.DailyEntry, window int) {
	m.history = history
	m.window = window
	m.Render()
	m.viewport.GotoTop()
}

func (m *Model) Render() {
	if len(m.history) == 0 {
		m.viewport.SetContent("No entries yet. Log a few days to see insights.")
		return
	}

	var b strings.Builder
	b.WriteString(cards(analysis.Summarize(m.history)))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Insights"))
	b.WriteString("\n")
	for _, line := range analysis.GenerateInsights(m.history, m.window) {
		b.WriteString("• " + line + "\n")
	}

	b.WriteString(headingStyle.Render("Advice"))
	b.WriteString("\n")
	for _, line := range analysis.RuleBasedAdvice(m.history) {
		b.WriteString("- " + line + "\n")
	}

	width := m.width - 12
	if width < 20 {
		width = chart.DefaultWidth
	}
	b.WriteString(headingStyle.Render("Focus trend"))
	b.WriteString("\n")
	b.WriteString(chart.FocusTrend(m.history, chart.Options{Width: width}))
	b.WriteString("\n\n")
	b.WriteString(chart.MoodDistribution(m.history, width/2))

	m.viewport.SetContent(b.String())
}

func cards(s analysis.Summary) string {
	best := "-"
	if s.BestDay != nil {
		best = fmt.Sprintf("%s %.2f", s.BestDay.Date, s.BestDay.CognitiveScore)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Avg focus", avg(s.AvgFocus)),
		card("Avg score", avg(s.AvgScore)),
		card("Avg sleep", avg(s.AvgSleep)),
		card("Avg screen", avg(s.AvgScreen)),
		card("Best day", best),
	)
}

func card(label, value string) string {
	return cardStyle.Render(labelStyle.Render(label) + "\n" + valueStyle.Render(value))
}

func avg(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *p)
}
