package overview

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/hrushik98/cynchrony-analytics/internal/models"
	"github.com/hrushik98/cynchrony-analytics/internal/ui/components"
	"github.com/hrushik98/cynchrony-analytics/internal/ui/styles"
)

const topEndpointCount = 10

// View renders the overview tab. An absent summary collapses the whole
// tab into a single warning panel; every other dataset degrades alone.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	snap := m.state.GetSnapshot()
	if snap == nil || snap.Summary == nil {
		return m.renderWarning()
	}

	sections := []string{
		m.renderTitle(),
		m.renderOverviewMetrics(snap.Summary),
		m.renderProcessingMetrics(snap.Summary),
		m.renderCategoryBreakdown(snap.Summary),
		m.renderTopEndpoints(snap),
		m.renderHourlyActivity(snap.Hourly),
		m.renderBusinessMetrics(snap.Summary),
		m.renderDailyStats(snap.Daily),
		m.renderFooter(snap),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderWarning() string {
	lines := []string{
		styles.WarningTextStyle.Render("Unable to fetch analytics data. Please check the backend connection."),
		"",
		styles.InfoTextStyle.Render("Trying to connect to: " + m.backendURL),
	}

	card := styles.CardStyle.
		BorderForeground(styles.Warning).
		Width(m.cardWidth()).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return styles.DocStyle.Width(m.width).Height(m.height).Render(card)
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Cynchrony Analytics")
	subtitle := styles.HelpStyle.Render("Live API usage across the platform")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderOverviewMetrics(s *models.Summary) string {
	cells := []string{
		metricCell("Total API Calls", components.FormatNumber(s.TotalAPICalls), styles.MetricValueStyle),
		metricCell("Success Rate", components.FormatRate(s.SuccessRate), styles.GetRateStyle(s.SuccessRate)),
		metricCell("Total Errors", components.FormatNumber(s.TotalErrors), styles.MetricValueStyle),
		metricCell("AI Chat Calls", components.FormatNumber(s.AIChatCalls), styles.MetricValueStyle),
		metricCell("AI Generation", components.FormatNumber(s.AIGenerationCalls), styles.MetricValueStyle),
	}

	return m.renderCard("Overview", lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (m *Model) renderProcessingMetrics(s *models.Summary) string {
	cells := []string{
		metricCell("PDF Processing", components.FormatNumber(s.PDFProcessing), styles.MetricValueStyle),
		metricCell("Image Processing", components.FormatNumber(s.ImageProcessing), styles.MetricValueStyle),
		metricCell("Video Processing", components.FormatNumber(s.VideoProcessing), styles.MetricValueStyle),
		metricCell("Audio Processing", components.FormatNumber(s.AudioProcessing), styles.MetricValueStyle),
		metricCell("Code Executions", components.FormatNumber(s.CodeExecutions), styles.MetricValueStyle),
		metricCell("File Uploads", components.FormatNumber(s.FileUploads), styles.MetricValueStyle),
	}

	return m.renderCard("Processing Operations", lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (m *Model) renderCategoryBreakdown(s *models.Summary) string {
	if len(s.CategoryBreakdown) == 0 {
		return m.renderPlaceholderCard("Category Breakdown", "No category data available yet.")
	}

	type entry struct {
		name  string
		count int64
	}

	entries := make([]entry, 0, len(s.CategoryBreakdown))
	for name, count := range s.CategoryBreakdown {
		entries = append(entries, entry{prettifyCategory(name), count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count < entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	values := make([]float64, len(entries))
	labels := make([]string, len(entries))
	for i, e := range entries {
		values[i] = float64(e.count)
		labels[i] = e.name
	}

	chart := components.RenderBarChart(values, labels, m.chartWidth())
	return m.renderCard("Category Breakdown", chart)
}

func (m *Model) renderTopEndpoints(snap *models.Snapshot) string {
	top := snap.TopEndpoints(topEndpointCount)
	if len(top) == 0 {
		return m.renderPlaceholderCard("Top Endpoints", "No endpoint data available yet.")
	}

	values := make([]float64, len(top))
	rates := make([]float64, len(top))
	labels := make([]string, len(top))
	for i, ep := range top {
		values[i] = float64(ep.Count)
		rates[i] = ep.SuccessRate
		labels[i] = ep.Endpoint
	}

	chart := components.RenderRateBarChart(values, rates, labels, m.chartWidth())
	return m.renderCard("Top Endpoints", chart)
}

func (m *Model) renderHourlyActivity(hourly []models.HourlyBucket) string {
	if len(hourly) == 0 {
		return m.renderPlaceholderCard("Hourly Activity (Last 24 Hours)", "No hourly data available yet.")
	}

	total := make([]float64, len(hourly))
	success := make([]float64, len(hourly))
	errs := make([]float64, len(hourly))
	for i, b := range hourly {
		total[i] = float64(b.Count)
		success[i] = float64(b.SuccessCount)
		errs[i] = float64(b.ErrorCount)
	}

	caption := fmt.Sprintf("%s to %s", hourly[0].Hour, hourly[len(hourly)-1].Hour)
	chart := components.RenderTripleLineChart(total, success, errs, m.chartWidth(), 10, caption)

	legend := components.RenderLegend([]components.LegendItem{
		{Label: "Total", Color: styles.Info},
		{Label: "Successful", Color: styles.Success},
		{Label: "Errors", Color: styles.Error},
	})

	return m.renderCard("Hourly Activity (Last 24 Hours)",
		lipgloss.JoinVertical(lipgloss.Left, chart, "", legend))
}

func (m *Model) renderBusinessMetrics(s *models.Summary) string {
	cells := []string{
		metricCell("Auth Events", components.FormatNumber(s.AuthenticationEvents), styles.MetricValueStyle),
		metricCell("Payment Events", components.FormatNumber(s.PaymentEvents), styles.MetricValueStyle),
		metricCell("Assessments", components.FormatNumber(s.AssessmentEvents), styles.MetricValueStyle),
		metricCell("Interviews", components.FormatNumber(s.InterviewEvents), styles.MetricValueStyle),
		metricCell("Resume Ops", components.FormatNumber(s.ResumeOperations), styles.MetricValueStyle),
	}

	return m.renderCard("Business Metrics", lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (m *Model) renderDailyStats(daily []models.DailyBucket) string {
	if len(daily) == 0 {
		return m.renderPlaceholderCard("Daily Statistics (Last 30 Days)", "No daily data available yet.")
	}

	success := make([]float64, len(daily))
	failed := make([]float64, len(daily))
	labels := make([]string, len(daily))
	for i, b := range daily {
		success[i] = float64(b.SuccessfulCalls)
		failed[i] = float64(b.FailedCalls)
		labels[i] = b.Date
	}

	chart := components.RenderStackedBarChart(success, failed, labels, m.chartWidth())

	legend := components.RenderLegend([]components.LegendItem{
		{Label: "Successful", Color: styles.Success},
		{Label: "Failed", Color: styles.Error},
	})

	return m.renderCard("Daily Statistics (Last 30 Days)",
		lipgloss.JoinVertical(lipgloss.Left, chart, "", legend))
}

func (m *Model) renderFooter(snap *models.Snapshot) string {
	updated := "never"
	if !snap.FetchedAt.IsZero() {
		updated = snap.FetchedAt.Format("15:04:05")
	}

	return styles.HelpStyle.Render(
		fmt.Sprintf("Last updated: %s   Connected to: %s", updated, m.backendURL),
	)
}

func (m *Model) renderCard(title, body string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.CardTitleStyle.Render(title),
		body,
	)
	return styles.CardStyle.Width(m.cardWidth()).Render(content)
}

func (m *Model) renderPlaceholderCard(title, message string) string {
	return m.renderCard(title, styles.InfoTextStyle.Render(message))
}

func (m *Model) cardWidth() int {
	return max(m.width-6, 40)
}

func (m *Model) chartWidth() int {
	return max(m.cardWidth()-8, 30)
}

func metricCell(label, value string, valueStyle lipgloss.Style) string {
	cell := lipgloss.JoinVertical(lipgloss.Left,
		valueStyle.Render(value),
		styles.MetricLabelStyle.Render(label),
	)
	return lipgloss.NewStyle().PaddingRight(4).Render(cell)
}

// prettifyCategory turns snake_case category keys into display names.
// Rune-aware: category names come from the backend and may not be ASCII.
func prettifyCategory(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
