// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/hrushik98/cynchrony-analytics/internal/ui/styles"
)

// RenderTripleLineChart draws three overlaid series: total, success and
// error counts.
func RenderTripleLineChart(total, success, errs []float64, width, height int, caption string) string {
	if len(total) == 0 && len(success) == 0 && len(errs) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	// Pad shorter series with zeros so the plot widths line up.
	maxLen := max(len(total), max(len(success), len(errs)))
	totalData := make([]float64, maxLen)
	successData := make([]float64, maxLen)
	errData := make([]float64, maxLen)
	copy(totalData, total)
	copy(successData, success)
	copy(errData, errs)

	return asciigraph.PlotMany([][]float64{totalData, successData, errData},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(
			asciigraph.Blue,
			asciigraph.Green,
			asciigraph.Red,
		),
	)
}

// RenderBarChart creates a horizontal bar chart with one row per label.
func RenderBarChart(values []float64, labels []string, width int) string {
	if len(values) == 0 {
		return ""
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	maxLabelLen := maxLabelWidth(labels)

	barWidth := width - maxLabelLen - 10 // Leave room for label and value
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}

		paddedLabel := padLabel(label, maxLabelLen)

		barLen := int((v / maxVal) * float64(barWidth))
		if barLen < 0 {
			barLen = 0
		}

		bar := strings.Repeat("█", barLen)
		valueStr := " " + FormatNumber(int64(v))

		lines = append(lines, paddedLabel+" │"+bar+valueStr)
	}

	return strings.Join(lines, "\n")
}

// RenderRateBarChart is a horizontal bar chart whose bars are colored by
// each row's success rate bucket.
func RenderRateBarChart(values []float64, rates []float64, labels []string, width int) string {
	if len(values) == 0 {
		return ""
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	maxLabelLen := maxLabelWidth(labels)

	barWidth := width - maxLabelLen - 18 // label, count and rate suffix
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		rate := 0.0
		if i < len(rates) {
			rate = rates[i]
		}

		paddedLabel := padLabel(label, maxLabelLen)

		barLen := int((v / maxVal) * float64(barWidth))
		if barLen < 0 {
			barLen = 0
		}

		style := styles.GetRateStyle(rate)
		bar := style.Render(strings.Repeat("█", barLen))
		suffix := fmt.Sprintf(" %s  %s", FormatNumber(int64(v)), style.Render(FormatRate(rate)))

		lines = append(lines, paddedLabel+" │"+bar+suffix)
	}

	return strings.Join(lines, "\n")
}

// RenderStackedBarChart draws one row per label with a green segment for
// successes stacked against a red segment for failures.
func RenderStackedBarChart(success, failed []float64, labels []string, width int) string {
	if len(labels) == 0 {
		return ""
	}

	maxTotal := 0.0
	for i := range labels {
		total := valueAt(success, i) + valueAt(failed, i)
		if total > maxTotal {
			maxTotal = total
		}
	}
	if maxTotal == 0 {
		maxTotal = 1
	}

	maxLabelLen := maxLabelWidth(labels)

	barWidth := width - maxLabelLen - 14
	if barWidth < 10 {
		barWidth = 10
	}

	successStyle := lipgloss.NewStyle().Foreground(styles.Success)
	failedStyle := lipgloss.NewStyle().Foreground(styles.Error)

	var lines []string
	for i, label := range labels {
		ok := valueAt(success, i)
		bad := valueAt(failed, i)

		okLen := int((ok / maxTotal) * float64(barWidth))
		badLen := int((bad / maxTotal) * float64(barWidth))
		if ok > 0 && okLen == 0 {
			okLen = 1
		}
		if bad > 0 && badLen == 0 {
			badLen = 1
		}

		paddedLabel := padLabel(label, maxLabelLen)
		bar := successStyle.Render(strings.Repeat("█", okLen)) +
			failedStyle.Render(strings.Repeat("█", badLen))
		valueStr := fmt.Sprintf(" %s/%s", FormatNumber(int64(ok)), FormatNumber(int64(bad)))

		lines = append(lines, paddedLabel+" │"+bar+valueStr)
	}

	return strings.Join(lines, "\n")
}

// maxLabelWidth measures labels in terminal cells, not bytes, so
// non-ASCII labels keep the bar columns aligned.
func maxLabelWidth(labels []string) int {
	maxLen := 0
	for _, l := range labels {
		if w := lipgloss.Width(l); w > maxLen {
			maxLen = w
		}
	}
	return maxLen
}

func padLabel(label string, width int) string {
	if gap := width - lipgloss.Width(label); gap > 0 {
		return strings.Repeat(" ", gap) + label
	}
	return label
}

func valueAt(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}

// RenderLegend creates a chart legend.
func RenderLegend(items []LegendItem) string {
	var parts []string
	for _, item := range items {
		colorBox := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s", colorBox, item.Label))
	}
	return strings.Join(parts, "  ")
}

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}
