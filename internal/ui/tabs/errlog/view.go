package errlog

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/hrushik98/cynchrony-analytics/internal/models"
	"github.com/hrushik98/cynchrony-analytics/internal/ui/styles"
)

// View renders the recent-errors table, capped at the most recent 20.
func (m *Model) View() string {
	snap := m.state.GetSnapshot()

	var errors []models.ErrorRecord
	if snap != nil {
		errors = snap.RecentErrors(maxErrorRows)
	}

	var sections []string
	sections = append(sections, m.renderTitle(len(errors)))

	if len(errors) == 0 {
		sections = append(sections, m.renderEmpty())
	} else {
		sections = append(sections, m.renderTable(errors))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle(count int) string {
	title := styles.TitleStyle.Render("Recent Errors")
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("Most recent %d records from the backend log", maxErrorRows))
	if count > 0 {
		subtitle = styles.HelpStyle.Render(fmt.Sprintf("%d record(s) shown, newest first", count))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderEmpty() string {
	return styles.CardStyle.Width(m.cardWidth()).Render(
		styles.SuccessTextStyle.Render("No errors recorded!"),
	)
}

func (m *Model) renderTable(errors []models.ErrorRecord) string {
	endpointW, methodW, statusW, msgW, timeW := m.columnWidths()

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.TableHeaderStyle.Width(endpointW).Render("Endpoint"),
		styles.TableHeaderStyle.Width(methodW).Render("Method"),
		styles.TableHeaderStyle.Width(statusW).Render("Status"),
		styles.TableHeaderStyle.Width(msgW).Render("Error Message"),
		styles.TableHeaderStyle.Width(timeW).Render("Timestamp"),
	)

	rows := []string{header}
	for _, rec := range errors {
		rows = append(rows, m.renderRow(rec, endpointW, methodW, statusW, msgW, timeW))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRow(rec models.ErrorRecord, endpointW, methodW, statusW, msgW, timeW int) string {
	statusStyle := styles.TableCellStyle
	if rec.StatusCode >= 500 {
		statusStyle = statusStyle.Foreground(styles.Error)
	} else if rec.StatusCode >= 400 {
		statusStyle = statusStyle.Foreground(styles.Warning)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.TableCellStyle.Width(endpointW).Render(truncate(rec.Endpoint, endpointW-1)),
		styles.TableCellStyle.Width(methodW).Render(rec.Method),
		statusStyle.Width(statusW).Render(strconv.FormatInt(rec.StatusCode, 10)),
		styles.TableCellStyle.Width(msgW).Render(truncate(rec.Error, msgW-1)),
		styles.TableCellStyle.Width(timeW).Render(truncate(rec.Timestamp, timeW-1)),
	)
}

// columnWidths splits the card width across the five columns, with the
// error message taking the largest share.
func (m *Model) columnWidths() (endpointW, methodW, statusW, msgW, timeW int) {
	usable := max(m.cardWidth()-6, 60)

	methodW = 8
	statusW = 8
	timeW = 21
	remaining := usable - methodW - statusW - timeW
	endpointW = remaining * 2 / 5
	msgW = remaining - endpointW
	return endpointW, methodW, statusW, msgW, timeW
}

func (m *Model) cardWidth() int {
	return max(m.width-6, 60)
}

// truncate cuts s to limit terminal cells. Backend strings may carry
// multibyte runes, so byte slicing is not safe here.
func truncate(s string, limit int) string {
	if limit < 4 || lipgloss.Width(s) <= limit {
		return s
	}
	return ansi.Truncate(s, limit, "...")
}
