package info

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/hrushik98/cynchrony-analytics/internal/ui/styles"
	"github.com/hrushik98/cynchrony-analytics/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	sections := []string{
		m.renderTitle(),
		m.renderSettingsCard(),
		m.renderBackendCard(),
		m.renderLinksCard(),
		m.renderAboutCard(),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Refresh settings, backend status and application information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderSettingsCard shows the live refresh settings. These reflect the
// operator's runtime adjustments, not the startup config.
func (m *Model) renderSettingsCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Refresh Settings"))
	rows = append(rows, "")

	autoRefresh := styles.ErrorTextStyle.Render("OFF")
	if m.state.AutoRefresh() {
		autoRefresh = styles.SuccessTextStyle.Render("ON")
	}

	rows = append(rows, m.renderRow("Auto Refresh", autoRefresh))
	rows = append(rows, m.renderRow("Interval", m.state.RefreshInterval().String()))

	updated := "never"
	if !m.state.LastUpdated().IsZero() {
		updated = m.state.LastUpdated().Format("15:04:05")
	}
	rows = append(rows, m.renderRow("Last Updated", updated))

	rows = append(rows, "")
	rows = append(rows, styles.HelpStyle.Render("'a' toggles auto-refresh, '+'/'-' adjust the interval, 'r' refreshes now"))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderBackendCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Backend Status"))
	rows = append(rows, "")

	status := styles.HelpStyle.Render("Unknown (no probe yet)")
	if online := m.state.BackendOnline(); online != nil {
		if *online {
			status = styles.SuccessTextStyle.Render("Online")
		} else {
			status = styles.ErrorTextStyle.Render("Offline")
		}
	}

	rows = append(rows, m.renderRow("Status", status))
	if m.config != nil {
		rows = append(rows, m.renderRow("Backend URL", m.config.BackendURL))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderLinksCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Quick Links"))
	rows = append(rows, "")

	if m.config != nil {
		rows = append(rows, m.renderRow("API Docs", m.config.DocsURL()))
		rows = append(rows, m.renderRow("Health Check", m.config.HealthURL()))
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderAboutCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About Cynchrony Analytics"))
	rows = append(rows, "")

	rows = append(rows, m.renderRow("Version", version.GetVersion()))
	rows = append(rows, m.renderRow("Commit", version.GetCommit()))
	rows = append(rows, m.renderRow("Build Date", version.GetDate()))
	rows = append(rows, m.renderRow("Go Version", runtime.Version()))
	rows = append(rows, m.renderRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(16).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

func (m *Model) cardWidth() int {
	cardWidth := m.width - 6
	if cardWidth < 50 {
		cardWidth = 50
	}
	if cardWidth > 80 {
		cardWidth = 80
	}
	return cardWidth
}
