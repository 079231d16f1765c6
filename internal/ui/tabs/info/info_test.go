package info

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hrushik98/cynchrony-analytics/internal/app"
	"github.com/hrushik98/cynchrony-analytics/internal/config"
)

func newTestModel() (*app.State, *Model) {
	cfg := &config.Config{
		BackendURL:      "http://localhost:8000",
		RefreshInterval: 30 * time.Second,
		AutoRefresh:     true,
	}
	state := app.NewState(cfg)

	m := New(state, cfg)
	// Tall enough that the viewport never clips the lower cards.
	m.SetSize(100, 100)
	return state, m
}

func TestView_Settings(t *testing.T) {
	state, m := newTestModel()

	view := m.View()
	if !strings.Contains(view, "Refresh Settings") {
		t.Error("View should contain settings card")
	}
	if !strings.Contains(view, "ON") {
		t.Error("Auto-refresh should show ON")
	}
	if !strings.Contains(view, "30s") {
		t.Error("View should show the interval")
	}

	state.ToggleAutoRefresh()
	view = m.View()
	if !strings.Contains(view, "OFF") {
		t.Error("Auto-refresh should show OFF after toggle")
	}
}

func TestView_BackendStatus(t *testing.T) {
	state, m := newTestModel()

	view := m.View()
	if !strings.Contains(view, "Unknown") {
		t.Error("Status should be Unknown before the first probe")
	}

	state.SetBackendOnline(true)
	view = m.View()
	if !strings.Contains(view, "Online") {
		t.Error("Status should be Online")
	}

	state.SetBackendOnline(false)
	view = m.View()
	if !strings.Contains(view, "Offline") {
		t.Error("Status should be Offline")
	}
}

func TestView_Links(t *testing.T) {
	_, m := newTestModel()

	view := m.View()
	if !strings.Contains(view, "http://localhost:8000/docs") {
		t.Error("View should contain the API docs URL")
	}
	if !strings.Contains(view, "http://localhost:8000/health") {
		t.Error("View should contain the health URL")
	}
}

func TestView_About(t *testing.T) {
	_, m := newTestModel()

	view := m.View()
	if !strings.Contains(view, "About Cynchrony Analytics") {
		t.Error("View should contain the about card")
	}
	if !strings.Contains(view, "Go Version") {
		t.Error("View should show the Go version row")
	}
}

func TestModel_Basics(t *testing.T) {
	_, m := newTestModel()

	if m.Init() != nil {
		t.Error("Init should be a no-op")
	}
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
}
