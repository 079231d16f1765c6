package overview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hrushik98/cynchrony-analytics/internal/app"
	"github.com/hrushik98/cynchrony-analytics/internal/config"
	"github.com/hrushik98/cynchrony-analytics/internal/models"
)

const testBackendURL = "http://localhost:8000"

func newTestModel() (*app.State, *Model) {
	cfg := &config.Config{
		BackendURL:      testBackendURL,
		RefreshInterval: 30 * time.Second,
		AutoRefresh:     true,
	}
	state := app.NewState(cfg)
	state.SetLoading("initial", false)

	m := New(state, testBackendURL)
	// Tall enough that the viewport never clips the lower panels.
	m.SetSize(100, 300)
	return state, m
}

func fullSummary() *models.Summary {
	return &models.Summary{
		TotalAPICalls:        1500,
		SuccessRate:          97.2,
		TotalErrors:          10,
		AIChatCalls:          2500000,
		AIGenerationCalls:    42,
		PDFProcessing:        1,
		ImageProcessing:      2,
		VideoProcessing:      3,
		AudioProcessing:      4,
		CodeExecutions:       5,
		FileUploads:          6,
		AuthenticationEvents: 7,
		PaymentEvents:        8,
		AssessmentEvents:     9,
		InterviewEvents:      10,
		ResumeOperations:     11,
		CategoryBreakdown:    map[string]int64{},
	}
}

func TestNew(t *testing.T) {
	_, m := newTestModel()
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.Init() == nil {
		t.Error("Init returned nil")
	}
}

func TestView_InitialLoading(t *testing.T) {
	cfg := &config.Config{BackendURL: testBackendURL, RefreshInterval: 30 * time.Second}
	state := app.NewState(cfg)
	m := New(state, testBackendURL)
	m.SetSize(80, 24)

	view := m.View()
	if !strings.Contains(view, "Loading analytics") {
		t.Error("View should show spinner label during initial load")
	}
}

func TestView_AbsentSummary(t *testing.T) {
	state, m := newTestModel()
	state.SetSnapshot(&models.Snapshot{FetchedAt: time.Now()})

	view := m.View()
	if !strings.Contains(view, "Unable to fetch analytics data") {
		t.Error("View should show the warning text")
	}
	if !strings.Contains(view, testBackendURL) {
		t.Error("Warning should name the attempted backend URL")
	}
	// No metric panels alongside the warning
	for _, label := range []string{"Total API Calls", "Processing Operations", "Business Metrics"} {
		if strings.Contains(view, label) {
			t.Errorf("View should not render %q when summary is absent", label)
		}
	}
}

func TestView_EmptyListsShowPlaceholders(t *testing.T) {
	state, m := newTestModel()
	state.SetSnapshot(&models.Snapshot{
		Summary:   fullSummary(),
		FetchedAt: time.Now(),
	})

	view := m.View()

	if !strings.Contains(view, "1.5K") {
		t.Error("Total API calls should render as 1.5K")
	}
	if !strings.Contains(view, "97.2%") {
		t.Error("Success rate should render as 97.2%")
	}
	if !strings.Contains(view, "2.5M") {
		t.Error("AI chat calls should render as 2.5M")
	}
	if !strings.Contains(view, "42") {
		t.Error("Small counts render literally")
	}

	for _, placeholder := range []string{
		"No category data available yet.",
		"No endpoint data available yet.",
		"No hourly data available yet.",
		"No daily data available yet.",
	} {
		if !strings.Contains(view, placeholder) {
			t.Errorf("View should contain placeholder %q", placeholder)
		}
	}
}

func TestView_PanelsRenderIndependently(t *testing.T) {
	state, m := newTestModel()

	s := fullSummary()
	s.CategoryBreakdown = map[string]int64{"ai_chat": 900, "file_upload": 100}

	state.SetSnapshot(&models.Snapshot{
		Summary: s,
		Endpoints: []models.EndpointStat{
			{Endpoint: "/api/chat", Count: 1200, SuccessRate: 99.1},
			{Endpoint: "/api/upload", Count: 300, SuccessRate: 73.5},
		},
		Hourly: []models.HourlyBucket{
			{Hour: "2026-08-26 10:00", Count: 10, SuccessCount: 9, ErrorCount: 1},
			{Hour: "2026-08-26 11:00", Count: 20, SuccessCount: 18, ErrorCount: 2},
		},
		FetchedAt: time.Now(),
	})

	view := m.View()

	if !strings.Contains(view, "Ai Chat") {
		t.Error("Category names should be prettified")
	}
	if !strings.Contains(view, "/api/chat") {
		t.Error("Top endpoints chart should name endpoints")
	}
	if !strings.Contains(view, "Hourly Activity") {
		t.Error("Hourly chart should render with data")
	}
	// Daily stayed empty, its placeholder must coexist with live panels
	if !strings.Contains(view, "No daily data available yet.") {
		t.Error("Daily placeholder should render while other panels have data")
	}
}

func TestView_Footer(t *testing.T) {
	state, m := newTestModel()
	state.SetSnapshot(&models.Snapshot{
		Summary:   fullSummary(),
		FetchedAt: time.Date(2026, 8, 26, 12, 34, 56, 0, time.UTC),
	})

	view := m.View()
	if !strings.Contains(view, "12:34:56") {
		t.Error("Footer should show last-updated time")
	}
	if !strings.Contains(view, "Connected to: "+testBackendURL) {
		t.Error("Footer should show the backend URL")
	}
}

func TestPrettifyCategory(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ai_chat", "Ai Chat"},
		{"pdf_processing", "Pdf Processing"},
		{"auth", "Auth"},
		{"", ""},
		{"über_fast", "Über Fast"},
		{"日本語_api", "日本語 Api"},
	}
	for _, tt := range tests {
		if got := prettifyCategory(tt.in); got != tt.want {
			t.Errorf("prettifyCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestModel_KeyBindings(t *testing.T) {
	_, m := newTestModel()

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
}

func TestModel_Help(t *testing.T) {
	_, m := newTestModel()
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}
