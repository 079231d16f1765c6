package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hrushik98/cynchrony-analytics/internal/config"
)

func testConfig(url string) *config.Config {
	return &config.Config{
		BackendURL:      url,
		RefreshInterval: 30 * time.Second,
		AutoRefresh:     true,
		HTTPTimeout:     2 * time.Second,
		HealthTimeout:   time.Second,
	}
}

func newTestManager(url string) *Manager {
	m := NewManager(testConfig(url))
	m.notify = func(title, body string) {} // no desktop popups from tests
	return m
}

func TestNewManager(t *testing.T) {
	m := newTestManager("http://localhost:1")
	defer m.Close()

	if m.Client() == nil {
		t.Fatal("Client should not be nil")
	}
	if m.BackendOnline() != nil {
		t.Error("BackendOnline should be nil before the first probe")
	}
}

func TestManager_CheckHealth_Transitions(t *testing.T) {
	healthy := true
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if healthy {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer server.Close()

	m := newTestManager(server.URL)
	defer m.Close()

	ch := m.Subscribe()

	online, err := m.CheckHealth(context.Background())
	if !online || err != nil {
		t.Fatalf("CheckHealth = %v, %v", online, err)
	}

	select {
	case event := <-ch:
		status, ok := event.(BackendStatusEvent)
		if !ok || !status.Online {
			t.Errorf("expected online status event, got %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("no event after first probe")
	}

	// Same state again: no event.
	m.CheckHealth(context.Background())
	select {
	case event := <-ch:
		t.Errorf("unexpected event for unchanged state: %+v", event)
	default:
	}

	// Flip to unhealthy: transition event.
	healthy = false
	online, _ = m.CheckHealth(context.Background())
	if online {
		t.Error("CheckHealth should report offline on 503")
	}
	select {
	case event := <-ch:
		status, ok := event.(BackendStatusEvent)
		if !ok || status.Online {
			t.Errorf("expected offline status event, got %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("no event after transition")
	}

	if got := m.BackendOnline(); got == nil || *got {
		t.Error("BackendOnline should be false")
	}
}

func TestManager_FetchSnapshot_Broadcasts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {}}`))
	}))
	defer server.Close()

	m := newTestManager(server.URL)
	defer m.Close()

	ch := m.Subscribe()
	snap := m.FetchSnapshot(context.Background())
	if snap == nil {
		t.Fatal("FetchSnapshot returned nil")
	}

	select {
	case event := <-ch:
		se, ok := event.(SnapshotEvent)
		if !ok || se.Snapshot != snap {
			t.Errorf("expected snapshot event, got %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot event")
	}
}

func TestManager_Close(t *testing.T) {
	m := newTestManager("http://localhost:1")
	ch := m.Subscribe()

	if err := m.Close(); err != nil {
		t.Errorf("Close error = %v", err)
	}
	if _, ok := <-ch; ok {
		t.Error("subscriber channel should be closed")
	}

	// Idempotent
	if err := m.Close(); err != nil {
		t.Errorf("second Close error = %v", err)
	}
}

func TestWaitForEvent(t *testing.T) {
	ch := make(chan ServiceEvent, 1)
	ch <- BackendStatusEvent{Online: true}
	if event := WaitForEvent(ch); event == nil {
		t.Error("WaitForEvent returned nil for buffered event")
	}

	close(ch)
	if event := WaitForEvent(ch); event != nil {
		t.Error("WaitForEvent should return nil on closed channel")
	}
}
