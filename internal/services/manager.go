// Package services provides service orchestration for the TUI.
package services

import (
	"context"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/hrushik98/cynchrony-analytics/internal/analytics"
	"github.com/hrushik98/cynchrony-analytics/internal/config"
	"github.com/hrushik98/cynchrony-analytics/internal/logger"
	"github.com/hrushik98/cynchrony-analytics/internal/models"
)

type (
	// SnapshotEvent is emitted when a fetch cycle completes.
	SnapshotEvent struct {
		Snapshot *models.Snapshot
	}

	// BackendStatusEvent is emitted when the backend health state changes.
	BackendStatusEvent struct {
		Online bool
		Err    error
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (SnapshotEvent) isServiceEvent()      {}
func (BackendStatusEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()         {}

// Manager owns the analytics client and fans service events out to
// subscribers. It keeps no analytics data between cycles beyond the
// last observed backend health state.
type Manager struct {
	mu          sync.RWMutex
	client      *analytics.Client
	cfg         *config.Config
	subscribers []chan ServiceEvent
	lastOnline  *bool
	notify      func(title, body string)
	closed      bool
}

// NewManager creates a new service manager.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		client: analytics.NewClient(cfg.BackendURL, cfg.HTTPTimeout, cfg.HealthTimeout),
		cfg:    cfg,
		notify: func(title, body string) {
			_ = beeep.Notify(title, body, "")
		},
	}
}

// Client returns the underlying analytics client.
func (m *Manager) Client() *analytics.Client {
	return m.client
}

// Config returns the configuration the manager was built with.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// FetchSnapshot runs one full fetch cycle and broadcasts the result.
func (m *Manager) FetchSnapshot(ctx context.Context) *models.Snapshot {
	snap := m.client.FetchSnapshot(ctx)
	m.broadcast(SnapshotEvent{Snapshot: snap})
	return snap
}

// CheckHealth probes the backend. State transitions are broadcast and
// surfaced as a desktop notification so an operator notices an outage
// even with the terminal in the background.
func (m *Manager) CheckHealth(ctx context.Context) (bool, error) {
	err := m.client.CheckHealth(ctx)
	online := err == nil

	m.mu.Lock()
	changed := m.lastOnline == nil || *m.lastOnline != online
	m.lastOnline = &online
	notify := m.notify
	m.mu.Unlock()

	if changed {
		m.broadcast(BackendStatusEvent{Online: online, Err: err})
		if online {
			notify("Cynchrony Analytics", "Backend is back online")
		} else {
			notify("Cynchrony Analytics", "Backend is offline: "+m.cfg.BackendURL)
			logger.Warn("backend offline", "url", m.cfg.BackendURL, "error", err)
		}
	}

	return online, err
}

// BackendOnline returns the last observed health state, or nil if the
// backend has not been probed yet.
func (m *Manager) BackendOnline() *bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.lastOnline == nil {
		return nil
	}
	v := *m.lastOnline
	return &v
}

// Subscribe registers a new event channel. The returned channel is
// closed when the manager shuts down.
func (m *Manager) Subscribe() <-chan ServiceEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan ServiceEvent, 16)
	m.subscribers = append(m.subscribers, ch)
	return ch
}

// broadcast delivers an event to every subscriber, dropping it for
// subscribers whose buffer is full rather than blocking a fetch cycle.
func (m *Manager) broadcast(event ServiceEvent) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return
	}
	for _, ch := range m.subscribers {
		select {
		case ch <- event:
		default:
			logger.Debug("dropping service event, subscriber is slow")
		}
	}
}

// Close shuts down the manager and closes all subscriber channels.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	for _, ch := range m.subscribers {
		close(ch)
	}
	m.subscribers = nil
	return nil
}

// WaitForEvent blocks until the next event is available. A closed
// channel yields nil.
func WaitForEvent(ch <-chan ServiceEvent) ServiceEvent {
	event, ok := <-ch
	if !ok {
		return nil
	}
	return event
}
