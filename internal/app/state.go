// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/hrushik98/cynchrony-analytics/internal/config"
	"github.com/hrushik98/cynchrony-analytics/internal/models"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"

	// maxNotifications bounds the toast stack.
	maxNotifications = 10
)

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// LoadingState tracks loading states for different resources.
type LoadingState struct {
	Initial  bool
	Snapshot bool
	Health   bool
}

// State is the shared application state. One fetch cycle replaces the
// snapshot wholesale; nothing accumulates between cycles.
type State struct {
	mu sync.RWMutex

	snapshot      *models.Snapshot
	backendOnline *bool

	autoRefresh     bool
	refreshInterval time.Duration
	refreshGen      int

	Loading     LoadingState
	lastUpdated time.Time

	notifications []Notification
}

// NewState creates state seeded from configuration.
func NewState(cfg *config.Config) *State {
	return &State{
		autoRefresh:     cfg.AutoRefresh,
		refreshInterval: cfg.RefreshInterval,
		Loading:         LoadingState{Initial: true},
	}
}

// SetSnapshot replaces the current snapshot and clears snapshot loading.
func (s *State) SetSnapshot(snap *models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap
	s.lastUpdated = time.Now()
	s.Loading.Snapshot = false
	s.Loading.Initial = false
}

// GetSnapshot returns the snapshot from the most recent cycle, or nil.
func (s *State) GetSnapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// SetBackendOnline records the last health probe result.
func (s *State) SetBackendOnline(online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backendOnline = &online
	s.Loading.Health = false
}

// BackendOnline returns the last health probe result, nil before the
// first probe completes.
func (s *State) BackendOnline() *bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backendOnline
}

// AutoRefresh reports whether the auto-refresh timer is enabled.
func (s *State) AutoRefresh() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.autoRefresh
}

// ToggleAutoRefresh flips the auto-refresh flag and returns the new value.
func (s *State) ToggleAutoRefresh() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoRefresh = !s.autoRefresh
	return s.autoRefresh
}

// RefreshInterval returns the configured wait between cycles.
func (s *State) RefreshInterval() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshInterval
}

// AdjustInterval shifts the refresh interval by delta, clamped to the
// operator range, and returns the new value.
func (s *State) AdjustInterval(delta time.Duration) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshInterval = config.ClampInterval(s.refreshInterval + delta)
	return s.refreshInterval
}

// NextRefreshGen arms a new refresh timer generation. Ticks from older
// generations are stale and must be dropped.
func (s *State) NextRefreshGen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshGen++
	return s.refreshGen
}

// IsCurrentRefreshGen reports whether gen is the most recently armed timer.
func (s *State) IsCurrentRefreshGen(gen int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return gen == s.refreshGen
}

// SetLoading sets the loading state for a specific resource.
func (s *State) SetLoading(resource string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch resource {
	case "initial":
		s.Loading.Initial = loading
	case "snapshot":
		s.Loading.Snapshot = loading
	case "health":
		s.Loading.Health = loading
	}
}

// AnyLoading returns true if any resource is currently loading.
func (s *State) AnyLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loading.Initial || s.Loading.Snapshot || s.Loading.Health
}

// IsInitialLoading returns true if the first cycle has not completed.
func (s *State) IsInitialLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loading.Initial
}

// LastUpdated returns the completion time of the most recent cycle.
func (s *State) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := xid.New().String()
	s.notifications = append(s.notifications, Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	})

	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	return active
}

// SetLoadingNotification sets or updates the pinned loading notification.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

// ClearLoadingNotification removes the pinned loading notification.
func (s *State) ClearLoadingNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}
