package app

import (
	"time"

	"github.com/hrushik98/cynchrony-analytics/internal/models"
	"github.com/hrushik98/cynchrony-analytics/internal/services"
)

// TickMsg is sent periodically for housekeeping (notification expiry).
type TickMsg struct {
	Time time.Time
}

// RefreshTickMsg fires when the auto-refresh wait elapses. Gen identifies
// the timer generation that armed it; stale generations are dropped.
type RefreshTickMsg struct {
	Gen int
}

// RefreshMsg requests an immediate fetch cycle.
type RefreshMsg struct{}

// SnapshotLoadedMsg carries the result of a completed fetch cycle.
type SnapshotLoadedMsg struct {
	Snapshot *models.Snapshot
}

// HealthCheckedMsg carries the result of a backend health probe.
type HealthCheckedMsg struct {
	Online bool
	Err    error
}

// AddNotificationMsg adds a notification to the state.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg removes a notification by ID.
type RemoveNotificationMsg struct {
	ID string
}

// SubscriptionEventMsg carries the service event channel after subscribing.
type SubscriptionEventMsg struct {
	Channel <-chan services.ServiceEvent
}

// ServiceEventMsg wraps an event received from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// TabSwitchMsg requests a switch to a different tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help overlay.
type ToggleHelpMsg struct{}

// ErrorMsg reports an error from a background command.
type ErrorMsg struct {
	Error   error
	Context string
}
