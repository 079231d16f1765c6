package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hrushik98/cynchrony-analytics/internal/services"
)

const (
	// housekeepingInterval drives notification expiry sweeps.
	housekeepingInterval = time.Second

	// snapshotTimeout bounds one full fetch cycle across all endpoints.
	snapshotTimeout = 60 * time.Second

	// defaultNotificationDuration is how long toasts stay on screen.
	defaultNotificationDuration = 5 * time.Second
)

// Commands bundles the background commands the model dispatches. Holding
// the manager here keeps the model's Update free of service plumbing.
type Commands struct {
	manager *services.Manager
}

// NewCommands creates a command factory bound to the service manager.
func NewCommands(manager *services.Manager) *Commands {
	return &Commands{manager: manager}
}

// Tick schedules the next housekeeping tick.
func (c *Commands) Tick() tea.Cmd {
	return tea.Tick(housekeepingInterval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// RefreshTick arms the auto-refresh timer for the given generation.
func (c *Commands) RefreshTick(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return RefreshTickMsg{Gen: gen}
	})
}

// Refresh requests an immediate fetch cycle.
func (c *Commands) Refresh() tea.Cmd {
	return func() tea.Msg {
		return RefreshMsg{}
	}
}

// SwitchTab requests a switch to the given tab.
func (c *Commands) SwitchTab(tab TabID) tea.Cmd {
	return func() tea.Msg {
		return TabSwitchMsg{Tab: tab}
	}
}

// ToggleHelp toggles the help overlay.
func (c *Commands) ToggleHelp() tea.Cmd {
	return func() tea.Msg {
		return ToggleHelpMsg{}
	}
}

// ClearNotification removes the notification after its display duration.
func (c *Commands) ClearNotification(id string, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

// ReportError surfaces a background error to the update loop.
func (c *Commands) ReportError(err error, context string) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err, Context: context}
	}
}

// FetchSnapshot runs one full fetch cycle in the background. The cycle
// itself never fails; partial results and diagnostics ride the snapshot.
func (c *Commands) FetchSnapshot() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()

		snap := c.manager.FetchSnapshot(ctx)
		return SnapshotLoadedMsg{Snapshot: snap}
	}
}

// CheckHealth probes the backend health endpoint in the background.
func (c *Commands) CheckHealth() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()

		online, err := c.manager.CheckHealth(ctx)
		return HealthCheckedMsg{Online: online, Err: err}
	}
}

// Subscribe opens a subscription to service events.
func (c *Commands) Subscribe() tea.Cmd {
	return func() tea.Msg {
		return SubscriptionEventMsg{Channel: c.manager.Subscribe()}
	}
}

// WaitForEvent blocks on the event channel and delivers the next event.
func (c *Commands) WaitForEvent(ch <-chan services.ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event := services.WaitForEvent(ch)
		if event == nil {
			return nil
		}
		return ServiceEventMsg{Event: event}
	}
}

// NotifySuccess shows a success toast.
func (c *Commands) NotifySuccess(message string) tea.Cmd {
	return notifyCmd(NotificationSuccess, message)
}

// NotifyError shows an error toast.
func (c *Commands) NotifyError(message string) tea.Cmd {
	return notifyCmd(NotificationError, message)
}

// NotifyWarning shows a warning toast.
func (c *Commands) NotifyWarning(message string) tea.Cmd {
	return notifyCmd(NotificationWarning, message)
}

// NotifyInfo shows an informational toast.
func (c *Commands) NotifyInfo(format string, args ...any) tea.Cmd {
	return notifyCmd(NotificationInfo, fmt.Sprintf(format, args...))
}

func notifyCmd(notifType NotificationType, message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     notifType,
			Message:  message,
			Duration: defaultNotificationDuration,
		}
	}
}
