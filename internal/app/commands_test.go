package app

import (
	"errors"
	"testing"
	"time"
)

func TestCommands_Tick(t *testing.T) {
	c := NewCommands(nil)
	if c.Tick() == nil {
		t.Error("Tick returned nil command")
	}
}

func TestCommands_RefreshTick(t *testing.T) {
	c := NewCommands(nil)
	if c.RefreshTick(time.Second, 1) == nil {
		t.Error("RefreshTick returned nil command")
	}
}

func TestCommands_Refresh(t *testing.T) {
	c := NewCommands(nil)
	if _, ok := c.Refresh()().(RefreshMsg); !ok {
		t.Error("Refresh should produce a RefreshMsg")
	}
}

func TestCommands_SwitchTab(t *testing.T) {
	c := NewCommands(nil)

	msg, ok := c.SwitchTab(TabErrors)().(TabSwitchMsg)
	if !ok {
		t.Fatal("SwitchTab should produce a TabSwitchMsg")
	}
	if msg.Tab != TabErrors {
		t.Errorf("Tab = %v, want Errors", msg.Tab)
	}
}

func TestCommands_ToggleHelp(t *testing.T) {
	c := NewCommands(nil)
	if _, ok := c.ToggleHelp()().(ToggleHelpMsg); !ok {
		t.Error("ToggleHelp should produce a ToggleHelpMsg")
	}
}

func TestCommands_ClearNotification(t *testing.T) {
	c := NewCommands(nil)
	if c.ClearNotification("abc123", time.Second) == nil {
		t.Error("ClearNotification returned nil command")
	}
}

func TestCommands_ReportError(t *testing.T) {
	c := NewCommands(nil)

	msg, ok := c.ReportError(errors.New("boom"), "snapshot")().(ErrorMsg)
	if !ok {
		t.Fatal("ReportError should produce an ErrorMsg")
	}
	if msg.Context != "snapshot" || msg.Error.Error() != "boom" {
		t.Errorf("Unexpected error message: %+v", msg)
	}
}

func TestCommands_Notify(t *testing.T) {
	c := NewCommands(nil)

	msg := c.NotifySuccess("done")()
	add, ok := msg.(AddNotificationMsg)
	if !ok {
		t.Fatalf("NotifySuccess produced %T, want AddNotificationMsg", msg)
	}
	if add.Type != NotificationSuccess || add.Message != "done" {
		t.Errorf("Unexpected notification: %+v", add)
	}
	if add.Duration != defaultNotificationDuration {
		t.Errorf("Duration = %v, want %v", add.Duration, defaultNotificationDuration)
	}

	msg = c.NotifyError("boom")()
	if add := msg.(AddNotificationMsg); add.Type != NotificationError {
		t.Error("NotifyError should produce an error notification")
	}

	msg = c.NotifyWarning("careful")()
	if add := msg.(AddNotificationMsg); add.Type != NotificationWarning {
		t.Error("NotifyWarning should produce a warning notification")
	}

	msg = c.NotifyInfo("interval: %s", time.Minute)()
	add = msg.(AddNotificationMsg)
	if add.Type != NotificationInfo {
		t.Error("NotifyInfo should produce an info notification")
	}
	if add.Message != "interval: 1m0s" {
		t.Errorf("Message = %q, want formatted interval", add.Message)
	}
}
