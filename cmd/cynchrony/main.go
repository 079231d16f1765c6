// Package main is the entry point for the Cynchrony Analytics dashboard.
// It initializes configuration, services, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hrushik98/cynchrony-analytics/internal/app"
	"github.com/hrushik98/cynchrony-analytics/internal/config"
	"github.com/hrushik98/cynchrony-analytics/internal/services"
	"github.com/hrushik98/cynchrony-analytics/internal/ui/tabs/errlog"
	"github.com/hrushik98/cynchrony-analytics/internal/ui/tabs/info"
	"github.com/hrushik98/cynchrony-analytics/internal/ui/tabs/overview"
	"github.com/hrushik98/cynchrony-analytics/internal/version"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	svcManager := services.NewManager(cfg)
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	model := app.NewModel(svcManager, cfg)

	// Each tab receives the shared application state for consistent data access.
	state := model.GetState()
	tabs := []app.Tab{
		overview.New(state, cfg.BackendURL), // Tab 0: Overview - metrics and charts
		errlog.New(state),                   // Tab 1: Errors - recent error log
		info.New(state, cfg),                // Tab 2: Info - settings and app info
	}
	model.SetTabs(tabs)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`Cynchrony Analytics - terminal dashboard for the Cynchrony API backend

Usage:
  cynchrony [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-3             Switch between tabs (Overview, Errors, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Scroll
  r               Refresh now
  a               Toggle auto-refresh
  +/-             Adjust refresh interval (5s steps, 10s-120s)
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  ANALYTICS_BACKEND_URL       Backend base URL (required)
  DASHBOARD_REFRESH_INTERVAL  Auto-refresh interval (default: 30s)
  DASHBOARD_AUTO_REFRESH      Enable auto-refresh on startup (default: true)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/cynchrony/.env
  - ~/.cynchrony/.env

  An optional cynchrony.yaml (current directory or ~/.config/cynchrony/)
  may set backend_url, refresh_interval_seconds and auto_refresh.
  Environment variables always win.`)
}
