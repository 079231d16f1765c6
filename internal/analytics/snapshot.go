package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/hrushik98/cynchrony-analytics/internal/logger"
	"github.com/hrushik98/cynchrony-analytics/internal/models"
)

// FetchSnapshot runs one full fetch cycle: five independent sequential
// requests, no batching, no caching between them. Datasets that fail
// stay nil in the snapshot and their diagnostics are collected for the
// UI; one endpoint failing never blocks the others.
func (c *Client) FetchSnapshot(ctx context.Context) *models.Snapshot {
	snap := &models.Snapshot{FetchedAt: time.Now()}

	if data, err := c.FetchData(ctx, EndpointSummary); err != nil {
		addDiagnostic(snap, EndpointSummary, err)
	} else {
		snap.Summary = models.SummaryFromJSON(data)
	}

	if data, err := c.FetchData(ctx, EndpointEndpoints); err != nil {
		addDiagnostic(snap, EndpointEndpoints, err)
	} else {
		snap.Endpoints = models.EndpointStatsFromJSON(data)
	}

	if data, err := c.FetchData(ctx, EndpointHourly); err != nil {
		addDiagnostic(snap, EndpointHourly, err)
	} else {
		snap.Hourly = models.HourlyFromJSON(data)
	}

	if data, err := c.FetchData(ctx, EndpointErrors); err != nil {
		addDiagnostic(snap, EndpointErrors, err)
	} else {
		snap.Errors = models.ErrorsFromJSON(data)
	}

	if data, err := c.FetchData(ctx, EndpointDaily); err != nil {
		addDiagnostic(snap, EndpointDaily, err)
	} else {
		snap.Daily = models.DailyFromJSON(data)
	}

	return snap
}

// addDiagnostic records a fetch failure for the UI. A down backend
// produces identical "cannot connect" errors for every endpoint; only
// the first is kept so one outage doesn't stack five toasts.
func addDiagnostic(snap *models.Snapshot, endpoint string, err error) {
	logger.Warn("fetch failed", "endpoint", endpoint, "error", err)

	var connErr *ConnError
	if errors.As(err, &connErr) {
		for _, msg := range snap.Diagnostics {
			if msg == connErr.Error() {
				return
			}
		}
	}
	snap.Diagnostics = append(snap.Diagnostics, err.Error())
}
