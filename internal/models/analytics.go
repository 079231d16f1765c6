// Package models defines the analytics payload types exchanged with the
// Cynchrony backend. Entities are transient: each refresh cycle decodes a
// fresh set and discards the previous one.
package models

import (
	"sort"
	"time"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

// Summary holds the named counters from /analytics/summary. The backend
// schema is a trusted contract; missing fields decode to zero.
type Summary struct {
	TotalAPICalls int64
	SuccessRate   float64
	TotalErrors   int64

	AIChatCalls       int64
	AIGenerationCalls int64

	PDFProcessing   int64
	ImageProcessing int64
	VideoProcessing int64
	AudioProcessing int64
	CodeExecutions  int64
	FileUploads     int64

	AuthenticationEvents int64
	PaymentEvents        int64
	AssessmentEvents     int64
	InterviewEvents      int64
	ResumeOperations     int64

	CategoryBreakdown map[string]int64
}

// EndpointStat is one entry from /analytics/endpoints, ranked by the
// backend with the busiest endpoints first.
type EndpointStat struct {
	Endpoint    string
	Count       int64
	SuccessRate float64
}

// HourlyBucket is one entry of the trailing 24-hour window.
type HourlyBucket struct {
	Hour         string
	Count        int64
	SuccessCount int64
	ErrorCount   int64
}

// DailyBucket is one entry of the trailing 30-day window.
type DailyBucket struct {
	Date            string
	SuccessfulCalls int64
	FailedCalls     int64
}

// ErrorRecord is one row of the recent-errors log.
type ErrorRecord struct {
	Endpoint   string
	Method     string
	StatusCode int64
	Error      string
	Timestamp  string
}

// Snapshot holds everything one fetch cycle produced. Datasets that
// could not be fetched are nil; Diagnostics carries each failure's
// user-visible message.
type Snapshot struct {
	Summary   *Summary
	Endpoints []EndpointStat
	Hourly    []HourlyBucket
	Daily     []DailyBucket
	Errors    []ErrorRecord

	FetchedAt   time.Time
	Diagnostics []string
}

func toInt64(v gjson.Result) int64 {
	return cast.ToInt64(v.Value())
}

func toFloat64(v gjson.Result) float64 {
	return cast.ToFloat64(v.Value())
}

// SummaryFromJSON decodes the summary payload. A non-object payload
// yields nil, which callers treat as "no data yet".
func SummaryFromJSON(data gjson.Result) *Summary {
	if !data.IsObject() {
		return nil
	}

	s := &Summary{
		TotalAPICalls:        toInt64(data.Get("total_api_calls")),
		SuccessRate:          toFloat64(data.Get("success_rate")),
		TotalErrors:          toInt64(data.Get("total_errors")),
		AIChatCalls:          toInt64(data.Get("ai_chat_calls")),
		AIGenerationCalls:    toInt64(data.Get("ai_generation_calls")),
		PDFProcessing:        toInt64(data.Get("pdf_processing")),
		ImageProcessing:      toInt64(data.Get("image_processing")),
		VideoProcessing:      toInt64(data.Get("video_processing")),
		AudioProcessing:      toInt64(data.Get("audio_processing")),
		CodeExecutions:       toInt64(data.Get("code_executions")),
		FileUploads:          toInt64(data.Get("file_uploads")),
		AuthenticationEvents: toInt64(data.Get("authentication_events")),
		PaymentEvents:        toInt64(data.Get("payment_events")),
		AssessmentEvents:     toInt64(data.Get("assessment_events")),
		InterviewEvents:      toInt64(data.Get("interview_events")),
		ResumeOperations:     toInt64(data.Get("resume_operations")),
		CategoryBreakdown:    map[string]int64{},
	}

	data.Get("category_breakdown").ForEach(func(key, value gjson.Result) bool {
		s.CategoryBreakdown[key.String()] = cast.ToInt64(value.Value())
		return true
	})

	return s
}

// EndpointStatsFromJSON decodes the endpoints payload, preserving the
// backend's relevance ranking.
func EndpointStatsFromJSON(data gjson.Result) []EndpointStat {
	if !data.IsArray() {
		return nil
	}

	var stats []EndpointStat
	data.ForEach(func(_, item gjson.Result) bool {
		stats = append(stats, EndpointStat{
			Endpoint:    item.Get("endpoint").String(),
			Count:       toInt64(item.Get("count")),
			SuccessRate: toFloat64(item.Get("success_rate")),
		})
		return true
	})
	return stats
}

// HourlyFromJSON decodes the hourly payload in backend order.
func HourlyFromJSON(data gjson.Result) []HourlyBucket {
	if !data.IsArray() {
		return nil
	}

	var buckets []HourlyBucket
	data.ForEach(func(_, item gjson.Result) bool {
		buckets = append(buckets, HourlyBucket{
			Hour:         item.Get("hour").String(),
			Count:        toInt64(item.Get("count")),
			SuccessCount: toInt64(item.Get("success_count")),
			ErrorCount:   toInt64(item.Get("error_count")),
		})
		return true
	})
	return buckets
}

// DailyFromJSON decodes the daily payload sorted ascending by date,
// ready for the stacked chart.
func DailyFromJSON(data gjson.Result) []DailyBucket {
	if !data.IsArray() {
		return nil
	}

	var buckets []DailyBucket
	data.ForEach(func(_, item gjson.Result) bool {
		buckets = append(buckets, DailyBucket{
			Date:            item.Get("date").String(),
			SuccessfulCalls: toInt64(item.Get("successful_calls")),
			FailedCalls:     toInt64(item.Get("failed_calls")),
		})
		return true
	})

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})
	return buckets
}

// ErrorsFromJSON decodes the recent-errors payload in backend order.
func ErrorsFromJSON(data gjson.Result) []ErrorRecord {
	if !data.IsArray() {
		return nil
	}

	var records []ErrorRecord
	data.ForEach(func(_, item gjson.Result) bool {
		records = append(records, ErrorRecord{
			Endpoint:   item.Get("endpoint").String(),
			Method:     item.Get("method").String(),
			StatusCode: toInt64(item.Get("status_code")),
			Error:      item.Get("error").String(),
			Timestamp:  item.Get("timestamp").String(),
		})
		return true
	})
	return records
}

// RecentErrors returns at most n records from the front of the list.
func (s *Snapshot) RecentErrors(n int) []ErrorRecord {
	if len(s.Errors) <= n {
		return s.Errors
	}
	return s.Errors[:n]
}

// TopEndpoints returns at most n endpoint stats from the front of the
// ranked list.
func (s *Snapshot) TopEndpoints(n int) []EndpointStat {
	if len(s.Endpoints) <= n {
		return s.Endpoints
	}
	return s.Endpoints[:n]
}
