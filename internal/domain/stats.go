package domain

import "context"

// Stats aggregates one user's current row set. Counts use substring matching
// against the status and resume columns, mirroring the tracker form's
// tolerant matching; rates are pre-formatted for display.
type Stats struct {
	Total           int    `json:"total"`
	Interviews      int    `json:"interviews"`
	Offers          int    `json:"offers"`
	Rejections      int    `json:"rejections"`
	ResumeOptimized int    `json:"resume_optimized"`
	InterviewRate   string `json:"interview_rate"`
	OfferRate       string `json:"offer_rate"`
}

// DateCount is one point of the applications-over-time chart.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StatusCount is one bar of the applications-by-status chart.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StatsUsecase exposes the read-side projections the chart views render.
// Everything is recomputed from the current snapshot on each call.
type StatsUsecase interface {
	Summary(ctx context.Context, username string) (*Stats, error)
	Timeline(ctx context.Context, username string) ([]DateCount, error)
	StatusCounts(ctx context.Context, username string) ([]StatusCount, error)
}
