package domain

import (
	"context"
	"time"
)

// NotificationService defines the interface for notification services
type NotificationService interface {
	// SendSuccess sends a success notification with the warm report
	SendSuccess(ctx context.Context, report WarmReport) error

	// SendError sends an error notification with error details
	SendError(ctx context.Context, err error) error
}

// WarmReport summarizes one resolution of the home aggregate
type WarmReport struct {
	CacheKey  string
	Sections  map[string]int
	Genres    int
	Elapsed   time.Duration
	Timestamp time.Time
}

// Total returns the number of entries across all sections
func (r WarmReport) Total() int {
	total := 0
	for _, n := range r.Sections {
		total += n
	}
	return total
}
