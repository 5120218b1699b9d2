package store

import (
	"context"
	"time"
)

// Report is a rendered reconciliation workbook held for download.
type Report struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	Data      []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ReportStore caches report workbooks between a reconcile request and its
// download. Entries expire; nothing is meant to outlive the process.
type ReportStore interface {
	SaveReport(ctx context.Context, fileName string, data []byte, ttl time.Duration) (*Report, error)
	// GetReport returns nil, nil when id is unknown or expired.
	GetReport(ctx context.Context, id string) (*Report, error)
	DeleteExpiredReports(ctx context.Context) (int, error)

	Migrate(ctx context.Context) error
	Close() error
}
