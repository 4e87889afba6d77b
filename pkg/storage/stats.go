package storage

import (
	"context"
	"midcar/pkg/domain"
	"time"
)

// StatsStorage exposes the aggregate queries behind the dashboard.
// Soft-deleted vehicles are excluded everywhere.
//
//go:generate mockgen -package mockstorage -source=stats.go -destination=mock/mockstats.go *
type StatsStorage interface {
	VehicleCountsByStatus(ctx context.Context) (map[domain.VehicleStatus]int64, error)
	// StockValue sums the sale price of available and reserved vehicles.
	StockValue(ctx context.Context) (domain.Money, error)
	// AverageDaysInStock averages (now - created_at) in days over available vehicles.
	AverageDaysInStock(ctx context.Context, now time.Time) (float64, error)
	VehiclesSoldSince(ctx context.Context, since time.Time) (int64, error)
	LeadCountsByStatus(ctx context.Context) (map[domain.LeadStatus]int64, error)
	LeadsCreatedSince(ctx context.Context, since time.Time) (int64, error)
	UnhandledContactCount(ctx context.Context) (int64, error)
	// PoliciesEndingBetween counts policies with from <= end_date < to.
	PoliciesEndingBetween(ctx context.Context, from, to time.Time) (int64, error)
	// RecentSales returns the last sold vehicles, most recent first.
	RecentSales(ctx context.Context, limit uint) ([]domain.Vehicle, error)
}
