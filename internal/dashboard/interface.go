// Package dashboard computes the back office summary figures.
package dashboard

import (
	"context"
	"midcar/pkg/domain"
	"time"
)

// Summary holds the dashboard figures. It is shared between callers and must
// be treated as read-only.
type Summary struct {
	VehiclesByStatus map[domain.VehicleStatus]int64 `json:"vehiclesByStatus"`
	// StockValue sums the price of available and reserved vehicles.
	StockValue     domain.Money `json:"stockValue"`
	AvgDaysInStock float64      `json:"avgDaysInStock"`
	SoldThisMonth  int64        `json:"soldThisMonth"`

	LeadsByStatus     map[domain.LeadStatus]int64 `json:"leadsByStatus"`
	NewLeadsThisMonth int64                       `json:"newLeadsThisMonth"`
	// ConversionRate is WON / (WON + LOST), 0 when no lead is closed.
	ConversionRate    float64 `json:"conversionRate"`
	UnhandledContacts int64   `json:"unhandledContacts"`

	// ExpiringPolicies counts policies ending within the next 30 days.
	ExpiringPolicies int64            `json:"expiringPolicies"`
	RecentSales      []domain.Vehicle `json:"recentSales"`

	GeneratedAt time.Time `json:"generatedAt"`
}

//go:generate mockgen -package mockdashboard -source=interface.go -destination=mock/mockdashboard.go *
type Dashboard interface {
	Summary(ctx context.Context) (*Summary, error)
	// Invalidate drops the memoized summary.
	Invalidate()
}
