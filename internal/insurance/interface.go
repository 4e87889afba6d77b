// Package insurance manages the insurance policies handled by the dealership
// and imports them from insurer spreadsheets.
package insurance

import (
	"context"
	"io"
	"midcar/pkg/domain"
	"midcar/pkg/storage"
	"time"
)

// PolicyInput carries the editable fields of a policy. Nil fields are left
// untouched on update.
type PolicyInput struct {
	PolicyNumber     *string
	Insurer          *string
	HolderName       *string
	HolderNationalID *string
	LicensePlate     *string
	VehicleID        *domain.VehicleID
	ClientID         *domain.ClientID
	Coverage         *string
	Premium          *domain.Money
	StartDate        *time.Time
	EndDate          *time.Time
}

// SkippedRow is a spreadsheet row that was not imported.
type SkippedRow struct {
	// Line is the 1-based row number in the sheet.
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportReport summarizes a spreadsheet import.
type ImportReport struct {
	// Total counts the non-blank data rows.
	Total    int `json:"total"`
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
	// Skipped lists rows left out, in sheet order.
	Skipped []SkippedRow `json:"skipped"`
	// MatchedVehicles counts policies linked to an inventory vehicle by plate.
	MatchedVehicles int `json:"matchedVehicles"`
}

//go:generate mockgen -package mockinsurance -source=interface.go -destination=mock/mockinsurance.go *
type Insurance interface {
	Create(ctx context.Context, in PolicyInput) (*domain.InsurancePolicy, error)
	Update(ctx context.Context, ID domain.PolicyID, in PolicyInput) (*domain.InsurancePolicy, error)
	Get(ctx context.Context, ID domain.PolicyID) (*domain.InsurancePolicy, error)
	List(ctx context.Context, filter storage.PolicyFilter) (storage.List[domain.InsurancePolicy], error)
	Delete(ctx context.Context, ID domain.PolicyID) error
	// ExpiringPolicies returns the policies ending between today and today plus days.
	ExpiringPolicies(ctx context.Context, days int) ([]domain.InsurancePolicy, error)
	// Import parses the spreadsheet name/r and upserts its policies. Rows without
	// an insurer column value take defaultInsurer.
	Import(ctx context.Context, name string, r io.Reader, defaultInsurer string) (*ImportReport, error)
}
