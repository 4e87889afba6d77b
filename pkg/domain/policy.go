package domain

import (
	"time"

	"github.com/google/uuid"
)

// PolicyID uniquely identifies an insurance policy.
type PolicyID uuid.UUID

func (id PolicyID) String() string { return uuid.UUID(id).String() }

// InsurancePolicy (póliza de seguro) is a car insurance policy sold or
// managed by the dealership. A policy is unique per insurer and policy number.
type InsurancePolicy struct {
	ID               PolicyID   `json:"id"`
	PolicyNumber     string     `json:"policyNumber"`
	Insurer          string     `json:"insurer"`
	HolderName       string     `json:"holderName"`
	HolderNationalID string     `json:"holderNationalId"`
	LicensePlate     string     `json:"licensePlate"`
	VehicleID        *VehicleID `json:"vehicleId,omitempty"`
	ClientID         *ClientID  `json:"clientId,omitempty"`
	Coverage         string     `json:"coverage"`
	Premium          Money      `json:"premium"`
	StartDate        time.Time  `json:"startDate"`
	EndDate          time.Time  `json:"endDate"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// ExpiryWindow returns the end dates [from, before) of the policies expiring
// within days of now: today up to and including the day days ahead. Dates are
// calendar days in UTC.
func ExpiryWindow(now time.Time, days int) (from, before time.Time) {
	y, m, d := now.Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return from, from.AddDate(0, 0, days+1)
}
