package storage

import (
	"context"
	"midcar/pkg/domain"
	"time"
)

// PolicyFilter narrows an insurance policy list.
type PolicyFilter struct {
	Insurer   string
	VehicleID *domain.VehicleID
	ClientID  *domain.ClientID
	// EndsFrom and EndsBefore bound the policy end date: EndsFrom <= end < EndsBefore.
	EndsFrom   time.Time
	EndsBefore time.Time
	// Search matches policy number, holder name and plate.
	Search string

	Page
}

// PolicyStorage defines persistence of insurance policies.
type PolicyStorage interface {
	// StorePolicy inserts a policy. A duplicate (insurer, policy number) yields ErrDuplicate.
	StorePolicy(ctx context.Context, policy domain.InsurancePolicy) (*domain.InsurancePolicy, error)
	UpdatePolicy(ctx context.Context, policy domain.InsurancePolicy) (*domain.InsurancePolicy, error)
	PolicyByID(ctx context.Context, ID domain.PolicyID) (*domain.InsurancePolicy, error)
	// PolicyByNumber looks a policy up by its natural key; insurer is compared case-insensitively.
	PolicyByNumber(ctx context.Context, insurer, number string) (*domain.InsurancePolicy, error)
	// Policies returns a page of policies ordered by end date ascending.
	Policies(ctx context.Context, filter PolicyFilter) (List[domain.InsurancePolicy], error)
	DeletePolicy(ctx context.Context, ID domain.PolicyID) (bool, error)
}
