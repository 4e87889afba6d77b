package insurance

import (
	"context"
	"errors"
	"fmt"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"
	"strings"
	"time"
)

const (
	// maxExpiringDays bounds the window of ExpiringPolicies.
	maxExpiringDays = 366
	pageSize        = 200
)

type insurance struct {
	storage storage.Storage
	now     func() time.Time
}

// New creates an Insurance service. now defaults to time.Now.
func New(storage storage.Storage, now func() time.Time) Insurance {
	if now == nil {
		now = time.Now
	}

	return &insurance{storage: storage, now: now}
}

func notFound(id domain.PolicyID) error {
	return serrors.With(serrors.ErrNotFound, "policy %s not found", id)
}

func (in PolicyInput) apply(p *domain.InsurancePolicy) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&p.PolicyNumber, in.PolicyNumber)
	set(&p.Insurer, in.Insurer)
	set(&p.HolderName, in.HolderName)
	set(&p.Coverage, in.Coverage)
	if in.HolderNationalID != nil {
		p.HolderNationalID = domain.NormalizeNationalID(*in.HolderNationalID)
	}
	if in.LicensePlate != nil {
		p.LicensePlate = domain.NormalizePlate(*in.LicensePlate)
	}
	if in.VehicleID != nil {
		p.VehicleID = in.VehicleID
	}
	if in.ClientID != nil {
		p.ClientID = in.ClientID
	}
	if in.Premium != nil {
		p.Premium = *in.Premium
	}
	if in.StartDate != nil {
		p.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		p.EndDate = *in.EndDate
	}
}

func validate(p *domain.InsurancePolicy) error {
	switch {
	case p.PolicyNumber == "":
		return serrors.With(serrors.ErrBadRequest, "policy number is required")
	case p.Insurer == "":
		return serrors.With(serrors.ErrBadRequest, "insurer is required")
	case p.LicensePlate == "" && p.HolderName == "":
		return serrors.With(serrors.ErrBadRequest, "a plate or a holder name is required")
	case p.Premium < 0:
		return serrors.With(serrors.ErrBadRequest, "premium cannot be negative")
	case !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate):
		return serrors.With(serrors.ErrBadRequest, "end date is before start date")
	}

	return nil
}

func writeErr(err error, action string) error {
	if errors.Is(err, storage.ErrDuplicate) {
		return serrors.Wrap(serrors.ErrConflict, err, "the insurer already has a policy with that number")
	}

	return fmt.Errorf("could not %s policy: %w", action, err)
}

func (s *insurance) Create(ctx context.Context, in PolicyInput) (*domain.InsurancePolicy, error) {
	var p domain.InsurancePolicy
	in.apply(&p)
	if err := validate(&p); err != nil {
		return nil, err
	}

	stored, err := s.storage.StorePolicy(ctx, p)
	if err != nil {
		return nil, writeErr(err, "store")
	}

	return stored, nil
}

func (s *insurance) Update(ctx context.Context, id domain.PolicyID, in PolicyInput) (*domain.InsurancePolicy, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(p)
	if err := validate(p); err != nil {
		return nil, err
	}

	updated, err := s.storage.UpdatePolicy(ctx, *p)
	if err != nil {
		return nil, writeErr(err, "update")
	}
	if updated == nil {
		return nil, notFound(id)
	}

	return updated, nil
}

func (s *insurance) Get(ctx context.Context, id domain.PolicyID) (*domain.InsurancePolicy, error) {
	p, err := s.storage.PolicyByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get policy: %w", err)
	}
	if p == nil {
		return nil, notFound(id)
	}

	return p, nil
}

func (s *insurance) List(ctx context.Context,
	filter storage.PolicyFilter) (storage.List[domain.InsurancePolicy], error) {
	list, err := s.storage.Policies(ctx, filter)
	if err != nil {
		return storage.List[domain.InsurancePolicy]{}, fmt.Errorf("could not list policies: %w", err)
	}

	return list, nil
}

func (s *insurance) Delete(ctx context.Context, id domain.PolicyID) error {
	ok, err := s.storage.DeletePolicy(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete policy: %w", err)
	}
	if !ok {
		return notFound(id)
	}

	return nil
}

// ExpiringPolicies returns every policy whose end date falls in
// [today, today+days], soonest first.
func (s *insurance) ExpiringPolicies(ctx context.Context, days int) ([]domain.InsurancePolicy, error) {
	if days <= 0 || days > maxExpiringDays {
		return nil, serrors.With(serrors.ErrBadRequest, "days must be between 1 and %d", maxExpiringDays)
	}

	from, before := domain.ExpiryWindow(s.now(), days)
	filter := storage.PolicyFilter{
		EndsFrom:   from,
		EndsBefore: before,
		Page:       storage.Page{Limit: pageSize},
	}

	var out []domain.InsurancePolicy
	for {
		list, err := s.storage.Policies(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("could not list expiring policies: %w", err)
		}
		out = append(out, list.Items...)
		if len(list.Items) < pageSize || int64(len(out)) >= list.Total {
			return out, nil
		}
		filter.Offset += pageSize
	}
}
