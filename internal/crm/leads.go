package crm

import (
	"context"
	"fmt"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"
	"strings"

	"go.uber.org/zap"
)

func leadNotFound(id domain.LeadID) error {
	return serrors.With(serrors.ErrNotFound, "lead %s not found", id)
}

func (in LeadInput) apply(l *domain.Lead) {
	if in.Name != nil {
		l.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		l.Email = domain.NormalizeEmail(*in.Email)
	}
	if in.Phone != nil {
		l.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Source != nil {
		l.Source = *in.Source
	}
	if in.Notes != nil {
		l.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.AssignedTo != nil {
		l.AssignedTo = in.AssignedTo
		if in.AssignedTo.IsZero() {
			l.AssignedTo = nil
		}
	}
	switch {
	case in.ClearVehicle:
		l.VehicleID = nil
	case in.VehicleID != nil:
		l.VehicleID = in.VehicleID
	}
}

func (s *crm) checkLead(ctx context.Context, l *domain.Lead) error {
	switch {
	case l.Name == "":
		return serrors.With(serrors.ErrBadRequest, "name is required")
	case !l.Source.Valid():
		return serrors.With(serrors.ErrBadRequest, "invalid source %q", l.Source)
	}
	if err := s.checkEmail(l.Email); err != nil {
		return err
	}

	return checkVehicle(ctx, s.storage, l.VehicleID)
}

func (s *crm) CreateLead(ctx context.Context, in LeadInput) (*domain.Lead, error) {
	l := domain.Lead{Source: domain.SourceOther, Status: domain.LeadStatusNew}
	in.apply(&l)
	if err := s.checkLead(ctx, &l); err != nil {
		return nil, err
	}

	stored, err := s.storage.StoreLead(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("could not store lead: %w", err)
	}
	s.invalidator.Invalidate()

	return stored, nil
}

func loadLead(ctx context.Context, st storage.LeadStorage, id domain.LeadID) (*domain.Lead, error) {
	l, err := st.LeadByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get lead: %w", err)
	}
	if l == nil {
		return nil, leadNotFound(id)
	}

	return l, nil
}

func (s *crm) UpdateLead(ctx context.Context, id domain.LeadID, in LeadInput) (*domain.Lead, error) {
	l, err := loadLead(ctx, s.storage, id)
	if err != nil {
		return nil, err
	}
	in.apply(l)
	if err := s.checkLead(ctx, l); err != nil {
		return nil, err
	}

	updated, err := s.storage.UpdateLead(ctx, *l)
	if err != nil {
		return nil, fmt.Errorf("could not update lead: %w", err)
	}
	if updated == nil {
		return nil, leadNotFound(id)
	}

	return updated, nil
}

func (s *crm) GetLead(ctx context.Context, id domain.LeadID) (*domain.Lead, error) {
	return loadLead(ctx, s.storage, id)
}

func (s *crm) ListLeads(ctx context.Context, filter storage.LeadFilter) (storage.List[domain.Lead], error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return storage.List[domain.Lead]{}, serrors.With(serrors.ErrBadRequest, "invalid status %q", filter.Status)
	}
	if filter.Source != "" && !filter.Source.Valid() {
		return storage.List[domain.Lead]{}, serrors.With(serrors.ErrBadRequest, "invalid source %q", filter.Source)
	}

	list, err := s.storage.Leads(ctx, filter)
	if err != nil {
		return storage.List[domain.Lead]{}, fmt.Errorf("could not list leads: %w", err)
	}

	return list, nil
}

// ChangeLeadStatus moves a lead along the pipeline. WON is only reachable
// through WinLead because it needs a client.
func (s *crm) ChangeLeadStatus(ctx context.Context,
	id domain.LeadID,
	status domain.LeadStatus) (*domain.Lead, error) {
	if !status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid status %q", status)
	}
	if status == domain.LeadStatusWon {
		return nil, serrors.With(serrors.ErrBadRequest, "use the win operation to close a lead as won")
	}

	l, err := loadLead(ctx, s.storage, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(l.Status, status) {
		return nil, serrors.With(serrors.ErrBadRequest, "lead cannot move from %s to %s", l.Status, status)
	}
	if l.Status == status {
		return l, nil
	}

	from := l.Status
	l.Status = status
	updated, err := s.storage.UpdateLead(ctx, *l)
	if err != nil {
		return nil, fmt.Errorf("could not update lead: %w", err)
	}
	if updated == nil {
		return nil, leadNotFound(id)
	}
	s.invalidator.Invalidate()
	logger.Info(ctx, "lead status changed",
		zap.Stringer("leadID", id),
		zap.String("from", string(from)),
		zap.String("to", string(status)))

	return updated, nil
}

func (s *crm) DeleteLead(ctx context.Context, id domain.LeadID) error {
	ok, err := s.storage.DeleteLead(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete lead: %w", err)
	}
	if !ok {
		return leadNotFound(id)
	}
	s.invalidator.Invalidate()

	return nil
}

// WinLead closes a lead in negotiation as won. In one transaction it resolves
// or creates the buyer, links it to the lead and marks the linked vehicle SOLD.
func (s *crm) WinLead(ctx context.Context, id domain.LeadID, in WinInput) (*domain.Lead, *domain.Client, error) {
	if (in.ClientID == nil) == (in.Client == nil) {
		return nil, nil, serrors.With(serrors.ErrBadRequest, "exactly one of client id or client data is required")
	}

	var (
		lead   *domain.Lead
		client *domain.Client
	)
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		l, err := loadLead(ctx, tx, id)
		if err != nil {
			return err
		}
		switch {
		case l.Status == domain.LeadStatusWon || l.Status == domain.LeadStatusLost:
			return serrors.With(serrors.ErrConflict, "lead %s is already closed as %s", id, l.Status)
		case !domain.CanTransition(l.Status, domain.LeadStatusWon):
			return serrors.With(serrors.ErrBadRequest, "lead cannot move from %s to %s", l.Status, domain.LeadStatusWon)
		}

		if in.ClientID != nil {
			client, err = loadClient(ctx, tx, *in.ClientID)
		} else {
			client, err = s.createClient(ctx, tx, *in.Client)
		}
		if err != nil {
			return err
		}

		if l.VehicleID != nil {
			if err := s.sell(ctx, tx, *l.VehicleID); err != nil {
				return err
			}
		}

		l.Status = domain.LeadStatusWon
		l.ClientID = &client.ID
		lead, err = tx.UpdateLead(ctx, *l)
		if err != nil {
			return fmt.Errorf("could not update lead: %w", err)
		}
		if lead == nil {
			return leadNotFound(id)
		}

		return nil
	}); err != nil {
		return nil, nil, err //nolint: wrapcheck
	}

	s.invalidator.Invalidate()
	logger.Info(ctx, "lead won", zap.Stringer("leadID", id), zap.Stringer("clientID", client.ID))

	return lead, client, nil
}

func (s *crm) sell(ctx context.Context, tx storage.AllStorage, id domain.VehicleID) error {
	v, err := tx.VehicleByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get vehicle: %w", err)
	}
	if v == nil {
		return serrors.With(serrors.ErrConflict, "vehicle %s of the lead no longer exists", id)
	}
	if v.Status == domain.VehicleStatusSold {
		return serrors.With(serrors.ErrConflict, "vehicle %s is already sold", id)
	}

	v.Status = domain.VehicleStatusSold
	v.SoldAt = s.now()
	if _, err := tx.UpdateVehicle(ctx, *v); err != nil {
		return fmt.Errorf("could not mark vehicle sold: %w", err)
	}

	return nil
}
