package crm

import (
	"context"
	"fmt"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type noopInvalidator struct{}

func (noopInvalidator) Invalidate() {}

type crm struct {
	storage     storage.Storage
	invalidator Invalidator
	validate    *validator.Validate
	now         func() time.Time
}

// New creates a CRM. invalidator may be nil; now defaults to time.Now.
func New(storage storage.Storage, invalidator Invalidator, now func() time.Time) CRM {
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}
	if now == nil {
		now = time.Now
	}

	return &crm{
		storage:     storage,
		invalidator: invalidator,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		now:         now,
	}
}

// checkEmail accepts an empty address.
func (s *crm) checkEmail(email string) error {
	if email == "" {
		return nil
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return serrors.With(serrors.ErrBadRequest, "invalid email %q", email)
	}

	return nil
}

// checkVehicle verifies that a linked vehicle exists.
func checkVehicle(ctx context.Context, st storage.VehicleStorage, id *domain.VehicleID) error {
	if id == nil {
		return nil
	}
	v, err := st.VehicleByID(ctx, *id)
	if err != nil {
		return fmt.Errorf("could not get vehicle: %w", err)
	}
	if v == nil {
		return serrors.With(serrors.ErrBadRequest, "vehicle %s does not exist", id)
	}

	return nil
}

// SubmitContact stores an inbound request. Either an email or a phone is required.
func (s *crm) SubmitContact(ctx context.Context, in ContactInput) (*domain.Contact, error) {
	c := domain.Contact{
		Name:      strings.TrimSpace(in.Name),
		Email:     domain.NormalizeEmail(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Message:   strings.TrimSpace(in.Message),
		VehicleID: in.VehicleID,
		Source:    in.Source,
	}
	if c.Source == "" {
		c.Source = domain.SourceWeb
	}

	switch {
	case c.Name == "":
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	case c.Email == "" && c.Phone == "":
		return nil, serrors.With(serrors.ErrBadRequest, "an email or a phone is required")
	case !c.Source.Valid():
		return nil, serrors.With(serrors.ErrBadRequest, "invalid source %q", c.Source)
	}
	if err := s.checkEmail(c.Email); err != nil {
		return nil, err
	}
	if err := checkVehicle(ctx, s.storage, c.VehicleID); err != nil {
		return nil, err
	}

	stored, err := s.storage.StoreContact(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("could not store contact: %w", err)
	}
	s.invalidator.Invalidate()
	logger.Info(ctx, "contact received", zap.Stringer("contactID", stored.ID), zap.String("source", string(stored.Source)))

	return stored, nil
}

func (s *crm) ListContacts(ctx context.Context,
	filter storage.ContactFilter) (storage.List[domain.Contact], error) {
	list, err := s.storage.Contacts(ctx, filter)
	if err != nil {
		return storage.List[domain.Contact]{}, fmt.Errorf("could not list contacts: %w", err)
	}

	return list, nil
}

func loadContact(ctx context.Context, st storage.ContactStorage, id domain.ContactID) (*domain.Contact, error) {
	c, err := st.ContactByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get contact: %w", err)
	}
	if c == nil {
		return nil, serrors.With(serrors.ErrNotFound, "contact %s not found", id)
	}

	return c, nil
}

func (s *crm) MarkHandled(ctx context.Context, id domain.ContactID, handled bool) (*domain.Contact, error) {
	c, err := loadContact(ctx, s.storage, id)
	if err != nil {
		return nil, err
	}
	if c.Handled == handled {
		return c, nil
	}
	if !handled && c.LeadID != nil {
		return nil, serrors.With(serrors.ErrConflict, "contact %s was converted into a lead", id)
	}

	c.Handled = handled
	updated, err := s.storage.UpdateContact(ctx, *c)
	if err != nil {
		return nil, fmt.Errorf("could not update contact: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "contact %s not found", id)
	}
	s.invalidator.Invalidate()

	return updated, nil
}

// ConvertContact turns a contact into a NEW lead carrying its data, and marks
// the contact handled. A contact converts at most once.
func (s *crm) ConvertContact(ctx context.Context,
	id domain.ContactID,
	assignedTo *domain.UserID) (*domain.Lead, error) {
	var lead *domain.Lead
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		c, err := loadContact(ctx, tx, id)
		if err != nil {
			return err
		}
		if c.LeadID != nil {
			return serrors.With(serrors.ErrConflict, "contact %s already converted into lead %s", id, c.LeadID)
		}

		lead, err = tx.StoreLead(ctx, domain.Lead{
			Name:       c.Name,
			Email:      c.Email,
			Phone:      c.Phone,
			VehicleID:  c.VehicleID,
			Source:     c.Source,
			Status:     domain.LeadStatusNew,
			Notes:      c.Message,
			AssignedTo: assignedTo,
		})
		if err != nil {
			return fmt.Errorf("could not store lead: %w", err)
		}

		c.Handled = true
		c.LeadID = &lead.ID
		if _, err := tx.UpdateContact(ctx, *c); err != nil {
			return fmt.Errorf("could not update contact: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	s.invalidator.Invalidate()
	logger.Info(ctx, "contact converted", zap.Stringer("contactID", id), zap.Stringer("leadID", lead.ID))

	return lead, nil
}
