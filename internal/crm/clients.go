package crm

import (
	"context"
	"errors"
	"fmt"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"
	"strings"
)

func clientNotFound(id domain.ClientID) error {
	return serrors.With(serrors.ErrNotFound, "client %s not found", id)
}

func (in ClientInput) apply(c *domain.Client) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&c.FirstName, in.FirstName)
	set(&c.LastName, in.LastName)
	set(&c.Phone, in.Phone)
	set(&c.Address, in.Address)
	set(&c.City, in.City)
	set(&c.PostalCode, in.PostalCode)
	set(&c.Notes, in.Notes)
	if in.NationalID != nil {
		c.NationalID = domain.NormalizeNationalID(*in.NationalID)
	}
	if in.Email != nil {
		c.Email = domain.NormalizeEmail(*in.Email)
	}
}

func (s *crm) checkClient(c *domain.Client) error {
	if c.FirstName == "" {
		return serrors.With(serrors.ErrBadRequest, "first name is required")
	}

	return s.checkEmail(c.Email)
}

func clientWriteErr(err error, action string) error {
	if errors.Is(err, storage.ErrDuplicate) {
		return serrors.Wrap(serrors.ErrConflict, err, "another client has the same national id")
	}

	return fmt.Errorf("could not %s client: %w", action, err)
}

func (s *crm) createClient(ctx context.Context, st storage.ClientStorage, in ClientInput) (*domain.Client, error) {
	var c domain.Client
	in.apply(&c)
	if err := s.checkClient(&c); err != nil {
		return nil, err
	}

	stored, err := st.StoreClient(ctx, c)
	if err != nil {
		return nil, clientWriteErr(err, "store")
	}

	return stored, nil
}

func loadClient(ctx context.Context, st storage.ClientStorage, id domain.ClientID) (*domain.Client, error) {
	c, err := st.ClientByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get client: %w", err)
	}
	if c == nil {
		return nil, clientNotFound(id)
	}

	return c, nil
}

func (s *crm) CreateClient(ctx context.Context, in ClientInput) (*domain.Client, error) {
	return s.createClient(ctx, s.storage, in)
}

func (s *crm) UpdateClient(ctx context.Context, id domain.ClientID, in ClientInput) (*domain.Client, error) {
	c, err := loadClient(ctx, s.storage, id)
	if err != nil {
		return nil, err
	}
	in.apply(c)
	if err := s.checkClient(c); err != nil {
		return nil, err
	}

	updated, err := s.storage.UpdateClient(ctx, *c)
	if err != nil {
		return nil, clientWriteErr(err, "update")
	}
	if updated == nil {
		return nil, clientNotFound(id)
	}

	return updated, nil
}

func (s *crm) GetClient(ctx context.Context, id domain.ClientID) (*domain.Client, error) {
	return loadClient(ctx, s.storage, id)
}

func (s *crm) ListClients(ctx context.Context,
	filter storage.ClientFilter) (storage.List[domain.Client], error) {
	list, err := s.storage.Clients(ctx, filter)
	if err != nil {
		return storage.List[domain.Client]{}, fmt.Errorf("could not list clients: %w", err)
	}

	return list, nil
}

// DeleteClient removes a client. Leads and policies keep their data but lose
// the link.
func (s *crm) DeleteClient(ctx context.Context, id domain.ClientID) error {
	ok, err := s.storage.DeleteClient(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete client: %w", err)
	}
	if !ok {
		return clientNotFound(id)
	}

	return nil
}
