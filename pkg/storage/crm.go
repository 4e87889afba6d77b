package storage

import (
	"context"
	"midcar/pkg/domain"
)

// ContactFilter narrows a contact list.
type ContactFilter struct {
	// Handled, when set, keeps only handled (true) or pending (false) contacts.
	Handled *bool
	Search  string

	Page
}

// LeadFilter narrows a lead list.
type LeadFilter struct {
	Status     domain.LeadStatus
	Source     domain.Source
	AssignedTo *domain.UserID
	VehicleID  *domain.VehicleID
	Search     string

	Page
}

// ClientFilter narrows a client list. Search matches names, national id,
// email and phone.
type ClientFilter struct {
	Search string

	Page
}

// ContactStorage defines persistence of inbound contact requests.
type ContactStorage interface {
	StoreContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error)
	// UpdateContact overwrites handled flag and lead link; returns nil when not found.
	UpdateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error)
	ContactByID(ctx context.Context, ID domain.ContactID) (*domain.Contact, error)
	// Contacts returns a page of contacts, newest first.
	Contacts(ctx context.Context, filter ContactFilter) (List[domain.Contact], error)
}

// LeadStorage defines persistence of sales leads.
type LeadStorage interface {
	StoreLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error)
	// UpdateLead overwrites all editable columns; returns nil when not found.
	UpdateLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error)
	LeadByID(ctx context.Context, ID domain.LeadID) (*domain.Lead, error)
	// Leads returns a page of leads, most recently updated first.
	Leads(ctx context.Context, filter LeadFilter) (List[domain.Lead], error)
	// DeleteLead removes a lead and reports whether it existed.
	DeleteLead(ctx context.Context, ID domain.LeadID) (bool, error)
}

// ClientStorage defines persistence of clients.
type ClientStorage interface {
	// StoreClient inserts a client. A duplicate national id yields ErrDuplicate.
	StoreClient(ctx context.Context, client domain.Client) (*domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error)
	ClientByID(ctx context.Context, ID domain.ClientID) (*domain.Client, error)
	// Clients returns a page of clients ordered by last and first name.
	Clients(ctx context.Context, filter ClientFilter) (List[domain.Client], error)
	DeleteClient(ctx context.Context, ID domain.ClientID) (bool, error)
}
