// Package crm manages inbound contacts, the lead pipeline and clients.
package crm

import (
	"context"
	"midcar/pkg/domain"
	"midcar/pkg/storage"
)

// ContactInput is a contact request as submitted by the website or staff.
type ContactInput struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	VehicleID *domain.VehicleID
	// Source defaults to WEB.
	Source domain.Source
}

// LeadInput carries the editable fields of a lead. Nil fields are left
// untouched on update.
type LeadInput struct {
	Name       *string
	Email      *string
	Phone      *string
	VehicleID  *domain.VehicleID
	Source     *domain.Source
	Notes      *string
	AssignedTo *domain.UserID
	// ClearVehicle unlinks the vehicle; it wins over VehicleID.
	ClearVehicle bool
}

// ClientInput carries the editable fields of a client. Nil fields are left
// untouched on update.
type ClientInput struct {
	FirstName  *string
	LastName   *string
	NationalID *string
	Email      *string
	Phone      *string
	Address    *string
	City       *string
	PostalCode *string
	Notes      *string
}

// WinInput names the buyer of a won lead: either an existing client or the
// data of a new one.
type WinInput struct {
	ClientID *domain.ClientID
	Client   *ClientInput
}

// Invalidator is notified whenever CRM data changes.
type Invalidator interface {
	Invalidate()
}

//go:generate mockgen -package mockcrm -source=interface.go -destination=mock/mockcrm.go *
type CRM interface {
	SubmitContact(ctx context.Context, in ContactInput) (*domain.Contact, error)
	ListContacts(ctx context.Context, filter storage.ContactFilter) (storage.List[domain.Contact], error)
	MarkHandled(ctx context.Context, ID domain.ContactID, handled bool) (*domain.Contact, error)
	ConvertContact(ctx context.Context, ID domain.ContactID, assignedTo *domain.UserID) (*domain.Lead, error)

	CreateLead(ctx context.Context, in LeadInput) (*domain.Lead, error)
	UpdateLead(ctx context.Context, ID domain.LeadID, in LeadInput) (*domain.Lead, error)
	GetLead(ctx context.Context, ID domain.LeadID) (*domain.Lead, error)
	ListLeads(ctx context.Context, filter storage.LeadFilter) (storage.List[domain.Lead], error)
	ChangeLeadStatus(ctx context.Context, ID domain.LeadID, status domain.LeadStatus) (*domain.Lead, error)
	DeleteLead(ctx context.Context, ID domain.LeadID) error
	WinLead(ctx context.Context, ID domain.LeadID, in WinInput) (*domain.Lead, *domain.Client, error)

	CreateClient(ctx context.Context, in ClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, ID domain.ClientID, in ClientInput) (*domain.Client, error)
	GetClient(ctx context.Context, ID domain.ClientID) (*domain.Client, error)
	ListClients(ctx context.Context, filter storage.ClientFilter) (storage.List[domain.Client], error)
	DeleteClient(ctx context.Context, ID domain.ClientID) error
}
