package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactID uniquely identifies an inbound contact request.
type ContactID uuid.UUID

func (id ContactID) String() string { return uuid.UUID(id).String() }

// LeadID uniquely identifies a sales lead.
type LeadID uuid.UUID

func (id LeadID) String() string { return uuid.UUID(id).String() }

// ClientID uniquely identifies a client.
type ClientID uuid.UUID

func (id ClientID) String() string { return uuid.UUID(id).String() }

// Source tells where a contact or lead came from.
type Source string

const (
	SourceWeb    Source = "WEB"
	SourcePhone  Source = "PHONE"
	SourceWalkIn Source = "WALK_IN"
	SourceOther  Source = "OTHER"
)

// Valid reports whether s is a known source.
func (s Source) Valid() bool {
	switch s {
	case SourceWeb, SourcePhone, SourceWalkIn, SourceOther:
		return true
	}

	return false
}

// LeadStatus is the position of a lead in the sales pipeline.
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "NEW"
	LeadStatusContacted   LeadStatus = "CONTACTED"
	LeadStatusNegotiating LeadStatus = "NEGOTIATING"
	LeadStatusWon         LeadStatus = "WON"
	LeadStatusLost        LeadStatus = "LOST"
)

// Valid reports whether s is a known lead status.
func (s LeadStatus) Valid() bool {
	_, ok := leadTransitions[s]

	return ok
}

//nolint: gochecknoglobals
var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadStatusNew:         {LeadStatusContacted, LeadStatusLost},
	LeadStatusContacted:   {LeadStatusNegotiating, LeadStatusLost},
	LeadStatusNegotiating: {LeadStatusWon, LeadStatusLost, LeadStatusContacted},
	LeadStatusWon:         {},
	LeadStatusLost:        {LeadStatusContacted},
}

// CanTransition reports whether a lead may move from one status to another.
// Staying in the same status is always allowed.
func CanTransition(from, to LeadStatus) bool {
	if from == to {
		return from.Valid()
	}
	for _, next := range leadTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// Contact is an inbound request from the website, a phone call or a visit.
// It can be converted into a Lead.
type Contact struct {
	ID        ContactID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Message   string     `json:"message"`
	VehicleID *VehicleID `json:"vehicleId,omitempty"`
	Source    Source     `json:"source"`
	Handled   bool       `json:"handled"`
	LeadID    *LeadID    `json:"leadId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Lead is a sales opportunity.
type Lead struct {
	ID         LeadID     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	VehicleID  *VehicleID `json:"vehicleId,omitempty"`
	Source     Source     `json:"source"`
	Status     LeadStatus `json:"status"`
	Notes      string     `json:"notes"`
	AssignedTo *UserID    `json:"assignedTo,omitempty"`
	ClientID   *ClientID  `json:"clientId,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Client is a customer who bought, or is buying, a vehicle.
type Client struct {
	ID         ClientID  `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	NationalID string    `json:"nationalId"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postalCode"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FullName joins first and last name.
func (c *Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}

	return c.FirstName + " " + c.LastName
}
