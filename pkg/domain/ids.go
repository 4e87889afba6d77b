package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// IDs are encoded as canonical uuid strings in JSON and query parameters.

func parseID(kind string, text []byte) (uuid.UUID, error) {
	id, err := uuid.ParseBytes(text)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", kind, err)
	}

	return id, nil
}

func (id VehicleID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *VehicleID) UnmarshalText(text []byte) error {
	u, err := parseID("vehicle id", text)
	*id = VehicleID(u)

	return err
}

func (id PhotoID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PhotoID) UnmarshalText(text []byte) error {
	u, err := parseID("photo id", text)
	*id = PhotoID(u)

	return err
}

func (id ContactID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ContactID) UnmarshalText(text []byte) error {
	u, err := parseID("contact id", text)
	*id = ContactID(u)

	return err
}

func (id LeadID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *LeadID) UnmarshalText(text []byte) error {
	u, err := parseID("lead id", text)
	*id = LeadID(u)

	return err
}

func (id ClientID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ClientID) UnmarshalText(text []byte) error {
	u, err := parseID("client id", text)
	*id = ClientID(u)

	return err
}

func (id PolicyID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PolicyID) UnmarshalText(text []byte) error {
	u, err := parseID("policy id", text)
	*id = PolicyID(u)

	return err
}

func (id PostID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PostID) UnmarshalText(text []byte) error {
	u, err := parseID("post id", text)
	*id = PostID(u)

	return err
}

func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(text []byte) error {
	u, err := parseID("user id", text)
	*id = UserID(u)

	return err
}
