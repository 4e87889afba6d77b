package domain

import "github.com/google/uuid"

// UserID uniquely identifies a staff user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// IsZero reports whether the user ID is unset.
func (u UserID) IsZero() bool { return uuid.UUID(u) == uuid.Nil }

func (u UserID) String() string { return uuid.UUID(u).String() }
