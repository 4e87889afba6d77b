package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"midcar/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		in   domain.Money
		want string
	}{
		{0, "0,00 €"},
		{5, "0,05 €"},
		{123456, "1.234,56 €"},
		{1234567890, "12.345.678,90 €"},
		{-99950, "-999,50 €"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.in.String())
	}
	require.InDelta(t, 1234.56, domain.Money(123456).Euros(), 0.0001)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to domain.LeadStatus
		ok       bool
	}{
		{domain.LeadStatusNew, domain.LeadStatusContacted, true},
		{domain.LeadStatusNew, domain.LeadStatusWon, false},
		{domain.LeadStatusContacted, domain.LeadStatusNegotiating, true},
		{domain.LeadStatusNegotiating, domain.LeadStatusWon, true},
		{domain.LeadStatusNegotiating, domain.LeadStatusContacted, true},
		{domain.LeadStatusWon, domain.LeadStatusLost, false},
		{domain.LeadStatusLost, domain.LeadStatusContacted, true},
		{domain.LeadStatusLost, domain.LeadStatusWon, false},
		{domain.LeadStatusWon, domain.LeadStatusWon, true},
		{"BOGUS", "BOGUS", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.ok, domain.CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "1234ABC", domain.NormalizePlate(" 1234-abc "))
	require.Equal(t, "M1234BC", domain.NormalizePlate("m 1234 bc"))
	require.Equal(t, "12345678Z", domain.NormalizeNationalID("12.345.678-z"))
	require.Equal(t, "ana@example.com", domain.NormalizeEmail("  Ana@Example.COM "))
}

func TestVehicle_Title(t *testing.T) {
	v := domain.Vehicle{Make: "Seat", Model: "Leon", Version: "1.5 TSI"}
	require.Equal(t, "Seat Leon 1.5 TSI", v.Title())
	v.Version = ""
	require.Equal(t, "Seat Leon", v.Title())
}

func TestExpiryWindow(t *testing.T) {
	now := time.Date(2025, 1, 10, 18, 30, 0, 0, time.UTC)

	from, before := domain.ExpiryWindow(now, 30)
	require.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), before)

	inside := func(end time.Time) bool { return !end.Before(from) && end.Before(before) }
	require.True(t, inside(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)), "ending today")
	require.True(t, inside(time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC)), "ending on day 30")
	require.False(t, inside(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)), "ending on day 31")
	require.False(t, inside(time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)), "ended yesterday")
}

func TestStatusValid(t *testing.T) {
	require.True(t, domain.VehicleStatusSold.Valid())
	require.False(t, domain.VehicleStatus("GONE").Valid())
	require.True(t, domain.FuelType("").Valid())
	require.False(t, domain.FuelType("COAL").Valid())
	require.True(t, domain.SourceWalkIn.Valid())
	require.True(t, domain.PostStatusDraft.Valid())
	require.False(t, domain.Transmission("CVT").Valid())
}

func TestIDs_JSON(t *testing.T) {
	id := domain.VehicleID(uuid.MustParse("6f1c1f9e-4a7b-4c55-9d62-1b3f0b0f7a10"))

	b, err := json.Marshal(struct {
		ID  domain.VehicleID  `json:"id"`
		Opt *domain.ClientID  `json:"opt,omitempty"`
		Ref *domain.VehicleID `json:"ref"`
	}{ID: id, Ref: &id})
	require.NoError(t, err)
	require.JSONEq(t,
		`{"id":"6f1c1f9e-4a7b-4c55-9d62-1b3f0b0f7a10","ref":"6f1c1f9e-4a7b-4c55-9d62-1b3f0b0f7a10"}`,
		string(b))

	var decoded struct {
		ID domain.LeadID `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id":"6f1c1f9e-4a7b-4c55-9d62-1b3f0b0f7a10"}`), &decoded))
	require.Equal(t, "6f1c1f9e-4a7b-4c55-9d62-1b3f0b0f7a10", decoded.ID.String())

	require.ErrorContains(t, json.Unmarshal([]byte(`{"id":"nope"}`), &decoded), "invalid lead id")
}
