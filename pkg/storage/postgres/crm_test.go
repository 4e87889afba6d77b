package postgres_test

import (
	"context"
	"testing"

	"midcar/pkg/domain"
	"midcar/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_CRM(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	vehicle, err := pg.StoreVehicle(ctx, domain.Vehicle{Make: "Kia", Status: domain.VehicleStatusAvailable})
	require.NoError(t, err)

	contact, err := pg.StoreContact(ctx, domain.Contact{
		Name:      "Lucía Pérez",
		Email:     "lucia@example.com",
		Message:   "¿Sigue disponible?",
		VehicleID: &vehicle.ID,
		Source:    domain.SourceWeb,
	})
	require.NoError(t, err)
	require.False(t, contact.Handled)
	require.Equal(t, vehicle.ID, *contact.VehicleID)

	lead, err := pg.StoreLead(ctx, domain.Lead{
		Name:      contact.Name,
		Email:     contact.Email,
		VehicleID: contact.VehicleID,
		Source:    contact.Source,
		Status:    domain.LeadStatusNew,
	})
	require.NoError(t, err)
	require.False(t, lead.UpdatedAt.IsZero())

	t.Run("contacts", func(t *testing.T) {
		c := *contact
		c.Handled = true
		c.LeadID = &lead.ID
		updated, err := pg.UpdateContact(ctx, c)
		require.NoError(t, err)
		require.True(t, updated.Handled)
		require.Equal(t, lead.ID, *updated.LeadID)

		pending := false
		list, err := pg.Contacts(ctx, storage.ContactFilter{Handled: &pending})
		require.NoError(t, err)
		require.Empty(t, list.Items)

		list, err = pg.Contacts(ctx, storage.ContactFilter{Search: "LUCIA@"})
		require.NoError(t, err)
		require.Len(t, list.Items, 1)

		got, err := pg.ContactByID(ctx, domain.ContactID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("leads", func(t *testing.T) {
		l := *lead
		l.Status = domain.LeadStatusContacted
		l.Notes = "called back"
		updated, err := pg.UpdateLead(ctx, l)
		require.NoError(t, err)
		require.Equal(t, domain.LeadStatusContacted, updated.Status)

		list, err := pg.Leads(ctx, storage.LeadFilter{Status: domain.LeadStatusContacted})
		require.NoError(t, err)
		require.EqualValues(t, 1, list.Total)

		list, err = pg.Leads(ctx, storage.LeadFilter{VehicleID: &vehicle.ID, Search: "called"})
		require.NoError(t, err)
		require.Len(t, list.Items, 1)

		list, err = pg.Leads(ctx, storage.LeadFilter{Status: domain.LeadStatusWon})
		require.NoError(t, err)
		require.Empty(t, list.Items)
	})

	t.Run("clients", func(t *testing.T) {
		client, err := pg.StoreClient(ctx, domain.Client{
			FirstName:  "Lucía",
			LastName:   "Pérez",
			NationalID: "12345678Z",
		})
		require.NoError(t, err)

		_, err = pg.StoreClient(ctx, domain.Client{FirstName: "Otra", NationalID: "12345678Z"})
		require.ErrorIs(t, err, storage.ErrDuplicate)

		// empty national ids never collide
		_, err = pg.StoreClient(ctx, domain.Client{FirstName: "A"})
		require.NoError(t, err)
		_, err = pg.StoreClient(ctx, domain.Client{FirstName: "B"})
		require.NoError(t, err)

		list, err := pg.Clients(ctx, storage.ClientFilter{Search: "12.345.678-z"})
		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		require.Equal(t, client.ID, list.Items[0].ID)

		c := *client
		c.City = "Madrid"
		updated, err := pg.UpdateClient(ctx, c)
		require.NoError(t, err)
		require.Equal(t, "Madrid", updated.City)

		ok, err := pg.DeleteClient(ctx, client.ID)
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = pg.DeleteClient(ctx, client.ID)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("delete lead", func(t *testing.T) {
		ok, err := pg.DeleteLead(ctx, lead.ID)
		require.NoError(t, err)
		require.True(t, ok)

		// contact keeps existing with the link cleared
		c, err := pg.ContactByID(ctx, contact.ID)
		require.NoError(t, err)
		require.Nil(t, c.LeadID)
	})
}
