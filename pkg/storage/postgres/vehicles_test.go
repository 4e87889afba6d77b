package postgres_test

import (
	"context"
	"testing"
	"time"

	"midcar/pkg/domain"
	"midcar/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Vehicles(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	leon, err := pg.StoreVehicle(ctx, domain.Vehicle{
		VIN:          "VSSZZZ5FZJR000001",
		LicensePlate: "1234ABC",
		Make:         "Seat",
		Model:        "Leon",
		Year:         2018,
		MileageKm:    90000,
		FuelType:     domain.FuelDiesel,
		Price:        1250000,
		Status:       domain.VehicleStatusAvailable,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(leon.ID))
	require.False(t, leon.CreatedAt.IsZero())

	golf, err := pg.StoreVehicle(ctx, domain.Vehicle{
		Make:     "Volkswagen",
		Model:    "Golf",
		Year:     2021,
		FuelType: domain.FuelGasoline,
		Price:    1890000,
		Status:   domain.VehicleStatusReserved,
		Featured: true,
	})
	require.NoError(t, err)

	t.Run("duplicate vin", func(t *testing.T) {
		_, err := pg.StoreVehicle(ctx, domain.Vehicle{
			VIN: leon.VIN, Make: "Seat", Status: domain.VehicleStatusAvailable,
		})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("filters", func(t *testing.T) {
		list, err := pg.Vehicles(ctx, storage.VehicleFilter{})
		require.NoError(t, err)
		require.EqualValues(t, 2, list.Total)

		list, err = pg.Vehicles(ctx, storage.VehicleFilter{Make: "seat"})
		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		require.Equal(t, leon.ID, list.Items[0].ID)

		list, err = pg.Vehicles(ctx, storage.VehicleFilter{
			Statuses: []domain.VehicleStatus{domain.VehicleStatusReserved},
		})
		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		require.Equal(t, golf.ID, list.Items[0].ID)

		list, err = pg.Vehicles(ctx, storage.VehicleFilter{MinPrice: 1500000})
		require.NoError(t, err)
		require.Len(t, list.Items, 1)

		list, err = pg.Vehicles(ctx, storage.VehicleFilter{Search: "1234-abc"})
		require.NoError(t, err)
		require.Len(t, list.Items, 1)

		for _, q := range []string{"1234", "VSSZZZ5F"} {
			list, err = pg.Vehicles(ctx, storage.VehicleFilter{Search: q, PublicSearch: true})
			require.NoError(t, err)
			require.Empty(t, list.Items, q)
		}
		list, err = pg.Vehicles(ctx, storage.VehicleFilter{Search: "leon", PublicSearch: true})
		require.NoError(t, err)
		require.Len(t, list.Items, 1)

		featured := true
		list, err = pg.Vehicles(ctx, storage.VehicleFilter{Featured: &featured})
		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		require.Equal(t, golf.ID, list.Items[0].ID)

		list, err = pg.Vehicles(ctx, storage.VehicleFilter{Sort: storage.VehicleSortPriceAsc})
		require.NoError(t, err)
		require.Equal(t, leon.ID, list.Items[0].ID)

		list, err = pg.Vehicles(ctx, storage.VehicleFilter{Page: storage.Page{Limit: 1, Offset: 1}})
		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		require.EqualValues(t, 2, list.Total)
	})

	t.Run("update", func(t *testing.T) {
		v := *leon
		v.Color = "Rojo"
		v.Status = domain.VehicleStatusSold
		v.SoldAt = time.Now()
		updated, err := pg.UpdateVehicle(ctx, v)
		require.NoError(t, err)
		require.Equal(t, "Rojo", updated.Color)
		require.False(t, updated.SoldAt.IsZero())
		require.False(t, updated.UpdatedAt.IsZero())

		missing, err := pg.UpdateVehicle(ctx, domain.Vehicle{ID: domain.VehicleID(uuid.New()), Make: "X"})
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("by plates", func(t *testing.T) {
		found, err := pg.VehiclesByPlates(ctx, []string{"1234ABC", "0000ZZZ"})
		require.NoError(t, err)
		require.Len(t, found, 1)

		found, err = pg.VehiclesByPlates(ctx, nil)
		require.NoError(t, err)
		require.Empty(t, found)
	})

	t.Run("photos", func(t *testing.T) {
		var ids []domain.PhotoID
		for i := range 3 {
			p, err := pg.StorePhoto(ctx, domain.VehiclePhoto{
				VehicleID:   golf.ID,
				ObjectKey:   "vehicles/k" + string(rune('a'+i)),
				URL:         "http://cdn/k",
				ContentType: "image/jpeg",
			})
			require.NoError(t, err)
			require.Equal(t, i, p.Position)
			ids = append(ids, p.ID)
		}

		require.NoError(t, pg.SetPhotoPositions(ctx, golf.ID, []domain.PhotoID{ids[2], ids[0], ids[1]}))
		photos, err := pg.PhotosByVehicles(ctx, []domain.VehicleID{golf.ID})
		require.NoError(t, err)
		require.Len(t, photos, 3)
		require.Equal(t, ids[2], photos[0].ID)
		require.Equal(t, ids[1], photos[2].ID)

		deleted, err := pg.DeletePhoto(ctx, leon.ID, ids[0])
		require.NoError(t, err)
		require.Nil(t, deleted, "photo belongs to another vehicle")

		deleted, err = pg.DeletePhoto(ctx, golf.ID, ids[0])
		require.NoError(t, err)
		require.Equal(t, ids[0], deleted.ID)
	})

	t.Run("soft delete", func(t *testing.T) {
		deleted, err := pg.DeleteVehicle(ctx, golf.ID)
		require.NoError(t, err)
		require.False(t, deleted.DeletedAt.IsZero())

		got, err := pg.VehicleByID(ctx, golf.ID)
		require.NoError(t, err)
		require.Nil(t, got)

		again, err := pg.DeleteVehicle(ctx, golf.ID)
		require.NoError(t, err)
		require.Nil(t, again)
	})
}
