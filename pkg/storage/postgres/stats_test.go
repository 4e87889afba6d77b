package postgres_test

import (
	"context"
	"testing"
	"time"

	"midcar/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Stats(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	now := time.Now()

	for _, v := range []domain.Vehicle{
		{Make: "A", Price: 1000000, Status: domain.VehicleStatusAvailable},
		{Make: "B", Price: 500000, Status: domain.VehicleStatusReserved},
		{Make: "C", Price: 700000, Status: domain.VehicleStatusSold, SoldAt: now.Add(-time.Hour)},
		{Make: "D", Price: 800000, Status: domain.VehicleStatusSold, SoldAt: now.AddDate(0, -2, 0)},
	} {
		_, err := pg.StoreVehicle(ctx, v)
		require.NoError(t, err)
	}
	gone, err := pg.StoreVehicle(ctx, domain.Vehicle{Make: "E", Price: 900000, Status: domain.VehicleStatusAvailable})
	require.NoError(t, err)
	_, err = pg.DeleteVehicle(ctx, gone.ID)
	require.NoError(t, err)

	counts, err := pg.VehicleCountsByStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, map[domain.VehicleStatus]int64{
		domain.VehicleStatusAvailable: 1,
		domain.VehicleStatusReserved:  1,
		domain.VehicleStatusSold:      2,
	}, counts)

	value, err := pg.StockValue(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.Money(1500000), value)

	avg, err := pg.AverageDaysInStock(ctx, now.AddDate(0, 0, 10))
	require.NoError(t, err)
	require.InDelta(t, 10, avg, 0.1)

	sold, err := pg.VehiclesSoldSince(ctx, now.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.EqualValues(t, 1, sold)

	recent, err := pg.RecentSales(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "C", recent[0].Make)

	for _, s := range []domain.LeadStatus{domain.LeadStatusNew, domain.LeadStatusWon, domain.LeadStatusWon} {
		_, err := pg.StoreLead(ctx, domain.Lead{Name: "x", Source: domain.SourcePhone, Status: s})
		require.NoError(t, err)
	}
	leads, err := pg.LeadCountsByStatus(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, leads[domain.LeadStatusWon])

	created, err := pg.LeadsCreatedSince(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 3, created)

	_, err = pg.StoreContact(ctx, domain.Contact{Name: "y", Phone: "600", Source: domain.SourceWeb})
	require.NoError(t, err)
	pending, err := pg.UnhandledContactCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, pending)

	_, err = pg.StorePolicy(ctx, domain.InsurancePolicy{
		PolicyNumber: "1", Insurer: "Mapfre", EndDate: now.AddDate(0, 0, 5),
	})
	require.NoError(t, err)
	_, err = pg.StorePolicy(ctx, domain.InsurancePolicy{
		PolicyNumber: "2", Insurer: "Mapfre", EndDate: now.AddDate(0, 3, 0),
	})
	require.NoError(t, err)
	expiring, err := pg.PoliciesEndingBetween(ctx, now.AddDate(0, 0, -1), now.AddDate(0, 0, 30))
	require.NoError(t, err)
	require.EqualValues(t, 1, expiring)
}
