package postgres_test

import (
	"context"
	"database/sql"
	"midcar/internal/inventory"
	"midcar/pkg/domain"
	"midcar/pkg/storage/postgres"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

func setupQueue(t *testing.T) *postgres.PgSQL {
	t.Helper()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	migrator, err := rivermigrate.New(riverdatabasesql.New(pg.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, nil)
	require.NoError(t, err)

	return pg
}

func queuedDecodes(t *testing.T, pg *postgres.PgSQL) int {
	t.Helper()

	var n int
	require.NoError(t, pg.DB.QueryRowContext(t.Context(),
		`SELECT count(*) FROM river_job WHERE kind = $1`, inventory.VINDecodeJobArgs{}.Kind()).Scan(&n))

	return n
}

func TestPgSQL_AddJob_CommittedWithVehicle(t *testing.T) {
	pg := setupQueue(t)
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	v, err := tx.StoreVehicle(ctx, domain.Vehicle{Make: "Seat", Model: "Leon", Status: domain.VehicleStatusAvailable})
	require.NoError(t, err)
	added, err := tx.AddJob(ctx, inventory.VINDecodeJobArgs{VehicleID: v.ID.String()}, nil)
	require.NoError(t, err)
	require.True(t, added)

	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](ctx, t, tx.(*postgres.PgSQL).DB.(*sql.Tx),
		&inventory.VINDecodeJobArgs{}, nil)
	require.Zero(t, queuedDecodes(t, pg), "job is not visible before commit")

	require.NoError(t, tx.Commit())
	require.Equal(t, 1, queuedDecodes(t, pg))
}

func TestPgSQL_AddJob_RolledBackWithVehicle(t *testing.T) {
	pg := setupQueue(t)
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.AddJob(ctx, inventory.VINDecodeJobArgs{VehicleID: "b1c1f5b4-0f3c-4d0e-9d7e-2f7f1a0c9e11"}, nil)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	require.Zero(t, queuedDecodes(t, pg))
}

func TestPgSQL_AddJob_OutsideTransaction(t *testing.T) {
	pg := setupQueue(t)
	ctx := context.Background()

	added, err := pg.AddJob(ctx, inventory.VINDecodeJobArgs{VehicleID: "c3d0a7a2-4b8e-4a53-9a52-8a3d3f2e7b10"},
		&river.InsertOpts{Queue: river.QueueDefault})
	require.NoError(t, err)
	require.True(t, added)

	rivertest.RequireInserted[*riverdatabasesql.Driver](ctx, t, riverdatabasesql.New(pg.DB.(*sql.DB)),
		&inventory.VINDecodeJobArgs{}, nil)
}

func TestPgSQL_AddJob_OnePendingDecodePerVehicle(t *testing.T) {
	pg := setupQueue(t)
	ctx := context.Background()

	first := inventory.VINDecodeJobArgs{VehicleID: "5f7f6a2e-93a1-4a8e-8f43-0d8b8a3c1e01"}
	other := inventory.VINDecodeJobArgs{VehicleID: "7a0e3b54-5f0c-4f0e-b7d2-6e4b2d1c9a02"}

	added, err := pg.AddJob(ctx, first, nil)
	require.NoError(t, err)
	require.True(t, added)

	added, err = pg.AddJob(ctx, first, nil)
	require.NoError(t, err)
	require.False(t, added, "second decode of the same vehicle is skipped")

	added, err = pg.AddJob(ctx, other, nil)
	require.NoError(t, err)
	require.True(t, added)

	require.Equal(t, 2, queuedDecodes(t, pg))
}
