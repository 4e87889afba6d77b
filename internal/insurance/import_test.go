package insurance_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"midcar/internal/insurance"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"
	mockstorage "midcar/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

//nolint: gochecknoglobals
var now = time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	logger.Setup("test")
	m.Run()
}

func newService(t *testing.T) (*mockstorage.MockStorage, *mockstorage.MockAllStorage, insurance.Insurance) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)

	return st, tx, insurance.New(st, func() time.Time { return now })
}

func expectTx(st *mockstorage.MockStorage, tx *mockstorage.MockAllStorage) {
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		},
	)
}

const importCSV = "poliza;aseguradora;tomador;matricula;prima;vencimiento\n" +
	"100;Mapfre;Ana;1234-ABC;300,00;01/06/2025\n" +
	"101;;Luis;5678 DEF;250,00;01/07/2025\n" +
	"102;Mapfre;;;10;01/07/2025\n" +
	"103;mapfre;Eva;;99,90;15/08/2025\n"

func TestInsurance_Import(t *testing.T) {
	st, tx, service := newService(t)
	vid := domain.VehicleID(uuid.New())
	other := domain.VehicleID(uuid.New())
	existingID := domain.PolicyID(uuid.New())
	clientID := domain.ClientID(uuid.New())

	expectTx(st, tx)
	tx.EXPECT().VehiclesByPlates(gomock.Any(), []string{"1234ABC", "5678DEF"}).Return([]domain.Vehicle{
		{ID: vid, LicensePlate: "1234ABC"},
		{ID: other, LicensePlate: "1234ABC"},
	}, nil)

	tx.EXPECT().PolicyByNumber(gomock.Any(), "Mapfre", "100").Return(nil, nil)
	tx.EXPECT().StorePolicy(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.InsurancePolicy) (*domain.InsurancePolicy, error) {
			require.Equal(t, vid, *p.VehicleID)
			require.Equal(t, domain.Money(30000), p.Premium)

			return &p, nil
		})

	tx.EXPECT().PolicyByNumber(gomock.Any(), "Generali", "101").Return(nil, nil)
	tx.EXPECT().StorePolicy(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.InsurancePolicy) (*domain.InsurancePolicy, error) {
			require.Nil(t, p.VehicleID)
			require.Equal(t, "Generali", p.Insurer)

			return &p, nil
		})

	tx.EXPECT().PolicyByNumber(gomock.Any(), "mapfre", "103").Return(&domain.InsurancePolicy{
		ID: existingID, Insurer: "Mapfre", PolicyNumber: "103", ClientID: &clientID,
	}, nil)
	tx.EXPECT().UpdatePolicy(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.InsurancePolicy) (*domain.InsurancePolicy, error) {
			require.Equal(t, existingID, p.ID)
			require.Equal(t, "Mapfre", p.Insurer)
			require.Equal(t, &clientID, p.ClientID)
			require.Equal(t, domain.Money(9990), p.Premium)

			return &p, nil
		})

	report, err := service.Import(context.Background(), "polizas.csv", strings.NewReader(importCSV), " Generali ")
	require.NoError(t, err)
	require.Equal(t, &insurance.ImportReport{
		Total:           4,
		Imported:        2,
		Updated:         1,
		Skipped:         []insurance.SkippedRow{{Line: 4, Reason: "missing plate and holder"}},
		MatchedVehicles: 1,
	}, report)
}

func TestInsurance_Import_rollsBackOnError(t *testing.T) {
	st, tx, service := newService(t)

	expectTx(st, tx)
	tx.EXPECT().VehiclesByPlates(gomock.Any(), gomock.Any()).Return(nil, nil)
	tx.EXPECT().PolicyByNumber(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	tx.EXPECT().StorePolicy(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := service.Import(context.Background(), "polizas.csv", strings.NewReader(importCSV), "")
	require.ErrorContains(t, err, "row 2")
}

func TestInsurance_Import_missingInsurer(t *testing.T) {
	st, tx, service := newService(t)

	expectTx(st, tx)
	tx.EXPECT().VehiclesByPlates(gomock.Any(), []string{"5678DEF"}).Return(nil, nil)
	tx.EXPECT().PolicyByNumber(gomock.Any(), "Allianz", "P2").Return(nil, nil)
	tx.EXPECT().StorePolicy(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.InsurancePolicy) (*domain.InsurancePolicy, error) {
			require.Equal(t, "Allianz", p.Insurer)

			return &p, nil
		})

	report, err := service.Import(context.Background(), "polizas.csv", strings.NewReader(
		"poliza;aseguradora;matricula\nP1;;1234ABC\nP2;Allianz;5678DEF\n;Allianz;9999XYZ\n"), "  ")
	require.NoError(t, err)
	require.Equal(t, 3, report.Total)
	require.Equal(t, 1, report.Imported)
	require.Equal(t, []insurance.SkippedRow{
		{Line: 2, Reason: "missing insurer"},
		{Line: 4, Reason: "missing policy number"},
	}, report.Skipped)
}

func TestInsurance_Import_noInsurerColumn(t *testing.T) {
	_, _, service := newService(t)

	report, err := service.Import(context.Background(), "polizas.csv",
		strings.NewReader("poliza;matricula\nP1;1234ABC\n"), "")
	require.NoError(t, err)
	require.Zero(t, report.Imported)
	require.Equal(t, []insurance.SkippedRow{{Line: 2, Reason: "missing insurer"}}, report.Skipped)
}

func TestInsurance_Import_nothingToImport(t *testing.T) {
	_, _, service := newService(t)

	report, err := service.Import(context.Background(), "p.csv",
		strings.NewReader("poliza;matricula\n;1234ABC\n"), "")
	require.NoError(t, err)
	require.Equal(t, 1, report.Total)
	require.Len(t, report.Skipped, 1)

	_, err = service.Import(context.Background(), "p.ods", strings.NewReader(""), "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
