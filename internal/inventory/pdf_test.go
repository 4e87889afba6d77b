package inventory_test

import (
	"bytes"
	"context"
	"testing"

	"midcar/pkg/domain"
	"midcar/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInventory_ExportSheetPDF(t *testing.T) {
	f := newFixture(t)
	id := domain.VehicleID(uuid.New())

	f.st.EXPECT().VehicleByID(gomock.Any(), id).Return(&domain.Vehicle{
		ID: id, Make: "Citroën", Model: "C4", Year: 2020, Price: 1599000,
		FuelType: domain.FuelDiesel, Description: "Único propietario.\nLibro de revisiones.",
		Status: domain.VehicleStatusAvailable,
	}, nil)
	f.st.EXPECT().PhotosByVehicles(gomock.Any(), []domain.VehicleID{id}).Return(nil, nil)

	var buf bytes.Buffer
	require.NoError(t, f.service.ExportSheetPDF(context.Background(), id, &buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestInventory_ExportInventoryPDF_pagesThroughStorage(t *testing.T) {
	f := newFixture(t)

	first := make([]domain.Vehicle, 200)
	for i := range first {
		first[i] = domain.Vehicle{ID: domain.VehicleID(uuid.New()), Make: "Seat", Price: 100}
	}
	gomock.InOrder(
		f.st.EXPECT().Vehicles(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filter storage.VehicleFilter) (storage.List[domain.Vehicle], error) {
				require.Equal(t, uint(0), filter.Offset)
				require.Equal(t, "Seat", filter.Make)

				return storage.List[domain.Vehicle]{Items: first, Total: 201}, nil
			}),
		f.st.EXPECT().Vehicles(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filter storage.VehicleFilter) (storage.List[domain.Vehicle], error) {
				require.Equal(t, uint(200), filter.Offset)

				return storage.List[domain.Vehicle]{Items: first[:1], Total: 201}, nil
			}),
	)

	var buf bytes.Buffer
	err := f.service.ExportInventoryPDF(context.Background(), storage.VehicleFilter{
		Make: "Seat",
		Page: storage.Page{Limit: 10, Offset: 30},
	}, &buf)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
