package inventory_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	mockstorage "midcar/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

//nolint: gochecknoglobals
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestInventory_UploadPhoto(t *testing.T) {
	f := newFixture(t)
	id := domain.VehicleID(uuid.New())

	f.st.EXPECT().VehicleByID(gomock.Any(), id).Return(&domain.Vehicle{ID: id}, nil)
	f.photos.EXPECT().Put(gomock.Any(), gomock.Any(), "image/png", gomock.Any()).DoAndReturn(
		func(_ context.Context, key, _ string, body io.Reader) (string, error) {
			require.True(t, strings.HasPrefix(key, "vehicles/"+id.String()+"/"))
			require.True(t, strings.HasSuffix(key, ".png"))
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			require.Equal(t, pngHeader, data)

			return "https://cdn.example.com/" + key, nil
		})
	f.st.EXPECT().StorePhoto(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.VehiclePhoto) (*domain.VehiclePhoto, error) {
			require.Equal(t, "image/png", p.ContentType)
			require.Equal(t, "https://cdn.example.com/"+p.ObjectKey, p.URL)
			p.ID = domain.PhotoID(uuid.New())

			return &p, nil
		})

	photo, err := f.service.UploadPhoto(context.Background(), id, bytes.NewReader(pngHeader))
	require.NoError(t, err)
	require.Equal(t, id, photo.VehicleID)
}

func TestInventory_UploadPhoto_rejected(t *testing.T) {
	id := domain.VehicleID(uuid.New())
	tests := []struct {
		name string
		body []byte
	}{
		{"empty", nil},
		{"too large", bytes.Repeat([]byte{0xff}, 2048)},
		{"not an image", []byte("%PDF-1.4 not a photo")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.st.EXPECT().VehicleByID(gomock.Any(), id).Return(&domain.Vehicle{ID: id}, nil)

			_, err := f.service.UploadPhoto(context.Background(), id, bytes.NewReader(tt.body))
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestInventory_UploadPhoto_removesObjectWhenRecordFails(t *testing.T) {
	f := newFixture(t)
	id := domain.VehicleID(uuid.New())

	var uploaded string
	f.st.EXPECT().VehicleByID(gomock.Any(), id).Return(&domain.Vehicle{ID: id}, nil)
	f.photos.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key, _ string, _ io.Reader) (string, error) {
			uploaded = key

			return "u", nil
		})
	f.st.EXPECT().StorePhoto(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	f.photos.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string) error {
			require.Equal(t, uploaded, key)

			return nil
		})

	_, err := f.service.UploadPhoto(context.Background(), id, bytes.NewReader(pngHeader))
	require.Error(t, err)
}

func TestInventory_DeletePhoto(t *testing.T) {
	f := newFixture(t)
	id := domain.VehicleID(uuid.New())
	pid := domain.PhotoID(uuid.New())

	f.st.EXPECT().DeletePhoto(gomock.Any(), id, pid).Return(&domain.VehiclePhoto{ID: pid, ObjectKey: "k"}, nil)
	f.photos.EXPECT().Delete(gomock.Any(), "k").Return(errors.New("s3 down"))
	require.NoError(t, f.service.DeletePhoto(context.Background(), id, pid))

	f.st.EXPECT().DeletePhoto(gomock.Any(), id, pid).Return(nil, nil)
	require.ErrorIs(t, f.service.DeletePhoto(context.Background(), id, pid), serrors.ErrNotFound)
}

func TestInventory_ReorderPhotos(t *testing.T) {
	id := domain.VehicleID(uuid.New())
	a, b, c := domain.PhotoID(uuid.New()), domain.PhotoID(uuid.New()), domain.PhotoID(uuid.New())
	current := []domain.VehiclePhoto{
		{ID: a, VehicleID: id, Position: 0},
		{ID: b, VehicleID: id, Position: 1},
		{ID: c, VehicleID: id, Position: 2},
	}

	t.Run("ok", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().VehicleByID(gomock.Any(), id).Return(&domain.Vehicle{ID: id}, nil)
		f.st.EXPECT().PhotosByVehicles(gomock.Any(), []domain.VehicleID{id}).Return(current, nil)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().SetPhotoPositions(gomock.Any(), id, []domain.PhotoID{c, a, b}).Return(nil)
		})

		out, err := f.service.ReorderPhotos(context.Background(), id, []domain.PhotoID{c, a, b})
		require.NoError(t, err)
		require.Equal(t, c, out[0].ID)
		require.Equal(t, 0, out[0].Position)
		require.Equal(t, 2, out[2].Position)
	})

	for name, ordered := range map[string][]domain.PhotoID{
		"missing":   {a, b},
		"duplicate": {a, a, b},
		"foreign":   {a, b, domain.PhotoID(uuid.New())},
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			f.st.EXPECT().VehicleByID(gomock.Any(), id).Return(&domain.Vehicle{ID: id}, nil)
			f.st.EXPECT().PhotosByVehicles(gomock.Any(), []domain.VehicleID{id}).Return(current, nil)

			_, err := f.service.ReorderPhotos(context.Background(), id, ordered)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}
