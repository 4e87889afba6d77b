package crm_test

import (
	"context"
	"fmt"
	"testing"

	"midcar/internal/crm"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCRM_CreateClient(t *testing.T) {
	f := newFixture(t)

	f.st.EXPECT().StoreClient(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c domain.Client) (*domain.Client, error) {
			require.Equal(t, "X1234567L", c.NationalID)
			require.Equal(t, "lucia@example.com", c.Email)

			return &c, nil
		})

	_, err := f.service.CreateClient(context.Background(), crm.ClientInput{
		FirstName:  ptr("Lucía"),
		NationalID: ptr("x 1234567 l"),
		Email:      ptr("Lucia@Example.COM "),
	})
	require.NoError(t, err)
}

func TestCRM_CreateClient_duplicate(t *testing.T) {
	f := newFixture(t)

	f.st.EXPECT().StoreClient(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("insert: %w", storage.ErrDuplicate))

	_, err := f.service.CreateClient(context.Background(), crm.ClientInput{FirstName: ptr("Lucía")})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestCRM_UpdateClient(t *testing.T) {
	f := newFixture(t)
	id := domain.ClientID(uuid.New())

	f.st.EXPECT().ClientByID(gomock.Any(), id).Return(&domain.Client{ID: id, FirstName: "Lucía", City: "Lugo"}, nil)
	f.st.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c domain.Client) (*domain.Client, error) {
			require.Equal(t, "Lucía", c.FirstName)
			require.Equal(t, "Ourense", c.City)

			return &c, nil
		})

	_, err := f.service.UpdateClient(context.Background(), id, crm.ClientInput{City: ptr("Ourense")})
	require.NoError(t, err)

	f.st.EXPECT().ClientByID(gomock.Any(), id).Return(nil, nil)
	_, err = f.service.UpdateClient(context.Background(), id, crm.ClientInput{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
