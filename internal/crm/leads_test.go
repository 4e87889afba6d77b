package crm_test

import (
	"context"
	"testing"

	"midcar/internal/crm"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCRM_CreateLead(t *testing.T) {
	f := newFixture(t)

	f.st.EXPECT().StoreLead(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l domain.Lead) (*domain.Lead, error) {
			require.Equal(t, domain.LeadStatusNew, l.Status)
			require.Equal(t, domain.SourceWalkIn, l.Source)
			require.Nil(t, l.AssignedTo)

			return &l, nil
		})

	_, err := f.service.CreateLead(context.Background(), crm.LeadInput{
		Name:       ptr("Marta"),
		Source:     ptr(domain.SourceWalkIn),
		AssignedTo: ptr(domain.UserID(uuid.Nil)),
	})
	require.NoError(t, err)

	_, err = f.service.CreateLead(context.Background(), crm.LeadInput{Name: ptr("  ")})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCRM_UpdateLead_clearVehicle(t *testing.T) {
	f := newFixture(t)
	id := domain.LeadID(uuid.New())
	vid := domain.VehicleID(uuid.New())

	f.st.EXPECT().LeadByID(gomock.Any(), id).Return(&domain.Lead{
		ID: id, Name: "Marta", Source: domain.SourceWeb, Status: domain.LeadStatusContacted, VehicleID: &vid,
	}, nil)
	f.st.EXPECT().UpdateLead(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l domain.Lead) (*domain.Lead, error) {
			require.Nil(t, l.VehicleID)
			require.Equal(t, "Llamar el lunes", l.Notes)

			return &l, nil
		})

	_, err := f.service.UpdateLead(context.Background(), id, crm.LeadInput{
		Notes:        ptr("Llamar el lunes"),
		ClearVehicle: true,
	})
	require.NoError(t, err)
}

func TestCRM_ChangeLeadStatus(t *testing.T) {
	id := domain.LeadID(uuid.New())
	tests := []struct {
		name string
		from domain.LeadStatus
		to   domain.LeadStatus
		err  error
	}{
		{"new to contacted", domain.LeadStatusNew, domain.LeadStatusContacted, nil},
		{"lost reopened", domain.LeadStatusLost, domain.LeadStatusContacted, nil},
		{"new to negotiating", domain.LeadStatusNew, domain.LeadStatusNegotiating, serrors.ErrBadRequest},
		{"won is final", domain.LeadStatusWon, domain.LeadStatusLost, serrors.ErrBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.st.EXPECT().LeadByID(gomock.Any(), id).Return(&domain.Lead{ID: id, Status: tt.from}, nil)
			if tt.err == nil {
				f.st.EXPECT().UpdateLead(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, l domain.Lead) (*domain.Lead, error) { return &l, nil })
			}

			l, err := f.service.ChangeLeadStatus(context.Background(), id, tt.to)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.to, l.Status)
		})
	}

	t.Run("won needs a client", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.ChangeLeadStatus(context.Background(), id, domain.LeadStatusWon)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestCRM_ListLeads_invalidFilter(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.ListLeads(context.Background(), storage.LeadFilter{Status: "MAYBE"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCRM_DeleteLead(t *testing.T) {
	f := newFixture(t)
	id := domain.LeadID(uuid.New())

	f.st.EXPECT().DeleteLead(gomock.Any(), id).Return(false, nil)
	require.ErrorIs(t, f.service.DeleteLead(context.Background(), id), serrors.ErrNotFound)
}

func TestCRM_WinLead_newClientSellsVehicle(t *testing.T) {
	f := newFixture(t)
	id := domain.LeadID(uuid.New())
	vid := domain.VehicleID(uuid.New())
	cid := domain.ClientID(uuid.New())

	f.expectTx()
	f.tx.EXPECT().LeadByID(gomock.Any(), id).Return(&domain.Lead{
		ID: id, Name: "Pedro", Status: domain.LeadStatusNegotiating, VehicleID: &vid,
	}, nil)
	f.tx.EXPECT().StoreClient(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c domain.Client) (*domain.Client, error) {
			require.Equal(t, "12345678Z", c.NationalID)
			c.ID = cid

			return &c, nil
		})
	f.tx.EXPECT().VehicleByID(gomock.Any(), vid).Return(&domain.Vehicle{
		ID: vid, Status: domain.VehicleStatusReserved,
	}, nil)
	f.tx.EXPECT().UpdateVehicle(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, v domain.Vehicle) (*domain.Vehicle, error) {
			require.Equal(t, domain.VehicleStatusSold, v.Status)
			require.Equal(t, now, v.SoldAt)

			return &v, nil
		})
	f.tx.EXPECT().UpdateLead(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l domain.Lead) (*domain.Lead, error) {
			require.Equal(t, domain.LeadStatusWon, l.Status)
			require.Equal(t, cid, *l.ClientID)

			return &l, nil
		})

	lead, client, err := f.service.WinLead(context.Background(), id, crm.WinInput{
		Client: &crm.ClientInput{FirstName: ptr("Pedro"), NationalID: ptr("12345678-z")},
	})
	require.NoError(t, err)
	require.Equal(t, domain.LeadStatusWon, lead.Status)
	require.Equal(t, cid, client.ID)
	require.Equal(t, 1, f.cache.n)
}

func TestCRM_WinLead_conflicts(t *testing.T) {
	id := domain.LeadID(uuid.New())
	cid := domain.ClientID(uuid.New())
	vid := domain.VehicleID(uuid.New())

	t.Run("already closed", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.tx.EXPECT().LeadByID(gomock.Any(), id).Return(&domain.Lead{ID: id, Status: domain.LeadStatusLost}, nil)

		_, _, err := f.service.WinLead(context.Background(), id, crm.WinInput{ClientID: &cid})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("not negotiating", func(t *testing.T) {
		for _, status := range []domain.LeadStatus{domain.LeadStatusNew, domain.LeadStatusContacted} {
			f := newFixture(t)
			f.expectTx()
			f.tx.EXPECT().LeadByID(gomock.Any(), id).Return(&domain.Lead{ID: id, Status: status}, nil)

			_, _, err := f.service.WinLead(context.Background(), id, crm.WinInput{ClientID: &cid})
			require.ErrorIs(t, err, serrors.ErrBadRequest, status)
		}
	})

	t.Run("vehicle already sold", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.tx.EXPECT().LeadByID(gomock.Any(), id).Return(&domain.Lead{
			ID: id, Status: domain.LeadStatusNegotiating, VehicleID: &vid,
		}, nil)
		f.tx.EXPECT().ClientByID(gomock.Any(), cid).Return(&domain.Client{ID: cid}, nil)
		f.tx.EXPECT().VehicleByID(gomock.Any(), vid).Return(&domain.Vehicle{ID: vid, Status: domain.VehicleStatusSold}, nil)

		_, _, err := f.service.WinLead(context.Background(), id, crm.WinInput{ClientID: &cid})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("needs exactly one buyer", func(t *testing.T) {
		f := newFixture(t)
		_, _, err := f.service.WinLead(context.Background(), id, crm.WinInput{})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}
