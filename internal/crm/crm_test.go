package crm_test

import (
	"context"
	"testing"
	"time"

	"midcar/internal/crm"
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
var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	logger.Setup("test")
	m.Run()
}

type counter struct{ n int }

func (c *counter) Invalidate() { c.n++ }

type fixture struct {
	ctrl    *gomock.Controller
	st      *mockstorage.MockStorage
	tx      *mockstorage.MockAllStorage
	cache   *counter
	service crm.CRM
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:  ctrl,
		st:    mockstorage.NewMockStorage(ctrl),
		tx:    mockstorage.NewMockAllStorage(ctrl),
		cache: &counter{},
	}
	f.service = crm.New(f.st, f.cache, func() time.Time { return now })

	return f
}

// expectTx makes WithTx run its callback against f.tx.
func (f *fixture) expectTx() {
	f.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(f.tx)
		},
	)
}

func ptr[T any](v T) *T { return &v }

func TestCRM_SubmitContact(t *testing.T) {
	f := newFixture(t)
	vid := domain.VehicleID(uuid.New())

	f.st.EXPECT().VehicleByID(gomock.Any(), vid).Return(&domain.Vehicle{ID: vid}, nil)
	f.st.EXPECT().StoreContact(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c domain.Contact) (*domain.Contact, error) {
			require.Equal(t, "ana@example.com", c.Email)
			require.Equal(t, domain.SourceWeb, c.Source)
			require.False(t, c.Handled)
			c.ID = domain.ContactID(uuid.New())

			return &c, nil
		})

	c, err := f.service.SubmitContact(context.Background(), crm.ContactInput{
		Name:      " Ana ",
		Email:     " Ana@Example.com",
		Message:   "¿Sigue disponible?",
		VehicleID: &vid,
	})
	require.NoError(t, err)
	require.Equal(t, "Ana", c.Name)
	require.Equal(t, 1, f.cache.n)
}

func TestCRM_SubmitContact_invalid(t *testing.T) {
	vid := domain.VehicleID(uuid.New())
	tests := []struct {
		name  string
		in    crm.ContactInput
		setup func(f *fixture)
	}{
		{name: "no name", in: crm.ContactInput{Email: "a@b.es"}},
		{name: "no email nor phone", in: crm.ContactInput{Name: "Ana"}},
		{name: "bad email", in: crm.ContactInput{Name: "Ana", Email: "not-an-email"}},
		{name: "bad source", in: crm.ContactInput{Name: "Ana", Phone: "600", Source: "FAX"}},
		{
			name: "unknown vehicle",
			in:   crm.ContactInput{Name: "Ana", Phone: "600", VehicleID: &vid},
			setup: func(f *fixture) {
				f.st.EXPECT().VehicleByID(gomock.Any(), vid).Return(nil, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}
			_, err := f.service.SubmitContact(context.Background(), tt.in)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestCRM_MarkHandled(t *testing.T) {
	f := newFixture(t)
	id := domain.ContactID(uuid.New())

	f.st.EXPECT().ContactByID(gomock.Any(), id).Return(&domain.Contact{ID: id}, nil)
	f.st.EXPECT().UpdateContact(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c domain.Contact) (*domain.Contact, error) {
			require.True(t, c.Handled)

			return &c, nil
		})

	c, err := f.service.MarkHandled(context.Background(), id, true)
	require.NoError(t, err)
	require.True(t, c.Handled)

	lid := domain.LeadID(uuid.New())
	f.st.EXPECT().ContactByID(gomock.Any(), id).Return(&domain.Contact{ID: id, Handled: true, LeadID: &lid}, nil)
	_, err = f.service.MarkHandled(context.Background(), id, false)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestCRM_ConvertContact(t *testing.T) {
	f := newFixture(t)
	id := domain.ContactID(uuid.New())
	vid := domain.VehicleID(uuid.New())
	user := domain.UserID(uuid.New())
	lid := domain.LeadID(uuid.New())

	f.expectTx()
	f.tx.EXPECT().ContactByID(gomock.Any(), id).Return(&domain.Contact{
		ID: id, Name: "Luis", Phone: "600111222", Message: "Financiación", VehicleID: &vid, Source: domain.SourcePhone,
	}, nil)
	f.tx.EXPECT().StoreLead(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l domain.Lead) (*domain.Lead, error) {
			require.Equal(t, domain.LeadStatusNew, l.Status)
			require.Equal(t, domain.SourcePhone, l.Source)
			require.Equal(t, &vid, l.VehicleID)
			require.Equal(t, "Financiación", l.Notes)
			require.Equal(t, &user, l.AssignedTo)
			l.ID = lid

			return &l, nil
		})
	f.tx.EXPECT().UpdateContact(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c domain.Contact) (*domain.Contact, error) {
			require.True(t, c.Handled)
			require.Equal(t, lid, *c.LeadID)

			return &c, nil
		})

	lead, err := f.service.ConvertContact(context.Background(), id, &user)
	require.NoError(t, err)
	require.Equal(t, lid, lead.ID)
}

func TestCRM_ConvertContact_twice(t *testing.T) {
	f := newFixture(t)
	id := domain.ContactID(uuid.New())
	lid := domain.LeadID(uuid.New())

	f.expectTx()
	f.tx.EXPECT().ContactByID(gomock.Any(), id).Return(&domain.Contact{ID: id, Name: "Luis", LeadID: &lid}, nil)

	_, err := f.service.ConvertContact(context.Background(), id, nil)
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Zero(t, f.cache.n)
}
