package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"midcar/internal/dashboard"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	mockstorage "midcar/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

//nolint: gochecknoglobals
var now = time.Date(2025, 6, 18, 17, 45, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	logger.Setup("test")
	m.Run()
}

func expectQueries(st *mockstorage.MockStatsStorage, times int) {
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)

	st.EXPECT().VehicleCountsByStatus(gomock.Any()).Times(times).Return(map[domain.VehicleStatus]int64{
		domain.VehicleStatusAvailable: 12,
		domain.VehicleStatusReserved:  2,
		domain.VehicleStatusSold:      40,
	}, nil)
	st.EXPECT().StockValue(gomock.Any()).Times(times).Return(domain.Money(18000000), nil)
	st.EXPECT().AverageDaysInStock(gomock.Any(), now).Times(times).Return(37.5, nil)
	st.EXPECT().VehiclesSoldSince(gomock.Any(), monthStart).Times(times).Return(int64(3), nil)
	st.EXPECT().LeadCountsByStatus(gomock.Any()).Times(times).Return(map[domain.LeadStatus]int64{
		domain.LeadStatusNew:  5,
		domain.LeadStatusWon:  3,
		domain.LeadStatusLost: 9,
	}, nil)
	st.EXPECT().LeadsCreatedSince(gomock.Any(), monthStart).Times(times).Return(int64(7), nil)
	st.EXPECT().UnhandledContactCount(gomock.Any()).Times(times).Return(int64(4), nil)
	st.EXPECT().PoliciesEndingBetween(gomock.Any(), today, today.AddDate(0, 0, 31)).Times(times).Return(int64(6), nil)
	st.EXPECT().RecentSales(gomock.Any(), uint(5)).Times(times).Return(nil, nil)
}

func TestDashboard_Summary(t *testing.T) {
	st := mockstorage.NewMockStatsStorage(gomock.NewController(t))
	expectQueries(st, 1)

	d := dashboard.New(st, time.Minute, func() time.Time { return now })
	s, err := d.Summary(context.Background())
	require.NoError(t, err)

	require.Equal(t, int64(12), s.VehiclesByStatus[domain.VehicleStatusAvailable])
	require.Equal(t, domain.Money(18000000), s.StockValue)
	require.InDelta(t, 37.5, s.AvgDaysInStock, 0.001)
	require.Equal(t, int64(3), s.SoldThisMonth)
	require.Equal(t, int64(7), s.NewLeadsThisMonth)
	require.InDelta(t, 0.25, s.ConversionRate, 0.0001)
	require.Equal(t, int64(4), s.UnhandledContacts)
	require.Equal(t, int64(6), s.ExpiringPolicies)
	require.NotNil(t, s.RecentSales)
	require.Equal(t, now, s.GeneratedAt)

	again, err := d.Summary(context.Background())
	require.NoError(t, err)
	require.Same(t, s, again)
}

func TestDashboard_Invalidate(t *testing.T) {
	st := mockstorage.NewMockStatsStorage(gomock.NewController(t))
	expectQueries(st, 2)

	d := dashboard.New(st, time.Hour, func() time.Time { return now })
	first, err := d.Summary(context.Background())
	require.NoError(t, err)

	d.Invalidate()
	second, err := d.Summary(context.Background())
	require.NoError(t, err)
	require.NotSame(t, first, second)
}

func TestDashboard_noClosedLeads(t *testing.T) {
	st := mockstorage.NewMockStatsStorage(gomock.NewController(t))
	st.EXPECT().VehicleCountsByStatus(gomock.Any()).Return(nil, nil)
	st.EXPECT().StockValue(gomock.Any()).Return(domain.Money(0), nil)
	st.EXPECT().AverageDaysInStock(gomock.Any(), gomock.Any()).Return(0.0, nil)
	st.EXPECT().VehiclesSoldSince(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	st.EXPECT().LeadCountsByStatus(gomock.Any()).Return(map[domain.LeadStatus]int64{domain.LeadStatusNew: 2}, nil)
	st.EXPECT().LeadsCreatedSince(gomock.Any(), gomock.Any()).Return(int64(2), nil)
	st.EXPECT().UnhandledContactCount(gomock.Any()).Return(int64(0), nil)
	st.EXPECT().PoliciesEndingBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	st.EXPECT().RecentSales(gomock.Any(), gomock.Any()).Return(nil, nil)

	s, err := dashboard.New(st, time.Minute, func() time.Time { return now }).Summary(context.Background())
	require.NoError(t, err)
	require.Zero(t, s.ConversionRate)
}

func TestDashboard_errorIsNotCached(t *testing.T) {
	st := mockstorage.NewMockStatsStorage(gomock.NewController(t))
	st.EXPECT().VehicleCountsByStatus(gomock.Any()).Return(nil, errors.New("boom")).AnyTimes()
	st.EXPECT().StockValue(gomock.Any()).Return(domain.Money(0), nil).AnyTimes()
	st.EXPECT().AverageDaysInStock(gomock.Any(), gomock.Any()).Return(0.0, nil).AnyTimes()
	st.EXPECT().VehiclesSoldSince(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	st.EXPECT().LeadCountsByStatus(gomock.Any()).Return(nil, nil).AnyTimes()
	st.EXPECT().LeadsCreatedSince(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	st.EXPECT().UnhandledContactCount(gomock.Any()).Return(int64(0), nil).AnyTimes()
	st.EXPECT().PoliciesEndingBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	st.EXPECT().RecentSales(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	d := dashboard.New(st, time.Minute, func() time.Time { return now })
	_, err := d.Summary(context.Background())
	require.ErrorContains(t, err, "vehicle counts")
	_, err = d.Summary(context.Background())
	require.Error(t, err)
}
