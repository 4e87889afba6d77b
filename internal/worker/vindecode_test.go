package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"midcar/internal/inventory"
	mockinventory "midcar/internal/inventory/mock"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	"midcar/pkg/serrors"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	goleak.VerifyTestMain(m)
}

func makeJob(id int64, vehicleID string) *river.Job[inventory.VINDecodeJobArgs] {
	return &river.Job[inventory.VINDecodeJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   inventory.VINDecodeJobArgs{VehicleID: vehicleID},
	}
}

func newWorker(t *testing.T) (*mockinventory.MockInventory, *VINDecodeWorker, *time.Time) {
	t.Helper()

	mock := mockinventory.NewMockInventory(gomock.NewController(t))
	w := NewVINDecodeWorker(mock)
	clock := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return clock }

	return mock, w, &clock
}

func TestVINDecodeWorker_Work_Success(t *testing.T) {
	mock, w, _ := newWorker(t)
	id := uuid.New()

	mock.EXPECT().ApplyVINDecode(gomock.Any(), domain.VehicleID(id)).
		Return(&domain.Vehicle{ID: domain.VehicleID(id), VIN: "VSSZZZ5FZJR000001"}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, id.String())))
}

func TestVINDecodeWorker_Work_Cancels(t *testing.T) {
	for name, err := range map[string]error{
		"unknown vin":     serrors.With(serrors.ErrNotFound, "nothing decoded"),
		"vehicle deleted": serrors.With(serrors.ErrNotFound, "vehicle not found"),
		"no vin":          serrors.With(serrors.ErrBadRequest, "vehicle has no vin"),
	} {
		t.Run(name, func(t *testing.T) {
			mock, w, _ := newWorker(t)
			mock.EXPECT().ApplyVINDecode(gomock.Any(), gomock.Any()).Return(nil, err)

			werr := w.Work(context.Background(), makeJob(2, uuid.NewString()))
			var cancelErr *river.JobCancelError
			require.ErrorAs(t, werr, &cancelErr)
		})
	}

	t.Run("malformed vehicle id", func(t *testing.T) {
		_, w, _ := newWorker(t)
		var cancelErr *river.JobCancelError
		require.ErrorAs(t, w.Work(context.Background(), makeJob(3, "nope")), &cancelErr)
	})
}

func TestVINDecodeWorker_Work_RetriesTransientErrors(t *testing.T) {
	mock, w, _ := newWorker(t)
	mock.EXPECT().ApplyVINDecode(gomock.Any(), gomock.Any()).
		Return(nil, serrors.Wrap(serrors.ErrUnavailable, errors.New("502"), "provider down"))

	err := w.Work(context.Background(), makeJob(4, uuid.NewString()))
	require.ErrorIs(t, err, serrors.ErrUnavailable)

	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}

func TestVINDecodeWorker_Work_RateLimitPausesAllJobs(t *testing.T) {
	mock, w, clock := newWorker(t)
	mock.EXPECT().ApplyVINDecode(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrRateLimited, "429"))

	err := w.Work(context.Background(), makeJob(5, uuid.NewString()))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, rateLimitPause, snoozeErr.Duration)

	// a job started during the pause is snoozed without calling the provider
	*clock = clock.Add(20 * time.Second)
	err = w.Work(context.Background(), makeJob(6, uuid.NewString()))
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, 40*time.Second, snoozeErr.Duration)

	// after the pause jobs run again
	*clock = clock.Add(time.Minute)
	mock.EXPECT().ApplyVINDecode(gomock.Any(), gomock.Any()).Return(&domain.Vehicle{}, nil)
	require.NoError(t, w.Work(context.Background(), makeJob(7, uuid.NewString())))
}
