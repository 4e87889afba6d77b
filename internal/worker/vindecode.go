package worker

import (
	"context"
	"errors"
	"fmt"
	"midcar/internal/inventory"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	"midcar/pkg/serrors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// rateLimitPause is how long every decode job waits after the provider
// rate limited one of them.
const rateLimitPause = time.Minute

// VINDecodeWorker fills the empty fields of a vehicle from its decoded VIN.
//
// Jobs for unknown VINs, deleted vehicles or vehicles without a VIN are
// canceled since retrying cannot help. When the provider rate limits a
// request, the whole worker pauses: the job is snoozed and every job started
// during the pause is snoozed until it ends, instead of hitting the provider.
// Other errors are returned so River retries with backoff.
type VINDecodeWorker struct {
	river.WorkerDefaults[inventory.VINDecodeJobArgs]

	inventory inventory.Inventory
	now       func() time.Time

	// mu guards pausedUntil.
	mu          sync.Mutex
	pausedUntil time.Time
}

// NewVINDecodeWorker constructs a VINDecodeWorker applying decodes through inv.
func NewVINDecodeWorker(inv inventory.Inventory) *VINDecodeWorker {
	return &VINDecodeWorker{inventory: inv, now: time.Now}
}

func (w *VINDecodeWorker) pause() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.pausedUntil.Sub(w.now())
}

func (w *VINDecodeWorker) rateLimited() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	until := w.now().Add(rateLimitPause)
	if until.After(w.pausedUntil) {
		w.pausedUntil = until
	}

	return w.pausedUntil.Sub(w.now())
}

// Work applies the decode of one vehicle and maps errors to River actions.
func (w *VINDecodeWorker) Work(ctx context.Context, job *river.Job[inventory.VINDecodeJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("vehicleID", job.Args.VehicleID))

	id, err := uuid.Parse(job.Args.VehicleID)
	if err != nil {
		return river.JobCancel(fmt.Errorf("invalid vehicle id: %w", err)) //nolint: wrapcheck
	}

	if d := w.pause(); d > 0 {
		logger.Debug(ctx, "vin decoding paused", zap.Duration("for", d))

		return river.JobSnooze(d) //nolint: wrapcheck
	}

	v, err := w.inventory.ApplyVINDecode(ctx, domain.VehicleID(id))
	if err != nil {
		switch {
		case errors.Is(err, serrors.ErrNotFound), errors.Is(err, serrors.ErrBadRequest):
			logger.Warn(ctx, "vin decode canceled", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrRateLimited):
			d := w.rateLimited()
			logger.Warn(ctx, "vin provider rate limited", zap.Duration("pause", d))

			return river.JobSnooze(d) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in decoding vin", zap.Error(err))

		return fmt.Errorf("could not decode vin: %w", err)
	}

	logger.Info(ctx, "vin decoded successfully", zap.String("vin", v.VIN))

	return nil
}
