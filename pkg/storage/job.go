package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background work such as VIN decoding.
type JobStorage interface {
	// AddJob inserts the job in the handle's transaction when there is one, so
	// a job for a vehicle is only visible once the vehicle row is. It returns
	// false when a unique job with the same args is already pending.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
