package inventory

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// VINDecodeJobArgs asks the worker to decode the VIN of a vehicle and fill
// its empty fields.
type VINDecodeJobArgs struct {
	// VehicleID is unique so a vehicle never has two pending decodes.
	VehicleID string `json:"vehicle_id" river:"unique"`

	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the decode worker.
func (args VINDecodeJobArgs) Kind() string { return "DecodeVehicleVIN" }

// InsertOpts allows one queued or running decode per vehicle. Completed jobs
// do not block a new decode after the VIN was edited.
func (args VINDecodeJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
