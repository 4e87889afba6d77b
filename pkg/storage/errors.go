package storage

import "errors"

//nolint: gochecknoglobals
var (
	// ErrDuplicate reports a unique constraint violation, such as a second
	// vehicle with the same VIN or plate, or a reused post slug.
	ErrDuplicate = errors.New("duplicate record")

	// ErrAlreadyInTx is returned by Begin on a handle that is already a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
)
