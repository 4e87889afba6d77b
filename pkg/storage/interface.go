// Package storage declares the persistence contracts of the dealership
// backend. Services only see these interfaces; pkg/storage/postgres is the
// implementation.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is everything a service may read or write, inside or outside a
// transaction.
type AllStorage interface {
	VehicleStorage
	PhotoStorage
	ContactStorage
	LeadStorage
	ClientStorage
	PolicyStorage
	BlogStorage
	ContentStorage
	StatsStorage
	JobStorage
}

// TxStorage is a handle bound to one open transaction. It must not be used
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the pooled handle the services are built with.
type Storage interface {
	AllStorage

	Close() error

	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil.
	// Multi-row writes such as winning a lead or importing a policy sheet go
	// through here so a failure leaves no partial state.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
