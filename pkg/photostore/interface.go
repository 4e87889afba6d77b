// Package photostore defines the object storage used for vehicle photos.
package photostore

import (
	"context"
	"io"
	"midcar/pkg/domain"
	"path"

	"github.com/segmentio/ksuid"
)

// Store persists binary objects and exposes them under a public URL.
//
//go:generate mockgen -package mockphotostore -source=interface.go -destination=mock/mockphotostore.go *
type Store interface {
	// Put uploads body under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	// Delete removes the object stored under key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}

// PhotoKey builds a new, time-sortable object key for a photo of vehicleID.
// ext must include the leading dot.
func PhotoKey(vehicleID domain.VehicleID, ext string) string {
	return path.Join("vehicles", vehicleID.String(), ksuid.New().String()+ext)
}
