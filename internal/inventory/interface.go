// Package inventory implements the vehicle stock: CRUD, status changes, VIN
// decoding, photos and PDF exports.
package inventory

import (
	"context"
	"io"
	"midcar/pkg/domain"
	"midcar/pkg/storage"
	"midcar/pkg/vindecoder"
)

// VehicleInput carries the editable fields of a vehicle. Nil fields are left
// untouched on update and take their zero value on create.
type VehicleInput struct {
	VIN           *string
	LicensePlate  *string
	Make          *string
	Model         *string
	Version       *string
	Year          *int
	MileageKm     *int
	FuelType      *domain.FuelType
	Transmission  *domain.Transmission
	BodyType      *string
	Color         *string
	Doors         *int
	EngineCC      *int
	PowerHP       *int
	Price         *domain.Money
	PurchasePrice *domain.Money
	Description   *string
	Featured      *bool
	// Status is only honored on create; use SetStatus afterwards.
	Status *domain.VehicleStatus
}

// Invalidator is notified whenever inventory data changes.
type Invalidator interface {
	Invalidate()
}

//go:generate mockgen -package mockinventory -source=interface.go -destination=mock/mockinventory.go *
type Inventory interface {
	Create(ctx context.Context, in VehicleInput) (*domain.Vehicle, error)
	Update(ctx context.Context, ID domain.VehicleID, in VehicleInput) (*domain.Vehicle, error)
	Get(ctx context.Context, ID domain.VehicleID) (*domain.Vehicle, error)
	List(ctx context.Context, filter storage.VehicleFilter) (storage.List[domain.Vehicle], error)
	Delete(ctx context.Context, ID domain.VehicleID) error
	SetStatus(ctx context.Context, ID domain.VehicleID, status domain.VehicleStatus, force bool) (*domain.Vehicle, error)

	DecodeVIN(ctx context.Context, vin string) (*vindecoder.Decoded, error)
	EnqueueVINDecode(ctx context.Context, ID domain.VehicleID) (bool, error)
	ApplyVINDecode(ctx context.Context, ID domain.VehicleID) (*domain.Vehicle, error)

	UploadPhoto(ctx context.Context, ID domain.VehicleID, body io.Reader) (*domain.VehiclePhoto, error)
	DeletePhoto(ctx context.Context, ID domain.VehicleID, photoID domain.PhotoID) error
	ReorderPhotos(ctx context.Context, ID domain.VehicleID, ordered []domain.PhotoID) ([]domain.VehiclePhoto, error)

	ExportSheetPDF(ctx context.Context, ID domain.VehicleID, w io.Writer) error
	ExportInventoryPDF(ctx context.Context, filter storage.VehicleFilter, w io.Writer) error
}
