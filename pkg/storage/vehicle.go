package storage

import (
	"context"
	"midcar/pkg/domain"
)

// VehicleSort selects the ordering of a vehicle list.
type VehicleSort string

const (
	VehicleSortNewest     VehicleSort = "newest"
	VehicleSortPriceAsc   VehicleSort = "price_asc"
	VehicleSortPriceDesc  VehicleSort = "price_desc"
	VehicleSortMileageAsc VehicleSort = "mileage_asc"
	VehicleSortYearDesc   VehicleSort = "year_desc"
)

// Valid reports whether s is a known sort. The empty value means newest first.
func (s VehicleSort) Valid() bool {
	switch s {
	case "", VehicleSortNewest, VehicleSortPriceAsc, VehicleSortPriceDesc, VehicleSortMileageAsc, VehicleSortYearDesc:
		return true
	}

	return false
}

// VehicleFilter narrows a vehicle list. Zero values disable the corresponding
// condition. Soft-deleted vehicles are never returned.
type VehicleFilter struct {
	// Statuses keeps vehicles in any of the given statuses.
	Statuses []domain.VehicleStatus
	// Make matches the make case-insensitively.
	Make     string
	FuelType domain.FuelType
	MinPrice domain.Money
	MaxPrice domain.Money
	MinYear  int
	MaxYear  int
	// Search is a case-insensitive substring matched against make, model,
	// version, VIN and license plate.
	Search string
	// PublicSearch limits Search to make, model and version.
	PublicSearch bool
	Featured     *bool
	Sort         VehicleSort

	Page
}

// VehicleStorage defines persistence of inventory vehicles.
type VehicleStorage interface {
	// StoreVehicle inserts a vehicle and returns the stored row. A duplicate
	// VIN or plate among non-deleted vehicles yields ErrDuplicate.
	StoreVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error)
	// UpdateVehicle overwrites all editable columns of a vehicle and returns the
	// updated row, or nil when the vehicle does not exist or was deleted.
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error)
	// VehicleByID returns a non-deleted vehicle without photos, or nil.
	VehicleByID(ctx context.Context, ID domain.VehicleID) (*domain.Vehicle, error)
	// Vehicles returns a filtered page of vehicles without photos.
	Vehicles(ctx context.Context, filter VehicleFilter) (List[domain.Vehicle], error)
	// DeleteVehicle soft-deletes a vehicle and returns it, or nil if not found.
	DeleteVehicle(ctx context.Context, ID domain.VehicleID) (*domain.Vehicle, error)
	// VehiclesByPlates returns non-deleted vehicles whose normalized plate is in plates.
	VehiclesByPlates(ctx context.Context, plates []string) ([]domain.Vehicle, error)
}

// PhotoStorage defines persistence of vehicle photo metadata. Binary content
// lives in the photo store.
type PhotoStorage interface {
	// StorePhoto inserts a photo at the next free position of its vehicle.
	StorePhoto(ctx context.Context, photo domain.VehiclePhoto) (*domain.VehiclePhoto, error)
	// PhotosByVehicles returns the photos of the given vehicles ordered by vehicle and position.
	PhotosByVehicles(ctx context.Context, vehicleIDs []domain.VehicleID) ([]domain.VehiclePhoto, error)
	// DeletePhoto removes a photo of a vehicle and returns it, or nil if not found.
	DeletePhoto(ctx context.Context, vehicleID domain.VehicleID, ID domain.PhotoID) (*domain.VehiclePhoto, error)
	// SetPhotoPositions assigns positions 0..n-1 following the given order.
	SetPhotoPositions(ctx context.Context, vehicleID domain.VehicleID, ordered []domain.PhotoID) error
}
