package inventory

import (
	"context"
	"errors"
	"fmt"
	"midcar/internal/config"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	"midcar/pkg/photostore"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"
	"midcar/pkg/vindecoder"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Options configure the inventory service.
type Options struct {
	// VINMaxAttempts is the number of attempts of a VIN decode job.
	VINMaxAttempts int
	// MaxPhotoBytes is the largest accepted photo upload.
	MaxPhotoBytes int64
	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		VINMaxAttempts: cfg.Worker.VINMaxAttempts,
		MaxPhotoBytes:  cfg.Photos.MaxBytes,
	}
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate() {}

type inventory struct {
	options     Options
	storage     storage.Storage
	vin         vindecoder.Client
	photos      photostore.Store
	invalidator Invalidator
}

// New creates an Inventory. invalidator may be nil.
func New(storage storage.Storage,
	vin vindecoder.Client,
	photos photostore.Store,
	invalidator Invalidator,
	options Options) Inventory {
	if options.Now == nil {
		options.Now = time.Now
	}
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}

	return &inventory{
		options:     options,
		storage:     storage,
		vin:         vin,
		photos:      photos,
		invalidator: invalidator,
	}
}

func notFound(id domain.VehicleID) error {
	return serrors.With(serrors.ErrNotFound, "vehicle %s not found", id)
}

// apply copies the set fields of in onto v, normalizing identifiers.
func (in VehicleInput) apply(v *domain.Vehicle) error {
	if in.VIN != nil {
		v.VIN = ""
		if strings.TrimSpace(*in.VIN) != "" {
			vin, err := vindecoder.ValidateVIN(*in.VIN)
			if err != nil {
				return err //nolint: wrapcheck
			}
			v.VIN = vin
		}
	}
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	if in.LicensePlate != nil {
		v.LicensePlate = domain.NormalizePlate(*in.LicensePlate)
	}
	setString(&v.Make, in.Make)
	setString(&v.Model, in.Model)
	setString(&v.Version, in.Version)
	setString(&v.BodyType, in.BodyType)
	setString(&v.Color, in.Color)
	setString(&v.Description, in.Description)
	setInt(&v.Year, in.Year)
	setInt(&v.MileageKm, in.MileageKm)
	setInt(&v.Doors, in.Doors)
	setInt(&v.EngineCC, in.EngineCC)
	setInt(&v.PowerHP, in.PowerHP)
	if in.FuelType != nil {
		v.FuelType = *in.FuelType
	}
	if in.Transmission != nil {
		v.Transmission = *in.Transmission
	}
	if in.Price != nil {
		v.Price = *in.Price
	}
	if in.PurchasePrice != nil {
		v.PurchasePrice = *in.PurchasePrice
	}
	if in.Featured != nil {
		v.Featured = *in.Featured
	}

	return nil
}

func (s *inventory) validate(v *domain.Vehicle) error {
	switch {
	case v.Make == "" && v.VIN == "":
		return serrors.With(serrors.ErrBadRequest, "make is required unless a vin is given")
	case !v.FuelType.Valid():
		return serrors.With(serrors.ErrBadRequest, "invalid fuel type %q", v.FuelType)
	case !v.Transmission.Valid():
		return serrors.With(serrors.ErrBadRequest, "invalid transmission %q", v.Transmission)
	case !v.Status.Valid():
		return serrors.With(serrors.ErrBadRequest, "invalid status %q", v.Status)
	case v.Price < 0 || v.PurchasePrice < 0:
		return serrors.With(serrors.ErrBadRequest, "prices cannot be negative")
	case v.MileageKm < 0 || v.Doors < 0 || v.EngineCC < 0 || v.PowerHP < 0:
		return serrors.With(serrors.ErrBadRequest, "numeric fields cannot be negative")
	case v.Year != 0 && (v.Year < 1900 || v.Year > s.options.Now().Year()+1):
		return serrors.With(serrors.ErrBadRequest, "invalid year %d", v.Year)
	}

	return nil
}

func writeErr(err error, action string) error {
	if errors.Is(err, storage.ErrDuplicate) {
		return serrors.Wrap(serrors.ErrConflict, err, "another vehicle has the same vin or plate")
	}

	return fmt.Errorf("could not %s vehicle: %w", action, err)
}

// Create stores a new vehicle. When a VIN is given a decode job is queued in
// the same transaction so empty fields get filled in the background.
func (s *inventory) Create(ctx context.Context, in VehicleInput) (*domain.Vehicle, error) {
	v := domain.Vehicle{Status: domain.VehicleStatusAvailable}
	if in.Status != nil {
		v.Status = *in.Status
	}
	if err := in.apply(&v); err != nil {
		return nil, err
	}
	if err := s.validate(&v); err != nil {
		return nil, err
	}
	if v.Status == domain.VehicleStatusSold {
		v.SoldAt = s.options.Now()
	}

	var created *domain.Vehicle
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		created, err = tx.StoreVehicle(ctx, v)
		if err != nil {
			return writeErr(err, "store")
		}
		if created.VIN == "" {
			return nil
		}
		if _, err := tx.AddJob(ctx, s.decodeJob(created.ID), nil); err != nil {
			return fmt.Errorf("could not add vin decode job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	s.invalidator.Invalidate()
	logger.Info(ctx, "vehicle created", zap.Stringer("vehicleID", created.ID), zap.String("vin", created.VIN))

	return created, nil
}

func (s *inventory) decodeJob(id domain.VehicleID) VINDecodeJobArgs {
	return VINDecodeJobArgs{VehicleID: id.String(), maxAttempts: s.options.VINMaxAttempts}
}

func (s *inventory) load(ctx context.Context, id domain.VehicleID) (*domain.Vehicle, error) {
	v, err := s.storage.VehicleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get vehicle: %w", err)
	}
	if v == nil {
		return nil, notFound(id)
	}

	return v, nil
}

func (s *inventory) Update(ctx context.Context, id domain.VehicleID, in VehicleInput) (*domain.Vehicle, error) {
	v, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.apply(v); err != nil {
		return nil, err
	}
	if err := s.validate(v); err != nil {
		return nil, err
	}

	updated, err := s.storage.UpdateVehicle(ctx, *v)
	if err != nil {
		return nil, writeErr(err, "update")
	}
	if updated == nil {
		return nil, notFound(id)
	}
	s.invalidator.Invalidate()

	return s.withPhotos(ctx, updated)
}

func (s *inventory) withPhotos(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	photos, err := s.storage.PhotosByVehicles(ctx, []domain.VehicleID{v.ID})
	if err != nil {
		return nil, fmt.Errorf("could not get photos: %w", err)
	}
	v.Photos = photos

	return v, nil
}

func (s *inventory) Get(ctx context.Context, id domain.VehicleID) (*domain.Vehicle, error) {
	v, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.withPhotos(ctx, v)
}

// List returns a page of vehicles with their photos attached.
func (s *inventory) List(ctx context.Context, filter storage.VehicleFilter) (storage.List[domain.Vehicle], error) {
	if !filter.Sort.Valid() {
		return storage.List[domain.Vehicle]{}, serrors.With(serrors.ErrBadRequest, "invalid sort %q", filter.Sort)
	}
	for _, st := range filter.Statuses {
		if !st.Valid() {
			return storage.List[domain.Vehicle]{}, serrors.With(serrors.ErrBadRequest, "invalid status %q", st)
		}
	}

	list, err := s.storage.Vehicles(ctx, filter)
	if err != nil {
		return storage.List[domain.Vehicle]{}, fmt.Errorf("could not list vehicles: %w", err)
	}
	if len(list.Items) == 0 {
		return list, nil
	}

	ids := make([]domain.VehicleID, 0, len(list.Items))
	for _, v := range list.Items {
		ids = append(ids, v.ID)
	}
	photos, err := s.storage.PhotosByVehicles(ctx, ids)
	if err != nil {
		return storage.List[domain.Vehicle]{}, fmt.Errorf("could not get photos: %w", err)
	}
	byVehicle := make(map[domain.VehicleID][]domain.VehiclePhoto, len(ids))
	for _, p := range photos {
		byVehicle[p.VehicleID] = append(byVehicle[p.VehicleID], p)
	}
	for i := range list.Items {
		list.Items[i].Photos = byVehicle[list.Items[i].ID]
	}

	return list, nil
}

// Delete soft-deletes a vehicle. Its photos stay in the store so the record
// can be restored manually.
func (s *inventory) Delete(ctx context.Context, id domain.VehicleID) error {
	v, err := s.storage.DeleteVehicle(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete vehicle: %w", err)
	}
	if v == nil {
		return notFound(id)
	}
	s.invalidator.Invalidate()

	return nil
}

// SetStatus moves a vehicle to status. Selling stamps sold_at; a sold vehicle
// only goes back to stock when force is set, which clears sold_at.
func (s *inventory) SetStatus(ctx context.Context,
	id domain.VehicleID,
	status domain.VehicleStatus,
	force bool) (*domain.Vehicle, error) {
	if !status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid status %q", status)
	}

	v, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Status == status {
		return s.withPhotos(ctx, v)
	}
	if v.Status == domain.VehicleStatusSold && !force {
		return nil, serrors.With(serrors.ErrConflict, "vehicle %s is sold; use force to put it back in stock", id)
	}

	v.Status = status
	if status == domain.VehicleStatusSold {
		v.SoldAt = s.options.Now()
	} else {
		v.SoldAt = time.Time{}
	}

	updated, err := s.storage.UpdateVehicle(ctx, *v)
	if err != nil {
		return nil, writeErr(err, "update")
	}
	if updated == nil {
		return nil, notFound(id)
	}
	s.invalidator.Invalidate()
	logger.Info(ctx, "vehicle status changed",
		zap.Stringer("vehicleID", id),
		zap.String("status", string(status)),
		zap.Bool("force", force))

	return s.withPhotos(ctx, updated)
}
