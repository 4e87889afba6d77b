package inventory

import (
	"context"
	"fmt"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	"midcar/pkg/serrors"
	"midcar/pkg/vindecoder"

	"go.uber.org/zap"
)

// DecodeVIN previews the decode of vin without touching any vehicle.
func (s *inventory) DecodeVIN(ctx context.Context, vin string) (*vindecoder.Decoded, error) {
	decoded, err := s.vin.Decode(ctx, vin)
	if err != nil {
		return nil, fmt.Errorf("could not decode vin: %w", err)
	}

	return decoded, nil
}

// EnqueueVINDecode queues a background decode for a vehicle. It reports false
// when a decode for the same vehicle is already pending.
func (s *inventory) EnqueueVINDecode(ctx context.Context, id domain.VehicleID) (bool, error) {
	v, err := s.load(ctx, id)
	if err != nil {
		return false, err
	}
	if v.VIN == "" {
		return false, serrors.With(serrors.ErrBadRequest, "vehicle %s has no vin", id)
	}

	added, err := s.storage.AddJob(ctx, s.decodeJob(id), nil)
	if err != nil {
		return false, fmt.Errorf("could not add vin decode job: %w", err)
	}

	return added, nil
}

// ApplyVINDecode decodes the VIN of a vehicle and copies the result into the
// fields that are still empty. Data typed in by staff is never overwritten.
func (s *inventory) ApplyVINDecode(ctx context.Context, id domain.VehicleID) (*domain.Vehicle, error) {
	v, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.VIN == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "vehicle %s has no vin", id)
	}

	decoded, err := s.vin.Decode(ctx, v.VIN)
	if err != nil {
		return nil, fmt.Errorf("could not decode vin %s: %w", v.VIN, err)
	}

	changed := fillEmpty(v, decoded)
	if changed == 0 {
		return v, nil
	}

	updated, err := s.storage.UpdateVehicle(ctx, *v)
	if err != nil {
		return nil, writeErr(err, "update")
	}
	if updated == nil {
		return nil, notFound(id)
	}
	s.invalidator.Invalidate()
	logger.Info(ctx, "vin decode applied",
		zap.Stringer("vehicleID", id),
		zap.Int("fields", changed),
		zap.Bool("partial", decoded.Partial))

	return updated, nil
}

// fillEmpty copies decoded values into empty fields and returns how many
// fields changed.
func fillEmpty(v *domain.Vehicle, d *vindecoder.Decoded) int {
	n := 0
	str := func(dst *string, src string) {
		if *dst == "" && src != "" {
			*dst = src
			n++
		}
	}
	num := func(dst *int, src int) {
		if *dst == 0 && src != 0 {
			*dst = src
			n++
		}
	}

	str(&v.Make, d.Make)
	str(&v.Model, d.Model)
	str(&v.Version, d.Version)
	str(&v.BodyType, d.BodyType)
	num(&v.Year, d.Year)
	num(&v.Doors, d.Doors)
	num(&v.EngineCC, d.EngineCC)
	num(&v.PowerHP, d.PowerHP)
	if v.FuelType == "" && d.FuelType != "" {
		v.FuelType = d.FuelType
		n++
	}
	if v.Transmission == "" && d.Transmission != "" {
		v.Transmission = d.Transmission
		n++
	}

	return n
}
