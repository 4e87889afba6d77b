// Package vindecoder defines the VIN decoding abstraction used by the
// inventory to prefill vehicle data.
package vindecoder

import (
	"context"
	"midcar/pkg/domain"
)

// Decoded holds the vehicle attributes recovered from a VIN. Zero values mean
// the provider did not report the attribute.
type Decoded struct {
	VIN          string              `json:"vin"`
	Make         string              `json:"make"`
	Model        string              `json:"model"`
	Version      string              `json:"version"`
	Year         int                 `json:"year"`
	FuelType     domain.FuelType     `json:"fuelType"`
	Transmission domain.Transmission `json:"transmission"`
	BodyType     string              `json:"bodyType"`
	Doors        int                 `json:"doors"`
	EngineCC     int                 `json:"engineCc"`
	PowerHP      int                 `json:"powerHp"`
	// Partial is set when the provider flagged decode errors but still
	// returned usable data.
	Partial bool `json:"partial"`
	// Note carries the provider error text of a partial decode.
	Note string `json:"note,omitempty"`
}

// Client decodes VINs.
//
//go:generate mockgen -package mockvindecoder -source=interface.go -destination=mock/mockvindecoder.go *
type Client interface {
	// Decode returns the attributes of vin. It fails with serrors.ErrBadRequest
	// for malformed VINs and serrors.ErrNotFound when nothing could be decoded.
	Decode(ctx context.Context, vin string) (*Decoded, error)
}
