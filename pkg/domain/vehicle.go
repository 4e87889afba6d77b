package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VehicleID uniquely identifies a vehicle in the inventory.
type VehicleID uuid.UUID

func (id VehicleID) String() string { return uuid.UUID(id).String() }

// PhotoID uniquely identifies a vehicle photo.
type PhotoID uuid.UUID

func (id PhotoID) String() string { return uuid.UUID(id).String() }

// VehicleStatus represents the commercial state of a vehicle.
type VehicleStatus string

const (
	// VehicleStatusAvailable is a vehicle on sale.
	VehicleStatusAvailable VehicleStatus = "AVAILABLE"
	// VehicleStatusReserved is a vehicle held for a customer.
	VehicleStatusReserved VehicleStatus = "RESERVED"
	// VehicleStatusSold is a vehicle that left the stock.
	VehicleStatusSold VehicleStatus = "SOLD"
)

// Valid reports whether s is a known vehicle status.
func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusReserved, VehicleStatusSold:
		return true
	}

	return false
}

// FuelType is the primary fuel of a vehicle.
type FuelType string

const (
	FuelGasoline FuelType = "GASOLINE"
	FuelDiesel   FuelType = "DIESEL"
	FuelElectric FuelType = "ELECTRIC"
	FuelHybrid   FuelType = "HYBRID"
	FuelLPG      FuelType = "LPG"
	FuelOther    FuelType = "OTHER"
)

// Valid reports whether f is a known fuel type. The empty value is accepted
// as "unknown".
func (f FuelType) Valid() bool {
	switch f {
	case "", FuelGasoline, FuelDiesel, FuelElectric, FuelHybrid, FuelLPG, FuelOther:
		return true
	}

	return false
}

// Transmission is the gearbox type of a vehicle.
type Transmission string

const (
	TransmissionManual    Transmission = "MANUAL"
	TransmissionAutomatic Transmission = "AUTOMATIC"
)

// Valid reports whether t is a known transmission. The empty value is
// accepted as "unknown".
func (t Transmission) Valid() bool {
	return t == "" || t == TransmissionManual || t == TransmissionAutomatic
}

// Money is an amount in euro cents.
type Money int64

// Euros returns the amount as a floating point number of euros.
func (m Money) Euros() float64 { return float64(m) / 100 }

// String formats the amount the way it is printed on vehicle sheets,
// e.g. "12.345,50 €".
func (m Money) String() string {
	neg := m < 0
	if neg {
		m = -m
	}
	euros := int64(m) / 100
	cents := int64(m) % 100

	digits := fmt.Sprintf("%d", euros)
	var grouped []byte
	for i := range len(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, digits[i])
	}

	sign := ""
	if neg {
		sign = "-"
	}

	return fmt.Sprintf("%s%s,%02d €", sign, grouped, cents)
}

// Vehicle is a car in the dealership inventory.
type Vehicle struct {
	ID VehicleID `json:"id"`

	VIN          string `json:"vin"`
	LicensePlate string `json:"licensePlate"`

	Make         string       `json:"make"`
	Model        string       `json:"model"`
	Version      string       `json:"version"`
	Year         int          `json:"year"`
	MileageKm    int          `json:"mileageKm"`
	FuelType     FuelType     `json:"fuelType"`
	Transmission Transmission `json:"transmission"`
	BodyType     string       `json:"bodyType"`
	Color        string       `json:"color"`
	Doors        int          `json:"doors"`
	EngineCC     int          `json:"engineCc"`
	PowerHP      int          `json:"powerHp"`

	Price         Money `json:"price"`
	PurchasePrice Money `json:"purchasePrice"`

	Status      VehicleStatus `json:"status"`
	Description string        `json:"description"`
	Featured    bool          `json:"featured"`

	Photos []VehiclePhoto `json:"photos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	SoldAt    time.Time `json:"soldAt,omitzero"`
	DeletedAt time.Time `json:"-"`
}

// Title returns the human readable name of the vehicle, e.g. "Seat Leon 1.5 TSI".
func (v *Vehicle) Title() string {
	title := v.Make
	if v.Model != "" {
		title += " " + v.Model
	}
	if v.Version != "" {
		title += " " + v.Version
	}

	return title
}

// VehiclePhoto is an image attached to a vehicle. Photos are ordered by Position.
type VehiclePhoto struct {
	ID          PhotoID   `json:"id"`
	VehicleID   VehicleID `json:"vehicleId"`
	ObjectKey   string    `json:"-"`
	URL         string    `json:"url"`
	ContentType string    `json:"contentType"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
}
