package model

import (
	"time"
)

// Boat types
const (
	BoatTypeOpen      = "open"
	BoatTypeCabin     = "cabin"
	BoatTypeCatamaran = "catamaran"
	BoatTypeSailboat  = "sailboat"
	BoatTypeJetSki    = "jet_ski"
	BoatTypeCanoe     = "canoe"
)

var (
	boatTypes     = []string{BoatTypeOpen, BoatTypeCabin, BoatTypeCatamaran, BoatTypeSailboat, BoatTypeJetSki, BoatTypeCanoe}
	licenseTypes  = []string{"coastal", "river"}
	engineTypes   = []string{"diesel", "gasoline", "none"}
	equipmentKind = []string{"sounder", "livewell", "ladder", "gps", "rod_holder", "vhf_radio"}
)

// Boat represents a vessel owned by a single user
type Boat struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Brand       *string   `json:"brand,omitempty"`
	YearBuilt   *int      `json:"yearBuilt,omitempty"`
	PhotoURL    *string   `json:"photoUrl,omitempty"`
	LicenseType *string   `json:"licenseType,omitempty"`
	BoatType    string    `json:"boatType"`
	Equipment   []string  `json:"equipment"`
	Deposit     Money     `json:"deposit"`
	MaxCapacity int       `json:"maxCapacity"`
	BedCount    *int      `json:"bedCount,omitempty"`
	HomePort    string    `json:"homePort"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	EngineType  *string   `json:"engineType,omitempty"`
	EnginePower *int      `json:"enginePower,omitempty"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Position returns the boat's coordinates, or nil when it has none
func (b *Boat) Position() *Coordinates {
	if b.Latitude == nil || b.Longitude == nil {
		return nil
	}
	return &Coordinates{Lat: *b.Latitude, Lng: *b.Longitude}
}

// CreateBoatRequest is the boat registration payload. The owner is always the caller.
type CreateBoatRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	YearBuilt   *int     `json:"yearBuilt,omitempty"`
	PhotoURL    *string  `json:"photoUrl,omitempty"`
	LicenseType *string  `json:"licenseType,omitempty"`
	BoatType    string   `json:"boatType"`
	Equipment   []string `json:"equipment,omitempty"`
	Deposit     *Money   `json:"deposit,omitempty"`
	MaxCapacity int      `json:"maxCapacity"`
	BedCount    *int     `json:"bedCount,omitempty"`
	HomePort    string   `json:"homePort"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	EngineType  *string  `json:"engineType,omitempty"`
	EnginePower *int     `json:"enginePower,omitempty"`
}

// Validate checks the boat registration payload
func (r *CreateBoatRequest) Validate() []FieldError {
	var errors []FieldError

	errors = required(errors, "name", r.Name)
	errors = enumField(errors, "boatType", r.BoatType, boatTypes...)
	if r.MaxCapacity < 1 {
		errors = append(errors, FieldError{Field: "maxCapacity", Message: "maxCapacity must be at least 1"})
	}
	errors = required(errors, "homePort", r.HomePort)
	errors = validateBoatOptionals(errors, r.LicenseType, r.EngineType, r.Equipment, r.Deposit, r.Latitude, r.Longitude)

	return errors
}

// UpdateBoatRequest is a partial update. Ownership cannot be transferred.
type UpdateBoatRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	YearBuilt   *int     `json:"yearBuilt,omitempty"`
	PhotoURL    *string  `json:"photoUrl,omitempty"`
	LicenseType *string  `json:"licenseType,omitempty"`
	BoatType    *string  `json:"boatType,omitempty"`
	Equipment   []string `json:"equipment,omitempty"`
	Deposit     *Money   `json:"deposit,omitempty"`
	MaxCapacity *int     `json:"maxCapacity,omitempty"`
	BedCount    *int     `json:"bedCount,omitempty"`
	HomePort    *string  `json:"homePort,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	EngineType  *string  `json:"engineType,omitempty"`
	EnginePower *int     `json:"enginePower,omitempty"`
}

// Validate checks the fields that are present
func (r *UpdateBoatRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name != nil {
		errors = required(errors, "name", *r.Name)
	}
	errors = optionalEnum(errors, "boatType", r.BoatType, boatTypes...)
	if r.MaxCapacity != nil && *r.MaxCapacity < 1 {
		errors = append(errors, FieldError{Field: "maxCapacity", Message: "maxCapacity must be at least 1"})
	}
	if r.HomePort != nil {
		errors = required(errors, "homePort", *r.HomePort)
	}
	errors = validateBoatOptionals(errors, r.LicenseType, r.EngineType, r.Equipment, r.Deposit, r.Latitude, r.Longitude)

	return errors
}

// ApplyTo copies the present fields onto b
func (r *UpdateBoatRequest) ApplyTo(b *Boat) {
	if r.Name != nil {
		b.Name = *r.Name
	}
	if r.Description != nil {
		b.Description = r.Description
	}
	if r.Brand != nil {
		b.Brand = r.Brand
	}
	if r.YearBuilt != nil {
		b.YearBuilt = r.YearBuilt
	}
	if r.PhotoURL != nil {
		b.PhotoURL = r.PhotoURL
	}
	if r.LicenseType != nil {
		b.LicenseType = r.LicenseType
	}
	if r.BoatType != nil {
		b.BoatType = *r.BoatType
	}
	if r.Equipment != nil {
		b.Equipment = r.Equipment
	}
	if r.Deposit != nil {
		b.Deposit = *r.Deposit
	}
	if r.MaxCapacity != nil {
		b.MaxCapacity = *r.MaxCapacity
	}
	if r.BedCount != nil {
		b.BedCount = r.BedCount
	}
	if r.HomePort != nil {
		b.HomePort = *r.HomePort
	}
	if r.Latitude != nil && r.Longitude != nil {
		b.Latitude = r.Latitude
		b.Longitude = r.Longitude
	}
	if r.EngineType != nil {
		b.EngineType = r.EngineType
	}
	if r.EnginePower != nil {
		b.EnginePower = r.EnginePower
	}
}

// BoatFilter narrows a boat listing. Box is nil unless all four bounds were supplied.
type BoatFilter struct {
	BoatType    string
	HomePort    string
	MinCapacity *int
	OwnerID     string
	Box         *BoundingBox
}

func validateBoatOptionals(errors []FieldError, licenseType, engineType *string, equipment []string, deposit *Money, lat, lng *float64) []FieldError {
	errors = optionalEnum(errors, "licenseType", licenseType, licenseTypes...)
	errors = optionalEnum(errors, "engineType", engineType, engineTypes...)
	for _, e := range equipment {
		if !oneOf(e, equipmentKind...) {
			errors = append(errors, FieldError{Field: "equipment", Message: "unknown equipment: " + e})
			break
		}
	}
	errors = amountField(errors, "deposit", deposit)
	if (lat == nil) != (lng == nil) {
		errors = append(errors, FieldError{Field: "latitude", Message: "latitude and longitude must be provided together"})
	}
	if lat != nil && (*lat < -90 || *lat > 90) {
		errors = append(errors, FieldError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		errors = append(errors, FieldError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}
	return errors
}
