package model

import (
	"time"
)

// Trip types
const (
	TripTypeDaily     = "daily"
	TripTypeRecurring = "recurring"
)

// Pricing types. Informational only: a booking is always charged price × seats.
const (
	PricingTotal     = "total"
	PricingPerPerson = "per_person"
)

// Trip is a fishing outing organized on one of the organizer's boats
type Trip struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	PracticalInfo  *string   `json:"practicalInfo,omitempty"`
	TripType       string    `json:"tripType"`
	PricingType    string    `json:"pricingType"`
	StartDates     []string  `json:"startDates"`
	EndDates       []string  `json:"endDates"`
	StartTimes     []string  `json:"startTimes"`
	EndTimes       []string  `json:"endTimes"`
	PassengerCount int       `json:"passengerCount"`
	Price          Money     `json:"price"`
	OrganizerID    string    `json:"organizerId"`
	BoatID         string    `json:"boatId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// StartsOnOrAfter reports whether any of the trip's start dates is on or after date (DateLayout)
func (t *Trip) StartsOnOrAfter(date string) bool {
	for _, d := range t.StartDates {
		if d >= date {
			return true
		}
	}
	return false
}

// CreateTripRequest is the trip publication payload. The organizer is always the caller.
type CreateTripRequest struct {
	Title          string   `json:"title"`
	PracticalInfo  *string  `json:"practicalInfo,omitempty"`
	TripType       string   `json:"tripType"`
	PricingType    string   `json:"pricingType"`
	StartDates     []string `json:"startDates,omitempty"`
	EndDates       []string `json:"endDates,omitempty"`
	StartTimes     []string `json:"startTimes,omitempty"`
	EndTimes       []string `json:"endTimes,omitempty"`
	PassengerCount int      `json:"passengerCount"`
	Price          *Money   `json:"price"`
	BoatID         string   `json:"boatId"`
}

// Validate checks the trip publication payload
func (r *CreateTripRequest) Validate() []FieldError {
	var errors []FieldError

	errors = required(errors, "title", r.Title)
	errors = enumField(errors, "tripType", r.TripType, TripTypeDaily, TripTypeRecurring)
	errors = enumField(errors, "pricingType", r.PricingType, PricingTotal, PricingPerPerson)
	errors = validateSchedule(errors, r.StartDates, r.EndDates, r.StartTimes, r.EndTimes)
	if r.PassengerCount < 1 {
		errors = append(errors, FieldError{Field: "passengerCount", Message: "passengerCount must be at least 1"})
	}
	if r.Price == nil {
		errors = append(errors, FieldError{Field: "price", Message: "price is required"})
	}
	errors = amountField(errors, "price", r.Price)
	errors = required(errors, "boatId", r.BoatID)

	return errors
}

// NormalizedStartDates returns StartDates in DateLayout
func (r *CreateTripRequest) NormalizedStartDates() []string { return normalizeDates(r.StartDates) }

// NormalizedEndDates returns EndDates in DateLayout
func (r *CreateTripRequest) NormalizedEndDates() []string { return normalizeDates(r.EndDates) }

// UpdateTripRequest is a partial update. Boat and organizer cannot be changed.
type UpdateTripRequest struct {
	Title          *string  `json:"title,omitempty"`
	PracticalInfo  *string  `json:"practicalInfo,omitempty"`
	TripType       *string  `json:"tripType,omitempty"`
	PricingType    *string  `json:"pricingType,omitempty"`
	StartDates     []string `json:"startDates,omitempty"`
	EndDates       []string `json:"endDates,omitempty"`
	StartTimes     []string `json:"startTimes,omitempty"`
	EndTimes       []string `json:"endTimes,omitempty"`
	PassengerCount *int     `json:"passengerCount,omitempty"`
	Price          *Money   `json:"price,omitempty"`
}

// Validate checks the fields that are present
func (r *UpdateTripRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title != nil {
		errors = required(errors, "title", *r.Title)
	}
	errors = optionalEnum(errors, "tripType", r.TripType, TripTypeDaily, TripTypeRecurring)
	errors = optionalEnum(errors, "pricingType", r.PricingType, PricingTotal, PricingPerPerson)
	errors = validateSchedule(errors, r.StartDates, r.EndDates, r.StartTimes, r.EndTimes)
	if r.PassengerCount != nil && *r.PassengerCount < 1 {
		errors = append(errors, FieldError{Field: "passengerCount", Message: "passengerCount must be at least 1"})
	}
	errors = amountField(errors, "price", r.Price)

	return errors
}

// ApplyTo copies the present fields onto t
func (r *UpdateTripRequest) ApplyTo(t *Trip) {
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.PracticalInfo != nil {
		t.PracticalInfo = r.PracticalInfo
	}
	if r.TripType != nil {
		t.TripType = *r.TripType
	}
	if r.PricingType != nil {
		t.PricingType = *r.PricingType
	}
	if r.StartDates != nil {
		t.StartDates = normalizeDates(r.StartDates)
	}
	if r.EndDates != nil {
		t.EndDates = normalizeDates(r.EndDates)
	}
	if r.StartTimes != nil {
		t.StartTimes = r.StartTimes
	}
	if r.EndTimes != nil {
		t.EndTimes = r.EndTimes
	}
	if r.PassengerCount != nil {
		t.PassengerCount = *r.PassengerCount
	}
	if r.Price != nil {
		t.Price = *r.Price
	}
}

// TripFilter narrows a trip listing
type TripFilter struct {
	TripType    string
	MinPrice    *Money
	MaxPrice    *Money
	StartDate   string // DateLayout; matches trips with any start date on or after it
	BoatID      string
	OrganizerID string
}

func validateSchedule(errors []FieldError, startDates, endDates, startTimes, endTimes []string) []FieldError {
	errors = dateList(errors, "startDates", startDates)
	errors = dateList(errors, "endDates", endDates)
	errors = timeList(errors, "startTimes", startTimes)
	errors = timeList(errors, "endTimes", endTimes)
	return errors
}
