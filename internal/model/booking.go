package model

import (
	"time"
)

// Booking reserves seats on a trip. TotalPrice is derived from the trip price
// when the booking is created or its seat count changes.
type Booking struct {
	ID           string    `json:"id"`
	TripID       string    `json:"tripId"`
	UserID       string    `json:"userId"`
	SelectedDate string    `json:"selectedDate"`
	Seats        int       `json:"seats"`
	TotalPrice   Money     `json:"totalPrice"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateBookingRequest is the reservation payload. The renter is always the caller.
type CreateBookingRequest struct {
	TripID       string `json:"tripId"`
	SelectedDate string `json:"selectedDate"`
	Seats        int    `json:"seats"`
}

// Validate checks the reservation payload
func (r *CreateBookingRequest) Validate() []FieldError {
	var errors []FieldError

	errors = required(errors, "tripId", r.TripID)
	if r.SelectedDate == "" {
		errors = append(errors, FieldError{Field: "selectedDate", Message: "selectedDate is required"})
	} else {
		errors = dateField(errors, "selectedDate", r.SelectedDate)
	}
	if r.Seats < 1 {
		errors = append(errors, FieldError{Field: "seats", Message: "seats must be at least 1"})
	}

	return errors
}

// UpdateBookingRequest changes the date or the seat count. The trip cannot be changed.
type UpdateBookingRequest struct {
	SelectedDate *string `json:"selectedDate,omitempty"`
	Seats        *int    `json:"seats,omitempty"`
}

// Validate checks the fields that are present
func (r *UpdateBookingRequest) Validate() []FieldError {
	var errors []FieldError

	if r.SelectedDate != nil {
		errors = dateField(errors, "selectedDate", *r.SelectedDate)
	}
	if r.Seats != nil && *r.Seats < 1 {
		errors = append(errors, FieldError{Field: "seats", Message: "seats must be at least 1"})
	}

	return errors
}

// BookingFilter narrows a booking listing
type BookingFilter struct {
	TripID string
	UserID string
}
