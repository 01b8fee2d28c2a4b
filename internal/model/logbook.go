package model

import (
	"time"
)

// LogbookEntry is a catch recorded by a user
type LogbookEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	FishSpecies string    `json:"fishSpecies"`
	PhotoURL    *string   `json:"photoUrl,omitempty"`
	Comment     *string   `json:"comment,omitempty"`
	Length      *float64  `json:"length,omitempty"`
	Weight      *float64  `json:"weight,omitempty"`
	Location    *string   `json:"location,omitempty"`
	FishingDate string    `json:"fishingDate"`
	Released    bool      `json:"released"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateLogbookEntryRequest records a catch for the caller
type CreateLogbookEntryRequest struct {
	FishSpecies string   `json:"fishSpecies"`
	PhotoURL    *string  `json:"photoUrl,omitempty"`
	Comment     *string  `json:"comment,omitempty"`
	Length      *float64 `json:"length,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Location    *string  `json:"location,omitempty"`
	FishingDate string   `json:"fishingDate"`
	Released    *bool    `json:"released"`
}

// Validate checks the catch payload
func (r *CreateLogbookEntryRequest) Validate() []FieldError {
	var errors []FieldError

	errors = required(errors, "fishSpecies", r.FishSpecies)
	if r.FishingDate == "" {
		errors = append(errors, FieldError{Field: "fishingDate", Message: "fishingDate is required"})
	} else {
		errors = dateField(errors, "fishingDate", r.FishingDate)
	}
	if r.Released == nil {
		errors = append(errors, FieldError{Field: "released", Message: "released is required"})
	}
	errors = validateMeasures(errors, r.Length, r.Weight)

	return errors
}

// UpdateLogbookEntryRequest is a partial update of a catch
type UpdateLogbookEntryRequest struct {
	FishSpecies *string  `json:"fishSpecies,omitempty"`
	PhotoURL    *string  `json:"photoUrl,omitempty"`
	Comment     *string  `json:"comment,omitempty"`
	Length      *float64 `json:"length,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Location    *string  `json:"location,omitempty"`
	FishingDate *string  `json:"fishingDate,omitempty"`
	Released    *bool    `json:"released,omitempty"`
}

// Validate checks the fields that are present
func (r *UpdateLogbookEntryRequest) Validate() []FieldError {
	var errors []FieldError

	if r.FishSpecies != nil {
		errors = required(errors, "fishSpecies", *r.FishSpecies)
	}
	if r.FishingDate != nil {
		errors = dateField(errors, "fishingDate", *r.FishingDate)
	}
	errors = validateMeasures(errors, r.Length, r.Weight)

	return errors
}

// ApplyTo copies the present fields onto e
func (r *UpdateLogbookEntryRequest) ApplyTo(e *LogbookEntry) {
	if r.FishSpecies != nil {
		e.FishSpecies = *r.FishSpecies
	}
	if r.PhotoURL != nil {
		e.PhotoURL = r.PhotoURL
	}
	if r.Comment != nil {
		e.Comment = r.Comment
	}
	if r.Length != nil {
		e.Length = r.Length
	}
	if r.Weight != nil {
		e.Weight = r.Weight
	}
	if r.Location != nil {
		e.Location = r.Location
	}
	if r.FishingDate != nil {
		if d, ok := NormalizeDate(*r.FishingDate); ok {
			e.FishingDate = d
		}
	}
	if r.Released != nil {
		e.Released = *r.Released
	}
}

// LogbookFilter narrows a logbook listing. Dates are inclusive, in DateLayout.
type LogbookFilter struct {
	UserID      string
	FishSpecies string
	StartDate   string
	EndDate     string
}

func validateMeasures(errors []FieldError, length, weight *float64) []FieldError {
	if length != nil && *length < 0 {
		errors = append(errors, FieldError{Field: "length", Message: "length must not be negative"})
	}
	if weight != nil && *weight < 0 {
		errors = append(errors, FieldError{Field: "weight", Message: "weight must not be negative"})
	}
	return errors
}
