package model

import (
	"testing"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool { return &b }
func moneyPtr(s string) *Money {
	m := MustMoney(s)
	return &m
}

func hasFieldError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

// ============================================================================
// Shared Helpers
// ============================================================================

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  bool
	}{
		{"jean@fisherfans.fr", true},
		{"a.b@c.io", true},
		{"", false},
		{"no-at-sign.fr", false},
		{"@fisherfans.fr", false},
		{"jean@fr", false},
		{"jean@fisherfans.", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"2025-07-01", "2025-07-01", true},
		{" 2025-07-01 ", "2025-07-01", true},
		{"2025-07-01T23:30:00-02:00", "2025-07-02", true},
		{"2025-07-01T08:00:00Z", "2025-07-01", true},
		{"01/07/2025", "", false},
		{"2025-13-01", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeDate(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("NormalizeDate(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

// ============================================================================
// Login
// ============================================================================

func TestLoginRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := LoginRequest{Email: "jean@fisherfans.fr", Password: "secret"}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}

	invalid := LoginRequest{Email: "not-an-email"}
	errs := invalid.Validate()
	if !hasFieldError(errs, "email") || !hasFieldError(errs, "password") {
		t.Errorf("expected email and password errors, got %v", errs)
	}
}

// ============================================================================
// Users
// ============================================================================

func validCreateUser() CreateUserRequest {
	return CreateUserRequest{
		LastName:  "Martin",
		FirstName: "Jean",
		Email:     "jean@fisherfans.fr",
		Password:  "testpass123",
		City:      "Antibes",
		Status:    string(UserStatusIndividual),
	}
}

func TestCreateUserRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := validCreateUser()
	req.BoatLicenseNumber = strPtr("12345678")
	req.InsuranceNumber = strPtr("ABC123DEF456")
	req.ActivityType = strPtr(ActivityFishingGuide)
	req.BirthDate = strPtr("1980-05-12")
	req.PostalCode = strPtr("06600")

	if errs := req.Validate(); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestCreateUserRequest_Validate_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	req := CreateUserRequest{}
	errs := req.Validate()

	for _, field := range []string{"lastName", "firstName", "email", "password", "city", "status"} {
		if !hasFieldError(errs, field) {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestCreateUserRequest_Validate_PasswordBounds(t *testing.T) {
	t.Parallel()

	short := validCreateUser()
	short.Password = "1234567"
	if !hasFieldError(short.Validate(), "password") {
		t.Error("expected error for 7 character password")
	}

	long := validCreateUser()
	long.Password = string(make([]byte, MaxPasswordLength+1))
	if !hasFieldError(long.Validate(), "password") {
		t.Error("expected error for password over 72 bytes")
	}
}

func TestCreateUserRequest_Validate_CredentialFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		apply func(*CreateUserRequest)
		field string
	}{
		{"license too short", func(r *CreateUserRequest) { r.BoatLicenseNumber = strPtr("1234") }, "boatLicenseNumber"},
		{"license with letters", func(r *CreateUserRequest) { r.BoatLicenseNumber = strPtr("1234567A") }, "boatLicenseNumber"},
		{"insurance lowercase", func(r *CreateUserRequest) { r.InsuranceNumber = strPtr("abc123def456") }, "insuranceNumber"},
		{"unknown activity", func(r *CreateUserRequest) { r.ActivityType = strPtr("charter") }, "activityType"},
		{"bad birth date", func(r *CreateUserRequest) { r.BirthDate = strPtr("12/05/1980") }, "birthDate"},
		{"short postal code", func(r *CreateUserRequest) { r.PostalCode = strPtr("066") }, "postalCode"},
		{"unknown status", func(r *CreateUserRequest) { r.Status = "company" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validCreateUser()
			tt.apply(&req)
			if errs := req.Validate(); !hasFieldError(errs, tt.field) {
				t.Errorf("expected error for %s, got %v", tt.field, errs)
			}
		})
	}
}

func TestUpdateUserRequest_Validate_OnlyPresentFields(t *testing.T) {
	t.Parallel()

	empty := UpdateUserRequest{}
	if errs := empty.Validate(); len(errs) != 0 {
		t.Errorf("expected empty update to be valid, got %v", errs)
	}

	blank := UpdateUserRequest{City: strPtr("  "), Password: strPtr("short")}
	errs := blank.Validate()
	if !hasFieldError(errs, "city") || !hasFieldError(errs, "password") {
		t.Errorf("expected city and password errors, got %v", errs)
	}
}

func TestUpdateUserRequest_ApplyTo_NormalizesBirthDate(t *testing.T) {
	t.Parallel()

	u := &User{FirstName: "Jean", City: "Antibes"}
	req := UpdateUserRequest{City: strPtr("Nice"), BirthDate: strPtr("1980-05-12T10:00:00Z")}
	req.ApplyTo(u)

	if u.City != "Nice" {
		t.Errorf("expected city Nice, got %s", u.City)
	}
	if u.FirstName != "Jean" {
		t.Errorf("expected first name untouched, got %s", u.FirstName)
	}
	if u.BirthDate == nil || *u.BirthDate != "1980-05-12" {
		t.Errorf("expected normalized birth date, got %v", u.BirthDate)
	}
}

func TestUser_HasBoatLicense(t *testing.T) {
	t.Parallel()

	if (&User{}).HasBoatLicense() {
		t.Error("expected no license when nil")
	}
	if (&User{BoatLicenseNumber: strPtr("  ")}).HasBoatLicense() {
		t.Error("expected blank license to count as none")
	}
	if !(&User{BoatLicenseNumber: strPtr("12345678")}).HasBoatLicense() {
		t.Error("expected license to be detected")
	}
}

// ============================================================================
// Boats
// ============================================================================

func validCreateBoat() CreateBoatRequest {
	return CreateBoatRequest{
		Name:        "Le Goéland",
		BoatType:    BoatTypeCabin,
		MaxCapacity: 6,
		HomePort:    "Antibes",
	}
}

func TestCreateBoatRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := validCreateBoat()
	req.Equipment = []string{"gps", "sounder"}
	req.Deposit = moneyPtr("300")
	req.Latitude = floatPtr(43.58)
	req.Longitude = floatPtr(7.12)
	req.EngineType = strPtr("diesel")
	req.LicenseType = strPtr("coastal")

	if errs := req.Validate(); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestCreateBoatRequest_Validate_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		apply func(*CreateBoatRequest)
		field string
	}{
		{"missing name", func(r *CreateBoatRequest) { r.Name = "" }, "name"},
		{"unknown type", func(r *CreateBoatRequest) { r.BoatType = "submarine" }, "boatType"},
		{"zero capacity", func(r *CreateBoatRequest) { r.MaxCapacity = 0 }, "maxCapacity"},
		{"missing port", func(r *CreateBoatRequest) { r.HomePort = "" }, "homePort"},
		{"unknown equipment", func(r *CreateBoatRequest) { r.Equipment = []string{"gps", "radar"} }, "equipment"},
		{"negative deposit", func(r *CreateBoatRequest) { r.Deposit = moneyPtr("-1") }, "deposit"},
		{"sub-cent deposit", func(r *CreateBoatRequest) { r.Deposit = moneyPtr("300.001") }, "deposit"},
		{"latitude alone", func(r *CreateBoatRequest) { r.Latitude = floatPtr(43.5) }, "latitude"},
		{"latitude out of range", func(r *CreateBoatRequest) { r.Latitude, r.Longitude = floatPtr(91), floatPtr(7) }, "latitude"},
		{"longitude out of range", func(r *CreateBoatRequest) { r.Latitude, r.Longitude = floatPtr(43), floatPtr(-181) }, "longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validCreateBoat()
			tt.apply(&req)
			if errs := req.Validate(); !hasFieldError(errs, tt.field) {
				t.Errorf("expected error for %s, got %v", tt.field, errs)
			}
		})
	}
}

func TestUpdateBoatRequest_Validate_CapacityMustStayPositive(t *testing.T) {
	t.Parallel()

	req := UpdateBoatRequest{MaxCapacity: intPtr(0)}
	if !hasFieldError(req.Validate(), "maxCapacity") {
		t.Error("expected maxCapacity error")
	}
}

func TestUpdateBoatRequest_Validate_SubCentDeposit(t *testing.T) {
	t.Parallel()

	req := UpdateBoatRequest{Deposit: moneyPtr("0.005")}
	if !hasFieldError(req.Validate(), "deposit") {
		t.Error("expected deposit error")
	}
}

func TestBoat_Position(t *testing.T) {
	t.Parallel()

	if (&Boat{Latitude: floatPtr(43)}).Position() != nil {
		t.Error("expected no position with a single coordinate")
	}
	pos := (&Boat{Latitude: floatPtr(43.5), Longitude: floatPtr(7.1)}).Position()
	if pos == nil || pos.Lat != 43.5 || pos.Lng != 7.1 {
		t.Errorf("unexpected position %v", pos)
	}
}

// ============================================================================
// Trips
// ============================================================================

func validCreateTrip() CreateTripRequest {
	return CreateTripRequest{
		Title:          "Sortie au large",
		TripType:       TripTypeDaily,
		PricingType:    PricingPerPerson,
		StartDates:     []string{"2025-07-01"},
		EndDates:       []string{"2025-07-01"},
		StartTimes:     []string{"08:00"},
		EndTimes:       []string{"17:30"},
		PassengerCount: 4,
		Price:          moneyPtr("95.50"),
		BoatID:         "boat-1",
	}
}

func TestCreateTripRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := validCreateTrip()
	if errs := req.Validate(); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestCreateTripRequest_Validate_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		apply func(*CreateTripRequest)
		field string
	}{
		{"missing title", func(r *CreateTripRequest) { r.Title = " " }, "title"},
		{"unknown trip type", func(r *CreateTripRequest) { r.TripType = "weekly" }, "tripType"},
		{"unknown pricing", func(r *CreateTripRequest) { r.PricingType = "hourly" }, "pricingType"},
		{"bad start date", func(r *CreateTripRequest) { r.StartDates = []string{"tomorrow"} }, "startDates"},
		{"bad end time", func(r *CreateTripRequest) { r.EndTimes = []string{"25:00"} }, "endTimes"},
		{"no passengers", func(r *CreateTripRequest) { r.PassengerCount = 0 }, "passengerCount"},
		{"missing price", func(r *CreateTripRequest) { r.Price = nil }, "price"},
		{"negative price", func(r *CreateTripRequest) { r.Price = moneyPtr("-0.01") }, "price"},
		{"sub-cent price", func(r *CreateTripRequest) { r.Price = moneyPtr("120.505") }, "price"},
		{"missing boat", func(r *CreateTripRequest) { r.BoatID = "" }, "boatId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validCreateTrip()
			tt.apply(&req)
			if errs := req.Validate(); !hasFieldError(errs, tt.field) {
				t.Errorf("expected error for %s, got %v", tt.field, errs)
			}
		})
	}
}

func TestCreateTripRequest_NormalizedStartDates(t *testing.T) {
	t.Parallel()

	req := CreateTripRequest{StartDates: []string{"2025-07-01T06:00:00Z", "2025-07-08"}}
	got := req.NormalizedStartDates()

	if len(got) != 2 || got[0] != "2025-07-01" || got[1] != "2025-07-08" {
		t.Errorf("unexpected dates %v", got)
	}
}

func TestTrip_StartsOnOrAfter(t *testing.T) {
	t.Parallel()

	trip := &Trip{StartDates: []string{"2025-06-01", "2025-07-15"}}

	if !trip.StartsOnOrAfter("2025-07-15") {
		t.Error("expected inclusive match on the same date")
	}
	if !trip.StartsOnOrAfter("2025-07-01") {
		t.Error("expected match when any date is later")
	}
	if trip.StartsOnOrAfter("2025-08-01") {
		t.Error("expected no match when every date is earlier")
	}
}

func TestTripRequests_Validate_PriceScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price string
		valid bool
	}{
		{"120.50", true},
		{"120.500", true},
		{"120", true},
		{"120.505", false},
		{"0.001", false},
	}

	for _, tt := range tests {
		create := validCreateTrip()
		create.Price = moneyPtr(tt.price)
		if got := !hasFieldError(create.Validate(), "price"); got != tt.valid {
			t.Errorf("create with price %s: expected valid=%v", tt.price, tt.valid)
		}

		update := UpdateTripRequest{Price: moneyPtr(tt.price)}
		if got := !hasFieldError(update.Validate(), "price"); got != tt.valid {
			t.Errorf("update with price %s: expected valid=%v", tt.price, tt.valid)
		}
	}
}

func TestUpdateTripRequest_ApplyTo(t *testing.T) {
	t.Parallel()

	trip := &Trip{Title: "Old", Price: MustMoney("100"), PassengerCount: 2}
	req := UpdateTripRequest{Price: moneyPtr("80"), StartDates: []string{"2025-09-01T00:00:00Z"}}
	req.ApplyTo(trip)

	if trip.Title != "Old" {
		t.Errorf("expected title untouched, got %s", trip.Title)
	}
	if !trip.Price.Equal(MustMoney("80.00")) {
		t.Errorf("expected price 80, got %s", trip.Price)
	}
	if len(trip.StartDates) != 1 || trip.StartDates[0] != "2025-09-01" {
		t.Errorf("expected normalized start dates, got %v", trip.StartDates)
	}
}

// ============================================================================
// Bookings
// ============================================================================

func TestCreateBookingRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateBookingRequest{TripID: "trip-1", SelectedDate: "2025-07-01", Seats: 2}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}

	invalid := CreateBookingRequest{}
	errs := invalid.Validate()
	for _, field := range []string{"tripId", "selectedDate", "seats"} {
		if !hasFieldError(errs, field) {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestUpdateBookingRequest_Validate(t *testing.T) {
	t.Parallel()

	req := UpdateBookingRequest{SelectedDate: strPtr("soon"), Seats: intPtr(0)}
	errs := req.Validate()
	if !hasFieldError(errs, "selectedDate") || !hasFieldError(errs, "seats") {
		t.Errorf("expected selectedDate and seats errors, got %v", errs)
	}
}

// ============================================================================
// Logbook
// ============================================================================

func TestCreateLogbookEntryRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateLogbookEntryRequest{
		FishSpecies: "Sea bass",
		FishingDate: "2025-06-15",
		Released:    boolPtr(false),
		Length:      floatPtr(52),
		Weight:      floatPtr(1.8),
	}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}

	invalid := CreateLogbookEntryRequest{Length: floatPtr(-1), Weight: floatPtr(-0.5)}
	errs := invalid.Validate()
	for _, field := range []string{"fishSpecies", "fishingDate", "released", "length", "weight"} {
		if !hasFieldError(errs, field) {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestUpdateLogbookEntryRequest_ApplyTo(t *testing.T) {
	t.Parallel()

	entry := &LogbookEntry{FishSpecies: "Sea bass", FishingDate: "2025-06-15"}
	req := UpdateLogbookEntryRequest{Comment: strPtr("Caught at dawn"), Released: boolPtr(true)}
	req.ApplyTo(entry)

	if entry.FishSpecies != "Sea bass" {
		t.Errorf("expected species untouched, got %s", entry.FishSpecies)
	}
	if entry.Comment == nil || *entry.Comment != "Caught at dawn" {
		t.Errorf("expected comment applied, got %v", entry.Comment)
	}
	if !entry.Released {
		t.Error("expected released flag applied")
	}
}
