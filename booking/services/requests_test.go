package services

import (
	"testing"
)

func TestParseBookingRequestAcceptsNumericDates(t *testing.T) {
	request, reqErr := ParseBookingRequest(`{
		"numberOfGuests": 2,
		"singleRoom": 0,
		"doubleRoom": 1,
		"suite": 0,
		"checkInDate": 20250120,
		"checkOutDate": 20250121,
		"fullName": "Ada Lovelace",
		"email": "ada@example.com"
	}`)
	if reqErr != nil {
		t.Fatalf("Numeric dates must decode: %v", reqErr)
	}

	if request.CheckInDate != "20250120" || request.CheckOutDate != "20250121" {
		t.Fatalf("Unexpected dates: %v, %v", request.CheckInDate, request.CheckOutDate)
	}
}

func TestParseBookingRequestZeroCountsArePresent(t *testing.T) {
	request, reqErr := ParseBookingRequest(`{
		"numberOfGuests": 1,
		"singleRoom": 1,
		"doubleRoom": 0,
		"suite": 0,
		"checkInDate": "20250120",
		"checkOutDate": "20250121",
		"fullName": "Ada Lovelace",
		"email": "ada@example.com"
	}`)
	if reqErr != nil {
		t.Fatalf("Explicit zero counts must not read as missing: %v", reqErr)
	}
	if request.Total() != 1 {
		t.Fatalf("Expected one room in total, got %v", request.Total())
	}
}

func TestParseBookingRequestSortsUnknownFields(t *testing.T) {
	_, reqErr := ParseBookingRequest(`{"zebra": 1, "alpha": 2, "numberOfGuests": 1}`)
	if reqErr == nil {
		t.Fatal("Unknown fields must be rejected")
	}
	if reqErr.Message != "Invalid fields: alpha, zebra" {
		t.Fatalf("Unexpected message: %v", reqErr.Message)
	}
}

func TestParseBookingRequestNullFieldIsMissing(t *testing.T) {
	_, reqErr := ParseBookingRequest(`{
		"numberOfGuests": 2,
		"singleRoom": 0,
		"doubleRoom": 1,
		"suite": 0,
		"checkInDate": "20250120",
		"checkOutDate": "20250121",
		"fullName": null,
		"email": "ada@example.com"
	}`)
	if reqErr == nil {
		t.Fatal("A null required field must be rejected")
	}
	if reqErr.Message != "Missing required fields: fullName" {
		t.Fatalf("Unexpected message: %v", reqErr.Message)
	}
}

func TestParseRevisionRequestRejectsIdentityFields(t *testing.T) {
	// A revision may not rename the guest or move the booking to another id.
	_, reqErr := ParseRevisionRequest(`{
		"numberOfGuests": 2,
		"singleRoom": 0,
		"doubleRoom": 1,
		"suite": 0,
		"checkInDate": "20250120",
		"checkOutDate": "20250121",
		"fullName": "Someone Else"
	}`)
	if reqErr == nil {
		t.Fatal("fullName is not revisable and must be rejected")
	}
	if reqErr.Message != "Invalid fields: fullName" {
		t.Fatalf("Unexpected message: %v", reqErr.Message)
	}
}

func TestParseRevisionRequestRequiresAllFields(t *testing.T) {
	_, reqErr := ParseRevisionRequest(`{"numberOfGuests": 2}`)
	if reqErr == nil {
		t.Fatal("An underspecified revision must be rejected")
	}
	if reqErr.Message != "Missing required fields: doubleRoom, singleRoom, suite, checkInDate, checkOutDate" {
		t.Fatalf("Unexpected message: %v", reqErr.Message)
	}
}
