package services

import (
	"encoding/json"
	"main/booking/model"
	"main/utils"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

var bookingAllowedFields = utils.NewMapSetFromElems(
	"numberOfGuests",
	"doubleRoom",
	"singleRoom",
	"suite",
	"checkInDate",
	"checkOutDate",
	"fullName",
	"email",
)

var bookingRequiredFields = []string{
	"numberOfGuests",
	"checkInDate",
	"checkOutDate",
	"fullName",
	"email",
}

// Room counts are required too, but checked separately so that 0 stays a valid
// count and the error message names them as room fields.
var roomCountFields = []string{"suite", "doubleRoom", "singleRoom"}

var revisionAllowedFields = utils.NewMapSetFromElems(
	"numberOfGuests",
	"doubleRoom",
	"singleRoom",
	"suite",
	"checkInDate",
	"checkOutDate",
)

var revisionRequiredFields = []string{
	"numberOfGuests",
	"doubleRoom",
	"singleRoom",
	"suite",
	"checkInDate",
	"checkOutDate",
}

func decodeStrictBody(body string, allowedFields utils.Set[string]) (map[string]json.RawMessage, *model.RequestError) {
	var rawFields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &rawFields); err != nil {
		return nil, model.NewValidationError("Invalid request body")
	}

	var extraFields []string
	for _, field := range maps.Keys(rawFields) {
		if !allowedFields.Contains(field) {
			extraFields = append(extraFields, field)
		}
	}
	if len(extraFields) > 0 {
		slices.Sort(extraFields)
		return nil, model.NewValidationError("Invalid fields: " + strings.Join(extraFields, ", "))
	}

	return rawFields, nil
}

// A field counts as missing when it is absent or explicitly null; 0 and ""
// are present values.
func missingFields(rawFields map[string]json.RawMessage, requiredFields []string) []string {
	var missing []string
	for _, field := range requiredFields {
		value, ok := rawFields[field]
		if !ok || string(value) == "null" {
			missing = append(missing, field)
		}
	}

	return missing
}

func ParseBookingRequest(body string) (model.BookingRequest, *model.RequestError) {
	var request model.BookingRequest

	rawFields, reqErr := decodeStrictBody(body, bookingAllowedFields)
	if reqErr != nil {
		return request, reqErr
	}

	if missing := missingFields(rawFields, bookingRequiredFields); len(missing) > 0 {
		return request, model.NewValidationError("Missing required fields: " + strings.Join(missing, ", "))
	}
	if missing := missingFields(rawFields, roomCountFields); len(missing) > 0 {
		return request, model.NewValidationError("Missing required room fields: " + strings.Join(missing, ", "))
	}

	if err := json.Unmarshal([]byte(body), &request); err != nil {
		return request, model.NewValidationError("Invalid request body")
	}

	return request, nil
}

func ParseRevisionRequest(body string) (model.RevisionRequest, *model.RequestError) {
	var request model.RevisionRequest

	rawFields, reqErr := decodeStrictBody(body, revisionAllowedFields)
	if reqErr != nil {
		return request, reqErr
	}

	if missing := missingFields(rawFields, revisionRequiredFields); len(missing) > 0 {
		return request, model.NewValidationError("Missing required fields: " + strings.Join(missing, ", "))
	}

	if err := json.Unmarshal([]byte(body), &request); err != nil {
		return request, model.NewValidationError("Invalid request body")
	}

	return request, nil
}
