package model

import (
	"encoding/json"
)

type RoomType string

const (
	SingleRoom RoomType = "singleRoom"
	DoubleRoom RoomType = "doubleRoom"
	Suite      RoomType = "suite"
)

var RoomTypes = []RoomType{SingleRoom, DoubleRoom, Suite}

// Guests per room of each type.
var RoomCapacities = map[RoomType]int{
	SingleRoom: 1,
	DoubleRoom: 2,
	Suite:      3,
}

// Nightly price per room of each type.
var PricesPerNight = map[RoomType]int{
	SingleRoom: 500,
	DoubleRoom: 1000,
	Suite:      1500,
}

// MaxRoomsAvailable is the inventory ceiling, shared across all room types.
const MaxRoomsAvailable = 20

// CompactDate is a calendar date in yyyymmdd form. Clients send it either as a
// JSON string or as a bare number; both decode to the digit string.
type CompactDate string

func (d *CompactDate) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*d = CompactDate(asString)
		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(data, &asNumber); err != nil {
		return err
	}
	*d = CompactDate(asNumber.String())
	return nil
}

func (d CompactDate) String() string {
	return string(d)
}

type RoomCounts struct {
	SingleRoom int `json:"singleRoom"`
	DoubleRoom int `json:"doubleRoom"`
	Suite      int `json:"suite"`
}

func (rc RoomCounts) Count(roomType RoomType) int {
	switch roomType {
	case SingleRoom:
		return rc.SingleRoom
	case DoubleRoom:
		return rc.DoubleRoom
	case Suite:
		return rc.Suite
	}
	return 0
}

func (rc RoomCounts) Total() int {
	return rc.SingleRoom + rc.DoubleRoom + rc.Suite
}

type Booking struct {
	Id             string `json:"id"`
	NumberOfGuests int    `json:"numberOfGuests"`
	RoomCounts
	CheckInDate  CompactDate `json:"checkInDate"`
	CheckOutDate CompactDate `json:"checkOutDate"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	TotalAmount  int         `json:"totalAmount"`
	CreatedAt    string      `json:"createdAt"`
}

// Room is a bookable category, not a physical unit.
type Room struct {
	Id            string `json:"id"`
	Type          string `json:"type"`
	MaxGuests     int    `json:"max_guests"`
	PricePerNight int    `json:"price_per_night"`
}

type BookingRequest struct {
	NumberOfGuests int `json:"numberOfGuests"`
	RoomCounts
	CheckInDate  CompactDate `json:"checkInDate"`
	CheckOutDate CompactDate `json:"checkOutDate"`
	FullName     string      `json:"fullName"`
	Email        string      `json:"email"`
}

type BookingConfirmation struct {
	Success        bool   `json:"success"`
	BookingId      string `json:"bookingId"`
	NumberOfGuests int    `json:"numberOfGuests"`
	RoomCounts
	CheckInDate  CompactDate `json:"checkInDate"`
	CheckOutDate CompactDate `json:"checkOutDate"`
	Name         string      `json:"name"`
	TotalAmount  int         `json:"totalAmount"`
}

type RevisionRequest struct {
	NumberOfGuests int `json:"numberOfGuests"`
	RoomCounts
	CheckInDate  CompactDate `json:"checkInDate"`
	CheckOutDate CompactDate `json:"checkOutDate"`
}

// BookingMutation carries the attributes written by an update; it is also what
// the update operation reports back.
type BookingMutation struct {
	NumberOfGuests int `json:"numberOfGuests"`
	RoomCounts
	CheckInDate  CompactDate `json:"checkInDate"`
	CheckOutDate CompactDate `json:"checkOutDate"`
	TotalAmount  int         `json:"totalAmount"`
}

type RoomRequest struct {
	Type          string `json:"type"`
	MaxGuests     int    `json:"max_guests"`
	PricePerNight int    `json:"price_per_night"`
}
