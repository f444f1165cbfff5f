package services

import (
	"main/booking/model"
	"math"
	"time"
)

// NightsOfStay counts the whole calendar days between two midnights, rounding
// partial days up.
func NightsOfStay(checkIn time.Time, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// PriceStay computes the total amount for a stay. The total is linear in the
// number of nights and in each room count independently.
func PriceStay(rooms model.RoomCounts, nights int) int {
	total := 0
	for _, roomType := range model.RoomTypes {
		total += model.PricesPerNight[roomType] * rooms.Count(roomType) * nights
	}

	return total
}
