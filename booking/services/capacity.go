package services

import "main/booking/model"

// CheckCapacity reports whether the requested rooms can host the guests.
// Equality is enough: a single room holds exactly one guest.
func CheckCapacity(numberOfGuests int, rooms model.RoomCounts) bool {
	totalCapacity := 0
	for _, roomType := range model.RoomTypes {
		totalCapacity += model.RoomCapacities[roomType] * rooms.Count(roomType)
	}

	return totalCapacity >= numberOfGuests
}
