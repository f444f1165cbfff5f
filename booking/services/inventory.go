package services

import (
	"fmt"
	"main/booking/model"
)

// CheckAvailability decides whether the requested rooms fit under the global
// inventory ceiling given every live booking. On the revision path the
// booking's own prior counts are excluded via excludedBookingId so it does not
// count against itself. The failure message reports the rooms still available.
//
// This is a diagnostic precheck over a scan; the daos enforce the same ceiling
// with a conditional transactional write at commit time, so two concurrent
// admissions cannot jointly overshoot it.
func CheckAvailability(existingBookings []model.Booking, requestedRooms model.RoomCounts, excludedBookingId string) *model.RequestError {
	totalBooked := 0
	for _, booking := range existingBookings {
		if excludedBookingId != "" && booking.Id == excludedBookingId {
			continue
		}
		totalBooked += booking.Total()
	}

	if requestedRooms.Total()+totalBooked > model.MaxRoomsAvailable {
		roomsLeft := model.MaxRoomsAvailable - totalBooked
		return model.NewValidationError(fmt.Sprintf("Exceeded the total number of available rooms. Only %v rooms left.", roomsLeft))
	}

	return nil
}
