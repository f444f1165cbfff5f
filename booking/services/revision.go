package services

import (
	"errors"
	"main/booking/model"
	"main/utils"
)

type RevisionService struct {
	bookingDao model.BookingDao
}

func NewRevisionService(bookingDao model.BookingDao) *RevisionService {
	return &RevisionService{bookingDao: bookingDao}
}

// UpdateBooking revises an existing booking. The booking's own prior room
// counts are excluded from the inventory aggregate, and the new total is
// priced with the stay duration implied by the dates already on record; the
// new dates are written through as given.
func (rs *RevisionService) UpdateBooking(bookingId string, body string) (model.BookingMutation, error) {
	request, reqErr := ParseRevisionRequest(body)
	if reqErr != nil {
		return model.BookingMutation{}, reqErr
	}

	if !CheckCapacity(request.NumberOfGuests, request.RoomCounts) {
		return model.BookingMutation{}, model.NewValidationError("Too many guests")
	}

	getRetrier := newReadRetrier[utils.Pair[model.Booking, bool]]()
	lookup, err := getRetrier.DoWithReturn(func() (utils.Pair[model.Booking, bool], error) {
		booking, found, innerErr := rs.bookingDao.GetBooking(bookingId)
		return utils.Pair[model.Booking, bool]{First: booking, Second: found}, innerErr
	})
	if err != nil {
		return model.BookingMutation{}, err
	}
	if !lookup.Second {
		return model.BookingMutation{}, model.NewNotFoundError("Booking ID does not exist")
	}
	existingBooking := lookup.First

	scanRetrier := newReadRetrier[[]model.Booking]()
	currentBookings, err := scanRetrier.DoWithReturn(rs.bookingDao.GetAllBookings)
	if err != nil {
		return model.BookingMutation{}, err
	}

	if reqErr := CheckAvailability(currentBookings, request.RoomCounts, bookingId); reqErr != nil {
		return model.BookingMutation{}, reqErr
	}

	mutation := model.BookingMutation{
		NumberOfGuests: request.NumberOfGuests,
		RoomCounts:     request.RoomCounts,
		CheckInDate:    request.CheckInDate,
		CheckOutDate:   request.CheckOutDate,
		TotalAmount:    PriceStay(request.RoomCounts, storedNights(existingBooking)),
	}

	roomsDelta := request.RoomCounts.Total() - existingBooking.Total()
	if err := rs.bookingDao.UpdateBooking(bookingId, mutation, roomsDelta); err != nil {
		if errors.Is(err, model.ErrNotEnoughRooms) {
			return model.BookingMutation{}, model.NewValidationError("Exceeded the total number of available rooms")
		}
		return model.BookingMutation{}, err
	}

	return mutation, nil
}

// storedNights derives the stay duration from the dates already persisted on
// the booking. A record whose dates no longer round-trip is priced as a single
// night rather than failing the revision.
func storedNights(booking model.Booking) int {
	checkIn, okIn := ParseCompactDate(booking.CheckInDate)
	checkOut, okOut := ParseCompactDate(booking.CheckOutDate)
	if !okIn || !okOut {
		return 1
	}

	if nights := NightsOfStay(checkIn, checkOut); nights > 0 {
		return nights
	}
	return 1
}
