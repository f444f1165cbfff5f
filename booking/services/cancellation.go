package services

import (
	"main/booking/model"
	"main/utils"
	"time"
)

type CancellationService struct {
	bookingDao model.BookingDao
	clock      Clock
}

func NewCancellationService(bookingDao model.BookingDao, clock Clock) *CancellationService {
	if clock == nil {
		clock = time.Now
	}
	return &CancellationService{bookingDao: bookingDao, clock: clock}
}

// CancelBooking deletes a booking unless its check-in is less than two days
// away. The stored check-in date is re-validated so a corrupt record fails
// loudly instead of computing a bogus window.
func (cs *CancellationService) CancelBooking(bookingId string) error {
	if bookingId == "" {
		return model.NewValidationError("Missing booking id")
	}

	getRetrier := newReadRetrier[utils.Pair[model.Booking, bool]]()
	lookup, err := getRetrier.DoWithReturn(func() (utils.Pair[model.Booking, bool], error) {
		booking, found, innerErr := cs.bookingDao.GetBooking(bookingId)
		return utils.Pair[model.Booking, bool]{First: booking, Second: found}, innerErr
	})
	if err != nil {
		return err
	}
	if !lookup.Second {
		return model.NewNotFoundError("Booking not found")
	}
	booking := lookup.First

	checkIn, ok := ParseCompactDate(booking.CheckInDate)
	if !ok {
		return model.NewValidationError("Invalid check-in date format in the booking")
	}

	daysUntilCheckIn := NightsOfStay(Midnight(cs.clock()), checkIn)
	if daysUntilCheckIn < 2 {
		return model.NewValidationError("Cannot cancel booking in less than 2 days")
	}

	return cs.bookingDao.DeleteBooking(bookingId, booking.Total())
}
