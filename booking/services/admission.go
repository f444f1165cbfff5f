package services

import (
	"errors"
	"main/booking/model"
	"main/utils"
	"time"
)

// Clock provides the current time; injected so admission decisions are
// testable against a fixed day.
type Clock func() time.Time

// Reads are retried with a bounded backoff; writes are issued once because the
// daos guard them with conditional transactions.
func newReadRetrier[T any]() *utils.Retrier[T] {
	return utils.NewRetrier[T](utils.NewExponentialBackoffStrategy(3, 50*time.Millisecond, 0.1, time.Second))
}

type AdmissionService struct {
	bookingDao  model.BookingDao
	idGenerator model.IdGenerator
	clock       Clock
}

func NewAdmissionService(bookingDao model.BookingDao, idGenerator model.IdGenerator, clock Clock) *AdmissionService {
	if clock == nil {
		clock = time.Now
	}
	return &AdmissionService{bookingDao: bookingDao, idGenerator: idGenerator, clock: clock}
}

// BookRoom runs the admission pipeline over a raw request body and persists
// the priced booking. Every failure is terminal and leaves the store untouched.
func (as *AdmissionService) BookRoom(body string) (model.BookingConfirmation, error) {
	request, reqErr := ParseBookingRequest(body)
	if reqErr != nil {
		return model.BookingConfirmation{}, reqErr
	}

	checkIn, ok := ParseCompactDate(request.CheckInDate)
	if !ok {
		return model.BookingConfirmation{}, model.NewValidationError("Invalid check-in date format. Date must be in yyyymmdd format.")
	}
	checkOut, ok := ParseCompactDate(request.CheckOutDate)
	if !ok {
		return model.BookingConfirmation{}, model.NewValidationError("Invalid check-out date format. Date must be in yyyymmdd format.")
	}

	today := Midnight(as.clock())
	if !checkIn.After(today) || !checkOut.After(today) {
		return model.BookingConfirmation{}, model.NewValidationError("Check-in and check-out dates must be in the future")
	}

	numberOfNights := NightsOfStay(checkIn, checkOut)
	if numberOfNights <= 0 {
		return model.BookingConfirmation{}, model.NewValidationError("Invalid check-in or check-out date")
	}

	if !CheckCapacity(request.NumberOfGuests, request.RoomCounts) {
		return model.BookingConfirmation{}, model.NewValidationError("Insufficient room capacity")
	}

	scanRetrier := newReadRetrier[[]model.Booking]()
	currentBookings, err := scanRetrier.DoWithReturn(as.bookingDao.GetAllBookings)
	if err != nil {
		return model.BookingConfirmation{}, err
	}

	if reqErr := CheckAvailability(currentBookings, request.RoomCounts, ""); reqErr != nil {
		return model.BookingConfirmation{}, reqErr
	}

	totalAmount := PriceStay(request.RoomCounts, numberOfNights)

	booking := model.Booking{
		Id:             as.idGenerator.NextId(),
		NumberOfGuests: request.NumberOfGuests,
		RoomCounts:     request.RoomCounts,
		CheckInDate:    request.CheckInDate,
		CheckOutDate:   request.CheckOutDate,
		Name:           request.FullName,
		Email:          request.Email,
		TotalAmount:    totalAmount,
		CreatedAt:      as.clock().UTC().Format(time.RFC3339),
	}

	if err := as.bookingDao.AddBooking(booking); err != nil {
		// A concurrent admission can win the guarded write after our scan
		// passed; report it the same way as a failed precheck.
		if errors.Is(err, model.ErrNotEnoughRooms) {
			return model.BookingConfirmation{}, model.NewValidationError("Exceeded the total number of available rooms")
		}
		return model.BookingConfirmation{}, err
	}

	return model.BookingConfirmation{
		Success:        true,
		BookingId:      booking.Id,
		NumberOfGuests: booking.NumberOfGuests,
		RoomCounts:     booking.RoomCounts,
		CheckInDate:    booking.CheckInDate,
		CheckOutDate:   booking.CheckOutDate,
		Name:           booking.Name,
		TotalAmount:    booking.TotalAmount,
	}, nil
}
