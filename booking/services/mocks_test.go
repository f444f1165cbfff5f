package services

import (
	"main/booking/model"
	"testing"
	"time"
)

// In-memory stand-in for the DynamoDB-backed dao. It records every write so
// tests can assert that failed operations leave the store untouched.
type bookingDaoMock struct {
	bookings []model.Booking

	addedBookings    []model.Booking
	appliedMutations map[string]model.BookingMutation
	roomsDeltas      map[string]int
	deletedIds       []string
	releasedRooms    []int

	addBookingError error
}

func (dao *bookingDaoMock) GetBooking(bookingId string) (model.Booking, bool, error) {
	for _, booking := range dao.bookings {
		if booking.Id == bookingId {
			return booking, true, nil
		}
	}
	return model.Booking{}, false, nil
}

func (dao *bookingDaoMock) AddBooking(booking model.Booking) error {
	if dao.addBookingError != nil {
		return dao.addBookingError
	}
	dao.addedBookings = append(dao.addedBookings, booking)
	return nil
}

func (dao *bookingDaoMock) UpdateBooking(bookingId string, mutation model.BookingMutation, roomsDelta int) error {
	if dao.appliedMutations == nil {
		dao.appliedMutations = map[string]model.BookingMutation{}
		dao.roomsDeltas = map[string]int{}
	}
	dao.appliedMutations[bookingId] = mutation
	dao.roomsDeltas[bookingId] = roomsDelta
	return nil
}

func (dao *bookingDaoMock) DeleteBooking(bookingId string, roomsReleased int) error {
	dao.deletedIds = append(dao.deletedIds, bookingId)
	dao.releasedRooms = append(dao.releasedRooms, roomsReleased)
	return nil
}

func (dao *bookingDaoMock) GetAllBookings() ([]model.Booking, error) {
	return dao.bookings, nil
}

func (dao *bookingDaoMock) writesCount() int {
	return len(dao.addedBookings) + len(dao.appliedMutations) + len(dao.deletedIds)
}

type fixedIdGenerator struct {
	id string
}

func (gen *fixedIdGenerator) NextId() string {
	return gen.id
}

// All service tests run against this frozen day: 2025-01-15.
func fixedClock() time.Time {
	return time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
}

func expectRequestError(t *testing.T, err error, statusCode int, message string) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected a failure with message %q", message)
	}
	reqErr := model.AsRequestError(err)
	if reqErr == nil {
		t.Fatalf("Expected a request error, got %v", err)
	}
	if reqErr.StatusCode != statusCode {
		t.Fatalf("Expected status %v, got %v (%v)", statusCode, reqErr.StatusCode, reqErr.Message)
	}
	if reqErr.Message != message {
		t.Fatalf("Expected message %q, got %q", message, reqErr.Message)
	}
}
