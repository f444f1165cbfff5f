package services

import (
	"main/booking/model"
	"testing"
)

const validBookingBody = `{
	"numberOfGuests": 2,
	"singleRoom": 0,
	"doubleRoom": 1,
	"suite": 0,
	"checkInDate": "20250120",
	"checkOutDate": "20250121",
	"fullName": "Ada Lovelace",
	"email": "ada@example.com"
}`

func newAdmissionFixture(dao *bookingDaoMock) *AdmissionService {
	return NewAdmissionService(dao, &fixedIdGenerator{id: "booking-1"}, fixedClock)
}

func TestBookRoomSuccess(t *testing.T) {
	dao := &bookingDaoMock{}
	service := newAdmissionFixture(dao)

	confirmation, err := service.BookRoom(validBookingBody)
	if err != nil {
		t.Fatalf("Expected the booking to succeed: %v", err)
	}

	if !confirmation.Success || confirmation.BookingId != "booking-1" {
		t.Fatalf("Unexpected confirmation: %+v", confirmation)
	}
	if confirmation.TotalAmount != 1000 {
		t.Fatalf("One double room for one night must cost 1000, got %v", confirmation.TotalAmount)
	}
	if confirmation.Name != "Ada Lovelace" {
		t.Fatalf("Unexpected name on the confirmation: %v", confirmation.Name)
	}

	if len(dao.addedBookings) != 1 {
		t.Fatalf("Expected exactly one persisted booking, got %v", len(dao.addedBookings))
	}
	stored := dao.addedBookings[0]
	if stored.Id != "booking-1" || stored.TotalAmount != 1000 || stored.Email != "ada@example.com" {
		t.Fatalf("Unexpected persisted booking: %+v", stored)
	}
	if stored.CreatedAt != "2025-01-15T10:30:00Z" {
		t.Fatalf("Unexpected creation timestamp: %v", stored.CreatedAt)
	}
}

func TestBookRoomPricesMultiRoomStay(t *testing.T) {
	dao := &bookingDaoMock{}
	service := newAdmissionFixture(dao)

	confirmation, err := service.BookRoom(`{
		"numberOfGuests": 6,
		"singleRoom": 1,
		"doubleRoom": 1,
		"suite": 1,
		"checkInDate": "20250120",
		"checkOutDate": "20250123",
		"fullName": "Grace Hopper",
		"email": "grace@example.com"
	}`)
	if err != nil {
		t.Fatalf("Expected the booking to succeed: %v", err)
	}

	// (500 + 1000 + 1500) * 3 nights
	if confirmation.TotalAmount != 9000 {
		t.Fatalf("Expected 9000, got %v", confirmation.TotalAmount)
	}
}

func TestBookRoomRejectsMalformedBody(t *testing.T) {
	dao := &bookingDaoMock{}
	service := newAdmissionFixture(dao)

	_, err := service.BookRoom("not json at all")
	expectRequestError(t, err, 400, "Invalid request body")

	if dao.writesCount() != 0 {
		t.Fatal("A rejected request must not touch the store")
	}
}

func TestBookRoomRejectsUnknownFields(t *testing.T) {
	dao := &bookingDaoMock{}
	service := newAdmissionFixture(dao)

	_, err := service.BookRoom(`{
		"numberOfGuests": 2,
		"singleRoom": 0,
		"doubleRoom": 1,
		"suite": 0,
		"checkInDate": "20250120",
		"checkOutDate": "20250121",
		"fullName": "Ada Lovelace",
		"email": "ada@example.com",
		"zzz": 1,
		"admin": true
	}`)
	expectRequestError(t, err, 400, "Invalid fields: admin, zzz")
}

func TestBookRoomReportsMissingFields(t *testing.T) {
	dao := &bookingDaoMock{}
	service := newAdmissionFixture(dao)

	_, err := service.BookRoom(`{
		"numberOfGuests": 2,
		"singleRoom": 0,
		"doubleRoom": 1,
		"suite": 0,
		"checkInDate": "20250120"
	}`)
	expectRequestError(t, err, 400, "Missing required fields: checkOutDate, fullName, email")
}

func TestBookRoomReportsMissingRoomFields(t *testing.T) {
	dao := &bookingDaoMock{}
	service := newAdmissionFixture(dao)

	// A null room count is as missing as an absent one; a 0 is present.
	_, err := service.BookRoom(`{
		"numberOfGuests": 2,
		"doubleRoom": 1,
		"suite": null,
		"checkInDate": "20250120",
		"checkOutDate": "20250121",
		"fullName": "Ada Lovelace",
		"email": "ada@example.com"
	}`)
	expectRequestError(t, err, 400, "Missing required room fields: suite, singleRoom")
}

func TestBookRoomRejectsMalformedDates(t *testing.T) {
	dao := &bookingDaoMock{}
	service := newAdmissionFixture(dao)

	_, err := service.BookRoom(`{
		"numberOfGuests": 2,
		"singleRoom": 0,
		"doubleRoom": 1,
		"suite": 0,
		"checkInDate": "20250230",
		"checkOutDate": "20250301",
		"fullName": "Ada Lovelace",
		"email": "ada@example.com"
	}`)
	expectRequestError(t, err, 400, "Invalid check-in date format. Date must be in yyyymmdd format.")
}

func TestBookRoomRejectsNonFutureDates(t *testing.T) {
	dao := &bookingDaoMock{}
	service := newAdmissionFixture(dao)

	// The clock is frozen on 2025-01-15; a same-day check-in is not future.
	_, err := service.BookRoom(`{
		"numberOfGuests": 2,
		"singleRoom": 0,
		"doubleRoom": 1,
		"suite": 0,
		"checkInDate": "20250115",
		"checkOutDate": "20250121",
		"fullName": "Ada Lovelace",
		"email": "ada@example.com"
	}`)
	expectRequestError(t, err, 400, "Check-in and check-out dates must be in the future")

	if dao.writesCount() != 0 {
		t.Fatal("A rejected request must not touch the store")
	}
}

func TestBookRoomRejectsReversedStay(t *testing.T) {
	dao := &bookingDaoMock{}
	service := newAdmissionFixture(dao)

	_, err := service.BookRoom(`{
		"numberOfGuests": 2,
		"singleRoom": 0,
		"doubleRoom": 1,
		"suite": 0,
		"checkInDate": "20250125",
		"checkOutDate": "20250120",
		"fullName": "Ada Lovelace",
		"email": "ada@example.com"
	}`)
	expectRequestError(t, err, 400, "Invalid check-in or check-out date")
}

func TestBookRoomRejectsInsufficientCapacity(t *testing.T) {
	dao := &bookingDaoMock{}
	service := newAdmissionFixture(dao)

	_, err := service.BookRoom(`{
		"numberOfGuests": 5,
		"singleRoom": 1,
		"doubleRoom": 0,
		"suite": 0,
		"checkInDate": "20250120",
		"checkOutDate": "20250121",
		"fullName": "Ada Lovelace",
		"email": "ada@example.com"
	}`)
	expectRequestError(t, err, 400, "Insufficient room capacity")
}

func TestBookRoomRejectsWhenInventoryIsFull(t *testing.T) {
	dao := &bookingDaoMock{}
	for i := 0; i < 19; i++ {
		dao.bookings = append(dao.bookings, model.Booking{
			Id:         "existing",
			RoomCounts: model.RoomCounts{SingleRoom: 1},
		})
	}
	service := newAdmissionFixture(dao)

	_, err := service.BookRoom(`{
		"numberOfGuests": 2,
		"singleRoom": 2,
		"doubleRoom": 0,
		"suite": 0,
		"checkInDate": "20250120",
		"checkOutDate": "20250121",
		"fullName": "Ada Lovelace",
		"email": "ada@example.com"
	}`)
	expectRequestError(t, err, 400, "Exceeded the total number of available rooms. Only 1 rooms left.")

	if dao.writesCount() != 0 {
		t.Fatal("A rejected request must not touch the store")
	}
}

func TestBookRoomMapsGuardedWriteConflict(t *testing.T) {
	dao := &bookingDaoMock{addBookingError: model.ErrNotEnoughRooms}
	service := newAdmissionFixture(dao)

	// The scan saw room, but a concurrent admission won the guarded write.
	_, err := service.BookRoom(validBookingBody)
	expectRequestError(t, err, 400, "Exceeded the total number of available rooms")
}
