package model

// BookingDao is the persistence contract for booking records. AddBooking,
// UpdateBooking and DeleteBooking must keep the aggregate room count consistent
// with the inventory ceiling; when a guarded write loses that check they return
// ErrNotEnoughRooms.
type BookingDao interface {
	GetBooking(id string) (Booking, bool, error)
	AddBooking(booking Booking) error
	UpdateBooking(id string, mutation BookingMutation, roomsDelta int) error
	DeleteBooking(id string, roomsReleased int) error
	GetAllBookings() ([]Booking, error)
}

type RoomDao interface {
	AddRoom(room Room) error
	GetAllRooms() ([]Room, error)
}

// IdGenerator is the unique-id capability injected into the services.
type IdGenerator interface {
	NextId() string
}
