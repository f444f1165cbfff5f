package services

import "main/booking/model"

type ListingService struct {
	bookingDao model.BookingDao
}

func NewListingService(bookingDao model.BookingDao) *ListingService {
	return &ListingService{bookingDao: bookingDao}
}

func (ls *ListingService) GetAllBookings() ([]model.Booking, error) {
	scanRetrier := newReadRetrier[[]model.Booking]()
	bookings, err := scanRetrier.DoWithReturn(ls.bookingDao.GetAllBookings)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}

	return bookings, nil
}
