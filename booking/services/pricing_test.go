package services

import (
	"main/booking/model"
	"testing"
	"time"
)

func TestNightsOfStay(t *testing.T) {
	checkIn := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	if nights := NightsOfStay(checkIn, checkIn.AddDate(0, 0, 1)); nights != 1 {
		t.Fatalf("Expected 1 night, got %v", nights)
	}
	if nights := NightsOfStay(checkIn, checkIn.AddDate(0, 0, 7)); nights != 7 {
		t.Fatalf("Expected 7 nights, got %v", nights)
	}
	if nights := NightsOfStay(checkIn, checkIn); nights != 0 {
		t.Fatalf("Expected 0 nights for a same-day stay, got %v", nights)
	}
	if nights := NightsOfStay(checkIn, checkIn.AddDate(0, 0, -1)); nights >= 0 {
		t.Fatalf("Expected negative nights for a reversed stay, got %v", nights)
	}
}

func TestPriceStayPerRoomType(t *testing.T) {
	if amount := PriceStay(model.RoomCounts{DoubleRoom: 1}, 1); amount != 1000 {
		t.Fatalf("Expected 1000 for one double room for one night, got %v", amount)
	}
	if amount := PriceStay(model.RoomCounts{SingleRoom: 1, DoubleRoom: 1, Suite: 1}, 2); amount != 6000 {
		t.Fatalf("Expected 6000, got %v", amount)
	}
}

func TestPriceStayLinearity(t *testing.T) {
	rooms := model.RoomCounts{SingleRoom: 2, DoubleRoom: 1, Suite: 3}

	oneNight := PriceStay(rooms, 1)
	for nights := 2; nights <= 5; nights++ {
		if amount := PriceStay(rooms, nights); amount != oneNight*nights {
			t.Fatalf("Price is not linear in nights: %v nights cost %v, expected %v", nights, amount, oneNight*nights)
		}
	}

	// No cross terms: the total is the sum of the per-type totals.
	perType := PriceStay(model.RoomCounts{SingleRoom: 2}, 4) +
		PriceStay(model.RoomCounts{DoubleRoom: 1}, 4) +
		PriceStay(model.RoomCounts{Suite: 3}, 4)
	if amount := PriceStay(rooms, 4); amount != perType {
		t.Fatalf("Price is not additive across room types: got %v, expected %v", amount, perType)
	}
}
