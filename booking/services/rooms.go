package services

import (
	"encoding/json"
	"main/booking/model"
)

type RoomService struct {
	roomDao     model.RoomDao
	idGenerator model.IdGenerator
}

func NewRoomService(roomDao model.RoomDao, idGenerator model.IdGenerator) *RoomService {
	return &RoomService{roomDao: roomDao, idGenerator: idGenerator}
}

// AddRoom registers a new room category and returns its id.
func (rs *RoomService) AddRoom(body string) (string, error) {
	var request model.RoomRequest
	if err := json.Unmarshal([]byte(body), &request); err != nil {
		return "", model.NewValidationError("Invalid request body")
	}

	room := model.Room{
		Id:            rs.idGenerator.NextId(),
		Type:          request.Type,
		MaxGuests:     request.MaxGuests,
		PricePerNight: request.PricePerNight,
	}

	return room.Id, rs.roomDao.AddRoom(room)
}

func (rs *RoomService) GetAllRooms() ([]model.Room, error) {
	scanRetrier := newReadRetrier[[]model.Room]()
	rooms, err := scanRetrier.DoWithReturn(rs.roomDao.GetAllRooms)
	if err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []model.Room{}
	}

	return rooms, nil
}
