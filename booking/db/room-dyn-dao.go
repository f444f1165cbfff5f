package db

import (
	"context"
	"main/booking/model"
	"main/dynamoutils"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const RoomsTableName = "rooms-db"

type RoomDynDao struct {
	client *dynamodb.Client
}

func NewRoomDynDao(client *dynamodb.Client) *RoomDynDao {
	return &RoomDynDao{client: client}
}

func (dao *RoomDynDao) AddRoom(room model.Room) error {
	_, err := dao.client.PutItem(context.TODO(), &dynamodb.PutItemInput{
		TableName: aws.String(RoomsTableName),
		Item:      BuildRoomPutItem(room),
	})

	return err
}

func (dao *RoomDynDao) GetAllRooms() ([]model.Room, error) {
	items, err := dynamoutils.ScanAllItems(dao.client, RoomsTableName)
	if err != nil {
		return nil, err
	}

	var rooms []model.Room
	for _, item := range items {
		rooms = append(rooms, roomFromItem(item))
	}

	return rooms, nil
}

// BuildRoomPutItem is shared with the batch seeding in dynamoutils.
func BuildRoomPutItem(room model.Room) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":              &types.AttributeValueMemberS{Value: room.Id},
		"type":            &types.AttributeValueMemberS{Value: room.Type},
		"max_guests":      &types.AttributeValueMemberN{Value: strconv.Itoa(room.MaxGuests)},
		"price_per_night": &types.AttributeValueMemberN{Value: strconv.Itoa(room.PricePerNight)},
	}
}

func roomFromItem(item map[string]types.AttributeValue) model.Room {
	return model.Room{
		Id:            stringAttribute(item, "id"),
		Type:          stringAttribute(item, "type"),
		MaxGuests:     numberAttribute(item, "max_guests"),
		PricePerNight: numberAttribute(item, "price_per_night"),
	}
}
