package db

import (
	"context"
	"errors"
	"main/booking/model"
	"main/dynamoutils"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	BookingsTableName = "bookings-db"

	// Reserved item carrying the aggregate room count; every write to a
	// booking goes through a transaction that keeps this counter under the
	// inventory ceiling.
	inventoryCounterId = "bookings#inventory"
)

type BookingDynDao struct {
	client *dynamodb.Client
}

func NewBookingDynDao(client *dynamodb.Client) *BookingDynDao {
	return &BookingDynDao{client: client}
}

func (dao *BookingDynDao) GetBooking(id string) (model.Booking, bool, error) {
	response, err := dao.client.GetItem(context.TODO(), &dynamodb.GetItemInput{
		TableName: aws.String(BookingsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})

	if err != nil {
		return model.Booking{}, false, err
	}
	if response.Item == nil {
		return model.Booking{}, false, nil
	}

	return bookingFromItem(response.Item), true, nil
}

func (dao *BookingDynDao) AddBooking(booking model.Booking) error {
	requestedRooms := booking.Total()
	_, err := dao.client.TransactWriteItems(context.TODO(), &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(BookingsTableName),
					Item:                buildBookingPutItem(booking),
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(BookingsTableName),
					Key:                 inventoryCounterKey(),
					UpdateExpression:    aws.String("ADD rooms_booked :requested"),
					ConditionExpression: aws.String("attribute_not_exists(rooms_booked) OR rooms_booked <= :remaining"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":requested": &types.AttributeValueMemberN{Value: strconv.Itoa(requestedRooms)},
						":remaining": &types.AttributeValueMemberN{Value: strconv.Itoa(model.MaxRoomsAvailable - requestedRooms)},
					},
				},
			},
		},
	})

	return mapCanceledTransaction(err)
}

func (dao *BookingDynDao) UpdateBooking(id string, mutation model.BookingMutation, roomsDelta int) error {
	_, err := dao.client.TransactWriteItems(context.TODO(), &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(BookingsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					UpdateExpression:    aws.String("SET numberOfGuests = :g, doubleRoom = :d, checkOutDate = :co, suite = :s, singleRoom = :sr, checkInDate = :ci, totalAmount = :ta"),
					ConditionExpression: aws.String("attribute_exists(id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":g":  &types.AttributeValueMemberN{Value: strconv.Itoa(mutation.NumberOfGuests)},
						":d":  &types.AttributeValueMemberN{Value: strconv.Itoa(mutation.DoubleRoom)},
						":co": &types.AttributeValueMemberS{Value: mutation.CheckOutDate.String()},
						":s":  &types.AttributeValueMemberN{Value: strconv.Itoa(mutation.Suite)},
						":sr": &types.AttributeValueMemberN{Value: strconv.Itoa(mutation.SingleRoom)},
						":ci": &types.AttributeValueMemberS{Value: mutation.CheckInDate.String()},
						":ta": &types.AttributeValueMemberN{Value: strconv.Itoa(mutation.TotalAmount)},
					},
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(BookingsTableName),
					Key:                 inventoryCounterKey(),
					UpdateExpression:    aws.String("ADD rooms_booked :delta"),
					ConditionExpression: aws.String("attribute_not_exists(rooms_booked) OR rooms_booked <= :remaining"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":delta":     &types.AttributeValueMemberN{Value: strconv.Itoa(roomsDelta)},
						":remaining": &types.AttributeValueMemberN{Value: strconv.Itoa(model.MaxRoomsAvailable - roomsDelta)},
					},
				},
			},
		},
	})

	return mapCanceledTransaction(err)
}

func (dao *BookingDynDao) DeleteBooking(id string, roomsReleased int) error {
	_, err := dao.client.TransactWriteItems(context.TODO(), &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(BookingsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					ConditionExpression: aws.String("attribute_exists(id)"),
				},
			},
			{
				Update: &types.Update{
					TableName:        aws.String(BookingsTableName),
					Key:              inventoryCounterKey(),
					UpdateExpression: aws.String("ADD rooms_booked :released"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":released": &types.AttributeValueMemberN{Value: strconv.Itoa(-roomsReleased)},
					},
				},
			},
		},
	})

	return mapCanceledTransaction(err)
}

func (dao *BookingDynDao) GetAllBookings() ([]model.Booking, error) {
	items, err := dynamoutils.ScanAllItems(dao.client, BookingsTableName)
	if err != nil {
		return nil, err
	}

	var bookings []model.Booking
	for _, item := range items {
		if stringAttribute(item, "id") == inventoryCounterId {
			continue
		}
		bookings = append(bookings, bookingFromItem(item))
	}

	return bookings, nil
}

func inventoryCounterKey() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: inventoryCounterId},
	}
}

// A canceled transaction means a condition lost: either the counter went over
// the ceiling or the booking item was not in the expected state. The services
// just rechecked existence, so it is reported as an inventory failure.
func mapCanceledTransaction(err error) error {
	if err == nil {
		return nil
	}

	var canceled *types.TransactionCanceledException
	if errors.As(err, &canceled) {
		return model.ErrNotEnoughRooms
	}

	return err
}

func buildBookingPutItem(booking model.Booking) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":             &types.AttributeValueMemberS{Value: booking.Id},
		"numberOfGuests": &types.AttributeValueMemberN{Value: strconv.Itoa(booking.NumberOfGuests)},
		"singleRoom":     &types.AttributeValueMemberN{Value: strconv.Itoa(booking.SingleRoom)},
		"doubleRoom":     &types.AttributeValueMemberN{Value: strconv.Itoa(booking.DoubleRoom)},
		"suite":          &types.AttributeValueMemberN{Value: strconv.Itoa(booking.Suite)},
		"checkInDate":    &types.AttributeValueMemberS{Value: booking.CheckInDate.String()},
		"checkOutDate":   &types.AttributeValueMemberS{Value: booking.CheckOutDate.String()},
		"name":           &types.AttributeValueMemberS{Value: booking.Name},
		"email":          &types.AttributeValueMemberS{Value: booking.Email},
		"totalAmount":    &types.AttributeValueMemberN{Value: strconv.Itoa(booking.TotalAmount)},
		"createdAt":      &types.AttributeValueMemberS{Value: booking.CreatedAt},
	}
}

func bookingFromItem(item map[string]types.AttributeValue) model.Booking {
	return model.Booking{
		Id:             stringAttribute(item, "id"),
		NumberOfGuests: numberAttribute(item, "numberOfGuests"),
		RoomCounts: model.RoomCounts{
			SingleRoom: numberAttribute(item, "singleRoom"),
			DoubleRoom: numberAttribute(item, "doubleRoom"),
			Suite:      numberAttribute(item, "suite"),
		},
		CheckInDate:  model.CompactDate(stringAttribute(item, "checkInDate")),
		CheckOutDate: model.CompactDate(stringAttribute(item, "checkOutDate")),
		Name:         stringAttribute(item, "name"),
		Email:        stringAttribute(item, "email"),
		TotalAmount:  numberAttribute(item, "totalAmount"),
		CreatedAt:    stringAttribute(item, "createdAt"),
	}
}

func stringAttribute(item map[string]types.AttributeValue, name string) string {
	if attribute, ok := item[name].(*types.AttributeValueMemberS); ok {
		return attribute.Value
	}
	return ""
}

func numberAttribute(item map[string]types.AttributeValue, name string) int {
	if attribute, ok := item[name].(*types.AttributeValueMemberN); ok {
		value, err := strconv.Atoi(attribute.Value)
		if err == nil {
			return value
		}
	}
	return 0
}
