package main

import (
	"context"
	"encoding/json"
	"main/booking/db"
	"main/booking/idgen"
	"main/booking/model"
	"main/dynamoutils"
	"slices"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var client *dynamodb.Client

func init() {
	client = dynamoutils.CreateAwsClient()
}

func handler(_ context.Context, _ json.RawMessage) error {
	existingTableNames, err := dynamoutils.GetExistingTableNames(client)
	if err != nil {
		return err
	}

	if !slices.Contains(existingTableNames, db.BookingsTableName) {
		if _, err = dynamoutils.CreateBookingsTable(client); err != nil {
			return err
		}
	}

	if !slices.Contains(existingTableNames, db.RoomsTableName) {
		if _, err = dynamoutils.CreateRoomsTable(client); err != nil {
			return err
		}

		if err = seedRoomCategories(); err != nil {
			return err
		}
	}

	return dynamoutils.InitInventoryCounter(client)
}

// One category per room type, priced like the booking engine prices them.
func seedRoomCategories() error {
	generator := idgen.NewUuidGenerator()

	var putItems []map[string]types.AttributeValue
	for _, roomType := range model.RoomTypes {
		putItems = append(putItems, db.BuildRoomPutItem(model.Room{
			Id:            generator.NextId(),
			Type:          string(roomType),
			MaxGuests:     model.RoomCapacities[roomType],
			PricePerNight: model.PricesPerNight[roomType],
		}))
	}

	return dynamoutils.DoPaginatedBatchWrite(client, db.RoomsTableName, putItems)
}

func main() {
	lambda.Start(handler)
}
