package main

import (
	"context"
	"main/booking/db"
	"main/booking/idgen"
	"main/booking/services"
	"main/dynamoutils"
	"main/lambdautils"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

var roomService *services.RoomService

func init() {
	client := dynamoutils.CreateAwsClient()
	roomService = services.NewRoomService(db.NewRoomDynDao(client), idgen.NewUuidGenerator())
}

func handler(_ context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	rooms, err := roomService.GetAllRooms()
	if err != nil {
		return lambdautils.SendFailure(err, "Could not fetch rooms")
	}

	return lambdautils.SendResponse(200, map[string]any{
		"success": true,
		"room":    rooms,
	})
}

func main() {
	lambda.Start(handler)
}
