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

func handler(_ context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	roomId, err := roomService.AddRoom(request.Body)
	if err != nil {
		return lambdautils.SendFailure(err, "Could not add room")
	}

	return lambdautils.SendResponse(200, map[string]any{
		"success": true,
		"message": "Room successfully added",
		"roomId":  roomId,
	})
}

func main() {
	lambda.Start(handler)
}
