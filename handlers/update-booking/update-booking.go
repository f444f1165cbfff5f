package main

import (
	"context"
	"main/booking/db"
	"main/booking/services"
	"main/dynamoutils"
	"main/lambdautils"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

var revisionService *services.RevisionService

func init() {
	client := dynamoutils.CreateAwsClient()
	revisionService = services.NewRevisionService(db.NewBookingDynDao(client))
}

func handler(_ context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	bookingId := request.PathParameters["id"]
	if bookingId == "" {
		return lambdautils.SendError(400, "Missing booking id")
	}

	mutation, err := revisionService.UpdateBooking(bookingId, request.Body)
	if err != nil {
		return lambdautils.SendFailure(err, "Could not update Booking")
	}

	return lambdautils.SendResponse(200, map[string]any{
		"success": true,
		"message": "Booking successfully updated",
		"data":    mutation,
	})
}

func main() {
	lambda.Start(handler)
}
