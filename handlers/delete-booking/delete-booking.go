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

var cancellationService *services.CancellationService

func init() {
	client := dynamoutils.CreateAwsClient()
	cancellationService = services.NewCancellationService(db.NewBookingDynDao(client), nil)
}

func handler(_ context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if err := cancellationService.CancelBooking(request.PathParameters["id"]); err != nil {
		return lambdautils.SendFailure(err, "Could not delete booking")
	}

	return lambdautils.SendResponse(200, map[string]any{
		"success": true,
		"message": "Booking successfully deleted",
	})
}

func main() {
	lambda.Start(handler)
}
