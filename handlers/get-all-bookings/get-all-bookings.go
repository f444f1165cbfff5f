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

var listingService *services.ListingService

func init() {
	client := dynamoutils.CreateAwsClient()
	listingService = services.NewListingService(db.NewBookingDynDao(client))
}

func handler(_ context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	bookings, err := listingService.GetAllBookings()
	if err != nil {
		return lambdautils.SendFailure(err, "Could not fetch bookings")
	}

	return lambdautils.SendResponse(200, map[string]any{
		"success":  true,
		"bookings": bookings,
	})
}

func main() {
	lambda.Start(handler)
}
