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

var admissionService *services.AdmissionService

func init() {
	client := dynamoutils.CreateAwsClient()
	admissionService = services.NewAdmissionService(db.NewBookingDynDao(client), idgen.NewUuidGenerator(), nil)
}

func handler(_ context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	confirmation, err := admissionService.BookRoom(request.Body)
	if err != nil {
		return lambdautils.SendFailure(err, "Failed to book room")
	}

	return lambdautils.SendResponse(200, confirmation)
}

func main() {
	lambda.Start(handler)
}
