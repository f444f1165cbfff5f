package lambdautils

import (
	"context"
	"encoding/json"
	"log"
	"main/booking/model"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

var responseHeaders = map[string]string{"Content-Type": "application/json"}

func SendResponse(statusCode int, payload any) (events.APIGatewayProxyResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Could not serialize the response payload: %v\n", err)
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    responseHeaders,
			Body:       `{"success":false,"message":"Internal server error"}`,
		}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    responseHeaders,
		Body:       string(body),
	}, nil
}

func SendError(statusCode int, message string) (events.APIGatewayProxyResponse, error) {
	return SendResponse(statusCode, map[string]any{
		"success": false,
		"message": message,
	})
}

// SendFailure turns a service error into a response. Request errors keep their
// status and message; anything else is logged and reported with the fixed
// per-operation message so store internals never leak to the caller.
func SendFailure(err error, internalMessage string) (events.APIGatewayProxyResponse, error) {
	if reqErr := model.AsRequestError(err); reqErr != nil {
		return SendError(reqErr.StatusCode, reqErr.Message)
	}

	log.Printf("%v: %v\n", internalMessage, err)
	return SendError(500, internalMessage)
}

func CreateNewClient() *lambda.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("eu-west-3"),
		config.WithClientLogMode(aws.LogRetries),
	)
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := lambda.NewFromConfig(cfg)
	return client
}

// InvokeBookRoomSync drives the deployed BookRoom function through the invoke
// API, wrapping the request the way API Gateway would.
func InvokeBookRoomSync(client *lambda.Client, bookingRequest model.BookingRequest) (events.APIGatewayProxyResponse, error) {
	requestBody, err := json.Marshal(bookingRequest)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	proxyRequest := events.APIGatewayProxyRequest{Body: string(requestBody)}
	payload, err := json.Marshal(proxyRequest)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	response, err := client.Invoke(context.TODO(), &lambda.InvokeInput{
		FunctionName: aws.String("BookRoom"),
		Payload:      payload,
	})
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	var proxyResponse events.APIGatewayProxyResponse
	if err := json.Unmarshal(response.Payload, &proxyResponse); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return proxyResponse, nil
}
