package main

import (
	"main/booking/db"
	"main/dynamoutils"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

var client *dynamodb.Client

func init() {
	client = dynamoutils.CreateAwsClient()
}

func handler() error {
	_, err := dynamoutils.DeleteTable(client, db.BookingsTableName)
	if err != nil {
		return err
	}

	_, err = dynamoutils.DeleteTable(client, db.RoomsTableName)
	return err
}

func main() {
	lambda.Start(handler)
}
