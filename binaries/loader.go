package main

import (
	"log"
	"main/benchmark"
	request_sender "main/benchmark/request-sender"
	"main/booking/db"
	"main/booking/idgen"
	"main/booking/model"
	"main/booking/services"
	"main/dynamoutils"
	"main/lambdautils"
	"main/utils"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Load driver for the booking API. By default it runs the admission service
// in-process against DynamoDB Local; pass "aws" to go through the deployed
// BookRoom function instead. Numeric parameters are key=value arguments:
//
//	go run ./binaries users=20 requests=10 concurrency=8
func main() {
	args := os.Args
	isLocalDeployment := !slices.Contains(args, "aws")

	if err := utils.SetLogger("loader"); err != nil {
		log.Printf("Could not redirect logs to file: %v\n", err)
	}

	params := request_sender.BookingRequestsParameters{
		ActiveUsersCount:      intArg(args, "users", 10),
		RequestsPerUser:       intArg(args, "requests", 5),
		MaxConcurrentRequests: intArg(args, "concurrency", 4),
		SendingPeriodMillis:   intArg(args, "period", -1),
	}

	var sender request_sender.RequestSender[model.BookingRequest, events.APIGatewayProxyResponse]
	if isLocalDeployment {
		client := dynamoutils.CreateLocalClient()
		ensureTables(client)
		admissionService := services.NewAdmissionService(db.NewBookingDynDao(client), idgen.NewUuidGenerator(), nil)
		sender = &request_sender.ServiceBookingSender{AdmissionService: admissionService}
	} else {
		sender = &request_sender.LambdaBookingSender{Client: lambdautils.CreateNewClient()}
	}

	timeLogger := benchmark.NewRequestTimeLoggerImpl(
		filepath.Join(filepath.Dir(utils.Root), "log"),
		"booking-load",
		params.MaxConcurrentRequests,
	)

	startTime := time.Now()
	request_sender.SendAndMeasureBookingRequests(params, sender, timeLogger)
	elapsed := time.Since(startTime)

	totalRequests := params.ActiveUsersCount * params.RequestsPerUser
	err := utils.ExportToCsv("booking-load-summary", [][]string{
		{"total_requests", "concurrency", "elapsed_millis"},
		{strconv.Itoa(totalRequests), strconv.Itoa(params.MaxConcurrentRequests), strconv.FormatInt(elapsed.Milliseconds(), 10)},
	})
	if err != nil {
		log.Printf("Could not export the run summary: %v\n", err)
	}

	log.Printf("Sent %v requests in %v\n", totalRequests, elapsed)
}

func ensureTables(client *dynamodb.Client) {
	existingTableNames, err := dynamoutils.GetExistingTableNames(client)
	if err != nil {
		log.Fatalf("Could not list tables: %v\n", err)
	}

	if !slices.Contains(existingTableNames, db.BookingsTableName) {
		if _, err = dynamoutils.CreateBookingsTable(client); err != nil {
			log.Fatalf("Could not create the bookings table: %v\n", err)
		}
	}
	if !slices.Contains(existingTableNames, db.RoomsTableName) {
		if _, err = dynamoutils.CreateRoomsTable(client); err != nil {
			log.Fatalf("Could not create the rooms table: %v\n", err)
		}
	}

	if err = dynamoutils.InitInventoryCounter(client); err != nil {
		log.Fatalf("Could not initialize the inventory counter: %v\n", err)
	}
}

func intArg(args []string, name string, defaultValue int) int {
	prefix := name + "="
	for _, arg := range args {
		if strings.HasPrefix(arg, prefix) {
			value, err := strconv.Atoi(strings.TrimPrefix(arg, prefix))
			if err != nil {
				log.Fatalf("Malformed argument %v: %v", arg, err)
			}
			return value
		}
	}
	return defaultValue
}
