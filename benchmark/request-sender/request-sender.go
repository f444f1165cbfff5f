package request_sender

import (
	"encoding/json"
	"log"
	"main/benchmark"
	"main/booking/model"
	"main/booking/services"
	"main/lambdautils"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

type BookingRequestsParameters struct {
	ActiveUsersCount      int
	RequestsPerUser       int
	MaxConcurrentRequests int

	// -1 disables pacing between request waves.
	SendingPeriodMillis int
}

type RequestSender[R any, S any] interface {
	Send(request R) (S, error)
}

type identifiedBookingRequest struct {
	requestId string
	request   model.BookingRequest
}

// SendAndMeasureBookingRequests pushes randomized create-booking requests
// through the sender with bounded concurrency, logging per-request latency.
func SendAndMeasureBookingRequests(
	params BookingRequestsParameters,
	sender RequestSender[model.BookingRequest, events.APIGatewayProxyResponse],
	timeLogger *benchmark.RequestTimeLoggerImpl) {

	var requestSenderWg sync.WaitGroup

	timeLogger.Start()
	defer timeLogger.Stop()

	inputQueue := make(chan identifiedBookingRequest, params.MaxConcurrentRequests)
	for i := 0; i < params.MaxConcurrentRequests; i++ {
		requestSenderWg.Add(1)
		go handleBookingRequest(inputQueue, &requestSenderWg, sender, timeLogger)
	}

	for i := 0; i < params.ActiveUsersCount; i++ {
		for j, bookingRequest := range buildBookingRequestsForUser(i, params) {
			if j%params.MaxConcurrentRequests == 0 && params.SendingPeriodMillis != -1 {
				time.Sleep(time.Duration(params.SendingPeriodMillis) * time.Millisecond)
			}
			inputQueue <- bookingRequest
		}
	}
	close(inputQueue)
	requestSenderWg.Wait()
}

func buildBookingRequestsForUser(userIndex int, params BookingRequestsParameters) []identifiedBookingRequest {
	var bookingRequests []identifiedBookingRequest
	userId := "User/" + strconv.Itoa(userIndex)

	for requestIndex := 0; requestIndex < params.RequestsPerUser; requestIndex++ {
		checkIn := time.Now().UTC().AddDate(0, 0, 1+rand.Intn(30))
		checkOut := checkIn.AddDate(0, 0, 1+rand.Intn(7))

		rooms := model.RoomCounts{
			SingleRoom: rand.Intn(2),
			DoubleRoom: 1 + rand.Intn(2),
			Suite:      rand.Intn(2),
		}

		bookingRequests = append(bookingRequests, identifiedBookingRequest{
			requestId: userId + "#" + strconv.Itoa(requestIndex) + "#" + strconv.Itoa(rand.Intn(1000)),
			request: model.BookingRequest{
				NumberOfGuests: 1 + rand.Intn(rooms.DoubleRoom*2),
				RoomCounts:     rooms,
				CheckInDate:    model.CompactDate(checkIn.Format("20060102")),
				CheckOutDate:   model.CompactDate(checkOut.Format("20060102")),
				FullName:       userId,
				Email:          userId + "@load.test",
			},
		})
	}

	return bookingRequests
}

func handleBookingRequest(inputChannel chan identifiedBookingRequest, wg *sync.WaitGroup,
	requestSender RequestSender[model.BookingRequest, events.APIGatewayProxyResponse],
	timeLogger *benchmark.RequestTimeLoggerImpl) {
	for bookingRequest := range inputChannel {
		err := timeLogger.LogStartRequest(bookingRequest.requestId)
		if err != nil {
			log.Printf("Could not log the start request %v: %v\n", bookingRequest.requestId, err)
		}
		response, err := requestSender.Send(bookingRequest.request)
		if err != nil {
			log.Printf("Failed to execute request with id %v: %v\n", bookingRequest.requestId, err)
		} else if response.StatusCode != 200 {
			log.Printf("Request %v was rejected: %v\n", bookingRequest.requestId, response.Body)
		}
		err = timeLogger.LogEndRequest(bookingRequest.requestId)
		if err != nil {
			log.Printf("Could not log the end request %v: %v\n", bookingRequest.requestId, err)
		}
	}
	wg.Done()
}

// LambdaBookingSender goes through the deployed BookRoom function.
type LambdaBookingSender struct {
	Client *lambda.Client
}

func (s *LambdaBookingSender) Send(request model.BookingRequest) (events.APIGatewayProxyResponse, error) {
	return lambdautils.InvokeBookRoomSync(s.Client, request)
}

// ServiceBookingSender runs the admission service in-process, against
// whatever store its dao points at. Useful with DynamoDB Local.
type ServiceBookingSender struct {
	AdmissionService *services.AdmissionService
}

func (s *ServiceBookingSender) Send(request model.BookingRequest) (events.APIGatewayProxyResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	confirmation, err := s.AdmissionService.BookRoom(string(body))
	if err != nil {
		if reqErr := model.AsRequestError(err); reqErr != nil {
			return events.APIGatewayProxyResponse{StatusCode: reqErr.StatusCode, Body: reqErr.Message}, nil
		}
		return events.APIGatewayProxyResponse{}, err
	}

	responseBody, err := json.Marshal(confirmation)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{StatusCode: 200, Body: string(responseBody)}, nil
}

type MockRequestSender struct{}

func (mrs *MockRequestSender) Send(_ model.BookingRequest) (events.APIGatewayProxyResponse, error) {
	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}
