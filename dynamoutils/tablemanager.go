package dynamoutils

import (
	"context"
	"errors"
	"log"
	"main/utils"
	net "net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/ratelimit"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type TableDefinition struct {
	TableName string

	PartitionKey AttributeDefinition
	SortKey      AttributeDefinition
}

type AttributeDefinition struct {
	Name       string
	ScalarType types.ScalarAttributeType
}

func CreateTable(client *dynamodb.Client, tableDefinition TableDefinition) (*types.TableDescription, error) {
	var tableDesc *types.TableDescription
	attributeDefinitions := []types.AttributeDefinition{{
		AttributeName: aws.String(tableDefinition.PartitionKey.Name),
		AttributeType: tableDefinition.PartitionKey.ScalarType,
	}}
	if tableDefinition.SortKey.Name != "" {
		attributeDefinitions = append(attributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(tableDefinition.SortKey.Name),
			AttributeType: tableDefinition.SortKey.ScalarType,
		})
	}

	tableSchema := createKeySchema(
		tableDefinition.PartitionKey.Name,
		tableDefinition.SortKey.Name,
	)

	createTableInput := dynamodb.CreateTableInput{
		TableName:            aws.String(tableDefinition.TableName),
		AttributeDefinitions: attributeDefinitions,
		KeySchema:            tableSchema,
		BillingMode:          types.BillingModePayPerRequest,
	}

	table, err := client.CreateTable(context.TODO(), &createTableInput)

	if err != nil {
		log.Printf("Couldn't create table %v. Here's why: %v\n", tableDefinition.TableName, err)
	} else {
		waiter := dynamodb.NewTableExistsWaiter(client)
		err = waiter.Wait(context.TODO(), &dynamodb.DescribeTableInput{
			TableName: aws.String(tableDefinition.TableName)}, 5*time.Minute)
		if err != nil {
			log.Printf("Wait for table exists failed. Here's why: %v\n", err)
		}
		tableDesc = table.TableDescription
	}
	return tableDesc, err
}

// CreateBookingsTable creates the single-table booking store; booking records
// and the inventory counter item share it, keyed by id.
func CreateBookingsTable(client *dynamodb.Client) (*types.TableDescription, error) {
	tableDefinition := TableDefinition{
		TableName:    "bookings-db",
		PartitionKey: AttributeDefinition{"id", types.ScalarAttributeTypeS},
	}

	return CreateTable(client, tableDefinition)
}

func CreateRoomsTable(client *dynamodb.Client) (*types.TableDescription, error) {
	tableDefinition := TableDefinition{
		TableName:    "rooms-db",
		PartitionKey: AttributeDefinition{"id", types.ScalarAttributeTypeS},
	}

	return CreateTable(client, tableDefinition)
}

// InitInventoryCounter seeds the aggregate room counter at zero. The put is
// conditional so re-running setup never resets a live counter.
func InitInventoryCounter(client *dynamodb.Client) error {
	_, err := client.PutItem(context.TODO(), &dynamodb.PutItemInput{
		TableName: aws.String("bookings-db"),
		Item: map[string]types.AttributeValue{
			"id":           &types.AttributeValueMemberS{Value: "bookings#inventory"},
			"rooms_booked": &types.AttributeValueMemberN{Value: "0"},
		},
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})

	var conditionFailed *types.ConditionalCheckFailedException
	if errors.As(err, &conditionFailed) {
		return nil
	}

	return err
}

func CreateLocalClient() *dynamodb.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("localhost"),
		config.WithEndpointResolver(aws.EndpointResolverFunc(
			func(service, region string) (aws.Endpoint, error) {
				return aws.Endpoint{URL: "http://localhost:8000", SigningRegion: "localhost"}, nil
			})),
		config.WithHTTPClient(
			http.NewBuildableClient().
				WithTransportOptions(func(tr *net.Transport) {
					tr.ExpectContinueTimeout = 0
					tr.MaxIdleConns = 1000
				}),
		),
		config.WithClientLogMode(aws.LogRetries),
	)

	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.Credentials = credentials.NewStaticCredentialsProvider("b59xng", "b2sc6o", "")
	})

	return client
}

func CreateAwsClient() *dynamodb.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("eu-west-3"),
		config.WithClientLogMode(aws.LogRetries),
		config.WithRetryer(func() aws.Retryer {
			return retry.NewStandard(func(so *retry.StandardOptions) {
				so.RateLimiter = ratelimit.NewTokenRateLimit(1000000)
				so.MaxAttempts = 0
			})
		}),
	)
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := dynamodb.NewFromConfig(cfg)
	return client
}

func CreateAwsPrivateClient() *dynamodb.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("eu-west-3"),
		config.WithClientLogMode(aws.LogRetries),
	)
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(os.Getenv("DDB_URL"))
	})
	return client
}

func GetExistingTableNames(client *dynamodb.Client) (tableNames []string, err error) {
	result, err := client.ListTables(context.TODO(), &dynamodb.ListTablesInput{})
	if err != nil {
		return []string{}, err
	}
	return result.TableNames, nil
}

func DeleteTable(client *dynamodb.Client, tableName string) (*dynamodb.DeleteTableOutput, error) {
	table, err := client.DeleteTable(context.TODO(), &dynamodb.DeleteTableInput{TableName: &tableName})

	if err != nil {
		log.Printf("Could not delete table %v: %v\n", tableName, err)
	}

	return table, err
}

// ScanAllItems exhausts every page of a table scan. DynamoDB caps pages at
// 1MB, so a single Scan call undercounts on large tables.
func ScanAllItems(client *dynamodb.Client, tableName string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var lastKey map[string]types.AttributeValue

	for {
		result, err := client.Scan(context.TODO(), &dynamodb.ScanInput{
			TableName:         aws.String(tableName),
			ExclusiveStartKey: lastKey,
		})

		if err != nil {
			return nil, err
		}

		items = append(items, result.Items...)
		lastKey = result.LastEvaluatedKey

		if len(lastKey) == 0 {
			break
		}
	}

	return items, nil
}

// DoPaginatedBatchWrite loads a set of put items through BatchWriteItem,
// fanning the batches out over a bounded pool of workers.
func DoPaginatedBatchWrite(client *dynamodb.Client, tableName string, items []map[string]types.AttributeValue) error {
	maxBatchSize := 25 // forced by aws

	parallelJobExecutor := utils.NewSimpleParallelJobExecutor(getConcurrentLoadingUnits())
	parallelJobExecutor.RegisterConsumer(func(tag string) bool { return true }, NewSimpleBatchRequestConsumer(len(items)/maxBatchSize))
	parallelJobExecutor.RegisterErrorHandler(func(err error) { log.Printf("Encountered error while loading batch: %v\n", err) })
	parallelJobExecutor.Start()

	var writeRequests []types.WriteRequest
	for _, item := range items {
		writeRequests = append(writeRequests, types.WriteRequest{PutRequest: &types.PutRequest{Item: item}})
	}

	startIndex := 0
	for {
		batchSize := min(len(writeRequests)-startIndex, maxBatchSize)
		if batchSize == 0 {
			break
		}

		excludedEndIndex := startIndex + batchSize

		func(startIndex int, excludedEndIndex int) {
			parallelJobExecutor.SubmitJob(func() (utils.Result, error) {
				_, err := client.BatchWriteItem(context.TODO(), &dynamodb.BatchWriteItemInput{
					RequestItems: map[string][]types.WriteRequest{
						tableName: writeRequests[startIndex:excludedEndIndex],
					},
				})
				time.Sleep(10 * time.Millisecond)
				return utils.Result{}, err
			})
		}(startIndex, excludedEndIndex)

		startIndex = excludedEndIndex
	}

	parallelJobExecutor.Stop()

	return nil
}

type SimpleBatchRequestConsumer struct {
	totalBatchesCount    int
	consumedBatchesCount int
}

func NewSimpleBatchRequestConsumer(totalBatchesCount int) *SimpleBatchRequestConsumer {
	return &SimpleBatchRequestConsumer{totalBatchesCount: totalBatchesCount}
}

func (c *SimpleBatchRequestConsumer) Consume(_ utils.Result) {
	c.consumedBatchesCount++
	if c.consumedBatchesCount%5 == 0 {
		log.Printf("Consumed %v out of %v batches", c.consumedBatchesCount, c.totalBatchesCount)
	}
}

func createKeySchema(partitionKeyName string, sortKeyName string) []types.KeySchemaElement {
	schema := []types.KeySchemaElement{{
		AttributeName: aws.String(partitionKeyName),
		KeyType:       types.KeyTypeHash,
	}}

	if sortKeyName != "" {
		schema = append(schema, types.KeySchemaElement{
			AttributeName: aws.String(sortKeyName),
			KeyType:       types.KeyTypeRange,
		})
	}

	return schema
}

func getConcurrentLoadingUnits() int {
	concurrentLoadingUnits := 10
	concurrentLoadingUnitsEnv := os.Getenv("CONCURRENT_LOADING_UNITS")
	if concurrentLoadingUnitsEnv != "" {
		var err error
		concurrentLoadingUnits, err = strconv.Atoi(concurrentLoadingUnitsEnv)
		if err != nil {
			log.Fatalf("Malformed CONCURRENT_LOADING_UNITS env variable (%v): %v", concurrentLoadingUnitsEnv, err)
		}
	}
	return concurrentLoadingUnits
}
