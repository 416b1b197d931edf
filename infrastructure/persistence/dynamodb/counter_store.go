package dynamodb

import (
	"context"
	"fmt"

	"resume-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// Client defines the DynamoDB operations used by the counter store, making it testable
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

var _ Client = (*dynamodb.Client)(nil)

// counterKey is the primary key of a counter item
type counterKey struct {
	ID string `dynamodbav:"id"`
}

// counterRecord is a counter item: partition key "id", number attribute "count"
type counterRecord struct {
	ID    string `dynamodbav:"id"`
	Count int    `dynamodbav:"count"`
}

// CounterStore keeps visitor counters in a DynamoDB table
type CounterStore struct {
	client    Client
	tableName string
	logger    *zap.Logger
}

var _ ports.CounterBackend = (*CounterStore)(nil)

// NewCounterStore creates a counter store on tableName
func NewCounterStore(client Client, tableName string, logger *zap.Logger) *CounterStore {
	return &CounterStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

func (s *CounterStore) key(id string) (map[string]types.AttributeValue, error) {
	key, err := attributevalue.MarshalMap(counterKey{ID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal counter key: %w", err)
	}
	return key, nil
}

// Increment atomically adds one with an ADD update expression.
// ADD creates the item and treats a missing count as zero.
func (s *CounterStore) Increment(ctx context.Context, id string) (int, error) {
	key, err := s.key(id)
	if err != nil {
		return 0, err
	}

	update := expression.Add(expression.Name("count"), expression.Value(1))
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return 0, fmt.Errorf("failed to build update expression: %w", err)
	}

	result, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       key,
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", id, err)
	}

	var record counterRecord
	if err := attributevalue.UnmarshalMap(result.Attributes, &record); err != nil {
		return 0, fmt.Errorf("failed to unmarshal counter %s: %w", id, err)
	}

	s.logger.Debug("Counter incremented",
		zap.String("table", s.tableName),
		zap.String("id", id),
		zap.Int("count", record.Count),
	)
	return record.Count, nil
}

// Get reads the counter item, zero when absent
func (s *CounterStore) Get(ctx context.Context, id string) (int, error) {
	key, err := s.key(id)
	if err != nil {
		return 0, err
	}

	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       key,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get counter %s: %w", id, err)
	}

	if len(result.Item) == 0 {
		return 0, nil
	}

	var record counterRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return 0, fmt.Errorf("failed to unmarshal counter %s: %w", id, err)
	}
	return record.Count, nil
}

// Put overwrites the counter item unconditionally
func (s *CounterStore) Put(ctx context.Context, id string, count int) error {
	item, err := attributevalue.MarshalMap(counterRecord{ID: id, Count: count})
	if err != nil {
		return fmt.Errorf("failed to marshal counter %s: %w", id, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put counter %s: %w", id, err)
	}
	return nil
}
