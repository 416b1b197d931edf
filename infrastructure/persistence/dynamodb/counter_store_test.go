package dynamodb

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"resume-backend/infrastructure/persistence"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*dynamodb.GetItemOutput)
	return out, args.Error(1)
}

func (m *mockClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*dynamodb.PutItemOutput)
	return out, args.Error(1)
}

func (m *mockClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*dynamodb.UpdateItemOutput)
	return out, args.Error(1)
}

// tableClient is an in-memory stand-in for a DynamoDB table keyed by "id"
type tableClient struct {
	mu    sync.Mutex
	items map[string]int
}

func newTableClient() *tableClient {
	return &tableClient{items: make(map[string]int)}
}

func keyID(key map[string]types.AttributeValue) string {
	return key["id"].(*types.AttributeValueMemberS).Value
}

func (c *tableClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := keyID(params.Key)
	count, ok := c.items[id]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
		"id":    &types.AttributeValueMemberS{Value: id},
		"count": &types.AttributeValueMemberN{Value: strconv.Itoa(count)},
	}}, nil
}

func (c *tableClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	count, err := strconv.Atoi(params.Item["count"].(*types.AttributeValueMemberN).Value)
	if err != nil {
		return nil, err
	}
	c.items[keyID(params.Item)] = count
	return &dynamodb.PutItemOutput{}, nil
}

func (c *tableClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := keyID(params.Key)
	c.items[id]++
	return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
		"count": &types.AttributeValueMemberN{Value: strconv.Itoa(c.items[id])},
	}}, nil
}

func TestCounterStore_Increment_UsesAtomicAdd(t *testing.T) {
	ctx := context.Background()
	client := new(mockClient)
	client.On("UpdateItem", ctx, mock.MatchedBy(func(in *dynamodb.UpdateItemInput) bool {
		return aws.ToString(in.TableName) == "ResumeVisitorCount" &&
			keyID(in.Key) == "resume" &&
			in.ReturnValues == types.ReturnValueUpdatedNew &&
			in.UpdateExpression != nil
	})).Return(&dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
		"count": &types.AttributeValueMemberN{Value: "8"},
	}}, nil)

	store := NewCounterStore(client, "ResumeVisitorCount", zap.NewNop())

	count, err := store.Increment(ctx, "resume")

	require.NoError(t, err)
	assert.Equal(t, 8, count)
	client.AssertExpectations(t)
	client.AssertNotCalled(t, "GetItem", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "PutItem", mock.Anything, mock.Anything)

	in := client.Calls[0].Arguments.Get(1).(*dynamodb.UpdateItemInput)
	assert.Contains(t, aws.ToString(in.UpdateExpression), "ADD")
}

func TestCounterStore_Increment_Failure(t *testing.T) {
	ctx := context.Background()
	client := new(mockClient)
	client.On("UpdateItem", ctx, mock.Anything).Return(nil, errors.New("ProvisionedThroughputExceededException"))

	store := NewCounterStore(client, "ResumeVisitorCount", zap.NewNop())

	_, err := store.Increment(ctx, "resume")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ProvisionedThroughputExceededException")
}

func TestCounterStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Should treat missing item as zero", func(t *testing.T) {
		client := new(mockClient)
		client.On("GetItem", ctx, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		count, err := NewCounterStore(client, "t", zap.NewNop()).Get(ctx, "resume")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Should decode stored count", func(t *testing.T) {
		client := new(mockClient)
		client.On("GetItem", ctx, mock.Anything).Return(&dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
			"id":    &types.AttributeValueMemberS{Value: "resume"},
			"count": &types.AttributeValueMemberN{Value: "41"},
		}}, nil)

		count, err := NewCounterStore(client, "t", zap.NewNop()).Get(ctx, "resume")
		require.NoError(t, err)
		assert.Equal(t, 41, count)
	})
}

func TestCounterStore_Put(t *testing.T) {
	ctx := context.Background()
	client := new(mockClient)
	client.On("PutItem", ctx, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		count, ok := in.Item["count"].(*types.AttributeValueMemberN)
		return ok && count.Value == "5" && keyID(in.Item) == "resume"
	})).Return(&dynamodb.PutItemOutput{}, nil)

	err := NewCounterStore(client, "t", zap.NewNop()).Put(ctx, "resume", 5)
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestReadWriteMode_ReadFailureNeverWrites(t *testing.T) {
	ctx := context.Background()
	client := new(mockClient)
	client.On("GetItem", ctx, mock.Anything).Return(nil, errors.New("AccessDeniedException"))

	store, err := persistence.WithMode(NewCounterStore(client, "t", zap.NewNop()), persistence.ModeReadWrite)
	require.NoError(t, err)

	_, err = store.Increment(ctx, "resume")

	require.Error(t, err)
	client.AssertNotCalled(t, "PutItem", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
}

func TestSequentialIncrementsFromEmptyTable(t *testing.T) {
	ctx := context.Background()

	for _, mode := range []string{persistence.ModeAtomic, persistence.ModeReadWrite} {
		t.Run(mode, func(t *testing.T) {
			store, err := persistence.WithMode(NewCounterStore(newTableClient(), "t", zap.NewNop()), mode)
			require.NoError(t, err)

			for n := 1; n <= 5; n++ {
				count, err := store.Increment(ctx, "resume")
				require.NoError(t, err)
				assert.Equal(t, n, count)
			}
		})
	}
}
