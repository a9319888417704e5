package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/blacknovastudio/briefing-portal/internal/aws"
)

// ErrPersistence indicates a write to the document store failed. The order
// must be treated as not created.
var ErrPersistence = errors.New("order persistence failed")

// Store encapsulates operations on the orders table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
	idFunc    func() string
}

// NewStore creates a new orders Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
		idFunc:    uuid.NewString,
	}
}

// Create appends a new Pending order under the client's partition, assigning
// the id and creation timestamp. On error no order exists.
func (s *Store) Create(ctx context.Context, clientID string, draft Draft) (Order, error) {
	now := s.nowFunc().UTC()
	id := s.idFunc()

	order := Order{
		ClientID:           clientID,
		SK:                 sortKey(now, id),
		OrderID:            id,
		ProjectName:        draft.ProjectName,
		ProjectDescription: draft.ProjectDescription,
		ProjectType:        draft.ProjectType,
		Checklist:          draft.Checklist,
		DeliveryMethod:     draft.DeliveryMethod,
		ExtraNotes:         draft.ExtraNotes,
		Status:             StatusPending,
		CreatedAt:          now,
	}

	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		return Order{}, fmt.Errorf("%w: marshal order: %w", ErrPersistence, err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return Order{}, fmt.Errorf("%w: put item: %w", ErrPersistence, err)
	}
	return order, nil
}

// QueryByClient returns the client's orders strictly newest first. A client
// with no orders gets an empty slice, not an error.
func (s *Store) QueryByClient(ctx context.Context, clientID string) ([]Order, error) {
	out, err := s.client.Query(ctx, &dyn.QueryInput{
		TableName:              &s.tableName,
		KeyConditionExpression: awsString("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
		ScanIndexForward: awsBool(false), // sk descends by creation time
	})
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	result := make([]Order, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &result); err != nil {
		return nil, fmt.Errorf("unmarshal orders: %w", err)
	}
	return result, nil
}

// HasActive reports whether the client holds an order in a non-terminal
// state. This is a point-in-time read, not an atomic guard: two
// near-simultaneous submissions can both observe false.
func (s *Store) HasActive(ctx context.Context, clientID string) (bool, error) {
	list, err := s.QueryByClient(ctx, clientID)
	if err != nil {
		return false, err
	}
	for _, o := range list {
		if IsActive(o.Status) {
			return true, nil
		}
	}
	return false, nil
}

// sortKey yields a range key that sorts lexicographically by creation time
// with the order id as a stable tiebreak.
func sortKey(t time.Time, orderID string) string {
	return fmt.Sprintf("%020d#%s", t.UnixNano(), orderID)
}

func awsString(s string) *string { return &s }
func awsBool(b bool) *bool       { return &b }
