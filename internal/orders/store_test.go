package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

// mockDynamo is a simple in-memory table supporting PutItem and Query.
type mockDynamo struct {
	mu       sync.Mutex
	items    []map[string]types.AttributeValue
	putErr   error
	queryErr error
}

func (m *mockDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return nil, m.putErr
	}
	m.items = append(m.items, params.Item)
	return &dyn.PutItemOutput{}, nil
}

func (m *mockDynamo) Query(ctx context.Context, params *dyn.QueryInput, optFns ...func(*dyn.Options)) (*dyn.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	cid := params.ExpressionAttributeValues[":cid"].(*types.AttributeValueMemberS).Value

	var matched []map[string]types.AttributeValue
	for _, item := range m.items {
		if v, ok := item["client_id"].(*types.AttributeValueMemberS); ok && v.Value == cid {
			matched = append(matched, item)
		}
	}
	// range key ordering; ScanIndexForward=false means descending
	sort.Slice(matched, func(i, j int) bool {
		a := matched[i]["sk"].(*types.AttributeValueMemberS).Value
		b := matched[j]["sk"].(*types.AttributeValueMemberS).Value
		return a < b
	})
	if params.ScanIndexForward != nil && !*params.ScanIndexForward {
		for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
			matched[i], matched[j] = matched[j], matched[i]
		}
	}
	return &dyn.QueryOutput{Items: matched}, nil
}

func (m *mockDynamo) insertOrder(t *testing.T, o Order) {
	t.Helper()
	if o.SK == "" {
		o.SK = sortKey(o.CreatedAt, o.OrderID)
	}
	item, err := attributevalue.MarshalMap(o)
	require.NoError(t, err)
	m.mu.Lock()
	m.items = append(m.items, item)
	m.mu.Unlock()
}

func testDraft() Draft {
	return Draft{
		ProjectName:        "Nova Cloud",
		ProjectDescription: "A launch site for a cloud tooling startup",
		ProjectType:        "Website",
		Checklist:          []string{"Database", "Hosting"},
		DeliveryMethod:     "GitHub",
	}
}

func TestCreate_AssignsServerFields(t *testing.T) {
	mock := &mockDynamo{}
	store := NewStore(mock, "orders")
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	store.nowFunc = func() time.Time { return now }
	store.idFunc = func() string { return "order-1" }

	order, err := store.Create(context.Background(), "client-a", testDraft())
	require.NoError(t, err)
	require.Equal(t, "order-1", order.OrderID)
	require.Equal(t, "client-a", order.ClientID)
	require.Equal(t, StatusPending, order.Status)
	require.Equal(t, now, order.CreatedAt)
	require.Len(t, mock.items, 1)
}

func TestCreate_PutFailure(t *testing.T) {
	mock := &mockDynamo{putErr: errors.New("connectivity lost")}
	store := NewStore(mock, "orders")

	_, err := store.Create(context.Background(), "client-a", testDraft())
	require.ErrorIs(t, err, ErrPersistence)
	require.Empty(t, mock.items, "no partial order may exist after a failed write")
}

func TestQueryByClient_NoOrders(t *testing.T) {
	store := NewStore(&mockDynamo{}, "orders")

	list, err := store.QueryByClient(context.Background(), "client-a")
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestQueryByClient_NewestFirst(t *testing.T) {
	mock := &mockDynamo{}
	store := NewStore(mock, "orders")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// insert out of chronological order
	for _, offset := range []int{2, 0, 3, 1} {
		mock.insertOrder(t, Order{
			ClientID:    "client-a",
			OrderID:     fmt.Sprintf("order-%d", offset),
			ProjectName: "P",
			Status:      StatusCompleted,
			CreatedAt:   base.Add(time.Duration(offset) * time.Hour),
		})
	}
	mock.insertOrder(t, Order{
		ClientID:  "client-b",
		OrderID:   "other",
		Status:    StatusPending,
		CreatedAt: base.Add(10 * time.Hour),
	})

	list, err := store.QueryByClient(context.Background(), "client-a")
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i := 1; i < len(list); i++ {
		require.True(t, !list[i].CreatedAt.After(list[i-1].CreatedAt),
			"orders must be sorted by creation time descending")
	}
}

func TestHasActive(t *testing.T) {
	mock := &mockDynamo{}
	store := NewStore(mock, "orders")
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.insertOrder(t, Order{ClientID: "client-a", OrderID: "o1", Status: StatusCompleted, CreatedAt: now})

	active, err := store.HasActive(context.Background(), "client-a")
	require.NoError(t, err)
	require.False(t, active)

	mock.insertOrder(t, Order{ClientID: "client-a", OrderID: "o2", Status: StatusInProgress, CreatedAt: now.Add(time.Hour)})

	active, err = store.HasActive(context.Background(), "client-a")
	require.NoError(t, err)
	require.True(t, active)
}
