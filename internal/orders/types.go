package orders

import "time"

// Order statuses as stored in the documents. Pending and In Progress are the
// non-terminal states; only a back-office process moves an order past Pending.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// IsActive reports whether status is non-terminal. A client may hold at most
// one active order at a time.
func IsActive(status string) bool {
	return status == StatusPending || status == StatusInProgress
}

// Order represents the briefing document stored in the orders DynamoDB table.
// The table is keyed by client_id with sk as the range key, so a single query
// returns one client's orders newest first.
type Order struct {
	ClientID           string    `dynamodbav:"client_id"` // PK
	SK                 string    `dynamodbav:"sk"`        // zero-padded unix nanos + "#" + order_id
	OrderID            string    `dynamodbav:"order_id"`
	ProjectName        string    `dynamodbav:"project_name"`
	ProjectDescription string    `dynamodbav:"project_description"`
	ProjectType        string    `dynamodbav:"project_type"`
	Checklist          []string  `dynamodbav:"checklist,omitempty"`
	DeliveryMethod     string    `dynamodbav:"delivery_method"`
	ExtraNotes         string    `dynamodbav:"extra_notes,omitempty"`
	Status             string    `dynamodbav:"status"` // Pending | In Progress | Completed
	CreatedAt          time.Time `dynamodbav:"created_at"`
}

// Draft holds the client-supplied fields of a new order. The store assigns
// id, status, and timestamp on creation.
type Draft struct {
	ProjectName        string
	ProjectDescription string
	ProjectType        string
	Checklist          []string
	DeliveryMethod     string
	ExtraNotes         string
}
