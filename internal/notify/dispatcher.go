package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/blacknovastudio/briefing-portal/internal/aws"
)

// Confirmation is the payload handed to the notification service for a newly
// created order.
type Confirmation struct {
	ClientEmail    string `json:"client_email"`
	ClientName     string `json:"client_name"`
	ProjectName    string `json:"project_name"`
	OrderReference string `json:"order_id"`
	DeliveryMethod string `json:"delivery_method"`
}

// Dispatcher sends an order confirmation. Delivery is at-most-once and best
// effort: callers are permitted to discard the returned error after the order
// itself is durably created.
type Dispatcher interface {
	Notify(ctx context.Context, c Confirmation) error
}

// QueueDispatcher enqueues confirmations for the email worker.
type QueueDispatcher struct {
	pub *aws.Publisher
}

// NewQueueDispatcher returns a dispatcher bound to the confirmations queue.
func NewQueueDispatcher(sqsClient aws.SQSAPI, queueURL string) *QueueDispatcher {
	return &QueueDispatcher{pub: aws.NewPublisher(sqsClient, queueURL)}
}

// Notify publishes the confirmation to the queue. One attempt, no retry.
func (d *QueueDispatcher) Notify(ctx context.Context, c Confirmation) error {
	body, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal confirmation: %w", err)
	}
	attrs := map[string]string{
		"order_id":        c.OrderReference,
		"delivery_method": c.DeliveryMethod,
	}
	if err := d.pub.Send(ctx, string(body), attrs); err != nil {
		return fmt.Errorf("enqueue confirmation: %w", err)
	}
	return nil
}

var _ Dispatcher = (*QueueDispatcher)(nil)
