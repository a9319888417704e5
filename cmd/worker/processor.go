package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	internalaws "github.com/blacknovastudio/briefing-portal/internal/aws"
	"github.com/blacknovastudio/briefing-portal/internal/notify"
)

// FailureReporter receives classified send failures.
type FailureReporter interface {
	ReportFailure(ctx context.Context, operation string, err error)
}

// Processor consumes confirmation messages and sends the order confirmation
// email.
type Processor struct {
	ses    internalaws.SESAPI
	sender string
	sink   FailureReporter
	logger *slog.Logger
}

// NewProcessor creates a worker processor. sender is the verified From
// address.
func NewProcessor(ses internalaws.SESAPI, sender string, sink FailureReporter, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Processor{ses: ses, sender: sender, sink: sink, logger: logger}
}

// Handle receives an SQS batch event and processes each message. Returning an
// error lets the Lambda runtime retry; repeated failures land in the DLQ.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			p.logger.ErrorContext(ctx, "worker error", slog.String("error", err.Error()))
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var c notify.Confirmation
	if err := json.Unmarshal([]byte(rec.Body), &c); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}
	if c.ClientEmail == "" {
		return fmt.Errorf("confirmation without recipient, order=%s", c.OrderReference)
	}

	p.logger.InfoContext(ctx, "sending confirmation",
		slog.String("order_id", c.OrderReference),
		slog.String("delivery_method", c.DeliveryMethod),
	)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: sdkaws.String(p.sender),
		Destination: &sestypes.Destination{
			ToAddresses: []string{c.ClientEmail},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: sdkaws.String(subject(c))},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: sdkaws.String(body(c))},
				},
			},
		},
	}

	if _, err := p.ses.SendEmail(ctx, input); err != nil {
		if p.sink != nil {
			p.sink.ReportFailure(ctx, "confirmation.send", err)
		}
		return fmt.Errorf("send confirmation email: %w", err)
	}

	p.logger.InfoContext(ctx, "confirmation sent", slog.String("order_id", c.OrderReference))
	return nil
}
