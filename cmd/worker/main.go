package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	internalaws "github.com/blacknovastudio/briefing-portal/internal/aws"
	"github.com/blacknovastudio/briefing-portal/internal/observe"
)

const metricsNamespace = "BriefingPortal"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	clients, err := internalaws.NewAWSClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	sink := observe.NewSink(clients.CloudWatch, metricsNamespace, logger)
	p := NewProcessor(clients.SES, os.Getenv("CONFIRMATIONS_SENDER"), sink, logger)

	// If RUN_LOCAL=true, simulate a single SQS event for local testing.
	if os.Getenv("RUN_LOCAL") == "true" {
		testBody := os.Getenv("LOCAL_SQS_BODY")
		if testBody == "" {
			testBody = `{"client_email":"client@example.com","client_name":"Client","project_name":"Nova Cloud","order_id":"BN-LOCAL0001","delivery_method":"GitHub"}`
		}
		event := events.SQSEvent{
			Records: []events.SQSMessage{
				{Body: testBody},
			},
		}
		if err := p.Handle(context.Background(), event); err != nil {
			log.Fatalf("local handler error: %v", err)
		}
		return
	}

	lambda.Start(p.Handle)
}
