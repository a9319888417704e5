package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"github.com/blacknovastudio/briefing-portal/internal/assistant"
	internalaws "github.com/blacknovastudio/briefing-portal/internal/aws"
	"github.com/blacknovastudio/briefing-portal/internal/briefing"
	"github.com/blacknovastudio/briefing-portal/internal/handlers"
	"github.com/blacknovastudio/briefing-portal/internal/notify"
	"github.com/blacknovastudio/briefing-portal/internal/observe"
	"github.com/blacknovastudio/briefing-portal/internal/orders"
)

const metricsNamespace = "BriefingPortal"

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterPortalRoutes(r, cfg)

	return r
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	clients, err := internalaws.NewAWSClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	sink := observe.NewSink(clients.CloudWatch, metricsNamespace, logger)
	store := orders.NewStore(clients.DynamoDB, os.Getenv("ORDERS_TABLE"))
	dispatcher := notify.NewQueueDispatcher(clients.SQS, os.Getenv("CONFIRMATIONS_QUEUE_URL"))
	submitter := briefing.NewSubmitter(store, dispatcher, sink, logger)
	assist := assistant.NewClient(os.Getenv("ASSISTANT_URL"), os.Getenv("ASSISTANT_API_KEY"))

	cfg := handlers.HandlerConfig{
		Submitter:  submitter,
		Orders:     store,
		Assistant:  assist,
		AuthSecret: []byte(os.Getenv("AUTH_HMAC_SECRET")),
		Logger:     logger,
	}

	r := setupRouter(cfg)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		addr := ":8080"
		logger.Info("running local server", slog.String("addr", addr))
		if err := r.Run(addr); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
