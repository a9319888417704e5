package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blacknovastudio/briefing-portal/internal/assistant"
	"github.com/blacknovastudio/briefing-portal/internal/auth"
	"github.com/blacknovastudio/briefing-portal/internal/briefing"
	"github.com/blacknovastudio/briefing-portal/internal/orders"
	"github.com/blacknovastudio/briefing-portal/internal/validation"
)

// OrderReader is the read side of the order repository used by the handlers.
type OrderReader interface {
	QueryByClient(ctx context.Context, clientID string) ([]orders.Order, error)
	HasActive(ctx context.Context, clientID string) (bool, error)
}

// Suggester is the briefing assistant surface used by the handlers.
type Suggester interface {
	Suggest(ctx context.Context, description, extraNotes string) (assistant.Suggestions, error)
}

// HandlerConfig groups dependencies for the portal routes.
type HandlerConfig struct {
	Submitter  *briefing.Submitter
	Orders     OrderReader
	Assistant  Suggester
	AuthSecret []byte
	Logger     *slog.Logger
}

// suggestionRequest is the form state sent to POST /orders/suggestions.
type suggestionRequest struct {
	ProjectDescription string   `json:"project_description" validate:"required,min=10"`
	ExtraNotes         string   `json:"extra_notes,omitempty"`
	ProjectType        string   `json:"project_type,omitempty"`
	Checklist          []string `json:"checklist,omitempty"`
}

// RegisterPortalRoutes registers the client portal API.
func RegisterPortalRoutes(r *gin.Engine, cfg HandlerConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	v := validation.New()

	portal := r.Group("/", auth.Middleware(cfg.AuthSecret))

	portal.POST("/orders", func(c *gin.Context) {
		ctx := c.Request.Context()

		session, ok := auth.SessionFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
			return
		}

		var input validation.BriefingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body", "msg": err.Error()})
			return
		}

		// best-effort pre-check against the client's own orders; read once,
		// at the start of the submission only
		hasActive, err := cfg.Orders.HasActive(ctx, session.ClientID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order_lookup_failed"})
			return
		}

		receipt, err := cfg.Submitter.Submit(ctx, session, hasActive, input)
		if err != nil {
			var ve *briefing.ValidationError
			switch {
			case errors.As(err, &ve):
				c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "fields": ve.Fields})
			case errors.Is(err, briefing.ErrActiveOrderExists):
				c.JSON(http.StatusConflict, gin.H{"error": "active_order_exists"})
			case errors.Is(err, briefing.ErrSubmissionInFlight):
				c.JSON(http.StatusAccepted, gin.H{"message": "submission already in progress"})
			case errors.Is(err, orders.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "order_create_failed"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "submission_failed"})
			}
			return
		}

		c.Header("Location", fmt.Sprintf("/orders/%s", receipt.OrderID))
		c.JSON(http.StatusCreated, receipt)
	})

	portal.GET("/orders", func(c *gin.Context) {
		ctx := c.Request.Context()

		session, ok := auth.SessionFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
			return
		}

		list, err := cfg.Orders.QueryByClient(ctx, session.ClientID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order_lookup_failed"})
			return
		}

		cards := make([]orders.CardView, 0, len(list))
		for _, o := range list {
			cards = append(cards, orders.NewCardView(o))
		}
		c.JSON(http.StatusOK, gin.H{"orders": cards})
	})

	portal.POST("/orders/suggestions", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req suggestionRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		resp := gin.H{
			"project_type": req.ProjectType,
			"checklist":    req.Checklist,
			"applied":      false,
		}

		suggestions, err := cfg.Assistant.Suggest(ctx, req.ProjectDescription, req.ExtraNotes)
		if err != nil {
			// suggestion failure is never fatal: return the form unchanged
			logger.DebugContext(ctx, "assistant unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, resp)
			return
		}

		if t, ok := assistant.SuggestedType(suggestions.ProjectTypes); ok {
			resp["project_type"] = t
		}
		resp["checklist"] = assistant.MergeChecklist(req.Checklist, suggestions.ChecklistOptions)
		resp["applied"] = true
		c.JSON(http.StatusOK, resp)
	})
}
