// Package briefing implements the order submission workflow: validate the
// briefing, enforce the single-active-order rule, persist the order, then
// dispatch the confirmation. Persistence always precedes notification;
// notification failure never rolls the order back.
package briefing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/blacknovastudio/briefing-portal/internal/notify"
	"github.com/blacknovastudio/briefing-portal/internal/orders"
	"github.com/blacknovastudio/briefing-portal/internal/validation"
)

// Session identifies the submitting client, as supplied by the identity
// provider.
type Session struct {
	ClientID string
	Name     string
	Email    string
}

// Receipt is returned to the caller on a successful submission.
type Receipt struct {
	OrderID   string    `json:"order_id"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderCreator is the slice of the order repository the workflow needs.
type OrderCreator interface {
	Create(ctx context.Context, clientID string, draft orders.Draft) (orders.Order, error)
}

// FailureReporter receives failures the workflow swallows.
type FailureReporter interface {
	ReportFailure(ctx context.Context, operation string, err error)
}

// Submitter orchestrates briefing submissions.
type Submitter struct {
	repo       OrderCreator
	dispatcher notify.Dispatcher
	sink       FailureReporter
	logger     *slog.Logger
	validate   func(validation.BriefingInput) error
	newRef     func() string
	guard      *guard
}

// NewSubmitter wires the workflow. sink may be nil.
func NewSubmitter(repo OrderCreator, dispatcher notify.Dispatcher, sink FailureReporter, logger *slog.Logger) *Submitter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	v := validation.New()
	return &Submitter{
		repo:       repo,
		dispatcher: dispatcher,
		sink:       sink,
		logger:     logger,
		validate:   func(in validation.BriefingInput) error { return v.Struct(in) },
		newRef:     orders.NewReference,
		guard:      newGuard(),
	}
}

// Submit runs the workflow for one briefing. All validation and business-rule
// checks pass before any side effect; the one durable write precedes the one
// best-effort notification.
func (s *Submitter) Submit(ctx context.Context, session Session, hasActiveOrder bool, input validation.BriefingInput) (Receipt, error) {
	// business-rule pre-check, evaluated against caller-visible state only
	if hasActiveOrder {
		return Receipt{}, ErrActiveOrderExists
	}

	if !s.guard.begin(session.ClientID) {
		return Receipt{}, ErrSubmissionInFlight
	}
	ok := false
	defer func() { s.guard.finish(session.ClientID, ok) }()

	if err := s.validate(input); err != nil {
		return Receipt{}, &ValidationError{Fields: validation.ErrorsToMap(err)}
	}

	draft := orders.Draft{
		ProjectName:        input.ProjectName,
		ProjectDescription: input.ProjectDescription,
		ProjectType:        input.ProjectType,
		Checklist:          orders.FilterChecklist(input.Checklist),
		DeliveryMethod:     input.DeliveryMethod,
		ExtraNotes:         input.ExtraNotes,
	}

	order, err := s.repo.Create(ctx, session.ClientID, draft)
	if err != nil {
		if s.sink != nil {
			s.sink.ReportFailure(ctx, "orders.create", err)
		}
		return Receipt{}, fmt.Errorf("create order: %w", err)
	}

	reference := s.newRef()

	// best effort: the order is already durable, so a failed confirmation is
	// reported and swallowed
	confirmation := notify.Confirmation{
		ClientEmail:    session.Email,
		ClientName:     session.Name,
		ProjectName:    order.ProjectName,
		OrderReference: reference,
		DeliveryMethod: order.DeliveryMethod,
	}
	if err := s.dispatcher.Notify(ctx, confirmation); err != nil {
		if s.sink != nil {
			s.sink.ReportFailure(ctx, "orders.confirmation", err)
		}
		s.logger.WarnContext(ctx, "confirmation dispatch failed",
			slog.String("order_id", order.OrderID),
			slog.String("error", err.Error()),
		)
	}

	ok = true
	s.logger.InfoContext(ctx, "briefing submitted",
		slog.String("order_id", order.OrderID),
		slog.String("client_id", session.ClientID),
		slog.String("reference", reference),
	)
	return Receipt{
		OrderID:   order.OrderID,
		Reference: reference,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}, nil
}

// State exposes the client's current submission state.
func (s *Submitter) State(clientID string) State {
	return s.guard.state(clientID)
}
