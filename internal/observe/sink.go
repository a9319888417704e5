package observe

import (
	"context"
	"errors"
	"io"
	"log/slog"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/smithy-go"

	internalaws "github.com/blacknovastudio/briefing-portal/internal/aws"
)

// Sink receives collaborator failures that must not surface to the client.
// Permission failures are emitted as structured events (log record plus a
// CloudWatch datapoint) so they can be diagnosed later; everything else is
// logged at warn level.
type Sink struct {
	cw        internalaws.CloudWatchAPI
	namespace string
	logger    *slog.Logger
}

// NewSink returns a Sink publishing under the given CloudWatch namespace.
// cw may be nil, in which case only log records are emitted.
func NewSink(cw internalaws.CloudWatchAPI, namespace string, logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Sink{cw: cw, namespace: namespace, logger: logger}
}

// ReportFailure records a swallowed failure from the named operation.
func (s *Sink) ReportFailure(ctx context.Context, operation string, err error) {
	if err == nil {
		return
	}

	if IsPermissionDenied(err) {
		s.logger.ErrorContext(ctx, "permission denied",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
		s.putMetric(ctx, "PermissionDenied", operation)
		return
	}

	s.logger.WarnContext(ctx, "collaborator failure",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
	s.putMetric(ctx, "CollaboratorFailure", operation)
}

func (s *Sink) putMetric(ctx context.Context, metric, operation string) {
	if s.cw == nil {
		return
	}
	_, err := s.cw.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: sdkaws.String(s.namespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: sdkaws.String(metric),
				Value:      sdkaws.Float64(1),
				Unit:       cwtypes.StandardUnitCount,
				Dimensions: []cwtypes.Dimension{
					{Name: sdkaws.String("Operation"), Value: sdkaws.String(operation)},
				},
			},
		},
	})
	if err != nil {
		// metric emission itself is best effort
		s.logger.WarnContext(ctx, "put metric failed", slog.String("error", err.Error()))
	}
}

// permission error codes across AWS services
var permissionCodes = map[string]struct{}{
	"AccessDenied":                {},
	"AccessDeniedException":       {},
	"UnauthorizedOperation":       {},
	"UnrecognizedClientException": {},
}

// IsPermissionDenied reports whether err is an authorization failure from an
// AWS service call.
func IsPermissionDenied(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		_, ok := permissionCodes[apiErr.ErrorCode()]
		return ok
	}
	return false
}
