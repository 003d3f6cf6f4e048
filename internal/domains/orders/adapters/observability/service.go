package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersapp "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/application"
	"github.com/Apurer/go-gin-pizza-api/internal/domains/orders/application/types"
	ordersdomain "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/domain"
	ordersports "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/ports"
)

const tracerName = "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/adapters/observability/service"

// Service decorates the order lifecycle service with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) CreateOrder(ctx context.Context, input types.CreateOrderInput) (string, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CreateOrder",
		trace.WithAttributes(attribute.Int("order.line_items", len(input.LineItems))))
	defer span.End()

	s.logInfo(ctx, "creating order", slog.Int("order.line_items", len(input.LineItems)))
	id, err := s.inner.CreateOrder(ctx, input)
	if err != nil {
		s.metrics.recordRejected(ctx, "create", err)
		return "", s.handleError(ctx, span, err, "failed to create order")
	}
	span.SetAttributes(attribute.String("order.id", id))
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "order created", slog.String("order.id", id))
	return id, nil
}

func (s *Service) GetStatus(ctx context.Context, id string) (ordersdomain.Status, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetStatus", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	status, err := s.inner.GetStatus(ctx, id)
	if err != nil {
		return "", s.handleError(ctx, span, err, "failed to load order status", slog.String("order.id", id))
	}
	span.SetAttributes(attribute.String("order.status", status.String()))
	return status, nil
}

func (s *Service) GetDetails(ctx context.Context, id string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetDetails", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "loading order", slog.String("order.id", id))
	order, err := s.inner.GetDetails(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", id))
	}
	span.SetAttributes(attribute.String("order.status", order.Status.String()))
	return order, nil
}

func (s *Service) ListPending(ctx context.Context) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListPending")
	defer span.End()

	orders, err := s.inner.ListPending(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list pending orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(orders)))
	return orders, nil
}

func (s *Service) ListAll(ctx context.Context) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListAll")
	defer span.End()

	orders, err := s.inner.ListAll(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(orders)))
	return orders, nil
}

func (s *Service) StartProcessing(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.StartProcessing", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "starting order", slog.String("order.id", id))
	if err := s.inner.StartProcessing(ctx, id); err != nil {
		s.metrics.recordRejected(ctx, "start", err)
		return s.handleError(ctx, span, err, "failed to start order", slog.String("order.id", id))
	}
	s.metrics.recordStarted(ctx)
	s.logInfo(ctx, "order in progress", slog.String("order.id", id))
	return nil
}

func (s *Service) CompleteProcessing(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.CompleteProcessing", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "completing order", slog.String("order.id", id))
	if err := s.inner.CompleteProcessing(ctx, id); err != nil {
		s.metrics.recordRejected(ctx, "complete", err)
		return s.handleError(ctx, span, err, "failed to complete order", slog.String("order.id", id))
	}
	s.metrics.recordCompleted(ctx)
	s.logInfo(ctx, "order completed", slog.String("order.id", id))
	return nil
}

func (s *Service) GetOrderInProgress(ctx context.Context) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrderInProgress")
	defer span.End()

	order, err := s.inner.GetOrderInProgress(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order in progress")
	}
	span.SetAttributes(attribute.Bool("order.in_progress", order != nil))
	if order != nil {
		span.SetAttributes(attribute.String("order.id", order.ID))
	}
	return order, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	level := slog.LevelError
	if rejectionReason(err) != "" {
		level = slog.LevelWarn
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, level, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

// rejectionReason classifies caller errors; unexpected failures yield "".
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ordersapp.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ordersapp.ErrInvalidEntryType):
		return "invalid_entry_type"
	case errors.Is(err, ordersports.ErrNotFound):
		return "not_found"
	case errors.Is(err, ordersapp.ErrOrderAlreadyInProgress):
		return "already_in_progress"
	case errors.Is(err, ordersapp.ErrOrderAlreadyProcessed):
		return "already_processed"
	case errors.Is(err, ordersapp.ErrOrderNotInProgress):
		return "not_in_progress"
	default:
		return ""
	}
}

type serviceMetrics struct {
	ordersCreated   metric.Int64Counter
	ordersStarted   metric.Int64Counter
	ordersCompleted metric.Int64Counter
	rejected        metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersCreated, _ := m.Int64Counter("orders.service.orders_created", metric.WithDescription("Number of orders created"))
	ordersStarted, _ := m.Int64Counter("orders.service.orders_started", metric.WithDescription("Number of orders moved in progress"))
	ordersCompleted, _ := m.Int64Counter("orders.service.orders_completed", metric.WithDescription("Number of orders completed"))
	rejected, _ := m.Int64Counter("orders.service.transitions_rejected", metric.WithDescription("Number of rejected order operations"))
	return serviceMetrics{
		ordersCreated:   ordersCreated,
		ordersStarted:   ordersStarted,
		ordersCompleted: ordersCompleted,
		rejected:        rejected,
	}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.ordersCreated != nil {
		m.ordersCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordStarted(ctx context.Context) {
	if m.ordersStarted != nil {
		m.ordersStarted.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordCompleted(ctx context.Context) {
	if m.ordersCompleted != nil {
		m.ordersCompleted.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context, operation string, err error) {
	if m.rejected == nil {
		return
	}
	reason := rejectionReason(err)
	if reason == "" {
		reason = "internal"
	}
	m.rejected.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("reason", reason),
	))
}

var _ ordersports.Service = (*Service)(nil)
