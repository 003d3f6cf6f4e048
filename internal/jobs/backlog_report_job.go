package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel/metric"

	ordersports "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/ports"
)

// BacklogReportJob periodically reports how many orders wait for the kitchen
// and which order is being prepared.
type BacklogReportJob struct {
	service  ordersports.Service
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	pending  metric.Int64Gauge
}

// NewBacklogReportJob creates the job. schedule accepts standard cron specs
// and descriptors such as "@every 1m".
func NewBacklogReportJob(service ordersports.Service, schedule string, logger *slog.Logger, meter metric.Meter) *BacklogReportJob {
	j := &BacklogReportJob{
		service:  service,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "backlog_report_job"),
	}
	if meter != nil {
		j.pending, _ = meter.Int64Gauge("orders.backlog.pending", metric.WithDescription("Orders waiting to be prepared"))
	}
	return j
}

// Start registers the report on the schedule and starts the scheduler.
func (j *BacklogReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.Report(context.Background()); err != nil {
			j.logger.Error("Backlog report failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule backlog report %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Backlog report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *BacklogReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Backlog report job stopped")
}

// Report logs a single snapshot of the kitchen backlog.
func (j *BacklogReportJob) Report(ctx context.Context) error {
	pending, err := j.service.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("list pending orders: %w", err)
	}
	current, err := j.service.GetOrderInProgress(ctx)
	if err != nil {
		return fmt.Errorf("load order in progress: %w", err)
	}

	if j.pending != nil {
		j.pending.Record(ctx, int64(len(pending)))
	}
	attrs := []any{"pending", len(pending)}
	if current != nil {
		attrs = append(attrs, "in_progress", current.ID)
	}
	j.logger.InfoContext(ctx, "Kitchen backlog", attrs...)
	return nil
}
