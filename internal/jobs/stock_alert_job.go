package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"icetube/internal/core/domain/model/inventory"

	"github.com/robfig/cron/v3"
)

// DefaultStockAlertSchedule runs the scan every five minutes.
const DefaultStockAlertSchedule = "0 */5 * * * *"

// StockScanner lists inventory items by stock status.
type StockScanner interface {
	ListByStatus(ctx context.Context, statuses ...inventory.StockStatus) ([]*inventory.Item, error)
}

// StockAlertJob periodically warns about items that are critical or out of
// stock. It only reads the ledger.
type StockAlertJob struct {
	scanner  StockScanner
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStockAlertJob takes a six-field cron schedule (with seconds); an empty
// schedule selects DefaultStockAlertSchedule.
func NewStockAlertJob(scanner StockScanner, schedule string, logger *slog.Logger) *StockAlertJob {
	if schedule == "" {
		schedule = DefaultStockAlertSchedule
	}
	return &StockAlertJob{
		scanner:  scanner,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stock_alert_job"),
	}
}

// Start schedules the scan.
func (j *StockAlertJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stock alert job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock alert job started", "schedule", j.schedule)
	return nil
}

// Run performs one scan and returns the number of items reported.
func (j *StockAlertJob) Run(ctx context.Context) (int, error) {
	items, err := j.scanner.ListByStatus(ctx, inventory.OutOfStock, inventory.Critical)
	if err != nil {
		return 0, err
	}

	for _, item := range items {
		j.logger.WarnContext(ctx, "Low stock",
			"item_id", item.ID().String(),
			"product_name", item.ProductName(),
			"size", item.Size().String(),
			"quantity", item.Quantity(),
			"status", item.Status().String(),
		)
	}
	return len(items), nil
}

// Stop waits for a running scan to finish.
func (j *StockAlertJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stock alert job stopped")
}
