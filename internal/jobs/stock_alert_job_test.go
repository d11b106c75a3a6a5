package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/jobs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStockScanner struct {
	mock.Mock
}

func (m *MockStockScanner) ListByStatus(ctx context.Context, statuses ...inventory.StockStatus) ([]*inventory.Item, error) {
	args := m.Called(ctx, statuses)
	items, _ := args.Get(0).([]*inventory.Item)
	return items, args.Error(1)
}

func testItem(t *testing.T, size string, quantity int) *inventory.Item {
	t.Helper()
	s, err := kernel.NewSize(size)
	require.NoError(t, err)
	item, err := inventory.NewItem(kernel.NewUUID(), "Ice tube", s, decimal.NewFromInt(100), quantity)
	require.NoError(t, err)
	return item
}

func TestStockAlertJob_Run(t *testing.T) {
	t.Run("warns_per_low_item", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		scanner := new(MockStockScanner)
		scanner.On("ListByStatus", mock.Anything, []inventory.StockStatus{inventory.OutOfStock, inventory.Critical}).
			Return([]*inventory.Item{testItem(t, "large", 0), testItem(t, "medium", 7)}, nil).Once()
		job := jobs.NewStockAlertJob(scanner, "", logger)

		n, err := job.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		out := buf.String()
		assert.Contains(t, out, `"component":"stock_alert_job"`)
		assert.Contains(t, out, `"size":"large"`)
		assert.Contains(t, out, `"status":"out_of_stock"`)
		assert.Contains(t, out, `"size":"medium"`)
		assert.Contains(t, out, `"status":"critical"`)
		scanner.AssertExpectations(t)
	})

	t.Run("nothing_low", func(t *testing.T) {
		var buf bytes.Buffer
		scanner := new(MockStockScanner)
		scanner.On("ListByStatus", mock.Anything, mock.Anything).Return([]*inventory.Item{}, nil).Once()
		job := jobs.NewStockAlertJob(scanner, "", slog.New(slog.NewJSONHandler(&buf, nil)))

		n, err := job.Run(context.Background())

		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NotContains(t, buf.String(), "Low stock")
	})

	t.Run("scanner_error", func(t *testing.T) {
		scanner := new(MockStockScanner)
		scanner.On("ListByStatus", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
		job := jobs.NewStockAlertJob(scanner, "", slog.New(slog.DiscardHandler))

		_, err := job.Run(context.Background())

		require.Error(t, err)
	})
}

func TestStockAlertJob_StartRejectsBadSchedule(t *testing.T) {
	job := jobs.NewStockAlertJob(new(MockStockScanner), "every minute", slog.New(slog.DiscardHandler))

	err := job.Start()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "every minute")
}

func TestJobManager_StartAndStop(t *testing.T) {
	manager := jobs.NewJobManager(new(MockStockScanner), "0 0 0 1 1 *", slog.New(slog.DiscardHandler))

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
