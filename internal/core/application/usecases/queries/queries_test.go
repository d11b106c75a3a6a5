package queries_test

import (
	"context"
	"log/slog"
	"testing"

	"icetube/internal/core/application/usecases/queries"
	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDashboardCache struct {
	mock.Mock
}

func (m *MockDashboardCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	args := m.Called(ctx, key, dst)
	return args.Bool(0), args.Error(1)
}

func (m *MockDashboardCache) Set(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("empty_filters", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery("", "")

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Nil(t, q.Status())
		assert.Nil(t, q.RiderID())
	})

	t.Run("invalid_filters_are_joined", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery("shipped", "not-a-uuid")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "shipped")
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var q queries.ListOrdersQuery

		require.ErrorIs(t, q.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestNewListActivityLogsQuery(t *testing.T) {
	q, err := queries.NewListActivityLogsQuery(0)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultActivityLogLimit, q.Limit())

	q, err = queries.NewListActivityLogsQuery(queries.MaxActivityLogLimit)
	require.NoError(t, err)
	assert.Equal(t, queries.MaxActivityLogLimit, q.Limit())

	_, err = queries.NewListActivityLogsQuery(queries.MaxActivityLogLimit + 1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewListActivityLogsQuery(-1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewListUsersQuery_RejectsUnknownRole(t *testing.T) {
	_, err := queries.NewListUsersQuery("owner")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestEmployeeDashboard_CacheHitSkipsDatabase(t *testing.T) {
	riderID := kernel.NewUUID()
	cache := new(MockDashboardCache)
	cache.On("Get", mock.Anything, "employee:"+riderID.String(), mock.Anything).
		Run(func(args mock.Arguments) {
			dst := args.Get(2).(*queries.EmployeeDashboard)
			dst.DeliveriesByStatus = map[string]int64{"pending": 4}
		}).
		Return(true, nil).Once()
	handler := queries.NewGetEmployeeDashboardQueryHandler(nil, cache, slog.New(slog.DiscardHandler))
	query, err := queries.NewGetEmployeeDashboardQuery(riderID)
	require.NoError(t, err)

	dashboard, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, int64(4), dashboard.DeliveriesByStatus["pending"])
	cache.AssertExpectations(t)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminDashboard_UnconstructedQueryFailsBeforeCache(t *testing.T) {
	cache := new(MockDashboardCache)
	handler := queries.NewGetAdminDashboardQueryHandler(nil, cache, slog.New(slog.DiscardHandler))

	_, err := handler.Handle(context.Background(), queries.GetAdminDashboardQuery{})

	require.ErrorIs(t, err, queries.ErrGetAdminDashboardQueryIsNotConstructed)
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}
