package activityrepo_test

import (
	"context"
	"encoding/json"
	"testing"

	"icetube/internal/adapters/out/postgres/activityrepo"
	"icetube/internal/adapters/out/postgres/pgtest"
	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
)

type ActivityLoggerIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	logger   *activityrepo.GormActivityLogger
}

func (suite *ActivityLoggerIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.logger = activityrepo.NewGormActivityLogger(database.DB)
}

func (suite *ActivityLoggerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *ActivityLoggerIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ActivityLoggerIntegrationTestSuite) TestLog_StoresEntry() {
	ctx := context.Background()
	actor := kernel.NewUUID()
	subject := kernel.NewUUID()
	entry, err := activity.NewEntry(&actor, activity.OrderStatusChanged, activity.SubjectOrder, subject,
		"order moved to cancelled", map[string]any{"from": "pending", "to": "cancelled", "stock_delta": 5})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.logger.Log(ctx, entry))

	var stored activityrepo.ActivityLogDTO
	suite.Require().NoError(suite.database.DB.First(&stored, "id = ?", entry.ID().Value()).Error)
	suite.Equal("order.status_changed", stored.Action)
	suite.Equal(activity.SubjectOrder, stored.SubjectType)
	suite.Equal(subject.Value(), stored.SubjectID)
	suite.Require().NotNil(stored.ActorID)
	suite.Equal(actor.Value(), *stored.ActorID)

	var props map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(stored.Properties), &props))
	suite.Equal("cancelled", props["to"])
	suite.EqualValues(5, props["stock_delta"])
}

func (suite *ActivityLoggerIntegrationTestSuite) TestLog_RejectsUnconstructedEntry() {
	suite.Require().ErrorIs(suite.logger.Log(context.Background(), activity.Entry{}), activity.ErrEntryIsNotConstructed)
}

func TestActivityLoggerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityLoggerIntegrationTestSuite))
}
