package reputationrepo_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/postgres/reputationrepo"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/reputation"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ReputationRepositoryIntegrationTestSuite provides integration tests for
// ReputationRepository using PostgreSQL containers.
type ReputationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *reputationrepo.GormReputationRepository
	tracker    *MockAggregateTracker
}

func (suite *ReputationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&reputationrepo.ReputationDTO{}))
}

func (suite *ReputationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE reputations").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = reputationrepo.NewGormReputationRepository(suite.db, suite.tracker)
}

func (suite *ReputationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReputationRepositoryIntegrationTestSuite) TestAdd_NewCustomer_StartsAtZero() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	rep, err := reputation.NewReputation(customerID)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", customerID, rep).Once()
	suite.Require().NoError(suite.repository.Add(ctx, rep))

	loaded, err := suite.repository.Get(ctx, customerID)
	suite.Require().NoError(err)
	suite.Equal(customerID, loaded.CustomerID())
	suite.Zero(loaded.Delivered())
	suite.Zero(loaded.Cancelled())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReputationRepositoryIntegrationTestSuite) TestAdd_DuplicateCustomer_ReturnsAlreadyExistsError() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	rep, err := reputation.NewReputation(customerID)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", customerID, rep).Once()
	suite.Require().NoError(suite.repository.Add(ctx, rep))

	again, err := reputation.NewReputation(customerID)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, again)
	suite.Require().Error(err)

	var existsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &existsErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReputationRepositoryIntegrationTestSuite) TestUpdate_PersistsGrownCounters() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	rep, err := reputation.NewReputation(customerID)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", customerID, rep).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, rep))

	rep.RecordOutcome(order.Delivered)
	rep.RecordOutcome(order.CancelledByUser)
	suite.Require().NoError(suite.repository.Update(ctx, rep))

	loaded, err := suite.repository.Get(ctx, customerID)
	suite.Require().NoError(err)
	suite.Equal(uint64(1), loaded.Delivered())
	suite.Equal(uint64(1), loaded.Cancelled())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReputationRepositoryIntegrationTestSuite) TestUpdate_NonExistentCustomer_ReturnsNotFoundError() {
	ctx := context.Background()

	rep, err := reputation.NewReputation(kernel.NewUUID())
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, rep)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReputationRepositoryIntegrationTestSuite) TestGet_UnknownCustomer_ReturnsNotFoundError() {
	ctx := context.Background()

	loaded, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(loaded)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestReputationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReputationRepositoryIntegrationTestSuite))
}
