package applicationrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/applicationrepo"
	"marketplace/internal/core/domain/model/application"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

type ApplicationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *applicationrepo.GormApplicationRepository
	tracker    *MockAggregateTracker
}

func (suite *ApplicationRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&applicationrepo.ApplicationDTO{}))
}

func (suite *ApplicationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE applications").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = applicationrepo.NewGormApplicationRepository(suite.db, suite.tracker)
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsDetails() {
	ctx := context.Background()
	app := suite.newApplication(70, application.DeliveryPartnerKind)

	suite.Require().NoError(suite.repository.Add(ctx, app))
	loaded, err := suite.repository.Get(ctx, app.ID())

	suite.Require().NoError(err)
	suite.Equal(app.ID(), loaded.ID())
	suite.Equal(application.DeliveryPartnerKind, loaded.Kind())
	suite.Equal(application.Pending, loaded.Status())
	suite.Equal(app.Details(), loaded.Details())
	suite.Nil(loaded.ReviewedBy())
	suite.Nil(loaded.ReviewedAt())
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestHasPending_TracksDecision() {
	ctx := context.Background()
	app := suite.newApplication(70, application.DeliveryPartnerKind)
	suite.Require().NoError(suite.repository.Add(ctx, app))

	pending, err := suite.repository.HasPending(ctx, 70)
	suite.Require().NoError(err)
	suite.True(pending)

	loaded, err := suite.repository.GetForUpdate(ctx, app.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Decide(application.Approve, 1, "", time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	pending, err = suite.repository.HasPending(ctx, 70)
	suite.Require().NoError(err)
	suite.False(pending)

	decided, err := suite.repository.Get(ctx, app.ID())
	suite.Require().NoError(err)
	suite.Equal(application.Approved, decided.Status())
	suite.Require().NotNil(decided.ReviewedBy())
	suite.Equal(kernel.AccountID(1), *decided.ReviewedBy())
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestAdd_SecondPendingApplication_IsRefused() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newApplication(70, application.DeliveryPartnerKind)))

	err := suite.repository.Add(ctx, suite.newApplication(70, application.DeliveryPartnerKind))

	suite.Require().ErrorIs(err, errs.ErrPendingApproval)
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestAdd_ResubmissionAfterRejection_AppendsRow() {
	ctx := context.Background()
	first := suite.newApplication(70, application.DeliveryPartnerKind)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(first.Decide(application.Reject, 1, "licence expired", time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(suite.repository.Add(ctx, suite.newApplication(70, application.DeliveryPartnerKind)))

	var count int64
	suite.Require().NoError(suite.db.Model(&applicationrepo.ApplicationDTO{}).Where("user_id = ?", 70).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *ApplicationRepositoryIntegrationTestSuite) newApplication(
	userID kernel.AccountID,
	kind application.Kind,
) *application.Application {
	app, err := application.NewApplication(kernel.NewUUID(), userID, kind, application.Details{
		Documents:     []string{"uploads/licence.pdf", "uploads/id.pdf"},
		ContactNumber: "+91-9000000001",
		VehicleType:   "bike",
	}, time.Now())
	suite.Require().NoError(err)
	return app
}

func TestApplicationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationRepositoryIntegrationTestSuite))
}
