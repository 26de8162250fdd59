package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
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

type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	orders     *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries, order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
	suite.orders = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAddAndGet_KeepsSnapshots() {
	ctx := context.Background()
	d := suite.newDelivery(suite.confirmedOrder(), time.Now())

	suite.Require().NoError(suite.repository.Add(ctx, d))
	loaded, err := suite.repository.Get(ctx, d.ID())

	suite.Require().NoError(err)
	suite.Equal(d.OrderID(), loaded.OrderID())
	suite.Equal(d.Pickup(), loaded.Pickup())
	suite.Equal(d.Drop(), loaded.Drop())
	suite.Equal("35.00", loaded.Fee().String())
	suite.Equal(delivery.Pending, loaded.Status())
	suite.Nil(loaded.PartnerID())
	suite.Equal(0, loaded.Version())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_AssignAndCancel() {
	ctx := context.Background()
	d := suite.newDelivery(suite.confirmedOrder(), time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.GetForUpdate(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.AssignPartner(7, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	assigned, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Assigned, assigned.Status())
	suite.Require().NotNil(assigned.PartnerID())
	suite.Equal(kernel.AccountID(7), *assigned.PartnerID())
	suite.Equal(1, assigned.Version())

	suite.Require().NoError(assigned.Cancel("partner vehicle broke down", time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, assigned))

	cancelled, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Cancelled, cancelled.Status())
	suite.Equal("partner vehicle broke down", cancelled.CancellationReason())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_Conflicts() {
	ctx := context.Background()
	d := suite.newDelivery(suite.confirmedOrder(), time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, d))

	first, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.AssignPartner(7, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.AssignPartner(8, time.Now()))
	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestHasActiveForOrder() {
	ctx := context.Background()
	o := suite.confirmedOrder()

	active, err := suite.repository.HasActiveForOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.False(active)

	d := suite.newDelivery(o, time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, d))
	active, err = suite.repository.HasActiveForOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(active)

	suite.Require().NoError(d.Cancel("buyer moved", time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, d))
	active, err = suite.repository.HasActiveForOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.False(active)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_SecondActiveDelivery_IsRefused() {
	ctx := context.Background()
	o := suite.confirmedOrder()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newDelivery(o, time.Now())))

	err := suite.repository.Add(ctx, suite.newDelivery(o, time.Now()))

	suite.Require().ErrorIs(err, errs.ErrDeliveryAlreadyExists)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetFirstPendingForUpdate_OldestFirst() {
	ctx := context.Background()
	now := time.Now()
	newer := suite.newDelivery(suite.confirmedOrder(), now)
	older := suite.newDelivery(suite.confirmedOrder(), now.Add(-time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, older))

	first, err := suite.repository.GetFirstPendingForUpdate(ctx)

	suite.Require().NoError(err)
	suite.Equal(older.ID(), first.ID())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetFirstPendingForUpdate_SkipsLockedRows() {
	ctx := context.Background()
	now := time.Now()
	older := suite.newDelivery(suite.confirmedOrder(), now.Add(-time.Hour))
	newer := suite.newDelivery(suite.confirmedOrder(), now)
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	tx := suite.db.Begin()
	defer tx.Rollback()
	locked, err := deliveryrepo.NewGormDeliveryRepository(tx, suite.tracker).GetFirstPendingForUpdate(ctx)
	suite.Require().NoError(err)
	suite.Equal(older.ID(), locked.ID())

	other := suite.db.Begin()
	defer other.Rollback()
	next, err := deliveryrepo.NewGormDeliveryRepository(other, suite.tracker).GetFirstPendingForUpdate(ctx)
	suite.Require().NoError(err)
	suite.Equal(newer.ID(), next.ID())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetFirstPendingForUpdate_SkipsCancelledOrders() {
	ctx := context.Background()
	now := time.Now()
	confirmed := suite.confirmedOrder()
	stale := suite.newDelivery(confirmed, now.Add(-time.Hour))
	live := suite.newDelivery(suite.confirmedOrder(), now)
	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.repository.Add(ctx, live))

	cancelled, err := suite.orders.Get(ctx, confirmed.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(cancelled.Transition(order.Cancelled, account.Buyer, now))
	suite.Require().NoError(suite.orders.Update(ctx, cancelled))

	first, err := suite.repository.GetFirstPendingForUpdate(ctx)

	suite.Require().NoError(err)
	suite.Equal(live.ID(), first.ID())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetFirstPendingForUpdate_NonePending() {
	_, err := suite.repository.GetFirstPendingForUpdate(context.Background())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) confirmedOrder() *order.Order {
	price, err := kernel.MoneyFromString("120.00")
	suite.Require().NoError(err)
	item, err := order.NewItem(11, nil, 1, price)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), 20, 30, 5, []order.Item{item}, kernel.ZeroMoney(), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	suite.Require().NoError(o.Transition(order.Confirmed, account.Seller, time.Now()))
	suite.Require().NoError(suite.orders.Update(context.Background(), o))
	return o
}

func (suite *DeliveryRepositoryIntegrationTestSuite) newDelivery(o *order.Order, at time.Time) *delivery.Delivery {
	fee, err := kernel.MoneyFromString("35.00")
	suite.Require().NoError(err)
	pickup := delivery.Snapshot{
		ContactName:  "Meera Stores",
		Phone:        "+91-9000000003",
		AddressLine1: "12 Market Lane",
		City:         "Pune",
		PostalCode:   "411001",
	}
	drop := delivery.Snapshot{
		ContactName:  "Ravi",
		Phone:        "+91-9000000002",
		AddressLine1: "221 Station Road",
		AddressLine2: "Flat 4B",
		City:         "Pune",
		PostalCode:   "411002",
	}
	d, err := delivery.NewDelivery(kernel.NewUUID(), o, pickup, drop, fee, at)
	suite.Require().NoError(err)
	return d
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
