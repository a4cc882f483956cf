package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/ericks0nmartinez/burger/internal/adapters/out/postgres/orderrepo"
	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"
	"github.com/ericks0nmartinez/burger/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

var placedAt = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testDetails() order.Details {
	return order.Details{
		CustomerName: "Maria Silva",
		Phone:        "11987654321",
		Items: []order.Item{
			{Name: "Classic Burger", Quantity: 2, Price: 25.90},
		},
		Address:       "Rua das Flores, 123",
		Delivery:      true,
		PaymentMethod: "pix",
		Total:         51.80,
		DeliveryFee:   8.00,
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(testDetails(), placedAt)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(ctx context.Context, aggregate *order.Order) {
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_AssignsID() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.Require().Zero(testOrder.ID())

	suite.addOrder(ctx, testOrder)

	suite.Positive(testOrder.ID())
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_Fails() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &order.Order{})
	suite.Require().Error(err)
	suite.ErrorIs(err, order.ErrOrderIsNotConstructed)

	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAggregate() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.Require().NoError(original.TransitionStatus(order.Preparing, placedAt.Add(5*time.Minute)))
	original.MarkPaid(placedAt.Add(7 * time.Minute))

	suite.addOrder(ctx, original)

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(testDetails(), retrieved.Details())
	suite.Equal(order.Preparing, retrieved.Status())
	suite.True(retrieved.Paid())
	suite.Require().NotNil(retrieved.ReceivedTime())
	suite.WithinDuration(placedAt.Add(7*time.Minute), *retrieved.ReceivedTime(), time.Second)
	suite.WithinDuration(placedAt, retrieved.PlacedAt(), time.Second)

	timeline := retrieved.Timeline()
	suite.Equal(
		[]string{order.Awaiting.String(), order.Preparing.String(), order.ReceivedKey},
		timeline.Keys(),
	)

	awaiting, ok := timeline.Get(order.Awaiting.String())
	suite.Require().True(ok)
	suite.False(awaiting.Open())

	preparing, ok := timeline.Get(order.Preparing.String())
	suite.Require().True(ok)
	suite.True(preparing.Open())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 9999)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusTransition() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.addOrder(ctx, testOrder)

	suite.Require().NoError(testOrder.TransitionStatus(order.Preparing, placedAt.Add(10*time.Minute)))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, retrieved.Status())
	suite.Equal(2, retrieved.Timeline().Len())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsClearedFields() {
	ctx := context.Background()

	details := testDetails()
	details.Notes = "no onions"
	details.TableNumber = 4
	testOrder, err := order.NewOrder(details, placedAt)
	suite.Require().NoError(err)
	suite.addOrder(ctx, testOrder)

	// Switch the order from delivery to pickup and drop the extras.
	pickup := testDetails()
	pickup.Delivery = false
	pickup.DeliveryFee = 0
	pickup.Address = ""
	pickup.Notes = ""
	pickup.TableNumber = 0
	suite.Require().NoError(testOrder.ApplyDetails(pickup))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.Details().Delivery)
	suite.Zero(retrieved.Details().DeliveryFee)
	suite.Empty(retrieved.Details().Address)
	suite.Empty(retrieved.Details().Notes)
	suite.Zero(retrieved.Details().TableNumber)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	missing, err := order.RestoreOrder(4242, testDetails(), order.State{
		Status:   order.Awaiting,
		Timeline: order.NewTimeline(order.Awaiting.String(), placedAt),
		PlacedAt: placedAt,
	})
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, missing)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrder() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.addOrder(ctx, testOrder)

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))
	suite.assertOrderCount(0)

	err := suite.repository.Delete(ctx, testOrder.ID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
