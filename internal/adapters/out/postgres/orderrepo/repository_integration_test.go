package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite runs OrderRepository against a
// PostgreSQL container.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_line_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsOrderAndLineItems() {
	ctx := context.Background()
	testOrder := suite.createTakeoutOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.assertRowCount("orders", 1)
	suite.assertRowCount("order_line_items", 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_Fails() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertRowCount("orders", 0)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RestoresEveryField() {
	ctx := context.Background()
	menuID := kernel.NewUUID()
	price, err := kernel.MoneyFromString("16000.50")
	suite.Require().NoError(err)
	item, err := order.NewLineItem(menuID, 3, price)
	suite.Require().NoError(err)

	placedAt := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	original, err := order.NewDeliveryOrder(kernel.NewUUID(), placedAt, []*order.LineItem{item}, "Seoul 1")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	restored, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), restored.ID())
	suite.Equal(order.Delivery, restored.Type())
	suite.Equal(order.Waiting, restored.Status())
	suite.True(placedAt.Equal(restored.OrderDateTime()))
	suite.Equal("Seoul 1", restored.DeliveryAddress())
	suite.Nil(restored.TableID())
	suite.Require().Len(restored.LineItems(), 1)
	suite.Equal(menuID, restored.LineItems()[0].MenuID())
	suite.Equal(int64(3), restored.LineItems()[0].Quantity())
	suite.True(restored.LineItems()[0].Price().IsEqual(price))
	suite.True(decimal.RequireFromString("48001.50").Equal(restored.DeliveryAmountDue(restored.DeliveryLineItem().Price())))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_LineItemsKeepTheirOrder() {
	ctx := context.Background()
	testOrder := suite.createTakeoutOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	want := testOrder.LineItems()
	got := restored.LineItems()
	suite.Require().Len(got, len(want))
	for i := range want {
		suite.Equal(want[i].MenuID(), got[i].MenuID())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitionsArePersisted() {
	ctx := context.Background()
	testOrder := suite.createTakeoutOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(4)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	transitions := []struct {
		apply func() error
		want  order.Status
	}{
		{testOrder.Accept, order.Accepted},
		{testOrder.Serve, order.Served},
		{testOrder.Complete, order.Completed},
	}

	for _, tr := range transitions {
		suite.Require().NoError(tr.apply())
		suite.Require().NoError(suite.repository.Update(ctx, testOrder))

		restored, err := suite.repository.Get(ctx, testOrder.ID())
		suite.Require().NoError(err)
		suite.Equal(tr.want, restored.Status())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	err := suite.repository.Update(context.Background(), suite.createTakeoutOrder())

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestExistsByTableAndStatusNot() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	tbl := suite.occupiedTable()
	first := suite.createEatInOrder(tbl)
	second := suite.createEatInOrder(tbl)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	exists, err := suite.repository.ExistsByTableAndStatusNot(ctx, tbl.ID(), order.Completed)
	suite.Require().NoError(err)
	suite.True(exists)

	for _, o := range []*order.Order{first, second} {
		suite.Require().NoError(o.Accept())
		suite.Require().NoError(o.Serve())
		suite.Require().NoError(o.Complete())
		suite.Require().NoError(suite.repository.Update(ctx, o))
	}

	exists, err = suite.repository.ExistsByTableAndStatusNot(ctx, tbl.ID(), order.Completed)
	suite.Require().NoError(err)
	suite.False(exists)

	exists, err = suite.repository.ExistsByTableAndStatusNot(ctx, kernel.NewUUID(), order.Completed)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTakeoutOrder() *order.Order {
	o, err := order.NewTakeoutOrder(kernel.NewUUID(), time.Now().UTC(), []*order.LineItem{
		suite.lineItem(2, 5000),
		suite.lineItem(1, 3000),
	})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) createEatInOrder(tbl *table.OrderTable) *order.Order {
	o, err := order.NewEatInOrder(kernel.NewUUID(), time.Now().UTC(), []*order.LineItem{
		suite.lineItem(1, 5000),
	}, tbl)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) occupiedTable() *table.OrderTable {
	tbl, err := table.NewOrderTable(kernel.NewUUID(), "table 9")
	suite.Require().NoError(err)
	suite.Require().NoError(tbl.Sit(2))
	return tbl
}

func (suite *OrderRepositoryIntegrationTestSuite) lineItem(qty int64, price int64) *order.LineItem {
	money, err := kernel.MoneyFromInt(price)
	suite.Require().NoError(err)

	item, err := order.NewLineItem(kernel.NewUUID(), qty, money)
	suite.Require().NoError(err)
	return item
}

func (suite *OrderRepositoryIntegrationTestSuite) assertRowCount(tableName string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(tableName).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
