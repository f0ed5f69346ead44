package commands_test

import (
	"context"
	"testing"
	"time"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ExistsByTableAndStatusNot(
	ctx context.Context,
	tableID kernel.UUID,
	status order.Status,
) (bool, error) {
	args := m.Called(ctx, tableID, status)
	return args.Bool(0), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, aggregate *menu.Menu) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*menu.Menu)
	return found, args.Error(1)
}

func (m *MockMenuRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).([]*menu.Menu)
	return found, args.Error(1)
}

func (m *MockMenuRepository) GetAllByProductID(ctx context.Context, productID kernel.UUID) ([]*menu.Menu, error) {
	args := m.Called(ctx, productID)
	found, _ := args.Get(0).([]*menu.Menu)
	return found, args.Error(1)
}

func (m *MockMenuRepository) GetAllDisplayed(ctx context.Context) ([]*menu.Menu, error) {
	args := m.Called(ctx)
	found, _ := args.Get(0).([]*menu.Menu)
	return found, args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*product.Product)
	return found, args.Error(1)
}

func (m *MockProductRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).([]*product.Product)
	return found, args.Error(1)
}

type MockOrderTableRepository struct{ mock.Mock }

func (m *MockOrderTableRepository) Add(ctx context.Context, aggregate *table.OrderTable) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderTableRepository) Update(ctx context.Context, aggregate *table.OrderTable) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*table.OrderTable)
	return found, args.Error(1)
}

type MockOrderUoW struct {
	mock.Mock
	orders *MockOrderRepository
	menus  *MockMenuRepository
	tables *MockOrderTableRepository
}

func newMockOrderUoW() *MockOrderUoW {
	return &MockOrderUoW{
		orders: new(MockOrderRepository),
		menus:  new(MockMenuRepository),
		tables: new(MockOrderTableRepository),
	}
}

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}

func (m *MockOrderUoW) MenuRepository() ports.MenuRepository {
	return m.menus
}

func (m *MockOrderUoW) OrderTableRepository() ports.OrderTableRepository {
	return m.tables
}

func (m *MockOrderUoW) AssertAllExpectations(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.menus.AssertExpectations(t)
	m.tables.AssertExpectations(t)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCatalogUoW struct {
	mock.Mock
	menus    *MockMenuRepository
	products *MockProductRepository
}

func newMockCatalogUoW() *MockCatalogUoW {
	return &MockCatalogUoW{
		menus:    new(MockMenuRepository),
		products: new(MockProductRepository),
	}
}

func (m *MockCatalogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) MenuRepository() ports.MenuRepository {
	return m.menus
}

func (m *MockCatalogUoW) ProductRepository() ports.ProductRepository {
	return m.products
}

func (m *MockCatalogUoW) AssertAllExpectations(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.menus.AssertExpectations(t)
	m.products.AssertExpectations(t)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockDeliveryDispatcher struct{ mock.Mock }

func (m *MockDeliveryDispatcher) RequestDelivery(
	ctx context.Context,
	orderID kernel.UUID,
	amountDue decimal.Decimal,
	address string,
) error {
	args := m.Called(ctx, orderID, amountDue, address)
	return args.Error(0)
}

// orderUoWFactoryFor returns a factory handing out uow once.
func orderUoWFactoryFor(uow commands.OrderUoW) *MockOrderUoWFactory {
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory
}

func catalogUoWFactoryFor(uow commands.CatalogUoW) *MockCatalogUoWFactory {
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory
}

var fixedNow = time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func newProduct(t *testing.T, name string, price int64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, money(t, price))
	require.NoError(t, err)
	return p
}

// newMenu builds a menu priced at price over the given products, one each
// unless quantities says otherwise.
func newMenu(t *testing.T, price int64, displayed bool, products []*product.Product, quantities ...int64) *menu.Menu {
	t.Helper()
	menuProducts := make([]*menu.MenuProduct, 0, len(products))
	for i, p := range products {
		qty := int64(1)
		if i < len(quantities) {
			qty = quantities[i]
		}
		mp, err := menu.NewMenuProduct(p.ID(), qty)
		require.NoError(t, err)
		menuProducts = append(menuProducts, mp)
	}

	m, err := menu.NewMenu(kernel.NewUUID(), "menu", money(t, price), displayed, kernel.NewUUID(), menuProducts)
	require.NoError(t, err)
	return m
}

func lineItem(t *testing.T, qty int64, price int64) *order.LineItem {
	t.Helper()
	li, err := order.NewLineItem(kernel.NewUUID(), qty, money(t, price))
	require.NoError(t, err)
	return li
}

// restoredOrder builds an order of the given type already in status.
func restoredOrder(t *testing.T, orderType order.Type, status order.Status, items ...*order.LineItem) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []*order.LineItem{lineItem(t, 1, 16000)}
	}

	var (
		address string
		tableID *kernel.UUID
	)
	switch orderType {
	case order.Delivery:
		address = "Seoul, Songpa-gu 1"
	case order.EatIn:
		id := kernel.NewUUID()
		tableID = &id
	}

	o, err := order.RestoreOrder(kernel.NewUUID(), orderType, status, fixedNow, items, address, tableID)
	require.NoError(t, err)
	return o
}

func occupiedTable(t *testing.T) *table.OrderTable {
	t.Helper()
	tbl, err := table.RestoreOrderTable(kernel.NewUUID(), "table 1", 4, true)
	require.NoError(t, err)
	return tbl
}
