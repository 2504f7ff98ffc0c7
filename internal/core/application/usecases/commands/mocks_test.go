package commands_test

import (
	"context"
	"testing"
	"time"

	"orderlink/internal/core/application/usecases/commands"
	"orderlink/internal/core/domain/model/account"
	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/core/ports"

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTrackingID(ctx context.Context, trackingID order.TrackingID) (*order.Order, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByOwner(ctx context.Context, ownerID kernel.OwnerID) ([]*order.Order, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) Get(ctx context.Context, ownerID kernel.OwnerID) (*account.Profile, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, p *account.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

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
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProfileUoW struct{ mock.Mock }

func (m *MockProfileUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileUoW) ProfileRepository() ports.ProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ProfileRepository)
}

type MockProfileUoWFactory struct{ mock.Mock }

func (m *MockProfileUoWFactory) Create() commands.ProfileUoW {
	args := m.Called()
	return args.Get(0).(commands.ProfileUoW)
}

func testOwnerID(t *testing.T) kernel.OwnerID {
	t.Helper()
	return mustOwnerID(t, "owner-1")
}

func mustOwnerID(t *testing.T, value string) kernel.OwnerID {
	t.Helper()
	ownerID, err := kernel.NewOwnerID(value)
	require.NoError(t, err)
	return ownerID
}

func testItems(t *testing.T) []order.OrderItem {
	t.Helper()
	first, err := order.NewOrderItem("Handmade mug", 4500)
	require.NoError(t, err)
	second, err := order.NewOrderItem("Tea sampler", 2500)
	require.NoError(t, err)
	return []order.OrderItem{first, second}
}

func testCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("Jordan Reyes", "+15550100123", "12 River Road, Springfield", "IL")
	require.NoError(t, err)
	return customer
}

func newCreatedOrder(t *testing.T, ownerID kernel.OwnerID) *order.Order {
	t.Helper()
	items := testItems(t)
	o, err := order.NewOrder(kernel.NewUUID(), ownerID, items, order.TotalOf(items), time.Now().UTC())
	require.NoError(t, err)
	return o
}

func newSubmittedOrder(t *testing.T, ownerID kernel.OwnerID) *order.Order {
	t.Helper()
	o := newCreatedOrder(t, ownerID)
	trackingID, err := order.NewTrackingID()
	require.NoError(t, err)
	require.NoError(t, o.Submit(testCustomer(t), trackingID, time.Now().UTC()))
	return o
}
