package queries_test

import (
	"context"
	"testing"
	"time"

	"orderlink/internal/adapters/out/postgres/orderrepo"
	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/core/domain/model/order"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for query tests; queries never
// enlist aggregates in a unit of work.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// startPostgres spins up a disposable database and returns a connection that
// routes through lib/pq, matching the production driver setup.
func startPostgres(t *testing.T) (*postgres.PostgresContainer, *gorm.DB) {
	t.Helper()
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
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{})
	require.NoError(t, err)

	return container, db
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

func newCreatedOrderAt(t *testing.T, ownerID kernel.OwnerID, createdAt time.Time) *order.Order {
	t.Helper()
	items := testItems(t)
	o, err := order.NewOrder(kernel.NewUUID(), ownerID, items, order.TotalOf(items), createdAt)
	require.NoError(t, err)
	return o
}

func newSubmittedOrderAt(t *testing.T, ownerID kernel.OwnerID, state string, createdAt time.Time) *order.Order {
	t.Helper()
	o := newCreatedOrderAt(t, ownerID, createdAt)
	customer, err := order.NewCustomer("Jordan Reyes", "+15550100123", "12 River Road, Springfield", state)
	require.NoError(t, err)
	trackingID, err := order.NewTrackingID()
	require.NoError(t, err)
	require.NoError(t, o.Submit(customer, trackingID, createdAt))
	return o
}

func seedOrders(t *testing.T, db *gorm.DB, orders ...*order.Order) {
	t.Helper()
	repo := orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	for _, o := range orders {
		require.NoError(t, repo.Add(context.Background(), o))
	}
}
