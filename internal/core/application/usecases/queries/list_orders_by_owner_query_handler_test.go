package queries_test

import (
	"context"
	"testing"
	"time"

	"orderlink/internal/adapters/out/postgres/orderrepo"
	"orderlink/internal/core/application/usecases/queries"
	"orderlink/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type ListOrdersByOwnerQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListOrdersByOwnerQueryHandler
	ownerID   kernel.OwnerID
}

func (suite *ListOrdersByOwnerQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startPostgres(suite.T())

	err := suite.db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewListOrdersByOwnerQueryHandler(suite.db)
	suite.ownerID = mustOwnerID(suite.T(), "owner-1")
}

func (suite *ListOrdersByOwnerQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersByOwnerQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ListOrdersByOwnerQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewListOrdersByOwnerQuery(suite.ownerID, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListOrdersByOwnerQueryHandlerTestSuite) TestHandle_NewestFirst() {
	base := time.Now().UTC().Truncate(time.Second)
	oldest := newSubmittedOrderAt(suite.T(), suite.ownerID, "IL", base.Add(-48*time.Hour))
	middle := newSubmittedOrderAt(suite.T(), suite.ownerID, "IL", base.Add(-24*time.Hour))
	newest := newSubmittedOrderAt(suite.T(), suite.ownerID, "IL", base)
	seedOrders(suite.T(), suite.db, middle, oldest, newest)

	query, err := queries.NewListOrdersByOwnerQuery(suite.ownerID, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal(newest.ID().String(), result[0].ID)
	suite.Equal(middle.ID().String(), result[1].ID)
	suite.Equal(oldest.ID().String(), result[2].ID)
}

func (suite *ListOrdersByOwnerQueryHandlerTestSuite) TestHandle_OnlyOwnOrders() {
	now := time.Now().UTC()
	own := newSubmittedOrderAt(suite.T(), suite.ownerID, "IL", now)
	foreign := newSubmittedOrderAt(suite.T(), mustOwnerID(suite.T(), "owner-2"), "IL", now)
	seedOrders(suite.T(), suite.db, own, foreign)

	query, err := queries.NewListOrdersByOwnerQuery(suite.ownerID, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(own.ID().String(), result[0].ID)
}

func (suite *ListOrdersByOwnerQueryHandlerTestSuite) TestHandle_RegionFilterIsCaseInsensitive() {
	now := time.Now().UTC()
	illinois := newSubmittedOrderAt(suite.T(), suite.ownerID, "IL", now)
	texas := newSubmittedOrderAt(suite.T(), suite.ownerID, "TX", now.Add(-time.Hour))
	seedOrders(suite.T(), suite.db, illinois, texas)

	query, err := queries.NewListOrdersByOwnerQuery(suite.ownerID, "il")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(illinois.ID().String(), result[0].ID)
}

func (suite *ListOrdersByOwnerQueryHandlerTestSuite) TestHandle_AllRegionReturnsEverything() {
	now := time.Now().UTC()
	illinois := newSubmittedOrderAt(suite.T(), suite.ownerID, "IL", now)
	texas := newSubmittedOrderAt(suite.T(), suite.ownerID, "TX", now.Add(-time.Hour))
	awaiting := newCreatedOrderAt(suite.T(), suite.ownerID, now.Add(-2*time.Hour))
	seedOrders(suite.T(), suite.db, illinois, texas, awaiting)

	query, err := queries.NewListOrdersByOwnerQuery(suite.ownerID, "all")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result, 3)
}

func (suite *ListOrdersByOwnerQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.ListOrdersByOwnerQuery{})
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewListOrdersByOwnerQuery constructor")
}

func TestListOrdersByOwnerQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersByOwnerQueryHandlerTestSuite))
}
