package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderHistoryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderHistoryQueryHandler
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetOrderHistoryQueryHandler(db)
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) addOrder(o *order.Order) {
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(context.Background(), o))
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) TestHandle_ReturnsOnlyCouriersDeliveredOrders() {
	ctx := context.Background()
	courierID := kernel.NewUUID()

	finished, err := order.RestoreOrder(kernel.NewUUID(), order.Delivered, &courierID)
	suite.Require().NoError(err)
	suite.addOrder(finished)

	carried, err := order.RestoreOrder(kernel.NewUUID(), order.Delivering, &courierID)
	suite.Require().NoError(err)
	suite.addOrder(carried)

	otherCourierID := kernel.NewUUID()
	foreign, err := order.RestoreOrder(kernel.NewUUID(), order.Delivered, &otherCourierID)
	suite.Require().NoError(err)
	suite.addOrder(foreign)

	query, err := queries.NewGetOrderHistoryQuery(courierID)
	suite.Require().NoError(err)

	history, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal(finished.ID(), history[0].OrderID)
	suite.Equal("Delivered", history[0].Status)
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) TestHandle_EmptyWithoutCompletedDeliveries() {
	ctx := context.Background()
	courierID := kernel.NewUUID()

	carried, err := order.RestoreOrder(kernel.NewUUID(), order.Delivering, &courierID)
	suite.Require().NoError(err)
	suite.addOrder(carried)

	query, err := queries.NewGetOrderHistoryQuery(courierID)
	suite.Require().NoError(err)

	history, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(history)
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) TestHandle_NotConstructedQuery() {
	ctx := context.Background()

	var query queries.GetOrderHistoryQuery
	_, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, queries.ErrGetOrderHistoryQueryIsNotConstructed)
}

func TestGetOrderHistoryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderHistoryQueryHandlerTestSuite))
}
