package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "shipdesk/internal/adapters/out/postgres"
	"shipdesk/internal/adapters/out/postgres/orderrepo"
	"shipdesk/internal/adapters/out/postgres/pgtest"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/core/ports"
	"shipdesk/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seedOrder(id kernel.OrderID) {
	line, err := order.NewLine(42, 2)
	suite.Require().NoError(err)
	o, err := order.NewOrder(id, kernel.Address{
		Name: "Mr Hippo", Street1: "965 Mission St", City: "San Francisco", State: "CA", Zip: "94103", Country: "US",
	}, line)
	suite.Require().NoError(err)

	uow := suite.factory.Create().(*postgres_adapter.GormUnitOfWork)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db, uow).Add(context.Background(), o))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin keeps the open transaction")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitPersistsRuleAndLabel() {
	ctx := context.Background()
	suite.seedOrder(1001)
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PackagingRuleRepository().Put(ctx, 42, 2, kernel.MustNewParcel(9, 7, 5, 2)))
	suite.Require().NoError(uow.OrderRepository().PersistLabel(ctx, 1001, "9400111", "https://labels/1.pdf"))
	suite.Require().NoError(uow.Commit(ctx))

	tracked := uow.(*postgres_adapter.GormUnitOfWork).TrackedAggregates()
	suite.Require().Len(tracked, 1)
	suite.Equal(kernel.OrderID(1001), tracked[0].(*order.Order).ID())

	fresh := suite.factory.Create()
	rules, err := fresh.PackagingRuleRepository().Get(ctx, 42)
	suite.Require().NoError(err)
	suite.Equal(1, rules.Len())

	o, err := fresh.OrderRepository().Get(ctx, 1001)
	suite.Require().NoError(err)
	suite.Equal("9400111", o.TrackingNumber())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	suite.seedOrder(1002)
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PackagingRuleRepository().Put(ctx, 42, 5, kernel.MustNewParcel(9, 7, 5, 2)))
	suite.Require().NoError(uow.OrderRepository().PersistLabel(ctx, 1002, "9400222", "https://labels/2.pdf"))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Empty(uow.(*postgres_adapter.GormUnitOfWork).TrackedAggregates())

	fresh := suite.factory.Create()
	rules, err := fresh.PackagingRuleRepository().Get(ctx, 42)
	suite.Require().NoError(err)
	suite.Zero(rules.Len())

	o, err := fresh.OrderRepository().Get(ctx, 1002)
	suite.Require().NoError(err)
	suite.False(o.HasLabel())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.PackagingRuleRepository().Put(ctx, 7, 1, kernel.MustNewParcel(1, 1, 1, 1)))

	_, _, err := uow.ProductRepository().GetNativeDimensions(ctx, 7)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	rules, err := suite.factory.Create().PackagingRuleRepository().Get(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(1, rules.Len())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
