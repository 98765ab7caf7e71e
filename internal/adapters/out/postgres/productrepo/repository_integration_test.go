package productrepo_test

import (
	"context"
	"testing"

	"shipdesk/internal/adapters/out/postgres/pgtest"
	"shipdesk/internal/adapters/out/postgres/productrepo"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
	suite.repository = productrepo.NewGormProductRepository(db)
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func ptr(v float64) *float64 { return &v }

func (suite *ProductRepositoryIntegrationTestSuite) TestGetNativeDimensions() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Save(ctx, productrepo.ProductDTO{
		ID: 1, Name: "Mug", Length: ptr(5), Width: ptr(4), Height: ptr(4), Weight: ptr(12),
	}))
	suite.Require().NoError(suite.repository.Save(ctx, productrepo.ProductDTO{
		ID: 2, Name: "Poster", Length: ptr(24), Width: ptr(3), Height: nil, Weight: ptr(6),
	}))
	suite.Require().NoError(suite.repository.Save(ctx, productrepo.ProductDTO{
		ID: 3, Name: "Sticker", Length: ptr(2), Width: ptr(2), Height: ptr(0), Weight: ptr(1),
	}))

	suite.Run("complete dimensions", func() {
		p, ok, err := suite.repository.GetNativeDimensions(ctx, 1)
		suite.Require().NoError(err)
		suite.True(ok)
		suite.True(p.IsEqual(kernel.MustNewParcel(5, 4, 4, 12)))
	})

	suite.Run("missing height", func() {
		_, ok, err := suite.repository.GetNativeDimensions(ctx, 2)
		suite.Require().NoError(err)
		suite.False(ok)
	})

	suite.Run("zero height", func() {
		_, ok, err := suite.repository.GetNativeDimensions(ctx, 3)
		suite.Require().NoError(err)
		suite.False(ok)
	})

	suite.Run("unknown product", func() {
		_, _, err := suite.repository.GetNativeDimensions(ctx, 4)
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *ProductRepositoryIntegrationTestSuite) TestSave_Overwrites() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Save(ctx, productrepo.ProductDTO{ID: 1, Name: "Mug"}))
	suite.Require().NoError(suite.repository.Save(ctx, productrepo.ProductDTO{
		ID: 1, Name: "Mug", Length: ptr(5), Width: ptr(4), Height: ptr(4), Weight: ptr(12),
	}))

	_, ok, err := suite.repository.GetNativeDimensions(ctx, 1)
	suite.Require().NoError(err)
	suite.True(ok)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
