// Package postgres provides the GORM unit of work shared by the product,
// packaging rule and order repositories.
//
// Each command creates its own unit of work. Repositories obtained after
// Begin run inside the transaction; before Begin they use the plain
// connection.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.PackagingRuleRepository().Put(ctx, productID, qty, parcel); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"shipdesk/internal/adapters/out/postgres/orderrepo"
	"shipdesk/internal/adapters/out/postgres/productrepo"
	"shipdesk/internal/adapters/out/postgres/rulerepo"
	"shipdesk/internal/core/ports"

	"gorm.io/gorm"
)

type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork wraps one GORM transaction and records the aggregates the
// order repository wrote during it.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	tracked []any
}

// Begin starts the transaction. Calling it twice keeps the first one.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction and forgets tracked aggregates. It
// returns gorm.ErrInvalidTransaction after Commit, which deferred callers
// ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) PackagingRuleRepository() ports.PackagingRuleRepository {
	return rulerepo.NewGormPackagingRuleRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories for every aggregate they write.
func (uow *GormUnitOfWork) TrackAggregate(aggregate any) {
	uow.tracked = append(uow.tracked, aggregate)
}

// TrackedAggregates returns the aggregates written in this unit of work.
func (uow *GormUnitOfWork) TrackedAggregates() []any {
	out := make([]any, len(uow.tracked))
	copy(out, uow.tracked)
	return out
}
