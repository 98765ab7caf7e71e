// Package commands contains the operations that change workflow or storage
// state: starting sessions, resolving and editing packages, quoting, selecting
// a rate, purchasing labels and saving packaging rules.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shipdesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// RuleRepoFactory provides access to the packaging rule repository within a transaction.
	RuleRepoFactory interface {
		PackagingRuleRepository() ports.PackagingRuleRepository
	}

	// OrderUoW is used by commands that only read or label orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RuleUoW is used by commands that only write packaging rules.
	RuleUoW interface {
		TxManager
		RuleRepoFactory
	}

	// RuleUoWFactory creates new rule unit of work instances.
	RuleUoWFactory interface {
		Create() RuleUoW
	}

	// UoW spans orders, products and rules.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   rules, err := uow.PackagingRuleRepository().Get(ctx, productID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		RuleRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-repository operations.
	UoWFactory interface {
		Create() UoW
	}
)
