package postgres

import (
	"shipdesk/internal/adapters/out/postgres/orderrepo"
	"shipdesk/internal/adapters/out/postgres/productrepo"
	"shipdesk/internal/adapters/out/postgres/rulerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the shipping desk uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&rulerepo.PackagingRuleDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	)
}
