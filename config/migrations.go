package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"p9e.in/salescrm/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250610_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.Enquiry{})
			},
		},
		{
			ID: "20250702_add_closure_columns",
			Migrate: func(tx *gorm.DB) error {
				// Closure fields arrived after the first deployment; AutoMigrate
				// is a no-op on fresh databases where the model already has them.
				return tx.AutoMigrate(&models.Enquiry{})
			},
		},
		{
			ID: "20250718_index_account_owner",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec("CREATE INDEX IF NOT EXISTS idx_sales_enquiry_account_owner ON sales_enquiry (account_owner)").Error
			},
		},
	})

	return m.Migrate()
}
