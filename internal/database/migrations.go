package database

import (
	"fmt"

	"gorm.io/gorm"
)

// RunMigrations executes the hand-written migrations AutoMigrate cannot express
func RunMigrations(db *gorm.DB) error {
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// createIndexes creates database indexes
func createIndexes(db *gorm.DB) error {
	// Listing by next hearing within a tenant
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_cases_next_hearing
		ON cases(tenant_id, next_hearing_date)
	`).Error; err != nil {
		return err
	}

	// Ingestion history in time order
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_ingestion_logs_time
		ON ingestion_logs(ingested_at)
	`).Error; err != nil {
		return err
	}

	// Orders by date
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_orders_date
		ON orders(case_id, order_date)
	`).Error; err != nil {
		return err
	}

	// Hearings by date
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_hearings_date
		ON hearings(case_id, date)
	`).Error; err != nil {
		return err
	}

	return nil
}
