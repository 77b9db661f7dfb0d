package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 000001_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one live default dataset per request.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS dataset_request_id_default_live
		ON exile_api_request_datasets (request_id)
		WHERE is_default AND is_deleted = 0`)
	if err != nil {
		return fmt.Errorf("failed to create default dataset index: %w", err)
	}

	// At most one live default environment.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS environment_default_live
		ON exile_api_environments ((is_default))
		WHERE is_default AND is_deleted = 0`)
	if err != nil {
		return fmt.Errorf("failed to create default environment index: %w", err)
	}

	return nil
}
