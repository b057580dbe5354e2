package db

import (
	"context"
	"fmt"
	"log"
)

// PruneImports deletes all but the newest keep imports.
// Trips and boroughs of pruned imports go with them (ON DELETE CASCADE).
func (db *DB) PruneImports(ctx context.Context, keep int) error {
	if keep < 1 {
		keep = 1
	}

	result, err := db.conn.ExecContext(ctx, `
		DELETE FROM dataset_imports
		WHERE import_id NOT IN (
			SELECT import_id FROM dataset_imports
			ORDER BY imported_at_utc DESC, rowid DESC
			LIMIT ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("failed to prune imports: %w", err)
	}

	if rows, _ := result.RowsAffected(); rows > 0 {
		log.Printf("Cleanup: deleted %d old imports (keeping %d)", rows, keep)
	}
	return nil
}
