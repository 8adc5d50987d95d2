package repositories

import (
	"database/sql"
	"fmt"
)

// checkAffectedRows turns a zero-row result into notFound.
func checkAffectedRows(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
