package dbx

import "database/sql"

// Compile-time checks: both handle types must satisfy DBTX.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
