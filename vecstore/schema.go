package vecstore

import (
	"context"
	"database/sql"
)

const vectorsSchema = `
CREATE TABLE IF NOT EXISTS vectors (
    id        TEXT PRIMARY KEY,
    dim       INTEGER NOT NULL,
    embedding BLOB
);
CREATE INDEX IF NOT EXISTS vectors_dim ON vectors(dim);
`

// EnsureSchema creates the vectors table in the provided database if it does
// not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, vectorsSchema)
	return err
}
