package vecstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AZMindroma/dhbw-sem2-scientific-programming-lab/index/bruteforce"
	"github.com/AZMindroma/dhbw-sem2-scientific-programming-lab/vector"
)

// SQLiteStore implements Store on a SQLite database. Search scans every
// vector of the query's dimension through a brute-force index.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed Store. It ensures the vectors
// schema exists in the provided database.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("vecstore: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Put upserts documents in a single transaction. Document.ID must be set.
func (s *SQLiteStore) Put(ctx context.Context, docs []Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO vectors(id, dim, embedding) VALUES(?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  dim = excluded.dim,
  embedding = excluded.embedding`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		if d.ID == "" {
			return nil, fmt.Errorf("vecstore: Document.ID must be set")
		}
		if _, err := stmt.ExecContext(ctx, d.ID, d.Vector.Len(), vector.Encode(d.Vector)); err != nil {
			return nil, err
		}
		ids = append(ids, d.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Get loads a single document.
func (s *SQLiteStore) Get(ctx context.Context, id string) (Document, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT embedding FROM vectors WHERE id = ?`, id).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return Document{}, err
	}
	v, err := vector.Decode(blob)
	if err != nil {
		return Document{}, err
	}
	return Document{ID: id, Vector: v}, nil
}

// Search ranks the stored vectors that share the query's dimension.
func (s *SQLiteStore) Search(ctx context.Context, query vector.Vector, k int, metric vector.Metric) ([]Match, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, embedding FROM vectors WHERE dim = ? ORDER BY rowid`, query.Len())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	var vecs []vector.Vector
	byID := make(map[string]vector.Vector)
	for rows.Next() {
		var id string
		var blob []byte
		if err := rows.Scan(&id, &blob); err != nil {
			return nil, err
		}
		v, err := vector.Decode(blob)
		if err != nil {
			return nil, fmt.Errorf("vecstore: document %q: %w", id, err)
		}
		ids = append(ids, id)
		vecs = append(vecs, v)
		byID[id] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	idx := bruteforce.New(metric)
	if err := idx.Build(ids, vecs); err != nil {
		return nil, err
	}
	hitIDs, scores, err := idx.Query(query, k)
	if err != nil {
		return nil, err
	}
	out := make([]Match, len(hitIDs))
	for n, id := range hitIDs {
		out[n] = Match{ID: id, Score: scores[n], Vector: byID[id]}
	}
	return out, nil
}

// Remove deletes a document by ID.
func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("vecstore: Remove called with empty id")
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM vectors WHERE id = ?`, id)
	return err
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
