// Package vecstore persists named vectors in SQLite and answers similarity
// queries over them. It includes:
//   - Document model and Store interface
//   - SQLiteStore: durable storage backed by database/sql
//   - Schema helpers to create the vectors table
//   - YAML seeding of documents
package vecstore
