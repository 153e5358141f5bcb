package vecstore

import (
	"context"
	"errors"

	"github.com/AZMindroma/dhbw-sem2-scientific-programming-lab/vector"
)

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("vecstore: document not found")

// Document is a vector stored under a logical identifier.
type Document struct {
	ID     string        `yaml:"id"`
	Vector vector.Vector `yaml:"vector"`
}

// Match is a single similarity search hit. Higher Score means more similar;
// see index.Index for the scoring convention.
type Match struct {
	ID     string
	Score  float64
	Vector vector.Vector
}

// Store defines the application-level vector store API.
type Store interface {
	// Put inserts or replaces documents and returns their IDs in order.
	Put(ctx context.Context, docs []Document) ([]string, error)

	// Get returns the document stored under id, or ErrNotFound.
	Get(ctx context.Context, id string) (Document, error)

	// Search performs a k-nearest-neighbour search over documents with the
	// query's dimension, scored with metric. k <= 0 returns every match.
	Search(ctx context.Context, query vector.Vector, k int, metric vector.Metric) ([]Match, error)

	// Remove deletes the document with the given ID.
	Remove(ctx context.Context, id string) error
}
