package index

import "github.com/AZMindroma/dhbw-sem2-scientific-programming-lab/vector"

// Index defines a generic vector index with basic lifecycle methods.
// It enables building from (id, vector) pairs, kNN queries, and
// binary serialization for persistence.
type Index interface {
	// Build constructs the index from the given ids and vectors.
	// ids and vectors must have the same length and all vectors the same
	// dimension.
	Build(ids []string, vectors []vector.Vector) error

	// Query runs a kNN search against the index with the provided query vector
	// and returns up to k matches as parallel slices of ids and scores, where
	// higher score means more similar (cosine similarity, or the negated
	// distance for the other metrics).
	Query(query vector.Vector, k int) (ids []string, scores []float64, err error)

	// MarshalBinary serializes the index into a byte slice.
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary reconstructs the index from a serialized byte slice.
	UnmarshalBinary(data []byte) error
}
