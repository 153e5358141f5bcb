// Package vector defines an immutable real vector of fixed dimension and the
// geometry this project needs on top of it. It includes:
//   - Vector: construction, addition, scaling, dot product and negation
//   - Norm, Euclidean and Manhattan distances, cosine similarity
//   - Metric: named distance functions used by indexes and SQL helpers
//   - Binary (BLOB) and YAML encodings
//
// Every binary operation checks that both operands have the same dimension
// and reports ErrDimensionMismatch otherwise.
package vector
