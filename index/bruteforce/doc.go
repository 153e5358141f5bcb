// Package bruteforce provides a simple vector index that answers kNN queries
// by scanning all vectors and scoring them with a vector.Metric. Scoring uses
// the float32 kernels of github.com/viant/vec. It supports a compact binary
// format for persistence.
package bruteforce
