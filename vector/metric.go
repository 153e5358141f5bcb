package vector

import (
	"fmt"
	"strings"
)

// Metric enumerates the supported distance measures.
type Metric string

const (
	MetricCosine    Metric = "cosine"
	MetricEuclidean Metric = "euclidean"
	MetricManhattan Metric = "manhattan"
)

// ParseMetric resolves a metric name. Short aliases "cos", "l2" and "l1" are
// accepted; an empty name selects cosine.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cos", "cosine":
		return MetricCosine, nil
	case "l2", "euclid", "euclidean":
		return MetricEuclidean, nil
	case "l1", "manhattan":
		return MetricManhattan, nil
	default:
		return "", fmt.Errorf("vector: unknown metric %q", name)
	}
}

// Distance computes the distance between a and b under m. Cosine distance is
// 1 minus the cosine similarity.
func (m Metric) Distance(a, b Vector) (float64, error) {
	switch m {
	case MetricCosine:
		sim, err := a.CosineSimilarity(b)
		if err != nil {
			return 0, err
		}
		return 1 - sim, nil
	case MetricEuclidean:
		return a.EuclidDist(b)
	case MetricManhattan:
		return a.ManhattanDist(b)
	default:
		return 0, fmt.Errorf("vector: unknown metric %q", string(m))
	}
}
