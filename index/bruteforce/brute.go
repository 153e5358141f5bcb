package bruteforce

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/AZMindroma/dhbw-sem2-scientific-programming-lab/index"
	"github.com/AZMindroma/dhbw-sem2-scientific-programming-lab/vector"
	"github.com/viant/vec/search"
)

// Index is a simple brute-force vector index.
type Index struct {
	metric vector.Metric
	ids    []string
	vecs   [][]float32
	dim    int
	mags   []float32
}

// New returns an empty index scoring with metric. An empty metric selects
// cosine similarity.
func New(metric vector.Metric) *Index {
	if metric == "" {
		metric = vector.MetricCosine
	}
	return &Index{metric: metric}
}

// Metric returns the metric used for scoring.
func (i *Index) Metric() vector.Metric {
	if i.metric == "" {
		return vector.MetricCosine
	}
	return i.metric
}

// Len returns the number of indexed vectors.
func (i *Index) Len() int { return len(i.ids) }

// Build loads ids and vectors and precomputes magnitudes.
func (i *Index) Build(ids []string, vectors []vector.Vector) error {
	if _, err := vector.ParseMetric(string(i.Metric())); err != nil {
		return fmt.Errorf("bruteforce: %w", err)
	}
	if len(ids) != len(vectors) {
		return fmt.Errorf("bruteforce: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(ids) == 0 {
		i.ids, i.vecs, i.mags, i.dim = nil, nil, nil, 0
		return nil
	}
	dim := vectors[0].Len()
	for j := range vectors {
		if vectors[j].Len() != dim {
			return fmt.Errorf("bruteforce: inconsistent vector dims %d vs %d: %w", vectors[j].Len(), dim, vector.ErrDimensionMismatch)
		}
	}
	vecs := make([][]float32, len(vectors))
	mags := make([]float32, len(vectors))
	for j := range vectors {
		vecs[j] = vectors[j].Float32s()
		mags[j] = search.Float32s(vecs[j]).Magnitude()
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = vecs
	i.dim = dim
	i.mags = mags
	return nil
}

// Query returns the top-k matches by score. k <= 0 returns every match.
// Under the cosine metric a zero query is rejected and zero vectors in the
// index are skipped, since their similarity is undefined.
func (i *Index) Query(query vector.Vector, k int) ([]string, []float64, error) {
	if i.dim == 0 || len(i.vecs) == 0 {
		return nil, nil, nil
	}
	if query.Len() != i.dim {
		return nil, nil, fmt.Errorf("bruteforce: query dim %d != index dim %d: %w", query.Len(), i.dim, vector.ErrDimensionMismatch)
	}
	q := query.Float32s()
	qm := search.Float32s(q).Magnitude()
	cosine := i.Metric() == vector.MetricCosine
	if cosine && qm == 0 {
		return nil, nil, fmt.Errorf("bruteforce: zero-magnitude query: %w", vector.ErrUndefinedSimilarity)
	}
	type scored struct {
		idx   int
		score float64
	}
	scoreds := make([]scored, 0, len(i.vecs))
	for j := range i.vecs {
		if cosine && i.mags[j] == 0 {
			continue
		}
		s := i.score(q, qm, j)
		if math.IsNaN(s) {
			continue
		}
		scoreds = append(scoreds, scored{idx: j, score: s})
	}
	sort.SliceStable(scoreds, func(a, b int) bool { return scoreds[a].score > scoreds[b].score })
	if k <= 0 || k > len(scoreds) {
		k = len(scoreds)
	}
	outIDs := make([]string, k)
	outScores := make([]float64, k)
	for n := 0; n < k; n++ {
		outIDs[n] = i.ids[scoreds[n].idx]
		outScores[n] = scoreds[n].score
	}
	return outIDs, outScores, nil
}

func (i *Index) score(q []float32, qm float32, j int) float64 {
	switch i.Metric() {
	case vector.MetricEuclidean:
		return -float64(search.Float32s(q).EuclideanDistance(i.vecs[j]))
	case vector.MetricManhattan:
		var sum float64
		for n := range q {
			sum += math.Abs(float64(q[n]) - float64(i.vecs[j][n]))
		}
		return -sum
	default:
		return 1 - float64(search.Float32s(q).CosineDistanceWithMagnitude(i.vecs[j], qm, i.mags[j]))
	}
}

// MarshalBinary stores: metricLen(uint32), metric bytes, dim(uint32),
// n(uint32), then for each item: idLen(uint32), id bytes, vec(float32[dim]).
func (i *Index) MarshalBinary() ([]byte, error) {
	metric := string(i.Metric())
	size := 12 + len(metric)
	for _, id := range i.ids {
		size += 4 + len(id) + 4*i.dim
	}
	out := make([]byte, 0, size)
	putU32 := func(v uint32) { out = binary.LittleEndian.AppendUint32(out, v) }
	putU32(uint32(len(metric)))
	out = append(out, metric...)
	putU32(uint32(i.dim))
	putU32(uint32(len(i.ids)))
	for idx, id := range i.ids {
		putU32(uint32(len(id)))
		out = append(out, id...)
		for _, v := range i.vecs[idx] {
			putU32(math.Float32bits(v))
		}
	}
	return out, nil
}

// UnmarshalBinary restores the index from bytes.
func (i *Index) UnmarshalBinary(data []byte) error {
	off := 0
	getU32 := func() (uint32, error) {
		if off+4 > len(data) {
			return 0, errors.New("bruteforce: truncated")
		}
		v := binary.LittleEndian.Uint32(data[off : off+4])
		off += 4
		return v, nil
	}
	getString := func(n int) (string, error) {
		if n < 0 || off+n > len(data) {
			return "", errors.New("bruteforce: truncated string")
		}
		s := string(data[off : off+n])
		off += n
		return s, nil
	}

	metricLen, err := getU32()
	if err != nil {
		return err
	}
	metric, err := getString(int(metricLen))
	if err != nil {
		return err
	}
	dimU, err := getU32()
	if err != nil {
		return err
	}
	nU, err := getU32()
	if err != nil {
		return err
	}
	dim, n := int(dimU), int(nU)
	// every item carries at least an id length and dim float32s
	if perItem := 4 + 4*uint64(dim); uint64(n) > uint64(len(data)-off)/perItem {
		return fmt.Errorf("bruteforce: header claims %d items of dim %d in %d bytes: truncated", n, dim, len(data)-off)
	}
	ids := make([]string, 0, n)
	vecs := make([]vector.Vector, 0, n)
	for idx := 0; idx < n; idx++ {
		idLen, err := getU32()
		if err != nil {
			return err
		}
		id, err := getString(int(idLen))
		if err != nil {
			return err
		}
		if off+4*dim > len(data) {
			return errors.New("bruteforce: truncated vec")
		}
		vec := make([]float32, dim)
		for j := range vec {
			bits, _ := getU32()
			vec[j] = math.Float32frombits(bits)
		}
		ids = append(ids, id)
		vecs = append(vecs, vector.FromFloat32s(vec))
	}
	i.metric = vector.Metric(metric)
	return i.Build(ids, vecs)
}

var _ index.Index = (*Index)(nil)
