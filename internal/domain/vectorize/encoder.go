package vectorize

import (
	"math"
	"sort"
)

// Encoder aligns sparse feature vectors into one fixed-order numeric space.
// Two profiles can emit disjoint key sets, so alignment is mandatory before
// any numeric comparison: the encoder collects the union of keys across a
// batch up front, then encodes each vector against that fixed key order,
// zero-filling absent features.
type Encoder struct {
	keys  []string
	index map[string]int
}

// NewEncoder builds the shared feature space from the union of keys across
// the given vectors. Key order is sorted for determinism.
func NewEncoder(vectors ...FeatureVector) *Encoder {
	seen := map[string]struct{}{}
	for _, fv := range vectors {
		for k := range fv {
			seen[k] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	index := make(map[string]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}
	return &Encoder{keys: keys, index: index}
}

// Keys returns the shared feature space in encoding order.
func (e *Encoder) Keys() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

// Dim returns the dimensionality of the shared space.
func (e *Encoder) Dim() int {
	return len(e.keys)
}

// Encode projects a sparse vector onto the shared space. Keys unknown to the
// encoder are dropped; absent keys are zero-filled.
func (e *Encoder) Encode(fv FeatureVector) []float64 {
	out := make([]float64, len(e.keys))
	for k, v := range fv {
		if i, ok := e.index[k]; ok {
			out[i] = v
		}
	}
	return out
}

// Mean returns the element-wise average of the given encoded vectors.
// All vectors must already live in the same space.
func Mean(vectors [][]float64) []float64 {
	if len(vectors) == 0 {
		return nil
	}
	out := make([]float64, len(vectors[0]))
	for _, v := range vectors {
		for i := range out {
			out[i] += v[i]
		}
	}
	for i := range out {
		out[i] /= float64(len(vectors))
	}
	return out
}

// Cosine computes cosine similarity between two aligned vectors. Similarity
// against a zero vector is defined as 0, never NaN.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
