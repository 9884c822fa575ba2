package vectorize

import (
	"math"
	"reflect"
	"testing"
)

func TestEncoder_AlignsDisjointKeySets(t *testing.T) {
	a := FeatureVector{"comp_Python": 3, "experience_months": 24}
	b := FeatureVector{"comp_SQL": 5, "soft_Rigueur": 1}

	enc := NewEncoder(a, b)
	if enc.Dim() != 4 {
		t.Fatalf("expected union of 4 keys, got %d", enc.Dim())
	}

	ea := enc.Encode(a)
	eb := enc.Encode(b)
	if len(ea) != 4 || len(eb) != 4 {
		t.Fatalf("encoded vectors must share dimensionality")
	}

	// Sorted key order: comp_Python, comp_SQL, experience_months, soft_Rigueur
	if !reflect.DeepEqual(ea, []float64{3, 0, 24, 0}) {
		t.Fatalf("encode a: got %v", ea)
	}
	if !reflect.DeepEqual(eb, []float64{0, 5, 0, 1}) {
		t.Fatalf("encode b: got %v", eb)
	}
}

func TestEncoder_DropsUnknownKeys(t *testing.T) {
	enc := NewEncoder(FeatureVector{"comp_Python": 3})
	out := enc.Encode(FeatureVector{"comp_Python": 2, "comp_Java": 5})
	if !reflect.DeepEqual(out, []float64{2}) {
		t.Fatalf("unknown keys must be dropped: got %v", out)
	}
}

func TestCosine_SymmetricAndSelf(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{3, 0, 1}

	if math.Abs(Cosine(a, b)-Cosine(b, a)) > 1e-12 {
		t.Fatalf("cosine must be symmetric")
	}
	if math.Abs(Cosine(a, a)-1) > 1e-12 {
		t.Fatalf("self-similarity must be 1, got %v", Cosine(a, a))
	}
}

func TestCosine_ZeroVectorIsZero(t *testing.T) {
	zero := []float64{0, 0, 0}
	got := Cosine(zero, []float64{1, 2, 3})
	if got != 0 {
		t.Fatalf("cosine against zero vector: want 0, got %v", got)
	}
	if math.IsNaN(got) {
		t.Fatalf("cosine must never be NaN")
	}
	if Cosine(zero, zero) != 0 {
		t.Fatalf("cosine of two zero vectors: want 0")
	}
}

func TestMean(t *testing.T) {
	got := Mean([][]float64{{1, 2}, {3, 4}, {5, 6}})
	if !reflect.DeepEqual(got, []float64{3, 4}) {
		t.Fatalf("mean: got %v", got)
	}
	if Mean(nil) != nil {
		t.Fatalf("mean of empty batch: want nil")
	}
}
