package spiral

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSequenceDefaults(t *testing.T) {
	fib := Sequence(DefaultMaxTerms, DefaultCeiling)

	if len(fib) != DefaultMaxTerms {
		t.Fatalf("expected %d terms, got %d", DefaultMaxTerms, len(fib))
	}
	want := []float64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for i, v := range want {
		if fib[i] != v {
			t.Errorf("term %d: expected %v, got %v", i, v, fib[i])
		}
	}
	if last := fib[len(fib)-1]; last != 12586269025 {
		t.Errorf("expected F(50) = 12586269025, got %.0f", last)
	}
}

func TestSequenceCeiling(t *testing.T) {
	fib := Sequence(100, DefaultCeiling)

	if len(fib) != 73 {
		t.Fatalf("expected 73 terms below 1e15, got %d", len(fib))
	}
	if last := fib[len(fib)-1]; last != 806515533049393 {
		t.Errorf("expected last term 806515533049393, got %.0f", last)
	}
}

func TestSequenceSmallLimits(t *testing.T) {
	tests := []struct {
		name     string
		maxTerms int
		ceiling  float64
		want     []float64
	}{
		{"seed only", 2, DefaultCeiling, []float64{1, 1}},
		{"count below seed", 0, DefaultCeiling, []float64{1, 1}},
		{"ceiling drops overflowing term", 10, 2, []float64{1, 1, 2}},
		{"ceiling below seed", 10, 1, []float64{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sequence(tt.maxTerms, tt.ceiling)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}
}

func TestSequenceOverflowGuard(t *testing.T) {
	fib := Sequence(5000, math.Inf(1))

	if len(fib) >= 5000 {
		t.Fatalf("expected overflow to stop generation, got %d terms", len(fib))
	}
	for i, v := range fib {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Fatalf("term %d is not finite", i)
		}
	}
}

func TestSequence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("recurrence, length and ceiling hold", prop.ForAll(
		func(maxTerms int, exp float64) bool {
			ceiling := math.Pow(10, exp)
			fib := Sequence(maxTerms, ceiling)
			if len(fib) < 2 || fib[0] != 1 || fib[1] != 1 {
				return false
			}
			if maxTerms >= 2 && len(fib) > maxTerms {
				return false
			}
			for i := 2; i < len(fib); i++ {
				if fib[i] != fib[i-1]+fib[i-2] || fib[i] > ceiling {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 120),
		gen.Float64Range(0, 20),
	))

	properties.TestingRun(t)
}
