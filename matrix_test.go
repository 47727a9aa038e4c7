package interaction

import (
	"math"
	"testing"
)

func TestScenarioNonSpatialFixed(t *testing.T) {
	it, err := NewInteractionType(Config{Spatiality: "", IFKind: IFFixed, IFParamA: 0.7, Reciprocal: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subpop := newTestSubpop(1, 0, make([]float64, 3), make([]float64, 3), make([]float64, 3))
	if err := it.Evaluate([]Subpopulation{subpop}, true); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.7
			if i == j {
				want = 0
			}
			got, err := it.Strength(subpop, i, j)
			if err != nil {
				t.Fatalf("Strength(%d,%d): %v", i, j, err)
			}
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("Strength(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}

	for i := 0; i < 3; i++ {
		total, err := it.TotalOfNeighborStrengths(subpop, i)
		if err != nil {
			t.Fatalf("TotalOfNeighborStrengths(%d): %v", i, err)
		}
		if math.Abs(total-1.4) > 1e-9 {
			t.Errorf("TotalOfNeighborStrengths(%d) = %v, want 1.4", i, total)
		}
	}
}

func TestScenarioLinear1D(t *testing.T) {
	it, err := NewInteractionType(Config{Spatiality: "x", IFKind: IFLinear, IFParamA: 1, MaxDistance: 2, Reciprocal: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subpop := newTestSubpop(1, 1000, []float64{0, 1, 2, 5}, []float64{0, 0, 0, 0}, []float64{0, 0, 0, 0})
	if err := it.Evaluate([]Subpopulation{subpop}, true); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	wantDist := []float64{0, 1, 2, 5}
	wantStrength := []float64{0, 0.5, 0, 0}
	for j := 0; j < 4; j++ {
		d, err := it.Distance(1, 0, j)
		if err != nil {
			t.Fatalf("Distance(0,%d): %v", j, err)
		}
		if math.Abs(d-wantDist[j]) > 1e-9 {
			t.Errorf("Distance(0,%d) = %v, want %v", j, d, wantDist[j])
		}
		s, err := it.Strength(subpop, 0, j)
		if err != nil {
			t.Fatalf("Strength(0,%d): %v", j, err)
		}
		if math.Abs(s-wantStrength[j]) > 1e-9 {
			t.Errorf("Strength(0,%d) = %v, want %v", j, s, wantStrength[j])
		}
	}
}

func TestScenarioPeriodicExponential2D(t *testing.T) {
	it, err := NewInteractionType(Config{
		Spatiality:  "xy",
		IFKind:      IFExponential,
		IFParamA:    1,
		IFParamB:    1,
		MaxDistance: 3,
		PeriodicX:   true,
		Reciprocal:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subpop := newTestSubpop(1, 10, []float64{0.5, 9.5}, []float64{0, 0}, []float64{0, 0})
	if err := it.Evaluate([]Subpopulation{subpop}, true); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	d, err := it.Distance(1, 0, 1)
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if math.Abs(d-1) > 1e-9 {
		t.Fatalf("got distance %v, want 1 (minimum image through the wrap)", d)
	}

	s, err := it.Strength(subpop, 0, 1)
	if err != nil {
		t.Fatalf("Strength: %v", err)
	}
	if want := math.Exp(-1); math.Abs(s-want) > 1e-9 {
		t.Fatalf("got strength %v, want %v", s, want)
	}
}

func TestScenarioSexSegregation(t *testing.T) {
	it, err := NewInteractionType(Config{
		Spatiality:  "xy",
		IFKind:      IFFixed,
		IFParamA:    1,
		MaxDistance: 100,
		ReceiverSex: SexFemale,
		ExerterSex:  SexMale,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subpop := &testSubpop{
		id: 1, bound: 100, firstMale: 2,
		x: []float64{0, 1, 2, 3}, y: []float64{0, 0, 0, 0}, z: []float64{0, 0, 0, 0},
	}
	if err := it.Evaluate([]Subpopulation{subpop}, true); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s, err := it.Strength(subpop, i, j)
			if err != nil {
				t.Fatalf("Strength(%d,%d): %v", i, j, err)
			}
			maleReceiver := i >= 2
			femaleExerter := j < 2
			if maleReceiver || femaleExerter {
				if s != 0 {
					t.Errorf("Strength(%d,%d) = %v, want 0 (forbidden pair)", i, j, s)
				}
			} else if i != j && s != 1 {
				t.Errorf("Strength(%d,%d) = %v, want 1", i, j, s)
			}
		}
	}
}

func TestEagerReciprocalSexSegregatedExportHasNoNaN(t *testing.T) {
	it, err := NewInteractionType(Config{
		Spatiality:  "xy",
		IFKind:      IFFixed,
		IFParamA:    1,
		ReceiverSex: SexFemale,
		ExerterSex:  SexFemale,
		Reciprocal:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subpop := &testSubpop{
		id: 1, bound: 100, firstMale: 2,
		x: []float64{0, 1, 2, 3}, y: []float64{0, 0, 0, 0}, z: []float64{0, 0, 0, 0},
	}
	if err := it.Evaluate([]Subpopulation{subpop}, true); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	_, _, strengths, n, _, err := it.ExportState(1)
	if err != nil {
		t.Fatalf("ExportState: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s := strengths[at(i, j, n)]
			if math.IsNaN(s) {
				t.Fatalf("strengths(%d,%d) is NaN, want a computed value (0 for a sex-forbidden pair)", i, j)
			}
			maleInvolved := i >= 2 || j >= 2
			if maleInvolved && s != 0 {
				t.Errorf("strengths(%d,%d) = %v, want 0 (male individual excluded from female-female interaction)", i, j, s)
			}
		}
	}
}

func TestEagerLazyEquivalence(t *testing.T) {
	cfg := Config{Spatiality: "xy", IFKind: IFExponential, IFParamA: 1, IFParamB: 0.5, MaxDistance: 10, Reciprocal: true}

	x := []float64{0, 2, 4, 6, 8}
	y := []float64{1, 3, 2, 7, 0}
	z := make([]float64, 5)

	eager, err := NewInteractionType(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subpopEager := newTestSubpop(1, 100, x, y, z)
	if err := eager.Evaluate([]Subpopulation{subpopEager}, true); err != nil {
		t.Fatalf("evaluate eager: %v", err)
	}

	lazy, err := NewInteractionType(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subpopLazy := newTestSubpop(1, 100, x, y, z)
	if err := lazy.Evaluate([]Subpopulation{subpopLazy}, false); err != nil {
		t.Fatalf("evaluate lazy: %v", err)
	}

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			se, err := eager.Strength(subpopEager, i, j)
			if err != nil {
				t.Fatalf("eager Strength(%d,%d): %v", i, j, err)
			}
			sl, err := lazy.Strength(subpopLazy, i, j)
			if err != nil {
				t.Fatalf("lazy Strength(%d,%d): %v", i, j, err)
			}
			if math.Abs(se-sl) > 1e-9 {
				t.Errorf("Strength(%d,%d): eager=%v lazy=%v", i, j, se, sl)
			}
		}
	}
}

func TestReciprocalStrengthSymmetric(t *testing.T) {
	it, err := NewInteractionType(Config{Spatiality: "xy", IFKind: IFExponential, IFParamA: 1, IFParamB: 1, MaxDistance: 100, Reciprocal: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subpop := newTestSubpop(1, 100, []float64{0, 3, 6}, []float64{0, 4, 1}, []float64{0, 0, 0})
	if err := it.Evaluate([]Subpopulation{subpop}, true); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sij, _ := it.Strength(subpop, i, j)
			sji, _ := it.Strength(subpop, j, i)
			if math.Abs(sij-sji) > 1e-9 {
				t.Errorf("strength(%d,%d)=%v != strength(%d,%d)=%v", i, j, sij, j, i, sji)
			}
		}
	}
}

func TestStrengthBeyondMaxDistanceIsZero(t *testing.T) {
	it, err := NewInteractionType(Config{Spatiality: "xy", IFKind: IFFixed, IFParamA: 1, MaxDistance: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subpop := newTestSubpop(1, 100, []float64{0, 10}, []float64{0, 0}, []float64{0, 0})
	if err := it.Evaluate([]Subpopulation{subpop}, true); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	s, err := it.Strength(subpop, 0, 1)
	if err != nil {
		t.Fatalf("Strength: %v", err)
	}
	if s != 0 {
		t.Fatalf("got %v, want 0 (beyond max_distance)", s)
	}
}
