package interaction

import (
	"errors"
	"testing"
)

func TestUnevaluateClearsState(t *testing.T) {
	it, err := NewInteractionType(Config{Spatiality: "xy", IFKind: IFFixed, IFParamA: 1, MaxDistance: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subpop := newTestSubpop(1, 100, []float64{0, 1}, []float64{0, 0}, []float64{0, 0})
	if err := it.Evaluate([]Subpopulation{subpop}, true); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !it.AnyEvaluated() {
		t.Fatalf("expected AnyEvaluated to be true after Evaluate")
	}

	if err := it.Unevaluate(); err != nil {
		t.Fatalf("unevaluate: %v", err)
	}
	if it.AnyEvaluated() {
		t.Fatalf("expected AnyEvaluated to be false after Unevaluate")
	}

	_, err = it.Strength(subpop, 0, 1)
	var engErr *Error
	if !errors.As(err, &engErr) || engErr.Kind != ErrNotEvaluated {
		t.Fatalf("expected NotEvaluated after Unevaluate, got %v", err)
	}
}

func TestQueryBeforeEvaluateFails(t *testing.T) {
	it, err := NewInteractionType(Config{Spatiality: "xy", IFKind: IFFixed, IFParamA: 1, MaxDistance: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = it.Distance(1, 0, 1)
	var engErr *Error
	if !errors.As(err, &engErr) || engErr.Kind != ErrNotEvaluated {
		t.Fatalf("expected NotEvaluated, got %v", err)
	}
}

func TestEvaluateSnapshotsRegisteredCallbacks(t *testing.T) {
	it, err := NewInteractionType(Config{Spatiality: "xy", IFKind: IFFixed, IFParamA: 1, MaxDistance: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var calls int
	cb := func(distance, strength float64, receiver, exerter Individual, subpop Subpopulation) (float64, error) {
		calls++
		return strength * 2, nil
	}
	if err := it.RegisterCallback(ActiveCallback{Fn: cb}); err != nil {
		t.Fatalf("RegisterCallback: %v", err)
	}

	subpop := newTestSubpop(1, 100, []float64{0, 1}, []float64{0, 0}, []float64{0, 0})
	if err := it.Evaluate([]Subpopulation{subpop}, true); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	s, err := it.Strength(subpop, 0, 1)
	if err != nil {
		t.Fatalf("Strength: %v", err)
	}
	if s != 2 {
		t.Fatalf("got %v, want 2 (callback must have doubled the base strength)", s)
	}
	if calls == 0 {
		t.Fatalf("registered callback was never invoked through Evaluate/Strength")
	}
}

func TestEvaluateWithConstantCallbackShortCircuits(t *testing.T) {
	it, err := NewInteractionType(Config{Spatiality: "xy", IFKind: IFFixed, IFParamA: 1, MaxDistance: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calledFn := false
	cb := func(distance, strength float64, receiver, exerter Individual, subpop Subpopulation) (float64, error) {
		calledFn = true
		return strength, nil
	}
	constant := 1.1
	if err := it.RegisterCallback(ActiveCallback{Fn: cb, Constant: &constant}); err != nil {
		t.Fatalf("RegisterCallback: %v", err)
	}

	subpop := newTestSubpop(1, 100, []float64{0, 1}, []float64{0, 0}, []float64{0, 0})
	if err := it.Evaluate([]Subpopulation{subpop}, true); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	s, err := it.Strength(subpop, 0, 1)
	if err != nil {
		t.Fatalf("Strength: %v", err)
	}
	if s != 1.1 {
		t.Fatalf("got %v, want 1.1", s)
	}
	if calledFn {
		t.Fatalf("Fn must not be invoked when Constant is set")
	}
}

func TestRegisterCallbackRejectsBadConstant(t *testing.T) {
	it, err := NewInteractionType(Config{Spatiality: "xy", IFKind: IFFixed, IFParamA: 1, MaxDistance: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := -1.0
	err = it.RegisterCallback(ActiveCallback{Constant: &bad})
	var engErr *Error
	if !errors.As(err, &engErr) || engErr.Kind != ErrConfig {
		t.Fatalf("expected ConfigError for negative constant, got %v", err)
	}
}

func TestEvaluateRebuildsCacheFromScratch(t *testing.T) {
	it, err := NewInteractionType(Config{Spatiality: "xy", IFKind: IFFixed, IFParamA: 1, MaxDistance: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subpopSmall := newTestSubpop(1, 100, []float64{0, 1}, []float64{0, 0}, []float64{0, 0})
	if err := it.Evaluate([]Subpopulation{subpopSmall}, true); err != nil {
		t.Fatalf("evaluate small: %v", err)
	}

	subpopLarge := newTestSubpop(1, 100, []float64{0, 1, 2}, []float64{0, 0, 0}, []float64{0, 0, 0})
	if err := it.Evaluate([]Subpopulation{subpopLarge}, true); err != nil {
		t.Fatalf("evaluate large: %v", err)
	}
	s, err := it.Strength(subpopLarge, 0, 2)
	if err != nil {
		t.Fatalf("Strength: %v", err)
	}
	if s != 1 {
		t.Fatalf("got %v, want 1", s)
	}
}
