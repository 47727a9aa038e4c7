package interaction

import (
	"math"
	"strings"
)

// Sex selects which individuals may receive or exert an interaction.
type Sex int

const (
	SexAny Sex = iota
	SexFemale
	SexMale
)

// IFKind selects the distance-to-strength mapping (the "interaction
// function") used by an InteractionType.
type IFKind int

const (
	// IFFixed always returns A regardless of distance.
	IFFixed IFKind = iota
	// IFLinear returns A * (1 - d/maxDistance).
	IFLinear
	// IFExponential returns A * exp(-B*d).
	IFExponential
	// IFNormal returns A * exp(-d^2 / (2*B^2)).
	IFNormal
)

func (k IFKind) String() string {
	switch k {
	case IFFixed:
		return "f"
	case IFLinear:
		return "l"
	case IFExponential:
		return "e"
	case IFNormal:
		return "n"
	default:
		return "?"
	}
}

// axisSet packs the three possible spatial axes (x, y, z) into the flags
// telling which of them participate in this interaction's spatiality,
// and in what order they are packed into a position slot.
type axisSet struct {
	useX, useY, useZ bool
}

// parseSpatiality turns a spatiality string ("", "x", "y", "z", "xy",
// "xz", "yz", "xyz") into an integer spatiality and the axis selection.
// Any other string is a ConfigError.
func parseSpatiality(s string) (int, axisSet, error) {
	switch s {
	case "":
		return 0, axisSet{}, nil
	case "x":
		return 1, axisSet{useX: true}, nil
	case "y":
		return 1, axisSet{useY: true}, nil
	case "z":
		return 1, axisSet{useZ: true}, nil
	case "xy":
		return 2, axisSet{useX: true, useY: true}, nil
	case "xz":
		return 2, axisSet{useX: true, useZ: true}, nil
	case "yz":
		return 2, axisSet{useY: true, useZ: true}, nil
	case "xyz":
		return 3, axisSet{useX: true, useY: true, useZ: true}, nil
	default:
		return 0, axisSet{}, newErrorf(ErrConfig, "illegal spatiality string %q", s)
	}
}

// InteractionType holds the process-wide, long-lived configuration of one
// kind of interaction: how far it reaches, how it falls off with
// distance, whether it is reciprocal, which sexes it applies to, and
// which axes are periodic. It owns the per-subpopulation evaluation
// caches keyed by subpopulation id.
type InteractionType struct {
	spatialityString string
	spatiality       int
	axes             axisSet

	maxDistance   float64
	maxDistanceSq float64

	ifKind   IFKind
	ifParamA float64
	ifParamB float64

	reciprocal bool

	receiverSex Sex
	exerterSex  Sex

	periodicX, periodicY, periodicZ bool

	// callbacks is the current set of registered strength-modifier
	// callbacks. Evaluate snapshots this slice into every
	// InteractionsData it (re)builds (section 4.8); changing the
	// registered set afterward does not affect an evaluation already in
	// progress until the next Evaluate.
	callbacks []ActiveCallback

	data map[int]*InteractionsData
}

// Config is the set of parameters recognized at construction, mirroring
// the configuration recognized by the host simulation's interaction
// type declaration (section 6 of the specification).
type Config struct {
	Spatiality  string
	Reciprocal  bool
	MaxDistance float64
	ReceiverSex Sex
	ExerterSex  Sex

	IFKind   IFKind
	IFParamA float64
	IFParamB float64

	PeriodicX, PeriodicY, PeriodicZ bool
}

// NewInteractionType validates cfg and constructs an InteractionType. It
// does not evaluate any subpopulation; call Evaluate for that.
func NewInteractionType(cfg Config) (*InteractionType, error) {
	spatiality, axes, err := parseSpatiality(cfg.Spatiality)
	if err != nil {
		return nil, err
	}

	if cfg.MaxDistance < 0 {
		return nil, newErrorf(ErrConfig, "max_distance must be >= 0, got %v", cfg.MaxDistance)
	}

	if spatiality == 0 && cfg.IFKind != IFFixed {
		return nil, newError(ErrConfig, "a spatiality of \"\" requires a fixed interaction function")
	}

	if cfg.IFKind == IFLinear && (math.IsInf(cfg.MaxDistance, 1) || cfg.MaxDistance <= 0) {
		return nil, newError(ErrConfig, "a linear interaction function requires a finite, positive max_distance")
	}

	reciprocal := cfg.Reciprocal
	if cfg.ReceiverSex != cfg.ExerterSex {
		reciprocal = false
	}

	periodicX := cfg.PeriodicX && axes.useX
	periodicY := cfg.PeriodicY && axes.useY
	periodicZ := cfg.PeriodicZ && axes.useZ

	it := &InteractionType{
		spatialityString: cfg.Spatiality,
		spatiality:       spatiality,
		axes:             axes,
		maxDistance:      cfg.MaxDistance,
		maxDistanceSq:    cfg.MaxDistance * cfg.MaxDistance,
		ifKind:           cfg.IFKind,
		ifParamA:         cfg.IFParamA,
		ifParamB:         cfg.IFParamB,
		reciprocal:       reciprocal,
		receiverSex:      cfg.ReceiverSex,
		exerterSex:       cfg.ExerterSex,
		periodicX:        periodicX,
		periodicY:        periodicY,
		periodicZ:        periodicZ,
		data:             make(map[int]*InteractionsData),
	}
	return it, nil
}

// Spatiality returns the integer dimensionality (0-3) of this
// interaction type.
func (it *InteractionType) Spatiality() int { return it.spatiality }

// SpatialityString returns the original spatiality string ("", "x",
// "xy", "xyz", ...) this interaction type was constructed with.
func (it *InteractionType) SpatialityString() string { return it.spatialityString }

// Reciprocal reports whether strength(i,j) may be assumed equal to
// strength(j,i).
func (it *InteractionType) Reciprocal() bool { return it.reciprocal }

// MaxDistance returns the current interaction cutoff distance.
func (it *InteractionType) MaxDistance() float64 { return it.maxDistance }

// periodicDims reports how many of the selected axes are periodic.
func (it *InteractionType) periodicDims() int {
	n := 0
	if it.periodicX {
		n++
	}
	if it.periodicY {
		n++
	}
	if it.periodicZ {
		n++
	}
	return n
}

// SetMaxDistance changes the interaction cutoff distance. It fails with
// InFlightChange if any subpopulation is currently evaluated.
func (it *InteractionType) SetMaxDistance(d float64) error {
	if it.AnyEvaluated() {
		return newError(ErrInFlightChange, "max_distance cannot change while a subpopulation is evaluated")
	}
	if d < 0 {
		return newErrorf(ErrConfig, "max_distance must be >= 0, got %v", d)
	}
	if it.ifKind == IFLinear && (math.IsInf(d, 1) || d <= 0) {
		return newError(ErrConfig, "a linear interaction function requires a finite, positive max_distance")
	}
	it.maxDistance = d
	it.maxDistanceSq = d * d
	return nil
}

// SetInteractionFunction changes the interaction function kind and its
// parameters. It fails with InFlightChange if any subpopulation is
// currently evaluated, and with ConfigError if the new kind is
// incompatible with the current spatiality or max distance.
func (it *InteractionType) SetInteractionFunction(kind IFKind, a, b float64) error {
	if it.AnyEvaluated() {
		return newError(ErrInFlightChange, "the interaction function cannot change while a subpopulation is evaluated")
	}
	if it.spatiality == 0 && kind != IFFixed {
		return newError(ErrConfig, "a spatiality of \"\" requires a fixed interaction function")
	}
	if kind == IFLinear && (math.IsInf(it.maxDistance, 1) || it.maxDistance <= 0) {
		return newError(ErrConfig, "a linear interaction function requires a finite, positive max_distance")
	}
	it.ifKind = kind
	it.ifParamA = a
	it.ifParamB = b
	return nil
}

// RegisterCallback adds a strength-modifier callback to the set applied
// by every subsequent Evaluate (section 4.3, 4.8). Registering a
// callback does not affect a subpopulation already evaluated; call
// Evaluate again to pick up the change. If cb.Constant is non-nil it
// must be finite and non-negative, enforced here rather than on every
// invocation.
func (it *InteractionType) RegisterCallback(cb ActiveCallback) error {
	if cb.Constant != nil {
		c := *cb.Constant
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			return newErrorf(ErrConfig, "constant callback value must be finite and non-negative, got %v", c)
		}
	}
	it.callbacks = append(it.callbacks, cb)
	return nil
}

// ClearCallbacks removes every registered callback. Like
// RegisterCallback, it only affects subsequent calls to Evaluate.
func (it *InteractionType) ClearCallbacks() {
	it.callbacks = nil
}

// describeSpatiality renders the packed axis selection back to its
// canonical string form, used only for diagnostics.
func (it *InteractionType) describeSpatiality() string {
	var b strings.Builder
	if it.axes.useX {
		b.WriteByte('x')
	}
	if it.axes.useY {
		b.WriteByte('y')
	}
	if it.axes.useZ {
		b.WriteByte('z')
	}
	return b.String()
}
