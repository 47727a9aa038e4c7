package interaction

// Subpopulation is the narrow, read-only view the engine requires of a
// host-owned subpopulation at evaluation time: how many individuals it
// holds, where the male individuals begin (individuals are assumed
// grouped female-then-male, as in the host simulation this engine was
// built for), its spatial extents, and per-individual position and sex.
type Subpopulation interface {
	// ID is the subpopulation's unique integer id, used to key the
	// engine's per-subpopulation evaluation cache.
	ID() int

	// Size returns the number of individuals, N.
	Size() int

	// FirstMaleIndex returns the index of the first male individual;
	// individuals [0, FirstMaleIndex) are female, [FirstMaleIndex, N)
	// are male. Returns N if there are no males.
	FirstMaleIndex() int

	// Bounds returns the upper bound of the subpopulation's spatial
	// extent along x, y, and z respectively (the lower bound is always
	// 0). Axes that do not participate in this interaction's
	// spatiality, or that are not periodic, may return any value; they
	// are ignored.
	Bounds() (x1, y1, z1 float64)

	// Position returns the coordinates of the individual at the given
	// subpopulation-local index.
	Position(index int) (x, y, z float64)

	// SexOf returns the sex of the individual at the given
	// subpopulation-local index.
	SexOf(index int) Sex
}

// Individual is an opaque, non-owning reference to one individual: its
// subpopulation and its subpopulation-local index. The engine never
// holds individuals beyond the lifetime of a single call; it is the
// host's responsibility to resolve an Individual back to its own
// representation.
type Individual struct {
	SubpopID int
	Index    int
}

// Callback is a host-supplied strength modifier. It receives the
// distance between receiver and exerter (NaN for non-spatial
// interactions), the strength computed so far, and the pair and
// subpopulation involved, and returns a replacement strength. Active
// callbacks for a given InteractionType chain left to right; a callback
// must return a finite, non-negative value or the call fails with
// CallbackReturnError.
type Callback func(distance, strength float64, receiver, exerter Individual, subpop Subpopulation) (float64, error)

// ActiveCallback pairs a Callback with an optional pre-evaluated
// constant. When Constant is non-nil the callback is never invoked;
// *Constant replaces the running strength directly, mirroring the
// source interpreter's short-circuit of a compound statement that is
// itself a constant expression (see section 4.3 and the design notes in
// section 9). Constant must be finite and non-negative; that is
// enforced when the ActiveCallback is registered, not on every call.
type ActiveCallback struct {
	Fn       Callback
	Constant *float64
}
