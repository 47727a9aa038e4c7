package interaction

import "github.com/jgallowa07/SLiM/kdtree"

// InteractionsData is the per-subpopulation evaluation cache: a
// position snapshot, the lazily-filled distance and strength matrices,
// and the k-d tree built over the (possibly periodically replicated)
// positions. It is rebuilt, not merely reset, on every call to Evaluate.
type InteractionsData struct {
	evaluated bool

	individualCount int
	firstMaleIndex  int

	// sexes is a snapshot of each individual's sex, taken once per
	// Evaluate so that matrixAllowed's per-pair sex check is an O(1)
	// slice read rather than a host interface call for every pair.
	sexes []Sex

	boundsX1, boundsY1, boundsZ1 float64

	// positions is stride-3 regardless of spatiality; unused slots for
	// lower spatialities are left zeroed and never read.
	positions []float64

	// distances and strengths are row-major N*N. NaN means "not yet
	// computed". The diagonal is always 0 in both.
	distances []float64
	strengths []float64

	tree *kdtree.Tree

	activeCallbacks []ActiveCallback

	// visitGen and visitStamp implement a generation-stamped dedupe
	// buffer: visitGen[i] == visitStamp means individual i has already
	// been counted in the aggregation currently in progress. Bumping
	// visitStamp marks every individual unvisited in O(1), avoiding a
	// full re-clear of visitGen on every call (section 4.7).
	visitGen   []int32
	visitStamp int32
}

func newInteractionsData() *InteractionsData {
	return &InteractionsData{}
}

// ensureVisitBuf grows the dedupe buffer to n entries if needed and
// starts a fresh generation, returning a marker function that reports
// whether index i has already been seen this generation, marking it
// seen as a side effect.
func (d *InteractionsData) ensureVisitBuf(n int) func(i int) (alreadySeen bool) {
	if cap(d.visitGen) < n {
		d.visitGen = make([]int32, n)
	} else {
		d.visitGen = d.visitGen[:n]
	}
	d.visitStamp++
	stamp := d.visitStamp
	return func(i int) bool {
		if d.visitGen[i] == stamp {
			return true
		}
		d.visitGen[i] = stamp
		return false
	}
}

// ensureMatrixCapacity grows distances/strengths to N*N if their current
// backing array is too small, reusing the existing allocation otherwise.
// Evaluate builds a new InteractionsData for every subpopulation on every
// call and Unevaluate discards them all, so matrix buffers are not
// carried over from one evaluation to the next.
func (d *InteractionsData) ensureMatrixCapacity(n int) {
	need := n * n
	if cap(d.distances) < need {
		d.distances = make([]float64, need)
	} else {
		d.distances = d.distances[:need]
	}
	if cap(d.strengths) < need {
		d.strengths = make([]float64, need)
	} else {
		d.strengths = d.strengths[:need]
	}
}

// at returns the flat row-major index of pair (i,j) in an N*N matrix.
func at(i, j, n int) int { return i*n + j }
