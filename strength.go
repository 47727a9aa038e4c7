package interaction

import (
	"math"
	"strconv"
)

// baseStrength evaluates the configured interaction function at
// distance d, with no callbacks applied. d may be NaN for non-spatial
// interactions; the fixed kind ignores it entirely. Callers must ensure
// d <= max_distance before calling (or that d is NaN), for performance:
// this function does not itself check the cutoff.
func (it *InteractionType) baseStrength(d float64) float64 {
	switch it.ifKind {
	case IFFixed:
		return it.ifParamA
	case IFLinear:
		return it.ifParamA * (1 - d/it.maxDistance)
	case IFExponential:
		return it.ifParamA * math.Exp(-it.ifParamB*d)
	case IFNormal:
		return it.ifParamA * math.Exp(-(d*d)/(2*it.ifParamB*it.ifParamB))
	default:
		return 0
	}
}

// strengthAt computes the strength exerted by exerter on receiver at
// distance d, applying every active callback in order. It is the only
// entry point that can fail (a callback returning a non-finite or
// negative value), since baseStrength alone cannot.
func (it *InteractionType) strengthAt(d *InteractionsData, dist float64, receiver, exerter Individual, subpop Subpopulation) (float64, error) {
	strength := it.baseStrength(dist)

	for i, cb := range d.activeCallbacks {
		if cb.Constant != nil {
			strength = *cb.Constant
			continue
		}
		next, err := cb.Fn(dist, strength, receiver, exerter, subpop)
		if err != nil {
			return 0, wrapError(ErrCallbackReturn, callbackContext(i, receiver, exerter), err)
		}
		if math.IsNaN(next) || math.IsInf(next, 0) || next < 0 {
			return 0, newErrorf(ErrCallbackReturn, "%s: callback returned non-finite or negative value %v", callbackContext(i, receiver, exerter), next)
		}
		strength = next
	}

	return strength, nil
}

func callbackContext(callbackIndex int, receiver, exerter Individual) string {
	return "callback " + strconv.Itoa(callbackIndex) + " receiver=" + strconv.Itoa(receiver.Index) + " exerter=" + strconv.Itoa(exerter.Index)
}
