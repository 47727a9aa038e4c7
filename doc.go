// Package interaction implements the spatial interaction engine of an
// individual-based forward-time population-genetic simulator.
//
// An InteractionType describes a rule for how individuals within a single
// subpopulation interact with one another over distance: how far an
// interaction reaches, how its strength falls off with distance, whether
// it is symmetric, and whether it is restricted to certain sexes. The
// engine evaluates that rule against a snapshot of individual positions,
// builds a k-d tree over them, and answers four kinds of query against
// the result: pairwise distance/strength, nearest/radius neighbor search,
// weighted random draws, and summed neighbor strength.
//
// Evaluation is per-subpopulation and per-generation. Nothing here
// persists across a call to Unevaluate; the host simulation is expected
// to call Evaluate again whenever individual positions change.
package interaction
