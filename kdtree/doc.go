// Package kdtree implements a balanced k-d tree over flat, stride-3
// position data, used by the interaction engine to answer nearest,
// in-radius, and top-k-in-radius neighbor queries. Nodes live in a
// single flat array and reference each other by index rather than by
// pointer, so the whole tree is one contiguous allocation.
package kdtree
