// Package core is the single composition engine behind every effect and
// provider shape. Each arity normalizes its function type into a Step (or
// Total) over a packed argument tuple, runs the generic operator here, and
// converts back; no operator is written more than once.
//
// Key constructs:
// - Step/Total: fallible and non-failing normalized shapes
// - Sequence/SequenceTotal: ordered fail-fast composition
// - Of: eager validation plus the empty-identity and singleton rules
// - OnEx/Recover/HandleEx/IgnoreEx: failure routing
// - Policy/Apply: failure routing chosen as a value
// - Args2/Args3/Args4: packed inputs for multi-argument shapes
package core
