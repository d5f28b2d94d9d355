// Package domain specializes effects and providers for primitive value
// domains. Nothing here re-implements composition: each domain is an
// instantiation of the generic shapes in packages effect and provide, so the
// compiler produces unboxed code per value type and the ordering and failure
// rules are the shared ones.
//
// It also bridges specialized instances to the boxed world (Box/Unbox), lifts
// element effects to slices (Each/EachFallible), and offers a few leaves per
// domain: integer and float accumulators, boolean toggles, character
// counters, arbitrary-precision sums and range guards.
package domain
