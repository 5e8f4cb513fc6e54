// Package rational implements an exact field of symbolic rational
// functions over a fixed, named parameter set.
//
// A Field fixes the parameter names (for example the per-vertex sleep
// probabilities q_0..q_{n-1}) and mints Expr values: immutable rational
// functions whose numerator and denominator are multivariate polynomials
// with arbitrary-precision rational coefficients (math/big).
//
// All arithmetic is exact. Every operation canonicalizes its result by
// cancelling the polynomial GCD of numerator and denominator, which keeps
// expression size bounded across long chains of eliminations - skipping
// this step makes Gaussian elimination over the field blow up in practice.
//
// Equality is decided only via IsZero after cancellation; the sole ordering
// exposed is NumerDegree, the total degree of the numerator, intended as a
// pivoting heuristic and nothing more.
package rational
