// Package stochastic generates the per-iteration random paths that drive the
// Monte Carlo engine. Each iteration owns an independent PCG stream derived
// from the run seed and the iteration index, so paths are reproducible
// regardless of how iterations are scheduled across workers. Baseline and
// APM scenarios consume the same path, which keeps their comparison paired.
package stochastic
