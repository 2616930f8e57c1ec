// Package montecarlo runs the paired Monte Carlo comparison of a BESS asset
// operated with and without an APM platform. Each iteration draws one
// stochastic path, evaluates both scenarios on it, and records the
// NPV-improvement of the APM scenario over the baseline. Iterations are
// independent and scheduled on a worker pool; results land in per-index
// slots, so the aggregate is identical whatever the execution order.
package montecarlo
