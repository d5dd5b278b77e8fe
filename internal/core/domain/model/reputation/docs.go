// Package reputation provides the per-customer reputation aggregate.
// Reputation keeps increment-only counters of delivered and cancelled
// order outcomes, updated as a side effect of terminal status transitions.
package reputation
