// SPDX-License-Identifier: MIT

package iterative

// Strategy names how the equation ordering was obtained.
type Strategy string

const (
	// StrategyIdentity: the input was already diagonally dominant.
	StrategyIdentity Strategy = "identity"
	// StrategyBruteForce: lexicographic permutation enumeration.
	StrategyBruteForce Strategy = "brute-force"
	// StrategyMatching: bipartite matching of equations to positions.
	StrategyMatching Strategy = "matching"
)

// Order is the outcome of FindDominantOrder.
type Order struct {
	// Perm[i] is the original index of the equation placed at row i.
	Perm []int
	// Strategy that produced Perm.
	Strategy Strategy
	// Steps counts candidate placements tested (0 for StrategyIdentity).
	Steps int
}

// Report describes one Solve call (the convergence report).
type Report struct {
	// Iterations is the number of sweeps performed.
	Iterations int
	// Residual is max |x_new − x_old| of the final sweep.
	Residual float64
	// Converged is false when the iteration cap was reached first.
	Converged bool
	// Order is the equation ordering the sweeps ran on.
	Order Order
}
