// SPDX-License-Identifier: MIT

// Package iterative - equation ordering search.
//
// Purpose:
//   - Find an assignment of equations (items) to row positions such that a
//     row-local predicate fits(item, pos) holds for every position.
//   - Diagonal dominance is such a predicate: whether equation r is dominant
//     at position i depends on (r, i) alone (see matrix.Augmented.DominantAt).
//
// Two searches share the FitFunc contract:
//   - FirstOrdering: depth-first enumeration in lexicographic order over an
//     index arena (perm/used/next slices allocated once). Returns the first
//     fitting permutation in the order the full n! enumeration would visit
//     them; prefixes that already violate the predicate are skipped, which
//     never changes that first answer.
//   - MatchOrdering: augmenting-path bipartite matching (Kuhn). Polynomial,
//     returns some fitting permutation iff one exists.

package iterative

import (
	"context"
	"fmt"

	"github.com/katalvlaran/numcalc/matrix"
)

const opFindOrder = "FindDominantOrder"

// ctxCheckMask throttles ctx.Err() polling in the enumeration hot loop.
const ctxCheckMask = 0xFF

// FitFunc reports whether item may be placed at position pos.
type FitFunc func(item, pos int) bool

// FirstOrdering returns the lexicographically first permutation perm of
// 0..n-1 with fits(perm[pos], pos) for every pos, or nil if none exists.
// The second result counts predicate evaluations.
//
// Implementation:
//   - Stage 1: allocate the arena once: perm (current prefix), used (items
//     taken), next (next candidate item per depth).
//   - Stage 2: iterative DFS. At depth pos try items next[pos]..n-1 in
//     increasing order; descend on the first unused fitting item; backtrack
//     when none remains.
//
// Errors:
//   - ctx.Err() when the context is cancelled (polled between placements).
//
// Complexity:
//   - Time O(n!·n) worst case, Space O(n).
func FirstOrdering(ctx context.Context, n int, fits FitFunc) ([]int, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	perm := make([]int, n)
	used := make([]bool, n)
	next := make([]int, n+1)

	var (
		pos, c, steps int
		placed        bool
	)
	for pos >= 0 {
		if pos == n {
			return perm, steps, nil
		}
		placed = false
		for c = next[pos]; c < n; c++ {
			if used[c] {
				continue
			}
			steps++
			if steps&ctxCheckMask == 0 {
				if err := ctx.Err(); err != nil {
					return nil, steps, err
				}
			}
			if !fits(c, pos) {
				continue
			}
			perm[pos], used[c], next[pos] = c, true, c+1
			pos++
			next[pos] = 0
			placed = true
			break
		}
		if !placed {
			// exhausted this depth: release the parent's item and resume there
			pos--
			if pos >= 0 {
				used[perm[pos]] = false
			}
		}
	}

	return nil, steps, nil
}

// MatchOrdering returns a permutation perm with fits(perm[pos], pos) for all
// pos using augmenting paths, or nil if no such permutation exists. Items are
// inserted in increasing order and positions scanned in increasing order, so
// the result is deterministic.
//
// Errors:
//   - ctx.Err() when cancelled (polled once per inserted item).
//
// Complexity:
//   - Time O(n³), Space O(n).
func MatchOrdering(ctx context.Context, n int, fits FitFunc) ([]int, int, error) {
	itemAt := make([]int, n) // position -> item, -1 when free
	for i := range itemAt {
		itemAt[i] = -1
	}
	seen := make([]bool, n)
	steps := 0

	var augment func(item int) bool
	augment = func(item int) bool {
		for pos := 0; pos < n; pos++ {
			if seen[pos] {
				continue
			}
			steps++
			if !fits(item, pos) {
				continue
			}
			seen[pos] = true
			if itemAt[pos] < 0 || augment(itemAt[pos]) {
				itemAt[pos] = item
				return true
			}
		}
		return false
	}

	for item := 0; item < n; item++ {
		if err := ctx.Err(); err != nil {
			return nil, steps, err
		}
		clear(seen)
		if !augment(item) {
			// Kuhn: an item left unmatched now stays unmatched; no perfect matching.
			return nil, steps, nil
		}
	}

	return itemAt, steps, nil
}

// FindDominantOrder returns an ordering of a's equations whose coefficient
// block is diagonally dominant.
//
// Implementation:
//   - Stage 1: already dominant ⇒ identity (StrategyIdentity).
//   - Stage 2: n ≤ brute-force limit ⇒ FirstOrdering (StrategyBruteForce).
//   - Stage 3: otherwise MatchOrdering (StrategyMatching).
//
// Errors:
//   - matrix.ErrNilMatrix for a nil system.
//   - ErrNotDiagonallyDominant when no ordering exists.
//   - ctx.Err() on cancellation.
func FindDominantOrder(ctx context.Context, a *matrix.Augmented, opts ...Option) (Order, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return Order{}, fmt.Errorf("%s: %w", opFindOrder, err)
	}
	o := gatherOptions(opts...)
	n := a.N()

	if matrix.IsDiagonallyDominant(a) {
		perm := make([]int, n)
		for i := range perm {
			perm[i] = i
		}
		return Order{Perm: perm, Strategy: StrategyIdentity}, nil
	}

	var (
		perm     []int
		steps    int
		err      error
		strategy Strategy
	)
	if n <= o.bruteLimit {
		strategy = StrategyBruteForce
		perm, steps, err = FirstOrdering(ctx, n, a.DominantAt)
	} else {
		strategy = StrategyMatching
		perm, steps, err = MatchOrdering(ctx, n, a.DominantAt)
	}
	if err != nil {
		return Order{Strategy: strategy, Steps: steps}, fmt.Errorf("%s: %w", opFindOrder, err)
	}
	if perm == nil {
		return Order{Strategy: strategy, Steps: steps}, fmt.Errorf("%s: %d equations: %w", opFindOrder, n, ErrNotDiagonallyDominant)
	}

	return Order{Perm: perm, Strategy: strategy, Steps: steps}, nil
}
