// Package conflict applies the attack model pairwise over a placement set.
package conflict

import (
	"fmt"

	"svw.info/peaceable/internal/attack"
	"svw.info/peaceable/internal/domain"
)

// Evaluator implements ports.Evaluator. O(n^2) line-of-sight tests per call,
// which is fine for the dozens of pieces a daily inventory holds.
type Evaluator struct{}

// New returns the pairwise conflict evaluator.
func New() *Evaluator { return &Evaluator{} }

// Evaluate tests every unordered pair in both directions; a pair conflicts
// if either directional attack holds. Genuinely coincident placements are
// reported as non-attacking. The caller's slice is never mutated. Every
// placement must be in bounds; an out-of-bounds square is a contract
// violation and panics naming the offender.
func (Evaluator) Evaluate(b *domain.Board, placements []domain.Placement) domain.ConflictResult {
	for _, p := range placements {
		if !b.InBounds(p.Row, p.Col) {
			panic(fmt.Sprintf("conflict: %s at (%d,%d) is out of bounds for a %dx%d board",
				p.Type, p.Row, p.Col, b.Width, b.Height))
		}
	}
	res := domain.ConflictResult{Positions: make(map[domain.SquareKey]struct{})}
	occ := occupiedSet(placements)
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			pi, pj := placements[i], placements[j]
			if pi.Key() == pj.Key() {
				continue
			}
			if attack.Attacks(b, occ, pi, pj) || attack.Attacks(b, occ, pj, pi) {
				res.PairCount++
				res.Positions[pi.Key()] = struct{}{}
				res.Positions[pj.Key()] = struct{}{}
			}
		}
	}
	return res
}

// Legal reports whether the placement set has zero conflicting positions.
func (e Evaluator) Legal(b *domain.Board, placements []domain.Placement) bool {
	return len(e.Evaluate(b, placements).Positions) == 0
}

func occupiedSet(placements []domain.Placement) map[domain.SquareKey]bool {
	occ := make(map[domain.SquareKey]bool, len(placements))
	for _, p := range placements {
		occ[p.Key()] = true
	}
	return occ
}
