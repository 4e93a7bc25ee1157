// Package hint composes the evaluator and the solver into the two hint
// shapes the UI layer knows: "remove this piece" and "this square is part of
// a solution". Nothing is cached between calls; every hint recomputes from
// scratch.
package hint

import (
	"context"

	"svw.info/peaceable/internal/domain"
	"svw.info/peaceable/internal/ports"
)

// Engine implements ports.Hinter.
type Engine struct {
	solver ports.Solver
	eval   ports.Evaluator
}

// New wires a hint engine over the given solver and evaluator.
func New(s ports.Solver, e ports.Evaluator) *Engine {
	return &Engine{solver: s, eval: e}
}

// Next returns the hint for the current position, or false when no hint
// applies: conflicting placements (the caller gates those), a solver budget
// run-out, or a position that is already a complete solution.
func (h *Engine) Next(ctx context.Context, b *domain.Board, inv domain.Inventory, placed []domain.Placement) (domain.Hint, bool) {
	if !h.eval.Legal(b, placed) {
		return domain.Hint{}, false
	}
	res, _ := h.solver.Solve(ctx, b, inv, placed)
	switch res.Status {
	case domain.StatusGaveUp:
		return domain.Hint{}, false
	case domain.StatusInfeasible:
		return h.culprit(ctx, b, inv, placed)
	}
	return h.suggest(res.Placements, placed)
}

// culprit scans placements in order, removing one at a time; the first
// removal that restores feasibility names the wrong piece. First-found, not
// minimal: downstream behavior depends on this exact tie-break.
func (h *Engine) culprit(ctx context.Context, b *domain.Board, inv domain.Inventory, placed []domain.Placement) (domain.Hint, bool) {
	for i, p := range placed {
		rest := make([]domain.Placement, 0, len(placed)-1)
		rest = append(rest, placed[:i]...)
		rest = append(rest, placed[i+1:]...)
		res, _ := h.solver.Solve(ctx, b, inv, rest)
		if res.Status == domain.StatusSolved {
			return domain.Hint{Kind: domain.HintRemove, Square: p.Key(), Type: p.Type}, true
		}
	}
	return domain.Hint{}, false
}

// suggest reports the first solution square not already matched by an
// existing placement.
func (h *Engine) suggest(solution, placed []domain.Placement) (domain.Hint, bool) {
	have := make(map[domain.Placement]bool, len(placed))
	for _, p := range placed {
		have[p] = true
	}
	for _, p := range solution {
		if !have[p] {
			return domain.Hint{Kind: domain.HintPlace, Square: p.Key(), Type: p.Type}, true
		}
	}
	return domain.Hint{}, false
}
