// Package solver implements the exact chronological backtracking search over
// valid squares. The search uses an explicit frame stack rather than
// recursion, which bounds memory on large boards and gives the node budget a
// natural checkpoint at every candidate try.
package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/peaceable/internal/attack"
	"svw.info/peaceable/internal/conflict"
	"svw.info/peaceable/internal/domain"
	"svw.info/peaceable/internal/ports"
)

// DefaultNodeBudget bounds candidate tries per solve. Exhausting it yields
// StatusGaveUp, which is deliberately distinct from StatusInfeasible: a
// budget run-out proves nothing about the position.
const DefaultNodeBudget = 5_000_000

// Backtracking implements ports.Solver.
type Backtracking struct {
	budget int
	eval   conflict.Evaluator
}

// Option configures the solver.
type Option func(*Backtracking)

// WithNodeBudget overrides the candidate-try budget. A non-positive budget
// disables the limit.
func WithNodeBudget(n int) Option {
	return func(s *Backtracking) { s.budget = n }
}

// New returns a backtracking solver with the default node budget.
func New(opts ...Option) *Backtracking {
	s := &Backtracking{budget: DefaultNodeBudget}
	for _, fn := range opts {
		fn(s)
	}
	return s
}

// frame records one committed placement in the search: the square it landed
// on and the candidate cursor that chose it, so backtracking can resume at
// the next candidate.
type frame struct {
	square domain.SquareKey
	cursor int
}

// Solve searches for a complete, conflict-free assignment of the inventory
// to valid squares, keeping preplaced pieces fixed. Invalid or conflicting
// preplaced input is reported as StatusInfeasible, never as an error, and
// ctx cancellation surfaces as StatusGaveUp; the caller's slices are never
// mutated. An inventory referencing an unknown piece type or a negative
// count is a contract violation and panics.
func (s *Backtracking) Solve(ctx context.Context, b *domain.Board, inv domain.Inventory, preplaced []domain.Placement) (domain.SolveResult, ports.Stats) {
	for t, c := range inv {
		if !t.Known() {
			panic(fmt.Sprintf("solver: inventory references unknown piece type %d", int(t)))
		}
		if c < 0 {
			panic(fmt.Sprintf("solver: inventory count for %s is negative (%d)", t, c))
		}
	}

	start := time.Now()
	done := func(res domain.SolveResult, nodes int) (domain.SolveResult, ports.Stats) {
		return res, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	}
	infeasible := domain.SolveResult{Status: domain.StatusInfeasible}

	// Fixed pieces must sit on valid squares and fit the inventory.
	used := make(map[domain.PieceType]int)
	occ := make(map[domain.SquareKey]bool, len(preplaced))
	for _, p := range preplaced {
		if !b.Valid(p.Row, p.Col) {
			return done(infeasible, 0)
		}
		used[p.Type]++
		if used[p.Type] > inv[p.Type] {
			return done(infeasible, 0)
		}
		occ[p.Key()] = true
	}
	if !s.eval.Legal(b, preplaced) {
		return done(infeasible, 0)
	}

	// Remaining multiset in fixed priority order: high-mobility pieces
	// first prunes the tree faster.
	var remaining []domain.PieceType
	for _, t := range domain.PlacementOrder {
		for i := used[t]; i < inv[t]; i++ {
			remaining = append(remaining, t)
		}
	}

	placed := append([]domain.Placement(nil), preplaced...)
	if len(remaining) == 0 {
		return done(domain.SolveResult{Status: domain.StatusSolved, Placements: placed}, 0)
	}

	candidates := make([]domain.SquareKey, 0, b.Width*b.Height)
	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			if b.Cells[r][c] == domain.CellValid {
				candidates = append(candidates, domain.SquareKey{Row: r, Col: c})
			}
		}
	}

	stack := make([]frame, 0, len(remaining))
	cursor := 0
	nodes := 0
	for {
		if ctx.Err() != nil {
			return done(domain.SolveResult{Status: domain.StatusGaveUp}, nodes)
		}
		depth := len(stack)
		advanced := false
		for ; cursor < len(candidates); cursor++ {
			sq := candidates[cursor]
			if occ[sq] {
				continue
			}
			nodes++
			if s.budget > 0 && nodes > s.budget {
				return done(domain.SolveResult{Status: domain.StatusGaveUp}, nodes)
			}
			cand := domain.Placement{Row: sq.Row, Col: sq.Col, Type: remaining[depth]}
			occ[sq] = true
			if conflictsAny(b, occ, cand, placed) {
				delete(occ, sq)
				continue
			}
			placed = append(placed, cand)
			stack = append(stack, frame{square: sq, cursor: cursor})
			advanced = true
			break
		}
		if advanced {
			if len(stack) == len(remaining) {
				out := append([]domain.Placement(nil), placed...)
				return done(domain.SolveResult{Status: domain.StatusSolved, Placements: out}, nodes)
			}
			cursor = 0
			continue
		}
		if len(stack) == 0 {
			return done(infeasible, nodes)
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		placed = placed[:len(placed)-1]
		delete(occ, top.square)
		cursor = top.cursor + 1
	}
}

// conflictsAny checks the candidate bidirectionally against every committed
// piece. Adding a piece can only obstruct existing sight lines, never open
// new ones, so the incremental check is equivalent to re-evaluating the
// whole set.
func conflictsAny(b *domain.Board, occ map[domain.SquareKey]bool, cand domain.Placement, placed []domain.Placement) bool {
	for _, p := range placed {
		if attack.Attacks(b, occ, cand, p) || attack.Attacks(b, occ, p, cand) {
			return true
		}
	}
	return false
}
