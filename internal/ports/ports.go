package ports

import (
	"context"
	"time"

	"svw.info/peaceable/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Add accumulates another operation's stats into s.
func (s *Stats) Add(o Stats) {
	s.Nodes += o.Nodes
	s.Duration += o.Duration
}

// Generator paints a deterministic board for a seed. A size of 0 or less
// selects the generator's configured default edge length.
type Generator interface {
	Generate(seed string, size int) (*domain.Board, error)
}

// InventoryRoller rolls the per-type piece counts for a seed.
type InventoryRoller interface {
	ForSeed(seed string) domain.Inventory
}

// Evaluator applies the attack model pairwise over a placement set. Every
// placement must be on an in-bounds square.
type Evaluator interface {
	Evaluate(b *domain.Board, placements []domain.Placement) domain.ConflictResult
	Legal(b *domain.Board, placements []domain.Placement) bool
}

// Solver searches for a complete, conflict-free assignment of the inventory
// to valid squares, honoring an optional fixed partial placement. Context
// cancellation surfaces as a gave-up result, not an error.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board, inv domain.Inventory, preplaced []domain.Placement) (domain.SolveResult, Stats)
}

// Searcher regenerates seed-variant boards until one is solvable or the
// attempt budget runs out.
type Searcher interface {
	FindSolvable(ctx context.Context, seed string, inv domain.Inventory, maxAttempts int, blockRatio float64) (*domain.Board, []domain.Placement, Stats, error)
}

// Hinter proposes either a placement to remove or a square to fill.
type Hinter interface {
	Next(ctx context.Context, b *domain.Board, inv domain.Inventory, placed []domain.Placement) (domain.Hint, bool)
}
