// Package usecase exposes the engine's pure-function surface to the
// surrounding application. The UI, CLI, and any future collaborator call
// through Service; engine packages never call each other across this layer.
package usecase

import (
	"context"
	"errors"
	"time"

	"svw.info/peaceable/internal/domain"
	"svw.info/peaceable/internal/ports"
	"svw.info/peaceable/internal/seed"
)

type Service struct {
	Generator ports.Generator
	Inventory ports.InventoryRoller
	Evaluator ports.Evaluator
	Solver    ports.Solver
	Searcher  ports.Searcher
	Hinter    ports.Hinter
}

func NewService(g ports.Generator, inv ports.InventoryRoller, e ports.Evaluator, s ports.Solver, sr ports.Searcher, h ports.Hinter) *Service {
	return &Service{Generator: g, Inventory: inv, Evaluator: e, Solver: s, Searcher: sr, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// DailySeed returns the canonical YYYYMMDD seed for the date's UTC day.
func (u *Service) DailySeed(t time.Time) string {
	return seed.Daily(t)
}

// GenerateBoard paints the deterministic board for a seed. size 0 keeps the
// generator's default edge length.
func (u *Service) GenerateBoard(seedStr string, size int) (*domain.Board, error) {
	if u.Generator == nil {
		return nil, errNotConfigured
	}
	return u.Generator.Generate(seedStr, size)
}

// InventoryForSeed rolls the day's piece counts.
func (u *Service) InventoryForSeed(seedStr string) (domain.Inventory, error) {
	if u.Inventory == nil {
		return nil, errNotConfigured
	}
	return u.Inventory.ForSeed(seedStr), nil
}

// IsValidSquare reports whether (row, col) is a placeable square.
func (u *Service) IsValidSquare(b *domain.Board, row, col int) bool {
	return b.Valid(row, col)
}

// EvaluateConflicts applies the attack model pairwise over the placements.
func (u *Service) EvaluateConflicts(b *domain.Board, placements []domain.Placement) (domain.ConflictResult, error) {
	if u.Evaluator == nil {
		return domain.ConflictResult{}, errNotConfigured
	}
	return u.Evaluator.Evaluate(b, placements), nil
}

// IsLegalPlacement reports whether the placements are mutually non-attacking.
func (u *Service) IsLegalPlacement(b *domain.Board, placements []domain.Placement) (bool, error) {
	if u.Evaluator == nil {
		return false, errNotConfigured
	}
	return u.Evaluator.Legal(b, placements), nil
}

// SolveWithInventory searches for a complete conflict-free assignment with
// the preplaced pieces fixed. Infeasibility and budget run-out are outcomes
// in the result, not errors.
func (u *Service) SolveWithInventory(ctx context.Context, b *domain.Board, inv domain.Inventory, preplaced []domain.Placement) (domain.SolveResult, ports.Stats, error) {
	if u.Solver == nil {
		return domain.SolveResult{}, ports.Stats{}, errNotConfigured
	}
	res, st := u.Solver.Solve(ctx, b, inv, preplaced)
	return res, st, nil
}

// FindSolvableBoard regenerates seed variants until one is solvable for the
// full inventory. On exhaustion the returned solution is nil and the board
// is the base seed's. blockRatio 0 keeps the configured default.
func (u *Service) FindSolvableBoard(ctx context.Context, seedStr string, inv domain.Inventory, maxAttempts int, blockRatio float64) (*domain.Board, []domain.Placement, ports.Stats, error) {
	if u.Searcher == nil {
		return nil, nil, ports.Stats{}, errNotConfigured
	}
	return u.Searcher.FindSolvable(ctx, seedStr, inv, maxAttempts, blockRatio)
}

// Hint proposes the next move for the current placements, or ok=false when
// no hint applies.
func (u *Service) Hint(ctx context.Context, b *domain.Board, inv domain.Inventory, placed []domain.Placement) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	h, ok := u.Hinter.Next(ctx, b, inv, placed)
	return h, ok, nil
}

// DailyPuzzle composes seed derivation, the inventory roll, and the solvable
// board search into the bundle a consumer presents for one calendar day.
func (u *Service) DailyPuzzle(ctx context.Context, t time.Time, maxAttempts int) (*domain.Puzzle, ports.Stats, error) {
	if u.Inventory == nil || u.Searcher == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	s := seed.Daily(t)
	inv := u.Inventory.ForSeed(s)
	b, solution, st, err := u.Searcher.FindSolvable(ctx, s, inv, maxAttempts, 0)
	if err != nil {
		return nil, st, err
	}
	return &domain.Puzzle{Seed: s, Board: b, Inventory: inv, Solution: solution}, st, nil
}
