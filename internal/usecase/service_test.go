package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/peaceable/internal/board"
	"svw.info/peaceable/internal/conflict"
	"svw.info/peaceable/internal/domain"
	"svw.info/peaceable/internal/hint"
	"svw.info/peaceable/internal/inventory"
	"svw.info/peaceable/internal/search"
	"svw.info/peaceable/internal/solver"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	gen, err := board.New(board.WithSize(5))
	if err != nil {
		t.Fatalf("board.New failed: %v", err)
	}
	ev := conflict.New()
	sv := solver.New()
	sr := search.New(sv, nil, board.WithSize(5))
	return NewService(gen, inventory.New(), ev, sv, sr, hint.New(sv, ev))
}

func TestNilDependenciesAreGuarded(t *testing.T) {
	var empty Service
	b := domain.NewBoard(4, 4)

	if _, err := empty.GenerateBoard("s", 0); !errors.Is(err, errNotConfigured) {
		t.Errorf("GenerateBoard error = %v, want errNotConfigured", err)
	}
	if _, err := empty.InventoryForSeed("s"); !errors.Is(err, errNotConfigured) {
		t.Errorf("InventoryForSeed error = %v, want errNotConfigured", err)
	}
	if _, err := empty.EvaluateConflicts(b, nil); !errors.Is(err, errNotConfigured) {
		t.Errorf("EvaluateConflicts error = %v, want errNotConfigured", err)
	}
	if _, _, err := empty.SolveWithInventory(context.Background(), b, nil, nil); !errors.Is(err, errNotConfigured) {
		t.Errorf("SolveWithInventory error = %v, want errNotConfigured", err)
	}
	if _, _, _, err := empty.FindSolvableBoard(context.Background(), "s", nil, 1, 0); !errors.Is(err, errNotConfigured) {
		t.Errorf("FindSolvableBoard error = %v, want errNotConfigured", err)
	}
	if _, _, err := empty.Hint(context.Background(), b, nil, nil); !errors.Is(err, errNotConfigured) {
		t.Errorf("Hint error = %v, want errNotConfigured", err)
	}
}

func TestDailySeed(t *testing.T) {
	u := newTestService(t)
	got := u.DailySeed(time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC))
	if got != "20240101" {
		t.Fatalf("DailySeed = %q, want 20240101", got)
	}
}

func TestIsValidSquare(t *testing.T) {
	u := newTestService(t)
	b := domain.NewBoard(4, 4)
	b.Cells[1][2] = domain.CellBlocked

	if !u.IsValidSquare(b, 0, 0) {
		t.Error("open cell reported invalid")
	}
	if u.IsValidSquare(b, 1, 2) {
		t.Error("blocked cell reported valid")
	}
	if u.IsValidSquare(b, -1, 0) || u.IsValidSquare(b, 0, 4) {
		t.Error("out-of-bounds square reported valid")
	}
}

func TestFindSolvableBoardEndToEnd(t *testing.T) {
	u := newTestService(t)
	inv := domain.Inventory{domain.King: 1}

	b, solution, _, err := u.FindSolvableBoard(context.Background(), "20240101", inv, 2, 0)
	if err != nil {
		t.Fatalf("FindSolvableBoard failed: %v", err)
	}
	if solution == nil {
		t.Fatal("single king should always be placeable")
	}
	legal, err := u.IsLegalPlacement(b, solution)
	if err != nil {
		t.Fatalf("IsLegalPlacement failed: %v", err)
	}
	if !legal {
		t.Fatal("returned solution is not conflict-free")
	}
}

func TestSolveWithInventorySurfacesStatus(t *testing.T) {
	u := newTestService(t)
	b := domain.NewBoard(2, 2)

	res, _, err := u.SolveWithInventory(context.Background(), b, domain.Inventory{domain.Queen: 2}, nil)
	if err != nil {
		t.Fatalf("SolveWithInventory failed: %v", err)
	}
	if res.Status != domain.StatusInfeasible {
		t.Fatalf("status = %v, want infeasible", res.Status)
	}
}
