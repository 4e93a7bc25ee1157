package solver

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"svw.info/peaceable/internal/conflict"
	"svw.info/peaceable/internal/domain"
)

func pl(r, c int, t domain.PieceType) domain.Placement {
	return domain.Placement{Row: r, Col: c, Type: t}
}

func TestSolveSingleKing(t *testing.T) {
	b := domain.NewBoard(4, 4)
	res, st := New().Solve(context.Background(), b, domain.Inventory{domain.King: 1}, nil)
	if res.Status != domain.StatusSolved {
		t.Fatalf("status = %v, want solved (nodes=%d)", res.Status, st.Nodes)
	}
	want := []domain.Placement{pl(0, 0, domain.King)}
	if diff := cmp.Diff(want, res.Placements); diff != "" {
		t.Fatalf("unexpected placements (-want +got):\n%s", diff)
	}
}

func TestSolveMixedInventoryIsSoundAndDeterministic(t *testing.T) {
	b := domain.NewBoard(4, 4)
	inv := domain.Inventory{domain.Rook: 2, domain.Knight: 1}
	res, _ := New().Solve(context.Background(), b, inv, nil)
	if res.Status != domain.StatusSolved {
		t.Fatalf("status = %v, want solved", res.Status)
	}
	// Chronological row-major search is fully deterministic.
	want := []domain.Placement{
		pl(0, 0, domain.Rook),
		pl(1, 1, domain.Rook),
		pl(2, 2, domain.Knight),
	}
	if diff := cmp.Diff(want, res.Placements); diff != "" {
		t.Fatalf("unexpected placements (-want +got):\n%s", diff)
	}
	if conf := conflict.New().Evaluate(b, res.Placements); conf.PairCount != 0 {
		t.Fatalf("solution has %d conflicting pairs", conf.PairCount)
	}
	counts := make(domain.Inventory)
	for _, p := range res.Placements {
		counts[p.Type]++
	}
	if diff := cmp.Diff(inv, counts); diff != "" {
		t.Fatalf("solution counts do not match inventory (-want +got):\n%s", diff)
	}
}

func TestSolveInfeasible(t *testing.T) {
	b := domain.NewBoard(2, 2)
	res, _ := New().Solve(context.Background(), b, domain.Inventory{domain.Queen: 2}, nil)
	if res.Status != domain.StatusInfeasible {
		t.Fatalf("status = %v, want infeasible", res.Status)
	}
	if res.Placements != nil {
		t.Fatalf("infeasible result carries placements: %v", res.Placements)
	}
}

func TestSolvePreplacedValidation(t *testing.T) {
	blocked := domain.NewBoard(4, 4)
	blocked.Cells[0][0] = domain.CellBlocked

	cases := []struct {
		name      string
		board     *domain.Board
		inv       domain.Inventory
		preplaced []domain.Placement
	}{
		{"on blocked square", blocked, domain.Inventory{domain.King: 1}, []domain.Placement{pl(0, 0, domain.King)}},
		{"out of bounds", domain.NewBoard(4, 4), domain.Inventory{domain.King: 1}, []domain.Placement{pl(9, 0, domain.King)}},
		{"exceeds inventory", domain.NewBoard(4, 4), domain.Inventory{domain.King: 1}, []domain.Placement{pl(0, 0, domain.King), pl(2, 2, domain.King)}},
		{"type not in inventory", domain.NewBoard(4, 4), domain.Inventory{domain.King: 1}, []domain.Placement{pl(0, 0, domain.Queen)}},
		{"conflicting preplacement", domain.NewBoard(4, 4), domain.Inventory{domain.King: 2}, []domain.Placement{pl(0, 0, domain.King), pl(0, 1, domain.King)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, _ := New().Solve(context.Background(), tc.board, tc.inv, tc.preplaced)
			if res.Status != domain.StatusInfeasible {
				t.Fatalf("status = %v, want infeasible", res.Status)
			}
		})
	}
}

func TestSolvePreplacedCompleteSolution(t *testing.T) {
	b := domain.NewBoard(4, 4)
	pre := []domain.Placement{pl(0, 0, domain.King)}
	res, st := New().Solve(context.Background(), b, domain.Inventory{domain.King: 1}, pre)
	if res.Status != domain.StatusSolved {
		t.Fatalf("status = %v, want solved", res.Status)
	}
	if diff := cmp.Diff(pre, res.Placements); diff != "" {
		t.Fatalf("unexpected placements (-want +got):\n%s", diff)
	}
	if st.Nodes != 0 {
		t.Fatalf("complete preplacement expanded %d nodes, want 0", st.Nodes)
	}
	// The caller's slice must stay untouched and unaliased.
	res.Placements[0] = pl(3, 3, domain.Queen)
	if pre[0] != pl(0, 0, domain.King) {
		t.Fatal("solver aliased the caller's preplaced slice")
	}
}

// A budget run-out must be reported as gave-up, never as infeasible: the two
// are different claims.
func TestSolveNodeBudgetGivesUp(t *testing.T) {
	b := domain.NewBoard(4, 4)
	res, st := New(WithNodeBudget(1)).Solve(context.Background(), b, domain.Inventory{domain.King: 2}, nil)
	if res.Status != domain.StatusGaveUp {
		t.Fatalf("status = %v, want gave-up (nodes=%d)", res.Status, st.Nodes)
	}
	// The same position solves fine without the artificial budget.
	res, _ = New().Solve(context.Background(), b, domain.Inventory{domain.King: 2}, nil)
	if res.Status != domain.StatusSolved {
		t.Fatalf("status = %v, want solved", res.Status)
	}
}

func TestSolveTwoKingsOnSeparatedPair(t *testing.T) {
	b := domain.NewBoard(4, 4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			b.Cells[r][c] = domain.CellBlocked
		}
	}
	b.Cells[1][0] = domain.CellValid
	b.Cells[1][2] = domain.CellValid
	res, _ := New().Solve(context.Background(), b, domain.Inventory{domain.King: 2}, nil)
	if res.Status != domain.StatusSolved {
		t.Fatalf("status = %v, want solved", res.Status)
	}
	want := []domain.Placement{pl(1, 0, domain.King), pl(1, 2, domain.King)}
	if diff := cmp.Diff(want, res.Placements); diff != "" {
		t.Fatalf("unexpected placements (-want +got):\n%s", diff)
	}
	// An adjacent pair cannot hold both kings.
	b.Cells[1][2] = domain.CellBlocked
	b.Cells[1][1] = domain.CellValid
	res, _ = New().Solve(context.Background(), b, domain.Inventory{domain.King: 2}, nil)
	if res.Status != domain.StatusInfeasible {
		t.Fatalf("status = %v, want infeasible", res.Status)
	}
}

// Inventory keys outside the piece enum are a caller bug: they would
// otherwise be skipped silently and the search would report a solution that
// never placed them.
func TestSolvePanicsOnUnknownPieceType(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for an unknown piece type")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "unknown piece type") {
			t.Fatalf("panic message = %q, want mention of the unknown type", msg)
		}
	}()
	New().Solve(context.Background(), domain.NewBoard(4, 4), domain.Inventory{domain.PieceType(42): 3}, nil)
}

func TestSolvePanicsOnNegativeCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a negative inventory count")
		}
	}()
	New().Solve(context.Background(), domain.NewBoard(4, 4), domain.Inventory{domain.King: -1}, nil)
}

// A cancelled context is a budget of zero: the search reports gave-up, the
// same claim as a node run-out.
func TestSolveCancelledContextGivesUp(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, _ := New().Solve(ctx, domain.NewBoard(4, 4), domain.Inventory{domain.King: 1}, nil)
	if res.Status != domain.StatusGaveUp {
		t.Fatalf("status = %v, want gave-up", res.Status)
	}
}

func TestSolveSkipsBlockedCells(t *testing.T) {
	b := domain.NewBoard(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			b.Cells[r][c] = domain.CellBlocked
		}
	}
	b.Cells[2][2] = domain.CellValid
	res, _ := New().Solve(context.Background(), b, domain.Inventory{domain.King: 1}, nil)
	if res.Status != domain.StatusSolved {
		t.Fatalf("status = %v, want solved", res.Status)
	}
	if diff := cmp.Diff([]domain.Placement{pl(2, 2, domain.King)}, res.Placements); diff != "" {
		t.Fatalf("unexpected placements (-want +got):\n%s", diff)
	}
}
