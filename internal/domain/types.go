package domain

// CellState marks a board square as placeable or blocked. Blocked cells also
// obstruct sliding-piece sight lines.
type CellState uint8

const (
	CellValid CellState = iota
	CellBlocked
)

// Board is an immutable grid of cells produced from a seed. Callers must not
// modify Cells after generation.
type Board struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Cells  [][]CellState `json:"cells"`
	Seed   string        `json:"seed,omitempty"`
}

// NewBoard returns an all-valid board of the given dimensions.
func NewBoard(width, height int) *Board {
	cells := make([][]CellState, height)
	for r := range cells {
		cells[r] = make([]CellState, width)
	}
	return &Board{Width: width, Height: height, Cells: cells}
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Height && col >= 0 && col < b.Width
}

// Valid reports whether (row, col) is an in-bounds, non-blocked square.
func (b *Board) Valid(row, col int) bool {
	return b.InBounds(row, col) && b.Cells[row][col] == CellValid
}

// ValidCount returns the number of placeable squares.
func (b *Board) ValidCount() int {
	n := 0
	for _, row := range b.Cells {
		for _, c := range row {
			if c == CellValid {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy, for callers that need a mutable scratch grid.
func (b *Board) Clone() *Board {
	out := &Board{Width: b.Width, Height: b.Height, Seed: b.Seed}
	out.Cells = make([][]CellState, len(b.Cells))
	for r, row := range b.Cells {
		out.Cells[r] = append([]CellState(nil), row...)
	}
	return out
}

// SquareKey identifies one board square; usable as a map key.
type SquareKey struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Placement is a piece occupying one square.
type Placement struct {
	Row  int       `json:"row"`
	Col  int       `json:"col"`
	Type PieceType `json:"type"`
}

// Key returns the placement's square key.
func (p Placement) Key() SquareKey { return SquareKey{Row: p.Row, Col: p.Col} }

// Inventory maps piece types to the counts that must all be placed for a
// solved state. Immutable once rolled for a seed.
type Inventory map[PieceType]int

// Total returns the number of pieces across all types.
func (inv Inventory) Total() int {
	n := 0
	for _, c := range inv {
		n += c
	}
	return n
}

// Points returns the summed point value of the full inventory.
func (inv Inventory) Points() int {
	n := 0
	for t, c := range inv {
		n += t.Points() * c
	}
	return n
}

// Clone returns an independent copy.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for t, c := range inv {
		out[t] = c
	}
	return out
}

// ConflictResult reports the squares involved in at least one mutual attack
// and the number of offending pairs. Derived, never persisted.
type ConflictResult struct {
	Positions map[SquareKey]struct{}
	PairCount int
}

// Hint is the engine's suggestion for the current position.
type Hint struct {
	Kind   HintKind  `json:"kind"`
	Square SquareKey `json:"square"`
	Type   PieceType `json:"type"`
}

// SolveResult carries the solver outcome. Placements is populated only when
// Status is StatusSolved and then includes the preplaced pieces.
type SolveResult struct {
	Status     SolveStatus
	Placements []Placement
}

// Puzzle bundles everything the CLI prints for one day. Solution is nil when
// the board search exhausted its attempts without proving solvability.
type Puzzle struct {
	Seed      string      `json:"seed"`
	Board     *Board      `json:"board"`
	Inventory Inventory   `json:"inventory"`
	Solution  []Placement `json:"solution,omitempty"`
}
