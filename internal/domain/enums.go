package domain

import "fmt"

// PieceType enumerates the six piece archetypes a daily inventory can hold.
type PieceType int

const (
	Queen PieceType = iota
	Rook
	Bishop
	Knight
	Pawn
	King
)

// PlacementOrder is the fixed priority used for inventory draws and for the
// solver's piece ordering. Reordering it changes seeded outputs.
var PlacementOrder = [...]PieceType{Queen, Rook, Bishop, Knight, Pawn, King}

// Known reports whether t is one of the six defined piece archetypes.
func (t PieceType) Known() bool { return t >= Queen && t <= King }

// Points returns the conventional point value of the piece.
func (t PieceType) Points() int {
	switch t {
	case Queen:
		return 9
	case Rook:
		return 5
	case Bishop, Knight:
		return 3
	case Pawn:
		return 1
	default:
		return 0
	}
}

func (t PieceType) String() string {
	switch t {
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	case King:
		return "king"
	}
	return fmt.Sprintf("piecetype(%d)", int(t))
}

// Letter returns the one-letter algebraic abbreviation used in board dumps.
func (t PieceType) Letter() byte {
	switch t {
	case Queen:
		return 'Q'
	case Rook:
		return 'R'
	case Bishop:
		return 'B'
	case Knight:
		return 'N'
	case Pawn:
		return 'P'
	default:
		return 'K'
	}
}

// ParsePieceType maps a lowercase piece name to its PieceType.
func ParsePieceType(s string) (PieceType, error) {
	switch s {
	case "queen":
		return Queen, nil
	case "rook":
		return Rook, nil
	case "bishop":
		return Bishop, nil
	case "knight":
		return Knight, nil
	case "pawn":
		return Pawn, nil
	case "king":
		return King, nil
	}
	return 0, fmt.Errorf("unknown piece type %q", s)
}

// MarshalText lets PieceType act as a JSON map key and value.
func (t PieceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *PieceType) UnmarshalText(b []byte) error {
	v, err := ParsePieceType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// SolveStatus is the three-valued outcome of a solver run. GaveUp means the
// node budget ran out before the search space was exhausted; it is not a
// proof of infeasibility.
type SolveStatus int

const (
	StatusSolved SolveStatus = iota
	StatusInfeasible
	StatusGaveUp
)

func (s SolveStatus) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "gave-up"
	}
}

// HintKind distinguishes the two hint shapes the engine can produce.
type HintKind int

const (
	HintRemove HintKind = iota // a placed piece makes the position unsolvable
	HintPlace                  // a square required by at least one solution
)

func (k HintKind) String() string {
	if k == HintRemove {
		return "remove"
	}
	return "place"
}
