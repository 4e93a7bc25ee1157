// Package attack holds the pure geometric movement rules. Every rule is a
// directional test: Attacks(from, to) asks whether the piece on from sees
// to, which is not the same question as the reverse for pawns.
package attack

import "svw.info/peaceable/internal/domain"

// Attacks reports whether the piece at from attacks the square at to,
// respecting blocked board cells and occupied squares as sight-blockers for
// sliding pieces. occupied must contain every placed piece's square; the
// endpoints themselves are never tested. A piece does not attack its own
// square.
func Attacks(b *domain.Board, occupied map[domain.SquareKey]bool, from, to domain.Placement) bool {
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	if dr == 0 && dc == 0 {
		return false
	}
	switch from.Type {
	case domain.Rook:
		return (dr == 0 || dc == 0) && pathClear(b, occupied, from, to)
	case domain.Bishop:
		return abs(dr) == abs(dc) && pathClear(b, occupied, from, to)
	case domain.Queen:
		return (dr == 0 || dc == 0 || abs(dr) == abs(dc)) && pathClear(b, occupied, from, to)
	case domain.Knight:
		return (abs(dr) == 2 && abs(dc) == 1) || (abs(dr) == 1 && abs(dc) == 2)
	case domain.King:
		return abs(dr) <= 1 && abs(dc) <= 1
	case domain.Pawn:
		// One canonical forward direction, toward decreasing row, for every
		// pawn regardless of position.
		return dr == -1 && abs(dc) == 1
	}
	return false
}

// pathClear walks unit steps strictly between from and to along the shared
// row, column, or diagonal. Any intermediate blocked cell or occupied square
// obstructs the line.
func pathClear(b *domain.Board, occupied map[domain.SquareKey]bool, from, to domain.Placement) bool {
	sr := sign(to.Row - from.Row)
	sc := sign(to.Col - from.Col)
	r, c := from.Row+sr, from.Col+sc
	for r != to.Row || c != to.Col {
		if b.Cells[r][c] == domain.CellBlocked {
			return false
		}
		if occupied[domain.SquareKey{Row: r, Col: c}] {
			return false
		}
		r += sr
		c += sc
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
