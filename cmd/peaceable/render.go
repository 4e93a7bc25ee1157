package main

import (
	"fmt"
	"sort"
	"strings"

	"svw.info/peaceable/internal/domain"
)

// formatBoard renders the grid as plain text: '.' valid, '#' blocked, piece
// letters where placements sit.
func formatBoard(b *domain.Board, placements []domain.Placement) string {
	pieces := make(map[domain.SquareKey]domain.PieceType, len(placements))
	for _, p := range placements {
		pieces[p.Key()] = p.Type
	}
	var sb strings.Builder
	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if t, ok := pieces[domain.SquareKey{Row: r, Col: c}]; ok {
				sb.WriteByte(t.Letter())
			} else if b.Cells[r][c] == domain.CellBlocked {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// formatInventory lists counts in the fixed placement order, with the total
// point value.
func formatInventory(inv domain.Inventory) string {
	parts := make([]string, 0, len(inv))
	for _, t := range domain.PlacementOrder {
		if inv[t] > 0 {
			parts = append(parts, fmt.Sprintf("%s x%d", t, inv[t]))
		}
	}
	// Any types outside the fixed order would be a bug, but print them
	// rather than hide them.
	var extra []string
	for t, c := range inv {
		if c > 0 && !inOrder(t) {
			extra = append(extra, fmt.Sprintf("%s x%d", t, c))
		}
	}
	sort.Strings(extra)
	parts = append(parts, extra...)
	return fmt.Sprintf("%s (%d pieces, %d points)", strings.Join(parts, ", "), inv.Total(), inv.Points())
}

func inOrder(t domain.PieceType) bool {
	for _, o := range domain.PlacementOrder {
		if o == t {
			return true
		}
	}
	return false
}
