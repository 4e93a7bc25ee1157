// Package inventory rolls the per-type piece counts for a seed. The draw
// order (queen, rook, bishop, knight, pawn) and the inclusive bounds are
// contractual: reordering or rebounding changes every seeded inventory.
package inventory

import (
	"svw.info/peaceable/internal/domain"
	"svw.info/peaceable/internal/seed"
)

// Roller implements ports.InventoryRoller.
type Roller struct{}

// New returns the standard daily inventory roller.
func New() *Roller { return &Roller{} }

// bound is one inclusive draw range in the fixed order.
type bound struct {
	piece  domain.PieceType
	lo, hi int
}

var bounds = []bound{
	{domain.Queen, 1, 2},
	{domain.Rook, 3, 4},
	{domain.Bishop, 2, 3},
	{domain.Knight, 2, 3},
	{domain.Pawn, 4, 6},
}

// ForSeed rolls the day's inventory from a fresh RNG stream. The board
// generator starts its own stream from the same seed, so the two draw
// sequences never interfere.
func (Roller) ForSeed(seedStr string) domain.Inventory {
	rng := seed.New(seedStr)
	inv := make(domain.Inventory, len(bounds)+1)
	for _, b := range bounds {
		inv[b.piece] = rng.IntN(b.lo, b.hi)
	}
	inv[domain.King] = 1
	return inv
}

// ForSeed is a package-level convenience mirroring Roller.ForSeed.
func ForSeed(seedStr string) domain.Inventory {
	return Roller{}.ForSeed(seedStr)
}
