// Package board paints the daily grid of valid and blocked cells. Generation
// is fully reproducible: one RNG draw per cell in row-major order, then a
// deterministic repair pass that never touches the RNG.
package board

import (
	"math"

	"svw.info/peaceable/internal/domain"
	"svw.info/peaceable/internal/seed"
)

// Generator produces boards with a fixed set of options.
type Generator struct {
	opts Options
}

// New builds a Generator, validating the combined options.
func New(opts ...Option) (*Generator, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Generator{opts: o}, nil
}

// Generate paints the board for a seed. A size of 0 or less keeps the
// generator's configured edge length.
func (g *Generator) Generate(seedStr string, size int) (*domain.Board, error) {
	o := g.opts
	if size > 0 {
		o.Size = size
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return generate(seedStr, o), nil
}

// Generate is a one-shot convenience for callers without a long-lived
// Generator.
func Generate(seedStr string, opts ...Option) (*domain.Board, error) {
	g, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(seedStr, 0)
}

func generate(seedStr string, o Options) *domain.Board {
	rng := seed.New(seedStr)
	b := domain.NewBoard(o.Size, o.Size)
	b.Seed = seedStr

	valid := 0
	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			if rng.Float64() < o.BlockRatio {
				b.Cells[r][c] = domain.CellBlocked
			} else {
				valid++
			}
		}
	}

	// Repair pass: flip the row-major-earliest blocked cells until the
	// playability floor is met. No RNG involved, so regeneration from the
	// same seed stays bit-identical.
	floor := int(math.Ceil(float64(b.Width*b.Height) * o.MinValidRatio))
	for r := 0; r < b.Height && valid < floor; r++ {
		for c := 0; c < b.Width && valid < floor; c++ {
			if b.Cells[r][c] == domain.CellBlocked {
				b.Cells[r][c] = domain.CellValid
				valid++
			}
		}
	}
	return b
}
