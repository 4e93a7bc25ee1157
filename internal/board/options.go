package board

import "fmt"

// Defaults for daily board generation.
const (
	DefaultSize          = 8
	DefaultBlockRatio    = 0.28
	DefaultMinValidRatio = 0.45
)

// Options configures board generation behavior.
type Options struct {
	Size          int     // square board edge length
	BlockRatio    float64 // probability a cell starts blocked
	MinValidRatio float64 // guaranteed floor of valid cells, as a ratio
}

// Option mutates Options before generation.
type Option func(*Options)

// WithSize sets the board edge length.
func WithSize(n int) Option {
	return func(o *Options) { o.Size = n }
}

// WithBlockRatio sets the per-cell blocking probability.
func WithBlockRatio(r float64) Option {
	return func(o *Options) { o.BlockRatio = r }
}

// WithMinValidRatio sets the guaranteed valid-cell floor.
func WithMinValidRatio(r float64) Option {
	return func(o *Options) { o.MinValidRatio = r }
}

// DefaultOptions returns the standard daily-board parameters.
func DefaultOptions() Options {
	return Options{
		Size:          DefaultSize,
		BlockRatio:    DefaultBlockRatio,
		MinValidRatio: DefaultMinValidRatio,
	}
}

func (o Options) validate() error {
	if o.Size <= 0 {
		return fmt.Errorf("board size must be positive, got %d", o.Size)
	}
	if o.BlockRatio < 0 || o.BlockRatio > 1 {
		return fmt.Errorf("block ratio must be in [0,1], got %v", o.BlockRatio)
	}
	if o.MinValidRatio < 0 || o.MinValidRatio > 1 {
		return fmt.Errorf("min valid ratio must be in [0,1], got %v", o.MinValidRatio)
	}
	return nil
}
