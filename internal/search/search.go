// Package search regenerates seed-variant boards until the solver proves one
// of them solvable for the full inventory.
package search

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"svw.info/peaceable/internal/board"
	"svw.info/peaceable/internal/domain"
	"svw.info/peaceable/internal/ports"
)

// BoardSearch implements ports.Searcher.
type BoardSearch struct {
	solver ports.Solver
	opts   []board.Option
	log    logrus.FieldLogger
}

// New wires a board search over the given solver. opts are the base board
// generation parameters for every attempt.
func New(s ports.Solver, log logrus.FieldLogger, opts ...board.Option) *BoardSearch {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}
	return &BoardSearch{solver: s, opts: opts, log: log}
}

// FindSolvable tries attempt 0 on the base seed and attempts 1..maxAttempts-1
// on "seed-attempt" derived seeds, returning the first board the solver can
// fill with the whole inventory. When every attempt fails it regenerates the
// base-seed board once more and returns it with a nil solution; callers must
// treat that pairing as "a board exists but may not be completable".
// blockRatio > 0 overrides the configured board blocking probability.
// Cancelling ctx abandons remaining attempts and falls through to the
// base-seed board.
func (s *BoardSearch) FindSolvable(ctx context.Context, seed string, inv domain.Inventory, maxAttempts int, blockRatio float64) (*domain.Board, []domain.Placement, ports.Stats, error) {
	opts := s.opts
	if blockRatio > 0 {
		opts = append(append([]board.Option(nil), s.opts...), board.WithBlockRatio(blockRatio))
	}
	var total ports.Stats
	for attempt := 0; attempt < maxAttempts && ctx.Err() == nil; attempt++ {
		trySeed := seed
		if attempt > 0 {
			trySeed = fmt.Sprintf("%s-%d", seed, attempt)
		}
		b, err := board.Generate(trySeed, opts...)
		if err != nil {
			return nil, nil, total, err
		}
		res, st := s.solver.Solve(ctx, b, inv, nil)
		total.Add(st)
		if res.Status == domain.StatusSolved {
			return b, res.Placements, total, nil
		}
		s.log.WithFields(logrus.Fields{
			"seed":    trySeed,
			"attempt": attempt,
			"status":  res.Status.String(),
			"nodes":   st.Nodes,
		}).Debug("board attempt not solvable")
	}
	// Exhausted: hand back a fresh base-seed board with no solution.
	b, err := board.Generate(seed, opts...)
	if err != nil {
		return nil, nil, total, err
	}
	s.log.WithFields(logrus.Fields{
		"seed":     seed,
		"attempts": maxAttempts,
		"nodes":    total.Nodes,
	}).Warn("no solvable board found within attempt budget")
	return b, nil, total, nil
}
