package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/peaceable/internal/domain"
)

var (
	hintSeed string
	hintFile string
)

func init() {
	hintCmd := &cobra.Command{
		Use:   "hint",
		Short: "Suggest the next move for a partial placement",
		Long: `Read a placement list from a JSON file and print the engine's hint
against the seed's puzzle board.

The file holds an array of placements:
  [{"row": 0, "col": 1, "type": "queen"}, {"row": 2, "col": 3, "type": "king"}]

Examples:
  peaceable hint --seed 20240101 --placements my-moves.json`,
		RunE: runHint,
	}
	hintCmd.Flags().StringVar(&hintSeed, "seed", "", "seed string (required)")
	hintCmd.Flags().StringVar(&hintFile, "placements", "", "JSON placement file (required)")
	_ = hintCmd.MarkFlagRequired("seed")
	_ = hintCmd.MarkFlagRequired("placements")
	rootCmd.AddCommand(hintCmd)
}

func runHint(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(hintFile)
	if err != nil {
		return err
	}
	var placed []domain.Placement
	if err := json.Unmarshal(data, &placed); err != nil {
		return fmt.Errorf("parse %s: %w", hintFile, err)
	}

	inv, err := svc.InventoryForSeed(hintSeed)
	if err != nil {
		return err
	}
	b, _, _, err := svc.FindSolvableBoard(cmd.Context(), hintSeed, inv, cfg.MaxAttempts, 0)
	if err != nil {
		return err
	}
	for _, p := range placed {
		if !svc.IsValidSquare(b, p.Row, p.Col) {
			fmt.Printf("The %s at row %d, col %d is not on a valid square.\n", p.Type, p.Row, p.Col)
			return nil
		}
	}
	if legal, err := svc.IsLegalPlacement(b, placed); err != nil {
		return err
	} else if !legal {
		res, _ := svc.EvaluateConflicts(b, placed)
		fmt.Printf("Placements conflict (%d pairs); resolve those before asking for a hint.\n", res.PairCount)
		return nil
	}

	h, ok, err := svc.Hint(cmd.Context(), b, inv, placed)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No hint available.")
		return nil
	}
	switch h.Kind {
	case domain.HintRemove:
		fmt.Printf("Remove the %s at row %d, col %d: it makes the position unsolvable.\n", h.Type, h.Square.Row, h.Square.Col)
	default:
		fmt.Printf("Try a %s at row %d, col %d.\n", h.Type, h.Square.Row, h.Square.Col)
	}
	return nil
}
