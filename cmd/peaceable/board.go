package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	boardSeed string
	boardSize int
)

func init() {
	boardCmd := &cobra.Command{
		Use:   "board",
		Short: "Generate and print one board",
		Long: `Paint the deterministic board for a seed without solving it.

Examples:
  peaceable board --seed 20240101
  peaceable board --seed test-1 --size 10`,
		RunE: runBoard,
	}
	boardCmd.Flags().StringVar(&boardSeed, "seed", "", "seed string (required)")
	boardCmd.Flags().IntVar(&boardSize, "size", 0, "board edge length (default: config)")
	_ = boardCmd.MarkFlagRequired("seed")
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	b, err := svc.GenerateBoard(boardSeed, boardSize)
	if err != nil {
		return err
	}
	fmt.Printf("Seed %s (%dx%d, %d valid cells)\n\n%s", b.Seed, b.Width, b.Height, b.ValidCount(), formatBoard(b, nil))
	return nil
}
