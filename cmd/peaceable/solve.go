package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	solveSeed    string
	solveRetries int
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Run the full pipeline for a seed",
		Long: `Roll the seed's inventory, search for a solvable board variant, and
print the solved position with search statistics.

Examples:
  peaceable solve --seed 20240101
  peaceable solve --seed 20240101 --max-attempts 25`,
		RunE: runSolve,
	}
	solveCmd.Flags().StringVar(&solveSeed, "seed", "", "seed string (required)")
	solveCmd.Flags().IntVar(&solveRetries, "max-attempts", 0, "board search attempts (default: config)")
	_ = solveCmd.MarkFlagRequired("seed")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	inv, err := svc.InventoryForSeed(solveSeed)
	if err != nil {
		return err
	}
	attempts := cfg.MaxAttempts
	if solveRetries > 0 {
		attempts = solveRetries
	}
	b, solution, st, err := svc.FindSolvableBoard(cmd.Context(), solveSeed, inv, attempts, 0)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"seed":  solveSeed,
		"nodes": st.Nodes,
		"dur":   st.Duration.Round(time.Millisecond),
	}).Info("search finished")

	fmt.Printf("Inventory: %s\n\n", formatInventory(inv))
	if solution == nil {
		fmt.Printf("No solvable variant within %d attempts. Base board:\n\n%s", attempts, formatBoard(b, nil))
		return nil
	}
	fmt.Print(formatBoard(b, solution))
	return nil
}
