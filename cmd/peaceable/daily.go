package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dailyDate    string
	dailyReveal  bool
	dailyRetries int
)

func init() {
	dailyCmd := &cobra.Command{
		Use:   "daily",
		Short: "Print the day's puzzle",
		Long: `Generate the deterministic puzzle for a calendar day (UTC).

Examples:
  peaceable daily
  peaceable daily --date 2024-01-01 --reveal`,
		RunE: runDaily,
	}
	dailyCmd.Flags().StringVar(&dailyDate, "date", "", "UTC date as YYYY-MM-DD (default: today)")
	dailyCmd.Flags().BoolVar(&dailyReveal, "reveal", false, "print a solution when one was found")
	dailyCmd.Flags().IntVar(&dailyRetries, "max-attempts", 0, "board search attempts (default: config)")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	day := time.Now().UTC()
	if dailyDate != "" {
		day, err = time.Parse("2006-01-02", dailyDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", dailyDate, err)
		}
	}
	attempts := cfg.MaxAttempts
	if dailyRetries > 0 {
		attempts = dailyRetries
	}
	p, st, err := svc.DailyPuzzle(cmd.Context(), day, attempts)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"seed":  p.Seed,
		"nodes": st.Nodes,
		"dur":   st.Duration.Round(time.Millisecond),
	}).Info("daily puzzle ready")

	fmt.Printf("Seed %s\n\n%s\nInventory: %s\n", p.Seed, formatBoard(p.Board, nil), formatInventory(p.Inventory))
	if p.Solution == nil {
		fmt.Println("No solution found within the attempt budget; the board may not be completable.")
		return nil
	}
	if dailyReveal {
		fmt.Printf("\nSolution:\n%s", formatBoard(p.Board, p.Solution))
	}
	return nil
}
