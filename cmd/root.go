package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/voltworks/voltcalc/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "voltcalc",
	Short: "Electrician's pocket calculators",
	Long:  "Resolves Ohm's law quantities from any two knowns, estimates single- and three-phase power, sizes voltage drop over copper runs, and prints wiring reference tables.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
