package main

import (
	"fmt"
	"os"

	"github.com/EmpoweredVote/senkyo-guide/internal/config"
	"github.com/EmpoweredVote/senkyo-guide/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg      config.Config
	logLevel string
	log      *zap.Logger
)

func main() {
	cfg = config.Load()

	rootCmd := &cobra.Command{
		Use:   "senkyo-data",
		Short: "Generate and publish senkyo guide data",
		Long: `senkyo-data turns the election document tree into the generated
JSON the guide serves, and optionally mirrors it into Postgres.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logLevel)
			if err != nil {
				return err
			}
			log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(showCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
