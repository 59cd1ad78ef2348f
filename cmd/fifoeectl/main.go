package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"

	regionPath   string
	commitPeriod int64
	logger       *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "fifoeectl",
		Short:   "Drive a persistent FIFOEE queue backed by a file",
		Long:    "fifoeectl exercises the fifo package's format/begin/push/pop/read/restart-read operations against a file-backed region, the way an EEPROM-hosted controller would.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = zap.NewDevelopment()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&regionPath, "region", "fifoee.bin", "path to the file-backed region")
	rootCmd.PersistentFlags().Int64Var(&commitPeriod, "commit-period-ms", 0, "deferred-commit rate limit in ms (0 disables periodic flush)")

	rootCmd.AddCommand(
		newFormatCommand(),
		newPushCommand(),
		newPopCommand(),
		newReadCommand(),
		newRestartReadCommand(),
		newInspectCommand(),
		newDemoCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
