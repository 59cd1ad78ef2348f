package main

import "github.com/spf13/cobra"

func newRestartReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restart-read",
		Short: "Rewind the non-destructive read cursor back to pop_p",
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, adapter, err := openExisting()
			if err != nil {
				return err
			}
			defer adapter.Close()

			inst.RestartRead()
			// restartRead is a RAM-only assignment, and begin already set
			// read_p = pop_p for this process, so there is nothing to
			// persist here; the command exists for API symmetry and for
			// scripts that call it defensively between reads.
			return nil
		},
	}
}
