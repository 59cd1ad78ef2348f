package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func newReadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Non-destructively read the next record under the read cursor",
		Long: "Read advances only the in-memory read cursor. Since cursors are " +
			"RAM-only, a fresh process reconstructs read_p == pop_p via begin, " +
			"so a single invocation behaves as a peek at the oldest record; " +
			"use 'demo' to see read_p diverge from pop_p within one process.",
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, adapter, err := openExisting()
			if err != nil {
				return err
			}
			defer adapter.Close()

			dst := make([]byte, 127)
			size := len(dst)
			if err := inst.Read(dst, &size); err != nil {
				return fmt.Errorf("fifoeectl: read: %w", err)
			}

			fmt.Println(hex.EncodeToString(dst[:size]))
			return nil
		},
	}
	return cmd
}
