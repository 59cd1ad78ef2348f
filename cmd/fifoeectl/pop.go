package main

import (
	"encoding/hex"
	"fmt"

	"github.com/fabriziop/FIFOEE/fifo"
	"github.com/spf13/cobra"
)

func newPopCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pop",
		Short: "Dequeue the oldest record, freeing its block",
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, adapter, err := openExisting()
			if err != nil {
				return err
			}
			defer adapter.Close()

			data, err := doPop(inst)
			if err != nil {
				return err
			}
			adapter.Flush()

			fmt.Println(hex.EncodeToString(data))
			return nil
		},
	}
	return cmd
}

func doPop(inst *fifo.Instance) ([]byte, error) {
	dst := make([]byte, 127)
	size := len(dst)
	if err := inst.Pop(dst, &size); err != nil {
		return nil, fmt.Errorf("fifoeectl: pop: %w", err)
	}
	return dst[:size], nil
}
