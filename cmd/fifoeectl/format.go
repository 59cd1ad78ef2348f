package main

import (
	"fmt"

	"github.com/c2h5oh/datasize"
	"github.com/fabriziop/FIFOEE/fifo"
	"github.com/fabriziop/FIFOEE/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFormatCommand() *cobra.Command {
	var size string

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Initialize a fresh region as one long chain of free blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			var v datasize.ByteSize
			if err := v.UnmarshalText([]byte(size)); err != nil {
				return fmt.Errorf("fifoeectl: invalid --size %q: %w", size, err)
			}

			adapter, err := storage.OpenFileBackedAdapter(regionPath, int(v.Bytes()))
			if err != nil {
				return err
			}
			defer adapter.Close()

			inst, err := fifo.New(adapter)
			if err != nil {
				return err
			}
			if err := inst.Format(); err != nil {
				return err
			}
			adapter.Flush()

			logger.Info("region formatted",
				zap.String("path", regionPath),
				zap.Uint64("bytes", v.Bytes()))
			return nil
		},
	}

	cmd.Flags().StringVar(&size, "size", "64B", "region size, e.g. 64B, 1KB (min 5B, max 257B)")
	return cmd
}
