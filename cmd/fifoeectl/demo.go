package main

import (
	"encoding/hex"
	"fmt"

	"github.com/c2h5oh/datasize"
	"github.com/fabriziop/FIFOEE/fifo"
	"github.com/fabriziop/FIFOEE/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newDemoCommand formats a fresh region and walks it through a scripted
// push/read/pop/restart-read sequence in one process, the only way to
// observe read_p diverge from pop_p given that cursors are RAM-only.
func newDemoCommand() *cobra.Command {
	var size string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted push/read/pop/restart-read sequence against a fresh region",
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

			records := [][]byte{[]byte("alpha"), []byte("bravo"), []byte("charlie")}
			for _, r := range records {
				if err := inst.Push(r, len(r)); err != nil {
					return fmt.Errorf("fifoeectl: demo push: %w", err)
				}
				logger.Info("pushed", zap.String("record", string(r)))
			}

			dst := make([]byte, 127)
			for i := 0; i < 2; i++ {
				size := len(dst)
				if err := inst.Read(dst, &size); err != nil {
					return fmt.Errorf("fifoeectl: demo read: %w", err)
				}
				logger.Info("read (non-destructive)", zap.String("record", string(dst[:size])))
			}
			logger.Info("cursors before pop", zap.Any("cursors", inst.Cursors()))

			size := len(dst)
			if err := inst.Pop(dst, &size); err != nil {
				return fmt.Errorf("fifoeectl: demo pop: %w", err)
			}
			logger.Info("popped", zap.String("record", string(dst[:size])))
			logger.Info("cursors after pop, before restart-read", zap.Any("cursors", inst.Cursors()))

			inst.RestartRead()
			logger.Info("cursors after restart-read", zap.Any("cursors", inst.Cursors()))

			adapter.Flush()
			fmt.Println(hex.EncodeToString(dst[:size]))
			return nil
		},
	}

	cmd.Flags().StringVar(&size, "size", "64B", "region size for the demo run")
	return cmd
}
