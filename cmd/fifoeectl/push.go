package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPushCommand() *cobra.Command {
	var text string
	var hexData string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Append a record to the tail of the queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := recordBytes(text, hexData)
			if err != nil {
				return err
			}

			inst, adapter, err := openExisting()
			if err != nil {
				return err
			}
			defer adapter.Close()

			if err := inst.Push(data, len(data)); err != nil {
				return fmt.Errorf("fifoeectl: push: %w", err)
			}
			adapter.Flush()

			logger.Info("pushed record", zap.Int("bytes", len(data)))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "record payload as a UTF-8 string")
	cmd.Flags().StringVar(&hexData, "hex", "", "record payload as hex bytes, e.g. deadbeef")
	return cmd
}

func recordBytes(text, hexData string) ([]byte, error) {
	switch {
	case text != "" && hexData != "":
		return nil, fmt.Errorf("fifoeectl: specify only one of --text or --hex")
	case text != "":
		return []byte(text), nil
	case hexData != "":
		b, err := hex.DecodeString(hexData)
		if err != nil {
			return nil, fmt.Errorf("fifoeectl: invalid --hex: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("fifoeectl: one of --text or --hex is required")
	}
}
