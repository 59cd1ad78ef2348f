package main

import (
	"encoding/json"
	"fmt"

	"github.com/fabriziop/FIFOEE/fifo"
	"github.com/spf13/cobra"
)

type inspectReport struct {
	BotOffset int          `json:"bot_offset"`
	Cursors   fifo.Cursors `json:"cursors"`
	Blocks    []blockView  `json:"blocks"`
}

type blockView struct {
	Offset   int    `json:"offset"`
	Free     bool   `json:"free"`
	DataSize int    `json:"data_size"`
	Role     string `json:"role,omitempty"`
}

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Dump the region's block chain and cursor triple as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, adapter, err := openExisting()
			if err != nil {
				return err
			}
			defer adapter.Close()

			report, err := buildInspectReport(inst)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
	return cmd
}

func buildInspectReport(inst *fifo.Instance) (*inspectReport, error) {
	region, cursors := inst.Snapshot()
	report := &inspectReport{
		BotOffset: int(region[0]),
		Cursors:   cursors,
	}

	ringSize := len(region) - 1
	offset := report.BotOffset
	total := 0
	for {
		header := region[offset+1]
		if header == 0 {
			return nil, fmt.Errorf("fifoeectl: invalid header at ring offset %d", offset)
		}
		free := header&0x80 != 0
		dataSize := int(header & 0x7f)

		role := ""
		switch offset {
		case cursors.PushP:
			role = "push_p"
		case cursors.PopP:
			role = "pop_p"
		}
		if offset == cursors.ReadP && offset != cursors.PopP {
			role += " read_p"
		}

		report.Blocks = append(report.Blocks, blockView{
			Offset:   offset,
			Free:     free,
			DataSize: dataSize,
			Role:     role,
		})

		l := dataSize + 1
		total += l
		next := (offset + l) % ringSize
		if next == report.BotOffset {
			break
		}
		if total >= ringSize {
			return nil, fmt.Errorf("fifoeectl: chain did not close over the ring")
		}
		offset = next
	}
	return report, nil
}
