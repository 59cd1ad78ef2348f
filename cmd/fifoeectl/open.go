package main

import (
	"fmt"

	"github.com/fabriziop/FIFOEE/fifo"
	"github.com/fabriziop/FIFOEE/storage"
)

// openExisting opens an already-formatted region and reconstructs its
// cursors via Begin, the way a controller would after a power-on reset.
func openExisting() (*fifo.Instance, *storage.FileBackedAdapter, error) {
	info, err := statRegion(regionPath)
	if err != nil {
		return nil, nil, fmt.Errorf("fifoeectl: %w (run 'fifoeectl format' first)", err)
	}

	adapter, err := storage.OpenFileBackedAdapter(regionPath, int(info))
	if err != nil {
		return nil, nil, err
	}

	var inst *fifo.Instance
	if commitPeriod > 0 {
		throttle := storage.NewCommitThrottle(adapter, commitPeriod, logger)
		inst, err = fifo.New(throttle, fifo.WithClock(wallClockMs))
	} else {
		inst, err = fifo.New(adapter)
	}
	if err != nil {
		return nil, nil, err
	}

	if err := inst.Begin(); err != nil {
		return nil, nil, fmt.Errorf("fifoeectl: begin: %w", err)
	}
	return inst, adapter, nil
}
