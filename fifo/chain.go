package fifo

// walkChain walks the block chain starting at bot_offset, invoking
// visit(offset, free, dataSize) for every block in ring order. It
// enforces the closure invariant: the cumulative span of all visited
// blocks must equal exactly ringSize, landing back on bot_offset.
//
//   - A zero header anywhere surfaces ErrInvalidBlockHeader.
//   - Overshooting ringSize without landing back on bot_offset surfaces
//     ErrUnclosedBlockList.
//   - Landing back on bot_offset with a cumulative span other than
//     ringSize surfaces ErrWrongRingBufferSize.
func (inst *Instance) walkChain(visit func(offset int, free bool, dataSize int) error) error {
	start := inst.botOffset
	offset := start
	total := 0
	for {
		h := inst.readHeader(offset)
		free, dataSize, err := decodeHeader(h)
		if err != nil {
			return err
		}
		if visit != nil {
			if err := visit(offset, free, dataSize); err != nil {
				return err
			}
		}
		l := dataSize + 1
		total += l
		next := step(offset, l, inst.ringSize)
		if next == start {
			if total != inst.ringSize {
				return ErrWrongRingBufferSize
			}
			return nil
		}
		if total >= inst.ringSize {
			return ErrUnclosedBlockList
		}
		offset = next
	}
}

// reconstructedCursors is the result of replaying status transitions
// along a full chain walk, as described by the begin operation: cursors
// default to bot_offset, a free->used transition relocates pop_p and
// read_p to the block being entered, and a used->free transition
// relocates push_p to the block being entered. freeToUsed/usedToFree
// count how many of each transition were observed; invariant 4 permits
// at most one of each.
type reconstructedCursors struct {
	cursors    Cursors
	freeToUsed int
	usedToFree int
}

func (inst *Instance) reconstructCursors() (reconstructedCursors, error) {
	r := reconstructedCursors{cursors: Cursors{
		PushP: inst.botOffset,
		PopP:  inst.botOffset,
		ReadP: inst.botOffset,
	}}
	prevFree, havePrev := false, false
	err := inst.walkChain(func(offset int, free bool, dataSize int) error {
		if havePrev {
			switch {
			case prevFree && !free:
				r.cursors.PopP = offset
				r.cursors.ReadP = offset
				r.freeToUsed++
			case !prevFree && free:
				r.cursors.PushP = offset
				r.usedToFree++
			}
		}
		prevFree = free
		havePrev = true
		return nil
	})
	if err != nil {
		return reconstructedCursors{}, err
	}
	return r, nil
}

// checkInvariants is the property-test oracle: it re-derives cursors
// from a full chain walk and checks them against the live in-memory
// cursors (for an empty queue: that no block is used and pop_p == read_p
// == push_p rests on a free block), and checks that read_p lies on the
// used run or, once every record has been read, on push_p. The public
// operations never call this on their hot path; it exists for tests.
func (inst *Instance) checkInvariants() error {
	r, err := inst.reconstructCursors()
	if err != nil {
		return err
	}
	if r.freeToUsed > 1 || r.usedToFree > 1 {
		return ErrUnclosedBlockList
	}

	popP, pushP, readP := inst.cursors.PopP, inst.cursors.PushP, inst.cursors.ReadP
	if popP == pushP {
		// An empty queue has no used block; its cursors may rest on any
		// free block, not only on bot_offset.
		pushFree, _, _ := decodeHeader(inst.readHeader(pushP))
		if readP != popP || r.freeToUsed != 0 || r.usedToFree != 0 || !pushFree {
			return ErrUnclosedBlockList
		}
		return nil
	}
	if r.cursors.PopP != popP || r.cursors.PushP != pushP {
		return ErrUnclosedBlockList
	}
	if readP == pushP {
		// Read has already returned every record in the queue.
		return nil
	}
	// The walk starts at bot_offset; when that block is used, the used
	// run wraps past the start of the walk and the walk begins on it.
	botFree, _, _ := decodeHeader(inst.readHeader(inst.botOffset))
	onRun := !botFree
	sawReadP := false
	err = inst.walkChain(func(offset int, free bool, dataSize int) error {
		if offset == pushP {
			onRun = false
		} else if offset == popP {
			onRun = true
		}
		if onRun && offset == readP {
			sawReadP = true
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !sawReadP {
		return ErrUnclosedBlockList
	}
	return nil
}
