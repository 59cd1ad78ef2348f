package fifo

// Format initializes a fresh region as one long chain of maximum-size
// (128-byte) free blocks, with a final block covering whatever residue
// remains. It requires ringSize >= 4 (region size >= 5).
func (inst *Instance) Format() error {
	if inst.ringSize < minRingSize {
		return ErrInvalidFifoBufferSize
	}
	inst.writeBotOffset(0)
	inst.cursors = Cursors{PushP: 0, PopP: 0, ReadP: 0}

	remaining := inst.ringSize
	offset := 0
	for remaining > 128 {
		inst.writeHeader(offset, encodeHeader(true, maxDataSize))
		offset = step(offset, 128, inst.ringSize)
		remaining -= 128
	}
	inst.writeHeader(offset, encodeHeader(true, remaining-1))

	inst.commit()
	return nil
}

// Begin reconstructs the volatile cursors by reading bot_offset and
// walking the chain from there, following the status-transition rules
// described in the design notes. It must be called once after power-on
// before any other operation, and is idempotent on a quiescent region.
func (inst *Instance) Begin() error {
	inst.botOffset = inst.readBotOffset()
	if inst.botOffset < 0 || inst.botOffset >= inst.ringSize {
		return ErrWrongRingBufferSize
	}

	r, err := inst.reconstructCursors()
	if err != nil {
		return err
	}
	if r.freeToUsed > 1 || r.usedToFree > 1 {
		// More than one used run, or more than one free run: invariant 4
		// is violated. Surface it the way the design notes call out.
		return ErrUnclosedBlockList
	}
	inst.cursors = r.cursors
	return nil
}
