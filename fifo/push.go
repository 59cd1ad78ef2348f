package fifo

// Push appends a new record holding data[:n] to the tail of the queue.
// It fails with ErrInvalidRecordSize if n is not in [1, maxDataSize]
// (a used block can never encode data_size 0, the reserved corruption
// byte), with ErrFifoFull when there is not enough free space without
// crossing the queue head, and with ErrPushBlockNotFree if push_p does
// not reference a free block (missing Format, or corruption).
func (inst *Instance) Push(data []byte, n int) error {
	if n < 1 || n > maxDataSize {
		return ErrInvalidRecordSize
	}

	pushP := inst.cursors.PushP

	free, _, err := decodeHeader(inst.readHeader(pushP))
	if err != nil {
		return err
	}
	if !free {
		return ErrPushBlockNotFree
	}

	// Coalesce consecutive free blocks "on paper" until there is room
	// for the header plus n payload bytes.
	freeRunLen := span(inst.readHeader(pushP))
	for n+1 > freeRunLen {
		q := step(pushP, freeRunLen, inst.ringSize)
		if q == pushP {
			return ErrFifoFull
		}
		qFree, _, err := decodeHeader(inst.readHeader(q))
		if err != nil {
			return err
		}
		if !qFree {
			return ErrFifoFull
		}
		freeRunLen += span(inst.readHeader(q))
	}

	// Decide where the residual free separator goes, validating it
	// before any byte is mutated so a failed push leaves the region
	// untouched.
	var residualOffset, residualDataSize int
	splitResidual := n+1 < freeRunLen
	if splitResidual {
		residualOffset = step(pushP, n+1, inst.ringSize)
		residualDataSize = freeRunLen - n - 2
	} else {
		residualOffset = step(pushP, freeRunLen, inst.ringSize)
		if residualOffset == pushP {
			return ErrFifoFull
		}
		rFree, _, err := decodeHeader(inst.readHeader(residualOffset))
		if err != nil {
			return err
		}
		if !rFree {
			return ErrFifoFull
		}
	}

	// Copy the payload, handling wrap-around, before writing any header
	// so a crash mid-copy leaves no used header claiming a partly
	// written record.
	payloadStart := step(pushP, 1, inst.ringSize)
	wrapped := pushP+n+1 > inst.ringSize
	var landedAt int
	if !wrapped {
		for i := 0; i < n; i++ {
			inst.writeRingByte(payloadStart+i, data[i])
		}
		landedAt = pushP + n + 1
	} else {
		firstPart := inst.ringSize - pushP - 1
		for i := 0; i < firstPart; i++ {
			inst.writeRingByte(payloadStart+i, data[i])
		}
		for i := 0; i < n-firstPart; i++ {
			inst.writeRingByte(i, data[firstPart+i])
		}
		landedAt = n - firstPart
	}

	// The residual free block is written before the used header so the
	// region is self-consistent even if a crash lands between the two
	// writes: re-walking the chain from the (unchanged) bot_offset would
	// still find the old used/free boundary intact until the header
	// flips below.
	if splitResidual {
		inst.writeHeader(residualOffset, encodeHeader(true, residualDataSize))
	}

	inst.writeHeader(pushP, encodeHeader(false, n))

	newPushP := landedAt
	if newPushP == inst.ringSize {
		newPushP = 0
	}
	inst.cursors.PushP = newPushP

	if wrapped {
		inst.writeBotOffset(landedAt)
	} else if landedAt == inst.ringSize {
		inst.writeBotOffset(0)
	}

	inst.commit()
	return nil
}
