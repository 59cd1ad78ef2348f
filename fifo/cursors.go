package fifo

// Pop dequeues the oldest record into dst, advancing pop_p (and read_p
// if the non-destructive cursor had not already passed it). size
// starts as the capacity of dst and is set to the record's actual
// length on success. A too-small dst is reported via ErrDataBufferSmall
// without advancing any cursor or mutating any header.
func (inst *Instance) Pop(dst []byte, size *int) error {
	popP := inst.cursors.PopP
	if popP == inst.cursors.PushP {
		return ErrFifoEmpty
	}

	header := inst.readHeader(popP)
	_, dataSize, err := decodeHeader(header)
	if err != nil {
		return err
	}
	if dataSize > *size {
		return ErrDataBufferSmall
	}

	inst.copyOut(dst, popP, dataSize)
	*size = dataSize

	inst.writeHeader(popP, encodeHeader(true, dataSize))

	next := step(popP, dataSize+1, inst.ringSize)
	if inst.cursors.ReadP == popP {
		inst.cursors.ReadP = next
	}
	inst.cursors.PopP = next

	inst.commit()
	return nil
}

// Read copies the record at read_p into dst without mutating the
// region, then advances read_p. It never writes to the medium: reads
// leave no on-medium trace, cost no wear, and RestartRead is a pure RAM
// assignment.
func (inst *Instance) Read(dst []byte, size *int) error {
	readP := inst.cursors.ReadP
	if readP == inst.cursors.PushP {
		return ErrFifoEmpty
	}

	header := inst.readHeader(readP)
	_, dataSize, err := decodeHeader(header)
	if err != nil {
		return err
	}
	if dataSize > *size {
		return ErrDataBufferSmall
	}

	inst.copyOut(dst, readP, dataSize)
	*size = dataSize

	inst.cursors.ReadP = step(readP, dataSize+1, inst.ringSize)
	return nil
}

// RestartRead rewinds the non-destructive read cursor back to pop_p.
// It mutates only RAM: no header, no bot_offset, no medium write.
func (inst *Instance) RestartRead() {
	inst.cursors.ReadP = inst.cursors.PopP
}

// copyOut reads the dataSize payload bytes of the block at ring offset
// p into dst, handling wrap-around the same way Push's payload copy does.
func (inst *Instance) copyOut(dst []byte, p int, dataSize int) {
	payloadStart := step(p, 1, inst.ringSize)
	if p+dataSize+1 <= inst.ringSize {
		for i := 0; i < dataSize; i++ {
			dst[i] = inst.readRingByte(payloadStart + i)
		}
		return
	}
	firstPart := inst.ringSize - p - 1
	for i := 0; i < firstPart; i++ {
		dst[i] = inst.readRingByte(payloadStart + i)
	}
	for i := 0; i < dataSize-firstPart; i++ {
		dst[firstPart+i] = inst.readRingByte(i)
	}
}
