package fifo

// Status is the stable numeric error code returned by every fallible
// public operation. Status implements error so it can be returned,
// compared, and wrapped like any other Go error, but its numeric value
// is part of the package's ABI and must not be renumbered.
type Status int

const (
	// StatusSuccess is returned by operations that complete without error.
	// Most operations return a nil error on success instead of this value;
	// it exists for parity with the embedded ABI's integer-code convention.
	StatusSuccess Status = iota
	// StatusFifoEmpty is returned by pop/read when there is nothing to dequeue.
	StatusFifoEmpty
	// StatusFifoFull is returned by push when the record cannot fit.
	StatusFifoFull
	// StatusInvalidFifoBufferSize is returned by format/New when the
	// region is smaller than the minimum or larger than the maximum
	// supported size.
	StatusInvalidFifoBufferSize
	// StatusInvalidBlockHeader is returned when a header byte is zero.
	StatusInvalidBlockHeader
	// StatusDataBufferSmall is returned by pop/read when the caller's
	// buffer cannot hold the stored record.
	StatusDataBufferSmall
	// StatusPushBlockNotFree is returned when push_p does not reference
	// a free block, signalling corruption or a missing format call.
	StatusPushBlockNotFree
	// StatusUnclosedBlockList is returned when the chain walk exceeds
	// the ring size without returning to bot_offset.
	StatusUnclosedBlockList
	// StatusWrongRingBufferSize is returned when the chain walk closes
	// back on bot_offset without having covered exactly R bytes.
	StatusWrongRingBufferSize
	// StatusInvalidRecordSize is returned by Push when asked to store a
	// record of zero length (a used block can never encode data_size 0,
	// since that header byte is reserved to signal corruption) or of more
	// than 127 bytes (the largest data_size a header can encode).
	StatusInvalidRecordSize
)

var statusText = [...]string{
	StatusSuccess:               "success",
	StatusFifoEmpty:             "fifo empty",
	StatusFifoFull:              "fifo full",
	StatusInvalidFifoBufferSize: "invalid fifo buffer size",
	StatusInvalidBlockHeader:    "invalid block header",
	StatusDataBufferSmall:       "data buffer too small",
	StatusPushBlockNotFree:      "push block not free",
	StatusUnclosedBlockList:     "unclosed block list",
	StatusWrongRingBufferSize:   "wrong ring buffer size",
	StatusInvalidRecordSize:     "invalid record size",
}

// Error implements the error interface.
func (s Status) Error() string {
	if int(s) < 0 || int(s) >= len(statusText) {
		return "fifo: unknown status"
	}
	return "fifo: " + statusText[s]
}

// Code returns the stable numeric ABI value of the status.
func (s Status) Code() int {
	return int(s)
}

// Sentinel errors, one per Status, so callers can use errors.Is against
// a stable identity instead of comparing numeric codes directly.
var (
	ErrFifoEmpty             error = StatusFifoEmpty
	ErrFifoFull              error = StatusFifoFull
	ErrInvalidFifoBufferSize error = StatusInvalidFifoBufferSize
	ErrInvalidBlockHeader    error = StatusInvalidBlockHeader
	ErrDataBufferSmall       error = StatusDataBufferSmall
	ErrPushBlockNotFree      error = StatusPushBlockNotFree
	ErrUnclosedBlockList     error = StatusUnclosedBlockList
	ErrWrongRingBufferSize   error = StatusWrongRingBufferSize
	ErrInvalidRecordSize     error = StatusInvalidRecordSize
)
