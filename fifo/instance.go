// Package fifo implements a persistent FIFO queue of variable-sized
// binary records over a byte-addressable storage region. The
// on-medium layout, in short: byte 0 of the region is an anchor
// (bot_offset) and the remaining bytes are a ring tiled exactly by a
// singly-linked chain of variable-size blocks, each a one-byte header
// (free/used status + 7-bit data_size) followed by its payload.
package fifo

import "github.com/fabriziop/FIFOEE/storage"

const (
	// minRegionSize is the smallest region New/format will accept: one
	// anchor byte plus a ring of at least 4 bytes (R >= 4).
	minRegionSize = 5
	minRingSize   = minRegionSize - 1

	// maxRingSize is the largest ring a single anchor byte can address:
	// bot_offset is one byte, so it can only name offsets 0..255.
	maxRingSize = 256
)

// Committer is implemented by adapters (or adapter decorators) that
// support the optional deferred-commit durability barrier described in
// the storage adapter contract. Instance calls Commit after every
// state-changing operation when the adapter implements it; adapters
// that write through immediately need not implement it.
type Committer interface {
	Commit(nowMs int64)
}

// Cursors is the volatile, RAM-only triple of ring offsets that
// together describe queue state: push_p (first free block), pop_p
// (oldest used block, or == push_p if empty), and read_p (the
// non-destructive read cursor).
type Cursors struct {
	PushP int
	PopP  int
	ReadP int
}

// Instance binds a FIFO queue to one storage region of N >= 5 bytes.
// It is not safe for concurrent use: the embedded contract is a single
// producer, a single consumer, and a single non-destructive reader,
// none of which may overlap in time.
type Instance struct {
	adapter   storage.Adapter
	committer Committer
	clock     func() int64

	ringSize  int // R = N - 1
	botOffset int // cached copy of the anchor byte

	cursors Cursors
}

// Option configures an Instance constructed by New.
type Option func(*Instance)

// WithClock supplies the monotonic millisecond clock used for the
// optional deferred-commit durability barrier. If the adapter does not
// implement Committer, the clock is never consulted.
func WithClock(nowMs func() int64) Option {
	return func(inst *Instance) {
		inst.clock = nowMs
	}
}

// New binds an Instance to adapter without touching its contents.
// Callers must follow with either Format (fresh region) or Begin
// (recover an existing one) before using Push/Pop/Read.
func New(adapter storage.Adapter, opts ...Option) (*Instance, error) {
	if adapter.Len() < minRegionSize || adapter.Len()-1 > maxRingSize {
		return nil, ErrInvalidFifoBufferSize
	}
	inst := &Instance{
		adapter:  adapter,
		ringSize: adapter.Len() - 1,
		clock:    func() int64 { return 0 },
	}
	if c, ok := adapter.(Committer); ok {
		inst.committer = c
	}
	for _, opt := range opts {
		opt(inst)
	}
	return inst, nil
}

// Snapshot is the observational accessor referenced by the design
// notes: it exposes the raw region bytes and the current cursor triple
// for tests and diagnostic tooling, without coupling the core to any
// I/O facility.
func (inst *Instance) Snapshot() (region []byte, cursors Cursors) {
	region = make([]byte, inst.adapter.Len())
	for i := range region {
		region[i] = inst.adapter.ReadByte(i)
	}
	return region, inst.cursors
}

// Cursors returns the current in-memory cursor triple.
func (inst *Instance) Cursors() Cursors {
	return inst.cursors
}

// readRingByte/writeRingByte access a ring-relative byte. Ring offsets
// are relative to byte 1 of the region (byte 0 is the anchor), so the
// physical region offset is p+1.
func (inst *Instance) readRingByte(p int) byte {
	return inst.adapter.ReadByte(p + 1)
}

func (inst *Instance) writeRingByte(p int, b byte) {
	inst.adapter.WriteByte(p+1, b)
}

// readHeader/writeHeader are readRingByte/writeRingByte under the name
// used wherever the byte in question is specifically a block header,
// as opposed to a payload byte.
func (inst *Instance) readHeader(p int) byte {
	return inst.readRingByte(p)
}

func (inst *Instance) writeHeader(p int, b byte) {
	inst.writeRingByte(p, b)
}

// readBotOffset/writeBotOffset access the anchor byte at region offset 0.
func (inst *Instance) readBotOffset() int {
	return int(inst.adapter.ReadByte(0))
}

func (inst *Instance) writeBotOffset(p int) {
	inst.botOffset = p
	inst.adapter.WriteByte(0, byte(p))
}

// commit issues the optional deferred-commit durability barrier after
// a state-changing operation, subject to the adapter's own rate limit.
func (inst *Instance) commit() {
	if inst.committer == nil {
		return
	}
	inst.committer.Commit(inst.clock())
}
