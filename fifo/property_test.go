package fifo

import (
	"math/rand"
	"testing"

	"github.com/fabriziop/FIFOEE/storage"
	"github.com/stretchr/testify/require"
)

// TestInvariantsHoldAcrossRandomOperationSequences is the property-test
// oracle from the design notes: after every successful public
// operation, the universal invariants must still hold.
func TestInvariantsHoldAcrossRandomOperationSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 20; trial++ {
		n := 5 + rng.Intn(60)
		inst, _ := newFormatted(t, n)
		require.NoError(t, inst.checkInvariants())

		var pending [][]byte
		for op := 0; op < 300; op++ {
			switch rng.Intn(4) {
			case 0, 1:
				size := 1 + rng.Intn(maxDataSize)
				data := make([]byte, size)
				rng.Read(data)
				if err := inst.Push(data, size); err == nil {
					pending = append(pending, data)
				}
			case 2:
				if len(pending) == 0 {
					continue
				}
				dst := make([]byte, 256)
				size := len(dst)
				if err := inst.Pop(dst, &size); err == nil {
					require.Equal(t, pending[0], dst[:size])
					pending = pending[1:]
				}
			case 3:
				dst := make([]byte, 256)
				size := len(dst)
				_ = inst.Read(dst, &size)
			}
			require.NoError(t, inst.checkInvariants(), "trial %d op %d", trial, op)
		}
	}
}

// TestReadNonDestructivenessAcrossRandomSequences checks that any run
// of Read calls followed by RestartRead leaves pop_p and the region
// bytes untouched, and that subsequent Pop calls see exactly what the
// Read calls saw.
func TestReadNonDestructivenessAcrossRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	inst, region := newFormatted(t, 80)

	var records [][]byte
	for i := 0; i < 10; i++ {
		size := 1 + rng.Intn(10)
		data := make([]byte, size)
		rng.Read(data)
		require.NoError(t, inst.Push(data, size))
		records = append(records, data)
	}

	before := append([]byte(nil), region...)
	beforeCursors := inst.Cursors()

	var seen [][]byte
	for range records {
		dst := make([]byte, 32)
		size := len(dst)
		require.NoError(t, inst.Read(dst, &size))
		seen = append(seen, append([]byte(nil), dst[:size]...))
	}

	require.Equal(t, before, region)
	require.Equal(t, beforeCursors.PopP, inst.Cursors().PopP)

	inst.RestartRead()
	require.Equal(t, beforeCursors, inst.Cursors())

	for i := range records {
		dst := make([]byte, 32)
		size := len(dst)
		require.NoError(t, inst.Pop(dst, &size))
		require.Equal(t, seen[i], dst[:size])
	}
}

func TestNewFromUnformattedAdapterRejectsWrongSize(t *testing.T) {
	_, err := New(storage.NewMemoryAdapter(make([]byte, 3)))
	require.ErrorIs(t, err, ErrInvalidFifoBufferSize)
}
