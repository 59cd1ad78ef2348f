package fifo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopEmptyFifo(t *testing.T) {
	inst, _ := newFormatted(t, 10)
	dst := make([]byte, 4)
	size := len(dst)
	assert.ErrorIs(t, inst.Pop(dst, &size), ErrFifoEmpty)
}

func TestReadEmptyFifo(t *testing.T) {
	inst, _ := newFormatted(t, 10)
	dst := make([]byte, 4)
	size := len(dst)
	assert.ErrorIs(t, inst.Read(dst, &size), ErrFifoEmpty)
}

func TestPopDataBufferSmallDoesNotMutate(t *testing.T) {
	inst, region := newFormatted(t, 10)
	mustPush(t, inst, []byte{1, 2, 3})
	before := append([]byte(nil), region...)
	beforeCursors := inst.Cursors()

	dst := make([]byte, 2)
	size := len(dst)
	err := inst.Pop(dst, &size)
	assert.ErrorIs(t, err, ErrDataBufferSmall)
	assert.Equal(t, before, region)
	assert.Equal(t, beforeCursors, inst.Cursors())
}

func TestReadDataBufferSmallDoesNotMutate(t *testing.T) {
	inst, region := newFormatted(t, 10)
	mustPush(t, inst, []byte{1, 2, 3})
	before := append([]byte(nil), region...)
	beforeCursors := inst.Cursors()

	dst := make([]byte, 2)
	size := len(dst)
	err := inst.Read(dst, &size)
	assert.ErrorIs(t, err, ErrDataBufferSmall)
	assert.Equal(t, before, region)
	assert.Equal(t, beforeCursors, inst.Cursors())
}

func TestReadIsNonDestructiveAndRestartReadRewinds(t *testing.T) {
	inst, region := newFormatted(t, 10)
	mustPush(t, inst, []byte{1, 2})
	mustPush(t, inst, []byte{3})

	before := append([]byte(nil), region...)
	beforePopP := inst.Cursors().PopP

	dst := make([]byte, 4)
	size := len(dst)
	require.NoError(t, inst.Read(dst, &size))
	assert.Equal(t, []byte{1, 2}, dst[:size])

	size = len(dst)
	require.NoError(t, inst.Read(dst, &size))
	assert.Equal(t, []byte{3}, dst[:size])

	assert.Equal(t, before, region, "read must not mutate the region")
	assert.Equal(t, beforePopP, inst.Cursors().PopP, "read must not move pop_p")

	inst.RestartRead()
	assert.Equal(t, inst.Cursors().PopP, inst.Cursors().ReadP)

	size = len(dst)
	require.NoError(t, inst.Pop(dst, &size))
	assert.Equal(t, []byte{1, 2}, dst[:size])
	size = len(dst)
	require.NoError(t, inst.Pop(dst, &size))
	assert.Equal(t, []byte{3}, dst[:size])
}

func TestPopAdvancesReadPWhenConsumerOvertakes(t *testing.T) {
	inst, _ := newFormatted(t, 10)
	mustPush(t, inst, []byte{1, 2})
	mustPush(t, inst, []byte{3})

	require.Equal(t, inst.Cursors().PopP, inst.Cursors().ReadP)
	_ = mustPop(t, inst, 16)
	// read_p must have followed pop_p forward since it had not been
	// advanced past it by an explicit Read.
	assert.Equal(t, inst.Cursors().PopP, inst.Cursors().ReadP)
}
