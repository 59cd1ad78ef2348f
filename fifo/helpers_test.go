package fifo

import (
	"testing"

	"github.com/fabriziop/FIFOEE/storage"
	"github.com/stretchr/testify/require"
)

// newFormatted builds a freshly formatted Instance over a region of n
// bytes (so ringSize = n-1), backed by an in-memory adapter.
func newFormatted(t *testing.T, n int) (*Instance, []byte) {
	t.Helper()
	region := make([]byte, n)
	inst, err := New(storage.NewMemoryAdapter(region))
	require.NoError(t, err)
	require.NoError(t, inst.Format())
	return inst, region
}

func mustPush(t *testing.T, inst *Instance, data []byte) {
	t.Helper()
	require.NoError(t, inst.Push(data, len(data)))
}

func mustPop(t *testing.T, inst *Instance, capacity int) []byte {
	t.Helper()
	dst := make([]byte, capacity)
	size := capacity
	require.NoError(t, inst.Pop(dst, &size))
	return dst[:size]
}
