package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteReader(t *testing.T) {
	r := byteReader{[]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}}

	b, err := r.uint8(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), b)

	v16, err := r.uint16(1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0302), v16)

	v32, err := r.uint32(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x05040302), v32)

	v64, err := r.uint64(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0908070605040302), v64)
}

func TestByteReaderBounds(t *testing.T) {
	r := byteReader{make([]byte, 8)}

	tables := []struct {
		name string
		off  int
		n    int
		ok   bool
	}{
		{"whole buffer", 0, 8, true},
		{"empty window at end", 8, 0, true},
		{"window past end", 1, 8, false},
		{"offset past end", 9, 0, false},
		{"negative offset", -1, 2, false},
		{"negative length", 2, -1, false},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			_, err := r.window(table.off, table.n)
			if table.ok {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, ErrOutOfBounds, err)
			}
		})
	}
}
