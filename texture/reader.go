package texture

import "encoding/binary"

// byteReader provides bounds checked little endian access into an immutable
// buffer. Offsets are absolute; any window falling outside the buffer
// returns ErrOutOfBounds and callers stop parsing whatever substructure
// they were on.
type byteReader struct {
	data []byte
}

func (r byteReader) window(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(r.data) {
		return nil, ErrOutOfBounds
	}
	return r.data[off : off+n], nil
}

func (r byteReader) uint8(off int) (uint8, error) {
	b, err := r.window(off, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r byteReader) uint16(off int) (uint16, error) {
	b, err := r.window(off, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r byteReader) uint32(off int) (uint32, error) {
	b, err := r.window(off, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r byteReader) uint64(off int) (uint64, error) {
	b, err := r.window(off, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}
