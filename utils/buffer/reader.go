package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadUint64 reads a uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	var nint int
	if nint, err = io.ReadFull(r, bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadFloat64Slice reads len(c) IEEE 754 bit patterns from r into c, peeking
// at most the buffered size of r at a time.
func ReadFloat64Slice(r Reader, c []float64) (n int64, err error) {

	for start := 0; start < len(c); {

		peek := (len(c) - start) << 3
		if s := r.Size() &^ 7; s < peek {
			peek = s
		}

		var slice []byte
		// A short peek is only an error if not even one word is buffered.
		if slice, err = r.Peek(peek); len(slice) < 8 {
			if err == nil || err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return
		}

		buffered := len(slice) >> 3

		for i, j := start, 0; i < start+buffered; i, j = i+1, j+8 {
			c[i] = math.Float64frombits(binary.LittleEndian.Uint64(slice[j:]))
		}

		var inc int
		if inc, err = r.Discard(buffered << 3); err != nil {
			return n + int64(inc), err
		}

		n += int64(inc)
		start += buffered
	}

	return n, nil
}
