package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteUint64 writes a uint64 c into w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteFloat64Slice writes the IEEE 754 bit patterns of a slice of float64
// into w, filling the available buffer of w and flushing whenever it is full.
func WriteFloat64Slice(w Writer, c []float64) (n int64, err error) {

	for start := 0; start < len(c); {

		// Remaining available space in the internal buffer
		available := w.Available() >> 3

		if available == 0 {
			if err = w.Flush(); err != nil {
				return
			}

			if available = w.Available() >> 3; available == 0 {
				return n, fmt.Errorf("cannot WriteFloat64Slice: available buffer/8 is zero even after flush")
			}
		}

		end := start + available
		if end > len(c) {
			end = len(c)
		}

		buf := w.AvailableBuffer()[:(end-start)<<3]
		for i, j := start, 0; i < end; i, j = i+1, j+8 {
			binary.LittleEndian.PutUint64(buf[j:], math.Float64bits(c[i]))
		}

		var inc int
		if inc, err = w.Write(buf); err != nil {
			return n + int64(inc), err
		}

		n += int64(inc)
		start = end
	}

	return
}
