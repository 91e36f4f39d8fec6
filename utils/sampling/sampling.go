// Package sampling implements the sampling of bytes and integers from a PRNG.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
)

// ReadUint64 reads a uniform uint64 from prng.
func ReadUint64(prng PRNG) (v uint64, err error) {
	var b [8]byte
	if _, err = io.ReadFull(prng, b[:]); err != nil {
		return 0, fmt.Errorf("cannot ReadUint64: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// ReadUint64N reads a uniform uint64 in [0, n) from prng by rejection
// sampling on the smallest power-of-two mask covering n.
func ReadUint64N(prng PRNG, n uint64) (v uint64, err error) {

	if n == 0 {
		return 0, fmt.Errorf("cannot ReadUint64N: n is zero")
	}

	mask := uint64(1)<<uint(bits.Len64(n-1)) - 1

	for {
		if v, err = ReadUint64(prng); err != nil {
			return
		}

		if v &= mask; v < n {
			return v, nil
		}
	}
}
