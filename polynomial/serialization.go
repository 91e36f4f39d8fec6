package polynomial

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/realpoly/realpoly/utils/buffer"
	"github.com/zeebo/blake3"
)

// MaxSerializedLength is the largest number of coefficients ReadFrom accepts.
const MaxSerializedLength = 1 << 28

// BinarySize returns the serialized size of the object in bytes.
func (p *Polynomial) BinarySize() int {
	return 8 + len(p.coeffs)<<3
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// The encoding is the number of coefficients as a uint64 followed by the
// IEEE 754 bit pattern of each coefficient, all little-endian.
//
// Unless w implements the buffer.Writer interface (see realpoly/utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer. Since this requires allocations, it
// is preferable to pass a buffer.Writer directly.
func (p *Polynomial) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(p.coeffs))); err != nil {
			return inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteFloat64Slice(w, p.coeffs); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteFloat64Slice: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. The previous coefficients of p are discarded.
//
// Unless r implements the buffer.Reader interface (see realpoly/utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader. Since this requires allocation, it
// is preferable to pass a buffer.Reader directly.
func (p *Polynomial) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var size uint64

		var inc int64
		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return inc, fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += inc

		if size > MaxSerializedLength {
			return n, fmt.Errorf("cannot ReadFrom: %d coefficients exceeds the maximum of %d", size, MaxSerializedLength)
		}

		coeffs := make([]float64, size)

		if inc, err = buffer.ReadFloat64Slice(r, coeffs); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadFloat64Slice: %w", err)
		}

		p.coeffs = coeffs

		return n + inc, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p *Polynomial) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *Polynomial) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// Digest returns the blake3 hash of the binary encoding of p, with every NaN
// coefficient written as the same bit pattern.
// Two polynomials have the same digest if and only if they are Equal.
func (p *Polynomial) Digest() (d [32]byte, err error) {

	canonical := p
	for i, c := range p.coeffs {
		if math.IsNaN(c) {
			if canonical == p {
				canonical = p.CopyNew()
			}
			canonical.coeffs[i] = math.Float64frombits(canonicalNaN)
		}
	}

	hasher := blake3.New()
	if _, err = canonical.WriteTo(hasher); err != nil {
		return d, fmt.Errorf("cannot Digest: %w", err)
	}
	copy(d[:], hasher.Sum(nil))
	return
}
