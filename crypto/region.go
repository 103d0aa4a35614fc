package crypto

import "github.com/pkg/errors"

// Region is a read-only view over packet bytes with a cursor that is
// addressable at bit granularity, since MPI lengths are declared in
// bits rather than bytes. The cursor only ever moves forward and reads
// past the end fail with TruncatedRegionError.
//
// A Region must be owned by a single decrypt operation at a time; it
// is not safe for concurrent use.
type Region struct {
	data []byte
	pos  int // cursor, in bits
}

// NewRegion returns a region reading from the start of data. The
// region aliases data and never mutates it.
func NewRegion(data []byte) *Region {
	return &Region{data: data}
}

// BitPos returns the cursor position in bits.
func (r *Region) BitPos() int {
	return r.pos
}

// BytePos returns the cursor position in whole bytes.
func (r *Region) BytePos() int {
	return r.pos >> 3
}

// Remaining returns the number of unread bits.
func (r *Region) Remaining() int {
	return len(r.data)*8 - r.pos
}

// ReadUint reads up to 64 bits as a big-endian unsigned integer and
// advances the cursor. On failure the cursor is unchanged.
func (r *Region) ReadUint(bits int) (uint64, error) {
	if bits < 0 || bits > 64 {
		return 0, errors.Errorf("gpglib: invalid bit read size %d", bits)
	}
	if r.Remaining() < bits {
		return 0, TruncatedRegionError{NeededBits: bits, RemainingBits: r.Remaining()}
	}
	var v uint64
	for i := 0; i < bits; i++ {
		v = v<<1 | uint64(r.data[r.pos>>3]>>(7-uint(r.pos&7))&1)
		r.pos++
	}
	return v, nil
}

// ReadByte reads a single byte and advances the cursor.
func (r *Region) ReadByte() (byte, error) {
	v, err := r.ReadUint(8)
	return byte(v), err
}

// ReadBytes reads n bytes into an independent buffer and advances the
// cursor. On failure the cursor is unchanged.
func (r *Region) ReadBytes(n int) ([]byte, error) {
	if r.Remaining() < n*8 {
		return nil, TruncatedRegionError{NeededBits: n * 8, RemainingBits: r.Remaining()}
	}
	out := make([]byte, n)
	if r.pos&7 == 0 {
		copy(out, r.data[r.pos>>3:r.pos>>3+n])
		r.pos += n * 8
		return out, nil
	}
	for i := range out {
		v, _ := r.ReadUint(8)
		out[i] = byte(v)
	}
	return out, nil
}

// FindByte scans forward for c on byte boundaries, starting at the
// next boundary at or after the cursor. On a match the cursor is left
// at the start of the matching byte and FindByte reports true; if no
// match exists the cursor is unchanged.
func (r *Region) FindByte(c byte) bool {
	for i := (r.pos + 7) >> 3; i < len(r.data); i++ {
		if r.data[i] == c {
			r.pos = i * 8
			return true
		}
	}
	return false
}

// Drain consumes every remaining bit of the region. It touches the
// full tail of the buffer regardless of the cursor position, so that
// callers can keep their processing shape independent of how much was
// read before.
func (r *Region) Drain() {
	var sink byte
	for i := r.pos >> 3; i < len(r.data); i++ {
		sink ^= r.data[i]
	}
	_ = sink
	r.pos = len(r.data) * 8
}
