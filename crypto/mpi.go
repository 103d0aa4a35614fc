package crypto

import (
	"math/big"
	"math/bits"
)

// MPI is a multi-precision integer as encoded on the wire: a 16-bit
// big-endian bit-length prefix followed by ceil(bitLength/8) bytes of
// big-endian magnitude. See RFC 4880 section 3.2.
type MPI struct {
	bytes     []byte
	bitLength uint16
}

// NewMPI returns an MPI holding the minimal-form encoding of the given
// big-endian magnitude.
func NewMPI(b []byte) *MPI {
	for len(b) != 0 && b[0] == 0 {
		b = b[1:]
	}
	var bitLength uint16
	if len(b) != 0 {
		bitLength = uint16((len(b)-1)*8 + bits.Len8(b[0]))
	}
	return &MPI{bytes: b, bitLength: bitLength}
}

// ReadMPI reads one MPI from the region, advancing its cursor past the
// length prefix and the declared number of bytes. The returned MPI
// owns an independent copy of the bytes. A declared bit length of zero
// is structurally legal; whether it is valid depends on the algorithm
// context and is not checked here.
func ReadMPI(region *Region) (*MPI, error) {
	bitLength, err := region.ReadUint(16)
	if err != nil {
		return nil, err
	}
	b, err := region.ReadBytes((int(bitLength) + 7) / 8)
	if err != nil {
		return nil, err
	}
	return &MPI{bytes: b, bitLength: uint16(bitLength)}, nil
}

// Bytes returns the big-endian magnitude as read from the wire.
func (m *MPI) Bytes() []byte {
	return m.bytes
}

// BitLength returns the declared bit length.
func (m *MPI) BitLength() uint16 {
	return m.bitLength
}

// EncodedLength returns the wire length of the MPI including the
// length prefix.
func (m *MPI) EncodedLength() int {
	return 2 + len(m.bytes)
}

// EncodedBytes returns the wire encoding, prefix included. Reading an
// MPI and re-encoding it reproduces the original bytes exactly.
func (m *MPI) EncodedBytes() []byte {
	out := make([]byte, m.EncodedLength())
	out[0] = byte(m.bitLength >> 8)
	out[1] = byte(m.bitLength)
	copy(out[2:], m.bytes)
	return out
}

// Big returns the magnitude as a big integer. Conversion is the
// caller's concern; this codec itself never interprets the value.
func (m *MPI) Big() *big.Int {
	return new(big.Int).SetBytes(m.bytes)
}
