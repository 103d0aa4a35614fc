package crypto

import (
	"io"

	"github.com/pkg/errors"
)

// Length of the random fallback payload: one cipher octet, a 16-byte
// key and the two checksum bytes, the shape of a real CAST5 or AES-128
// session key block.
const fallbackPayloadLen = 19

// unpadSessionKey removes the PKCS#1 v1.5 style padding from the raw
// output of an asymmetric decryption, per RFC 4880 section 13.1:
//
//	0x02 || PS (>= 8 non-zero bytes) || 0x00 || payload
//
// The leading 0x00 of the EME block never survives the conversion from
// integer, so the first byte inspected is the 0x02 marker.
//
// Malformed padding is NOT reported. The payload defaults to random
// bytes drawn before any inspection, and is only replaced when every
// check passes; both branches consume the whole input buffer. An
// attacker submitting crafted ciphertexts therefore observes the same
// control flow, timing shape and result size whether or not the
// padding was valid (Bleichenbacher oracle defense). Do not add an
// early return on the failure path.
//
// The only error condition is the random source itself failing, which
// carries no information about the padding.
func unpadSessionKey(random io.Reader, padded []byte) (*Region, error) {
	fallback := make([]byte, fallbackPayloadLen)
	if _, err := io.ReadFull(random, fallback); err != nil {
		return nil, errors.Wrap(err, "gpglib: reading random fallback payload")
	}
	payload := fallback

	region := NewRegion(padded)
	if first, err := region.ReadByte(); err == nil && first == 0x02 {
		before := region.BytePos()
		found := region.FindByte(0x00)
		after := region.BytePos()

		// The ps section needs to be at least 8 bytes.
		if found && after-before >= 8 {
			if _, err := region.ReadByte(); err == nil { // separator
				if rest, err := region.ReadBytes(region.Remaining() / 8); err == nil {
					payload = rest
				}
			}
		}
	}

	// Consume whatever is left no matter which branch ran.
	region.Drain()

	return NewRegion(payload), nil
}

// checksumKeyMaterial is the sum of the session key bytes mod 65536,
// per RFC 4880 section 5.1.
func checksumKeyMaterial(key []byte) uint16 {
	var checksum uint16
	for _, v := range key {
		checksum += uint16(v)
	}
	return checksum
}

// sessionKeyFromPayload interprets an unpadded payload as a one-octet
// cipher code, the session key sized by that cipher's registered key
// length, and a two-octet checksum.
//
// Every failure here returns the opaque ErrDecryptionFailed: the
// payload may be the random fallback from unpadSessionKey, and a
// distinguishable "bad cipher octet" or "bad checksum" error would
// reintroduce the oracle the fallback exists to close.
func sessionKeyFromPayload(payload *Region) (*SessionKey, error) {
	cipherCode, err := payload.ReadByte()
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	cipher, err := ResolveCipher(cipherCode)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	size, err := CipherKeySize(cipher)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	key, err := payload.ReadBytes(size)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	expected, err := payload.ReadUint(16)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	payload.Drain()
	if checksumKeyMaterial(key) != uint16(expected) {
		return nil, ErrDecryptionFailed
	}
	return &SessionKey{Key: key, Algo: getAlgo(cipher)}, nil
}
