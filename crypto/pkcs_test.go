package crypto

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpglib/gpglib/constants"
)

// paddedBlock builds 0x02 || ps non-zero bytes || 0x00 || payload.
func paddedBlock(psLen int, payload []byte) []byte {
	block := []byte{0x02}
	for i := 0; i < psLen; i++ {
		block = append(block, byte(0xA0|i&0x0F|0x01))
	}
	block = append(block, 0x00)
	return append(block, payload...)
}

func regionBytes(t *testing.T, region *Region) []byte {
	t.Helper()
	out, err := region.ReadBytes(region.Remaining() / 8)
	require.NoError(t, err)
	return out
}

func TestUnpadValid(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	padded := paddedBlock(8, payload)

	result, err := unpadSessionKey(rand.Reader, padded)
	require.NoError(t, err)
	assert.Equal(t, payload, regionBytes(t, result))
}

func TestUnpadWrongFirstByte(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	padded := paddedBlock(8, payload)
	padded[0] = 0x01

	result, err := unpadSessionKey(rand.Reader, padded)
	require.NoError(t, err, "malformed padding must not be reported")

	fallback := regionBytes(t, result)
	assert.Len(t, fallback, fallbackPayloadLen)
	assert.NotEqual(t, payload, fallback)
}

func TestUnpadShortPS(t *testing.T) {
	result, err := unpadSessionKey(rand.Reader, paddedBlock(7, []byte{0xEE}))
	require.NoError(t, err)
	assert.Len(t, regionBytes(t, result), fallbackPayloadLen)
}

func TestUnpadNoSeparator(t *testing.T) {
	block := []byte{0x02, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99}
	result, err := unpadSessionKey(rand.Reader, block)
	require.NoError(t, err)
	assert.Len(t, regionBytes(t, result), fallbackPayloadLen)
}

func TestUnpadEmptyInput(t *testing.T) {
	result, err := unpadSessionKey(rand.Reader, nil)
	require.NoError(t, err)
	assert.Len(t, regionBytes(t, result), fallbackPayloadLen)
}

func TestUnpadFallbackVariesWithRandomSource(t *testing.T) {
	padded := paddedBlock(7, []byte{0xEE})

	first, err := unpadSessionKey(bytes.NewReader(bytes.Repeat([]byte{0x11}, 32)), padded)
	require.NoError(t, err)
	second, err := unpadSessionKey(bytes.NewReader(bytes.Repeat([]byte{0x22}, 32)), padded)
	require.NoError(t, err)

	assert.NotEqual(t, regionBytes(t, first), regionBytes(t, second))
}

// Both branches must consume the entire input buffer and yield a
// payload region of the same shape, so an observer cannot tell the
// branches apart from the decryptor's behavior.
func TestUnpadConsumesWholeInputOnBothBranches(t *testing.T) {
	payload := bytes.Repeat([]byte{0x7F}, fallbackPayloadLen)
	good := paddedBlock(8, payload)
	bad := append([]byte{}, good...)
	bad[0] = 0x01

	for _, padded := range [][]byte{good, bad} {
		result, err := unpadSessionKey(rand.Reader, padded)
		require.NoError(t, err)
		out := regionBytes(t, result)
		assert.Len(t, out, fallbackPayloadLen)
		assert.Equal(t, 0, result.Remaining())
	}
}

func TestSessionKeyFromPayload(t *testing.T) {
	key := bytes.Repeat([]byte{0xAB}, 16)
	checksum := checksumKeyMaterial(key)
	payload := append([]byte{3}, key...) // CAST5
	payload = append(payload, byte(checksum>>8), byte(checksum))

	sk, err := sessionKeyFromPayload(NewRegion(payload))
	require.NoError(t, err)
	assert.Equal(t, key, sk.Key)
	assert.Equal(t, constants.CAST5, sk.Algo)
}

func TestSessionKeyFromPayloadChecksumMismatch(t *testing.T) {
	key := bytes.Repeat([]byte{0xAB}, 16)
	checksum := checksumKeyMaterial(key) + 1
	payload := append([]byte{3}, key...)
	payload = append(payload, byte(checksum>>8), byte(checksum))

	_, err := sessionKeyFromPayload(NewRegion(payload))
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestSessionKeyFromPayloadUnknownCipher(t *testing.T) {
	payload := append([]byte{0x6A}, bytes.Repeat([]byte{0x01}, 18)...)
	_, err := sessionKeyFromPayload(NewRegion(payload))
	// Opaque even though the cipher octet itself is the problem: the
	// payload may be the random fallback.
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestSessionKeyFromPayloadTruncated(t *testing.T) {
	payload := []byte{3, 0x01, 0x02} // CAST5 wants 16 key bytes
	_, err := sessionKeyFromPayload(NewRegion(payload))
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestChecksumKeyMaterial(t *testing.T) {
	assert.Equal(t, uint16(0), checksumKeyMaterial(nil))
	assert.Equal(t, uint16(0x01FE), checksumKeyMaterial([]byte{0xFF, 0xFF}))
	// Sum wraps mod 65536.
	big := bytes.Repeat([]byte{0xFF}, 258)
	assert.Equal(t, uint16(258*255%65536), checksumKeyMaterial(big))
}
