package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPlaintext = "the quick brown fox jumps over the lazy dog\n"

// Produced with bzip2 -9 from testPlaintext.
const testBzip2Base64 = "QlpoOTFBWSZTWTFX6ZQAABJRgAAQQAA////wIAAip6aIMJpobRtQUaGgAAA5kPBFCT2FSqxW2wxT+JoscUwfd1O4FNs50LuSKcKEgYq/TKA="

func deflateCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = writer.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

func TestDecompressRawDeflate(t *testing.T) {
	// Method 1 is a raw DEFLATE stream without a zlib header.
	out, err := decompress(1, deflateCompress(t, []byte(testPlaintext)))
	require.NoError(t, err)
	assert.Equal(t, []byte(testPlaintext), out)
}

func TestDecompressZlib(t *testing.T) {
	var buf bytes.Buffer
	writer := zlib.NewWriter(&buf)
	_, err := writer.Write([]byte(testPlaintext))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	out, err := decompress(2, buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []byte(testPlaintext), out)
}

func TestDecompressBzip2(t *testing.T) {
	compressed, err := base64.StdEncoding.DecodeString(testBzip2Base64)
	require.NoError(t, err)

	out, err := decompress(3, compressed)
	require.NoError(t, err)
	assert.Equal(t, []byte(testPlaintext), out)
}

func TestDecompressIdentity(t *testing.T) {
	data := []byte(testPlaintext)
	out, err := decompress(0, data)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	// The returned buffer is independent of the input.
	out[0] ^= 0xFF
	assert.Equal(t, byte('t'), data[0])
}

func TestDecompressUnknownMethod(t *testing.T) {
	_, err := decompress(42, []byte{0x00})
	var unsupported UnsupportedAlgorithmError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, uint8(42), unsupported.Code)
}

func TestDecompressZipHandlesNoZlibHeader(t *testing.T) {
	// A zlib-framed stream passed as method 1 must not decode to the
	// plaintext: raw deflate has no header to skip.
	var buf bytes.Buffer
	writer := zlib.NewWriter(&buf)
	_, err := writer.Write([]byte(testPlaintext))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	out, err := decompress(1, buf.Bytes())
	if err == nil {
		assert.NotEqual(t, []byte(testPlaintext), out)
	}
}
