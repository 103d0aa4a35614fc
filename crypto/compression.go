package crypto

import (
	"bytes"
	"compress/bzip2"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"

	"github.com/gpglib/gpglib/constants"
)

// decompress expands a decrypted body according to its compression
// method code. The ZIP method is a raw DEFLATE stream: it must be
// decoded without expecting a zlib header, which is what the flate
// reader does (the "negative window size" of zlib-based codecs).
func decompress(code uint8, compressed []byte) ([]byte, error) {
	method, err := ResolveCompression(code)
	if err != nil {
		return nil, err
	}
	switch method {
	case constants.CompressionNone:
		out := make([]byte, len(compressed))
		copy(out, compressed)
		return out, nil
	case constants.CompressionZIP:
		reader := flate.NewReader(bytes.NewReader(compressed))
		defer reader.Close()
		return io.ReadAll(reader)
	case constants.CompressionZLIB:
		reader, err := zlib.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return io.ReadAll(reader)
	case constants.CompressionBZip2:
		return io.ReadAll(bzip2.NewReader(bytes.NewReader(compressed)))
	}
	return nil, UnsupportedAlgorithmError{Category: categoryCompression, Code: code}
}
