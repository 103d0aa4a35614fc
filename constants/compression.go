package constants

// Compression methods, as registered in RFC 4880 section 9.3.
const (
	// The body is not compressed.
	CompressionNone int8 = 0
	// ZIP compression, a raw DEFLATE stream without a zlib header.
	CompressionZIP int8 = 1
	// ZLIB compression, a DEFLATE stream with a zlib header.
	CompressionZLIB int8 = 2
	// BZip2 compression.
	CompressionBZip2 int8 = 3
)
