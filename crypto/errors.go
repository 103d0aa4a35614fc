package crypto

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDecryptionFailed is the single opaque failure reported for any
// problem downstream of session key unpadding: a symmetric decryption
// that produced garbage, a session key checksum mismatch, a corrupted
// compressed stream. The stage that failed is deliberately not
// recoverable from the error, so that malformed padding cannot be told
// apart from any other wrong-key condition.
var ErrDecryptionFailed = errors.New("gpglib: message could not be decrypted")

// TruncatedRegionError reports a read that declared more bits than the
// region has left. It is always fatal to the current parse.
type TruncatedRegionError struct {
	NeededBits    int
	RemainingBits int
}

func (e TruncatedRegionError) Error() string {
	return fmt.Sprintf("gpglib: truncated region: need %d bits, %d remaining", e.NeededBits, e.RemainingBits)
}

// UnsupportedAlgorithmError reports a numeric wire code with no entry
// in the registry for its category.
type UnsupportedAlgorithmError struct {
	Category string
	Code     uint8
}

func (e UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("gpglib: unsupported %s: %d", e.Category, e.Code)
}

// UnknownMpiAlgorithmError reports a public key algorithm that has no
// MPI layout for the requested context, e.g. DSA for encryption
// ciphertext (DSA is sign-only).
type UnknownMpiAlgorithmError struct {
	Context   string
	Algorithm PublicKeyAlgorithm
}

func (e UnknownMpiAlgorithmError) Error() string {
	return fmt.Sprintf("gpglib: no %s mpi layout for algorithm %s", e.Context, e.Algorithm)
}
