package crypto

import (
	"io"

	"github.com/gpglib/gpglib/trace"
)

// DecryptionHandleBuilder allows to configure a decryption handle
// to decrypt a pgp message.
type DecryptionHandleBuilder struct {
	handle *decryptionHandle
}

func newDecryptionHandleBuilder() *DecryptionHandleBuilder {
	return &DecryptionHandleBuilder{
		handle: defaultDecryptionHandle(),
	}
}

// DecryptionKey sets the asymmetric decrypter holding the private key
// the message's session key was encrypted towards.
func (dhb *DecryptionHandleBuilder) DecryptionKey(decrypter AsymmetricDecrypter) *DecryptionHandleBuilder {
	dhb.handle.Decrypter = decrypter
	return dhb
}

// SymmetricDecrypter overrides the symmetric primitive used for the
// message body. If not set, the stock CFB decrypter is used.
func (dhb *DecryptionHandleBuilder) SymmetricDecrypter(symmetric SymmetricDecrypter) *DecryptionHandleBuilder {
	dhb.handle.Symmetric = symmetric
	return dhb
}

// Trace sets a recorder that receives the hierarchy of parsed items
// for diagnostics. The recorder is never consulted for control flow.
func (dhb *DecryptionHandleBuilder) Trace(recorder *trace.Recorder) *DecryptionHandleBuilder {
	dhb.handle.Recorder = recorder
	return dhb
}

// Random overrides the random source used for the unpadding fallback
// payload. Mainly used for testing; if not set, crypto/rand is used.
func (dhb *DecryptionHandleBuilder) Random(random io.Reader) *DecryptionHandleBuilder {
	dhb.handle.random = random
	return dhb
}

// New creates the configured decryption handle. The handle can be
// reused across messages; a single message decryption is synchronous
// and single-threaded, but independent calls may run in parallel.
func (dhb *DecryptionHandleBuilder) New() (PGPDecryption, error) {
	if err := dhb.handle.validate(); err != nil {
		return nil, err
	}
	return dhb.handle, nil
}
