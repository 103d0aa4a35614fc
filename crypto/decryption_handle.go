package crypto

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"

	"github.com/gpglib/gpglib/trace"
)

// PGPDecryption is an interface for decrypting pgp messages with
// gpglib. Use the DecryptionHandleBuilder to create a handle that
// implements it.
type PGPDecryption interface {
	// DecryptSessionKey decrypts a public-key encrypted session key
	// packet body with the configured decryption key.
	DecryptSessionKey(keyPacket []byte) (*SessionKey, error)
	// DecryptData decrypts an encrypted data packet body with the
	// given session key and decompresses the result.
	DecryptData(sk *SessionKey, dataPacket []byte) ([]byte, error)
	// Decrypt runs the full pipeline: session key recovery, body
	// decryption and decompression.
	Decrypt(keyPacket, dataPacket []byte) ([]byte, error)
	// ClearPrivateParams clears private key material contained in the
	// handle from memory.
	ClearPrivateParams()
}

// decryptionHandle collects the configuration parameters to decrypt a
// pgp message.
type decryptionHandle struct {
	// Decrypter provides the asymmetric primitive and private key for
	// recovering the session key.
	Decrypter AsymmetricDecrypter
	// Symmetric provides the symmetric primitive for the message
	// body. If nil, the stock CFB decrypter is used.
	Symmetric SymmetricDecrypter
	// Recorder optionally receives the parse trace for diagnostics.
	Recorder *trace.Recorder
	// random is the source for the unpadding fallback payload.
	random io.Reader
}

// --- Default decryption handle to build from

func defaultDecryptionHandle() *decryptionHandle {
	return &decryptionHandle{
		Symmetric: NewCFBDecrypter(),
		random:    rand.Reader,
	}
}

// --- Implements PGPDecryption interface

func (dh *decryptionHandle) DecryptSessionKey(keyPacket []byte) (sk *SessionKey, err error) {
	if err = dh.validate(); err != nil {
		return nil, err
	}
	return dh.decryptSessionKey(keyPacket)
}

func (dh *decryptionHandle) DecryptData(sk *SessionKey, dataPacket []byte) ([]byte, error) {
	return dh.decryptData(sk, dataPacket)
}

func (dh *decryptionHandle) Decrypt(keyPacket, dataPacket []byte) ([]byte, error) {
	if err := dh.validate(); err != nil {
		return nil, err
	}
	sk, err := dh.decryptSessionKey(keyPacket)
	if err != nil {
		return nil, err
	}
	defer sk.Clear()
	return dh.decryptData(sk, dataPacket)
}

// ClearPrivateParams clears private key material contained in the
// handle from memory.
func (dh *decryptionHandle) ClearPrivateParams() {
	type clearer interface {
		ClearPrivateParams()
	}
	if c, ok := dh.Decrypter.(clearer); ok {
		c.ClearPrivateParams()
	}
}

func (dh *decryptionHandle) validate() error {
	if dh.Decrypter == nil {
		return errors.New("gpglib: no decryption key provided")
	}
	return nil
}
