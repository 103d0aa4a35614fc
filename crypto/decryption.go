package crypto

import (
	"github.com/pkg/errors"

	"github.com/gpglib/gpglib/trace"
)

// decryptSessionKey recovers the session key from a public-key
// encrypted session key packet body.
//
// Structural failures up to and including the asymmetric decryption
// (truncated data, unsupported algorithm, key mismatch) are reported
// as-is: they occur before any padding is inspected and carry no
// oracle. From unpadding onward every failure is the opaque
// ErrDecryptionFailed.
func (dh *decryptionHandle) decryptSessionKey(keyPacket []byte) (*SessionKey, error) {
	region := NewRegion(keyPacket)

	esk, err := ParseEncryptedSessionKey(region, dh.Recorder)
	if err != nil {
		return nil, err
	}
	if esk.Algo != dh.Decrypter.Algorithm() {
		return nil, errors.Errorf(
			"gpglib: cannot decrypt session key of type %s with a %s key",
			esk.Algo, dh.Decrypter.Algorithm())
	}
	if esk.KeyID != 0 && dh.Decrypter.KeyID() != 0 && esk.KeyID != dh.Decrypter.KeyID() {
		return nil, errors.Errorf(
			"gpglib: cannot decrypt session key for key id %x with private key id %x",
			esk.KeyID, dh.Decrypter.KeyID())
	}

	padded, err := dh.Decrypter.Decrypt(esk.Ciphertext())
	if err != nil {
		return nil, errors.Wrap(err, "gpglib: asymmetric decryption failed")
	}
	defer clearMem(padded)

	payload, err := unpadSessionKey(dh.random, padded)
	if err != nil {
		return nil, err
	}
	sk, err := sessionKeyFromPayload(payload)
	if err != nil {
		return nil, err
	}
	dh.Recorder.Item("session key", trace.Fields{"algorithm": sk.Algo}, nil)
	return sk, nil
}

// decryptData decrypts the message body and decompresses it. The
// decrypted body is one compression method octet followed by the
// (possibly compressed) literal bytes; method 0 is the identity.
func (dh *decryptionHandle) decryptData(sk *SessionKey, dataPacket []byte) ([]byte, error) {
	symmetric := dh.Symmetric
	if symmetric == nil {
		symmetric = NewCFBDecrypter()
	}
	body, err := symmetric.Decrypt(sk, dataPacket)
	if err != nil {
		// The session key may be the unpadding fallback; any detail
		// here would leak which stage failed.
		return nil, ErrDecryptionFailed
	}
	if len(body) == 0 {
		return nil, ErrDecryptionFailed
	}

	method := body[0]
	dh.Recorder.Item("decrypted body", trace.Fields{
		"compression": method,
		"bytes":       len(body) - 1,
	}, nil)

	plaintext, err := decompress(method, body[1:])
	if err != nil {
		var unsupported UnsupportedAlgorithmError
		if errors.As(err, &unsupported) {
			return nil, err
		}
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
