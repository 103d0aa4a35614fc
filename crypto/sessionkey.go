package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"io"

	"github.com/ProtonMail/go-crypto/openpgp/packet"
	"github.com/pkg/errors"

	"github.com/gpglib/gpglib/constants"
)

// SessionKey stores a decrypted session key.
type SessionKey struct {
	// Key defines the decrypted binary session key.
	Key []byte
	// Algo defines the symmetric encryption algorithm used with this key.
	Algo string
}

var symKeyAlgos = map[string]packet.CipherFunction{
	constants.ThreeDES:  packet.Cipher3DES,
	constants.TripleDES: packet.Cipher3DES,
	constants.CAST5:     packet.CipherCAST5,
	constants.AES128:    packet.CipherAES128,
	constants.AES192:    packet.CipherAES192,
	constants.AES256:    packet.CipherAES256,
}

// GetCipherFunc returns the cipher function corresponding to the
// algorithm used with this SessionKey.
func (sk *SessionKey) GetCipherFunc() (packet.CipherFunction, error) {
	cf, ok := symKeyAlgos[sk.Algo]
	if !ok {
		return cf, errors.New("gpglib: unsupported cipher function: " + sk.Algo)
	}
	return cf, nil
}

// GetBase64Key returns the session key as base64 encoded string.
func (sk *SessionKey) GetBase64Key() string {
	return base64.StdEncoding.EncodeToString(sk.Key)
}

// RandomToken generates a random token with the specified key size.
func RandomToken(size int) ([]byte, error) {
	symKey := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, symKey); err != nil {
		return nil, errors.Wrap(err, "gpglib: error in generating random token")
	}
	return symKey, nil
}

// GenerateSessionKeyAlgo generates a random key of the correct length
// for the specified algorithm.
func GenerateSessionKeyAlgo(algo string) (sk *SessionKey, err error) {
	cf, ok := symKeyAlgos[algo]
	if !ok {
		return nil, errors.New("gpglib: unknown symmetric key generation algorithm")
	}
	size, err := CipherKeySize(cf)
	if err != nil {
		return nil, err
	}
	r, err := RandomToken(size)
	if err != nil {
		return nil, err
	}

	sk = &SessionKey{
		Key:  r,
		Algo: algo,
	}
	return sk, nil
}

// NewSessionKeyFromToken creates a SessionKey struct with the given
// token and algorithm. Clones the token.
func NewSessionKeyFromToken(token []byte, algo string) *SessionKey {
	clone := make([]byte, len(token))
	copy(clone, token)
	return &SessionKey{
		Key:  clone,
		Algo: algo,
	}
}

func (sk *SessionKey) checkSize() error {
	cf, ok := symKeyAlgos[sk.Algo]
	if !ok {
		return errors.New("unknown symmetric key algorithm")
	}
	size, err := CipherKeySize(cf)
	if err != nil {
		return err
	}
	if size != len(sk.Key) {
		return errors.New("wrong session key size")
	}
	return nil
}

func getAlgo(cipher packet.CipherFunction) string {
	algo := ""
	for k, v := range symKeyAlgos {
		if v == cipher && k != constants.TripleDES {
			algo = k
			break
		}
	}
	return algo
}
