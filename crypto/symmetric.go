package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"

	"github.com/ProtonMail/go-crypto/openpgp/packet"
	"github.com/pkg/errors"
	"golang.org/x/crypto/cast5"
)

// SymmetricDecrypter is the external symmetric primitive: given a
// recovered session key and the encrypted body bytes it returns the
// plaintext, handling IV and mode internally.
type SymmetricDecrypter interface {
	Decrypt(sk *SessionKey, ciphertext []byte) ([]byte, error)
}

type cfbDecrypter struct{}

// NewCFBDecrypter returns the stock SymmetricDecrypter: CFB with a
// zero IV over a body that starts with blockSize+2 prefix octets, the
// last two repeating the two before them as a quick key check. This is
// the layout of integrity-protected data packet bodies.
func NewCFBDecrypter() SymmetricDecrypter {
	return cfbDecrypter{}
}

func newCipherBlock(sk *SessionKey) (cipher.Block, error) {
	cf, err := sk.GetCipherFunc()
	if err != nil {
		return nil, err
	}
	if err := sk.checkSize(); err != nil {
		return nil, errors.Wrap(err, "gpglib: building block cipher")
	}
	switch cf {
	case packet.Cipher3DES:
		return des.NewTripleDESCipher(sk.Key)
	case packet.CipherCAST5:
		return cast5.NewCipher(sk.Key)
	case packet.CipherAES128, packet.CipherAES192, packet.CipherAES256:
		return aes.NewCipher(sk.Key)
	}
	return nil, errors.Errorf("gpglib: no block cipher for function %d", cf)
}

func (cfbDecrypter) Decrypt(sk *SessionKey, ciphertext []byte) ([]byte, error) {
	block, err := newCipherBlock(sk)
	if err != nil {
		return nil, err
	}
	bs := block.BlockSize()
	if len(ciphertext) < bs+2 {
		return nil, errors.New("gpglib: ciphertext shorter than cipher prefix")
	}

	plaintext := make([]byte, len(ciphertext))
	iv := make([]byte, bs)
	cipher.NewCFBDecrypter(block, iv).XORKeyStream(plaintext, ciphertext)

	// A wrong key is caught by the repeated prefix octets with
	// probability 1 - 2**-16; the caller reports any mismatch as a
	// generic decryption failure.
	if plaintext[bs-2] != plaintext[bs] || plaintext[bs-1] != plaintext[bs+1] {
		return nil, errors.New("gpglib: cipher prefix mismatch")
	}
	return plaintext[bs+2:], nil
}
