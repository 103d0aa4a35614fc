package crypto

import (
	"crypto/rsa"
	"math/big"

	"github.com/ProtonMail/go-crypto/openpgp/elgamal"
	"github.com/pkg/errors"
)

// AsymmetricDecrypter is the external asymmetric primitive: it turns
// the encrypted-session-key MPI values into the raw decrypted bytes.
// The engine treats the operation as opaque and performs its own
// padding removal on the output, so implementations must not unpad.
type AsymmetricDecrypter interface {
	// Algorithm reports which scheme the ciphertext MPI layout must
	// be resolved against.
	Algorithm() PublicKeyAlgorithm
	// KeyID reports the 8-octet OpenPGP key ID of the private key, or
	// zero when unknown.
	KeyID() uint64
	// Decrypt returns the raw decrypted bytes, as a big-endian
	// integer: any leading zero octet of the EME block is absent.
	Decrypt(mpis []*MPI) ([]byte, error)
}

type rsaDecrypter struct {
	keyID uint64
	priv  *rsa.PrivateKey
}

// NewRSADecrypter returns an AsymmetricDecrypter performing the raw
// RSA operation m = c**d mod n with the given private key. The padded
// block is returned as-is; rsa.DecryptPKCS1v15 is deliberately not
// used since it would strip the padding before the engine's own
// oracle-safe unpadding can see it.
func NewRSADecrypter(keyID uint64, priv *rsa.PrivateKey) AsymmetricDecrypter {
	return &rsaDecrypter{keyID: keyID, priv: priv}
}

func (d *rsaDecrypter) Algorithm() PublicKeyAlgorithm {
	return KeyAlgoRSA
}

func (d *rsaDecrypter) KeyID() uint64 {
	return d.keyID
}

func (d *rsaDecrypter) Decrypt(mpis []*MPI) ([]byte, error) {
	if len(mpis) != 1 {
		return nil, errors.Errorf("gpglib: rsa decryption expects 1 mpi, got %d", len(mpis))
	}
	// The exponentiation reduces c modulo n, so a ciphertext produced
	// under a different modulus decrypts to garbage instead of being
	// rejected; the garbage then fails in the unpadding stage like any
	// other wrong-key result.
	c := mpis[0].Big()
	m := new(big.Int).Exp(c, d.priv.D, d.priv.N)
	defer clearBigInt(m)
	return m.Bytes(), nil
}

type elGamalDecrypter struct {
	keyID uint64
	priv  *elgamal.PrivateKey
}

// NewElGamalDecrypter returns an AsymmetricDecrypter performing the
// raw ElGamal operation m = c2 * (c1**x)**-1 mod p with the given
// private key. As with RSA, the padded block is returned untouched;
// elgamal.Decrypt embeds its own padding check and is not used.
func NewElGamalDecrypter(keyID uint64, priv *elgamal.PrivateKey) AsymmetricDecrypter {
	return &elGamalDecrypter{keyID: keyID, priv: priv}
}

func (d *elGamalDecrypter) Algorithm() PublicKeyAlgorithm {
	return KeyAlgoElGamal
}

func (d *elGamalDecrypter) KeyID() uint64 {
	return d.keyID
}

func (d *elGamalDecrypter) Decrypt(mpis []*MPI) ([]byte, error) {
	if len(mpis) != 2 {
		return nil, errors.Errorf("gpglib: elgamal decryption expects 2 mpis, got %d", len(mpis))
	}
	c1 := mpis[0].Big()
	c2 := mpis[1].Big()
	if c1.Cmp(d.priv.P) >= 0 || c2.Cmp(d.priv.P) >= 0 {
		return nil, errors.New("gpglib: elgamal ciphertext not reduced modulo p")
	}
	s := new(big.Int).Exp(c1, d.priv.X, d.priv.P)
	if s.ModInverse(s, d.priv.P) == nil {
		return nil, errors.New("gpglib: elgamal ciphertext has no inverse")
	}
	m := s.Mul(s, c2)
	m.Mod(m, d.priv.P)
	defer clearBigInt(m)
	return m.Bytes(), nil
}
