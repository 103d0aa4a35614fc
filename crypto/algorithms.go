package crypto

import (
	stdcrypto "crypto"
	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"

	"github.com/ProtonMail/go-crypto/openpgp/packet"

	"github.com/gpglib/gpglib/constants"
)

// PublicKeyAlgorithm is the closed set of public key schemes the
// engine knows MPI layouts for.
type PublicKeyAlgorithm int8

const (
	KeyAlgoRSA PublicKeyAlgorithm = iota
	KeyAlgoElGamal
	KeyAlgoDSA
)

func (a PublicKeyAlgorithm) String() string {
	switch a {
	case KeyAlgoRSA:
		return "rsa"
	case KeyAlgoElGamal:
		return "elgamal"
	case KeyAlgoDSA:
		return "dsa"
	}
	return "unknown"
}

// Registry categories, used in UnsupportedAlgorithmError reports.
const (
	categorySymmetric   = "symmetric encryption algorithm"
	categoryHash        = "hash algorithm"
	categoryPublicKey   = "public key algorithm"
	categoryCompression = "compression method"
	categoryKeySize     = "cipher key size"
)

// The registry tables below are built once and never mutated, so they
// are safe for concurrent readers.

var publicKeyAlgorithms = map[uint8]PublicKeyAlgorithm{
	constants.PubKeyRSA:            KeyAlgoRSA,
	constants.PubKeyRSAEncryptOnly: KeyAlgoRSA,
	constants.PubKeyRSASignOnly:    KeyAlgoRSA,
	constants.PubKeyElGamal:        KeyAlgoElGamal,
	constants.PubKeyDSA:            KeyAlgoDSA,
}

var symmetricAlgorithms = map[uint8]packet.CipherFunction{
	constants.Cipher3DESCode:   packet.Cipher3DES,
	constants.CipherCAST5Code:  packet.CipherCAST5,
	constants.CipherAES128Code: packet.CipherAES128,
	constants.CipherAES192Code: packet.CipherAES192,
	constants.CipherAES256Code: packet.CipherAES256,
}

var hashAlgorithms = map[uint8]stdcrypto.Hash{
	constants.HashMD5:    stdcrypto.MD5,
	constants.HashSHA1:   stdcrypto.SHA1,
	constants.HashSHA256: stdcrypto.SHA256,
	constants.HashSHA384: stdcrypto.SHA384,
	constants.HashSHA512: stdcrypto.SHA512,
	constants.HashSHA224: stdcrypto.SHA224,
}

var compressionMethods = map[uint8]int8{
	0: constants.CompressionNone,
	1: constants.CompressionZIP,
	2: constants.CompressionZLIB,
	3: constants.CompressionBZip2,
}

// One entry per supported cipher; used to size freshly generated key
// material and to bound session key reads.
var cipherKeySizes = map[packet.CipherFunction]int{
	packet.Cipher3DES:   24,
	packet.CipherCAST5:  16,
	packet.CipherAES128: 16,
	packet.CipherAES192: 24,
	packet.CipherAES256: 32,
}

// ResolvePublicKeyAlgorithm maps an RFC 4880 public key algorithm code
// to its scheme. Codes without a registered scheme fail with
// UnsupportedAlgorithmError; there is no default.
func ResolvePublicKeyAlgorithm(code uint8) (PublicKeyAlgorithm, error) {
	algo, ok := publicKeyAlgorithms[code]
	if !ok {
		return 0, UnsupportedAlgorithmError{Category: categoryPublicKey, Code: code}
	}
	return algo, nil
}

// ResolveCipher maps a symmetric encryption algorithm code to its
// cipher function.
func ResolveCipher(code uint8) (packet.CipherFunction, error) {
	cipher, ok := symmetricAlgorithms[code]
	if !ok {
		return 0, UnsupportedAlgorithmError{Category: categorySymmetric, Code: code}
	}
	return cipher, nil
}

// ResolveHash maps a hash algorithm code to its hash function.
func ResolveHash(code uint8) (stdcrypto.Hash, error) {
	hash, ok := hashAlgorithms[code]
	if !ok {
		return 0, UnsupportedAlgorithmError{Category: categoryHash, Code: code}
	}
	return hash, nil
}

// ResolveCompression maps a compression method code to one of the
// constants.Compression values.
func ResolveCompression(code uint8) (int8, error) {
	method, ok := compressionMethods[code]
	if !ok {
		return 0, UnsupportedAlgorithmError{Category: categoryCompression, Code: code}
	}
	return method, nil
}

// CipherKeySize returns the key length in bytes required by the given
// cipher function.
func CipherKeySize(cipher packet.CipherFunction) (int, error) {
	size, ok := cipherKeySizes[cipher]
	if !ok {
		return 0, UnsupportedAlgorithmError{Category: categoryKeySize, Code: uint8(cipher)}
	}
	return size, nil
}
