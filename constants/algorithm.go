package constants

// Public key algorithm codes, as registered in RFC 4880 section 9.1.
const (
	PubKeyRSA            uint8 = 1  // Encrypt or sign
	PubKeyRSAEncryptOnly uint8 = 2  // Encrypt only
	PubKeyRSASignOnly    uint8 = 3  // Sign only
	PubKeyElGamal        uint8 = 16 // Encrypt only
	PubKeyDSA            uint8 = 17 // Digital Signature Algorithm
)

// Hash algorithm codes, as registered in RFC 4880 section 9.4.
const (
	HashMD5    uint8 = 1
	HashSHA1   uint8 = 2
	HashSHA256 uint8 = 8
	HashSHA384 uint8 = 9
	HashSHA512 uint8 = 10
	HashSHA224 uint8 = 11
)

// Symmetric encryption algorithm codes, as registered in RFC 4880 section 9.2.
const (
	Cipher3DESCode   uint8 = 2
	CipherCAST5Code  uint8 = 3
	CipherAES128Code uint8 = 7
	CipherAES192Code uint8 = 8
	CipherAES256Code uint8 = 9
)
