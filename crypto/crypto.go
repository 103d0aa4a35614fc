package crypto

import "github.com/gpglib/gpglib/constants"

// PGPHandle is the top level entry point to the engine.
type PGPHandle struct{}

// PGP creates a PGPHandle to interact with the API.
func PGP() *PGPHandle {
	return &PGPHandle{}
}

// Decryption returns a builder to create a DecryptionHandle
// for decrypting pgp messages.
func (p *PGPHandle) Decryption() *DecryptionHandleBuilder {
	return newDecryptionHandleBuilder()
}

// GenerateSessionKey generates a random session key for the default
// cipher.
func (p *PGPHandle) GenerateSessionKey() (*SessionKey, error) {
	return GenerateSessionKeyAlgo(constants.AES256)
}
