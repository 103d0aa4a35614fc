package crypto

import (
	"github.com/pkg/errors"

	"github.com/gpglib/gpglib/trace"
)

// EncryptedSessionKey is the parsed body of a public-key encrypted
// session key packet. See RFC 4880 section 5.1.
type EncryptedSessionKey struct {
	Version int
	KeyID   uint64
	Algo    PublicKeyAlgorithm

	ciphertext []*MPI
}

// Ciphertext returns the algorithm-shaped ciphertext MPI values.
func (esk *EncryptedSessionKey) Ciphertext() []*MPI {
	return esk.ciphertext
}

// ParseEncryptedSessionKey reads a version 3 packet body from the
// region: version octet, 8-octet key ID, public key algorithm octet
// and the algorithm's encryption MPI layout.
func ParseEncryptedSessionKey(region *Region, recorder *trace.Recorder) (*EncryptedSessionKey, error) {
	esk := &EncryptedSessionKey{}
	err := recorder.Item("public-key encrypted session key", nil, func(item *trace.Item) error {
		version, err := region.ReadByte()
		if err != nil {
			return err
		}
		esk.Version = int(version)
		if esk.Version != 3 {
			return errors.Errorf("gpglib: unknown encrypted session key version %d", esk.Version)
		}

		keyID, err := region.ReadUint(64)
		if err != nil {
			return err
		}
		esk.KeyID = keyID

		algoCode, err := region.ReadByte()
		if err != nil {
			return err
		}
		esk.Algo, err = ResolvePublicKeyAlgorithm(algoCode)
		if err != nil {
			return err
		}

		item.Set("version", esk.Version)
		item.Set("key_id", esk.KeyID)
		item.Set("algorithm", esk.Algo.String())

		esk.ciphertext, err = ConsumeEncryption(region, esk.Algo, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	return esk, nil
}
