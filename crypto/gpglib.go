// Package crypto implements the content decryption engine for OpenPGP
// (RFC 4880) encrypted messages: the algorithm registry, the
// multi-precision-integer wire codec, the per-algorithm key material
// layouts, oracle-safe session key unpadding and the decryption
// pipeline that ties them together.
//
// # Usage
//
// To get a concrete instantiation of the [PGPDecryption] interface use
// the top level [PGPHandle] by calling PGP():
//
//	pgp := PGP()
//	decHandle, _ := pgp.Decryption().DecryptionKey(decrypter).New()
//	plaintext, _ := decHandle.Decrypt(keyPacket, dataPacket)
//
// The asymmetric and symmetric cipher primitives are external
// collaborators behind the [AsymmetricDecrypter] and
// [SymmetricDecrypter] interfaces; the outer packet-tree parser that
// splits a message into packets is out of scope for this package.
package crypto
