package crypto

import "github.com/gpglib/gpglib/trace"

// Key material MPI layouts. Each public key algorithm fixes the count
// and order of the MPI values in its public key, private key and
// encrypted-session-key forms. This file only shapes bytes; the
// asymmetric primitives consuming them live behind
// AsymmetricDecrypter.

func readMPIs(region *Region, tr *trace.Item, names ...string) ([]*MPI, error) {
	mpis := make([]*MPI, 0, len(names))
	for _, name := range names {
		mpi, err := ReadMPI(region)
		if err != nil {
			return nil, err
		}
		tr.Record("mpi", trace.Fields{"name": name, "bits": mpi.BitLength()})
		mpis = append(mpis, mpi)
	}
	return mpis, nil
}

// ConsumeEncryption reads the encrypted-session-key MPI values for the
// given algorithm. See RFC 4880 section 5.1.
func ConsumeEncryption(region *Region, algo PublicKeyAlgorithm, tr *trace.Item) ([]*MPI, error) {
	switch algo {
	case KeyAlgoRSA:
		// m**e mod n
		return readMPIs(region, tr, "m**e mod n")
	case KeyAlgoElGamal:
		// g**k mod p, then m * y**k mod p
		return readMPIs(region, tr, "g**k mod p", "m * y**k mod p")
	case KeyAlgoDSA:
		// DSA is sign-only.
		return nil, UnknownMpiAlgorithmError{Context: "encryption", Algorithm: algo}
	}
	return nil, UnknownMpiAlgorithmError{Context: "encryption", Algorithm: algo}
}

// ConsumePublic reads the public key MPI values for the given
// algorithm. See RFC 4880 section 5.5.2.
func ConsumePublic(region *Region, algo PublicKeyAlgorithm, tr *trace.Item) ([]*MPI, error) {
	switch algo {
	case KeyAlgoRSA:
		return readMPIs(region, tr, "n", "e")
	case KeyAlgoElGamal:
		return readMPIs(region, tr, "p", "g", "y")
	case KeyAlgoDSA:
		return readMPIs(region, tr, "p", "q", "g", "y")
	}
	return nil, UnknownMpiAlgorithmError{Context: "public key", Algorithm: algo}
}

// ConsumePrivate reads the private key MPI values for the given
// algorithm. See RFC 4880 section 5.5.3.
func ConsumePrivate(region *Region, algo PublicKeyAlgorithm, tr *trace.Item) ([]*MPI, error) {
	switch algo {
	case KeyAlgoRSA:
		return readMPIs(region, tr, "d", "p", "q", "u")
	case KeyAlgoElGamal:
		return readMPIs(region, tr, "x")
	case KeyAlgoDSA:
		return readMPIs(region, tr, "x")
	}
	return nil, UnknownMpiAlgorithmError{Context: "secret key", Algorithm: algo}
}
