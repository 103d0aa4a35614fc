package crypto

import "math/big"

// Session key bytes and private key parameters are sensitive; these
// helpers overwrite them in place so callers can bound their lifetime.

func (sk *SessionKey) Clear() (ok bool) {
	clearMem(sk.Key)
	return true
}

// ClearPrivateParams overwrites the RSA private exponent and primes.
func (d *rsaDecrypter) ClearPrivateParams() {
	clearBigInt(d.priv.D)
	for idx := range d.priv.Primes {
		clearBigInt(d.priv.Primes[idx])
	}
	clearBigInt(d.priv.Precomputed.Qinv)
	clearBigInt(d.priv.Precomputed.Dp)
	clearBigInt(d.priv.Precomputed.Dq)
}

// ClearPrivateParams overwrites the ElGamal secret exponent.
func (d *elGamalDecrypter) ClearPrivateParams() {
	clearBigInt(d.priv.X)
}

func clearBigInt(n *big.Int) {
	if n == nil {
		return
	}
	w := n.Bits()
	for k := range w {
		w[k] = 0x00
	}
}

func clearMem(w []byte) {
	for k := range w {
		w[k] = 0x00
	}
}
