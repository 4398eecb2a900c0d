package pairing

import (
	"io"
	"math/big"
)

// RandomFp draws a uniformly random field element in [0,p), Montgomery
// encoded, reading randomness from r (typically crypto/rand.Reader).
// Grounded on the teacher's bn128_test.go random-sampling helpers, which
// also loop big.Int generation against the field modulus.
func RandomFp(r io.Reader) (Fp, error) {
	for {
		buf := make([]byte, 32)
		if _, err := io.ReadFull(r, buf); err != nil {
			return FpZero, err
		}
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(pBig) < 0 {
			return EncodeFp(fpFromBigInt(v)), nil
		}
	}
}

// RandomFp2 draws a uniformly random Fp2 element.
func RandomFp2(r io.Reader) (Fp2, error) {
	a0, err := RandomFp(r)
	if err != nil {
		return Fp2Zero, err
	}
	a1, err := RandomFp(r)
	if err != nil {
		return Fp2Zero, err
	}
	return Fp2{a0, a1}, nil
}

// RandomFp6 draws a uniformly random Fp6 element.
func RandomFp6(r io.Reader) (Fp6, error) {
	b0, err := RandomFp2(r)
	if err != nil {
		return Fp6Zero, err
	}
	b1, err := RandomFp2(r)
	if err != nil {
		return Fp6Zero, err
	}
	b2, err := RandomFp2(r)
	if err != nil {
		return Fp6Zero, err
	}
	return Fp6{b0, b1, b2}, nil
}

// RandomFp12 draws a uniformly random Fp12 element.
func RandomFp12(r io.Reader) (Fp12, error) {
	c0, err := RandomFp6(r)
	if err != nil {
		return Fp12Zero, err
	}
	c1, err := RandomFp6(r)
	if err != nil {
		return Fp12Zero, err
	}
	return Fp12{c0, c1}, nil
}
