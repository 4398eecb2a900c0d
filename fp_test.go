package pairing

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFpAddSubNeg(t *testing.T) {
	a, err := RandomFp(rand.Reader)
	require.NoError(t, err)
	b, err := RandomFp(rand.Reader)
	require.NoError(t, err)

	require.Equal(t, a, AddFp(a, FpZero))
	require.Equal(t, FpZero, SubFp(a, a))
	require.Equal(t, a, AddFp(SubFp(a, b), b))
	require.Equal(t, FpZero, AddFp(a, NegFp(a)))
}

func TestFpMulSqrConsistency(t *testing.T) {
	a, err := RandomFp(rand.Reader)
	require.NoError(t, err)
	require.Equal(t, MulFp(a, a), SqrFp(a))
	require.Equal(t, a, MulFp(a, FpOne))
}

func TestFpInvert(t *testing.T) {
	a, err := RandomFp(rand.Reader)
	require.NoError(t, err)

	inv, err := InvertFp(a)
	require.NoError(t, err)
	require.Equal(t, FpOne, MulFp(a, inv))

	_, err = InvertFp(FpZero)
	require.ErrorIs(t, err, ErrZeroInverse)
}

func TestFpEncodeDecodeRoundTrip(t *testing.T) {
	plain := fpFromHex("2A")
	enc := EncodeFp(plain)
	require.Equal(t, plain, DecodeFp(enc))
}

func TestFpHalve(t *testing.T) {
	a, err := RandomFp(rand.Reader)
	require.NoError(t, err)
	half := halveFp(a)
	require.Equal(t, a, AddFp(half, half))
}
