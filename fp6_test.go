package pairing

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFp6MulSqrConsistency(t *testing.T) {
	a, err := RandomFp6(rand.Reader)
	require.NoError(t, err)
	require.Equal(t, MulFp6(a, a), SqrFp6(a))
	require.Equal(t, MulFp6(a, a), Sqr2Fp6(a))
	require.Equal(t, a, MulFp6(a, Fp6One))
}

func TestFp6MulUnrRdcMatchesMul(t *testing.T) {
	a, err := RandomFp6(rand.Reader)
	require.NoError(t, err)
	b, err := RandomFp6(rand.Reader)
	require.NoError(t, err)

	require.Equal(t, MulFp6(a, b), RdcFp6(MulUnrFp6(a, b)))
}

func TestFp6MulDxsMatchesGeneralMulWhenSparse(t *testing.T) {
	a, err := RandomFp6(rand.Reader)
	require.NoError(t, err)
	b0, err := RandomFp2(rand.Reader)
	require.NoError(t, err)
	b1, err := RandomFp2(rand.Reader)
	require.NoError(t, err)
	sparse := Fp6{b0, b1, Fp2Zero}

	require.Equal(t, MulFp6(a, sparse), MulDxsFp6(a, sparse))
}

func TestFp6Invert(t *testing.T) {
	a, err := RandomFp6(rand.Reader)
	require.NoError(t, err)
	inv, err := InvFp6(a)
	require.NoError(t, err)
	require.Equal(t, Fp6One, MulFp6(a, inv))
}

func TestFp6MulArtCubeIsXi(t *testing.T) {
	a, err := RandomFp6(rand.Reader)
	require.NoError(t, err)
	r := MulArtFp6(MulArtFp6(MulArtFp6(a)))

	xi := Fp2{EncodeFp(fpFromHex("1")), EncodeFp(fpFromHex("1"))}
	want := MulFp6(a, Fp6{xi, Fp2Zero, Fp2Zero})
	require.Equal(t, want, r)
}
