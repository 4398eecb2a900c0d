package pairing

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFp2MulSqrConsistency(t *testing.T) {
	a, err := RandomFp2(rand.Reader)
	require.NoError(t, err)
	require.Equal(t, MulFp2(a, a), SqrFp2(a))
	require.Equal(t, a, MulFp2(a, Fp2One))
}

func TestFp2MulUnrRdcMatchesMul(t *testing.T) {
	a, err := RandomFp2(rand.Reader)
	require.NoError(t, err)
	b, err := RandomFp2(rand.Reader)
	require.NoError(t, err)

	require.Equal(t, MulFp2(a, b), RdcFp2(MulUnrFp2(a, b)))
}

func TestFp2Invert(t *testing.T) {
	a, err := RandomFp2(rand.Reader)
	require.NoError(t, err)
	inv, err := InvFp2(a)
	require.NoError(t, err)
	require.Equal(t, Fp2One, MulFp2(a, inv))
}

func TestFp2InvSim(t *testing.T) {
	a, err := RandomFp2(rand.Reader)
	require.NoError(t, err)
	b, err := RandomFp2(rand.Reader)
	require.NoError(t, err)

	ai, bi, err := InvSimFp2(a, b)
	require.NoError(t, err)

	wantA, err := InvFp2(a)
	require.NoError(t, err)
	wantB, err := InvFp2(b)
	require.NoError(t, err)

	require.Equal(t, wantA, ai)
	require.Equal(t, wantB, bi)
}

func TestFp2ArtAndNor(t *testing.T) {
	a, err := RandomFp2(rand.Reader)
	require.NoError(t, err)

	// i^4 == 1.
	r := MulArtFp2(MulArtFp2(MulArtFp2(MulArtFp2(a))))
	require.Equal(t, a, r)

	// MulNor multiplies by xi = 1+i.
	require.Equal(t, MulFp2(a, Fp2{FpOne, FpOne}), MulNorFp2(a))
}

func TestFp2InvUniIsUnitaryInverse(t *testing.T) {
	a, err := RandomFp2(rand.Reader)
	require.NoError(t, err)
	// Only true on the norm-1 subgroup; verify the map is its own inverse
	// regardless, since conjugation always squares to the identity map.
	require.Equal(t, a, InvUniFp2(InvUniFp2(a)))
}

func TestFrobeniusConstantsInitialized(t *testing.T) {
	initFrobeniusConstants()
	require.False(t, gammaConsts.g1.IsZero())
	require.NotEqual(t, FpZero, gammaConsts.g2)
}
