package pairing

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFp12MulSqrConsistency(t *testing.T) {
	a, err := RandomFp12(rand.Reader)
	require.NoError(t, err)
	require.Equal(t, MulFp12(a, a), SqrFp12(a))
	require.Equal(t, a, MulFp12(a, Fp12One))
}

func TestFp12Invert(t *testing.T) {
	a, err := RandomFp12(rand.Reader)
	require.NoError(t, err)
	inv, err := InvFp12(a)
	require.NoError(t, err)
	require.Equal(t, Fp12One, MulFp12(a, inv))
}

func TestFp12MulDxsMatchesGeneralMulWhenSparse(t *testing.T) {
	a, err := RandomFp12(rand.Reader)
	require.NoError(t, err)
	b00, err := RandomFp2(rand.Reader)
	require.NoError(t, err)
	b10, err := RandomFp2(rand.Reader)
	require.NoError(t, err)
	b11, err := RandomFp2(rand.Reader)
	require.NoError(t, err)

	sparse := sparseLine(b00, b10, b11)
	require.Equal(t, MulFp12(a, sparse), MulDxsFp12(a, sparse))
}

func TestFp12CycProducesUnitaryElement(t *testing.T) {
	a, err := RandomFp12(rand.Reader)
	require.NoError(t, err)
	require.False(t, a.IsZero())

	r, err := CycFp12(a)
	require.NoError(t, err)

	inv, err := InvFp12(r)
	require.NoError(t, err)
	require.Equal(t, inv, InvUniFp12(r))
}

func TestFp12SqrPckAndBackRoundTrip(t *testing.T) {
	a, err := CycFp12(mustRandomNonzero(t))
	require.NoError(t, err)
	b, err := CycFp12(mustRandomNonzero(t))
	require.NoError(t, err)

	sa := SqrPckFp12(a)
	sb := SqrPckFp12(b)

	ra, rb := BackFp12(sa, sb)

	require.Equal(t, SqrFp12(a).C1.B0, ra.C1.B0)
	require.Equal(t, SqrFp12(b).C1.B0, rb.C1.B0)
}

func mustRandomNonzero(t *testing.T) Fp12 {
	t.Helper()
	a, err := RandomFp12(rand.Reader)
	require.NoError(t, err)
	return a
}

func TestFp12FrobeniusTwelfthPowerIsIdentity(t *testing.T) {
	a, err := RandomFp12(rand.Reader)
	require.NoError(t, err)

	r := a
	for i := 0; i < 12; i++ {
		r = FrbFp12(r)
	}
	require.Equal(t, a, r)
}
