package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestG1DoubleMatchesAdd(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	g := ctx.G1Generator()

	viaAdd, err := AddG1(g, g)
	require.NoError(t, err)
	viaDouble, err := DoubleG1(g)
	require.NoError(t, err)

	require.Equal(t, viaDouble, viaAdd)
}

func TestG1ScalarMulByTwoMatchesDouble(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	g := ctx.G1Generator()

	viaScalar, err := ScalarMulG1(g, []byte{2})
	require.NoError(t, err)
	viaDouble, err := DoubleG1(g)
	require.NoError(t, err)

	require.Equal(t, viaDouble, viaScalar)
}

func TestG1NegAddIsInfinity(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	g := ctx.G1Generator()

	sum, err := AddG1(g, NegG1(g))
	require.NoError(t, err)
	require.True(t, sum.IsInfinity)
}
