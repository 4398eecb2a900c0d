package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestG2NegIsAdditiveInverseOfY(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	g := ctx.G2Generator()

	n := NegG2(g)
	require.True(t, n.OnCurve())
	require.Equal(t, g.X, n.X)
	require.Equal(t, Fp2Zero, AddFp2(g.Y, n.Y))
}

func TestG2JacobianRoundTrip(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	g := ctx.G2Generator()

	j := toJacobianG2(g)
	back, err := j.toAffine()
	require.NoError(t, err)
	require.Equal(t, g, back)
}

func TestG2IdentityRoundTrip(t *testing.T) {
	j := toJacobianG2(G2Identity)
	require.True(t, j.isInfinity())
	back, err := j.toAffine()
	require.NoError(t, err)
	require.Equal(t, G2Identity, back)
}
