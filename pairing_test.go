package pairing

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// expFp12 computes a^k via left-to-right square-and-multiply, k >= 0.
func expFp12(a Fp12, k *big.Int) Fp12 {
	r := Fp12One
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = SqrFp12(r)
		if k.Bit(i) == 1 {
			r = MulFp12(r, a)
		}
	}
	return r
}

// doubleG2Affine doubles a G2 point via the same homogeneous projective
// doubling formula the Miller loop uses (x = X/Z, y = Y/Z), ignoring the
// line function it also produces (the point update in DoubleStep never
// reads s or t).
func doubleG2Affine(t *testing.T, p G2Affine) G2Affine {
	t.Helper()
	x, y, z, _ := DoubleStep(p.X, p.Y, Fp2One, FpZero, FpZero)
	zInv, err := InvFp2(z)
	require.NoError(t, err)
	return G2Affine{X: MulFp2(x, zInv), Y: MulFp2(y, zInv)}
}

func TestPairNonDegenerate(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	r, err := ctx.Pair(ctx.G1Generator(), ctx.G2Generator())
	require.NoError(t, err)
	require.False(t, r.IsOne())
	require.False(t, r.IsZero())
}

func TestPairIdentityInG1(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	r, err := ctx.Pair(G1Identity, ctx.G2Generator())
	require.NoError(t, err)
	require.True(t, r.IsOne())
}

func TestPairIdentityInG2(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	r, err := ctx.Pair(ctx.G1Generator(), G2Identity)
	require.NoError(t, err)
	require.True(t, r.IsOne())
}

func TestPairBilinearInG1(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	p2, err := DoubleG1(ctx.G1Generator())
	require.NoError(t, err)

	lhs, err := ctx.Pair(p2, ctx.G2Generator())
	require.NoError(t, err)

	base, err := ctx.Pair(ctx.G1Generator(), ctx.G2Generator())
	require.NoError(t, err)
	rhs := SqrFp12(base)

	require.Equal(t, rhs, lhs)
}

func TestG1OnCurveForGenerator(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.True(t, ctx.G1Generator().OnCurve())
}

func TestG2OnCurveForGenerator(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.True(t, ctx.G2Generator().OnCurve())
}

func TestPairBilinearInG1ViaAddition(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	p := ctx.G1Generator()
	p2, err := DoubleG1(p)
	require.NoError(t, err)
	sum, err := AddG1(p, p2)
	require.NoError(t, err)

	lhs, err := ctx.Pair(sum, ctx.G2Generator())
	require.NoError(t, err)

	ep, err := ctx.Pair(p, ctx.G2Generator())
	require.NoError(t, err)
	ep2, err := ctx.Pair(p2, ctx.G2Generator())
	require.NoError(t, err)
	rhs := MulFp12(ep, ep2)

	require.Equal(t, rhs, lhs)
}

func TestPairBilinearInG2(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	q2 := doubleG2Affine(t, ctx.G2Generator())

	lhs, err := ctx.Pair(ctx.G1Generator(), q2)
	require.NoError(t, err)

	base, err := ctx.Pair(ctx.G1Generator(), ctx.G2Generator())
	require.NoError(t, err)
	rhs := SqrFp12(base)

	require.Equal(t, rhs, lhs)
}

func TestPairOrderIsGroupOrder(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	e, err := ctx.Pair(ctx.G1Generator(), ctx.G2Generator())
	require.NoError(t, err)

	r := rLimbs.toBigInt()
	require.True(t, expFp12(e, r).IsOne())
}
