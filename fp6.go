package pairing

import "math/big"

// Fp6 is a cubic extension element b0 + b1*y + b2*y^2 with y^3 = xi,
// xi = 1+i.
type Fp6 struct {
	B0, B1, B2 Fp2
}

var (
	Fp6Zero = Fp6{Fp2Zero, Fp2Zero, Fp2Zero}
	Fp6One  = Fp6{Fp2One, Fp2Zero, Fp2Zero}
)

func (a Fp6) IsZero() bool {
	return a.B0.IsZero() && a.B1.IsZero() && a.B2.IsZero()
}

func AddFp6(a, b Fp6) Fp6 {
	return Fp6{AddFp2(a.B0, b.B0), AddFp2(a.B1, b.B1), AddFp2(a.B2, b.B2)}
}

func SubFp6(a, b Fp6) Fp6 {
	return Fp6{SubFp2(a.B0, b.B0), SubFp2(a.B1, b.B1), SubFp2(a.B2, b.B2)}
}

func NegFp6(a Fp6) Fp6 {
	return Fp6{NegFp2(a.B0), NegFp2(a.B1), NegFp2(a.B2)}
}

// MulArtFp6 multiplies by y: (b0,b1,b2)*y = (xi*b2, b0, b1).
func MulArtFp6(a Fp6) Fp6 {
	return Fp6{MulNorFp2(a.B2), a.B0, a.B1}
}

// MulFp6 multiplies via Karatsuba-3 with half-products v0=a0b0, v1=a1b1,
// v2=a2b2 combined through the y^3=xi identity.
func MulFp6(a, b Fp6) Fp6 {
	v0 := MulFp2(a.B0, b.B0)
	v1 := MulFp2(a.B1, b.B1)
	v2 := MulFp2(a.B2, b.B2)

	t0 := AddFp2(a.B1, a.B2)
	t1 := AddFp2(b.B1, b.B2)
	c0 := MulFp2(t0, t1)
	c0 = SubFp2(c0, v1)
	c0 = SubFp2(c0, v2)
	c0 = MulNorFp2(c0)
	c0 = AddFp2(c0, v0)

	t0 = AddFp2(a.B0, a.B1)
	t1 = AddFp2(b.B0, b.B1)
	c1 := MulFp2(t0, t1)
	c1 = SubFp2(c1, v0)
	c1 = SubFp2(c1, v1)
	c1 = AddFp2(c1, MulNorFp2(v2))

	t0 = AddFp2(a.B0, a.B2)
	t1 = AddFp2(b.B0, b.B2)
	c2 := MulFp2(t0, t1)
	c2 = SubFp2(c2, v0)
	c2 = AddFp2(c2, v1)
	c2 = SubFp2(c2, v2)

	return Fp6{c0, c1, c2}
}

// MulDxsFp6 is the sparse variant of MulFp6 used when b has b2 = 0: the v2
// computation and every term that depends on it collapse away. The caller
// guarantees the sparseness.
func MulDxsFp6(a, b Fp6) Fp6 {
	v0 := MulFp2(a.B0, b.B0)
	v1 := MulFp2(a.B1, b.B1)

	t0 := AddFp2(a.B1, a.B2)
	c0 := MulFp2(t0, b.B1)
	c0 = SubFp2(c0, v1)
	c0 = MulNorFp2(c0)
	c0 = AddFp2(c0, v0)

	t0 = AddFp2(a.B0, a.B1)
	t1 := AddFp2(b.B0, b.B1)
	c1 := MulFp2(t0, t1)
	c1 = SubFp2(c1, v0)
	c1 = SubFp2(c1, v1)

	t0 = AddFp2(a.B0, a.B2)
	c2 := MulFp2(t0, b.B0)
	c2 = SubFp2(c2, v0)
	c2 = AddFp2(c2, v1)

	return Fp6{c0, c1, c2}
}

// fp6Unr is the unreduced double-width accumulator produced by MulUnrFp6,
// the Fp6-level analogue of fp2Unr.
type fp6Unr struct {
	B0, B1, B2 fp2Unr
}

func addUnrFp2(u, v fp2Unr) fp2Unr {
	return fp2Unr{new(big.Int).Add(u.A0, v.A0), new(big.Int).Add(u.A1, v.A1)}
}

func subUnrFp2(u, v fp2Unr) fp2Unr {
	return fp2Unr{new(big.Int).Sub(u.A0, v.A0), new(big.Int).Sub(u.A1, v.A1)}
}

// mulNorUnrFp2 multiplies an unreduced value by xi = 1+i without forcing a
// reduction: (u0+u1 i)(1+i) = (u0-u1) + (u0+u1) i.
func mulNorUnrFp2(u fp2Unr) fp2Unr {
	return fp2Unr{new(big.Int).Sub(u.A0, u.A1), new(big.Int).Add(u.A0, u.A1)}
}

// MulUnrFp6 mirrors MulFp6 but interleaves Fp2's lazy mul_unr at every
// product while leaving the Karatsuba combination additions/subtractions
// on the resulting unreduced (arbitrary-precision) values, deferring every
// Montgomery reduction to RdcFp6.
func MulUnrFp6(a, b Fp6) fp6Unr {
	v0 := MulUnrFp2(a.B0, b.B0)
	v1 := MulUnrFp2(a.B1, b.B1)
	v2 := MulUnrFp2(a.B2, b.B2)

	t0 := AddFp2(a.B1, a.B2)
	t1 := AddFp2(b.B1, b.B2)
	c0 := MulUnrFp2(t0, t1)
	c0 = subUnrFp2(c0, v1)
	c0 = subUnrFp2(c0, v2)
	c0 = mulNorUnrFp2(c0)
	c0 = addUnrFp2(c0, v0)

	t0 = AddFp2(a.B0, a.B1)
	t1 = AddFp2(b.B0, b.B1)
	c1 := MulUnrFp2(t0, t1)
	c1 = subUnrFp2(c1, v0)
	c1 = subUnrFp2(c1, v1)
	c1 = addUnrFp2(c1, mulNorUnrFp2(v2))

	t0 = AddFp2(a.B0, a.B2)
	t1 = AddFp2(b.B0, b.B2)
	c2 := MulUnrFp2(t0, t1)
	c2 = subUnrFp2(c2, v0)
	c2 = addUnrFp2(c2, v1)
	c2 = subUnrFp2(c2, v2)

	return fp6Unr{c0, c1, c2}
}

// RdcFp6 Montgomery-reduces each coordinate of an unreduced Fp6 product.
func RdcFp6(u fp6Unr) Fp6 {
	return Fp6{RdcFp2(u.B0), RdcFp2(u.B1), RdcFp2(u.B2)}
}

// SqrFp6 is the Chung-Hasan SQR3 variant: extracts cross terms from
// (b0+b1+b2)^2 and (b0-b1+b2)^2, with a halving by 2 (add p before the
// 1-bit right shift when the dividend is odd, exactly as the Miller-loop
// doubling step halves A and G).
func SqrFp6(a Fp6) Fp6 {
	t0 := SqrFp2(a.B0)
	t1 := MulFp2(a.B1, a.B2)
	t1 = AddFp2(t1, t1)
	t2 := SqrFp2(a.B2)

	c2 := AddFp2(a.B0, a.B2)
	t3 := AddFp2(c2, a.B1)
	t3 = SqrFp2(t3)

	c2 = SubFp2(c2, a.B1)
	c2 = SqrFp2(c2)

	c2 = AddFp2(c2, t3)
	c2 = Fp2{halveFp(c2.A0), halveFp(c2.A1)}

	t3 = SubFp2(t3, c2)
	t3 = SubFp2(t3, t1)

	c2 = SubFp2(c2, t0)
	c2 = SubFp2(c2, t2)

	c0 := AddFp2(t0, MulNorFp2(t1))
	c1 := AddFp2(t3, MulNorFp2(t2))

	return Fp6{c0, c1, c2}
}

// Sqr2Fp6 is the SQR2 variant, cheaper for the inputs exp_cyc's
// decompression path produces: squarings of b0, b2 and the two
// cross-products b0*b1, b1*b2.
func Sqr2Fp6(a Fp6) Fp6 {
	t0 := SqrFp2(a.B0)
	t1 := MulFp2(a.B0, a.B1)
	t1 = AddFp2(t1, t1)
	t2 := SubFp2(a.B0, a.B1)
	t2 = AddFp2(t2, a.B2)
	t2 = SqrFp2(t2)
	t3 := MulFp2(a.B1, a.B2)
	t3 = AddFp2(t3, t3)
	t4 := SqrFp2(a.B2)

	c0 := AddFp2(t0, MulNorFp2(t3))
	c1 := AddFp2(t1, MulNorFp2(t4))
	c2 := AddFp2(AddFp2(t1, t2), t3)
	c2 = SubFp2(c2, t0)
	c2 = SubFp2(c2, t4)

	return Fp6{c0, c1, c2}
}

// InvFp6 inverts via the cofactor formula: v0 = b0^2 - xi b1 b2,
// v1 = xi b2^2 - b0 b1, v2 = b1^2 - b0 b2, t = b0 v0 + xi(b2 v1 + b1 v2);
// invert t in Fp2 and scale.
func InvFp6(a Fp6) (Fp6, error) {
	t0 := SqrFp2(a.B0)
	v0 := MulFp2(a.B1, a.B2)
	v0 = MulNorFp2(v0)
	v0 = SubFp2(t0, v0)

	t0 = SqrFp2(a.B2)
	t0 = MulNorFp2(t0)
	v1 := MulFp2(a.B0, a.B1)
	v1 = SubFp2(t0, v1)

	t0 = SqrFp2(a.B1)
	v2 := MulFp2(a.B0, a.B2)
	v2 = SubFp2(t0, v2)

	t0 = MulFp2(a.B1, v2)
	t0 = MulNorFp2(t0)
	c0 := MulFp2(a.B0, v0)

	t1 := MulFp2(a.B2, v1)
	t1 = MulNorFp2(t1)

	t2 := AddFp2(c0, t0)
	t2 = AddFp2(t2, t1)
	t2inv, err := InvFp2(t2)
	if err != nil {
		return Fp6Zero, err
	}

	return Fp6{
		MulFp2(v0, t2inv),
		MulFp2(v1, t2inv),
		MulFp2(v2, t2inv),
	}, nil
}
