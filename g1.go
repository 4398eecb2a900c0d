package pairing

// G1Affine is an affine point on the base curve y^2 = x^3 + 2, coordinates
// held in Montgomery form. The zero value is not a valid point; use
// G1Identity for the point at infinity.
type G1Affine struct {
	X, Y       Fp
	IsInfinity bool
}

// G1Identity is the point at infinity of G1.
var G1Identity = G1Affine{IsInfinity: true}

// bCoeff is the curve constant b=2 in the Weierstrass equation
// y^2 = x^3 + b, Montgomery-encoded.
var bCoeff = EncodeFp(Fp{2, 0, 0, 0})

// OnCurve reports whether p satisfies y^2 = x^3 + 2.
func (p G1Affine) OnCurve() bool {
	if p.IsInfinity {
		return true
	}
	lhs := SqrFp(p.Y)
	rhs := AddFp(MulFp(SqrFp(p.X), p.X), bCoeff)
	return lhs == rhs
}

// g1Jacobian is the internal Jacobian representation used by AddG1/DoubleG1
// to avoid a field inversion per step.
type g1Jacobian struct {
	X, Y, Z Fp
}

func toJacobianG1(p G1Affine) g1Jacobian {
	if p.IsInfinity {
		return g1Jacobian{FpZero, FpOne, FpZero}
	}
	return g1Jacobian{p.X, p.Y, FpOne}
}

func (p g1Jacobian) isInfinity() bool { return p.Z == FpZero }

func (p g1Jacobian) toAffine() (G1Affine, error) {
	if p.isInfinity() {
		return G1Identity, nil
	}
	zInv, err := InvertFp(p.Z)
	if err != nil {
		return G1Affine{}, err
	}
	zInv2 := SqrFp(zInv)
	zInv3 := MulFp(zInv2, zInv)
	return G1Affine{X: MulFp(p.X, zInv2), Y: MulFp(p.Y, zInv3)}, nil
}

// doubleJacobianG1 doubles a Jacobian point via the standard short
// Weierstrass doubling formulas (a=0).
func doubleJacobianG1(p g1Jacobian) g1Jacobian {
	if p.isInfinity() || p.Y == FpZero {
		return g1Jacobian{FpZero, FpOne, FpZero}
	}
	a := SqrFp(p.X)
	b := SqrFp(p.Y)
	c := SqrFp(b)
	d := SubFp(SqrFp(AddFp(p.X, b)), AddFp(a, c))
	d = AddFp(d, d)
	e := AddFp(AddFp(a, a), a)
	f := SqrFp(e)
	x3 := SubFp(f, AddFp(d, d))
	c8 := AddFp(AddFp(AddFp(c, c), AddFp(c, c)), AddFp(AddFp(c, c), AddFp(c, c)))
	y3 := SubFp(MulFp(e, SubFp(d, x3)), c8)
	z3 := MulFp(AddFp(p.Y, p.Y), p.Z)
	return g1Jacobian{x3, y3, z3}
}

// addMixedG1 adds an affine point q to a Jacobian point p (q.Z implicitly
// 1), the standard mixed-addition formulas.
func addMixedG1(p g1Jacobian, q G1Affine) g1Jacobian {
	if p.isInfinity() {
		return toJacobianG1(q)
	}
	if q.IsInfinity {
		return p
	}
	z1z1 := SqrFp(p.Z)
	u2 := MulFp(q.X, z1z1)
	s2 := MulFp(MulFp(q.Y, p.Z), z1z1)
	h := SubFp(u2, p.X)
	i := SqrFp(AddFp(h, h))
	j := MulFp(h, i)
	r := AddFp(SubFp(s2, p.Y), SubFp(s2, p.Y))
	if h == FpZero && r == FpZero {
		return doubleJacobianG1(p)
	}
	v := MulFp(p.X, i)
	x3 := SubFp(SubFp(SqrFp(r), j), AddFp(v, v))
	y3 := SubFp(MulFp(r, SubFp(v, x3)), AddFp(MulFp(p.Y, j), MulFp(p.Y, j)))
	z3 := MulFp(SqrFp(AddFp(p.Z, h)), FpOne)
	z3 = SubFp(z3, AddFp(z1z1, SqrFp(h)))
	return g1Jacobian{x3, y3, z3}
}

// AddG1 returns p+q in affine form.
func AddG1(p, q G1Affine) (G1Affine, error) {
	j := addMixedG1(toJacobianG1(p), q)
	return j.toAffine()
}

// DoubleG1 returns 2p in affine form.
func DoubleG1(p G1Affine) (G1Affine, error) {
	return doubleJacobianG1(toJacobianG1(p)).toAffine()
}

// ScalarMulG1 computes k*p via a left-to-right double-and-add scan over
// k's bits, with k given as big-endian bytes.
func ScalarMulG1(p G1Affine, k []byte) (G1Affine, error) {
	acc := g1Jacobian{FpZero, FpOne, FpZero}
	for _, byt := range k {
		for bit := 7; bit >= 0; bit-- {
			acc = doubleJacobianG1(acc)
			if (byt>>uint(bit))&1 == 1 {
				acc = addMixedG1(acc, p)
			}
		}
	}
	return acc.toAffine()
}

// NegG1 returns -p.
func NegG1(p G1Affine) G1Affine {
	if p.IsInfinity {
		return p
	}
	return G1Affine{X: p.X, Y: NegFp(p.Y)}
}
