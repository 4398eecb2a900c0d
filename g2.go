package pairing

// G2Affine is an affine point on the sextic twist E'(Fp2): y^2 = x^3 + b',
// coordinates held in Montgomery form. The zero value is not a valid
// point; use G2Identity for the point at infinity.
type G2Affine struct {
	X, Y       Fp2
	IsInfinity bool
}

// G2Identity is the point at infinity of G2.
var G2Identity = G2Affine{IsInfinity: true}

// bCoeffTwist is the twist curve constant b' = b/xi = 2/(1+i) = 1-i, the
// curve constant b=2 divided by the same sextic non-residue xi=1+i used
// throughout the tower, Montgomery encoded coordinate-wise.
var bCoeffTwist = Fp2{FpOne, NegFp(FpOne)}

// g2Jacobian is a Jacobian representation of a twist point (x = X/Z^2,
// y = Y/Z^3). The Miller loop does not use it: DoubleStep and AddStep keep
// their (X,Y,Z) in homogeneous projective form (x = X/Z, y = Y/Z).
type g2Jacobian struct {
	X, Y, Z Fp2
}

func toJacobianG2(p G2Affine) g2Jacobian {
	if p.IsInfinity {
		return g2Jacobian{Fp2Zero, Fp2One, Fp2Zero}
	}
	return g2Jacobian{p.X, p.Y, Fp2One}
}

func (p g2Jacobian) isInfinity() bool { return p.Z.IsZero() }

func (p g2Jacobian) toAffine() (G2Affine, error) {
	if p.isInfinity() {
		return G2Identity, nil
	}
	zInv, err := InvFp2(p.Z)
	if err != nil {
		return G2Affine{}, err
	}
	zInv2 := SqrFp2(zInv)
	zInv3 := MulFp2(zInv2, zInv)
	return G2Affine{X: MulFp2(p.X, zInv2), Y: MulFp2(p.Y, zInv3)}, nil
}

// NegG2 returns -p.
func NegG2(p G2Affine) G2Affine {
	if p.IsInfinity {
		return p
	}
	return G2Affine{X: p.X, Y: NegFp2(p.Y)}
}

// OnCurve reports whether p satisfies the twist equation y^2 = x^3 + b'.
func (p G2Affine) OnCurve() bool {
	if p.IsInfinity {
		return true
	}
	lhs := SqrFp2(p.Y)
	rhs := AddFp2(MulFp2(SqrFp2(p.X), p.X), bCoeffTwist)
	return lhs == rhs
}
