package pairing

// mulFp2ByFp scales every coordinate of a by a base-field element s. The
// Miller-loop line functions carry exactly one base-field scalar (xP or
// yP) multiplied into an Fp2 value, so this shows up at every line step.
func mulFp2ByFp(a Fp2, s Fp) Fp2 {
	return Fp2{MulFp(a.A0, s), MulFp(a.A1, s)}
}

// sparseLine packs the three non-zero line coefficients into the sparse
// Fp12 layout MulDxsFp12 expects: l01 at C0.B0, l10 at C1.B0, l11 at
// C1.B1, everything else zero.
func sparseLine(l01, l10, l11 Fp2) Fp12 {
	var f Fp12
	f.C0.B0 = l01
	f.C1.B0 = l10
	f.C1.B1 = l11
	return f
}

// mulOneMinusI computes a*(1-i), the conjugate-twist scaling the doubling
// step's E coefficient needs: (a0+a1 i)(1-i) = (a0+a1) + (a1-a0) i.
func mulOneMinusI(a Fp2) Fp2 {
	return Fp2{AddFp(a.A0, a.A1), SubFp(a.A1, a.A0)}
}

// DoubleStep advances the homogeneous projective twist accumulator (X,Y,Z),
// representing the affine point (X/Z, Y/Z), by doubling
// it and returns the new accumulator along with the sparse line function
// evaluated at the fixed G1 point, whose coordinates arrive pre-scaled:
// s = 3*xP and t = -yP.
func DoubleStep(X, Y, Z Fp2, s, t Fp) (x3, y3, z3 Fp2, line Fp12) {
	c := SqrFp2(Z)
	b := SqrFp2(Y)
	t5 := AddFp2(c, b)

	threeC := AddFp2(c, AddFp2(c, c))
	e := mulOneMinusI(threeC)

	xx := SqrFp2(X)
	a := MulFp2(X, Y)
	a = Fp2{halveFp(a.A0), halveFp(a.A1)}

	f := AddFp2(e, AddFp2(e, e))

	x3 = SubFp2(b, f)
	x3 = MulFp2(x3, a)

	g := AddFp2(b, f)
	g = Fp2{halveFp(g.A0), halveFp(g.A1)}

	e2 := SqrFp2(e)
	threeE2 := AddFp2(e2, AddFp2(e2, e2))
	y3 = SubFp2(SqrFp2(g), threeE2)

	h := SqrFp2(AddFp2(Y, Z))
	h = SubFp2(h, t5)
	z3 = MulFp2(b, h)

	l11 := SubFp2(e, b)
	l10 := mulFp2ByFp(xx, s)
	l01 := mulFp2ByFp(h, t)

	line = sparseLine(l01, l10, l11)
	return
}

// AddStep advances the homogeneous projective twist accumulator (X,Y,Z) by mixed
// addition of the fixed affine twist point (x1,y1), returning the new
// accumulator and the sparse line function evaluated at the G1 point
// (xp,yp), given directly (not pre-scaled).
func AddStep(X, Y, Z, x1, y1 Fp2, xp, yp Fp) (x3, y3, z3 Fp2, line Fp12) {
	t1 := SubFp2(X, MulFp2(Z, x1))
	t2 := SubFp2(Y, MulFp2(Z, y1))

	t3 := SqrFp2(t1)
	xTmp := MulFp2(t3, X)
	t3 = MulFp2(t1, t3)

	t4 := MulFp2(SqrFp2(t2), Z)
	t4 = AddFp2(t3, t4)
	t4 = SubFp2(t4, xTmp)
	t4 = SubFp2(t4, xTmp)

	xTmp = SubFp2(xTmp, t4)
	u1 := MulFp2(t2, xTmp)
	u2 := MulFp2(t3, Y)
	y3 = SubFp2(u1, u2)
	x3 = MulFp2(t1, t4)
	z3 = MulFp2(Z, t3)

	l10 := NegFp2(mulFp2ByFp(t2, xp))
	l11 := SubFp2(MulFp2(x1, t2), MulFp2(y1, t1))
	l01 := mulFp2ByFp(t1, yp)

	line = sparseLine(l01, l10, l11)
	return
}
