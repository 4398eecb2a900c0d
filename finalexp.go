package pairing

// FinalAdjustment applies the two Frobenius-twisted correction additions
// the optimal ate pairing needs after the main Miller loop, folding the
// last two line functions into the accumulator r and returning the
// updated homogeneous projective twist point alongside it.
func FinalAdjustment(r Fp12, X, Y, Z, x1, y1 Fp2, xp, yp Fp) (Fp12, Fp2, Fp2, Fp2) {
	x2 := MulFrbFp2(InvUniFp2(x1), 2)
	y2 := MulFrbFp2(InvUniFp2(y1), 3)

	var line Fp12
	X, Y, Z, line = AddStep(X, Y, Z, x2, y2, xp, yp)
	r = MulDxsFp12(r, line)

	x2 = MulFrbFp2(InvUniFp2(x2), 2)
	y2 = MulFrbFp2(InvUniFp2(y2), 3)
	y2 = NegFp2(y2)

	X, Y, Z, line = AddStep(X, Y, Z, x2, y2, xp, yp)
	r = MulDxsFp12(r, line)

	return r, X, Y, Z
}

// HardPart performs the whole final exponentiation of a Miller-loop
// output a: it first applies the easy part (CycFp12), then the
// Fuentes-Castañeda addition chain that raises that result to the
// (p^4-p^2+1)/r power using cyclotomic exponentiations, Frobenius
// applications, and a handful of full multiplications.
func HardPart(a Fp12) (Fp12, error) {
	r, err := CycFp12(a)
	if err != nil {
		return Fp12Zero, err
	}

	t0 := ExpCycFp12(r)
	t0 = SqrFp12(t0)

	t1 := SqrFp12(t0)
	t1 = MulFp12(t1, t0)

	t2 := ExpCycFp12(t1)

	t3 := SqrFp12(t2)
	t3 = ExpCycFp12(t3)

	t0 = InvUniFp12(t0)
	t1 = InvUniFp12(t1)
	t3 = InvUniFp12(t3)

	t3 = MulFp12(t3, t2)
	t3 = MulFp12(t3, t1)

	t0 = InvUniFp12(t0)
	t0 = MulFp12(t0, t3)

	t2 = MulFp12(t2, t3)
	t2 = MulFp12(t2, r)

	r = InvUniFp12(r)
	r = MulFp12(r, t0)

	r = FrbFp12(r)
	r = FrbFp12(r)
	r = FrbFp12(r)
	r = MulFp12(r, t2)

	t0 = FrbFp12(t0)
	r = MulFp12(r, t0)

	t3 = FrbFp12(t3)
	t3 = FrbFp12(t3)
	r = MulFp12(r, t3)

	return r, nil
}
