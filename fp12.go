package pairing

// Fp12 is a quadratic extension element c0 + c1*z over Fp6, with z^2 = y.
type Fp12 struct {
	C0, C1 Fp6
}

var (
	Fp12Zero = Fp12{Fp6Zero, Fp6Zero}
	Fp12One  = Fp12{Fp6One, Fp6Zero}
)

func (a Fp12) IsZero() bool { return a.C0.IsZero() && a.C1.IsZero() }
func (a Fp12) IsOne() bool  { return a.C0 == Fp6One && a.C1.IsZero() }

func AddFp12(a, b Fp12) Fp12 {
	return Fp12{AddFp6(a.C0, b.C0), AddFp6(a.C1, b.C1)}
}

func SubFp12(a, b Fp12) Fp12 {
	return Fp12{SubFp6(a.C0, b.C0), SubFp6(a.C1, b.C1)}
}

func NegFp12(a Fp12) Fp12 {
	return Fp12{NegFp6(a.C0), NegFp6(a.C1)}
}

// MulFp12 is the full Karatsuba product over Fp6 with the non-residue y
// folded into the cross term via MulArtFp6.
func MulFp12(a, b Fp12) Fp12 {
	t0 := MulFp6(a.C0, b.C0)
	t1 := MulFp6(a.C1, b.C1)
	t2 := AddFp6(b.C0, b.C1)

	c1 := AddFp6(a.C0, a.C1)
	c1 = MulFp6(c1, t2)
	c1 = SubFp6(c1, t0)
	c1 = SubFp6(c1, t1)

	t1 = MulArtFp6(t1)
	c0 := AddFp6(t0, t1)

	return Fp12{c0, c1}
}

// MulDxsFp12 is the sparse line multiplication the Miller loop relies on:
// b has c1.B2 = 0 and c0 has only B0 != 0. Implemented with five Fp2
// multiplications plus additions instead of the general product.
func MulDxsFp12(a, b Fp12) Fp12 {
	t0 := Fp6{
		MulFp2(a.C0.B0, b.C0.B0),
		MulFp2(a.C0.B1, b.C0.B0),
		MulFp2(a.C0.B2, b.C0.B0),
	}

	t2 := Fp6{AddFp2(b.C0.B0, b.C1.B0), b.C1.B1, Fp2Zero}

	t1 := MulDxsFp6(a.C1, b.C1)

	c1 := AddFp6(a.C0, a.C1)
	c1 = MulDxsFp6(c1, t2)
	c1 = SubFp6(c1, t0)
	c1 = SubFp6(c1, t1)

	t1 = MulArtFp6(t1)
	c0 := AddFp6(t0, t1)

	return Fp12{c0, c1}
}

// SqrFp12 uses the generic complex-squaring identity
// (c0+c1)(c0+y c1) - c0 c1 (1+y).
func SqrFp12(a Fp12) Fp12 {
	t0 := AddFp6(a.C0, a.C1)
	t1 := MulArtFp6(a.C1)
	t1 = AddFp6(a.C0, t1)
	t0 = MulFp6(t0, t1)

	c1 := MulFp6(a.C0, a.C1)
	c0 := SubFp6(t0, c1)

	t1 = MulArtFp6(c1)
	c0 = SubFp6(c0, t1)
	c1 = AddFp6(c1, c1)

	return Fp12{c0, c1}
}

// InvFp12 inverts via (c0^2 - y c1^2)^-1, one Fp6 inversion.
func InvFp12(a Fp12) (Fp12, error) {
	t0 := SqrFp6(a.C0)
	t1 := SqrFp6(a.C1)
	t1 = MulArtFp6(t1)
	t0 = SubFp6(t0, t1)
	t0, err := InvFp6(t0)
	if err != nil {
		return Fp12Zero, err
	}
	c0 := MulFp6(a.C0, t0)
	c1 := NegFp6(a.C1)
	c1 = MulFp6(c1, t0)
	return Fp12{c0, c1}, nil
}

// InvUniFp12 is the unitary inverse (c0, -c1), valid only inside the
// cyclotomic subgroup.
func InvUniFp12(a Fp12) Fp12 {
	return Fp12{a.C0, NegFp6(a.C1)}
}

// FrbFp12 applies the Frobenius endomorphism: conjugate (unitary inverse)
// each of the six Fp2 coefficients, then multiply five of them by the
// precomputed constants gamma1..gamma5 at the fixed positions transcribed
// from the original FP12_frb.
func FrbFp12(a Fp12) Fp12 {
	r := Fp12{
		Fp6{InvUniFp2(a.C0.B0), InvUniFp2(a.C0.B1), InvUniFp2(a.C0.B2)},
		Fp6{InvUniFp2(a.C1.B0), InvUniFp2(a.C1.B1), InvUniFp2(a.C1.B2)},
	}
	r.C1.B0 = MulFrbFp2(r.C1.B0, 1)
	r.C0.B1 = MulFrbFp2(r.C0.B1, 2)
	r.C1.B1 = MulFrbFp2(r.C1.B1, 3)
	r.C0.B2 = MulFrbFp2(r.C0.B2, 4)
	r.C1.B2 = MulFrbFp2(r.C1.B2, 5)
	return r
}

// CycFp12 is the easy part of final exponentiation: raise to p^6-1 (via
// inversion times unitary inverse) then to p^2+1 (Frobenius twice, times
// self). The output lands in the cyclotomic subgroup, where unitary
// inverse equals inverse.
func CycFp12(a Fp12) (Fp12, error) {
	t, err := InvFp12(a)
	if err != nil {
		return Fp12Zero, err
	}
	r := InvUniFp12(a)
	r = MulFp12(r, t)

	t = FrbFp12(r)
	t = FrbFp12(t)
	r = MulFp12(r, t)
	return r, nil
}

// SqrPckFp12 is the Granger-Scott compressed cyclotomic squaring. It reads
// only four of the six Fp2 coefficients of a (B1 and B2 of C0, B0 and B2
// of C1) and writes only the corresponding four of r; the other two
// coefficients of r are left at their zero value and must be supplied by
// the caller from elsewhere (Back reassembles a full element from two
// compressed squares plus the surviving coefficients). This contract
// mirrors the original FP12_sqr_pck exactly: it is not a general squaring.
func SqrPckFp12(a Fp12) Fp12 {
	g2, g3 := a.C1.B0, a.C0.B2
	g4, g5 := a.C0.B1, a.C1.B2

	t0 := SqrFp2(g4)
	t1 := SqrFp2(g5)
	t5 := AddFp2(g4, g5)
	t2 := SqrFp2(t5)

	t3 := AddFp2(t0, t1)
	t5 = SubFp2(t2, t3)

	t6 := AddFp2(g2, g3)
	t3 = SqrFp2(t6)
	t2 = SqrFp2(g2)

	t6 = MulNorFp2(t5)
	t5 = AddFp2(t6, g2)
	t5 = AddFp2(t5, t5)
	rg2 := AddFp2(t5, t6)

	t4 := MulNorFp2(t1)
	t5 = AddFp2(t0, t4)
	t6 = SubFp2(t5, g3)
	t1 = SqrFp2(g3)
	t6 = AddFp2(t6, t6)
	rg3 := AddFp2(t5, t6)

	t4 = MulNorFp2(t1)
	t5 = AddFp2(t2, t4)
	t6 = SubFp2(t5, g4)
	t6 = AddFp2(t6, t6)
	rg4 := AddFp2(t5, t6)

	t0 = AddFp2(t2, t1)
	t5 = SubFp2(t3, t0)
	t6 = AddFp2(t5, g5)
	t6 = AddFp2(t6, t6)
	rg5 := AddFp2(t5, t6)

	var r Fp12
	r.C1.B0 = rg2
	r.C0.B2 = rg3
	r.C0.B1 = rg4
	r.C1.B2 = rg5
	return r
}

// BackFp12 simultaneously decompresses two Granger-Scott compressed
// squares a, b into full Fp12 elements r, s, using Montgomery's
// simultaneous-inversion trick for the shared division in the
// decompression formula. a and b must carry the compressed coefficients
// SqrPckFp12 produces (g2=C1.B0, g3=C0.B2, g4=C0.B1, g5=C1.B2); those four
// are copied straight from a and b into r and s, and the other two (C0.B0
// and C1.B1) are recomputed from them.
func BackFp12(a, b Fp12) (Fp12, Fp12) {
	compute := func(u Fp12) (t0, t1, denom Fp2) {
		g2, g3, g4, g5 := u.C1.B0, u.C0.B2, u.C0.B1, u.C1.B2
		t0v := SqrFp2(g4)
		t1v := SubFp2(t0v, g3)
		t1v = AddFp2(t1v, t1v)
		t1v = AddFp2(t1v, t0v)
		t2v := SqrFp2(g5)
		t0v = MulNorFp2(t2v)
		t0v = AddFp2(t0v, t1v)
		t1v = AddFp2(g2, g2)
		t1v = AddFp2(t1v, t1v)
		return t0v, t1v, t1v
	}

	t0a, _, denomA := compute(a)
	t0b, _, denomB := compute(b)

	denomA, denomB, _ = invSimFp2NoErr(denomA, denomB)

	finish := func(u Fp12, t0, denom Fp2) Fp12 {
		g1 := MulFp2(t0, denom)
		t1 := MulFp2(u.C0.B2, u.C0.B1)
		t2 := SqrFp2(g1)
		t2 = SubFp2(t2, t1)
		t2 = AddFp2(t2, t2)
		t2 = SubFp2(t2, t1)
		t1 = MulFp2(u.C1.B0, u.C1.B2)
		t2 = AddFp2(t2, t1)
		c00 := MulNorFp2(t2)
		c00 = AddFp2(c00, FpOneAsFp2())

		var r Fp12
		r.C1.B1 = g1
		r.C0.B0 = c00
		r.C0.B1 = u.C0.B1
		r.C0.B2 = u.C0.B2
		r.C1.B0 = u.C1.B0
		r.C1.B2 = u.C1.B2
		return r
	}

	return finish(a, t0a, denomA), finish(b, t0b, denomB)
}

// FpOneAsFp2 returns the Montgomery-encoded Fp2 representation of 1,
// broken out as a helper since BackFp12 needs to add a bare "+1" to an
// Fp2 value the way the original adds group->one directly to a BIGNUM.
func FpOneAsFp2() Fp2 { return Fp2{FpOne, FpZero} }

// invSimFp2NoErr adapts InvSimFp2 for BackFp12's call site, which never
// passes a zero denominator in practice (denom is 4*g2 for elements
// already inside the cyclotomic subgroup produced by SqrPckFp12).
func invSimFp2NoErr(a, b Fp2) (Fp2, Fp2, error) {
	return InvSimFp2(a, b)
}

// ExpCycFp12 raises a to |u| (the BN seed magnitude): 55 compressed
// squarings, a snapshot, 7 more compressed squarings, decompression of
// both snapshots via BackFp12, multiplying the decompressed pair, then
// multiplying by the original input a. Callers apply InvUniFp12 afterward
// to realize u's negative sign.
func ExpCycFp12(a Fp12) Fp12 {
	t0 := a
	for i := 0; i < 55; i++ {
		t0 = SqrPckFp12(t0)
	}
	t1 := t0
	for i := 55; i < 62; i++ {
		t1 = SqrPckFp12(t1)
	}
	t0, t1 = BackFp12(t0, t1)
	t0 = MulFp12(t0, t1)
	return MulFp12(t0, a)
}
