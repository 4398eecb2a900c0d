package pairing

import (
	"math/big"
	"sync"
)

// loopScalar is |6u+2| for the BN seed u = -(2^62+2^55+1), the Miller
// loop's scalar. It is computed once at package load from the seed's
// two set bits plus the constant term, the same construction op_map uses
// (BN_set_bit(62), BN_set_bit(55), BN_set_bit(0), then 6|u|-2, which
// equals |6u+2| since u is negative).
var loopScalar = func() *big.Int {
	u := new(big.Int).Lsh(big.NewInt(1), 62)
	u.Add(u, new(big.Int).Lsh(big.NewInt(1), 55))
	u.Add(u, big.NewInt(1))
	u.Mul(u, big.NewInt(6))
	u.Sub(u, big.NewInt(2))
	return u
}()

// scratch is a per-call working set drawn from a pool for each Pair
// invocation, so concurrent callers never share it. Pair records only the
// initial doubling-step line in it; the rest of the Miller loop and the
// final exponentiation work on local values.
type scratch struct {
	lines []Fp12
}

var scratchPool = sync.Pool{
	New: func() any { return &scratch{lines: make([]Fp12, 0, 4)} },
}

func newScratch() *scratch {
	s := scratchPool.Get().(*scratch)
	s.lines = s.lines[:0]
	return s
}

func (s *scratch) release() { scratchPool.Put(s) }

// Pair evaluates the optimal ate pairing e(p,q) in GT, returned in
// Montgomery form (the same convention every Fp/Fp2/Fp6/Fp12 value in
// this package uses — the result is not decoded, matching op_map leaving
// its FP12 output Montgomery-encoded and decoding only the twist point's
// scratch coordinates).
func (c *Context) Pair(p G1Affine, q G2Affine) (Fp12, error) {
	if p.IsInfinity || q.IsInfinity {
		return Fp12One, nil
	}
	if !p.OnCurve() {
		return Fp12Zero, ErrFieldHook
	}

	sc := newScratch()
	defer sc.release()

	xp, yp := p.X, p.Y
	s := AddFp(AddFp(xp, xp), xp)
	t := NegFp(yp)

	X, Y, Z := q.X, q.Y, Fp2One

	X, Y, Z, r := DoubleStep(X, Y, Z, s, t)
	sc.lines = append(sc.lines, r)

	nb := loopScalar.BitLen()
	if loopScalar.Bit(nb-2) == 1 {
		var line Fp12
		X, Y, Z, line = AddStep(X, Y, Z, q.X, q.Y, xp, yp)
		r = MulDxsFp12(r, line)
	}

	for i := nb - 3; i >= 0; i-- {
		r = SqrFp12(r)

		var line Fp12
		X, Y, Z, line = DoubleStep(X, Y, Z, s, t)
		r = MulDxsFp12(r, line)

		if loopScalar.Bit(i) == 1 {
			X, Y, Z, line = AddStep(X, Y, Z, q.X, q.Y, xp, yp)
			r = MulDxsFp12(r, line)
		}
	}

	r = InvUniFp12(r)
	Y = NegFp2(Y)

	r, X, Y, Z = FinalAdjustment(r, X, Y, Z, q.X, q.Y, xp, yp)
	_ = X
	_ = Y
	_ = Z

	r, err := HardPart(r)
	if err != nil {
		return Fp12Zero, err
	}

	logger.Debugw("pairing evaluated")
	return r, nil
}
