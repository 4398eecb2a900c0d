package pairing

// Context holds the G1 and G2 generators in Montgomery form. The base
// field prime, the group order and the Frobenius constants are
// package-level values (pLimbs, rLimbs, gammaConsts), not fields of a
// Context. It has no mutable state once built and is safe for concurrent
// use by multiple goroutines calling Pair.
type Context struct {
	g1Gen G1Affine
	g2Gen G2Affine
}

// NewContext builds a Context, parsing the fixed curve constants and
// Montgomery-encoding the generators. There is nothing to free afterward:
// Go's garbage collector reclaims a Context like any other value, unlike
// the explicit op_init/op_free pairing in the original C source. The
// Frobenius constants are a fixed property of this curve rather than of
// any one Context, so they are populated once at package load (fp2.go's
// init) instead of here.
func NewContext() (_ *Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrConstantParse
		}
	}()

	g1x := EncodeFp(fpFromHex("2523648240000001BA344D80000000086121000000000013A700000000000012"))
	g1y := EncodeFp(fpOne)

	g2x0 := fpFromHex("061A10BB519EB62FEB8D8C7E8C61EDB6A4648BBB4898BF0D91EE4224C803FB2B")
	g2x1 := fpFromHex("0516AAF9BA737833310AA78C5982AA5B1F4D746BAE3784B70D8C34C1E7D54CF3")
	g2y0 := fpFromHex("021897A06BAF93439A90E096698C822329BD0AE6BDBE09BD19F0E07891CD2B9A")
	g2y1 := fpFromHex("0EBB2B0E7C8B15268F6D4456F5F38D37B09006FFD739C9578A2D1AEC6B3ACE9B")

	g2x := Fp2{EncodeFp(g2x0), EncodeFp(g2x1)}
	g2y := Fp2{EncodeFp(g2y0), EncodeFp(g2y1)}

	ctx := &Context{
		g1Gen: G1Affine{X: g1x, Y: g1y},
		g2Gen: G2Affine{X: g2x, Y: g2y},
	}

	logger.Debugw("pairing context initialized")
	return ctx, nil
}

// G1Generator returns the fixed generator of G1.
func (c *Context) G1Generator() G1Affine { return c.g1Gen }

// G2Generator returns the fixed generator of G2.
func (c *Context) G2Generator() G2Affine { return c.g2Gen }
