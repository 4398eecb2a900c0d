package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	pairing "github.com/zacksfF/go-pairing"
)

func main() {
	app := &cli.App{
		Name:  "atepair",
		Usage: "optimal ate pairing over a 254-bit BN curve",
		Commands: []*cli.Command{
			selftestCommand(),
			pairCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("fatal: %v", err)
		os.Exit(1)
	}
}

func newLogger() *zap.SugaredLogger {
	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

func selftestCommand() *cli.Command {
	return &cli.Command{
		Name:  "selftest",
		Usage: "run the non-degeneracy/identity/bilinearity/scalar-multiplication scenarios and print PASS/FAIL",
		Action: func(cctx *cli.Context) error {
			log := newLogger()
			pairing.SetLogger(log)
			defer log.Sync()

			ctx, err := pairing.NewContext()
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}

			scenarios := []struct {
				name string
				run  func() (bool, error)
			}{
				{"non-degenerate: e(P,Q) != 1", func() (bool, error) {
					r, err := ctx.Pair(ctx.G1Generator(), ctx.G2Generator())
					if err != nil {
						return false, err
					}
					return !r.IsOne(), nil
				}},
				{"identity in G1: e(O,Q) == 1", func() (bool, error) {
					r, err := ctx.Pair(pairing.G1Identity, ctx.G2Generator())
					if err != nil {
						return false, err
					}
					return r.IsOne(), nil
				}},
				{"bilinear in G1: e(2P,Q) == e(P,Q)^2", func() (bool, error) {
					p2, err := pairing.DoubleG1(ctx.G1Generator())
					if err != nil {
						return false, err
					}
					lhs, err := ctx.Pair(p2, ctx.G2Generator())
					if err != nil {
						return false, err
					}
					base, err := ctx.Pair(ctx.G1Generator(), ctx.G2Generator())
					if err != nil {
						return false, err
					}
					rhs := pairing.SqrFp12(base)
					return lhs == rhs, nil
				}},
				{"scalar mult matches repeated doubling", func() (bool, error) {
					two := new(big.Int).SetInt64(2).Bytes()
					p2, err := pairing.ScalarMulG1(ctx.G1Generator(), two)
					if err != nil {
						return false, err
					}
					dbl, err := pairing.DoubleG1(ctx.G1Generator())
					if err != nil {
						return false, err
					}
					return p2 == dbl, nil
				}},
			}

			failed := 0
			for _, sc := range scenarios {
				ok, err := sc.run()
				if err != nil {
					failed++
					color.Red("FAIL  %-50s error: %v", sc.name, err)
					continue
				}
				if ok {
					color.Green("PASS  %-50s", sc.name)
				} else {
					failed++
					color.Red("FAIL  %-50s", sc.name)
				}
			}

			fmt.Printf("\n%d/%d scenarios passed\n", len(scenarios)-failed, len(scenarios))
			if failed > 0 {
				return fmt.Errorf("%d scenario(s) failed", failed)
			}
			return nil
		},
	}
}

// parseFpHex parses a plain (non-Montgomery) big-endian hex residue,
// returning the Montgomery-encoded Fp the rest of the library expects.
func parseFpHex(s string) (pairing.Fp, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 16)
	if !ok {
		return pairing.Fp{}, fmt.Errorf("malformed hex field element: %q", s)
	}
	return pairing.EncodeFpFromBigInt(v), nil
}

// parseFpPairHex parses "a,b" into two Montgomery-encoded Fp values.
func parseFpPairHex(s string) (pairing.Fp, pairing.Fp, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return pairing.Fp{}, pairing.Fp{}, fmt.Errorf("expected \"a,b\", got %q", s)
	}
	a, err := parseFpHex(parts[0])
	if err != nil {
		return pairing.Fp{}, pairing.Fp{}, err
	}
	b, err := parseFpHex(parts[1])
	if err != nil {
		return pairing.Fp{}, pairing.Fp{}, err
	}
	return a, b, nil
}

// parseFp2Hex parses "re,im" into a Montgomery-encoded Fp2.
func parseFp2Hex(s string) (pairing.Fp2, error) {
	a0, a1, err := parseFpPairHex(s)
	if err != nil {
		return pairing.Fp2{}, err
	}
	return pairing.Fp2{A0: a0, A1: a1}, nil
}

func pairCommand() *cli.Command {
	return &cli.Command{
		Name:      "pair",
		Usage:     "evaluate e(P,Q) for a caller-supplied G1 point and G2 point",
		ArgsUsage: "[<hex Px,Py> <hex Qx0,Qx1> <hex Qy0,Qy1>]",
		Action: func(cctx *cli.Context) error {
			log := newLogger()
			pairing.SetLogger(log)
			defer log.Sync()

			ctx, err := pairing.NewContext()
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}

			var p pairing.G1Affine
			var q pairing.G2Affine

			switch cctx.NArg() {
			case 0:
				p, q = ctx.G1Generator(), ctx.G2Generator()
			case 3:
				px, py, err := parseFpPairHex(cctx.Args().Get(0))
				if err != nil {
					return fmt.Errorf("parse P: %w", err)
				}
				qx, err := parseFp2Hex(cctx.Args().Get(1))
				if err != nil {
					return fmt.Errorf("parse Qx: %w", err)
				}
				qy, err := parseFp2Hex(cctx.Args().Get(2))
				if err != nil {
					return fmt.Errorf("parse Qy: %w", err)
				}
				p = pairing.G1Affine{X: px, Y: py}
				q = pairing.G2Affine{X: qx, Y: qy}
			default:
				return fmt.Errorf("expected 0 or 3 arguments, got %d: %s", cctx.NArg(), cctx.Command.ArgsUsage)
			}

			if !p.OnCurve() {
				return fmt.Errorf("pair: P is not on the curve")
			}
			if !q.OnCurve() {
				return fmt.Errorf("pair: Q is not on the twist")
			}

			r, err := ctx.Pair(p, q)
			if err != nil {
				return fmt.Errorf("pair: %w", err)
			}

			fmt.Println("e(P,Q) [Montgomery-decoded Fp12 coefficients]:")
			coeffs := [][2]pairing.Fp{
				{pairing.DecodeFp(r.C0.B0.A0), pairing.DecodeFp(r.C0.B0.A1)},
				{pairing.DecodeFp(r.C0.B1.A0), pairing.DecodeFp(r.C0.B1.A1)},
				{pairing.DecodeFp(r.C0.B2.A0), pairing.DecodeFp(r.C0.B2.A1)},
				{pairing.DecodeFp(r.C1.B0.A0), pairing.DecodeFp(r.C1.B0.A1)},
				{pairing.DecodeFp(r.C1.B1.A0), pairing.DecodeFp(r.C1.B1.A1)},
				{pairing.DecodeFp(r.C1.B2.A0), pairing.DecodeFp(r.C1.B2.A1)},
			}
			for i, c := range coeffs {
				fmt.Printf("  [%d] %x %x\n", i, c[0], c[1])
			}
			return nil
		},
	}
}
