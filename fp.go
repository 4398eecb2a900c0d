package pairing

import (
	"math/big"
	"math/bits"
)

// Fp is an element of the base field, always held in Montgomery form
// (xR mod p, R = 2^256) across the tower. Limbs are little-endian:
// Fp[0] is the least significant 64-bit word.
//
// This is the in-process replacement for the external big-integer /
// generic-Fp collaborator spec.md's external-interfaces section describes:
// rather than plugging into an OpenSSL BIGNUM and a curve field_mul hook,
// the CIOS Montgomery multiplication below plays that role directly.
type Fp [4]uint64

// pLimbs is the BN prime p, little-endian 64-bit limbs.
var pLimbs = Fp{
	0xa700000000000013,
	0x6121000000000013,
	0xba344d8000000008,
	0x2523648240000001,
}

// rLimbs is the group order r, little-endian 64-bit limbs (not a residue
// modulo p; used only for scalar-order checks, never Montgomery-encoded).
var rLimbs = Fp{
	0xa10000000000000d,
	0xff9f800000000010,
	0xba344d8000000007,
	0x2523648240000001,
}

// r2Limbs is R^2 mod p, used to Montgomery-encode a plain residue via a
// single CIOS multiplication: encode(a) = montMul(a, r2Limbs).
var r2Limbs = Fp{
	0xb3e886745370473d,
	0x55efbf6e8c1cc3f1,
	0x281e3a1b7f86954f,
	0x1b0a32fdf6403a3d,
}

// fpOne is the plain (non-Montgomery) residue 1, used to decode:
// decode(a) = montMul(a, fpOne).
var fpOne = Fp{1, 0, 0, 0}

// np0 = -p^-1 mod 2^64, the CIOS reduction constant.
const np0 uint64 = 0x08435e50d79435e5

// FpZero and FpOne are the Montgomery-encoded additive and multiplicative
// identities. FpOne is exported since many callers need "the Montgomery
// encoding of 1" per the §8 testable-properties wording. FpOne is written
// as the literal R mod p (rather than computed via EncodeFp in an init
// function) so that other package-level var initializers depending on it
// — Fp2One, Fp6One, Fp12One and friends — see its real value: Go
// initializes package-level vars by dependency order before any init()
// runs, so a value only assigned inside init() would still be the zero
// Fp{} to every var initializer that copies it by value.
var (
	FpZero = Fp{0, 0, 0, 0}
	FpOne  = Fp{
		0x15ffffffffffff8e,
		0xb939ffffffffff8a,
		0xa2c62effffffffcd,
		0x212ba4f27ffffff5,
	}
)

// mac computes t + a*b + c as a 128-bit value and returns (lo, hi). This is
// the textbook multiply-accumulate-with-carry primitive CIOS Montgomery
// multiplication is built from; ported to pure Go math/bits the way
// other_examples' field_mul.go and gfp2.go use bits.Mul64/bits.Add64, in
// place of the assembly-backed montmul primitives drand/bls12-381 declares
// in arithmetic_decl.go (whose .s files are not available to vendor here).
func mac(t, a, b, c uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	var carry uint64
	lo, carry = bits.Add64(lo, t, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	lo, carry = bits.Add64(lo, c, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return lo, hi
}

// montMul computes a*b*R^-1 mod p via the Coarsely Integrated Operand
// Scanning (CIOS) method (Acar & Koç), four limbs wide.
func montMul(a, b Fp) Fp {
	var t [6]uint64 // t[0..3] plus two carry-propagation limbs

	for i := 0; i < 4; i++ {
		var c uint64
		for j := 0; j < 4; j++ {
			t[j], c = mac(t[j], a[j], b[i], c)
		}
		sum, carry := bits.Add64(t[4], c, 0)
		t[4] = sum
		t[5] = carry

		m := t[0] * np0
		_, c = mac(t[0], m, pLimbs[0], 0)
		for j := 1; j < 4; j++ {
			t[j-1], c = mac(t[j], m, pLimbs[j], c)
		}
		sum2, carry2 := bits.Add64(t[4], c, 0)
		t[3] = sum2
		t[4] = t[5] + carry2
	}

	var r Fp
	copy(r[:], t[:4])
	if !fpLess(r, pLimbs) {
		r = fpSubLimbs(r, pLimbs)
	}
	return r
}

// fpLess reports whether a < b as unsigned 256-bit integers.
func fpLess(a, b Fp) bool {
	for i := 3; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// fpAddLimbs adds a and b as unsigned 256-bit integers, ignoring overflow
// beyond 256 bits (callers only ever use it on already-reduced residues
// summing to less than 2p).
func fpAddLimbs(a, b Fp) Fp {
	var r Fp
	var carry uint64
	for i := 0; i < 4; i++ {
		r[i], carry = bits.Add64(a[i], b[i], carry)
	}
	return r
}

// fpSubLimbs subtracts b from a as unsigned 256-bit integers, assuming
// a >= b.
func fpSubLimbs(a, b Fp) Fp {
	var r Fp
	var borrow uint64
	for i := 0; i < 4; i++ {
		r[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	return r
}

// AddFp returns a+b mod p. Inputs and output are Montgomery form, but the
// operation is representation-agnostic (it never multiplies).
func AddFp(a, b Fp) Fp {
	r := fpAddLimbs(a, b)
	if !fpLess(r, pLimbs) {
		r = fpSubLimbs(r, pLimbs)
	}
	return r
}

// SubFp returns a-b mod p.
func SubFp(a, b Fp) Fp {
	if fpLess(a, b) {
		return fpSubLimbs(fpAddLimbs(a, pLimbs), b)
	}
	return fpSubLimbs(a, b)
}

// NegFp returns -a mod p.
func NegFp(a Fp) Fp {
	if a == FpZero {
		return FpZero
	}
	return fpSubLimbs(pLimbs, a)
}

// MulFp returns a*b in Montgomery form: the generic field-multiplication
// hook spec.md's external-interfaces section asks the curve library to
// supply.
func MulFp(a, b Fp) Fp {
	return montMul(a, b)
}

// SqrFp returns a^2 in Montgomery form.
func SqrFp(a Fp) Fp {
	return montMul(a, a)
}

// halveFp computes a/2 mod p, adding p before the shift when a is odd —
// the same trick op_dbl in the Miller loop uses for A = X*Y/2 and
// G = (B+F)/2.
func halveFp(a Fp) Fp {
	if a[0]&1 == 1 {
		a = fpAddLimbs(a, pLimbs)
	}
	var r Fp
	carry := uint64(0)
	for i := 3; i >= 0; i-- {
		r[i] = (a[i] >> 1) | (carry << 63)
		carry = a[i] & 1
	}
	return r
}

// EncodeFp converts a plain residue in [0, p) into Montgomery form.
func EncodeFp(a Fp) Fp {
	return montMul(a, r2Limbs)
}

// EncodeFpFromBigInt reduces an arbitrary (possibly negative, possibly
// out-of-range) big.Int mod p and returns the Montgomery-encoded result.
// Grounded on the same decode/encode boundary InvertFp crosses, for
// callers (the CLI) that only have plain big.Int-shaped input.
func EncodeFpFromBigInt(v *big.Int) Fp {
	r := new(big.Int).Mod(v, pLimbs.toBigInt())
	return EncodeFp(fpFromBigInt(r))
}

// DecodeFp converts a Montgomery-form element back to a plain residue.
func DecodeFp(a Fp) Fp {
	return montMul(a, fpOne)
}

// InvertFp returns a^-1 mod p, in Montgomery form, or ErrZeroInverse if a
// is zero. Per spec.md 4.B this is a decode-invert-encode dance: Go has no
// native Montgomery-domain modular inverse, so the middle step borrows
// math/big's extended-Euclidean ModInverse, matching how the C source
// borrows OpenSSL's BN_mod_inverse for exactly the same reason.
func InvertFp(a Fp) (Fp, error) {
	if a == FpZero {
		return FpZero, ErrZeroInverse
	}
	plain := DecodeFp(a)
	bi := plain.toBigInt()
	p := pLimbs.toBigInt()
	inv := new(big.Int).ModInverse(bi, p)
	if inv == nil {
		return FpZero, ErrZeroInverse
	}
	return EncodeFp(fpFromBigInt(inv)), nil
}

func (a Fp) toBigInt() *big.Int {
	buf := make([]byte, 32)
	for i := 0; i < 4; i++ {
		putUint64BE(buf[24-8*i:32-8*i], a[i])
	}
	return new(big.Int).SetBytes(buf)
}

func putUint64BE(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

func fpFromBigInt(v *big.Int) Fp {
	buf := make([]byte, 32)
	bs := v.Bytes()
	copy(buf[32-len(bs):], bs)
	var r Fp
	for i := 0; i < 4; i++ {
		r[i] = beUint64(buf[24-8*i : 32-8*i])
	}
	return r
}

func beUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

// fpFromHex parses a big-endian hex string (no 0x prefix) into a plain
// (non-Montgomery) Fp residue. Panics on malformed input: callers only ever
// use it on the fixed compile-time curve-constant literals, the same
// contract the teacher's fromHex helper in the original bn128.go documented.
func fpFromHex(s string) Fp {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("pairing: malformed hex constant: " + s)
	}
	return fpFromBigInt(v)
}

// EqualFp reports whether a and b are the same residue (in whatever
// representation both happen to share).
func EqualFp(a, b Fp) bool {
	return a == b
}

// IsZeroFp reports whether a is the additive identity.
func IsZeroFp(a Fp) bool {
	return a == FpZero
}
