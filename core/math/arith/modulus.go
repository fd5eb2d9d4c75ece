package arith

import (
	"math/big"

	"github.com/cronokirby/saferith"
)

// Modulus wraps a saferith.Modulus defining the prime field GF(p).
// Every method treats its Nat operands as field elements and returns
// canonical representatives in [0, p).
//
// Primality of p is the caller's responsibility; it is not verified here.
type Modulus struct {
	// represents modulus p
	*saferith.Modulus
	// big.Int mirror of p, kept for signed arithmetic in Reduce and Inverse
	p *big.Int
}

// NewModulus creates a Modulus for the field GF(p).
// The prime is copied; mutating p afterwards does not affect the Modulus.
func NewModulus(p *big.Int) (*Modulus, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 {
		return nil, ErrInvalidModulus
	}
	pCopy := new(big.Int).Set(p)
	return &Modulus{
		Modulus: saferith.ModulusFromBytes(pCopy.Bytes()),
		p:       pCopy,
	}, nil
}

// ModulusFromBytes creates a Modulus from the big-endian encoding of p.
func ModulusFromBytes(data []byte) (*Modulus, error) {
	return NewModulus(new(big.Int).SetBytes(data))
}

// ModulusFromUint64 creates a Modulus for a small prime, mostly useful in tests.
func ModulusFromUint64(p uint64) (*Modulus, error) {
	return NewModulus(new(big.Int).SetUint64(p))
}

// Big returns a copy of p.
func (m *Modulus) Big() *big.Int {
	return new(big.Int).Set(m.p)
}

// Reduce maps an arbitrary integer to its canonical representative in [0, p).
// Negative inputs are handled with Euclidean semantics, so Reduce(-1) = p−1.
func (m *Modulus) Reduce(x *big.Int) *saferith.Nat {
	r := new(big.Int).Mod(x, m.p)
	return new(saferith.Nat).SetBig(r, m.BitLen())
}

// Add returns x + y (mod p).
func (m *Modulus) Add(x, y *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModAdd(x, y, m.Modulus)
}

// Sub returns x − y (mod p).
func (m *Modulus) Sub(x, y *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModSub(x, y, m.Modulus)
}

// Mul returns x ⋅ y (mod p).
func (m *Modulus) Mul(x, y *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModMul(x, y, m.Modulus)
}

// Inverse returns b such that a ⋅ b ≡ 1 (mod p), via the extended Euclidean
// algorithm. Since p is prime this exists for every a ≢ 0 (mod p); the zero
// element yields ErrZeroDivisor.
func (m *Modulus) Inverse(a *saferith.Nat) (*saferith.Nat, error) {
	aBig := new(saferith.Nat).Mod(a, m.Modulus).Big()
	if aBig.Sign() == 0 {
		return nil, ErrZeroDivisor
	}
	s := bezout(aBig, m.p)
	s.Mod(s, m.p)
	return new(saferith.Nat).SetBig(s, m.BitLen()), nil
}

// bezout runs the extended Euclidean algorithm on (a, p) and returns the
// coefficient s of the identity s⋅a + t⋅p = gcd(a, p). The loop accumulates
// the same coefficients as the recursive unwinding (s, t) → (t − ⌊p/a⌋⋅s, s),
// without the O(log p) stack. s may be negative; callers reduce it mod p.
func bezout(a, p *big.Int) *big.Int {
	r0, r1 := new(big.Int).Set(a), new(big.Int).Set(p)
	s0, s1 := big.NewInt(1), big.NewInt(0)
	q, t := new(big.Int), new(big.Int)
	for r1.Sign() != 0 {
		q.Quo(r0, r1)

		t.Mul(q, r1)
		r0.Sub(r0, t)
		r0, r1 = r1, r0

		t.Mul(q, s1)
		s0.Sub(s0, t)
		s0, s1 = s1, s0
	}
	return s0
}
