package polynomial

import (
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/shamir-lib/core/math/arith"
)

// Share is a single evaluation (index, f(index)) of a secret polynomial,
// held by one participant of the sharing scheme. Both members are canonical
// field elements in [0, p).
type Share struct {
	Index *saferith.Nat
	Value *saferith.Nat
}

// NewShare reduces an (index, value) pair into the field. Negative values,
// as produced by some share generators, are mapped into [0, p).
func NewShare(m *arith.Modulus, index, value *big.Int) Share {
	return Share{
		Index: m.Reduce(index),
		Value: m.Reduce(value),
	}
}

// Lagrange returns the Lagrange basis coefficients at 0 for all indices in the
// interpolation domain, in the same order.
func Lagrange(m *arith.Modulus, indices []*saferith.Nat) ([]*saferith.Nat, error) {
	return LagrangeAt(m, new(saferith.Nat).SetUint64(0), indices)
}

// LagrangeAt returns the Lagrange basis coefficients δᵢ(x) for all indices in
// the interpolation domain, in the same order. The indices must be pairwise
// distinct and nonzero mod p.
func LagrangeAt(m *arith.Modulus, x *saferith.Nat, indices []*saferith.Nat) ([]*saferith.Nat, error) {
	domain, err := canonicalDomain(m, indices)
	if err != nil {
		return nil, err
	}
	xr := new(saferith.Nat).Mod(x, m.Modulus)

	coefficients := make([]*saferith.Nat, len(domain))
	for k, i := range domain {
		coefficients[k], err = basisCoefficient(m, xr, i, domain)
		if err != nil {
			return nil, err
		}
	}
	return coefficients, nil
}

// basisCoefficient returns δᵢ(x) = Π_{j≠i} (x−j)⋅(i−j)⁻¹ (mod p), the value
// at x of the basis polynomial that is 1 at i and 0 at every other index.
// A single-element domain yields the empty product, 1.
//
// The formula is taken from
// https://en.wikipedia.org/wiki/Lagrange_polynomial
func basisCoefficient(m *arith.Modulus, x, i *saferith.Nat, domain []*saferith.Nat) (*saferith.Nat, error) {
	delta := new(saferith.Nat).SetUint64(1)
	for _, j := range domain {
		if i.Eq(j) == 1 {
			continue
		}
		// δᵢ *= (x − j) / (i − j)
		numerator := m.Sub(x, j)
		denominator, err := m.Inverse(m.Sub(i, j))
		if err != nil {
			return nil, err
		}
		delta = m.Mul(delta, m.Mul(numerator, denominator))
	}
	return delta, nil
}

// Interpolate evaluates at x the unique polynomial of degree < len(shares)
// passing through all given shares: Σᵢ fᵢ⋅δᵢ(x) (mod p).
//
// The result does not depend on the order of the shares. Whether the shares
// are enough for the hidden polynomial's degree is not detectable here; with
// too few shares the result is silently wrong.
func Interpolate(m *arith.Modulus, x *saferith.Nat, shares []Share) (*saferith.Nat, error) {
	if len(shares) == 0 {
		return nil, ErrNoShares
	}
	indices := make([]*saferith.Nat, len(shares))
	for k, share := range shares {
		indices[k] = share.Index
	}
	coefficients, err := LagrangeAt(m, x, indices)
	if err != nil {
		return nil, err
	}

	sum := new(saferith.Nat).SetUint64(0)
	for k, share := range shares {
		value := new(saferith.Nat).Mod(share.Value, m.Modulus)
		sum = m.Add(sum, m.Mul(value, coefficients[k]))
	}
	return sum, nil
}

// Reconstruct recovers the secret, the hidden polynomial's constant term,
// by interpolating at 0.
func Reconstruct(m *arith.Modulus, shares []Share) (*saferith.Nat, error) {
	return Interpolate(m, new(saferith.Nat).SetUint64(0), shares)
}

// canonicalDomain reduces all indices mod p and rejects zero and duplicate
// indices. A zero index would coincide with the point the secret hides at;
// a duplicate makes some denominator i − j the zero element.
func canonicalDomain(m *arith.Modulus, indices []*saferith.Nat) ([]*saferith.Nat, error) {
	domain := make([]*saferith.Nat, len(indices))
	seen := make(map[string]struct{}, len(indices))
	for k, i := range indices {
		reduced := new(saferith.Nat).Mod(i, m.Modulus)
		if reduced.Big().Sign() == 0 {
			return nil, ErrZeroIndex
		}
		key := string(reduced.Bytes())
		if _, ok := seen[key]; ok {
			return nil, ErrDuplicateIndex
		}
		seen[key] = struct{}{}
		domain[k] = reduced
	}
	return domain, nil
}
