package polynomial

import (
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/fxamacker/cbor/v2"
	"github.com/mr-shifu/shamir-lib/core/math/arith"
)

// Polynomial represents f(X) = a₀ + a₁⋅X + … + aₜ⋅Xᵗ over GF(p).
type Polynomial struct {
	modulus      *arith.Modulus
	coefficients []*saferith.Nat
}

type rawPolynomial struct {
	Modulus      []byte
	Coefficients [][]byte
}

// NewPolynomial builds a Polynomial from the given coefficients, constant
// term first. Coefficients are reduced into [0, p); a nil entry is taken as 0.
func NewPolynomial(m *arith.Modulus, coefficients []*big.Int) (*Polynomial, error) {
	if len(coefficients) == 0 {
		return nil, ErrNoCoefficients
	}
	polynomial := &Polynomial{
		modulus:      m,
		coefficients: make([]*saferith.Nat, len(coefficients)),
	}
	for i, c := range coefficients {
		if c == nil {
			c = new(big.Int)
		}
		polynomial.coefficients[i] = m.Reduce(c)
	}
	return polynomial, nil
}

// Evaluate evaluates the polynomial at a given index.
// We use Horner's method: https://en.wikipedia.org/wiki/Horner%27s_method
func (p *Polynomial) Evaluate(index *saferith.Nat) *saferith.Nat {
	if new(saferith.Nat).Mod(index, p.modulus.Modulus).Big().Sign() == 0 {
		panic("attempt to leak secret")
	}

	result := new(saferith.Nat).SetUint64(0)
	// reverse order
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		// bₙ₋₁ = bₙ * x + aₙ₋₁
		result = p.modulus.Add(p.modulus.Mul(result, index), p.coefficients[i])
	}
	return result
}

// Constant returns a copy of the constant coefficient of the polynomial.
func (p *Polynomial) Constant() *saferith.Nat {
	return new(saferith.Nat).SetNat(p.coefficients[0])
}

// Degree is the highest power of the Polynomial.
func (p *Polynomial) Degree() uint32 {
	return uint32(len(p.coefficients)) - 1
}

// Modulus returns the field the polynomial is defined over.
func (p *Polynomial) Modulus() *arith.Modulus {
	return p.modulus
}

func (p *Polynomial) MarshalBinary() ([]byte, error) {
	raw := rawPolynomial{
		Modulus:      p.modulus.Bytes(),
		Coefficients: make([][]byte, len(p.coefficients)),
	}
	for i, c := range p.coefficients {
		raw.Coefficients[i] = c.Bytes()
	}
	return cbor.Marshal(raw)
}

func (p *Polynomial) UnmarshalBinary(data []byte) error {
	raw := rawPolynomial{}
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Coefficients) == 0 {
		return ErrNoCoefficients
	}

	m, err := arith.ModulusFromBytes(raw.Modulus)
	if err != nil {
		return err
	}
	p.modulus = m
	p.coefficients = make([]*saferith.Nat, len(raw.Coefficients))
	for i, c := range raw.Coefficients {
		nat := new(saferith.Nat).SetBytes(c)
		p.coefficients[i] = new(saferith.Nat).Mod(nat, m.Modulus)
	}
	return nil
}
