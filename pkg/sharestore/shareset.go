package sharestore

import (
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/fxamacker/cbor/v2"
	"github.com/mr-shifu/shamir-lib/core/hash"
	"github.com/mr-shifu/shamir-lib/core/math/arith"
	"github.com/mr-shifu/shamir-lib/core/math/polynomial"
)

// ShareSet bundles a group of shares with the field they live in, enough to
// reconstruct the secret they encode.
type ShareSet struct {
	modulus *arith.Modulus
	shares  []polynomial.Share
}

type rawShare struct {
	Index []byte
	Value []byte
}

type rawShareSet struct {
	Modulus []byte
	Shares  []rawShare
}

func NewShareSet(modulus *arith.Modulus, shares []polynomial.Share) *ShareSet {
	return &ShareSet{
		modulus: modulus,
		shares:  shares,
	}
}

// NewShareSetFromPoints reduces raw (index, value) integer pairs into the
// field. Both slices must have the same length.
func NewShareSetFromPoints(modulus *arith.Modulus, indices, values []*big.Int) (*ShareSet, error) {
	if len(indices) != len(values) {
		return nil, ErrLengthMismatch
	}
	shares := make([]polynomial.Share, len(indices))
	for i := range indices {
		shares[i] = polynomial.NewShare(modulus, indices[i], values[i])
	}
	return NewShareSet(modulus, shares), nil
}

func (ss *ShareSet) Modulus() *arith.Modulus {
	return ss.modulus
}

// Shares returns a copy of the underlying share slice.
func (ss *ShareSet) Shares() []polynomial.Share {
	shares := make([]polynomial.Share, len(ss.shares))
	copy(shares, ss.shares)
	return shares
}

// Reconstruct recovers the secret encoded by the share set.
func (ss *ShareSet) Reconstruct() (*saferith.Nat, error) {
	return polynomial.Reconstruct(ss.modulus, ss.shares)
}

// Interpolate evaluates the share set's hidden polynomial at x.
func (ss *ShareSet) Interpolate(x *saferith.Nat) (*saferith.Nat, error) {
	return polynomial.Interpolate(ss.modulus, x, ss.shares)
}

// Bytes returns the byte representation of the share set.
func (ss *ShareSet) Bytes() ([]byte, error) {
	raw := rawShareSet{
		Modulus: ss.modulus.Bytes(),
		Shares:  make([]rawShare, len(ss.shares)),
	}
	for i, share := range ss.shares {
		raw.Shares[i] = rawShare{
			Index: share.Index.Bytes(),
			Value: share.Value.Bytes(),
		}
	}
	return cbor.Marshal(raw)
}

// FromBytes restores a share set serialized by Bytes.
func FromBytes(data []byte) (*ShareSet, error) {
	raw := rawShareSet{}
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	modulus, err := arith.ModulusFromBytes(raw.Modulus)
	if err != nil {
		return nil, err
	}
	shares := make([]polynomial.Share, len(raw.Shares))
	for i, share := range raw.Shares {
		shares[i] = polynomial.Share{
			Index: new(saferith.Nat).SetBytes(share.Index),
			Value: new(saferith.Nat).SetBytes(share.Value),
		}
	}
	return NewShareSet(modulus, shares), nil
}

// SKI returns the serialized key identifier of the share set, the blake3
// digest of its modulus and shares.
func (ss *ShareSet) SKI() []byte {
	h := hash.New()
	if err := h.WriteAny(ss.modulus.Bytes()); err != nil {
		return nil
	}
	for _, share := range ss.shares {
		if err := h.WriteAny(share.Index, share.Value); err != nil {
			return nil
		}
	}
	return h.Sum()
}
