//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp

import (
	"crypto"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Params are the inputs to NewConfig. N and G are big-endian.
type Params[T any] struct {
	Arith  Arith[T]
	N      []byte
	G      []byte
	Digest DigestFunc
	HMAC   HMACFunc

	// Private value generators for a and b. Use RandomValues outside
	// of tests.
	ClientValues PrivateValueGenerator[T]
	ServerValues PrivateValueGenerator[T]

	// PrivateKey derives x; nil means RFC5054.
	PrivateKey PrivateKeyFunc

	// Logger receives debug events that carry no secrets; nil
	// discards them.
	Logger logrus.FieldLogger
}

// Config is an immutable, validated SRP parameter set. It is safe to
// share between sessions and goroutines.
type Config[T any] struct {
	ar     Arith[T]
	n      T
	g      T
	nbits  int
	digest DigestFunc
	hmac   HMACFunc
	cvals  PrivateValueGenerator[T]
	svals  PrivateValueGenerator[T]
	xfunc  PrivateKeyFunc
	log    logrus.FieldLogger
}

// NewConfig validates p and returns the corresponding Config.
func NewConfig[T any](p Params[T]) (*Config[T], error) {
	switch {
	case p.Arith == nil:
		return nil, errors.Wrap(ErrInvalidConfiguration, "no arithmetic backend")
	case p.Digest == nil:
		return nil, errors.Wrap(ErrInvalidConfiguration, "no digest function")
	case p.HMAC == nil:
		return nil, errors.Wrap(ErrInvalidConfiguration, "no hmac function")
	case p.ClientValues == nil || p.ServerValues == nil:
		return nil, errors.Wrap(ErrInvalidConfiguration, "no private value generator")
	}

	ar := p.Arith
	N, err := ar.SetBytes(p.N)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "N: "+err.Error())
	}
	g, err := ar.SetBytes(p.G)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "g: "+err.Error())
	}

	nb := ar.Bytes(N)
	if nb[len(nb)-1]&1 == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "N must be odd")
	}
	if ar.Cmp(g, ar.Int64(1)) <= 0 || ar.Cmp(g, N) >= 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "g must be in (1, N)")
	}

	if len(p.Digest(nil)) == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "digest produces no output")
	}

	c := &Config[T]{
		ar:     ar,
		n:      N,
		g:      g,
		nbits:  ar.BitLen(N),
		digest: p.Digest,
		hmac:   p.HMAC,
		cvals:  p.ClientValues,
		svals:  p.ServerValues,
		xfunc:  p.PrivateKey,
		log:    p.Logger,
	}
	if c.xfunc == nil {
		c.xfunc = RFC5054
	}
	if c.log == nil {
		c.log = discardLogger()
	}
	return c, nil
}

// NewBigConfig builds a math/big Config for a catalog or custom group and
// a registered hash, drawing a and b from crypto/rand. A zero hash means
// BLAKE2b-256.
func NewBigConfig(grp *Group, h crypto.Hash) (*Config[*big.Int], error) {
	return newGroupConfig[*big.Int](BigArith{}, grp, h)
}

// NewNatConfig is NewBigConfig for the constant-time saferith backend.
func NewNatConfig(grp *Group, h crypto.Hash) (*Config[*saferith.Nat], error) {
	return newGroupConfig[*saferith.Nat](NatArith{}, grp, h)
}

func newGroupConfig[T any](ar Arith[T], grp *Group, h crypto.Hash) (*Config[T], error) {
	if grp == nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "no group")
	}
	if err := grp.Validate(); err != nil {
		return nil, err
	}
	if h == 0 {
		h = crypto.BLAKE2b_256
	}

	digest, mac, err := NewHash(h)
	if err != nil {
		return nil, err
	}

	return NewConfig(Params[T]{
		Arith:        ar,
		N:            grp.N.Bytes(),
		G:            grp.G.Bytes(),
		Digest:       digest,
		HMAC:         mac,
		ClientValues: RandomValues[T]{},
		ServerValues: RandomValues[T]{},
	})
}

// Arith returns the arithmetic backend.
func (c *Config[T]) Arith() Arith[T] {
	return c.ar
}

// Modulus returns N.
func (c *Config[T]) Modulus() T {
	return c.n
}

// Generator returns g.
func (c *Config[T]) Generator() T {
	return c.g
}

// Bits returns the bit length of N.
func (c *Config[T]) Bits() int {
	return c.nbits
}

// Width returns the padded width of hash inputs, ceil(bits(N)/8).
func (c *Config[T]) Width() int {
	return byteWidth(c.nbits)
}
