//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// Arith is the arbitrary-precision arithmetic an Engine is built on. T is
// the backend's integer type; values of T are never mutated by an Arith,
// every operation returns a fresh value.
//
// All values are non-negative. ModSub is the only subtraction: the
// protocol only ever subtracts modulo N.
type Arith[T any] interface {
	// SetBytes parses a big-endian byte string. Empty input is
	// ErrInvalidEncoding.
	SetBytes(b []byte) (T, error)

	// Bytes returns the minimal big-endian encoding of x; zero
	// encodes as a single 0x00 byte.
	Bytes(x T) []byte

	Int64(v int64) T
	Add(x, y T) T
	Mul(x, y T) T

	// ModSub returns (x - y) mod m in [0, m).
	ModSub(x, y, m T) T
	Mod(x, m T) T

	// Exp returns x^y mod m.
	Exp(x, y, m T) T

	Cmp(x, y T) int
	BitLen(x T) int
	IsZero(x T) bool

	// Rand returns a uniform value in [0, bound).
	Rand(r io.Reader, bound T) (T, error)
}

// BigArith implements Arith on top of math/big.
type BigArith struct{}

var _ Arith[*big.Int] = BigArith{}

func (BigArith) SetBytes(b []byte) (*big.Int, error) {
	if len(b) == 0 {
		return nil, errors.Wrap(ErrInvalidEncoding, "empty integer")
	}
	return big.NewInt(0).SetBytes(b), nil
}

func (BigArith) Bytes(x *big.Int) []byte {
	b := x.Bytes()
	if len(b) == 0 {
		return []byte{0}
	}
	return b
}

func (BigArith) Int64(v int64) *big.Int {
	return big.NewInt(v)
}

func (BigArith) Add(x, y *big.Int) *big.Int {
	return big.NewInt(0).Add(x, y)
}

func (BigArith) Mul(x, y *big.Int) *big.Int {
	return big.NewInt(0).Mul(x, y)
}

func (BigArith) ModSub(x, y, m *big.Int) *big.Int {
	// big.Int.Mod is Euclidean; the result is never negative.
	z := big.NewInt(0).Sub(x, y)
	return z.Mod(z, m)
}

func (BigArith) Mod(x, m *big.Int) *big.Int {
	return big.NewInt(0).Mod(x, m)
}

func (BigArith) Exp(x, y, m *big.Int) *big.Int {
	return big.NewInt(0).Exp(x, y, m)
}

func (BigArith) Cmp(x, y *big.Int) int {
	return x.Cmp(y)
}

func (BigArith) BitLen(x *big.Int) int {
	return x.BitLen()
}

func (BigArith) IsZero(x *big.Int) bool {
	return x.Sign() == 0
}

func (BigArith) Rand(r io.Reader, bound *big.Int) (*big.Int, error) {
	if bound.Sign() <= 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "random bound must be positive")
	}
	if r == nil {
		r = rand.Reader
	}
	return rand.Int(r, bound)
}
