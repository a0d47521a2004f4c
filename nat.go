//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"
)

// NatArith implements Arith on saferith's constant-time naturals. Modular
// operations run in time independent of the operand values; Cmp, BitLen
// and IsZero are only used on public values by the engine.
type NatArith struct{}

var _ Arith[*saferith.Nat] = NatArith{}

func (NatArith) SetBytes(b []byte) (*saferith.Nat, error) {
	if len(b) == 0 {
		return nil, errors.Wrap(ErrInvalidEncoding, "empty integer")
	}
	return new(saferith.Nat).SetBytes(b), nil
}

// Bytes strips the announced-length padding saferith keeps around.
func (NatArith) Bytes(x *saferith.Nat) []byte {
	return trimZeros(x.Bytes())
}

func (NatArith) Int64(v int64) *saferith.Nat {
	return new(saferith.Nat).SetUint64(uint64(v))
}

func (NatArith) Add(x, y *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Add(x, y, -1)
}

func (NatArith) Mul(x, y *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Mul(x, y, -1)
}

func (NatArith) ModSub(x, y, m *saferith.Nat) *saferith.Nat {
	mod := saferith.ModulusFromNat(m)
	xr := new(saferith.Nat).Mod(x, mod)
	yr := new(saferith.Nat).Mod(y, mod)
	return new(saferith.Nat).ModSub(xr, yr, mod)
}

func (NatArith) Mod(x, m *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Mod(x, saferith.ModulusFromNat(m))
}

func (NatArith) Exp(x, y, m *saferith.Nat) *saferith.Nat {
	mod := saferith.ModulusFromNat(m)
	xr := new(saferith.Nat).Mod(x, mod)
	return new(saferith.Nat).Exp(xr, y, mod)
}

func (NatArith) Cmp(x, y *saferith.Nat) int {
	gt, eq, _ := x.Cmp(y)
	switch {
	case eq == 1:
		return 0
	case gt == 1:
		return 1
	}
	return -1
}

func (NatArith) BitLen(x *saferith.Nat) int {
	return x.TrueLen()
}

func (NatArith) IsZero(x *saferith.Nat) bool {
	return x.EqZero() == 1
}

func (a NatArith) Rand(r io.Reader, bound *saferith.Nat) (*saferith.Nat, error) {
	if a.IsZero(bound) {
		return nil, errors.Wrap(ErrInvalidConfiguration, "random bound must be positive")
	}
	if r == nil {
		r = rand.Reader
	}
	v, err := rand.Int(r, big.NewInt(0).SetBytes(bound.Bytes()))
	if err != nil {
		return nil, err
	}
	return new(saferith.Nat).SetBytes(v.Bytes()), nil
}

// trimZeros strips leading zero bytes, keeping one byte for zero.
func trimZeros(b []byte) []byte {
	i := 0
	for i < len(b)-1 && b[i] == 0 {
		i++
	}
	if len(b) == 0 {
		return []byte{0}
	}
	return b[i:]
}
