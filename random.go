//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// PrivateValueGenerator produces candidate ephemeral private values (a or
// b) below N. The engine rejects candidates below the entropy floor and
// asks again, so a generator need not enforce it.
type PrivateValueGenerator[T any] interface {
	PrivateValue(ar Arith[T], N T) (T, error)
}

// RandomValues draws uniform values in [0, N) from a cryptographically
// strong source. A nil Reader means crypto/rand.Reader.
type RandomValues[T any] struct {
	Reader io.Reader
}

func (r RandomValues[T]) PrivateValue(ar Arith[T], N T) (T, error) {
	rd := r.Reader
	if rd == nil {
		rd = rand.Reader
	}
	return ar.Rand(rd, N)
}

// FixedValues replays a fixed list of big-endian values, in order. It
// exists for deterministic tests and must never be used for real
// sessions: reusing a or b breaks the protocol.
type FixedValues[T any] struct {
	mu   sync.Mutex
	vals [][]byte
	next int
}

// NewFixedValues returns a generator that yields vals in order.
func NewFixedValues[T any](vals ...[]byte) *FixedValues[T] {
	return &FixedValues[T]{vals: vals}
}

func (f *FixedValues[T]) PrivateValue(ar Arith[T], N T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.next >= len(f.vals) {
		var z T
		return z, errors.Wrap(ErrInvalidConfiguration, "fixed private values exhausted")
	}

	b := f.vals[f.next]
	f.next++
	return ar.SetBytes(b)
}

// randbytes returns n bytes from the system CSPRNG.
func randbytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, errors.Wrap(err, "srp: random source is broken")
	}
	return b, nil
}
