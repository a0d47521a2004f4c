//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp

import (
	"crypto"
	"crypto/hmac"
	"fmt"
	"hash"

	"github.com/pkg/errors"

	// stdlib has an enum for these; the x/crypto packages register
	// themselves against it.
	_ "golang.org/x/crypto/blake2b"
	_ "golang.org/x/crypto/sha3"
)

// DigestFunc is a one-way hash with a fixed output length.
type DigestFunc func(msg []byte) []byte

// HMACFunc is a keyed hash with a fixed output length.
type HMACFunc func(key, msg []byte) []byte

// HashFuncs builds the digest and HMAC pair for a hash constructor.
func HashFuncs(h func() hash.Hash) (DigestFunc, HMACFunc) {
	digest := func(msg []byte) []byte {
		d := h()
		d.Write(msg)
		return d.Sum(nil)
	}
	mac := func(key, msg []byte) []byte {
		m := hmac.New(h, key)
		m.Write(msg)
		return m.Sum(nil)
	}
	return digest, mac
}

// NewHash returns the digest and HMAC pair for any hash registered with
// package crypto. BLAKE2b and SHA-3 are always available.
func NewHash(h crypto.Hash) (DigestFunc, HMACFunc, error) {
	if !h.Available() {
		return nil, nil, errors.Wrap(ErrInvalidConfiguration, fmt.Sprintf("hash %d unavailable", int(h)))
	}
	d, m := HashFuncs(h.New)
	return d, m, nil
}

// Pad left-pads b with zeros to n bytes. b is returned as is when it is
// already n bytes or longer.
func Pad(b []byte, n int) []byte {
	if len(b) >= n {
		return b
	}

	p := make([]byte, n)
	copy(p[n-len(b):], b)
	return p
}

// byteWidth is ceil(bits/8).
func byteWidth(bits int) int {
	return (bits + 7) / 8
}

// hashInts pads every operand to the width of N, hashes the
// concatenation and reduces the digest mod N.
func hashInts[T any](ar Arith[T], digest DigestFunc, N T, vals ...T) T {
	w := byteWidth(ar.BitLen(N))
	buf := make([]byte, 0, w*len(vals))
	for _, v := range vals {
		buf = append(buf, Pad(ar.Bytes(v), w)...)
	}

	h := digest(buf)
	if len(h) == 0 {
		// A digest that returns nothing can't be interpreted as an
		// integer; treat it as zero and let the callers reject it.
		return ar.Int64(0)
	}

	i, _ := ar.SetBytes(h)
	return ar.Mod(i, N)
}

// hashPair is H(pad(n1) | pad(n2)) mod N.
func hashPair[T any](ar Arith[T], digest DigestFunc, N, n1, n2 T) T {
	return hashInts(ar, digest, N, n1, n2)
}

// hashTriplet is H(pad(n1) | pad(n2) | pad(n3)) mod N.
func hashTriplet[T any](ar Arith[T], digest DigestFunc, N, n1, n2, n3 T) T {
	return hashInts(ar, digest, N, n1, n2, n3)
}
