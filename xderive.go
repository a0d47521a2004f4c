//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp

import (
	"hash"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// PrivateKeyFunc derives the digest the private key x is taken from. The
// engine interprets the result as a big-endian integer and reduces it
// mod N.
type PrivateKeyFunc func(digest DigestFunc, salt, identity, password []byte) ([]byte, error)

// RFC5054 is the standard derivation, x = H(s | H(I | ":" | p)). It is
// what RFC 2945/5054 and BouncyCastle's SRP6Util compute.
func RFC5054(digest DigestFunc, salt, identity, password []byte) ([]byte, error) {
	inner := digest(credential(identity, password))
	return digest(concat(salt, inner)), nil
}

// PBKDF2 stretches I | ":" | p with PBKDF2 before the outer hash:
// x = H(s | PBKDF2(I | ":" | p, s)).
func PBKDF2(h func() hash.Hash, iter, keyLen int) PrivateKeyFunc {
	return func(digest DigestFunc, salt, identity, password []byte) ([]byte, error) {
		if iter <= 0 || keyLen <= 0 {
			return nil, errors.Wrap(ErrInvalidConfiguration, "pbkdf2: bad iteration count or key length")
		}
		k := pbkdf2.Key(credential(identity, password), salt, iter, keyLen, h)
		return digest(concat(salt, k)), nil
	}
}

// Argon2id stretches I | ":" | p with Argon2id before the outer hash.
func Argon2id(time, memory uint32, threads uint8, keyLen uint32) PrivateKeyFunc {
	return func(digest DigestFunc, salt, identity, password []byte) ([]byte, error) {
		if time == 0 || threads == 0 || keyLen == 0 {
			return nil, errors.Wrap(ErrInvalidConfiguration, "argon2id: zero parameter")
		}
		k := argon2.IDKey(credential(identity, password), salt, time, memory, threads, keyLen)
		return digest(concat(salt, k)), nil
	}
}

// Scrypt stretches I | ":" | p with scrypt before the outer hash.
func Scrypt(n, r, p, keyLen int) PrivateKeyFunc {
	return func(digest DigestFunc, salt, identity, password []byte) ([]byte, error) {
		k, err := scrypt.Key(credential(identity, password), salt, n, r, p, keyLen)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidConfiguration, err.Error())
		}
		return digest(concat(salt, k)), nil
	}
}

// credential is I | ":" | p
func credential(identity, password []byte) []byte {
	return concat(identity, []byte(":"), password)
}

func concat(a ...[]byte) []byte {
	n := 0
	for _, z := range a {
		n += len(z)
	}

	b := make([]byte, 0, n)
	for _, z := range a {
		b = append(b, z...)
	}
	return b
}
