// prime.go - Generate safe primes and their generators
//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
//
// This code is largely simplified copy of crypto/rand/util.go; and thus, this file is licensed
// under the same terms as golang.

package srp

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// Rounds of Miller-Rabin for primality checks.
const primeRounds = 20

// First 100 primes; generator candidates.
var simplePrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61,
	67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137,
	139, 149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211,
	223, 227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283,
	293, 307, 311, 313, 317, 331, 337, 347, 349, 353, 359, 367, 373, 379,
	383, 389, 397, 401, 409, 419, 421, 431, 433, 439, 443, 449, 457, 461,
	463, 467, 479, 487, 491, 499, 503, 509, 521, 523, 541,
}

// NewPrimeField makes a new group where N is a 'nbits' long safe prime
// and g the smallest small prime that generates it.
// NB: Generating large safe-primes is computationally taxing! It is best done offline.
func NewPrimeField(nbits int) (*Group, error) {
	if nbits < 16 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "bad field size %d", nbits)
	}

	for i := 0; i < 100; i++ {
		p, err := safePrime(nbits)
		if err != nil {
			return nil, err
		}

		for _, g0 := range simplePrimes {
			g := big.NewInt(g0)
			if g.Cmp(p) >= 0 {
				break
			}
			if IsGenerator(g, p) {
				return &Group{
					Name: fmt.Sprintf("generated-%d", nbits),
					Bits: nbits,
					N:    p,
					G:    g,
				}, nil
			}
		}
	}
	return nil, errors.Wrap(ErrInvalidConfiguration, "can't find generator after 100 tries")
}

// safePrime generates a safe prime; i.e., a prime 'p' such that (p-1)/2 is also prime.
func safePrime(bits int) (*big.Int, error) {
	p := new(big.Int)
	for {
		q, err := rand.Prime(rand.Reader, bits-1)
		if err != nil {
			return nil, err
		}

		// 2q+1
		p.Lsh(q, 1)
		p.Add(p, one)
		if p.BitLen() == bits && p.ProbablyPrime(primeRounds) {
			return p, nil
		}
	}
}

func isSafePrime(p *big.Int) bool {
	if !p.ProbablyPrime(primeRounds) {
		return false
	}
	q := big.NewInt(0).Rsh(p, 1)
	return q.ProbablyPrime(primeRounds)
}

// IsGenerator returns true if g is a generator for safe prime p
//
// From Cryptography Theory & Practive, Stinson and Paterson (Th. 6.8 pp 196):
//
//	If p > 2 is a prime and g is in Zp*, then
//	g is a primitive element modulo p iff g ^ (p-1)/q != 1 (mod p)
//	for all primes q such that q divides (p-1).
//
// For a safe prime p = 2q+1 the factors of p-1 are {2, q}, so the check
// comes down to g^2 != 1 and g^q != 1 (mod p).
func IsGenerator(g, p *big.Int) bool {
	if g.Cmp(one) <= 0 || g.Cmp(p) >= 0 {
		return false
	}

	q := big.NewInt(0).Rsh(p, 1) // q = (p-1)/2

	if !expNotOne(g, big.NewInt(2), p) {
		return false
	}
	return expNotOne(g, q, p)
}

func expNotOne(g, x, p *big.Int) bool {
	z := big.NewInt(0).Exp(g, x, p)
	return z.Cmp(one) != 0
}
