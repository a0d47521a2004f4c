//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp

import (
	"crypto/subtle"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// maxPrivateValueAttempts bounds the regeneration loop for a and b. With a
// uniform source the chance of needing a second attempt is ~2^-(bits/2).
const maxPrivateValueAttempts = 64

// Engine performs the SRP-6a computations for one Config. It keeps no
// per-session state: every ephemeral value is passed in and handed back
// to the caller. An Engine is safe for concurrent use.
type Engine[T any] struct {
	c  *Config[T]
	ar Arith[T]
	k  T
}

// ClientInit is the output of ClientStart.
type ClientInit[T any] struct {
	X         T // private key x; never sent
	Ephemeral T // a; never sent
	Public    T // A = g^a; sent to the server
}

// ServerInit is the output of ServerStart.
type ServerInit[T any] struct {
	Ephemeral T // b; never sent
	Public    T // B = kv + g^b; sent to the client
}

// ClientProof is the output of ClientSecretAndEvidence. M1 goes to the
// server; M2 is what the server must answer with.
type ClientProof[T any] struct {
	S  T
	M1 T
	M2 T
}

// ServerProof is the output of a successful ServerSecretAndVerify.
type ServerProof[T any] struct {
	S  T
	M2 T
}

// New creates an engine for c and precomputes k = H(pad(N), pad(g)).
func New[T any](c *Config[T]) (*Engine[T], error) {
	if c == nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "nil config")
	}

	e := &Engine[T]{
		c:  c,
		ar: c.ar,
	}
	e.k = hashPair(e.ar, c.digest, c.n, c.n, c.g)
	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine[T]) Config() *Config[T] {
	return e.c
}

// ParseInt decodes a big-endian integer received from a peer.
func (e *Engine[T]) ParseInt(b []byte) (T, error) {
	return e.ar.SetBytes(b)
}

// Encode returns the minimal big-endian encoding of x.
func (e *Engine[T]) Encode(x T) []byte {
	return e.ar.Bytes(x)
}

// Multiplier returns k = H(pad(N) | pad(g)) mod N.
func (e *Engine[T]) Multiplier() T {
	return e.k
}

// PrivateKey derives x = H(s | H(I | ":" | p)) mod N, or whatever the
// configured PrivateKeyFunc computes.
func (e *Engine[T]) PrivateKey(salt, identity, password []byte) (T, error) {
	var z T

	h, err := e.c.xfunc(e.c.digest, salt, identity, password)
	if err != nil {
		return z, err
	}
	x, err := e.ar.SetBytes(h)
	if err != nil {
		return z, errors.Wrap(ErrInvalidConfiguration, "private key derivation produced no output")
	}
	return e.ar.Mod(x, e.c.n), nil
}

// ComputeVerifier returns the password verifier v = g^x mod N.
func (e *Engine[T]) ComputeVerifier(salt, identity, password []byte) (T, error) {
	x, err := e.PrivateKey(salt, identity, password)
	if err != nil {
		return x, err
	}
	return e.ar.Exp(e.c.g, x, e.c.n), nil
}

// ClientPublic returns A = g^a mod N.
func (e *Engine[T]) ClientPublic(a T) T {
	return e.ar.Exp(e.c.g, a, e.c.n)
}

// ServerPublic returns B = (kv + g^b) mod N.
func (e *Engine[T]) ServerPublic(v, b T) T {
	ar, N := e.ar, e.c.n

	kv := ar.Mul(e.k, v)
	gb := ar.Exp(e.c.g, b, N)
	return ar.Mod(ar.Add(kv, gb), N)
}

// ClientStart generates a fresh a, computes A and derives x for the
// given credentials.
func (e *Engine[T]) ClientStart(salt, identity, password []byte) (*ClientInit[T], error) {
	a, err := e.privateValue(e.c.cvals, "client")
	if err != nil {
		return nil, err
	}

	x, err := e.PrivateKey(salt, identity, password)
	if err != nil {
		return nil, err
	}

	return &ClientInit[T]{
		X:         x,
		Ephemeral: a,
		Public:    e.ClientPublic(a),
	}, nil
}

// ServerStart generates a fresh b and computes B for verifier v.
func (e *Engine[T]) ServerStart(v T) (*ServerInit[T], error) {
	b, err := e.privateValue(e.c.svals, "server")
	if err != nil {
		return nil, err
	}

	return &ServerInit[T]{
		Ephemeral: b,
		Public:    e.ServerPublic(v, b),
	}, nil
}

// Scrambler returns u = H(pad(A) | pad(B)) mod N. A zero u aborts the
// session.
func (e *Engine[T]) Scrambler(A, B T) (T, error) {
	u := hashPair(e.ar, e.c.digest, e.c.n, A, B)
	if e.ar.IsZero(u) {
		e.c.log.Debug("srp: scrambling parameter is zero")
		return u, ErrZeroScramblingParameter
	}
	return u, nil
}

// ClientSecret computes S = (B - k g^x) ^ (a + ux) mod N after checking
// that B is not 0 mod N.
func (e *Engine[T]) ClientSecret(a, A, x, B T) (T, error) {
	ar, N := e.ar, e.c.n

	if err := e.checkPublic(B, "B"); err != nil {
		return B, err
	}

	u, err := e.Scrambler(A, B)
	if err != nil {
		return u, err
	}

	kgx := ar.Mod(ar.Mul(e.k, ar.Exp(e.c.g, x, N)), N)
	base := ar.ModSub(B, kgx, N)
	exp := ar.Add(a, ar.Mul(u, x))
	return ar.Exp(base, exp, N), nil
}

// ServerSecret computes S = (A v^u) ^ b mod N after checking that A is
// not 0 mod N.
func (e *Engine[T]) ServerSecret(A, v, b, B T) (T, error) {
	ar, N := e.ar, e.c.n

	if err := e.checkPublic(A, "A"); err != nil {
		return A, err
	}

	u, err := e.Scrambler(A, B)
	if err != nil {
		return u, err
	}

	avu := ar.Mod(ar.Mul(A, ar.Exp(v, u, N)), N)
	return ar.Exp(avu, b, N), nil
}

// ClientEvidence returns M1 = H(pad(A) | pad(B) | pad(S)) mod N.
func (e *Engine[T]) ClientEvidence(A, B, S T) T {
	return hashTriplet(e.ar, e.c.digest, e.c.n, A, B, S)
}

// serverEvidence is M2 = H(pad(A) | pad(M1) | pad(S)) mod N. It is only
// reachable from ServerSecretAndVerify after M1 checked out, and from the
// client computing what it expects back.
func (e *Engine[T]) serverEvidence(A, M1, S T) T {
	return hashTriplet(e.ar, e.c.digest, e.c.n, A, M1, S)
}

// ClientSecretAndEvidence computes the client's S, its evidence M1 and
// the M2 it expects from the server.
func (e *Engine[T]) ClientSecretAndEvidence(a, A, x, B T) (*ClientProof[T], error) {
	S, err := e.ClientSecret(a, A, x, B)
	if err != nil {
		return nil, err
	}

	M1 := e.ClientEvidence(A, B, S)
	return &ClientProof[T]{
		S:  S,
		M1: M1,
		M2: e.serverEvidence(A, M1, S),
	}, nil
}

// ServerSecretAndVerify computes the server's S, checks the client's
// evidence M1 and only then computes M2. On any failure no evidence is
// produced and the session must be abandoned.
func (e *Engine[T]) ServerSecretAndVerify(A, v, b, B, M1 T) (*ServerProof[T], error) {
	S, err := e.ServerSecret(A, v, b, B)
	if err != nil {
		return nil, err
	}

	want := e.ClientEvidence(A, B, S)
	if !e.equal(want, M1) {
		e.c.log.Debug("srp: client evidence mismatch")
		return nil, errors.Wrap(ErrEvidenceMismatch, "client")
	}

	return &ServerProof[T]{
		S:  S,
		M2: e.serverEvidence(A, M1, S),
	}, nil
}

// VerifyServerEvidence reports whether the server's M2 matches the one the
// client computed. The comparison is constant time.
func (e *Engine[T]) VerifyServerEvidence(M2, expected T) bool {
	return e.equal(M2, expected)
}

// DigestSessionKey returns K = H(pad(S)).
func (e *Engine[T]) DigestSessionKey(S T) []byte {
	return e.c.digest(Pad(e.ar.Bytes(S), e.c.Width()))
}

// HMACSessionKey returns K = HMAC(salt, S).
func (e *Engine[T]) HMACSessionKey(S T, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "hmac session key needs a salt")
	}
	return e.c.hmac(salt, e.ar.Bytes(S)), nil
}

// SessionKey derives K from S in the given mode. salt is only used by
// KeyHMAC.
func (e *Engine[T]) SessionKey(S T, mode KeyMode, salt []byte) ([]byte, error) {
	switch mode {
	case KeyDigest:
		return e.DigestSessionKey(S), nil
	case KeyHMAC:
		return e.HMACSessionKey(S, salt)
	}
	return nil, errors.Wrapf(ErrInvalidConfiguration, "unknown key mode %s", mode)
}

// privateValue draws from gen until the value has at least half as many
// bits as N.
func (e *Engine[T]) privateValue(gen PrivateValueGenerator[T], who string) (T, error) {
	floor := e.c.nbits / 2
	for i := 0; i < maxPrivateValueAttempts; i++ {
		v, err := gen.PrivateValue(e.ar, e.c.n)
		if err != nil {
			return v, err
		}

		bits := e.ar.BitLen(v)
		if bits >= floor {
			return v, nil
		}

		e.c.log.WithFields(logrus.Fields{
			"party": who,
			"bits":  bits,
			"floor": floor,
		}).Debug("srp: private value below entropy floor; regenerating")
	}

	var z T
	return z, errors.Wrapf(ErrWeakPrivateValue, "%s: no usable value after %d attempts", who, maxPrivateValueAttempts)
}

// checkPublic rejects a peer's public value that is 0 mod N.
func (e *Engine[T]) checkPublic(P T, name string) error {
	if e.ar.IsZero(e.ar.Mod(P, e.c.n)) {
		e.c.log.WithField("value", name).Debug("srp: rejecting public value")
		return errors.Wrapf(ErrInvalidPublicValue, "%s mod N == 0", name)
	}
	return nil
}

// equal compares two protocol integers in constant time over their
// padded encodings.
func (e *Engine[T]) equal(x, y T) bool {
	w := e.c.Width()
	xb := Pad(e.ar.Bytes(x), w)
	yb := Pad(e.ar.Bytes(y), w)
	return subtle.ConstantTimeCompare(xb, yb) == 1
}
