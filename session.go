//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp

import (
	"github.com/pkg/errors"
)

// Client represents one SRP client session. It holds the ephemeral values
// the Engine leaves to its caller and walks them through the protocol in
// order. A Client cannot be reused and is NOT safe for concurrent use.
type Client[T any] struct {
	e *Engine[T]
	i []byte
	p []byte

	a  T
	xA T

	salt  []byte
	proof *ClientProof[T]
	xK    []byte
	used  bool
	ok    bool
}

// NewClient starts a client session for identity I and password p: it
// draws a and computes A. The salt isn't known until the server answers.
func (e *Engine[T]) NewClient(I, p []byte) (*Client[T], error) {
	a, err := e.privateValue(e.c.cvals, "client")
	if err != nil {
		return nil, err
	}

	c := &Client[T]{
		e:  e,
		i:  append([]byte(nil), I...),
		p:  append([]byte(nil), p...),
		a:  a,
		xA: e.ClientPublic(a),
	}
	return c, nil
}

// Credentials returns the identity and public value A to send to the
// server.
func (c *Client[T]) Credentials() ([]byte, T) {
	return c.i, c.xA
}

// Generate validates the server's salt and public value B, computes the
// shared secret and returns the evidence M1 to send to the server.
// NB: errors don't say more than the kind of failure.
func (c *Client[T]) Generate(salt []byte, B T) (T, error) {
	var z T

	if c.used {
		return z, errors.New("srp: client session already used")
	}
	c.used = true

	x, err := c.e.PrivateKey(salt, c.i, c.p)
	if err != nil {
		return z, err
	}

	pr, err := c.e.ClientSecretAndEvidence(c.a, c.xA, x, B)
	if err != nil {
		c.Zero()
		return z, err
	}

	zero(c.p)
	c.p = nil
	c.salt = append([]byte(nil), salt...)
	c.proof = pr
	return pr.M1, nil
}

// ServerOk verifies the server's evidence M2. Only after it succeeds is
// the session key available.
func (c *Client[T]) ServerOk(M2 T) bool {
	if c.proof == nil || c.ok {
		return false
	}

	if !c.e.VerifyServerEvidence(M2, c.proof.M2) {
		c.Zero()
		return false
	}

	c.ok = true
	c.xK = c.e.DigestSessionKey(c.proof.S)
	return true
}

// RawKey returns K = H(pad(S)), or nil if the server hasn't proven
// itself yet.
func (c *Client[T]) RawKey() []byte {
	if !c.ok {
		return nil
	}
	return c.xK
}

// Key returns the session key in the given mode; the HMAC mode is keyed
// by the salt the server sent.
func (c *Client[T]) Key(mode KeyMode) ([]byte, error) {
	if !c.ok {
		return nil, errors.New("srp: client session not authenticated")
	}
	return c.e.SessionKey(c.proof.S, mode, c.salt)
}

// Zero drops every secret the session holds.
func (c *Client[T]) Zero() {
	zero(c.p)
	zero(c.xK)
	c.p = nil
	c.xK = nil
	c.proof = nil
	c.ok = false

	var z T
	c.a = z
}

// Server represents one SRP server session for a stored verifier. It is
// single-use and NOT safe for concurrent use.
type Server[T any] struct {
	e  *Engine[T]
	vf *Verifier

	xA T
	v  T
	b  T
	xB T

	proof  *ServerProof[T]
	xK     []byte
	failed bool
}

// NewServer begins the server side of a session: it checks the client's
// public value A, draws b and computes B.
func (e *Engine[T]) NewServer(vf *Verifier, A T) (*Server[T], error) {
	if vf == nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "no verifier")
	}

	if err := e.checkPublic(A, "A"); err != nil {
		return nil, err
	}

	v, err := e.ParseInt(vf.V)
	if err != nil {
		return nil, err
	}

	si, err := e.ServerStart(v)
	if err != nil {
		return nil, err
	}

	s := &Server[T]{
		e:  e,
		vf: vf,
		xA: A,
		v:  v,
		b:  si.Ephemeral,
		xB: si.Public,
	}
	return s, nil
}

// Credentials returns the salt and public value B to send to the client.
func (s *Server[T]) Credentials() ([]byte, T) {
	return s.vf.Salt, s.xB
}

// ClientOk verifies the client's evidence M1 and returns the server's
// evidence M2. A failed check aborts the session for good: the server
// never produces evidence or a key afterwards.
func (s *Server[T]) ClientOk(M1 T) (T, error) {
	var z T

	if s.failed || s.proof != nil {
		return z, errors.New("srp: server session already used")
	}

	pr, err := s.e.ServerSecretAndVerify(s.xA, s.v, s.b, s.xB, M1)
	if err != nil {
		s.failed = true
		s.b = z
		return z, err
	}

	s.proof = pr
	s.xK = s.e.DigestSessionKey(pr.S)
	return pr.M2, nil
}

// RawKey returns K = H(pad(S)), or nil unless ClientOk succeeded.
func (s *Server[T]) RawKey() []byte {
	if s.proof == nil {
		return nil
	}
	return s.xK
}

// Key returns the session key in the given mode.
func (s *Server[T]) Key(mode KeyMode) ([]byte, error) {
	if s.proof == nil {
		return nil, errors.New("srp: server session not authenticated")
	}
	return s.e.SessionKey(s.proof.S, mode, s.vf.Salt)
}

// Zero drops every secret the session holds.
func (s *Server[T]) Zero() {
	zero(s.xK)
	s.xK = nil
	s.proof = nil
	s.failed = true

	var z T
	s.b = z
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
