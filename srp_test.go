// self test for srp
//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp

import (
	"crypto"
	"crypto/subtle"
	"fmt"
	"math/big"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/require"
)

type userdb[T any] struct {
	e *Engine[T]
	u map[string]string
}

func newUserDB[T any](e *Engine[T], user, pass []byte) (*userdb[T], error) {
	v, err := e.NewVerifier(user, pass)
	if err != nil {
		return nil, err
	}

	ih, vh := v.Encode()

	db := &userdb[T]{
		e: e,
		u: make(map[string]string),
	}

	db.u[ih] = vh

	return db, nil
}

// simulated user lookup
func (db *userdb[T]) lookup(ih string) (bool, string) {
	u, ok := db.u[ih]
	return ok, u
}

func (db *userdb[T]) verify(t *testing.T, user, pass []byte, goodPw bool) {
	require := require.New(t)

	e := db.e

	// Start an SRP Client instance
	c, err := e.NewClient(user, pass)
	require.NoError(err, "NewClient")

	// client --> sends <I, A> to server
	I, A := c.Credentials()

	// Using the identity, lookup the user-db and fetch the encoded verifier.
	ok, vs := db.lookup(fmt.Sprintf("%x", I))
	require.True(ok, "can't find user in db")

	v, err := DecodeVerifier(vs)
	require.NoError(err, "DecodeVerifier")

	// create a SRP server instance using the verifier and public key
	srv, err := e.NewServer(v, A)
	require.NoError(err, "NewServer")

	// Server --> sends <s, B> to client
	salt, B := srv.Credentials()

	// Client generates its evidence and sends it to the server
	M1, err := c.Generate(salt, B)
	require.NoError(err, "Client.Generate")

	// Server validates the evidence and creates its own proof of having
	// derived the same secret.
	M2, err := srv.ClientOk(M1)
	if !goodPw {
		require.ErrorIs(err, ErrEvidenceMismatch, "server: validated bad password")
		require.Nil(srv.RawKey())
		return
	}
	require.NoError(err, "server: bad client proof")

	// finally, the client should verify the server's proof
	require.True(c.ServerOk(M2), "client: bad server proof")

	// both client and server are authenticated. Now, we generate a
	// mutual secret -- which should be identical
	kc := c.RawKey()
	ks := srv.RawKey()

	require.NotEmpty(kc)
	require.Equal(1, subtle.ConstantTimeCompare(kc, ks), "key mismatch;\nclient %x, server %x", kc, ks)
}

func TestSRP(t *testing.T) {
	var user = []byte("user00")
	var goodpass = []byte("secretpassword")
	var badpass = []byte("badpassword")

	bits := []int{1024, 1536, 2048, 3072, 4096}
	if !testing.Short() {
		bits = append(bits, 6144, 8192)
	}

	for _, p := range bits {
		t.Run(fmt.Sprintf("big-%d", p), func(t *testing.T) {
			grp, err := FindGroup(p)
			require.NoError(t, err)

			cfg, err := NewBigConfig(grp, crypto.SHA256)
			require.NoError(t, err)
			e, err := New(cfg)
			require.NoError(t, err)

			db, err := newUserDB[*big.Int](e, user, goodpass)
			require.NoError(t, err)

			db.verify(t, user, goodpass, true)
			db.verify(t, user, badpass, false)
		})
	}

	for _, p := range []int{1024, 2048} {
		t.Run(fmt.Sprintf("nat-%d", p), func(t *testing.T) {
			grp, err := FindGroup(p)
			require.NoError(t, err)

			cfg, err := NewNatConfig(grp, 0)
			require.NoError(t, err)
			e, err := New(cfg)
			require.NoError(t, err)

			db, err := newUserDB[*saferith.Nat](e, user, goodpass)
			require.NoError(t, err)

			db.verify(t, user, goodpass, true)
			db.verify(t, user, badpass, false)
		})
	}
}

func mustDecode(s string) []byte {
	n := len(s)
	b := make([]byte, 0, n)
	var z, x byte
	var shift uint = 4
	for i := 0; i < n; i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			x = c - '0'
		case 'a' <= c && c <= 'f':
			x = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			x = c - 'A' + 10
		case c == ' ' || c == '\n' || c == '\t':
			continue
		default:
			panic(fmt.Sprintf("invalid hex char %c in %s", c, s))
		}

		if shift == 0 {
			z |= x
			b = append(b, z)
			z = 0
			shift = 4
		} else {
			z |= (x << shift)
			shift -= 4
		}
	}
	if shift != 4 {
		b = append(b, z)
	}
	return b
}
