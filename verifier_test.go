//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifierEncode(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	e := newTestEngine(t, testParams[*big.Int](t, BigArith{}))

	v, err := e.NewVerifier([]byte("alice"), []byte("pw"))
	require.NoError(err)
	assert.Len(v.Salt, SaltLength)

	ih, vh := v.Encode()
	assert.Equal(fmt.Sprintf("%x", "alice"), ih)

	d, err := DecodeVerifier(vh)
	require.NoError(err)
	assert.Equal(v, d)

	// fresh salt every time
	w, err := e.NewVerifier([]byte("alice"), []byte("pw"))
	require.NoError(err)
	assert.NotEqual(v.Salt, w.Salt)
	assert.NotEqual(v.V, w.V)

	// same salt, same verifier
	u, err := e.Verifier(v.Salt, v.Identity, []byte("pw"))
	require.NoError(err)
	assert.Equal(v, u)

	x, err := e.ComputeVerifier(v.Salt, v.Identity, []byte("pw"))
	require.NoError(err)
	assert.Equal(e.Encode(x), v.V)
}

func TestDecodeVerifierErrors(t *testing.T) {
	bad := []string{
		"",
		"abcd",
		"abcd:0102",
		"abcd:0102:0304:0506",
		"abcd::0304",
		":0102:0304",
		"abcd:0102:",
		"abcd:zz:0304",
		"abc:0102:0304",
	}

	for _, s := range bad {
		_, err := DecodeVerifier(s)
		assert.ErrorIs(t, err, ErrInvalidEncoding, "%q", s)
	}
}
