//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp

import (
	"crypto/sha1"
	"math/big"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 5054, Appendix B: 1024 bit group, SHA-1.
var rfc5054 = struct {
	I, P, s, k, x, v, a, b, A, B, u, S string
}{
	I: "alice",
	P: "password123",
	s: "BEB25379 D1A8581E B5A72767 3A2441EE",
	k: "7556AA04 5AEF2CDD 07ABAF0F 665C3E81 8913186F",
	x: "94B7555A ABE9127C C58CCF49 93DB6CF8 4D16C124",
	v: `7E273DE8 696FFC4F 4E337D05 B4B375BE B0DDE156 9E8FA00A 9886D812
	    9BADA1F1 822223CA 1A605B53 0E379BA4 729FDC59 F105B478 7E5186F5
	    C671085A 1447B52A 48CF1970 B4FB6F84 00BBF4CE BFBB1681 52E08AB5
	    EA53D15C 1AFF87B2 B9DA6E04 E058AD51 CC72BFC9 033B564E 26480D78
	    E955A5E2 9E7AB245 DB2BE315 E2099AFB`,
	a: "60975527 035CF2AD 1989806F 0407210B C81EDC04 E2762A56 AFD529DD DA2D4393",
	b: "E487CB59 D31AC550 471E81F0 0F6928E0 1DDA08E9 74A004F4 9E61F5D1 05284D20",
	A: `61D5E490 F6F1B795 47B0704C 436F523D D0E560F0 C64115BB 72557EC4
	    4352E890 3211C046 92272D8B 2D1A5358 A2CF1B6E 0BFCF99F 921530EC
	    8E393561 79EAE45E 42BA92AE ACED8251 71E1E8B9 AF6D9C03 E1327F44
	    BE087EF0 6530E69F 66615261 EEF54073 CA11CF58 58F0EDFD FE15EFEA
	    B349EF5D 76988A36 72FAC47B 0769447B`,
	B: `BD0C6151 2C692C0C B6D041FA 01BB152D 4916A1E7 7AF46AE1 05393011
	    BAF38964 DC46A067 0DD125B9 5A981652 236F99D9 B681CBF8 7837EC99
	    6C6DA044 53728610 D0C6DDB5 8B318885 D7D82C7F 8DEB75CE 7BD4FBAA
	    37089E6F 9C6059F3 88838E7A 00030B33 1EB76840 910440B1 B27AAEAE
	    EB4012B7 D7665238 A8E3FB00 4B117B58`,
	u: "CE38B959 3487DA98 554ED47D 70A7AE5F 462EF019",
	S: `B0DC82BA BCF30674 AE450C02 87745E79 90A3381F 63B387AA F271A10D
	    233861E3 59B48220 F7C4693C 9AE12B0A 6F67809F 0876E2D0 13800D6C
	    41BB59B6 D5979B5C 00A172B4 A2A5903A 0BDCAF8A 709585EB 2AFAFA8F
	    3499B200 210DCC1F 10EB3394 3CD67FC8 8A2F39A4 BE5BEC4E C0A3212D
	    C346D7E4 74B29EDE 8A469FFE CA686E5A`,
}

func newSHA1Engine[T any](t *testing.T, ar Arith[T]) *Engine[T] {
	t.Helper()

	grp, err := FindGroup(1024)
	require.NoError(t, err)

	digest, mac := HashFuncs(sha1.New)
	cfg, err := NewConfig(Params[T]{
		Arith:        ar,
		N:            grp.N.Bytes(),
		G:            grp.G.Bytes(),
		Digest:       digest,
		HMAC:         mac,
		ClientValues: RandomValues[T]{},
		ServerValues: RandomValues[T]{},
	})
	require.NoError(t, err)

	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func testRFC5054Vector[T any](t *testing.T, ar Arith[T]) {
	e := newSHA1Engine(t, ar)
	tv := rfc5054

	hexEq := func(want string, got T, what string) {
		t.Helper()
		assert.Equal(t, mustDecode(want), e.Encode(got), "%s mismatch", what)
	}
	parse := func(s string) T {
		t.Helper()
		v, err := e.ParseInt(mustDecode(s))
		require.NoError(t, err)
		return v
	}

	salt := mustDecode(tv.s)
	I, P := []byte(tv.I), []byte(tv.P)

	hexEq(tv.k, e.Multiplier(), "k")

	x, err := e.PrivateKey(salt, I, P)
	require.NoError(t, err)
	hexEq(tv.x, x, "x")

	v, err := e.ComputeVerifier(salt, I, P)
	require.NoError(t, err)
	hexEq(tv.v, v, "v")

	a, b := parse(tv.a), parse(tv.b)
	A := e.ClientPublic(a)
	hexEq(tv.A, A, "A")

	B := e.ServerPublic(v, b)
	hexEq(tv.B, B, "B")

	u, err := e.Scrambler(A, B)
	require.NoError(t, err)
	hexEq(tv.u, u, "u")

	cp, err := e.ClientSecretAndEvidence(a, A, x, B)
	require.NoError(t, err)
	hexEq(tv.S, cp.S, "client S")

	sp, err := e.ServerSecretAndVerify(A, v, b, B, cp.M1)
	require.NoError(t, err)
	hexEq(tv.S, sp.S, "server S")
	assert.True(t, e.VerifyServerEvidence(sp.M2, cp.M2))

	// Evidence framing, recomputed by hand: every operand padded to
	// the 128 byte width of N.
	w := 128
	pad := func(s string) []byte { return Pad(mustDecode(s), w) }

	h := sha1.New()
	h.Write(pad(tv.A))
	h.Write(pad(tv.B))
	h.Write(pad(tv.S))
	m1 := h.Sum(nil)
	assert.Equal(t, trimZeros(m1), e.Encode(cp.M1))

	h.Reset()
	h.Write(pad(tv.A))
	h.Write(Pad(m1, w))
	h.Write(pad(tv.S))
	assert.Equal(t, trimZeros(h.Sum(nil)), e.Encode(sp.M2))

	k := sha1.Sum(pad(tv.S))
	assert.Equal(t, k[:], e.DigestSessionKey(cp.S))
}

func TestRFC5054VectorBig(t *testing.T) {
	testRFC5054Vector[*big.Int](t, BigArith{})
}

func TestRFC5054VectorNat(t *testing.T) {
	testRFC5054Vector[*saferith.Nat](t, NatArith{})
}
