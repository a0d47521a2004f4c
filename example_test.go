// Examples of using the SRP library
//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp_test

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	srp "github.com/opencoff/srp6a"
)

func Example() {
	pass := []byte("password string that's too long")
	i := []byte("foouser")

	grp, err := srp.FindGroup(2048)
	if err != nil {
		panic(err)
	}

	cfg, err := srp.NewBigConfig(grp, 0)
	if err != nil {
		panic(err)
	}

	s, err := srp.New(cfg)
	if err != nil {
		panic(err)
	}

	v, err := s.NewVerifier(i, pass)
	if err != nil {
		panic(err)
	}

	// Store ih => vh in durable storage
	ih, vh := v.Encode()
	db := map[string]string{ih: vh}

	c, err := s.NewClient(i, pass)
	if err != nil {
		panic(err)
	}

	// client credentials (identity and public key) to send to server
	I, A := c.Credentials()

	// Now, pretend to lookup the user db using "I" as the key and
	// fetch salt, verifier etc.
	v, err = srp.DecodeVerifier(db[fmt.Sprintf("%x", I)])
	if err != nil {
		panic(err)
	}

	srv, err := s.NewServer(v, A)
	if err != nil {
		panic(err)
	}

	// salt and server public key go back to the client
	salt, B := srv.Credentials()

	// client processes the server creds and generates
	// a mutual authenticator; the authenticator is sent
	// to the server as proof that the client derived its keys.
	M1, err := c.Generate(salt, B)
	if err != nil {
		panic(err)
	}

	// Receive the proof of authentication from client
	M2, err := srv.ClientOk(M1)
	if err != nil {
		panic("client auth failed")
	}

	// Verify the server's proof
	if !c.ServerOk(M2) {
		panic("server auth failed")
	}

	// Now, we have successfully authenticated the client to the
	// server and vice versa.
	kc := c.RawKey()
	ks := srv.RawKey()

	if subtle.ConstantTimeCompare(kc, ks) != 1 {
		panic("Keys are different!")
	}

	// separate keys for separate purposes
	enc, err := srp.ExpandKey(sha256.New, kc, []byte("encryption"), 32)
	if err != nil {
		panic(err)
	}

	fmt.Printf("session key: %d bytes, encryption key: %d bytes\n", len(kc), len(enc))
	// Output: session key: 32 bytes, encryption key: 32 bytes
}

func ExampleNewPrimeField() {
	// NB: Generating large safe-primes is computationally taxing! It is
	// best done offline.
	g, err := srp.NewPrimeField(128)
	if err != nil {
		panic(err)
	}

	fmt.Println(g.Bits, g.Verify() == nil)
	// Output: 128 true
}

func ExampleParseGroups() {
	doc := []byte(`
groups:
  - name: toy
    generator: 5
    prime: "17"
    verify: true
`)

	gs, err := srp.ParseGroups(doc)
	if err != nil {
		panic(err)
	}

	for _, g := range gs {
		fmt.Printf("%s: %d bits, g=%s, N=%s\n", g.Name, g.Bits, g.G, g.N)
	}
	// Output: toy: 5 bits, g=5, N=23
}
