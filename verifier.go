//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// SaltLength is the size of salts made by NewVerifier.
const SaltLength = 32

// Verifier is what a server keeps per user in place of the password: the
// identity, the salt and v = g^x mod N.
type Verifier struct {
	Identity []byte
	Salt     []byte
	V        []byte
}

// NewVerifier generates a random salt and the password verifier for user
// I and passphrase p.
func (e *Engine[T]) NewVerifier(I, p []byte) (*Verifier, error) {
	salt, err := randbytes(SaltLength)
	if err != nil {
		return nil, err
	}
	return e.Verifier(salt, I, p)
}

// Verifier computes the verifier record for a caller chosen salt.
func (e *Engine[T]) Verifier(salt, I, p []byte) (*Verifier, error) {
	v, err := e.ComputeVerifier(salt, I, p)
	if err != nil {
		return nil, err
	}

	vf := &Verifier{
		Identity: append([]byte(nil), I...),
		Salt:     append([]byte(nil), salt...),
		V:        e.Encode(v),
	}
	return vf, nil
}

// Encode the verifier into a portable format - returns a tuple
// <Identity, Verifier> as portable strings. The caller can store
// the Verifier against the Identity in non-volatile storage.
func (v *Verifier) Encode() (string, string) {
	var b bytes.Buffer

	ih := hex.EncodeToString(v.Identity)

	b.WriteString(ih)
	b.WriteByte(':')
	b.WriteString(hex.EncodeToString(v.Salt))
	b.WriteByte(':')
	b.WriteString(hex.EncodeToString(v.V))

	return ih, b.String()
}

// DecodeVerifier parses a record previously returned by Encode.
func DecodeVerifier(s string) (*Verifier, error) {
	f := strings.Split(s, ":")
	if len(f) != 3 {
		return nil, errors.Wrapf(ErrInvalidEncoding, "verifier: malformed fields exp 3, saw %d", len(f))
	}

	var dec [3][]byte
	for i, ss := range f {
		b, err := hex.DecodeString(ss)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidEncoding, "verifier: field %d: %s", i, err)
		}
		dec[i] = b
	}

	if len(dec[0]) == 0 || len(dec[1]) == 0 || len(dec[2]) == 0 {
		return nil, errors.Wrap(ErrInvalidEncoding, "verifier: empty field")
	}

	return &Verifier{
		Identity: dec[0],
		Salt:     dec[1],
		V:        dec[2],
	}, nil
}
