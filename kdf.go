//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp

import (
	"fmt"
	"hash"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

// KeyMode selects how the session key K is derived from S.
type KeyMode int

const (
	// KeyDigest is K = H(pad(S)).
	KeyDigest KeyMode = iota

	// KeyHMAC is K = HMAC(salt, S).
	KeyHMAC
)

func (m KeyMode) String() string {
	switch m {
	case KeyDigest:
		return "digest"
	case KeyHMAC:
		return "hmac"
	}
	return fmt.Sprintf("KeyMode(%d)", int(m))
}

// ExpandKey derives an n byte subkey from the session key K with
// HKDF-Expand, so that one handshake can key several purposes
// (encryption, MAC, ...) under distinct 'info' labels.
func ExpandKey(h func() hash.Hash, K, info []byte, n int) ([]byte, error) {
	if len(K) == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "empty session key")
	}
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "bad subkey length %d", n)
	}

	out := make([]byte, n)
	if _, err := io.ReadFull(hkdf.Expand(h, K, info), out); err != nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, err.Error())
	}
	return out, nil
}
