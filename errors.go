//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//

package srp

import (
	"github.com/pkg/errors"
)

// Error kinds returned by this package. Callers classify failures with
// errors.Is; the wrapped message never carries secret material.
var (
	// ErrInvalidConfiguration is returned when N, g or a required
	// collaborator (arith, digest, hmac, generator) is unusable.
	ErrInvalidConfiguration = errors.New("srp: invalid configuration")

	// ErrInvalidPublicValue is returned when a received A or B is 0 mod N.
	// The session must be restarted with fresh ephemeral values.
	ErrInvalidPublicValue = errors.New("srp: invalid public value")

	// ErrZeroScramblingParameter is returned when u = H(A, B) is zero.
	ErrZeroScramblingParameter = errors.New("srp: zero scrambling parameter")

	// ErrEvidenceMismatch is returned when a peer's evidence message does
	// not match the locally computed one.
	ErrEvidenceMismatch = errors.New("srp: evidence mismatch")

	// ErrInvalidEncoding is returned for malformed integer or record bytes.
	ErrInvalidEncoding = errors.New("srp: invalid encoding")

	// ErrWeakPrivateValue is returned when a private value generator
	// keeps producing values below the entropy floor.
	ErrWeakPrivateValue = errors.New("srp: private value below entropy floor")

	// ErrUnknownGroup is returned when a prime group lookup fails.
	ErrUnknownGroup = errors.New("srp: unknown prime group")
)
