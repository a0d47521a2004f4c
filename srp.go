//
// Copyright 2013-2017 Sudhi Herle <sudhi.herle-at-gmail-dot-com>
// License: MIT
//
// Implementation of SRP-6a. It requires a cryptographically strong
// random number generator.
//
// Conventions
// -----------
//   N    A large safe prime (N = 2q+1, where q is prime)
//        All arithmetic is done modulo N.
//   g    A generator modulo N
//   k    Multiplier parameter (k = H(N, g) in SRP-6a, k = 3 for legacy SRP-6)
//   s    User's salt
//   I    Username
//   p    Cleartext Password
//   H()  One-way hash function
//   ^    (Modular) Exponentiation
//   u    Random scrambling parameter
//   a,b  Secret ephemeral values
//   A,B  Public ephemeral values
//   x    Private key (derived from p and s)
//   v    Password verifier
//
// The host stores passwords using the following formula:
//
//   s = randomsalt()
//   x = H(s, H(I, ":", p))
//   v = g^x                   (computes password verifier)
//
// The host then keeps {I, s, v} in its password database.
//
// The authentication protocol itself goes as follows:
//
//  Client                       Server
//  --------------               ----------------
//  I, p = < user input >
//  a = random()
//  A = g^a % N
//                 I, A -->
//                               s, v = lookup(I)
//                               b = random()
//                               B = (kv + g^b) % N
//                  <-- s, B
//  u = H(A, B)
//  x = H(s, H(I, ":", p))
//  S = ((B - k (g^x)) ^ (a + ux)) % N
//  M1 = H(A, B, S)
//
//		    M1 -->
//                               u = H(A, B)
//                               S = ((A * v^u) ^ b) % N
//				M1 must be equal to H(A, B, S)
//				M2 = H(A, M1, S)
//		    <-- M2
//  M2 must equal H(A, M1, S)
//  K = H(S)                     K = H(S)
// -----------------------------------------------------------------
// Every integer that goes into H() is left padded with zeros to the byte
// length of N (RFC 5054); so are the evidence messages, per Tom Wu's
// "SRP-6: Improvements and refinements to the Secure Remote Password
// protocol" (2002), table 5, which is also what BouncyCastle computes.
//
// The two parties also employ the following safeguards:
//
//  1. The user will abort if he receives B == 0 (mod N) or u == 0.
//  2. The host will abort if it detects that A == 0 (mod N) or u == 0.
//  3. The user must show his proof of S first. If the server detects that the
//     user's proof is incorrect, it must abort without showing its own proof.
//
// References:
// -----------
// [1] http://srp.stanford.edu/design.html
// [2] RFC 2945, RFC 5054
//

// Package srp implements the SRP-6a password authenticated key exchange.
//
// The Engine is stateless: it is built once from a Config (group, hash,
// HMAC, private value generators) and every protocol step takes and
// returns the session's values explicitly. Engine is generic over the
// big integer type; BigArith (math/big) and NatArith (saferith,
// constant-time) are provided.
//
// Client and Server wrap the Engine for a single session each and keep
// the ephemeral values in between protocol messages.
package srp
