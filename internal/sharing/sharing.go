// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sharing implements threshold secret sharing over the prime field
// Z/P.
//
// A secret is encoded as the big-endian integer of 0x01||secret, which keeps
// leading zero bytes and lets reconstruction detect garbage. [Split] hides it
// as the constant term of a random polynomial of degree M-1 evaluated at
// x = 1..N. [Reconstruct] recovers the constant term from any M shares by
// Lagrange interpolation at zero.
package sharing

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"sort"
	"strings"
)

const sentinel = 0x01

// Share is one point of the secret polynomial.
type Share struct {
	// Index is zero-based; the evaluation point is Index+1.
	Index     int
	Value     *big.Int
	Modulus   *big.Int
	Threshold int
	Total     int
}

// X returns the evaluation point of the share.
func (s Share) X() *big.Int {
	return big.NewInt(int64(s.Index) + 1)
}

// Split divides secret into total shares, any threshold of which recover it.
// A nil modulus selects [DefaultModulus]. Every call draws fresh coefficients.
func Split(secret []byte, threshold, total int, modulus *big.Int) ([]Share, error) {
	if total < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShareCount, total)
	}
	if threshold < 1 || threshold > total {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidThreshold, threshold, total)
	}
	if modulus == nil {
		modulus = DefaultModulus()
	}
	if err := CheckModulus(modulus); err != nil {
		return nil, err
	}
	if big.NewInt(int64(total)).Cmp(modulus) >= 0 {
		return nil, fmt.Errorf("%w: %d points do not fit the field", ErrInvalidShareCount, total)
	}

	s := encodeSecret(secret)
	if s.Cmp(modulus) >= 0 {
		return nil, fmt.Errorf("%w: %d bytes, at most %d allowed", ErrSecretTooLarge, len(secret), MaxSecretBytes(modulus))
	}

	coeffs, err := randomPolynomial(s, threshold, modulus)
	if err != nil {
		return nil, err
	}

	shares := make([]Share, total)
	for i := range shares {
		share := Share{
			Index:     i,
			Modulus:   new(big.Int).Set(modulus),
			Threshold: threshold,
			Total:     total,
		}
		share.Value = evaluate(coeffs, share.X(), modulus)
		shares[i] = share
	}

	return shares, nil
}

// ReconstructOption tunes [Reconstruct].
type ReconstructOption func(*reconstructOptions)

type reconstructOptions struct {
	contentHash string
}

// WithContentHash makes [Reconstruct] compare the hex SHA-256 of the result
// against hash.
func WithContentHash(hash string) ReconstructOption {
	return func(o *reconstructOptions) {
		o.contentHash = strings.ToLower(strings.TrimSpace(hash))
	}
}

// Reconstruct recovers the secret from at least threshold distinct shares.
// Shares repeated with the same index and value are counted once.
func Reconstruct(shares []Share, threshold int, opts ...ReconstructOption) ([]byte, error) {
	var o reconstructOptions
	for _, opt := range opts {
		opt(&o)
	}

	if threshold < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, threshold)
	}

	points, modulus, err := distinctShares(shares)
	if err != nil {
		return nil, err
	}
	if len(points) < threshold {
		return nil, reconstructionError(
			fmt.Sprintf("have %d distinct shares, need %d", len(points), threshold),
			ErrInsufficientShares,
		)
	}

	secretInt, err := interpolateAtZero(points[:threshold], modulus)
	if err != nil {
		return nil, err
	}

	secret, ok := decodeSecret(secretInt)
	if !ok {
		return nil, reconstructionError("shares are inconsistent", nil)
	}

	if o.contentHash != "" {
		sum := sha256.Sum256(secret)
		if subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(o.contentHash)) != 1 {
			return nil, reconstructionError("content hash mismatch", nil)
		}
	}

	return secret, nil
}

func encodeSecret(secret []byte) *big.Int {
	buf := make([]byte, len(secret)+1)
	buf[0] = sentinel
	copy(buf[1:], secret)

	return new(big.Int).SetBytes(buf)
}

func decodeSecret(n *big.Int) ([]byte, bool) {
	b := n.Bytes()
	if len(b) == 0 || b[0] != sentinel {
		return nil, false
	}

	return b[1:], true
}

func randomPolynomial(constant *big.Int, threshold int, modulus *big.Int) ([]*big.Int, error) {
	coeffs := make([]*big.Int, threshold)
	coeffs[0] = constant
	for i := 1; i < threshold; i++ {
		for {
			c, err := rand.Int(rand.Reader, modulus)
			if err != nil {
				return nil, fmt.Errorf("error drawing coefficient: %w", err)
			}
			// leading coefficient must keep the degree at M-1
			if i == threshold-1 && c.Sign() == 0 {
				continue
			}
			coeffs[i] = c
			break
		}
	}

	return coeffs, nil
}

// evaluate computes f(x) mod p with Horner's rule.
func evaluate(coeffs []*big.Int, x, p *big.Int) *big.Int {
	y := new(big.Int)
	for i := len(coeffs) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, coeffs[i])
		y.Mod(y, p)
	}

	return y
}

// distinctShares checks modulus agreement, drops exact duplicates and
// returns the remaining shares ordered by index.
func distinctShares(shares []Share) ([]Share, *big.Int, error) {
	if len(shares) == 0 {
		return nil, nil, reconstructionError("no shares supplied", ErrInsufficientShares)
	}

	modulus := shares[0].Modulus
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, nil, reconstructionError("share carries no modulus", nil)
	}

	byIndex := make(map[int]Share, len(shares))
	for _, s := range shares {
		if s.Modulus == nil || s.Modulus.Cmp(modulus) != 0 {
			return nil, nil, reconstructionError("shares disagree on modulus", nil)
		}
		if s.Index < 0 || s.Value == nil || s.Value.Sign() < 0 || s.Value.Cmp(modulus) >= 0 {
			return nil, nil, reconstructionError(fmt.Sprintf("share %d is malformed", s.Index), nil)
		}
		if prev, ok := byIndex[s.Index]; ok {
			if prev.Value.Cmp(s.Value) != 0 {
				return nil, nil, reconstructionError(fmt.Sprintf("index %d", s.Index), ErrDuplicateShareIndex)
			}
			continue
		}
		byIndex[s.Index] = s
	}

	points := make([]Share, 0, len(byIndex))
	for _, s := range byIndex {
		points = append(points, s)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Index < points[j].Index })

	return points, modulus, nil
}

// interpolateAtZero evaluates the Lagrange polynomial through points at x=0.
func interpolateAtZero(points []Share, p *big.Int) (*big.Int, error) {
	secret := new(big.Int)
	for i, pi := range points {
		xi := pi.X()
		num := big.NewInt(1)
		den := big.NewInt(1)
		for j, pj := range points {
			if i == j {
				continue
			}
			xj := pj.X()
			num.Mul(num, xj)
			den.Mul(den, new(big.Int).Sub(xj, xi))
		}
		den.Mod(den, p)
		inv := new(big.Int).ModInverse(den, p)
		if inv == nil {
			return nil, reconstructionError("basis polynomial is not invertible", nil)
		}

		term := new(big.Int).Mul(pi.Value, num)
		term.Mod(term, p)
		term.Mul(term, inv)
		term.Mod(term, p)

		secret.Add(secret, term)
		secret.Mod(secret, p)
	}

	return secret, nil
}
