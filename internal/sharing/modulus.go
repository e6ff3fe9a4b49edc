package sharing

import (
	"fmt"
	"math/big"
	"sync"
)

// DefaultExponent is the exponent of the Mersenne prime used as the default
// field modulus. 2^44497-1 leaves room for 5561 secret bytes, enough for the
// longest vault content.
const DefaultExponent = 44497

// mersenneExponents lists exponents p for which 2^p-1 is a known prime.
// Such moduli skip the probabilistic primality test.
var mersenneExponents = map[int]struct{}{
	127: {}, 521: {}, 607: {}, 1279: {}, 2203: {}, 2281: {}, 3217: {}, 4253: {},
	4423: {}, 9689: {}, 9941: {}, 11213: {}, 19937: {}, 21701: {}, 23209: {}, 44497: {},
}

var defaultModulus = sync.OnceValue(func() *big.Int {
	return Mersenne(DefaultExponent)
})

// DefaultModulus returns a copy of the default field modulus.
func DefaultModulus() *big.Int {
	return new(big.Int).Set(defaultModulus())
}

// Mersenne returns 2^p - 1.
func Mersenne(p uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), p)
	return m.Sub(m, big.NewInt(1))
}

// MaxSecretBytes returns the longest secret, in bytes, that fits below p once
// the sentinel byte is prepended.
func MaxSecretBytes(p *big.Int) int {
	if p == nil || p.BitLen() < 10 {
		return 0
	}

	return (p.BitLen() - 2) / 8
}

// CheckModulus verifies that p can serve as a field modulus.
func CheckModulus(p *big.Int) error {
	if p == nil || p.Sign() <= 0 {
		return fmt.Errorf("%w: missing", ErrInvalidModulus)
	}
	if p.Cmp(big.NewInt(257)) < 0 {
		return fmt.Errorf("%w: %s is too small", ErrInvalidModulus, p)
	}
	if isKnownMersennePrime(p) {
		return nil
	}
	if !p.ProbablyPrime(20) {
		return fmt.Errorf("%w: not prime", ErrInvalidModulus)
	}

	return nil
}

func isKnownMersennePrime(p *big.Int) bool {
	next := new(big.Int).Add(p, big.NewInt(1))
	n := next.BitLen() - 1
	if int(next.TrailingZeroBits()) != n {
		return false
	}
	_, ok := mersenneExponents[n]

	return ok
}
