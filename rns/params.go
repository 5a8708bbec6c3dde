// Package rns supplies polynomials in residue number system form, together
// with the host reference operations the fleet results are checked against.
package rns

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// ErrParams is returned when no ring matches the requested parameters.
var ErrParams = errors.New("invalid RNS parameters")

// ParamSet describes a ring of dimension 2^LogN over Towers moduli.
type ParamSet struct {
	LogN   int
	Towers int
	Ring   *ring.Ring
}

// GenerateParams builds a ring of dimension 2^logN whose moduli are the
// largest towers primes below 2^bits that support a negacyclic NTT.
func GenerateParams(logN, towers, bits int) (*ParamSet, error) {
	if logN <= 0 || towers <= 0 {
		return nil, fmt.Errorf("%w: logN %d, towers %d", ErrParams, logN, towers)
	}

	moduli, err := NTTPrimes(bits, logN, towers)
	if err != nil {
		return nil, err
	}

	r, err := ring.NewRing(1<<logN, moduli)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParams, err)
	}

	return &ParamSet{
		LogN:   logN,
		Towers: towers,
		Ring:   r,
	}, nil
}

// NTTPrimes returns count primes q < 2^bits with q = 1 mod 2^(logN+1), in
// descending order.
func NTTPrimes(bits, logN, count int) ([]uint64, error) {
	if bits > 61 || bits <= logN+1 {
		return nil, fmt.Errorf("%w: %d-bit moduli for dimension 2^%d",
			ErrParams, bits, logN)
	}

	step := uint64(1) << (logN + 1)
	primes := make([]uint64, 0, count)
	candidate := new(big.Int)

	for q := (uint64(1) << bits) - step + 1; q > step; q -= step {
		if candidate.SetUint64(q).ProbablyPrime(20) {
			primes = append(primes, q)
			if len(primes) == count {
				return primes, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: only %d NTT primes below 2^%d",
		ErrParams, len(primes), bits)
}

// N returns the ring dimension.
func (p *ParamSet) N() int {
	return 1 << p.LogN
}

// Len returns the length of a polynomial's towers laid end to end.
func (p *ParamSet) Len() int {
	return p.Towers << p.LogN
}

// Moduli returns the tower moduli in basis order.
func (p *ParamSet) Moduli() []uint64 {
	return p.Ring.Modulus
}

func (p *ParamSet) String() string {
	return fmt.Sprintf("RNS(N=2^%d, towers=%d)", p.LogN, p.Towers)
}
