package rns

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/ring"
	"github.com/tuneinsight/lattigo/v4/utils"
)

// SampleUniform fills p with residues drawn uniformly from every tower. The
// same seed always gives the same polynomial.
func SampleUniform(ps *ParamSet, p *ring.Poly, seed []byte) error {
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return fmt.Errorf("sample uniform: %w", err)
	}

	ring.NewUniformSampler(prng, ps.Ring).Read(p)

	return nil
}

// HostAdd sets a to a + b, coefficient-wise in every tower.
func HostAdd(ps *ParamSet, a, b *ring.Poly) {
	ps.Ring.Add(a, b, a)
}

// HostMul sets a to a * b, coefficient-wise in every tower.
func HostMul(ps *ParamSet, a, b *ring.Poly) {
	ps.Ring.MulCoeffs(a, b, a)
}

// Equal reports whether p and q have the same coefficients in all towers.
func Equal(p, q *ring.Poly) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}

	for i := range p.Coeffs {
		if len(p.Coeffs[i]) != len(q.Coeffs[i]) {
			return false
		}

		for j := range p.Coeffs[i] {
			if p.Coeffs[i][j] != q.Coeffs[i][j] {
				return false
			}
		}
	}

	return true
}
