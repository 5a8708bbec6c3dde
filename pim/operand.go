package pim

// Tower is one residue channel of an RNS polynomial: a vector of words
// reduced modulo Modulus.
type Tower struct {
	Coeffs  []uint64
	Modulus uint64
}

// Operand is a polynomial in RNS form, towers in basis order. The towers
// laid end to end form the logical vector handed to a fleet.
type Operand []Tower

// Len returns the length of the logical vector.
func (o Operand) Len() int {
	n := 0
	for _, t := range o {
		n += len(t.Coeffs)
	}

	return n
}

// SameShape reports whether o and other have the same tower lengths and
// moduli.
func (o Operand) SameShape(other Operand) bool {
	if len(o) != len(other) {
		return false
	}

	for i := range o {
		if len(o[i].Coeffs) != len(other[i].Coeffs) ||
			o[i].Modulus != other[i].Modulus {
			return false
		}
	}

	return true
}
