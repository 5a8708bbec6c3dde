package api

import (
	"errors"
	"fmt"

	"github.com/sarchlab/rnspim/pim"
)

var (
	// ErrPartition is returned when an operand cannot be split into equal
	// slices, one per unit.
	ErrPartition = errors.New("operand does not divide over the fleet")

	// ErrCapacity is returned when a slice does not fit in a unit buffer.
	ErrCapacity = errors.New("slice exceeds unit capacity")

	// ErrStraddle is returned when a slice would span two towers. A unit
	// holds only one modulus.
	ErrStraddle = errors.New("slice straddles towers")

	// ErrShape is returned when operands disagree in tower count, tower
	// length, or modulus.
	ErrShape = errors.New("operand shape mismatch")
)

type slice struct {
	tower  int
	offset int
}

// A layout records where each unit's slice lives in the operand.
type layout struct {
	length  int
	perUnit int
	towers  []int
	slices  []slice
}

func partition(a pim.Operand, numUnits, capacity int) (layout, error) {
	l := layout{
		length: a.Len(),
		towers: make([]int, len(a)),
	}

	for t, tower := range a {
		if tower.Modulus == 0 {
			return l, fmt.Errorf("%w: tower %d has no modulus", ErrShape, t)
		}

		l.towers[t] = len(tower.Coeffs)
	}

	if l.length == 0 || l.length%numUnits != 0 {
		return l, fmt.Errorf("%w: %d words over %d units",
			ErrPartition, l.length, numUnits)
	}

	l.perUnit = l.length / numUnits
	if l.perUnit > capacity {
		return l, fmt.Errorf("%w: %d words per unit, capacity %d",
			ErrCapacity, l.perUnit, capacity)
	}

	l.slices = make([]slice, 0, numUnits)
	tower, towerStart := 0, 0

	for i := 0; i < numUnits; i++ {
		start := i * l.perUnit

		for start >= towerStart+l.towers[tower] {
			towerStart += l.towers[tower]
			tower++
		}

		if start+l.perUnit > towerStart+l.towers[tower] {
			return l, fmt.Errorf("%w: unit %d starts at word %d of tower %d",
				ErrStraddle, i, start-towerStart, tower)
		}

		l.slices = append(l.slices, slice{
			tower:  tower,
			offset: start - towerStart,
		})
	}

	return l, nil
}

func (l *layout) matches(a pim.Operand) bool {
	if len(a) != len(l.towers) {
		return false
	}

	for t := range a {
		if len(a[t].Coeffs) != l.towers[t] {
			return false
		}
	}

	return true
}
