package config

import (
	"fmt"

	"github.com/sarchlab/rnspim/core"
	"github.com/sarchlab/rnspim/pim"
)

// A fleet is a set of units addressed by index. Unit i receives the i-th
// slice of every partitioned vector.
type fleet struct {
	Name  string
	Units []*core.Unit
}

// NumUnits returns the number of units.
func (f *fleet) NumUnits() int {
	return len(f.Units)
}

// Unit returns the unit at the given index.
func (f *fleet) Unit(i int) pim.Unit {
	if i < 0 || i >= len(f.Units) {
		panic(fmt.Sprintf("invalid unit %d in %s", i, f.Name))
	}

	return f.Units[i]
}

func (f *fleet) String() string {
	return fmt.Sprintf("Fleet(%s, %d units)", f.Name, len(f.Units))
}
