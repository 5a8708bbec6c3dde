// Package valgen provides value generators built from closures.
package valgen

import "fmt"

// MakeIncreasingGen returns a generator of start+1, start+2, ...
func MakeIncreasingGen(start int) func() int {
	current := start
	return func() int {
		current++
		return current
	}
}

// MakeSeedGen returns a generator of PRNG keys base/label/0, base/label/1,
// and so on. Keys from different labels never collide.
func MakeSeedGen(base string, label int) func() []byte {
	next := MakeIncreasingGen(-1)
	return func() []byte {
		return []byte(fmt.Sprintf("%s/%d/%d", base, label, next()))
	}
}
