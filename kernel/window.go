package kernel

// Window is the streaming window of a kernel. It moves a fixed number of
// words at a time from bulk memory into scratch, transforms them there, and
// writes the first scratch buffer back to where it came from.
type Window struct {
	Words int
	Lane  LaneFunc
}

// NewWindow creates a window of windowBytes bytes applying lane.
func NewWindow(windowBytes int, lane LaneFunc) Window {
	if windowBytes <= 0 || windowBytes%WordBytes != 0 {
		panic("window size must be a positive multiple of the word size")
	}

	return Window{
		Words: windowBytes / WordBytes,
		Lane:  lane,
	}
}

// Span returns the number of words of the window starting at cursor when
// length words are valid. The last window of a buffer may be partial.
func (w Window) Span(cursor, length int) int {
	n := length - cursor
	if n > w.Words {
		n = w.Words
	}

	if n < 0 {
		return 0
	}

	return n
}

// Count returns the number of windows needed to cover length words.
func (w Window) Count(length int) int {
	return (length + w.Words - 1) / w.Words
}

// Load copies n words of bulk starting at cursor into scratch.
func (w Window) Load(scratch, bulk []uint64, cursor, n int) {
	copy(scratch[:n], bulk[cursor:cursor+n])
}

// Apply runs the lane operation over the first n words of the scratch
// buffers, in place in a.
func (w Window) Apply(a, b []uint64, modulus uint64, n int) {
	a = a[:n]
	b = b[:n]

	for i := range a {
		a[i] = w.Lane(a[i], b[i], modulus)
	}
}

// Store copies n words of scratch back into bulk at cursor.
func (w Window) Store(bulk, scratch []uint64, cursor, n int) {
	copy(bulk[cursor:cursor+n], scratch[:n])
}
