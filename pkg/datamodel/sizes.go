package datamodel

// sizeTable holds the byte width of every (model, category) pair. The
// rows are transcribed from the historical platform ABIs rather than
// derived from a formula: the conventions are irregular (IP16 defines
// no long at all, SILP64 differs from ILP64 only in short) and the
// explicit table is the only faithful record of them. 0 marks a pair
// the model leaves unspecified.
var sizeTable = [...][6]int{
	//        char, short, int, long, long long, pointer
	IP16:    {1, 0, 2, 0, 0, 2},
	IP16L32: {1, 2, 2, 4, 0, 2},
	LP32:    {1, 2, 2, 4, 8, 4},
	ILP32:   {1, 2, 4, 4, 8, 4},
	LLP64:   {1, 2, 4, 4, 8, 8},
	LP64:    {1, 2, 4, 8, 8, 8},
	ILP64:   {1, 2, 8, 8, 8, 8},
	SILP64:  {1, 8, 8, 8, 8, 8},
	Unknown: {0, 0, 0, 0, 0, 0},
}

// SizeOf reports the size in bytes of the given type category under
// the model. It returns 0 when the model is Unknown or when the model
// leaves the type unspecified (e.g. long long under IP16); callers
// should treat 0 as "size not determined", not as an error.
func (m Model) SizeOf(c TypeCategory) int {
	if m < IP16 || m > Unknown || c < Char || c > Pointer {
		return 0
	}
	return sizeTable[m][c]
}

// Sizes returns the full size row for the model, keyed by category.
func (m Model) Sizes() map[TypeCategory]int {
	sizes := make(map[TypeCategory]int, len(Categories()))
	for _, c := range Categories() {
		sizes[c] = m.SizeOf(c)
	}
	return sizes
}

// New guesses the data model from the byte sizes of int, long, and
// pointer. It returns Unknown when no model matches the triple.
//
// SILP64 is never returned: its (int, long, pointer) triple is the
// same as ILP64's and the two differ only in the width of short, which
// this lookup does not consider. (8, 8, 8) resolves to ILP64.
func New(intSize, longSize, pointerSize int) Model {
	switch [3]int{intSize, longSize, pointerSize} {
	case [3]int{2, 0, 2}:
		return IP16
	case [3]int{2, 4, 2}:
		return IP16L32
	case [3]int{2, 4, 4}:
		return LP32
	case [3]int{4, 4, 4}:
		return ILP32
	case [3]int{4, 4, 8}:
		return LLP64
	case [3]int{4, 8, 8}:
		return LP64
	case [3]int{8, 8, 8}:
		return ILP64
	default:
		return Unknown
	}
}
