package datamodel

import "strings"

// =============================================================================
// Model
// =============================================================================

// Model identifies a C data model.
type Model int

// The known data models, ordered by pointer width then int width.
const (
	// IP16 has 16-bit int and pointer; short, long and long long are
	// not defined (16-bit PDP-11).
	IP16 Model = iota
	// IP16L32 adds a 32-bit long to IP16 (32-bit PDP-11).
	IP16L32
	// LP32 has 16-bit int, 32-bit long and pointer (m68k Mac, Win16).
	LP32
	// ILP32 has 32-bit int, long and pointer (Win32, Unix before the
	// mid-1990s).
	ILP32
	// LLP64 has 32-bit int and long, 64-bit pointer (Win64).
	LLP64
	// LP64 has 32-bit int, 64-bit long and pointer (64-bit Unix and
	// Linux).
	LP64
	// ILP64 has 64-bit int, long and pointer (HAL/Fujitsu SPARC64).
	ILP64
	// SILP64 has 64-bit short, int, long and pointer (Cray UNICOS).
	SILP64
	// Unknown is the sentinel for an unrecognized model. Every size
	// query against it reports 0.
	Unknown
)

// String returns the conventional name of the model.
func (m Model) String() string {
	switch m {
	case IP16:
		return "IP16"
	case IP16L32:
		return "IP16L32"
	case LP32:
		return "LP32"
	case ILP32:
		return "ILP32"
	case LLP64:
		return "LLP64"
	case LP64:
		return "LP64"
	case ILP64:
		return "ILP64"
	case SILP64:
		return "SILP64"
	default:
		return "unknown"
	}
}

// Description returns a one-line note on where the model is found.
func (m Model) Description() string {
	switch m {
	case IP16:
		return "16-bit int and pointer (16-bit PDP-11)"
	case IP16L32:
		return "16-bit int and pointer, 32-bit long (32-bit PDP-11)"
	case LP32:
		return "16-bit int, 32-bit long and pointer (m68k Mac, Win16)"
	case ILP32:
		return "32-bit int, long and pointer (Win32, 32-bit Unix)"
	case LLP64:
		return "32-bit int and long, 64-bit pointer (Win64)"
	case LP64:
		return "32-bit int, 64-bit long and pointer (64-bit Unix/Linux)"
	case ILP64:
		return "64-bit int, long and pointer (HAL/Fujitsu SPARC64)"
	case SILP64:
		return "64-bit short, int, long and pointer (Cray UNICOS)"
	default:
		return "unrecognized data model"
	}
}

// ParseModel converts a model name to a Model value.
// Matching is case-insensitive. Returns the model and true if valid,
// or Unknown and false if the name is not recognized.
func ParseModel(s string) (Model, bool) {
	switch strings.ToUpper(s) {
	case "IP16":
		return IP16, true
	case "IP16L32":
		return IP16L32, true
	case "LP32":
		return LP32, true
	case "ILP32":
		return ILP32, true
	case "LLP64":
		return LLP64, true
	case "LP64":
		return LP64, true
	case "ILP64":
		return ILP64, true
	case "SILP64":
		return SILP64, true
	default:
		return Unknown, false
	}
}

// Models returns the eight named models in table order, Unknown
// excluded.
func Models() []Model {
	return []Model{IP16, IP16L32, LP32, ILP32, LLP64, LP64, ILP64, SILP64}
}

// =============================================================================
// TypeCategory
// =============================================================================

// TypeCategory selects which C type a size query is about.
type TypeCategory int

// The queryable type categories, in promotion order.
const (
	// Char is the C char type, the smallest addressable unit. It holds
	// CHAR_BIT bits, conventionally 8; every other type occupies a
	// whole number of chars.
	Char TypeCategory = iota
	// Short is the C short type, at least 16 bits.
	Short
	// Int is the C int type, at least 16 bits.
	Int
	// Long is the C long type, at least 32 bits.
	Long
	// LongLong is the C long long type, at least 64 bits.
	LongLong
	// Pointer is the width of an object pointer (size_t), at least
	// 16 bits.
	Pointer
)

// String returns the C spelling of the category.
func (c TypeCategory) String() string {
	switch c {
	case Char:
		return "char"
	case Short:
		return "short"
	case Int:
		return "int"
	case Long:
		return "long"
	case LongLong:
		return "long long"
	case Pointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// ParseCategory converts a type name to a TypeCategory value.
// Matching is case-insensitive; "long long" may also be written
// "longlong" or "long-long". Returns the category and true if valid,
// or Char and false if the name is not recognized.
func ParseCategory(s string) (TypeCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "char":
		return Char, true
	case "short":
		return Short, true
	case "int":
		return Int, true
	case "long":
		return Long, true
	case "long long", "longlong", "long-long":
		return LongLong, true
	case "pointer", "ptr":
		return Pointer, true
	default:
		return Char, false
	}
}

// Categories returns the six type categories in promotion order, with
// Pointer last.
func Categories() []TypeCategory {
	return []TypeCategory{Char, Short, Int, Long, LongLong, Pointer}
}
