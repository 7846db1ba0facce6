// Package datamodel maps named C data models to the byte sizes of the
// basic integer and pointer types.
//
// A data model is a platform or vendor convention fixing the bit widths
// of the five C integer types (char, short, int, long, long long) and
// of pointers. The C standard only mandates minimum widths; the exact
// sizes are set by the platform ABI. Four models found wide acceptance:
//
//   - LP32 or 2/4/4: m68k Mac and the Win16 API
//   - ILP32 or 4/4/4: Win32 and 32-bit Unix and Unix-like systems
//   - LLP64 or 4/4/8: the Win64 API
//   - LP64 or 4/8/8: 64-bit Unix and Unix-like systems
//
// The model names spell out which types share a width: ILP32 means
// (I)nt, (L)ong and (P)ointer are 32-bit. The scheme is a convention,
// not a rule, and is not applied consistently across platforms.
//
// All lookups are total: pairs a historical model never defined (long
// on IP16, long long on IP16 and IP16L32) and every lookup against
// Unknown report size 0, meaning "unspecified", not an error.
//
// Reference: J. R. Mashey, "The long road to 64 bits", ACM Queue 4(8),
// 1996.
package datamodel
