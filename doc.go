// Package kat implements the byte chain at the core of the KAT text
// format: a growable byte container used uniformly as parse token,
// emission buffer, and decoded value.
//
// A Chain is a semantic ordered byte sequence. It is not a string: it
// owns no character-set state beyond UTF-8, and it exposes three
// orthogonal views over its bytes. The Latin-1 fast path treats each
// byte as an unsigned 16-bit code unit and is used for protocol
// tokens. The UTF-8 surface (Is, IsChar, Chars) decodes 1-4 byte
// sequences with full surrogate-pair arithmetic. The numeric
// projections (Int32, Int64, Float64, Number, ...) parse the raw
// bytes directly and fall back to a caller-supplied default instead
// of failing.
//
// A chain instance must be mutated by at most one goroutine at a
// time. Read-only projections are safe for concurrent readers only
// while no writer exists; the lazy hash and string caches may then be
// recomputed more than once but never observed torn.
package kat
