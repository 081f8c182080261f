// Package jvm is a bidirectional codec for the compact textual grammar
// the JVM uses to denote types, method signatures, field signatures, and
// literal values.
//
// The grammar has three layers, each depending only on the one below:
//
//   - Types: single tag characters or bracket-prefixed sequences.
//     "I" is int, "[I" an array of int, "Lfoo/Bar;" the class foo.Bar.
//   - Names: dotted class names, field ids ("count:I"), method ids
//     ("run:(IC)Z", where "V" marks a void return), and absolute names
//     binding a class to a member ("a.b.C.run:(IC)Z").
//   - Values: literal integers, booleans, single-quoted chars, and
//     homogeneous arrays ("[I:1, 2, 3]"), plus top-level comma-separated
//     value lists used for argument lists.
//
// Decode functions take raw descriptor strings and produce immutable
// typed values; Encode is the exact inverse, so decode(encode(x)) == x
// for every valid x.
//
// Types are canonical: repeated decodes of the same descriptor return
// the identical *Type pointer, so types compare with == and work as map
// keys. The interning tables behind that are process-wide, append-only,
// and safe for concurrent use. Everything else is a pure synchronous
// function with no shared state.
package jvm
