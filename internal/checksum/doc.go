// Package checksum implements the deterministic accumulator used to verify
// that independently loaded copies of the same content are identical.
//
// Every participant (server, clients) parses content definition files on its
// own. Instead of shipping the parsed content around for comparison, each side
// folds its records into a single bounded unsigned sum and compares only that
// number. For this to work the fold must produce the same value on every
// platform, compiler, and run, so the package avoids anything with
// platform-dependent behavior: no bit patterns of floats, no map iteration
// order, no pointer identity.
//
// The combinators form a closed set of typed functions, one per value shape
// (unsigned, signed, float, string, bool, enum, pair, slice, map, composite).
// Dispatch happens at compile time through the function you pick; there is no
// reflection. Composite records participate through the Checksummer interface
// and fold their own fields, which is how new record kinds are added without
// touching this package.
//
// Known, intentional weaknesses: the sum is not cryptographic, and signed
// values contribute only their magnitude, so records differing in a single
// sign collide. Both are acceptable for detecting content drift and are kept
// for compatibility with peers implementing the same scheme.
package checksum
