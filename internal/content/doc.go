// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package content defines the composite records that make up the game's
// rule content: hull and part specifications parsed from definition files.
//
// Why model content as self-checksumming records?
//
// Server and clients each parse the definition files on their own machine. To
// confirm everyone is playing with the same rules, each record knows how to
// fold itself into the deterministic accumulator from internal/checksum. The
// registry and the combinator only ever see the Checksummer interface, so new
// record kinds join the scheme by implementing CheckSum and folding their own
// fields; nothing in the core changes.
//
// Records are immutable after parsing. The loader builds them once, hands
// them to a registry, and from then on everything reads.
package content
