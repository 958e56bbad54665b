// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package content

import "context"

// Set is the complete parsed content a loader yields: every record keyed by
// its unique name. A Set is built once by the producer and never mutated
// afterwards.
type Set struct {
	Hulls map[string]*Hull
	Parts map[string]*Part
}

// NewSet returns an empty Set with initialized collections.
func NewSet() *Set {
	return &Set{
		Hulls: map[string]*Hull{},
		Parts: map[string]*Part{},
	}
}

// Loader is the interface a format-specific definition-file parser
// implements. Load reads every definition under the given paths, translates
// them into records, and returns the complete Set.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Set, error)
}
