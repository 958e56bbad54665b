package registry

import (
	"context"
	"fmt"
	"iter"
	"sort"
	"sync"

	"github.com/vk/contentsync/internal/checksum"
	"github.com/vk/contentsync/internal/ctxlog"
	"github.com/vk/contentsync/internal/pending"
)

// Store owns every record of one content kind, keyed by unique name. The
// zero value is not usable; construct with New and configure with SetContent
// before the first query.
type Store[T checksum.Checksummer] struct {
	name string

	// mu guards the check-pending/resolve/install sequence. Once a
	// collection is installed it is never mutated, so queries read the maps
	// returned by resolve without holding the lock.
	mu         sync.Mutex
	pend       *pending.Pending[map[string]T]
	configured bool
	entries    map[string]T
	names      []string
}

// New creates an empty store. The name identifies the content kind in logs
// and in the application's checksum summary.
func New[T checksum.Checksummer](name string) *Store[T] {
	return &Store[T]{name: name}
}

// Name returns the content kind this store holds.
func (s *Store[T]) Name() string {
	return s.name
}

// SetContent attaches the pending collection the next query will install.
// Attaching a new pending before the previous one was resolved replaces it;
// attaching after a resolve schedules a full content swap on the next query.
func (s *Store[T]) SetContent(p *pending.Pending[map[string]T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pend = p
	s.configured = true
}

// resolve installs an attached pending collection, blocking until the
// producer completes. It returns the current collection and its sorted keys.
// A failed producer leaves the store with an empty collection; the error has
// already been logged and content verification will catch the difference.
func (s *Store[T]) resolve(ctx context.Context) (map[string]T, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.configured {
		panic(fmt.Sprintf("registry: %q store queried before SetContent", s.name))
	}

	if s.pend != nil {
		p := s.pend
		s.pend = nil

		entries, err := p.Wait(ctx)
		if err != nil {
			ctxlog.FromContext(ctx).Error("Content resolution failed, store left empty.",
				"store", s.name, "error", err)
			entries = nil
		}
		if entries == nil {
			entries = map[string]T{}
		}

		names := make([]string, 0, len(entries))
		for name := range entries {
			names = append(names, name)
		}
		sort.Strings(names)

		s.entries = entries
		s.names = names
		ctxlog.FromContext(ctx).Debug("Content installed.", "store", s.name, "count", len(names))
	}

	return s.entries, s.names
}

// Get returns the record with the given name. The record is shared, not
// copied; callers must not mutate it. A missing name is not an error.
func (s *Store[T]) Get(ctx context.Context, name string) (T, bool) {
	entries, _ := s.resolve(ctx)
	rec, ok := entries[name]
	return rec, ok
}

// Size returns the number of records in the store.
func (s *Store[T]) Size(ctx context.Context) int {
	entries, _ := s.resolve(ctx)
	return len(entries)
}

// All yields every (name, record) entry in ascending name order.
func (s *Store[T]) All(ctx context.Context) iter.Seq2[string, T] {
	entries, names := s.resolve(ctx)
	return func(yield func(string, T) bool) {
		for _, name := range names {
			if !yield(name, entries[name]) {
				return
			}
		}
	}
}

// CheckSum folds the whole collection: every (name, record) pair in
// ascending name order, then the entry count. Two stores loaded from
// logically identical definitions produce the same value on any platform.
func (s *Store[T]) CheckSum(ctx context.Context) uint32 {
	entries, _ := s.resolve(ctx)
	return checksum.Map(0, entries, checksum.String, func(sum uint32, rec T) uint32 {
		return checksum.Object(sum, rec)
	})
}
