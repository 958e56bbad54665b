package registry

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/contentsync/internal/content"
	"github.com/vk/contentsync/internal/pending"
)

func testHulls() map[string]*content.Hull {
	return map[string]*content.Hull{
		"Basic Hull": {
			Name:      "Basic Hull",
			Speed:     1.0,
			Fuel:      0.0,
			Structure: 10.0,
		},
		"Heavy Hull": {
			Name:      "Heavy Hull",
			Speed:     0.5,
			Fuel:      5.0,
			Structure: 50.0,
			Slots:     []content.Slot{{Type: content.SlotExternal, X: 0.5, Y: 0.5}},
		},
	}
}

func configuredStore(t *testing.T, hulls map[string]*content.Hull) (context.Context, *Store[*content.Hull]) {
	t.Helper()
	ctx := context.Background()
	s := New[*content.Hull]("hulls")
	s.SetContent(pending.Start(ctx, "hulls", func(context.Context) (map[string]*content.Hull, error) {
		return hulls, nil
	}))
	return ctx, s
}

func TestRoundTrip(t *testing.T) {
	src := testHulls()
	ctx, s := configuredStore(t, src)

	require.Equal(t, len(src), s.Size(ctx))
	for name, want := range src {
		got, ok := s.Get(ctx, name)
		require.True(t, ok, "missing %q", name)
		assert.Equal(t, want, got)
	}
}

func TestGetMissingIsNotAnError(t *testing.T) {
	ctx, s := configuredStore(t, testHulls())

	rec, ok := s.Get(ctx, "Phantom Hull")
	assert.False(t, ok)
	assert.Nil(t, rec)
}

func TestResolutionIsIdempotent(t *testing.T) {
	ctx, s := configuredStore(t, testHulls())

	first, ok := s.Get(ctx, "Basic Hull")
	require.True(t, ok)
	second, ok := s.Get(ctx, "Basic Hull")
	require.True(t, ok)
	assert.Same(t, first, second, "re-querying must not re-resolve or rebuild records")
	assert.Equal(t, s.CheckSum(ctx), s.CheckSum(ctx))
}

func TestAllIsSortedByName(t *testing.T) {
	ctx, s := configuredStore(t, testHulls())

	var names []string
	for name, rec := range s.All(ctx) {
		require.NotNil(t, rec)
		names = append(names, name)
	}
	assert.Equal(t, []string{"Basic Hull", "Heavy Hull"}, names)
}

// The aggregate value is pinned: an independent implementation of the same
// scheme loading the same two hulls must arrive at exactly this number.
func TestCheckSumPinnedValue(t *testing.T) {
	ctx, s := configuredStore(t, testHulls())
	assert.Equal(t, uint32(3852), s.CheckSum(ctx))
}

func TestCheckSumChangesWithContent(t *testing.T) {
	ctx, s := configuredStore(t, testHulls())
	base := s.CheckSum(ctx)

	hulls := testHulls()
	hulls["Heavy Hull"].Fuel = 6.0
	ctx2, s2 := configuredStore(t, hulls)
	assert.NotEqual(t, base, s2.CheckSum(ctx2))
}

func TestQueryBeforeSetContentPanics(t *testing.T) {
	s := New[*content.Hull]("hulls")
	assert.Panics(t, func() {
		s.Get(context.Background(), "Basic Hull")
	})
}

func TestFailedProducerLeavesStoreEmpty(t *testing.T) {
	ctx := context.Background()
	s := New[*content.Hull]("hulls")
	s.SetContent(pending.Start(ctx, "hulls", func(context.Context) (map[string]*content.Hull, error) {
		return nil, errors.New("definition file corrupt")
	}))

	assert.Equal(t, 0, s.Size(ctx))
	_, ok := s.Get(ctx, "Basic Hull")
	assert.False(t, ok)
}

func TestSetContentAfterResolveSwapsCollection(t *testing.T) {
	ctx, s := configuredStore(t, testHulls())
	require.Equal(t, 2, s.Size(ctx))

	replacement := map[string]*content.Hull{
		"Tiny Hull": {Name: "Tiny Hull", Speed: 2.0},
	}
	s.SetContent(pending.Start(ctx, "hulls", func(context.Context) (map[string]*content.Hull, error) {
		return replacement, nil
	}))

	assert.Equal(t, 1, s.Size(ctx))
	_, ok := s.Get(ctx, "Basic Hull")
	assert.False(t, ok, "old collection must be fully replaced")
	_, ok = s.Get(ctx, "Tiny Hull")
	assert.True(t, ok)
}

func TestSetContentReplacesUnresolvedPending(t *testing.T) {
	ctx := context.Background()
	s := New[*content.Hull]("hulls")

	stale := pending.Start(ctx, "hulls", func(context.Context) (map[string]*content.Hull, error) {
		return map[string]*content.Hull{"Stale Hull": {Name: "Stale Hull"}}, nil
	})
	s.SetContent(stale)
	s.SetContent(pending.Start(ctx, "hulls", func(context.Context) (map[string]*content.Hull, error) {
		return testHulls(), nil
	}))

	_, ok := s.Get(ctx, "Stale Hull")
	assert.False(t, ok, "replaced pending must never be installed")
	assert.Equal(t, 2, s.Size(ctx))
}

// Many readers racing the first resolution must each see the complete
// collection, never a partial one, and the producer must run exactly once.
func TestConcurrentFirstQuery(t *testing.T) {
	ctx := context.Background()
	s := New[*content.Hull]("hulls")

	release := make(chan struct{})
	s.SetContent(pending.Start(ctx, "hulls", func(context.Context) (map[string]*content.Hull, error) {
		<-release
		return testHulls(), nil
	}))

	const readers = 16
	var wg sync.WaitGroup
	results := make([]int, readers)
	sums := make([]uint32, readers)
	for i := range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.Size(ctx)
			sums[i] = s.CheckSum(ctx)
		}()
	}
	close(release)
	wg.Wait()

	for i := range readers {
		assert.Equal(t, 2, results[i])
		assert.Equal(t, uint32(3852), sums[i])
	}
}
