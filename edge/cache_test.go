// Copyright 2025 Anapaya Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package edge_test

import (
	"fmt"
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixlowpan/edgerouter/edge"
	"github.com/sixlowpan/edgerouter/pkg/lowpan"
)

var snapshotOpts = cmp.Options{
	cmp.Comparer(func(a, b netip.Addr) bool { return a == b }),
	cmp.Comparer(func(a, b netip.Prefix) bool { return a == b }),
}

func assertSnapshotEqual(t *testing.T, expected, actual edge.Snapshot) {
	t.Helper()
	assert.Empty(t, cmp.Diff(expected, actual, snapshotOpts))
}

func mustPrefix(s string) netip.Prefix {
	return netip.MustParsePrefix(s)
}

// distinctPrefix returns the i-th of a series of non-overlapping /64s.
func distinctPrefix(i int) netip.Prefix {
	return mustPrefix(fmt.Sprintf("2001:db8:%x::/64", i+1))
}

func TestCacheDefineContext(t *testing.T) {
	c := edge.NewCache(4, 2)
	require.Equal(t, lowpan.Version(0), c.Version())

	ctx, err := c.DefineContext(2, mustPrefix("2001:db8:1::1/64"), 10)
	require.NoError(t, err)
	assert.Equal(t, lowpan.Context{
		ID:          2,
		Prefix:      mustPrefix("2001:db8:1::/64"),
		Compression: true,
		Lifetime:    10,
	}, ctx)
	assert.Equal(t, lowpan.Version(1), c.Version())

	t.Run("redefine keeps count", func(t *testing.T) {
		_, err := c.DefineContext(2, mustPrefix("2001:db8:2::/48"), 20)
		require.NoError(t, err)
		snap := c.Snapshot()
		assert.Len(t, snap.Contexts, 1)
		got, ok := c.ContextByID(2)
		require.True(t, ok)
		assert.Equal(t, mustPrefix("2001:db8:2::/48"), got.Prefix)
		assert.Equal(t, uint16(20), got.Lifetime)
		assert.Equal(t, lowpan.Version(2), c.Version())
	})
	t.Run("duplicate prefix allowed", func(t *testing.T) {
		_, err := c.DefineContext(3, mustPrefix("2001:db8:2::/48"), 20)
		require.NoError(t, err)
		assert.Len(t, c.Snapshot().Contexts, 2)
	})
	t.Run("id out of range", func(t *testing.T) {
		before := c.Snapshot()
		_, err := c.DefineContext(4, mustPrefix("2001:db8:3::/64"), 1)
		assert.ErrorIs(t, err, edge.ErrInvalidContextID)
		assertSnapshotEqual(t, before, c.Snapshot())
	})
	t.Run("invalid prefix", func(t *testing.T) {
		before := c.Snapshot()
		_, err := c.DefineContext(1, netip.Prefix{}, 1)
		assert.ErrorIs(t, err, edge.ErrInvalidPrefix)
		_, err = c.DefineContext(1, mustPrefix("192.0.2.0/24"), 1)
		assert.ErrorIs(t, err, edge.ErrInvalidPrefix)
		assertSnapshotEqual(t, before, c.Snapshot())
	})
}

func TestCacheAllocateContext(t *testing.T) {
	t.Run("lowest free id until full", func(t *testing.T) {
		const maxContexts = 4
		c := edge.NewCache(maxContexts, 1)
		var allocated []lowpan.Context
		for i := 0; i < maxContexts; i++ {
			ctx, err := c.AllocateContext(distinctPrefix(i), 5)
			require.NoError(t, err)
			assert.Equal(t, uint8(i), ctx.ID)
			allocated = append(allocated, ctx)
		}
		before := c.Snapshot()
		_, err := c.AllocateContext(distinctPrefix(maxContexts), 5)
		assert.ErrorIs(t, err, edge.ErrCacheFull)
		after := c.Snapshot()
		assertSnapshotEqual(t, before, after)
		assert.Equal(t, allocated, after.Contexts)
		assert.Equal(t, lowpan.Version(maxContexts), after.Version)
	})
	t.Run("same prefix reuses id", func(t *testing.T) {
		c := edge.NewCache(4, 1)
		first, err := c.AllocateContext(mustPrefix("2001:db8:a::/64"), 5)
		require.NoError(t, err)
		second, err := c.AllocateContext(mustPrefix("2001:db8:a::/64"), 7)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, uint16(7), second.Lifetime)
		assert.Len(t, c.Snapshot().Contexts, 1)
		assert.Equal(t, lowpan.Version(2), c.Version())
	})
	t.Run("different length is a different context", func(t *testing.T) {
		c := edge.NewCache(4, 1)
		first, err := c.AllocateContext(mustPrefix("2001:db8:a::/64"), 5)
		require.NoError(t, err)
		second, err := c.AllocateContext(mustPrefix("2001:db8:a::/48"), 5)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})
	t.Run("fills gaps", func(t *testing.T) {
		c := edge.NewCache(4, 1)
		_, err := c.DefineContext(0, distinctPrefix(0), 5)
		require.NoError(t, err)
		_, err = c.DefineContext(2, distinctPrefix(2), 5)
		require.NoError(t, err)
		ctx, err := c.AllocateContext(distinctPrefix(7), 5)
		require.NoError(t, err)
		assert.Equal(t, uint8(1), ctx.ID)
		ctx, err = c.AllocateContext(distinctPrefix(8), 5)
		require.NoError(t, err)
		assert.Equal(t, uint8(3), ctx.ID)
	})
}

func TestCacheAddContext(t *testing.T) {
	c := edge.NewCache(2, 1)

	assert.ErrorIs(t, c.AddContext(nil), edge.ErrNullContext)
	assert.Equal(t, lowpan.Version(0), c.Version())

	ctx := &lowpan.Context{ID: 1, Prefix: mustPrefix("2001:db8:1::5/64"), Lifetime: 3}
	require.NoError(t, c.AddContext(ctx))
	got, ok := c.ContextByID(1)
	require.True(t, ok)
	assert.Equal(t, mustPrefix("2001:db8:1::/64"), got.Prefix)
	assert.False(t, got.Compression)

	ctx.Lifetime = 9
	require.NoError(t, c.AddContext(ctx))
	got, _ = c.ContextByID(1)
	assert.Equal(t, uint16(9), got.Lifetime)
	assert.Len(t, c.Snapshot().Contexts, 1)
	assert.Equal(t, lowpan.Version(2), c.Version())

	assert.ErrorIs(t, c.AddContext(&lowpan.Context{ID: 2, Prefix: distinctPrefix(0)}),
		edge.ErrInvalidContextID)
	assert.Equal(t, lowpan.Version(2), c.Version())
}

func TestCacheAddPrefix(t *testing.T) {
	const maxPrefixes = 3
	c := edge.NewCache(1, maxPrefixes)

	assert.ErrorIs(t, c.AddPrefix(nil), edge.ErrNullPrefix)
	for i := 0; i < maxPrefixes; i++ {
		p := &lowpan.Prefix{Prefix: distinctPrefix(i), ValidLifetime: 60, OnLink: true}
		require.NoError(t, c.AddPrefix(p))
		assert.Equal(t, lowpan.Version(i+1), c.Version())
	}
	before := c.Snapshot()
	err := c.AddPrefix(&lowpan.Prefix{Prefix: distinctPrefix(maxPrefixes)})
	assert.ErrorIs(t, err, edge.ErrCacheFull)
	assert.Len(t, c.Snapshot().Prefixes, maxPrefixes)
	assertSnapshotEqual(t, before, c.Snapshot())
}

func TestCacheLookups(t *testing.T) {
	c := edge.NewCache(4, 1)
	_, err := c.DefineContext(0, mustPrefix("2001:db8::/32"), 5)
	require.NoError(t, err)
	_, err = c.DefineContext(3, mustPrefix("2001:db8:1::/48"), 5)
	require.NoError(t, err)
	_, err = c.DefineContext(1, mustPrefix("2001:db8:1::/48"), 5)
	require.NoError(t, err)

	testCases := map[string]struct {
		Addr  string
		ID    uint8
		Found bool
	}{
		"longest match":        {Addr: "2001:db8:1::7", ID: 1, Found: true},
		"only covering prefix": {Addr: "2001:db8:2::7", ID: 0, Found: true},
		"no match":             {Addr: "2001:db9::1", Found: false},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctx, ok := c.ContextForAddr(netip.MustParseAddr(tc.Addr))
			assert.Equal(t, tc.Found, ok)
			if ok {
				assert.Equal(t, tc.ID, ctx.ID)
			}
		})
	}

	ctx, ok := c.ContextByPrefix(mustPrefix("2001:db8::/32"))
	require.True(t, ok)
	assert.Equal(t, uint8(0), ctx.ID)
	_, ok = c.ContextByPrefix(mustPrefix("2001:db8::/33"))
	assert.False(t, ok)
	_, ok = c.ContextByID(2)
	assert.False(t, ok)

	version := c.Version()
	c.ContextByID(0)
	c.ContextForAddr(netip.MustParseAddr("2001:db8::1"))
	assert.Equal(t, version, c.Version())
}

func TestCacheVersionWraparound(t *testing.T) {
	c := edge.NewCache(1, 1)
	edge.SetVersion(c, 65535)
	before := c.Version()
	require.NoError(t, c.AddPrefix(&lowpan.Prefix{Prefix: distinctPrefix(0)}))
	after := c.Version()
	assert.Equal(t, lowpan.Version(0), after)
	assert.True(t, after.NewerThan(before))
	assert.True(t, edge.AcceptSnapshot(before, after))
	assert.False(t, edge.AcceptSnapshot(after, before))
	assert.False(t, edge.AcceptSnapshot(after, after))
}

func TestNewCacheDefaults(t *testing.T) {
	c := edge.NewCache(0, 0)
	for i := 0; i < lowpan.MaxContextIDs; i++ {
		_, err := c.AllocateContext(distinctPrefix(i), 1)
		require.NoError(t, err)
	}
	_, err := c.AllocateContext(distinctPrefix(lowpan.MaxContextIDs), 1)
	assert.ErrorIs(t, err, edge.ErrCacheFull)
	for i := 0; i < edge.DefaultMaxPrefixes; i++ {
		require.NoError(t, c.AddPrefix(&lowpan.Prefix{Prefix: distinctPrefix(i)}))
	}
	assert.ErrorIs(t, c.AddPrefix(&lowpan.Prefix{Prefix: distinctPrefix(99)}),
		edge.ErrCacheFull)
}
