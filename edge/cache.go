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

package edge

import (
	"cmp"
	"net/netip"
	"slices"
	"sync"

	"github.com/sixlowpan/edgerouter/pkg/lowpan"
	"github.com/sixlowpan/edgerouter/pkg/private/serrors"
)

// DefaultMaxPrefixes is the default number of prefixes a cache holds.
const DefaultMaxPrefixes = 5

// Cache is the border router cache: the contexts and prefixes the router is
// authoritative for and the ABRO version stamping them. All methods are safe
// for concurrent use. The mutex covers version, contexts and prefixes
// together, so no reader observes a version without its data or vice versa.
type Cache struct {
	mtx        sync.Mutex
	version    lowpan.Version
	routerAddr netip.Addr
	contexts   boundedSet[lowpan.Context]
	prefixes   boundedSet[lowpan.Prefix]
}

// NewCache creates an empty cache. maxContexts outside of
// (0, lowpan.MaxContextIDs] defaults to lowpan.MaxContextIDs, maxPrefixes
// below 1 defaults to DefaultMaxPrefixes.
func NewCache(maxContexts, maxPrefixes int) *Cache {
	if maxContexts <= 0 || maxContexts > lowpan.MaxContextIDs {
		maxContexts = lowpan.MaxContextIDs
	}
	if maxPrefixes <= 0 {
		maxPrefixes = DefaultMaxPrefixes
	}
	return &Cache{
		contexts: newBoundedSet[lowpan.Context](maxContexts),
		prefixes: newBoundedSet[lowpan.Prefix](maxPrefixes),
	}
}

// Version returns the current ABRO version.
func (c *Cache) Version() lowpan.Version {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.version
}

// RouterAddr returns the address of the router the cache belongs to.
func (c *Cache) RouterAddr() netip.Addr {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.routerAddr
}

// DefineContext creates or overwrites the context with the given id. The
// compression flag is set. Defining a prefix that another id already uses is
// allowed.
func (c *Cache) DefineContext(
	id uint8,
	prefix netip.Prefix,
	lifetime uint16,
) (lowpan.Context, error) {

	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.defineContext(id, prefix, lifetime)
}

func (c *Cache) defineContext(
	id uint8,
	prefix netip.Prefix,
	lifetime uint16,
) (lowpan.Context, error) {

	if err := validPrefix(prefix); err != nil {
		return lowpan.Context{}, err
	}
	ctx := lowpan.Context{
		ID:          id,
		Prefix:      prefix.Masked(),
		Compression: true,
		Lifetime:    lifetime,
	}
	if err := c.addContext(ctx); err != nil {
		return lowpan.Context{}, err
	}
	return ctx, nil
}

// AllocateContext binds prefix to a context id. A context already bound to
// the same prefix and length is redefined in place. Otherwise the lowest
// unused id is taken. If every id is in use, ErrCacheFull is returned.
func (c *Cache) AllocateContext(prefix netip.Prefix, lifetime uint16) (lowpan.Context, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if err := validPrefix(prefix); err != nil {
		return lowpan.Context{}, err
	}
	if i := c.contexts.Index(func(ctx lowpan.Context) bool {
		return ctx.Matches(prefix)
	}); i >= 0 {
		return c.defineContext(c.contexts.Get(i).ID, prefix, lifetime)
	}
	id, ok := c.freeContextID()
	if !ok {
		return lowpan.Context{}, serrors.JoinNoStack(ErrCacheFull, nil,
			"capacity", c.contexts.Cap(), "prefix", prefix)
	}
	return c.defineContext(id, prefix, lifetime)
}

func (c *Cache) freeContextID() (uint8, bool) {
	for id := 0; id < c.contexts.Cap(); id++ {
		used := c.contexts.Index(func(ctx lowpan.Context) bool {
			return int(ctx.ID) == id
		}) >= 0
		if !used {
			return uint8(id), true
		}
	}
	return 0, false
}

// AddContext stores ctx, replacing the context with the same id if there is
// one.
func (c *Cache) AddContext(ctx *lowpan.Context) error {
	if ctx == nil {
		return ErrNullContext
	}
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if err := validPrefix(ctx.Prefix); err != nil {
		return err
	}
	stored := *ctx
	stored.Prefix = stored.Prefix.Masked()
	return c.addContext(stored)
}

func (c *Cache) addContext(ctx lowpan.Context) error {
	if int(ctx.ID) >= c.contexts.Cap() {
		return serrors.JoinNoStack(ErrInvalidContextID, nil,
			"id", ctx.ID, "capacity", c.contexts.Cap())
	}
	if i := c.contexts.Index(func(o lowpan.Context) bool {
		return o.ID == ctx.ID
	}); i >= 0 {
		c.contexts.Set(i, ctx)
	} else if err := c.contexts.Append(ctx); err != nil {
		return err
	}
	c.version = c.version.Next()
	return nil
}

// AddPrefix appends p to the advertised prefixes.
func (c *Cache) AddPrefix(p *lowpan.Prefix) error {
	if p == nil {
		return ErrNullPrefix
	}
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.addPrefix(*p)
}

func (c *Cache) addPrefix(p lowpan.Prefix) error {
	if err := validPrefix(p.Prefix); err != nil {
		return err
	}
	p.Prefix = p.Prefix.Masked()
	if err := c.prefixes.Append(p); err != nil {
		return err
	}
	c.version = c.version.Next()
	return nil
}

// setPrefix replaces the entry for the same prefix, or appends p.
func (c *Cache) setPrefix(p lowpan.Prefix) error {
	if err := validPrefix(p.Prefix); err != nil {
		return err
	}
	p.Prefix = p.Prefix.Masked()
	if i := c.prefixes.Index(func(o lowpan.Prefix) bool {
		return o.Prefix == p.Prefix
	}); i >= 0 {
		c.prefixes.Set(i, p)
		c.version = c.version.Next()
		return nil
	}
	return c.addPrefix(p)
}

// ContextByID returns the context with the given id.
func (c *Cache) ContextByID(id uint8) (lowpan.Context, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	i := c.contexts.Index(func(ctx lowpan.Context) bool { return ctx.ID == id })
	if i < 0 {
		return lowpan.Context{}, false
	}
	return c.contexts.Get(i), true
}

// ContextByPrefix returns the context bound to exactly prefix.
func (c *Cache) ContextByPrefix(prefix netip.Prefix) (lowpan.Context, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	i := c.contexts.Index(func(ctx lowpan.Context) bool { return ctx.Matches(prefix) })
	if i < 0 {
		return lowpan.Context{}, false
	}
	return c.contexts.Get(i), true
}

// ContextForAddr returns the context with the longest prefix containing a.
// Ties are resolved in favor of the lower id.
func (c *Cache) ContextForAddr(a netip.Addr) (lowpan.Context, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	var (
		best  lowpan.Context
		found bool
	)
	for _, ctx := range c.contexts.items {
		if !ctx.Prefix.Contains(a) {
			continue
		}
		if !found || ctx.Prefix.Bits() > best.Prefix.Bits() ||
			(ctx.Prefix.Bits() == best.Prefix.Bits() && ctx.ID < best.ID) {

			best, found = ctx, true
		}
	}
	return best, found
}

// Snapshot returns a copy of the cache content.
func (c *Cache) Snapshot() Snapshot {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.snapshot()
}

func (c *Cache) snapshot() Snapshot {
	contexts := c.contexts.Items()
	slices.SortFunc(contexts, func(a, b lowpan.Context) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return Snapshot{
		Version:    c.version,
		RouterAddr: c.routerAddr,
		Contexts:   contexts,
		Prefixes:   c.prefixes.Items(),
	}
}

// successor returns a new cache that carries the contexts, prefixes and
// version of c forward. A nil c yields an empty cache.
func (c *Cache) successor(maxContexts, maxPrefixes int) *Cache {
	next := NewCache(maxContexts, maxPrefixes)
	if c == nil {
		return next
	}
	c.mtx.Lock()
	defer c.mtx.Unlock()
	next.version = c.version
	var contexts []lowpan.Context
	for _, ctx := range c.contexts.items {
		if int(ctx.ID) < next.contexts.Cap() {
			contexts = append(contexts, ctx)
		}
	}
	next.contexts.carry(contexts)
	next.prefixes.carry(c.prefixes.items)
	return next
}

func validPrefix(p netip.Prefix) error {
	if !p.IsValid() || !p.Addr().Is6() || p.Addr().Is4In6() {
		return serrors.JoinNoStack(ErrInvalidPrefix, nil, "prefix", p)
	}
	return nil
}
