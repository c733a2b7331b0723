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
	"context"
	"net/netip"
	"sync"

	"github.com/sixlowpan/edgerouter/edge/control"
	"github.com/sixlowpan/edgerouter/pkg/log"
	"github.com/sixlowpan/edgerouter/pkg/lowpan"
	"github.com/sixlowpan/edgerouter/pkg/private/serrors"
)

// ProvisionalContextLifetime is the lifetime in minutes of the context the
// router binds to its own prefix during initialization. Operators refresh it
// by redefining context 0.
const ProvisionalContextLifetime uint16 = 5

// RouterPrefixPreferredLifetime is the preferred lifetime in seconds of the
// prefix derived from the router address.
const RouterPrefixPreferredLifetime uint32 = 1

// Router is an authoritative 6LoWPAN border router. It owns the border router
// cache. A Router must be initialized with Initialize before any other
// operation, until then operations fail with ErrNotInitialized.
type Router struct {
	// PANID is the IEEE 802.15.4 PAN the router addresses are validated
	// against.
	PANID uint16
	// MaxContexts is the capacity of the context set. See NewCache for the
	// defaults.
	MaxContexts int
	// MaxPrefixes is the capacity of the prefix set.
	MaxPrefixes int
	// Link is the link layer started during initialization.
	Link control.LinkLayer
	// Iface is the interface subsystem the router address is registered with.
	Iface control.Interface
	// Metrics are optional.
	Metrics *Metrics

	mtx   sync.RWMutex
	cache *Cache
	// gaugeMtx orders gauge updates of concurrent mutations.
	gaugeMtx sync.Mutex
}

// Initialize bootstraps the router with routerAddr. The address must be
// derived from an 8-bit short address (see lowpan.ValidateRouterAddr). The
// cache of a previous initialization is carried forward and the /64 of the
// address is registered as prefix and bound to context 0. Then the link layer
// is started on trx, the address is registered as preferred unicast address
// and the interface is marked as router.
//
// The cache version advances once for the new cache, once for the prefix and
// once for the context. If any step fails, the cache stays as it was. Cache
// failures are reported before any collaborator is touched.
func (r *Router) Initialize(
	ctx context.Context,
	trx control.Transceiver,
	routerAddr netip.Addr,
) error {

	err := r.initialize(ctx, trx, routerAddr)
	r.Metrics.observe(OpInitialize, err)
	return err
}

func (r *Router) initialize(
	ctx context.Context,
	trx control.Transceiver,
	routerAddr netip.Addr,
) error {

	if err := lowpan.ValidateRouterAddr(routerAddr, r.PANID); err != nil {
		return err
	}
	if r.Link == nil || r.Iface == nil {
		return serrors.New("link layer and interface must be set")
	}
	logger := log.FromCtx(ctx)

	r.mtx.Lock()
	defer r.mtx.Unlock()

	staged := r.cache.successor(r.MaxContexts, r.MaxPrefixes)
	staged.version = staged.version.Next()
	staged.routerAddr = routerAddr

	prefix := lowpan.RouterPrefix(routerAddr)
	routerPrefix := lowpan.Prefix{
		Prefix:            prefix,
		ValidLifetime:     lowpan.InfiniteLifetime,
		PreferredLifetime: RouterPrefixPreferredLifetime,
		OnLink:            true,
		Autonomous:        true,
	}
	if err := staged.setPrefix(routerPrefix); err != nil {
		return serrors.WrapNoStack("registering router prefix", err, "prefix", prefix)
	}
	if _, err := staged.defineContext(0, prefix, ProvisionalContextLifetime); err != nil {
		return serrors.WrapNoStack("defining router context", err, "prefix", prefix)
	}

	short := lowpan.ShortAddr(routerAddr)
	if err := r.Link.Init(ctx, trx, short); err != nil {
		return serrors.Wrap("initializing link layer", err,
			"transceiver", trx, "short_addr", short)
	}
	err := r.Iface.AddUnicastAddr(ctx, routerAddr, control.AddrStatePreferred, 0, 0,
		control.AddrTypeUnicast)
	if err != nil {
		return serrors.Wrap("adding router address", err, "addr", routerAddr)
	}
	if err := r.Iface.MarkAsRouter(ctx); err != nil {
		return serrors.Wrap("marking interface as router", err)
	}

	carried := r.cache != nil
	r.cache = staged
	snap := staged.Snapshot()
	r.Metrics.update(snap)
	logger.Info("Edge router initialized",
		"addr", routerAddr,
		"prefix", prefix,
		"version", snap.Version,
		"carried_forward", carried,
	)
	return nil
}

// Initialized reports whether the router was successfully initialized.
func (r *Router) Initialized() bool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.cache != nil
}

// DefineContext creates or overwrites context id. See Cache.DefineContext.
func (r *Router) DefineContext(
	id uint8,
	prefix netip.Prefix,
	lifetime uint16,
) (lowpan.Context, error) {

	var ctx lowpan.Context
	err := r.mutate(OpDefineContext, func(c *Cache) error {
		var err error
		ctx, err = c.DefineContext(id, prefix, lifetime)
		return err
	})
	if err == nil {
		log.Debug("Context defined", "context", ctx)
	}
	return ctx, err
}

// AllocateContext binds prefix to a context id. See Cache.AllocateContext.
func (r *Router) AllocateContext(prefix netip.Prefix, lifetime uint16) (lowpan.Context, error) {
	var ctx lowpan.Context
	err := r.mutate(OpAllocateContext, func(c *Cache) error {
		var err error
		ctx, err = c.AllocateContext(prefix, lifetime)
		return err
	})
	if err == nil {
		log.Debug("Context allocated", "context", ctx)
	}
	return ctx, err
}

// AddContext stores ctx in the cache. See Cache.AddContext.
func (r *Router) AddContext(ctx *lowpan.Context) error {
	return r.mutate(OpAddContext, func(c *Cache) error {
		return c.AddContext(ctx)
	})
}

// AddPrefix adds p to the advertised prefixes. See Cache.AddPrefix.
func (r *Router) AddPrefix(p *lowpan.Prefix) error {
	err := r.mutate(OpAddPrefix, func(c *Cache) error {
		return c.AddPrefix(p)
	})
	if err == nil {
		log.Debug("Prefix added", "prefix", p)
	}
	return err
}

// Snapshot returns the state of the cache after the latest completed
// mutation.
func (r *Router) Snapshot() (Snapshot, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	if r.cache == nil {
		return Snapshot{}, ErrNotInitialized
	}
	return r.cache.Snapshot(), nil
}

// ContextTable returns the read access for the header compression engine.
// The table follows re-initializations of the router.
func (r *Router) ContextTable() (control.ContextTable, error) {
	if !r.Initialized() {
		return nil, ErrNotInitialized
	}
	return routerTable{r: r}, nil
}

func (r *Router) mutate(op string, f func(c *Cache) error) error {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	if r.cache == nil {
		r.Metrics.observe(op, ErrNotInitialized)
		return ErrNotInitialized
	}
	err := f(r.cache)
	r.Metrics.observe(op, err)
	if err == nil && r.Metrics != nil {
		r.gaugeMtx.Lock()
		r.Metrics.update(r.cache.Snapshot())
		r.gaugeMtx.Unlock()
	}
	return err
}

// routerTable resolves the current cache of the router on every lookup.
type routerTable struct {
	r *Router
}

func (t routerTable) current() *Cache {
	t.r.mtx.RLock()
	defer t.r.mtx.RUnlock()
	return t.r.cache
}

func (t routerTable) ContextByID(id uint8) (lowpan.Context, bool) {
	return t.current().ContextByID(id)
}

func (t routerTable) ContextByPrefix(prefix netip.Prefix) (lowpan.Context, bool) {
	return t.current().ContextByPrefix(prefix)
}

func (t routerTable) ContextForAddr(a netip.Addr) (lowpan.Context, bool) {
	return t.current().ContextForAddr(a)
}

var _ control.ContextTable = (*Cache)(nil)
