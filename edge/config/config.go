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

// Package config defines the configuration of the edge router.
package config

import (
	"io"
	"net/netip"

	"github.com/sixlowpan/edgerouter/edge"
	"github.com/sixlowpan/edgerouter/edge/control"
	"github.com/sixlowpan/edgerouter/pkg/log"
	"github.com/sixlowpan/edgerouter/pkg/lowpan"
	"github.com/sixlowpan/edgerouter/pkg/private/serrors"
	"github.com/sixlowpan/edgerouter/private/config"
	"github.com/sixlowpan/edgerouter/private/env"
	api "github.com/sixlowpan/edgerouter/private/mgmtapi"
)

const (
	idSample = "edge-1"

	// DefaultInterface is the name of the radio interface.
	DefaultInterface = "lowpan0"
	// DefaultTransceiver is the transceiver used if none is configured.
	DefaultTransceiver = control.TransceiverTUN
)

var _ config.Config = (*Config)(nil)

// Config is the edge router configuration.
type Config struct {
	General env.General `toml:"general,omitempty"`
	Logging log.Config  `toml:"log,omitempty"`
	Metrics env.Metrics `toml:"metrics,omitempty"`
	API     api.Config  `toml:"api,omitempty"`
	Edge    EdgeConfig  `toml:"edge,omitempty"`
}

func (cfg *Config) InitDefaults() {
	config.InitAll(
		&cfg.General,
		&cfg.Logging,
		&cfg.Metrics,
		&cfg.API,
		&cfg.Edge,
	)
}

func (cfg *Config) Validate() error {
	return config.ValidateAll(
		&cfg.General,
		&cfg.Logging,
		&cfg.Metrics,
		&cfg.API,
		&cfg.Edge,
	)
}

func (cfg *Config) Sample(dst io.Writer, path config.Path, _ config.CtxMap) {
	config.WriteSample(dst, path, config.CtxMap{config.ID: idSample},
		&cfg.General,
		&cfg.Logging,
		&cfg.Metrics,
		&cfg.API,
		&cfg.Edge,
	)
}

var _ config.Config = (*EdgeConfig)(nil)

// EdgeConfig configures the border router state and its collaborators.
type EdgeConfig struct {
	// RouterAddr is the IPv6 address of the router. Its interface identifier
	// must be derived from an 8-bit short address on PANID.
	RouterAddr netip.Addr `toml:"router_addr,omitempty"`
	// PANID is the IEEE 802.15.4 PAN identifier (default lowpan.DefaultPANID).
	// PAN 0 is a valid identifier.
	PANID *uint16 `toml:"pan_id,omitempty"`
	// Transceiver selects the radio driver (default DefaultTransceiver).
	Transceiver control.Transceiver `toml:"transceiver,omitempty"`
	// Interface is the name of the radio network interface (default
	// DefaultInterface).
	Interface string `toml:"interface,omitempty"`
	// MaxContexts is the capacity of the context set.
	MaxContexts int `toml:"max_contexts,omitempty"`
	// MaxPrefixes is the capacity of the prefix set.
	MaxPrefixes int `toml:"max_prefixes,omitempty"`
	// Contexts are installed after initialization.
	Contexts []ContextEntry `toml:"contexts,omitempty"`
	// Prefixes are installed after initialization.
	Prefixes []PrefixEntry `toml:"prefixes,omitempty"`
}

// ContextEntry is a bootstrap context. Without an ID, one is allocated.
type ContextEntry struct {
	ID       *uint8       `toml:"id,omitempty"`
	Prefix   netip.Prefix `toml:"prefix"`
	Lifetime uint16       `toml:"lifetime,omitempty"`
}

// PrefixEntry is a bootstrap prefix.
type PrefixEntry struct {
	Prefix            netip.Prefix `toml:"prefix"`
	ValidLifetime     uint32       `toml:"valid_lifetime,omitempty"`
	PreferredLifetime uint32       `toml:"preferred_lifetime,omitempty"`
	OnLink            bool         `toml:"on_link,omitempty"`
	Autonomous        bool         `toml:"autonomous,omitempty"`
}

func (cfg *EdgeConfig) InitDefaults() {
	if cfg.PANID == nil {
		panID := lowpan.DefaultPANID
		cfg.PANID = &panID
	}
	if cfg.Transceiver == "" {
		cfg.Transceiver = DefaultTransceiver
	}
	if cfg.Interface == "" {
		cfg.Interface = DefaultInterface
	}
	if cfg.MaxContexts == 0 {
		cfg.MaxContexts = lowpan.MaxContextIDs
	}
	if cfg.MaxPrefixes == 0 {
		cfg.MaxPrefixes = edge.DefaultMaxPrefixes
	}
}

// PAN returns the configured PAN identifier, or lowpan.DefaultPANID if none is
// set.
func (cfg *EdgeConfig) PAN() uint16 {
	if cfg.PANID == nil {
		return lowpan.DefaultPANID
	}
	return *cfg.PANID
}

func (cfg *EdgeConfig) Validate() error {
	if !cfg.RouterAddr.IsValid() {
		return serrors.New("router_addr must be set")
	}
	if err := lowpan.ValidateRouterAddr(cfg.RouterAddr, cfg.PAN()); err != nil {
		return serrors.Wrap("validating router_addr", err)
	}
	if _, err := control.ParseTransceiver(string(cfg.Transceiver)); err != nil {
		return err
	}
	if cfg.MaxContexts < 1 || cfg.MaxContexts > lowpan.MaxContextIDs {
		return serrors.New("max_contexts out of range",
			"max_contexts", cfg.MaxContexts, "max", lowpan.MaxContextIDs)
	}
	if cfg.MaxPrefixes < 1 {
		return serrors.New("max_prefixes must be positive", "max_prefixes", cfg.MaxPrefixes)
	}
	// The router prefix and context 0 are installed during initialization.
	if len(cfg.Contexts) >= cfg.MaxContexts {
		return serrors.New("too many bootstrap contexts",
			"contexts", len(cfg.Contexts), "max_contexts", cfg.MaxContexts)
	}
	if len(cfg.Prefixes) >= cfg.MaxPrefixes {
		return serrors.New("too many bootstrap prefixes",
			"prefixes", len(cfg.Prefixes), "max_prefixes", cfg.MaxPrefixes)
	}
	var errs serrors.List
	for i, c := range cfg.Contexts {
		if !c.Prefix.IsValid() || !c.Prefix.Addr().Is6() {
			errs = append(errs, serrors.New("invalid context prefix",
				"index", i, "prefix", c.Prefix))
		}
		if c.ID != nil && int(*c.ID) >= cfg.MaxContexts {
			errs = append(errs, serrors.New("context id out of range", "index", i, "id", *c.ID))
		}
	}
	for i, p := range cfg.Prefixes {
		if !p.Prefix.IsValid() || !p.Prefix.Addr().Is6() {
			errs = append(errs, serrors.New("invalid prefix", "index", i, "prefix", p.Prefix))
		}
		if p.PreferredLifetime > p.ValidLifetime {
			errs = append(errs, serrors.New("preferred lifetime exceeds valid lifetime",
				"index", i, "preferred", p.PreferredLifetime, "valid", p.ValidLifetime))
		}
	}
	return errs.ToError()
}

func (cfg *EdgeConfig) Sample(dst io.Writer, path config.Path, _ config.CtxMap) {
	config.WriteString(dst, edgeSample)
}

func (cfg *EdgeConfig) ConfigName() string {
	return "edge"
}

// Bootstrapper is the part of the router the bootstrap entries are applied
// to.
type Bootstrapper interface {
	DefineContext(id uint8, prefix netip.Prefix, lifetime uint16) (lowpan.Context, error)
	AllocateContext(prefix netip.Prefix, lifetime uint16) (lowpan.Context, error)
	AddPrefix(p *lowpan.Prefix) error
}

// Bootstrap installs the configured contexts and prefixes. It stops at the
// first failing entry.
func (cfg *EdgeConfig) Bootstrap(r Bootstrapper) error {
	for _, p := range cfg.Prefixes {
		err := r.AddPrefix(&lowpan.Prefix{
			Prefix:            p.Prefix,
			ValidLifetime:     p.ValidLifetime,
			PreferredLifetime: p.PreferredLifetime,
			OnLink:            p.OnLink,
			Autonomous:        p.Autonomous,
		})
		if err != nil {
			return serrors.Wrap("adding bootstrap prefix", err, "prefix", p.Prefix)
		}
	}
	for _, c := range cfg.Contexts {
		var err error
		if c.ID != nil {
			_, err = r.DefineContext(*c.ID, c.Prefix, c.Lifetime)
		} else {
			_, err = r.AllocateContext(c.Prefix, c.Lifetime)
		}
		if err != nil {
			return serrors.Wrap("installing bootstrap context", err, "prefix", c.Prefix)
		}
	}
	return nil
}
