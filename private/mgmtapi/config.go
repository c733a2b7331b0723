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

// Package mgmtapi contains the configuration and the shared problem types of
// the HTTP management APIs.
package mgmtapi

import (
	"io"
	"net/netip"

	"github.com/sixlowpan/edgerouter/pkg/private/serrors"
	"github.com/sixlowpan/edgerouter/private/config"
)

var _ config.Config = (*Config)(nil)

// Config is the configuration of the management API.
type Config struct {
	config.NoDefaulter
	// Addr is the address the API is served on (host:port or ip:port or
	// :port). If empty, the API is not served.
	Addr string `toml:"addr,omitempty"`
}

// Validate checks that Addr, if set, is a valid listen address.
func (cfg *Config) Validate() error {
	if cfg.Addr == "" {
		return nil
	}
	if _, err := netip.ParseAddrPort(cfg.Addr); err == nil {
		return nil
	}
	if len(cfg.Addr) > 1 && cfg.Addr[0] == ':' {
		return nil
	}
	return serrors.New("invalid api address", "addr", cfg.Addr)
}

func (cfg *Config) Sample(dst io.Writer, path config.Path, _ config.CtxMap) {
	config.WriteString(dst, apiSample)
}

func (cfg *Config) ConfigName() string {
	return "api"
}

const apiSample = `
# The address to expose the management API on (host:port or ip:port or :port).
# If not set, the API is not exposed. (default "")
addr = ""
`
