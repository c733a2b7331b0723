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
	"net/netip"

	"github.com/sixlowpan/edgerouter/pkg/lowpan"
)

// Snapshot is a consistent copy of the border router cache. It holds what an
// Authoritative Border Router Option advertisement carries: the version, the
// router address and the active contexts and prefixes.
type Snapshot struct {
	Version    lowpan.Version   `json:"version"`
	RouterAddr netip.Addr       `json:"router_addr"`
	Contexts   []lowpan.Context `json:"contexts"`
	Prefixes   []lowpan.Prefix  `json:"prefixes"`
}

// AcceptSnapshot reports whether a host that cached version cached should
// take an advertisement with version received. Advertisements that are not
// newer are discarded.
func AcceptSnapshot(cached, received lowpan.Version) bool {
	return received.NewerThan(cached)
}
