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

package lowpan

import (
	"fmt"
	"net/netip"
)

// InfiniteLifetime is the lifetime value that never expires (RFC 4861
// section 4.6.2).
const InfiniteLifetime uint32 = 0xffffffff

// Prefix is an on-link prefix as advertised in a prefix information option.
type Prefix struct {
	// Prefix is the masked advertised prefix.
	Prefix netip.Prefix `json:"prefix"`
	// ValidLifetime is the valid lifetime in seconds.
	ValidLifetime uint32 `json:"valid_lifetime"`
	// PreferredLifetime is the preferred lifetime in seconds.
	PreferredLifetime uint32 `json:"preferred_lifetime"`
	// OnLink is the L flag.
	OnLink bool `json:"on_link"`
	// Autonomous is the A flag, hosts may autoconfigure addresses from it.
	Autonomous bool `json:"autonomous"`
}

func (p Prefix) String() string {
	return fmt.Sprintf("{Prefix: %s, Valid: %d, Preferred: %d, L: %t, A: %t}",
		p.Prefix, p.ValidLifetime, p.PreferredLifetime, p.OnLink, p.Autonomous)
}
