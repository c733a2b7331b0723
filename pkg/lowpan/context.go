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

// MaxContextIDs is the number of context identifiers the 4-bit CID field of
// the compression header can address.
const MaxContextIDs = 16

// Context is a header compression context. The ID is what compressed headers
// refer to on the wire, redefining it to another prefix breaks in-flight
// packets compressed against the old prefix.
type Context struct {
	// ID is the context identifier.
	ID uint8 `json:"id"`
	// Prefix is the masked prefix the context compresses.
	Prefix netip.Prefix `json:"prefix"`
	// Compression indicates that the context may be used for compression
	// (the C flag of the 6LoWPAN context option).
	Compression bool `json:"compression"`
	// Lifetime is the valid lifetime of the context in minutes.
	Lifetime uint16 `json:"lifetime"`
}

func (c Context) String() string {
	return fmt.Sprintf("{ID: %d, Prefix: %s, C: %t, Lifetime: %dm}",
		c.ID, c.Prefix, c.Compression, c.Lifetime)
}

// Matches reports whether c is bound to exactly prefix, i.e. the same
// masked address and the same length.
func (c Context) Matches(prefix netip.Prefix) bool {
	return c.Prefix == prefix.Masked()
}
