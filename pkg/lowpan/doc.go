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

// Package lowpan contains the value types an IPv6 over low-power wireless
// (6LoWPAN) border router advertises to the hosts of its segment: header
// compression contexts, on-link prefixes and the version stamp of the
// Authoritative Border Router Option (ABRO).
//
// The package also validates router addresses. A border router address must
// carry an interface identifier derived from a link-layer short address:
//
//	prefix(64) | PAN ID ^ 0x0200 | 0x00ff | 0xfe00 | 0x00 | short
//
// Only 8-bit short addresses are supported, the byte before the short
// address must be zero.
package lowpan
