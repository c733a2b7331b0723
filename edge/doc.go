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

// Package edge implements the state of an authoritative 6LoWPAN border
// router: the cache of header compression contexts and on-link prefixes it
// advertises, stamped with the version of the Authoritative Border Router
// Option (ABRO).
//
// Every successful mutation of the cache advances the version exactly once,
// and a failing operation leaves the cache untouched. The Router bootstraps
// the cache from the router address, registers the address with the interface
// subsystem and binds context 0 to the router's own /64 prefix.
package edge
