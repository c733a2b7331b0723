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

import "github.com/sixlowpan/edgerouter/pkg/lowpan"

// SetVersion overwrites the version of c.
func SetVersion(c *Cache, v lowpan.Version) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.version = v
}

// SetRouterVersion overwrites the version of the cache owned by r.
func SetRouterVersion(r *Router, v lowpan.Version) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	SetVersion(r.cache, v)
}
