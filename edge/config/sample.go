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

package config

const edgeSample = `
# The IPv6 address of the border router. The interface identifier must be
# derived from an 8-bit short address on the PAN, e.g. 1034:ff:fe00:<short>
# for PAN 0x1234. (required)
router_addr = "2001:db8:0:1:1034:ff:fe00:1"

# The IEEE 802.15.4 PAN identifier. (default 4660)
pan_id = 4660

# The radio transceiver: cc1100, cc2420, at86rf231, mc1322x or tun.
# (default "tun")
transceiver = "tun"

# The name of the radio network interface. (default "lowpan0")
interface = "lowpan0"

# The number of header compression contexts. At most 16. (default 16)
max_contexts = 16

# The number of on-link prefixes. (default 5)
max_prefixes = 5

# Additional contexts installed after initialization. Entries without an id
# get the lowest free id.
# [[edge.contexts]]
# id = 1
# prefix = "fd00:1::/64"
# lifetime = 60

# Additional prefixes installed after initialization.
# [[edge.prefixes]]
# prefix = "fd00:2::/64"
# valid_lifetime = 3600
# preferred_lifetime = 1800
# on_link = true
# autonomous = true
`
