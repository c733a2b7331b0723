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
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"

	"github.com/sixlowpan/edgerouter/pkg/private/serrors"
)

// DefaultPANID is the IEEE 802.15.4 PAN identifier used when none is configured.
const DefaultPANID uint16 = 0x1234

// RouterPrefixLen is the length of the on-link prefix derived from the router
// address.
const RouterPrefixLen = 64

// Fixed interface identifier words of an address derived from a 16-bit short
// address (RFC 4944 section 6, RFC 2464 section 4): PAN ID with the U/L bit
// flipped, then 0x00ff, 0xfe00, then the short address.
const (
	iidUniversalLocal uint16 = 0x0200
	iidWord5          uint16 = 0x00ff
	iidWord6          uint16 = 0xfe00
)

// ErrAddressInvalid indicates that a router address does not follow the
// short address interface identifier convention.
var ErrAddressInvalid = errors.New("router address invalid")

// ValidateRouterAddr checks that the interface identifier of a was derived
// from an 8-bit link-layer short address on the PAN panID. Only the low byte
// of the 16-bit short address may be used.
func ValidateRouterAddr(a netip.Addr, panID uint16) error {
	if !a.Is6() || a.Is4In6() {
		return serrors.JoinNoStack(ErrAddressInvalid, nil, "addr", a, "reason", "not IPv6")
	}
	b := a.As16()
	expected := [3]uint16{panID ^ iidUniversalLocal, iidWord5, iidWord6}
	for i, want := range expected {
		word := 4 + i
		if got := binary.BigEndian.Uint16(b[2*word:]); got != want {
			return serrors.JoinNoStack(ErrAddressInvalid, nil,
				"addr", a,
				"word", word,
				"expected", fmt.Sprintf("%#04x", want),
				"actual", fmt.Sprintf("%#04x", got),
			)
		}
	}
	if b[14] != 0 {
		return serrors.JoinNoStack(ErrAddressInvalid, nil,
			"addr", a, "reason", "short address exceeds 8 bits")
	}
	return nil
}

// ShortAddr returns the 8-bit link-layer short address carried in the last
// byte of a. The result is only meaningful for addresses that pass
// ValidateRouterAddr.
func ShortAddr(a netip.Addr) uint8 {
	b := a.As16()
	return b[15]
}

// RouterPrefix returns the /64 on-link prefix containing a.
func RouterPrefix(a netip.Addr) netip.Prefix {
	p, _ := a.Prefix(RouterPrefixLen)
	return p
}

// RouterAddr builds the router address for the short address on the PAN
// panID within the /64 of prefix.
func RouterAddr(prefix netip.Prefix, panID uint16, short uint8) netip.Addr {
	b := prefix.Masked().Addr().As16()
	binary.BigEndian.PutUint16(b[8:], panID^iidUniversalLocal)
	binary.BigEndian.PutUint16(b[10:], iidWord5)
	binary.BigEndian.PutUint16(b[12:], iidWord6)
	b[14] = 0
	b[15] = short
	return netip.AddrFrom16(b)
}
