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

package lowpan_test

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixlowpan/edgerouter/pkg/lowpan"
)

func TestValidateRouterAddr(t *testing.T) {
	testCases := map[string]struct {
		Addr         string
		PANID        uint16
		ErrAssertion assert.ErrorAssertionFunc
	}{
		"valid default PAN": {
			Addr:         "2001:db8::1034:ff:fe00:7",
			PANID:        lowpan.DefaultPANID,
			ErrAssertion: assert.NoError,
		},
		"valid other PAN": {
			Addr:         "fd00:1:2:3:a3cd:ff:fe00:ff",
			PANID:        0xa1cd,
			ErrAssertion: assert.NoError,
		},
		"wrong PAN": {
			Addr:         "2001:db8::1034:ff:fe00:7",
			PANID:        0xbeef,
			ErrAssertion: assert.Error,
		},
		"U/L bit not flipped": {
			Addr:         "2001:db8::1234:ff:fe00:7",
			PANID:        lowpan.DefaultPANID,
			ErrAssertion: assert.Error,
		},
		"word 5 mismatch": {
			Addr:         "2001:db8::1034:fe:fe00:7",
			PANID:        lowpan.DefaultPANID,
			ErrAssertion: assert.Error,
		},
		"word 6 mismatch": {
			Addr:         "2001:db8::1034:ff:ff00:7",
			PANID:        lowpan.DefaultPANID,
			ErrAssertion: assert.Error,
		},
		"16-bit short address": {
			Addr:         "2001:db8::1034:ff:fe00:107",
			PANID:        lowpan.DefaultPANID,
			ErrAssertion: assert.Error,
		},
		"IPv4": {
			Addr:         "192.0.2.1",
			PANID:        lowpan.DefaultPANID,
			ErrAssertion: assert.Error,
		},
		"IPv4 mapped": {
			Addr:         "::ffff:192.0.2.1",
			PANID:        lowpan.DefaultPANID,
			ErrAssertion: assert.Error,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := lowpan.ValidateRouterAddr(netip.MustParseAddr(tc.Addr), tc.PANID)
			tc.ErrAssertion(t, err)
			if err != nil {
				assert.ErrorIs(t, err, lowpan.ErrAddressInvalid)
			}
		})
	}
}

func TestShortAddr(t *testing.T) {
	assert.Equal(t, uint8(0x07), lowpan.ShortAddr(netip.MustParseAddr("2001:db8::1034:ff:fe00:7")))
	assert.Equal(t, uint8(0xff), lowpan.ShortAddr(netip.MustParseAddr("fd00::1034:ff:fe00:ff")))
}

func TestRouterPrefix(t *testing.T) {
	a := netip.MustParseAddr("2001:db8:0:42:1034:ff:fe00:7")
	assert.Equal(t, netip.MustParsePrefix("2001:db8:0:42::/64"), lowpan.RouterPrefix(a))
}

func TestRouterAddr(t *testing.T) {
	prefix := netip.MustParsePrefix("2001:db8:0:42::/64")
	a := lowpan.RouterAddr(prefix, lowpan.DefaultPANID, 9)
	assert.Equal(t, netip.MustParseAddr("2001:db8:0:42:1034:ff:fe00:9"), a)
	assert.NoError(t, lowpan.ValidateRouterAddr(a, lowpan.DefaultPANID))
	assert.Equal(t, uint8(9), lowpan.ShortAddr(a))
	assert.Equal(t, prefix, lowpan.RouterPrefix(a))
}
