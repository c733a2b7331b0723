// Copyright 2020 Anapaya Systems
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

// Package control specifies the collaborators the edge router drives during
// bootstrap: the link layer on top of the radio transceiver and the IPv6
// interface subsystem. It also specifies the read interface the header
// compression engine uses on the context table.
package control

import (
	"context"
	"net/netip"

	"github.com/sixlowpan/edgerouter/pkg/lowpan"
	"github.com/sixlowpan/edgerouter/pkg/private/serrors"
)

// Transceiver identifies the radio transceiver driver the link layer runs on.
type Transceiver string

// Supported transceivers. TransceiverTUN emulates the radio with a TUN device.
const (
	TransceiverCC1100    Transceiver = "cc1100"
	TransceiverCC2420    Transceiver = "cc2420"
	TransceiverAT86RF231 Transceiver = "at86rf231"
	TransceiverMC1322X   Transceiver = "mc1322x"
	TransceiverTUN       Transceiver = "tun"
)

// ParseTransceiver parses s into a known transceiver.
func ParseTransceiver(s string) (Transceiver, error) {
	switch t := Transceiver(s); t {
	case TransceiverCC1100, TransceiverCC2420, TransceiverAT86RF231,
		TransceiverMC1322X, TransceiverTUN:
		return t, nil
	default:
		return "", serrors.New("unknown transceiver", "transceiver", s)
	}
}

// AddrState is the state an address is added in.
type AddrState int

const (
	AddrStateTentative AddrState = iota
	AddrStatePreferred
	AddrStateDeprecated
)

func (s AddrState) String() string {
	switch s {
	case AddrStateTentative:
		return "tentative"
	case AddrStatePreferred:
		return "preferred"
	case AddrStateDeprecated:
		return "deprecated"
	default:
		return "unknown"
	}
}

// AddrType is the type of an interface address.
type AddrType int

const (
	AddrTypeUnicast AddrType = iota
	AddrTypeMulticast
	AddrTypeAnycast
)

// LinkLayer initializes the 6LoWPAN link layer on top of a transceiver.
type LinkLayer interface {
	// Init brings the link layer up on trx with the given 8-bit short
	// address.
	Init(ctx context.Context, trx Transceiver, short uint8) error
}

// Interface is the IPv6 interface/address subsystem of the router's radio
// interface.
type Interface interface {
	// AddUnicastAddr adds a to the interface. Lifetimes are in seconds, 0
	// means the address does not expire.
	AddUnicastAddr(ctx context.Context, a netip.Addr, state AddrState,
		valid, preferred uint32, typ AddrType) error
	// MarkAsRouter switches the interface to router behavior.
	MarkAsRouter(ctx context.Context) error
}

// ContextTable is the read access the header compression engine has on the
// contexts of the border router.
type ContextTable interface {
	ContextByID(id uint8) (lowpan.Context, bool)
	ContextByPrefix(prefix netip.Prefix) (lowpan.Context, bool)
	ContextForAddr(a netip.Addr) (lowpan.Context, bool)
}
