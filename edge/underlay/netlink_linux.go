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

//go:build linux

package underlay

import (
	"context"
	"fmt"
	"net/netip"
	"os"
	"path/filepath"

	"github.com/vishvananda/netlink"
	"go4.org/netipx"
	"golang.org/x/sys/unix"

	"github.com/sixlowpan/edgerouter/edge/control"
	"github.com/sixlowpan/edgerouter/pkg/log"
	"github.com/sixlowpan/edgerouter/pkg/lowpan"
	"github.com/sixlowpan/edgerouter/pkg/private/serrors"
)

// DefaultSysctlRoot is where the kernel parameters are mounted.
const DefaultSysctlRoot = "/proc/sys"

var _ control.Interface = (*NetlinkInterface)(nil)

// NetlinkInterface configures the radio network interface of the host.
type NetlinkInterface struct {
	// Name is the name of the network interface.
	Name string
	// SysctlRoot overrides DefaultSysctlRoot.
	SysctlRoot string
}

// AddUnicastAddr adds a to the interface with its /64 on-link prefix. The
// address replaces an existing entry for the same address. Lifetimes of 0
// are infinite.
func (i *NetlinkInterface) AddUnicastAddr(
	ctx context.Context,
	a netip.Addr,
	state control.AddrState,
	valid, preferred uint32,
	typ control.AddrType,
) error {

	addr, err := netlinkAddr(a, state, valid, preferred, typ)
	if err != nil {
		return err
	}
	link, err := netlink.LinkByName(i.Name)
	if err != nil {
		return serrors.Wrap("looking up link", err, "name", i.Name)
	}
	if err := netlink.AddrReplace(link, addr); err != nil {
		return serrors.Wrap("adding address", err, "name", i.Name, "addr", a)
	}
	log.FromCtx(ctx).Debug("Address added", "name", i.Name, "addr", addr.IPNet,
		"state", state)
	return nil
}

// MarkAsRouter enables IPv6 forwarding on the interface.
func (i *NetlinkInterface) MarkAsRouter(ctx context.Context) error {
	p := i.forwardingPath()
	if err := os.WriteFile(p, []byte("1\n"), 0o644); err != nil {
		return serrors.Wrap("enabling ipv6 forwarding", err, "path", p)
	}
	log.FromCtx(ctx).Debug("Interface marked as router", "name", i.Name)
	return nil
}

func (i *NetlinkInterface) forwardingPath() string {
	root := i.SysctlRoot
	if root == "" {
		root = DefaultSysctlRoot
	}
	return filepath.Join(root, "net", "ipv6", "conf", i.Name, "forwarding")
}

func netlinkAddr(
	a netip.Addr,
	state control.AddrState,
	valid, preferred uint32,
	typ control.AddrType,
) (*netlink.Addr, error) {

	if typ != control.AddrTypeUnicast {
		return nil, serrors.JoinNoStack(ErrUnsupportedAddrType, nil, "type", typ)
	}
	if !a.Is6() || a.Is4In6() {
		return nil, serrors.New("not an IPv6 address", "addr", a)
	}
	prefix := netip.PrefixFrom(a, lowpan.RouterPrefixLen)
	addr := &netlink.Addr{
		IPNet:       netipx.PrefixIPNet(prefix),
		ValidLft:    int(valid),
		PreferedLft: int(preferred),
	}
	switch state {
	case control.AddrStatePreferred:
		addr.Flags = unix.IFA_F_NODAD
	case control.AddrStateDeprecated:
		addr.Flags = unix.IFA_F_DEPRECATED
	case control.AddrStateTentative:
	default:
		return nil, serrors.New("unknown address state", "state", fmt.Sprint(state))
	}
	return addr, nil
}
