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
	"io"
	"sync"

	"github.com/songgao/water"
	"github.com/vishvananda/netlink"

	"github.com/sixlowpan/edgerouter/edge/control"
	"github.com/sixlowpan/edgerouter/pkg/log"
	"github.com/sixlowpan/edgerouter/pkg/private/serrors"
)

var _ control.LinkLayer = (*TUNLink)(nil)

// TUNLink is a link layer that stands in for the radio with a TUN device.
// Only control.TransceiverTUN is supported.
type TUNLink struct {
	// Name is the name of the TUN device.
	Name string

	mtx   sync.Mutex
	dev   io.ReadWriteCloser
	short uint8
}

// Init opens (or creates) the TUN device and sets it up. Re-initializing
// keeps the open device and only updates the short address.
func (l *TUNLink) Init(ctx context.Context, trx control.Transceiver, short uint8) error {
	if trx != control.TransceiverTUN {
		return serrors.JoinNoStack(ErrUnsupportedTransceiver, nil, "transceiver", trx)
	}
	l.mtx.Lock()
	defer l.mtx.Unlock()

	logger := log.FromCtx(ctx)
	if l.dev == nil {
		dev, err := water.New(water.Config{
			DeviceType:             water.TUN,
			PlatformSpecificParams: water.PlatformSpecificParams{Name: l.Name},
		})
		if err != nil {
			return serrors.Wrap("opening tun device", err, "name", l.Name)
		}
		logger.Debug("Created tun interface", "name", dev.Name())
		l.dev = dev
	}
	link, err := netlink.LinkByName(l.Name)
	if err != nil {
		return serrors.Wrap("looking up tun link", err, "name", l.Name)
	}
	if err := netlink.LinkSetUp(link); err != nil {
		return serrors.Wrap("setting tun link up", err, "name", l.Name)
	}
	l.short = short
	logger.Info("Link layer up", "name", l.Name, "transceiver", trx, "short_addr", short)
	return nil
}

// ShortAddr returns the short address of the last successful Init.
func (l *TUNLink) ShortAddr() uint8 {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.short
}

// Close closes the TUN device.
func (l *TUNLink) Close() error {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if l.dev == nil {
		return nil
	}
	err := l.dev.Close()
	l.dev = nil
	return err
}
