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

// Package underlay implements the edge router collaborators on a Linux host.
// The radio is emulated with a TUN device, the router address and the
// forwarding state are configured through netlink and sysctl.
package underlay

import (
	"errors"
)

// ErrUnsupportedTransceiver indicates a radio transceiver that cannot be
// driven from this host.
var ErrUnsupportedTransceiver = errors.New("unsupported transceiver")

// ErrUnsupportedAddrType indicates an address type the interface cannot be
// configured with.
var ErrUnsupportedAddrType = errors.New("unsupported address type")
