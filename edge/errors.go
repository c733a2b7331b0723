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

import (
	"errors"

	"github.com/sixlowpan/edgerouter/pkg/lowpan"
	"github.com/sixlowpan/edgerouter/pkg/private/prom"
)

var (
	// ErrAddressInvalid indicates a router address that violates the short
	// address interface identifier convention.
	ErrAddressInvalid = lowpan.ErrAddressInvalid
	// ErrCacheFull indicates that the context or prefix set is at capacity.
	ErrCacheFull = errors.New("cache full")
	// ErrNullContext indicates that no context was passed.
	ErrNullContext = errors.New("nil context")
	// ErrNullPrefix indicates that no prefix was passed.
	ErrNullPrefix = errors.New("nil prefix")
	// ErrNotInitialized indicates an operation on a router that was not
	// successfully initialized yet.
	ErrNotInitialized = errors.New("edge router not initialized")
	// ErrInvalidContextID indicates a context ID outside of the cache
	// capacity.
	ErrInvalidContextID = errors.New("context id out of range")
	// ErrInvalidPrefix indicates a prefix that is not a valid IPv6 prefix.
	ErrInvalidPrefix = errors.New("invalid prefix")
)

var resultClassifier = prom.Classifier{
	ErrAddressInvalid:   prom.ErrValidate,
	ErrInvalidContextID: prom.ErrInvalidReq,
	ErrInvalidPrefix:    prom.ErrInvalidReq,
	ErrNullContext:      prom.ErrInvalidReq,
	ErrNullPrefix:       prom.ErrInvalidReq,
	ErrCacheFull:        prom.ErrFull,
	ErrNotInitialized:   prom.ErrUnavailable,
}
