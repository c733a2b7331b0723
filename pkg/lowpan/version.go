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

import "strconv"

// Version is the 16-bit sequence number of the Authoritative Border Router
// Option. Versions use serial number arithmetic (RFC 1982), so 0 follows 65535.
type Version uint16

// Next returns the version following v.
func (v Version) Next() Version {
	return v + 1
}

// NewerThan reports whether v is newer than o. Two versions exactly half the
// number space apart are not ordered, NewerThan is false both ways.
func (v Version) NewerThan(o Version) bool {
	return int16(v-o) > 0
}

// Compare returns +1 if v is newer than o, -1 if o is newer than v and 0
// otherwise.
func (v Version) Compare(o Version) int {
	switch d := int16(v - o); {
	case d > 0:
		return 1
	case d < 0 && d != -32768:
		return -1
	default:
		return 0
	}
}

func (v Version) String() string {
	return strconv.FormatUint(uint64(v), 10)
}
