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
	"github.com/sixlowpan/edgerouter/pkg/private/serrors"
)

// boundedSet is a slice with a fixed capacity. Appending beyond the capacity
// fails without modifying the set.
type boundedSet[T any] struct {
	items    []T
	capacity int
}

func newBoundedSet[T any](capacity int) boundedSet[T] {
	return boundedSet[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

func (s *boundedSet[T]) Len() int {
	return len(s.items)
}

func (s *boundedSet[T]) Cap() int {
	return s.capacity
}

func (s *boundedSet[T]) Append(v T) error {
	if len(s.items) >= s.capacity {
		return serrors.JoinNoStack(ErrCacheFull, nil, "capacity", s.capacity)
	}
	s.items = append(s.items, v)
	return nil
}

// Index returns the index of the first item satisfying f, or -1.
func (s *boundedSet[T]) Index(f func(T) bool) int {
	for i, v := range s.items {
		if f(v) {
			return i
		}
	}
	return -1
}

func (s *boundedSet[T]) Set(i int, v T) {
	s.items[i] = v
}

func (s *boundedSet[T]) Get(i int) T {
	return s.items[i]
}

// Items returns a copy of the items.
func (s *boundedSet[T]) Items() []T {
	return append([]T(nil), s.items...)
}

// carry copies as many items of other as fit into s.
func (s *boundedSet[T]) carry(other []T) {
	n := min(len(other), s.capacity)
	s.items = append(s.items[:0], other[:n]...)
}
