// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pairset provides position pairs and a set of position pair sequences.
//
// Two sequences are the same member if and only if they contain the same index pairs in the same
// order. The values stored at those positions are never consulted, equal values at different
// positions are different members.
package pairset

import "encoding/binary"

// Pair identifies one matched element by its index X in the first input and its index Y in the
// second input.
type Pair struct {
	X, Y int
}

// Set is a set of pair sequences. The zero value is an empty set ready to use.
type Set struct {
	members map[string]struct{}
	buf     []byte
}

// Len returns the number of members in the set.
func (s *Set) Len() int { return len(s.members) }

// Add adds p to the set and reports whether it was not a member before. The set does not retain p.
func (s *Set) Add(p []Pair) bool {
	s.buf = encode(s.buf[:0], p)
	if _, ok := s.members[string(s.buf)]; ok {
		return false
	}
	if s.members == nil {
		s.members = make(map[string]struct{})
	}
	s.members[string(s.buf)] = struct{}{}
	return true
}

// Contains reports whether p is a member of the set.
func (s *Set) Contains(p []Pair) bool {
	s.buf = encode(s.buf[:0], p)
	_, ok := s.members[string(s.buf)]
	return ok
}

// encode writes a self-delimiting encoding of p. The length prefix keeps the empty sequence
// distinct from every other member.
func encode(b []byte, p []Pair) []byte {
	b = binary.AppendUvarint(b, uint64(len(p)))
	for _, q := range p {
		b = binary.AppendUvarint(b, uint64(q.X))
		b = binary.AppendUvarint(b, uint64(q.Y))
	}
	return b
}
