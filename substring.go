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

package lcs

import "slices"

// Substring is the longest contiguous run of elements shared by two slices x and y.
//
// Substring borrows x and y, the slices returned by [Substring.X] and [Substring.Y] alias them.
type Substring[T any] struct {
	x, y       []T
	posX, posY int
	n          int
}

// NewSubstring finds the longest common substring of x and y.
//
// If there are multiple longest common substrings, the one starting earliest in x is returned and
// among those the one starting earliest in y. The search compares every pair of start positions and
// takes O(NMK) time where K is the length of the longest common substring.
func NewSubstring[T comparable](x, y []T) *Substring[T] {
	return NewSubstringFunc(x, y, func(a, b T) bool { return a == b })
}

// NewSubstringFunc finds the longest common substring of x and y using the provided equality
// comparison. See [NewSubstring] for details.
func NewSubstringFunc[T any](x, y []T, eq func(a, b T) bool) *Substring[T] {
	s := &Substring[T]{x: x, y: y}
	for i := range x {
		// No run starting here can be longer than the current best.
		if len(x)-i <= s.n {
			break
		}
		for j := range y {
			k := 0
			for i+k < len(x) && j+k < len(y) && eq(x[i+k], y[j+k]) {
				k++
			}
			if k > s.n {
				s.posX, s.posY, s.n = i, j, k
			}
		}
	}
	return s
}

// Len returns the length of the longest common substring.
func (s *Substring[T]) Len() int { return s.n }

// PosX returns the start position of the longest common substring in x.
func (s *Substring[T]) PosX() int { return s.posX }

// PosY returns the start position of the longest common substring in y.
func (s *Substring[T]) PosY() int { return s.posY }

// X returns the longest common substring as a sub-slice of x.
func (s *Substring[T]) X() []T { return s.x[s.posX : s.posX+s.n : s.posX+s.n] }

// Y returns the longest common substring as a sub-slice of y.
func (s *Substring[T]) Y() []T { return s.y[s.posY : s.posY+s.n : s.posY+s.n] }

// Pairs returns the positions of the longest common substring in x and y.
func (s *Substring[T]) Pairs() []Pair {
	out := make([]Pair, s.n)
	for k := range out {
		out[k] = Pair{X: s.posX + k, Y: s.posY + k}
	}
	return out
}

// Clone returns a copy of the longest common substring taken from x.
func (s *Substring[T]) Clone() []T {
	return slices.Clone(s.X())
}
