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

import (
	"cmp"
	"iter"
	"slices"

	"znkr.io/lcs/internal/pairset"
)

// All returns every distinct longest common subsequence of x and y, each as a sequence of
// position pairs in increasing order. The result is sorted lexicographically by position pairs.
//
// Two subsequences are distinct if they differ in at least one position, even if they consist of
// the same values. The result always contains at least one sequence: if x and y have nothing in
// common, the only longest common subsequence is the empty one.
//
// Warning: The number of longest common subsequences can be exponential in the length of the
// inputs. All does not limit the output in any way.
func (s *Subsequence[T]) All() [][]Pair {
	all := slices.Collect(s.AllSeq())
	slices.SortFunc(all, comparePairs)
	return all
}

// AllSeq returns an iterator over every distinct longest common subsequence of x and y in the
// order they are discovered. Every yielded slice is freshly allocated and owned by the caller.
//
// At a cell where dropping an element from y and dropping an element from x lead to equally long
// subsequences, both alternatives are explored (the one dropping from y first). Different walks
// through the table can arrive at the same position pairs, those are yielded only once.
//
// Warning: The number of longest common subsequences can be exponential in the length of the
// inputs. Stop iterating to bound the work.
func (s *Subsequence[T]) AllSeq() iter.Seq[[]Pair] {
	return func(yield func([]Pair) bool) {
		var seen pairset.Set

		// The walk uses an explicit stack to avoid a recursion depth of len(x)+len(y). path holds
		// the pairs matched on the way from (n, m) to the current cell in reverse order.
		path := make([]Pair, 0, s.Len())
		stack := make([]frame, 1, len(s.x)+len(s.y)+1)
		stack[0] = frame{i: len(s.x), j: len(s.y)}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			i, j := f.i, f.j
			if i == 0 || j == 0 {
				if seen.Add(path) && !yield(reversed(path)) {
					return
				}
				stack = stack[:len(stack)-1]
				continue
			}

			switch f.next {
			case tryMatch:
				if s.eq(s.x[i-1], s.y[j-1]) {
					f.next, f.matched = done, true
					path = append(path, Pair{X: i - 1, Y: j - 1})
					stack = append(stack, frame{i: i - 1, j: j - 1})
					continue
				}
				f.next = tryUp
				if s.t.at(i, j-1) >= s.t.at(i-1, j) {
					stack = append(stack, frame{i: i, j: j - 1})
					continue
				}
				fallthrough
			case tryUp:
				f.next = done
				if s.t.at(i-1, j) >= s.t.at(i, j-1) {
					stack = append(stack, frame{i: i - 1, j: j})
					continue
				}
				fallthrough
			case done:
				if f.matched {
					path = path[:len(path)-1]
				}
				stack = stack[:len(stack)-1]
			}
		}
	}
}

// frame is the traversal state of one table cell.
type frame struct {
	i, j    int
	next    step
	matched bool // the cell appended a pair to the path that must be removed when leaving it
}

// step is the next thing to try at a cell.
type step uint8

const (
	tryMatch step = iota // match the elements or, if they differ, go left (drop from y)
	tryUp                // go up (drop from x)
	done                 // all alternatives explored
)

func reversed(p []Pair) []Pair {
	out := make([]Pair, len(p))
	for k, q := range p {
		out[len(p)-1-k] = q
	}
	return out
}

func comparePairs(a, b []Pair) int {
	return slices.CompareFunc(a, b, func(p, q Pair) int {
		return cmp.Or(cmp.Compare(p.X, q.X), cmp.Compare(p.Y, q.Y))
	})
}
