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

package pairset

import "testing"

func TestSet(t *testing.T) {
	var s Set
	if s.Contains(nil) {
		t.Errorf("empty set contains the empty sequence")
	}

	steps := []struct {
		p    []Pair
		want bool
	}{
		{nil, true},
		{[]Pair{}, false}, // nil and empty are the same sequence
		{[]Pair{{0, 1}, {2, 3}}, true},
		{[]Pair{{0, 1}, {2, 3}}, false},
		{[]Pair{{2, 3}, {0, 1}}, true}, // order matters
		{[]Pair{{0, 1}}, true},         // prefix is a different member
		{[]Pair{{1, 0}, {3, 2}}, true}, // swapped coordinates are different
		{[]Pair{{300, 1}, {2, 70000}}, true},
		{[]Pair{{300, 1}, {2, 70000}}, false},
	}
	wantLen := 0
	for i, st := range steps {
		if got := s.Add(st.p); got != st.want {
			t.Errorf("step %d: Add(%v) = %v, want %v", i, st.p, got, st.want)
		}
		if st.want {
			wantLen++
		}
		if !s.Contains(st.p) {
			t.Errorf("step %d: Contains(%v) = false after Add", i, st.p)
		}
	}
	if s.Len() != wantLen {
		t.Errorf("Len() = %d, want %d", s.Len(), wantLen)
	}
}

func TestSetDoesNotRetain(t *testing.T) {
	var s Set
	p := []Pair{{1, 1}, {2, 2}}
	s.Add(p)
	p[0] = Pair{5, 5}
	if s.Contains(p) {
		t.Errorf("Contains(%v) = true, set retained the caller's slice", p)
	}
	if !s.Contains([]Pair{{1, 1}, {2, 2}}) {
		t.Errorf("original member lost after mutating the caller's slice")
	}
}
