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

package textdiff_test

import (
	"fmt"

	"znkr.io/lcs"
	"znkr.io/lcs/textdiff"
	"znkr.io/lcs/textdiff/color"
)

func ExampleUnified() {
	x := `this paragraph
is not
changed and
barely long
enough to
create a
new hunk

this paragraph
is going to be
removed
`

	y := `this is a new paragraph
that is inserted at the top

this paragraph
is not
changed and
barely long
enough to
create a
new hunk
`
	fmt.Print(textdiff.Unified(x, y))
	// Output:
	// @@ -1,3 +1,6 @@
	// +this is a new paragraph
	// +that is inserted at the top
	// +
	//  this paragraph
	//  is not
	//  changed and
	// @@ -5,7 +8,3 @@
	//  enough to
	//  create a
	//  new hunk
	// -
	// -this paragraph
	// -is going to be
	// -removed
}

// When a block is duplicated, the tie-break rule keeps the original lines matched at the end.
func ExampleUnified_duplicatedBlock() {
	x := `// ...
["foo", "bar", "baz"].map do |i|
  i.upcase
end
`

	y := `// ...
["foo", "bar", "baz"].map do |i|
  i
end

["foo", "bar", "baz"].map do |i|
  i.upcase
end
`
	fmt.Print(textdiff.Unified(x, y))
	// Output:
	// @@ -1,4 +1,8 @@
	//  // ...
	// +["foo", "bar", "baz"].map do |i|
	// +  i
	// +end
	// +
	//  ["foo", "bar", "baz"].map do |i|
	//    i.upcase
	//  end
}

func ExampleTerminalColors() {
	x := "a\nb\nc\n"
	y := "a\nB\nc\n"
	out := textdiff.Unified(x, y, lcs.Context(0), textdiff.TerminalColors(color.Deletes(1, 31)))
	fmt.Printf("%q\n", out)
	// Output:
	// "\x1b[36m@@ -2,1 +2,1 @@\x1b[0m\n\x1b[1;31m-b\x1b[0m\n\x1b[32m+B\x1b[0m\n"
}

func ExampleHunks() {
	x := []byte("a\nb\nc\nd\ne\nf\ng\nh\n")
	y := []byte("a\nB\nc\nd\ne\nf\ng\nH\n")
	for _, h := range textdiff.Hunks(x, y, lcs.Context(1)) {
		fmt.Printf("lines %d-%d of x, %d-%d of y\n", h.LineNoX, h.EndLineNoX, h.LineNoY, h.EndLineNoY)
		for _, e := range h.Edits {
			fmt.Printf("  %v %q\n", e.Op, e.Line)
		}
	}
	// Output:
	// lines 0-3 of x, 0-3 of y
	//   Match "a\n"
	//   Delete "b\n"
	//   Insert "B\n"
	//   Match "c\n"
	// lines 6-8 of x, 6-8 of y
	//   Match "g\n"
	//   Delete "h\n"
	//   Insert "H\n"
}
