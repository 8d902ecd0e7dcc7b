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

// Package byteview lets text functions accept both string and []byte without copying.
//
// A ByteView is comparable, so a slice of lines can be handed to the generic LCS engine directly.
// Views never own their memory, the input they were created from must not be modified while a view
// of it is alive.
package byteview

import (
	"slices"
	"strings"
	"sync"
	"unsafe"
)

// ByteView is an immutable view of a string or a []byte.
type ByteView struct {
	data string
}

// From returns a view of in.
func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

// To returns the memory viewed by v as T. The result aliases the input v was created from.
func To[T string | []byte](v ByteView) T {
	switch any((*T)(nil)).(type) {
	case *string:
		return T(v.data)
	case *[]byte:
		return T(unsafe.Slice(unsafe.StringData(v.data), len(v.data)))
	}
	panic("never reached")
}

func (v ByteView) Len() int { return len(v.data) }

func (v ByteView) String() string { return v.data }

// HasNewline reports whether v ends in '\n'.
func (v ByteView) HasNewline() bool {
	return len(v.data) > 0 && v.data[len(v.data)-1] == '\n'
}

// TrimNewline returns v without a trailing '\n'.
func (v ByteView) TrimNewline() ByteView {
	return ByteView{strings.TrimSuffix(v.data, "\n")}
}

// SplitLines splits v after every '\n'. Every line keeps its newline character, except for the
// last one if v doesn't end in a newline.
func SplitLines(v ByteView) []ByteView {
	s := v.data
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	lines := make([]ByteView, 0, n)
	for len(s) > 0 {
		end := strings.IndexByte(s, '\n') + 1
		if end == 0 {
			end = len(s)
		}
		lines = append(lines, ByteView{s[:end]})
		s = s[end:]
	}
	return lines
}

// Builder accumulates output and hands it out as T without a final copy.
type Builder[T string | []byte] struct {
	_   [0]sync.Mutex // don't copy
	buf []byte
}

func (b *Builder[T]) Grow(n int) {
	b.buf = slices.Grow(b.buf, n)
}

func (b *Builder[T]) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *Builder[T]) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

func (b *Builder[T]) WriteByteView(v ByteView) (int, error) {
	return b.WriteString(v.data)
}

// Build returns the accumulated output and resets the builder.
func (b *Builder[T]) Build() T {
	buf := b.buf
	b.buf = nil
	return To[T](ByteView{unsafe.String(unsafe.SliceData(buf), len(buf))})
}
