// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package split implements splits
// (i.e., bipartitions of a leaf set)
// as sets of leaf indices.
//
// A split stores only one side of the bipartition,
// the other side is implicit
// and can be obtained with Complement.
// All splits compared with each other
// are expected to be defined over the same leaf universe.
package split

import (
	"math/bits"
	"strconv"
	"strings"
)

const wordSize = 64

// A Split is a set of leaf indices.
// The zero value is an empty split.
type Split struct {
	w []uint64
}

// New returns an empty split
// with room for n leaves.
func New(n int) Split {
	if n < 0 {
		n = 0
	}
	return Split{w: make([]uint64, (n+wordSize-1)/wordSize)}
}

// FromIndices returns a split
// with the indicated leaf indices.
func FromIndices(idx ...int) Split {
	var s Split
	for _, i := range idx {
		s.AddOne(i)
	}
	return s
}

// AddOne adds a leaf index to the split.
func (s *Split) AddOne(i int) {
	if i < 0 {
		return
	}
	wd := i / wordSize
	for len(s.w) <= wd {
		s.w = append(s.w, 0)
	}
	s.w[wd] |= 1 << uint(i%wordSize)
}

// RemoveOne removes a leaf index from the split.
func (s *Split) RemoveOne(i int) {
	if i < 0 {
		return
	}
	wd := i / wordSize
	if wd >= len(s.w) {
		return
	}
	s.w[wd] &^= 1 << uint(i%wordSize)
}

// Has returns true if the leaf index is in the split.
func (s Split) Has(i int) bool {
	if i < 0 {
		return false
	}
	wd := i / wordSize
	if wd >= len(s.w) {
		return false
	}
	return s.w[wd]&(1<<uint(i%wordSize)) != 0
}

// Len returns the number of leaves in the split.
func (s Split) Len() int {
	n := 0
	for _, w := range s.w {
		n += bits.OnesCount64(w)
	}
	return n
}

// Max returns the largest leaf index in the split,
// or -1 if the split is empty.
func (s Split) Max() int {
	for i := len(s.w) - 1; i >= 0; i-- {
		if s.w[i] == 0 {
			continue
		}
		return i*wordSize + wordSize - 1 - bits.LeadingZeros64(s.w[i])
	}
	return -1
}

// Indices returns the leaf indices of the split
// in increasing order.
func (s Split) Indices() []int {
	idx := make([]int, 0, s.Len())
	for i, w := range s.w {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			idx = append(idx, i*wordSize+b)
			w &= w - 1
		}
	}
	return idx
}

// IsEmpty returns true if the split has no leaves.
func (s Split) IsEmpty() bool {
	for _, w := range s.w {
		if w != 0 {
			return false
		}
	}
	return true
}

// Contains returns true if every leaf of o
// is also in s.
// A split contains any split equal to itself.
func (s Split) Contains(o Split) bool {
	for i, w := range o.w {
		var sw uint64
		if i < len(s.w) {
			sw = s.w[i]
		}
		if w&^sw != 0 {
			return false
		}
	}
	return true
}

// ProperlyContains returns true if s contains o
// and they are different.
func (s Split) ProperlyContains(o Split) bool {
	return s.Contains(o) && !o.Contains(s)
}

// DisjointFrom returns true if s and o
// do not share any leaf.
func (s Split) DisjointFrom(o Split) bool {
	n := min(len(s.w), len(o.w))
	for i := 0; i < n; i++ {
		if s.w[i]&o.w[i] != 0 {
			return false
		}
	}
	return true
}

// Crosses returns true if s and o overlap
// but neither one contains the other.
// Two crossing splits can not be present
// in the same tree.
func (s Split) Crosses(o Split) bool {
	if s.DisjointFrom(o) {
		return false
	}
	if s.Contains(o) || o.Contains(s) {
		return false
	}
	return true
}

// IsCompatibleWith returns true
// if s does not cross any of the given splits.
func (s Split) IsCompatibleWith(splits []Split) bool {
	for _, o := range splits {
		if s.Crosses(o) {
			return false
		}
	}
	return true
}

// Complement flips the membership
// of every leaf index in [0, n).
func (s *Split) Complement(n int) {
	if n <= 0 {
		return
	}
	wd := (n + wordSize - 1) / wordSize
	for len(s.w) < wd {
		s.w = append(s.w, 0)
	}
	for i := 0; i < wd; i++ {
		mask := ^uint64(0)
		if i == wd-1 && n%wordSize != 0 {
			mask = 1<<uint(n%wordSize) - 1
		}
		s.w[i] ^= mask
	}
}

// Intersect returns a new split
// with the leaves shared by s and o.
func (s Split) Intersect(o Split) Split {
	n := min(len(s.w), len(o.w))
	r := Split{w: make([]uint64, n)}
	for i := 0; i < n; i++ {
		r.w[i] = s.w[i] & o.w[i]
	}
	return r
}

// Union returns a new split
// with the leaves of s and o.
func (s Split) Union(o Split) Split {
	r := s.Clone()
	for len(r.w) < len(o.w) {
		r.w = append(r.w, 0)
	}
	for i, w := range o.w {
		r.w[i] |= w
	}
	return r
}

// Clone returns an independent copy of the split.
func (s Split) Clone() Split {
	if s.w == nil {
		return Split{}
	}
	w := make([]uint64, len(s.w))
	copy(w, s.w)
	return Split{w: w}
}

// Equal returns true if both splits
// have the same leaves.
func (s Split) Equal(o Split) bool {
	n := max(len(s.w), len(o.w))
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(s.w) {
			a = s.w[i]
		}
		if i < len(o.w) {
			b = o.w[i]
		}
		if a != b {
			return false
		}
	}
	return true
}

// Key returns a string that identifies the leaf set
// and can be used as a map key.
// Equal splits have the same key.
func (s Split) Key() string {
	n := len(s.w)
	for n > 0 && s.w[n-1] == 0 {
		n--
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(s.w[i], 16))
	}
	return b.String()
}

// String returns the leaf indices of the split
// in the form {0,1,5}.
func (s Split) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, x := range s.Indices() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte('}')
	return b.String()
}
