// This file is part of rustvent-of-code - https://github.com/chuckries/rustvent-of-code-sub001
//
// Copyright 2019 The rustvent-of-code Authors
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

// Package knothash implements the knot hash: a ring of 256 marks twisted by
// reversing sub-lists of its elements, 64 rounds over the input lengths,
// folded with XOR into a 16 byte digest.
package knothash

import (
	"github.com/pkg/errors"
)

// Knot is a ring of marks numbered 0 to size-1, along with the current
// position and skip size of the twisting procedure. Both persist across calls
// to Twist.
type Knot struct {
	List []int
	pos  int
	skip int
}

// NewKnot returns a new Knot of the given size. The ring must hold at least
// one mark.
func NewKnot(size int) (*Knot, error) {
	if size < 1 {
		return nil, errors.Errorf("knothash: invalid ring size %d", size)
	}
	k := &Knot{List: make([]int, size)}
	for i := range k.List {
		k.List[i] = i
	}
	return k, nil
}

// Twist runs one round of the twisting procedure: for each length, it reverses
// the sub-list of that many elements starting at the current position,
// wrapping around the end of the ring, then moves the current position
// forward by the length plus the skip size and increments the skip size.
//
// Lengths larger than the ring size are invalid. They are checked before any
// twisting is done.
func (k *Knot) Twist(lengths []int) error {
	n := len(k.List)
	if n == 0 {
		return errors.New("knothash: empty ring")
	}
	for _, l := range lengths {
		if l < 0 || l > n {
			return errors.Errorf("knothash: invalid length %d for a ring of %d", l, n)
		}
	}
	for _, l := range lengths {
		k.reverse(l)
		k.pos = (k.pos + l + k.skip) % n
		k.skip++
	}
	return nil
}

func (k *Knot) reverse(l int) {
	n := len(k.List)
	for a, b := k.pos, k.pos+l-1; a < b; a, b = a+1, b-1 {
		k.List[a%n], k.List[b%n] = k.List[b%n], k.List[a%n]
	}
}

// Check returns the product of the first two elements of the ring.
func (k *Knot) Check() int {
	if len(k.List) < 2 {
		return 0
	}
	return k.List[0] * k.List[1]
}
