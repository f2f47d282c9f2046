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

package knothash

import (
	"encoding/hex"
	"hash"
)

const (
	// Size is the size of a knot hash in bytes.
	Size = 16
	// BlockSize is the size of the blocks folded into each byte of the hash.
	BlockSize = 16

	ringSize = 256
	rounds   = 64
)

var salt = [...]int{17, 31, 73, 47, 23}

// Sum returns the knot hash of data. Every byte of data is used as a length,
// followed by a fixed salt.
func Sum(data []byte) [Size]byte {
	lengths := make([]int, 0, len(data)+len(salt))
	for _, b := range data {
		lengths = append(lengths, int(b))
	}
	lengths = append(lengths, salt[:]...)

	k, _ := NewKnot(ringSize)
	for r := 0; r < rounds; r++ {
		// lengths are bytes, they always fit a ring of 256
		k.Twist(lengths)
	}

	var sum [Size]byte
	for i := range sum {
		var x int
		for _, v := range k.List[i*BlockSize : (i+1)*BlockSize] {
			x ^= v
		}
		sum[i] = byte(x)
	}
	return sum
}

// String returns the knot hash of s in hexadecimal.
func String(s string) string {
	sum := Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

type digest struct {
	buf []byte
}

// New returns a new hash.Hash computing the knot hash. Since every round
// works on the whole input, written data is buffered until Sum is called.
func New() hash.Hash {
	return new(digest)
}

func (d *digest) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	sum := Sum(d.buf)
	return append(b, sum[:]...)
}

func (d *digest) Reset()         { d.buf = d.buf[:0] }
func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return BlockSize }
