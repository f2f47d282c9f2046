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
	"math/bits"
	"strconv"
)

// GridSize is the number of rows and columns in a Grid.
const GridSize = Size * 8

// Grid is a square of GridSize bits where row n holds the knot hash of
// "key-n", most significant bit first.
type Grid [GridSize][Size]byte

// NewGrid returns the grid for the given key.
func NewGrid(key string) *Grid {
	var g Grid
	for r := range g {
		g[r] = Sum([]byte(key + "-" + strconv.Itoa(r)))
	}
	return &g
}

// Set returns true if the bit at row r, column c is set.
func (g *Grid) Set(r, c int) bool {
	return g[r][c/8]&(0x80>>uint(c%8)) != 0
}

// Used returns the number of set bits in the grid.
func (g *Grid) Used() int {
	n := 0
	for _, row := range g {
		for _, b := range row {
			n += bits.OnesCount8(b)
		}
	}
	return n
}

// Regions returns the number of groups of set bits connected horizontally or
// vertically.
func (g *Grid) Regions() int {
	var seen [GridSize][GridSize]bool
	var stack [][2]int
	n := 0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if seen[r][c] || !g.Set(r, c) {
				continue
			}
			n++
			seen[r][c] = true
			stack = append(stack[:0], [2]int{r, c})
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, d := range [...][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
					y, x := p[0]+d[0], p[1]+d[1]
					if y < 0 || y >= GridSize || x < 0 || x >= GridSize || seen[y][x] || !g.Set(y, x) {
						continue
					}
					seen[y][x] = true
					stack = append(stack, [2]int{y, x})
				}
			}
		}
	}
	return n
}
