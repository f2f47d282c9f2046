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

// Package ascii implements the ASCII convention used by text based IntCode
// programs: input and output words in the range 0..127 are characters, lines
// end with '\n' and any other output value is a plain number, usually the
// puzzle answer.
package ascii

import (
	"io"
	"strconv"

	"github.com/chuckries/rustvent-of-code-sub001/vm"
	"github.com/pkg/errors"
)

// MaxChar is the largest word value treated as a character.
const MaxChar = 127

// ErrNeedsInput is returned by ReadLine when the machine asks for input before
// completing a line.
var ErrNeedsInput = errors.New("ascii: machine needs input")

// Line is either a line of text or a single value outside the ASCII range.
type Line struct {
	Text  string  // line text, without the trailing '\n'
	Value vm.Word // non-ASCII value, valid if Large is set
	Large bool
}

func (l Line) String() string {
	if l.Large {
		return l.Text + strconv.FormatInt(int64(l.Value), 10)
	}
	return l.Text
}

// Encode returns the words of s, one per byte.
func Encode(s string) []vm.Word {
	w := make([]vm.Word, len(s))
	for k := 0; k < len(s); k++ {
		w[k] = vm.Word(s[k])
	}
	return w
}

// Decode returns the string made of the words in w. It fails if any word is
// outside the range 0..MaxChar.
func Decode(w []vm.Word) (string, error) {
	b := make([]byte, len(w))
	for k, c := range w {
		if c < 0 || c > MaxChar {
			return string(b[:k]), errors.Errorf("ascii: word %d at index %d is not a character", c, k)
		}
		b[k] = byte(c)
	}
	return string(b), nil
}

// WriteLine pushes each byte of s to the input queue of i, followed by a '\n'.
func WriteLine(i *vm.Instance, s string) {
	i.PushInput(Encode(s)...)
	i.PushInput('\n')
}

// ReadLine runs the machine and collects output up to and excluding the next
// '\n'. Values already waiting in the output queue are consumed first.
//
// An output value outside the ASCII range ends the line: it is returned in
// Value with Large set, along with any text that preceded it.
//
// If the machine halts before producing anything, ReadLine returns io.EOF. If
// it halts in the middle of a line, the partial text is returned with an
// UnexpectedHalt error. If the machine needs input first, the partial text is
// returned with ErrNeedsInput.
func ReadLine(i *vm.Instance) (Line, error) {
	var b []byte
	for {
		v, ok := i.ReadOutput()
		if !ok {
			st, _, err := i.Run()
			if err != nil {
				return Line{Text: string(b)}, err
			}
			switch st {
			case vm.NeedsInput:
				return Line{Text: string(b)}, ErrNeedsInput
			case vm.Halted:
				if len(b) == 0 {
					return Line{}, io.EOF
				}
				return Line{Text: string(b)}, &vm.Error{Kind: vm.UnexpectedHalt, PC: i.PC}
			}
			continue
		}
		switch {
		case v == '\n':
			return Line{Text: string(b)}, nil
		case v < 0 || v > MaxChar:
			return Line{Text: string(b), Value: v, Large: true}, nil
		}
		b = append(b, byte(v))
	}
}

// ReadLines reads lines until the machine needs input or halts. A trailing
// partial line, like a prompt, is returned as the last line.
//
// The error is nil in both cases; use i.Halted to tell them apart.
func ReadLines(i *vm.Instance) ([]Line, error) {
	var lines []Line
	for {
		l, err := ReadLine(i)
		switch {
		case err == nil:
			lines = append(lines, l)
			continue
		case err == io.EOF:
			return lines, nil
		case err == ErrNeedsInput:
			if l.Text != "" {
				lines = append(lines, l)
			}
			return lines, nil
		}
		if l.Text != "" {
			lines = append(lines, l)
		}
		return lines, err
	}
}
