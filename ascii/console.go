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

package ascii

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/chuckries/rustvent-of-code-sub001/internal/ici"
	"github.com/chuckries/rustvent-of-code-sub001/vm"
	"github.com/pkg/errors"
)

// LineReader is the interface of line oriented input sources.
// *golang.org/x/term.Terminal implements it.
type LineReader interface {
	ReadLine() (string, error)
}

type lineReader struct {
	r *bufio.Reader
}

// NewLineReader returns a LineReader reading '\n' terminated lines from r.
// A final line without a terminating '\n' is returned before io.EOF.
func NewLineReader(r io.Reader) LineReader {
	return &lineReader{bufio.NewReader(r)}
}

func (r *lineReader) ReadLine() (string, error) {
	s, err := r.r.ReadString('\n')
	if err == io.EOF && s != "" {
		err = nil
	}
	return strings.TrimRight(s, "\r\n"), err
}

// Console connects a machine to a line based input source and a writer.
type Console struct {
	In  LineReader
	Out io.Writer
	// Lines, if set, are fed to the machine before reading from In.
	Lines []string
	// Echo writes fed Lines to Out, the way a user would see them typed.
	Echo bool
}

// NewConsole returns a new Console reading lines from r and writing output to
// w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{In: NewLineReader(r), Out: w}
}

// Run runs the machine until it halts. Character output is written as is and
// other values are written in decimal on a line of their own. Whenever the
// machine needs input, the next line is read and pushed.
//
// Run returns nil when the machine halts, or io.EOF if the input source is
// exhausted while the machine is waiting for input.
func (c *Console) Run(i *vm.Instance) error {
	w := bufio.NewWriter(ici.NewErrWriter(c.Out))
	defer w.Flush()
	for {
		st, _, err := i.Run()
		if err != nil {
			return err
		}
		for _, v := range i.DrainOutput() {
			if v >= 0 && v <= MaxChar {
				w.WriteByte(byte(v))
				continue
			}
			w.WriteString(strconv.FormatInt(int64(v), 10))
			w.WriteByte('\n')
		}
		switch st {
		case vm.Halted:
			return errors.Wrap(w.Flush(), "console output")
		case vm.NeedsInput:
			if err = w.Flush(); err != nil {
				return errors.Wrap(err, "console output")
			}
			s, err := c.readLine(w)
			if err != nil {
				return err
			}
			WriteLine(i, s)
		}
	}
}

func (c *Console) readLine(w *bufio.Writer) (string, error) {
	if len(c.Lines) > 0 {
		s := c.Lines[0]
		c.Lines = c.Lines[1:]
		if c.Echo {
			w.WriteString(s)
			w.WriteByte('\n')
		}
		return s, nil
	}
	if c.In == nil {
		return "", io.EOF
	}
	return c.In.ReadLine()
}
