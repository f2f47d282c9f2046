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

package vm

import (
	"bufio"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a program in its text form: decimal integers, optionally
// signed, separated by commas. White space around each number is ignored, and
// so is a single trailing comma.
func Parse(r io.Reader) ([]Word, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Parse")
	}
	fields := strings.Split(string(b), ",")
	if n := len(fields); n > 1 && strings.TrimSpace(fields[n-1]) == "" {
		fields = fields[:n-1]
	}
	prog := make([]Word, 0, len(fields))
	for k, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			if len(fields) == 1 {
				return nil, errors.New("Parse: empty program")
			}
			return nil, errors.Errorf("Parse: empty word at index %d", k)
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Parse: word %d", k)
		}
		prog = append(prog, Word(v))
	}
	return prog, nil
}

// ReadProgram reads a program from file fileName.
func ReadProgram(fileName string) ([]Word, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "ReadProgram")
	}
	defer f.Close()
	prog, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return prog, nil
}

// Load reads the program in file fileName and returns a new machine running
// it.
func Load(fileName string, opts ...Option) (*Instance, error) {
	prog, err := ReadProgram(fileName)
	if err != nil {
		return nil, err
	}
	return New(prog, opts...)
}

// Format writes mem to w in program text form, followed by a newline.
func Format(w io.Writer, mem []Word) error {
	bw := bufio.NewWriter(w)
	for k, v := range mem {
		if k > 0 {
			bw.WriteByte(',')
		}
		bw.WriteString(strconv.FormatInt(int64(v), 10))
	}
	bw.WriteByte('\n')
	return errors.Wrap(bw.Flush(), "write failed")
}

// Save saves mem in program text form to file fileName. The file is removed
// if writing fails.
func Save(fileName string, mem []Word) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	return Format(f, mem)
}
