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

package main

import (
	"io"
	"os"

	"github.com/chuckries/rustvent-of-code-sub001/ascii"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// newConsole returns an ASCII console on stdin/stdout. If stdin is a terminal
// and raw is true, the terminal is switched to raw mode with line editing,
// and tearDown restores it.
func newConsole(raw bool) (c *ascii.Console, tearDown func(), err error) {
	fd := int(os.Stdin.Fd())
	if !raw || !term.IsTerminal(fd) {
		return ascii.NewConsole(os.Stdin, os.Stdout), func() {}, nil
	}
	st, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, errors.Wrap(err, "MakeRaw failed")
	}
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "")
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		t.SetSize(w, h)
	}
	return &ascii.Console{In: t, Out: t}, func() { term.Restore(fd, st) }, nil
}
