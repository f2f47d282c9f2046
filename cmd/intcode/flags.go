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
	"strconv"
	"strings"

	"github.com/chuckries/rustvent-of-code-sub001/vm"
	"github.com/pkg/errors"
)

type fileList []string

func (f *fileList) String() string     { return strings.Join(*f, ",") }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Type() string       { return "filename" }

// wordList accumulates comma separated words.
type wordList []vm.Word

func (l *wordList) String() string {
	s := make([]string, len(*l))
	for k, v := range *l {
		s[k] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(s, ",")
}

func (l *wordList) Set(s string) error {
	w, err := vm.Parse(strings.NewReader(s))
	if err != nil {
		return err
	}
	*l = append(*l, w...)
	return nil
}

func (l *wordList) Type() string { return "words" }

type patch struct {
	addr, v vm.Word
}

// patchList accumulates addr=value memory patches.
type patchList []patch

func (l *patchList) String() string {
	s := make([]string, len(*l))
	for k, p := range *l {
		s[k] = strconv.FormatInt(int64(p.addr), 10) + "=" + strconv.FormatInt(int64(p.v), 10)
	}
	return strings.Join(s, ",")
}

func (l *patchList) Set(s string) error {
	for _, f := range strings.Split(s, ",") {
		kv := strings.SplitN(f, "=", 2)
		if len(kv) != 2 {
			return errors.Errorf("invalid patch %q, expected addr=value", f)
		}
		a, err := strconv.ParseInt(strings.TrimSpace(kv[0]), 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid patch address")
		}
		v, err := strconv.ParseInt(strings.TrimSpace(kv[1]), 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid patch value")
		}
		*l = append(*l, patch{vm.Word(a), vm.Word(v)})
	}
	return nil
}

func (l *patchList) Type() string { return "addr=value" }

func (l patchList) options() []vm.Option {
	opts := make([]vm.Option, len(l))
	for k, p := range l {
		opts[k] = vm.Patch(p.addr, p.v)
	}
	return opts
}
