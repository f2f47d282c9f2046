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

	"github.com/btcsuite/btclog"
	"github.com/chuckries/rustvent-of-code-sub001/pipeline"
	"github.com/chuckries/rustvent-of-code-sub001/script"
	"github.com/chuckries/rustvent-of-code-sub001/vm"
	"github.com/pkg/errors"
)

// setupLogging creates one subsystem logger per package, all writing to w.
func setupLogging(w io.Writer, level string) error {
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return errors.Errorf("invalid log level %q", level)
	}
	backend := btclog.NewBackend(w)
	for _, s := range []struct {
		tag string
		use func(btclog.Logger)
	}{
		{"VM", vm.UseLogger},
		{"PIPE", pipeline.UseLogger},
		{"LUA", script.UseLogger},
	} {
		l := backend.Logger(s.tag)
		l.SetLevel(lvl)
		s.use(l)
	}
	return nil
}
