//  Copyright 2024 Google Inc. All Rights Reserved.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package main

import (
	"flag"
	"testing"
)

func TestFlagDefaults(t *testing.T) {
	tests := []struct {
		name       string
		defaultVal string
	}{
		{"debug", "false"},
		{"stdout", "true"},
		{"serial-port", ""},
		{"version", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := flag.Lookup(tt.name)
			if f == nil {
				t.Fatalf("flag -%s is not defined", tt.name)
			}
			if f.DefValue != tt.defaultVal {
				t.Errorf("unexpected default for -%s, got %q, want %q", tt.name, f.DefValue, tt.defaultVal)
			}
		})
	}
}

func TestNewLogOptsWriters(t *testing.T) {
	tests := []struct {
		name        string
		stdout      bool
		serialLog   string
		wantWriters int
	}{
		{"stdout only", true, "", 1},
		{"stdout and serial", true, "COM1", 2},
		{"serial only", false, "COM1", 1},
		{"no writers", false, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := newLogOpts(false, tt.stdout, tt.serialLog)
			if len(opts.Writers) != tt.wantWriters {
				t.Errorf("unexpected writer count, got %d, want %d", len(opts.Writers), tt.wantWriters)
			}
		})
	}
}

func TestNewLogOptsDebug(t *testing.T) {
	if opts := newLogOpts(true, true, ""); !opts.Debug {
		t.Error("debug verbosity not carried into log options")
	}
	if opts := newLogOpts(false, true, ""); opts.Debug {
		t.Error("debug verbosity set without being requested")
	}
}
