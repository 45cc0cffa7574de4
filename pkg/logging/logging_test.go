// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLogLevel(tt.in); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStructuredLoggerAddsModuleAndVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "cellard", "v1.2.3", slog.LevelInfo)

	logger.Info("lookup served", "region", "rioja")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if rec["module"] != "cellard" {
		t.Errorf("expected module cellard, got %v", rec["module"])
	}
	if rec["version"] != "v1.2.3" {
		t.Errorf("expected version v1.2.3, got %v", rec["version"])
	}
	if rec["region"] != "rioja" {
		t.Errorf("expected region rioja, got %v", rec["region"])
	}
	if _, ok := rec["source"]; ok {
		t.Error("did not expect source at info level")
	}
}

func TestStructuredLoggerDebugIncludesSource(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "cellar", "dev", slog.LevelDebug)

	logger.Debug("catalog loaded")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON log line: %v", err)
	}
	if _, ok := rec["source"]; !ok {
		t.Error("expected source location at debug level")
	}
}

func TestStructuredLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "cellar", "dev", slog.LevelWarn)

	logger.Info("should be dropped")

	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}
}

func TestNewLogLogger(t *testing.T) {
	if l := NewLogLogger(slog.LevelError, false); l == nil {
		t.Fatal("expected logger")
	}
	if l := NewLogLogger(slog.LevelError, true); l == nil {
		t.Fatal("expected logger with source")
	}
}
