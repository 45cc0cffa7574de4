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

package server

import (
	"testing"
	"time"
)

func TestParseConfig_Defaults(t *testing.T) {
	t.Setenv(EnvPort, "")
	t.Setenv(EnvShutdownTimeoutSeconds, "")

	cfg := parseConfig()
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.RateLimit <= 0 || cfg.RateLimitBurst <= 0 {
		t.Errorf("expected positive rate limits, got %v/%d", cfg.RateLimit, cfg.RateLimitBurst)
	}
	if cfg.ReadHeaderTimeout <= 0 || cfg.ReadHeaderTimeout > cfg.ReadTimeout {
		t.Errorf("ReadHeaderTimeout = %v, ReadTimeout = %v", cfg.ReadHeaderTimeout, cfg.ReadTimeout)
	}
}

func TestParseConfig_Env(t *testing.T) {
	tests := []struct {
		name         string
		port         string
		shutdown     string
		wantPort     int
		wantShutdown time.Duration
	}{
		{"valid overrides", "9090", "45", 9090, 45 * time.Second},
		{"invalid port ignored", "wine", "", 8080, 0},
		{"out of range port ignored", "70000", "", 8080, 0},
		{"negative shutdown ignored", "", "-5", 8080, 0},
		{"zero shutdown ignored", "", "0", 8080, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvPort, tt.port)
			t.Setenv(EnvShutdownTimeoutSeconds, tt.shutdown)

			cfg := NewConfig()
			if cfg.Port != tt.wantPort {
				t.Errorf("Port = %d, want %d", cfg.Port, tt.wantPort)
			}
			if tt.wantShutdown != 0 && cfg.ShutdownTimeout != tt.wantShutdown {
				t.Errorf("ShutdownTimeout = %v, want %v", cfg.ShutdownTimeout, tt.wantShutdown)
			}
			if tt.wantShutdown == 0 && cfg.ShutdownTimeout <= 0 {
				t.Errorf("expected default ShutdownTimeout, got %v", cfg.ShutdownTimeout)
			}
		})
	}
}
