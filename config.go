// Copyright 2026 The xmlcore Authors
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

package xmlcore

import "log/slog"

// Config holds configuration options for Parser. The core itself has no
// notion of limits — a permissive reader would happily nest forever or
// buffer an unterminated comment indefinitely — so these are guardrails a
// real embedder needs against adversarial or merely buggy input streams.
type Config struct {
	// MaxDepth limits how deeply elements may nest before ParseChunk fails
	// with ErrMaxDepthExceeded (default: 100).
	MaxDepth int

	// MaxPendingBytes limits how large an in-flight tag body, comment, or
	// CDATA section may grow before closing, failing with
	// ErrPendingBufferTooLarge if exceeded (default: 10MB). Character data
	// outside any tag is not subject to this limit.
	MaxPendingBytes int

	// CaseInsensitiveNames documents the core's invariant that element and
	// path-segment name matching is always ASCII case-insensitive. It is not
	// a switch — setting it false has no effect, and Validate rejects it —
	// it exists so the zero value of Config doesn't silently misstate the
	// contract to a reader skimming the struct.
	CaseInsensitiveNames bool

	// Logger receives Debug-level records on structural stalls and
	// max-depth rejections. A nil Logger discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the default parser configuration.
func DefaultConfig() Config {
	return Config{
		MaxDepth:             100,
		MaxPendingBytes:      10 * 1024 * 1024,
		CaseInsensitiveNames: true,
		Logger:               nil,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.MaxDepth < 1 {
		return ErrInvalidConfig
	}
	if c.MaxPendingBytes < 1024 {
		return ErrInvalidConfig
	}
	if !c.CaseInsensitiveNames {
		return ErrInvalidConfig
	}
	return nil
}

// logger returns c.Logger, or a logger that discards everything if none was
// configured.
func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
