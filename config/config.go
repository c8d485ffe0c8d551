/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"

	"dirpx.dev/objprint/apis"
)

const (
	// DefaultIndent represents the default indentation increment.
	DefaultIndent = "\t"
	// DefaultCachePolicy represents the default for CachePolicy.
	// Resolutions are memoized and never invalidated.
	DefaultCachePolicy = apis.Memoize
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure Indent is valid.
	if cfg.Indent == "" {
		cfg.Indent = DefaultIndent
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
// Style is left nil so that the registry derives it from Indent.
func DefaultConfig() apis.Config {
	return apis.Config{
		Indent:      DefaultIndent,
		Locale:      CurrentLocale(),
		CachePolicy: DefaultCachePolicy,
	}
}

// CurrentLocale returns the ambient locale of the process, read from the
// POSIX locale variables in precedence order LC_ALL, LC_MESSAGES, LANG.
// It returns language.Und when none is set or the value cannot be parsed.
func CurrentLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return ParseLocale(v)
		}
	}
	return language.Und
}

// ParseLocale converts a POSIX locale name ("de_DE.UTF-8@euro") or a BCP 47
// tag ("de-DE") into a language.Tag. "C", "POSIX" and unparsable values
// yield language.Und.
func ParseLocale(s string) language.Tag {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithIndent sets the Indent option.
// An empty value resets to the default.
func WithIndent(indent string) Option {
	return func(c *apis.Config) {
		if indent == "" {
			c.Indent = DefaultIndent
			return
		}
		c.Indent = indent
	}
}

// WithLocale sets the Locale option.
func WithLocale(tag language.Tag) Option {
	return func(c *apis.Config) {
		c.Locale = tag
	}
}

// WithStyle sets the Style option.
func WithStyle(s apis.Style) Option {
	return func(c *apis.Config) {
		c.Style = s
	}
}

// WithCachePolicy sets the CachePolicy option.
func WithCachePolicy(p apis.CachePolicy) Option {
	return func(c *apis.Config) {
		c.CachePolicy = p
	}
}

// WithLogger sets the Logger option.
func WithLogger(l *slog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}
