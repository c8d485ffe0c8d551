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
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"sigs.k8s.io/yaml"

	"dirpx.dev/objprint/apis"
	"dirpx.dev/objprint/style"
)

var (
	// ErrUnknownStyle is returned when a settings file names a style that does not exist.
	ErrUnknownStyle = errors.New("config: unknown style")
	// ErrInvalidLocale is returned when a settings file names a locale that
	// ParseLocale cannot resolve.
	ErrInvalidLocale = errors.New("config: invalid locale")
)

// File is the on-disk form of a registry configuration.
//
//	indent: "  "
//	locale: de-DE
//	cache: invalidate
//	style: braces
type File struct {
	Indent string            `json:"indent,omitempty"`
	Locale string            `json:"locale,omitempty"`
	Cache  *apis.CachePolicy `json:"cache,omitempty"`
	Style  string            `json:"style,omitempty"`
}

// LoadFile reads the settings file at path. See Load.
func LoadFile(path string) ([]Option, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: could not open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a YAML (or JSON) settings document and returns the options it
// describes, to be passed to NewConfig. Keys that are absent produce no option.
func Load(r io.Reader) ([]Option, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: could not read data: %w", err)
	}
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal settings: %w", err)
	}
	return f.Options()
}

// Options converts the file into functional options.
func (f File) Options() ([]Option, error) {
	var opts []Option
	if f.Indent != "" {
		opts = append(opts, WithIndent(f.Indent))
	}
	if f.Locale != "" {
		tag := ParseLocale(f.Locale)
		if tag == language.Und {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, f.Locale)
		}
		opts = append(opts, WithLocale(tag))
	}
	if f.Cache != nil {
		opts = append(opts, WithCachePolicy(*f.Cache))
	}
	if f.Style != "" {
		indent := f.Indent
		if indent == "" {
			indent = DefaultIndent
		}
		s, ok := style.Lookup(f.Style, indent)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, f.Style)
		}
		opts = append(opts, WithStyle(s))
	}
	return opts, nil
}
