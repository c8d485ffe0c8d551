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

package apis

import (
	"fmt"
	"strings"
)

// CachePolicy controls how a registry memoizes value-converter resolution.
//
// # Overview
//
// Resolving a converter is a linear scan over the registered converters.
// A registry keeps a per-type cache of the results, including negative
// results, so repeated lookups for the same type are O(1). The cache is a
// pure memoization of the scan over the current converter list, which
// makes late Add calls a concern: a type resolved before the Add keeps its
// cached answer.
//
// # Values
//
//   - Memoize    — cache every result and never invalidate (default).
//   - Invalidate — cache every result and drop the cache on every Add.
//   - None       — never cache; every lookup scans.
//
// # Contract
//
//   - The zero value is Memoize.
//   - Field-harvester resolution is never cached, whatever the policy.
type CachePolicy int

const (
	// Memoize caches resolutions for the lifetime of the registry.
	//
	// Handlers must be added before the first resolution. A converter added
	// afterwards is not seen for types that were already resolved, and the
	// registry logs a warning when that happens. Clone the registry to get a
	// fresh cache.
	Memoize CachePolicy = iota

	// Invalidate caches resolutions and clears the cache on every Add.
	Invalidate

	// None disables memoization. Every ResolveValueConverter call scans the
	// converter list.
	None
)

// String returns a human-readable representation of the CachePolicy value.
// Unknown values are rendered as "Unknown(<n>)".
func (p CachePolicy) String() string {
	switch p {
	case Memoize:
		return "Memoize"
	case Invalidate:
		return "Invalidate"
	case None:
		return "None"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// ParseCachePolicy parses a textual representation of a CachePolicy.
// Matching is case-insensitive and surrounding whitespace is ignored.
// On failure it returns Memoize and a non-nil error.
func ParseCachePolicy(s string) (CachePolicy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Memoize, fmt.Errorf("apis: empty cache policy")
	}

	switch strings.ToUpper(trimmed) {
	case "MEMOIZE":
		return Memoize, nil
	case "INVALIDATE":
		return Invalidate, nil
	case "NONE":
		return None, nil
	default:
		return Memoize, fmt.Errorf("apis: unknown cache policy %q", s)
	}
}

// MustParseCachePolicy is like ParseCachePolicy but panics on invalid input.
func MustParseCachePolicy(s string) CachePolicy {
	p, err := ParseCachePolicy(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalText implements encoding.TextMarshaler.
// Unknown values are rejected instead of being persisted.
func (p CachePolicy) MarshalText() ([]byte, error) {
	switch p {
	case Memoize, Invalidate, None:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("apis: cannot marshal unknown cache policy %d", int(p))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
// On failure *p is left unchanged.
func (p *CachePolicy) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("apis: empty cache policy")
	}

	v, err := ParseCachePolicy(trimmed)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
