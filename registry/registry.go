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

package registry

import (
	"log/slog"
	"reflect"
	"slices"

	"golang.org/x/text/language"

	"dirpx.dev/objprint/apis"
	"dirpx.dev/objprint/config"
	"dirpx.dev/objprint/projection"
	"dirpx.dev/objprint/style"
)

// New constructs an empty Registry configured by cfg.
//
// An empty cfg.Indent selects config.DefaultIndent, a nil cfg.Style selects
// the brace style built from the indent, language.Und selects the ambient
// locale and a nil cfg.Logger discards diagnostics.
func New(cfg apis.Config) *Registry {
	if cfg.Indent == "" {
		cfg.Indent = config.DefaultIndent
	}
	if cfg.Style == nil {
		cfg.Style = style.NewBraces(cfg.Indent)
	}
	if cfg.Locale == language.Und {
		cfg.Locale = config.CurrentLocale()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		indent: cfg.Indent,
		style:  cfg.Style,
		locale: cfg.Locale,
		policy: cfg.CachePolicy,
		logger: cfg.Logger,
	}
}

// NewWithHandlers constructs a Registry that starts out with the given
// handler sequences, index 0 being the most recently added. The sequences
// are copied; the registry never aliases the caller's slices. Nil handlers
// are dropped and binder handlers are bound to the new registry.
func NewWithHandlers(cfg apis.Config, converters []apis.ValueConverter, harvesters []apis.FieldHarvester) *Registry {
	r := New(cfg)
	r.converters = make([]apis.ValueConverter, 0, len(converters))
	for _, h := range converters {
		if h != nil {
			r.converters = append(r.converters, r.bindConverter(h))
		}
	}
	r.harvesters = make([]apis.FieldHarvester, 0, len(harvesters))
	for _, h := range harvesters {
		if h != nil {
			r.harvesters = append(r.harvesters, r.bindHarvester(h))
		}
	}
	return r
}

// Registry holds the ordered value converters and field harvesters of one
// printer configuration and resolves the handler for a runtime type.
//
// Handlers are tried most recently added first. Value-converter resolution
// is memoized per type according to the cache policy; field-harvester
// resolution always scans.
//
// A Registry is not safe for concurrent use. Configure it, then give every
// rendering operation its own Clone.
type Registry struct {
	// converters and harvesters are ordered most recent first.
	converters []apis.ValueConverter
	harvesters []apis.FieldHarvester

	indent string
	style  apis.Style
	locale language.Tag
	policy apis.CachePolicy
	logger *slog.Logger

	// cache memoizes ResolveValueConverter, misses included.
	cache map[reflect.Type]resolution
	// proj is created on first use by Projection.
	proj *projection.Set
}

// resolution is a cached ResolveValueConverter result.
// found=false is the "no converter" sentinel.
type resolution struct {
	conv  apis.ValueConverter
	found bool
}

// Ensure Registry implements apis.Resolver.
var _ apis.Resolver = (*Registry)(nil)

// AddValueConverter inserts h in front of all previously added converters
// and returns r for chaining. A nil h is ignored.
//
// Under apis.Memoize the resolution cache is not cleared: add converters
// before the first ResolveValueConverter call, or Clone the registry.
func (r *Registry) AddValueConverter(h apis.ValueConverter) *Registry {
	if h == nil {
		return r
	}
	r.converters = slices.Insert(r.converters, 0, r.bindConverter(h))

	switch r.policy {
	case apis.Invalidate:
		clear(r.cache)
	case apis.Memoize:
		if len(r.cache) > 0 {
			r.logger.Warn("value converter added after resolution; cached resolutions are kept",
				"converter", reflect.TypeOf(h).String(),
				"cached_types", len(r.cache),
			)
		}
	}
	return r
}

// AddFieldHarvester inserts h in front of all previously added harvesters
// and returns r for chaining. A nil h is ignored.
func (r *Registry) AddFieldHarvester(h apis.FieldHarvester) *Registry {
	if h == nil {
		return r
	}
	r.harvesters = slices.Insert(r.harvesters, 0, r.bindHarvester(h))
	return r
}

// ResolveValueConverter returns the most recently added converter that
// accepts t. The result, including a miss, is cached per type unless the
// policy is apis.None.
func (r *Registry) ResolveValueConverter(t reflect.Type) (apis.ValueConverter, bool) {
	if t == nil {
		return nil, false
	}
	if r.policy != apis.None {
		if res, ok := r.cache[t]; ok {
			return res.conv, res.found
		}
	}

	var res resolution
	for _, h := range r.converters {
		if h.CanHandleType(t) {
			res = resolution{conv: h, found: true}
			break
		}
	}
	r.logger.Debug("resolved value converter", "type", t.String(), "found", res.found)

	if r.policy != apis.None {
		if r.cache == nil {
			r.cache = make(map[reflect.Type]resolution)
		}
		r.cache[t] = res
	}
	return res.conv, res.found
}

// ResolveFieldHarvester returns the most recently added harvester that
// accepts t. It is never cached.
func (r *Registry) ResolveFieldHarvester(t reflect.Type) (apis.FieldHarvester, bool) {
	if t == nil {
		return nil, false
	}
	for _, h := range r.harvesters {
		if h.CanHandleType(t) {
			return h, true
		}
	}
	return nil, false
}

// Clone returns an independent copy of r: same handler order and settings,
// new backing slices, empty cache, own projection.
func (r *Registry) Clone() *Registry {
	return NewWithHandlers(r.Config(), r.converters, r.harvesters)
}

// ValueConverters returns a snapshot of the converters, most recent first.
func (r *Registry) ValueConverters() []apis.ValueConverter {
	out := make([]apis.ValueConverter, len(r.converters))
	copy(out, r.converters)
	return out
}

// FieldHarvesters returns a snapshot of the harvesters, most recent first.
func (r *Registry) FieldHarvesters() []apis.FieldHarvester {
	out := make([]apis.FieldHarvester, len(r.harvesters))
	copy(out, r.harvesters)
	return out
}

// Indent returns the indentation increment.
func (r *Registry) Indent() string { return r.indent }

// Locale returns the locale handed to converters.
func (r *Registry) Locale() language.Tag { return r.locale }

// Style returns the output-formatting strategy.
func (r *Registry) Style() apis.Style { return r.style }

// CachePolicy returns the value-converter cache policy.
func (r *Registry) CachePolicy() apis.CachePolicy { return r.policy }

// Config returns the settings of r as an apis.Config.
func (r *Registry) Config() apis.Config {
	return apis.Config{
		Indent:      r.indent,
		Locale:      r.locale,
		Style:       r.style,
		CachePolicy: r.policy,
		Logger:      r.logger,
	}
}

// RenderContext returns the top-level context converters render with.
func (r *Registry) RenderContext() apis.RenderContext {
	return apis.RenderContext{
		Locale: r.locale,
		Indent: r.indent,
		Style:  r.style,
	}
}

// Projection returns the projection set bound to r, creating it on first use.
func (r *Registry) Projection() *projection.Set {
	if r.proj == nil {
		r.proj = projection.New(r)
	}
	return r.proj
}

func (r *Registry) bindConverter(h apis.ValueConverter) apis.ValueConverter {
	if b, ok := h.(apis.ConverterBinder); ok {
		if bound := b.BindConverter(r); bound != nil {
			return bound
		}
	}
	return h
}

func (r *Registry) bindHarvester(h apis.FieldHarvester) apis.FieldHarvester {
	if b, ok := h.(apis.HarvesterBinder); ok {
		if bound := b.BindHarvester(r); bound != nil {
			return bound
		}
	}
	return h
}
