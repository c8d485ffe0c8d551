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

package builder

import (
	"dirpx.dev/objprint/apis"
	"dirpx.dev/objprint/handlers"
	"dirpx.dev/objprint/registry"
)

// Builder composes a Registry from a Config.
// Implementations may migrate handlers from a previous registry, or ignore it.
type Builder interface {
	// Build constructs a Registry for cfg. prev is the registry being
	// replaced and may be nil.
	Build(cfg apis.Config, prev *registry.Registry) *registry.Registry
}

// New creates and returns the default Builder.
func New() Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// Build returns a registry for cfg. Without a previous registry it is seeded
// with the stock handlers; otherwise the previous handler sequences are
// carried over in order, under the new configuration.
func (b *builder) Build(cfg apis.Config, prev *registry.Registry) *registry.Registry {
	if prev != nil {
		return registry.NewWithHandlers(cfg, prev.ValueConverters(), prev.FieldHarvesters())
	}
	return Seed(registry.New(cfg))
}

// Seed adds the stock handlers to reg and returns it.
//
// Resulting converter order (first tried first): Time, Scalar, Stringer.
// Resulting harvester order: Indirect, Struct, Map.
func Seed(reg *registry.Registry) *registry.Registry {
	return reg.
		AddValueConverter(handlers.NewStringerConverter()).
		AddValueConverter(handlers.NewScalarConverter()).
		AddValueConverter(handlers.NewTimeConverter("")).
		AddFieldHarvester(handlers.NewMapHarvester()).
		AddFieldHarvester(handlers.NewStructHarvester()).
		AddFieldHarvester(handlers.NewIndirectHarvester())
}
