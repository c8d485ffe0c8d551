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
	"reflect"
)

// Resolver is the read side of a handler registry. Collaborators that need to
// inspect their peers (for example a harvester that delegates to another
// harvester) depend on Resolver rather than on a concrete registry.
type Resolver interface {
	// ResolveValueConverter returns the converter for t, most recently added first.
	ResolveValueConverter(t reflect.Type) (ValueConverter, bool)
	// ResolveFieldHarvester returns the harvester for t, most recently added first.
	ResolveFieldHarvester(t reflect.Type) (FieldHarvester, bool)
	// ValueConverters returns a snapshot of the converters, most recent first.
	ValueConverters() []ValueConverter
	// FieldHarvesters returns a snapshot of the harvesters, most recent first.
	FieldHarvesters() []FieldHarvester
	// RenderContext returns the context converters are rendered with.
	RenderContext() RenderContext
}
