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

// Package objprint is the configuration and handler-resolution core of an
// object-to-text printer.
//
// Given a runtime type, objprint decides which pluggable handler is
// responsible for it:
//
//   - a value converter renders the value directly to text
//     (numbers, times, anything with a String method, money, IDs...);
//   - a field harvester extracts the fields of the value so the printer can
//     render it structurally (structs, maps, pointers to either).
//
// Walking values and writing the text is the printer's job. objprint only
// holds the handlers and the settings the printer needs: the indentation
// increment, the output style and the locale.
//
// # Design
//
// The core is registry.Registry. It keeps two ordered handler lists, most
// recently added first, so the last handler added for a type wins. Value
// converter lookups are memoized per type; harvester lookups always scan.
// A Registry has no locks: instead, each rendering operation takes a Clone
// and works on it alone. A clone copies the handler lists and the settings,
// starts with an empty cache and shares no mutable storage with its source.
//
// # Global API
//
// This package holds a process-wide master registry, published through an
// atomic pointer:
//
//	objprint.AddValueConverter(handlers.NewFuncConverter(renderMoney))
//	objprint.AddFieldHarvester(ordersHarvester)
//
//	reg := objprint.Snapshot() // one per rendering operation
//	if conv, ok := reg.ResolveValueConverter(reflect.TypeOf(v)); ok {
//		text := conv.Render(v, reg.RenderContext())
//		...
//	}
//
// Readers (Snapshot, Config, Builder) are lock-free. Writers (SetConfig,
// SetBuilder, SetRegistry, AddValueConverter, AddFieldHarvester, SetAll)
// take a short build mutex, derive a new master registry from a clone of the
// current one, and swap it in. The published master is never written to,
// which is what makes concurrent Snapshot calls safe.
//
// # Configuration
//
// Settings are an apis.Config built with the functional options of package
// config, or loaded from a YAML file with config.LoadFile. SetConfig hands
// the new configuration to the builder, which carries the registered
// handlers over to the rebuilt registry.
//
// # Scope
//
// objprint does not walk values, lay out text or format numbers and dates
// for a culture itself; those jobs belong to the printer and to the handlers
// that register into the core. Package handlers ships a small stock set.
package objprint
