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

// Package registry implements the handler registry: the ordered value
// converters and field harvesters of a printer configuration, and the
// resolution of the handler responsible for a runtime type.
//
// # Lifecycle
//
// A registry goes through two phases. While it is being built, handlers are
// added with AddValueConverter and AddFieldHarvester; every Add puts the
// handler in front, so the last one added wins when several accept a type.
// Once rendering starts, the printer takes a Clone and resolves against the
// clone only:
//
//	reg := registry.New(config.NewConfig()).
//		AddValueConverter(money).
//		AddFieldHarvester(orders)
//
//	snap := reg.Clone()
//	conv, ok := snap.ResolveValueConverter(reflect.TypeOf(v))
//
// # Caching
//
// ResolveValueConverter memoizes its result per type, misses included. With
// the default apis.Memoize policy the cache is never invalidated, so a
// converter added after a type has been resolved is not seen for that type.
// The registry logs a warning when that happens. apis.Invalidate clears the
// cache on every Add; apis.None turns memoization off.
// ResolveFieldHarvester is never cached.
//
// # Concurrency
//
// A Registry has no locks. Concurrent rendering operations each work on
// their own Clone; a clone shares no mutable storage with its source.
package registry
