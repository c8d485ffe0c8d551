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

// Package handlers provides the stock value converters and field harvesters
// that a default registry is seeded with.
//
// Converters:
//   - Stringer: any type implementing fmt.Stringer.
//   - Scalar: bool, string and real numbers, numbers formatted for the
//     locale of the render context.
//   - Time: time.Time with a fixed layout, time.Duration.
//   - Func: one exact type rendered by a user function.
//
// Harvesters:
//   - Struct: exported struct fields in declaration order, honoring the
//     `objprint` tag ("-" skips a field, any other value renames it).
//   - Map: map entries ordered by the text of their keys.
//   - Indirect: pointers whose element is accepted by another harvester of
//     the same registry; the pointer is dereferenced and the peer harvests.
//
// All handlers are safe for concurrent use, since clones of a registry share
// handler instances.
package handlers
