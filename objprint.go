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

package objprint

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/objprint/apis"
	"dirpx.dev/objprint/builder"
	"dirpx.dev/objprint/config"
	"dirpx.dev/objprint/registry"
)

// init initializes the global state.
func init() {
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	s.reg = s.bld.Build(s.cfg, nil)
	st.Store(s)
}

// ErrNilRegistry is raised when a builder returns a nil registry.
var ErrNilRegistry = errors.New("objprint: builder returned nil registry")

// Snapshot returns a clone of the process-wide registry for one rendering
// operation. The clone is owned by the caller; later configuration changes
// do not reach it.
func Snapshot() *registry.Registry {
	return st.Load().reg.Clone()
}

// Config returns the process-wide configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the process-wide configuration. The registry is rebuilt
// by the current builder, which carries the registered handlers over.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(&state{cfg: cfg, reg: old.bld.Build(cfg, old.reg), bld: old.bld})
}

// Builder returns the process-wide builder.
func Builder() builder.Builder {
	return st.Load().bld
}

// SetBuilder replaces the process-wide builder and rebuilds the registry with it.
func SetBuilder(b builder.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(&state{cfg: old.cfg, reg: b.Build(old.cfg, old.reg), bld: b})
}

// SetRegistry replaces the process-wide registry with a clone of reg and
// adopts its configuration. reg itself stays owned by the caller.
func SetRegistry(reg *registry.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(&state{cfg: reg.Config(), reg: reg.Clone(), bld: old.bld})
}

// AddValueConverter adds h in front of the process-wide converters.
// Snapshots taken earlier are not affected.
func AddValueConverter(h apis.ValueConverter) {
	mutate(func(r *registry.Registry) { r.AddValueConverter(h) })
}

// AddFieldHarvester adds h in front of the process-wide harvesters.
// Snapshots taken earlier are not affected.
func AddFieldHarvester(h apis.FieldHarvester) {
	mutate(func(r *registry.Registry) { r.AddFieldHarvester(h) })
}

// SetAll is the hard reset: it replaces the configuration, registry and
// builder in one step. A nil cfg or bld keeps the current one; a nil reg
// makes the builder build a fresh registry without migrating handlers.
//
// This is mainly used by tests to get a clean deterministic state.
func SetAll(cfg *apis.Config, reg *registry.Registry, bld builder.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}
	var nreg *registry.Registry
	if reg != nil {
		nreg = reg.Clone()
	} else {
		nreg = nbld.Build(ncfg, nil)
	}

	publish(&state{cfg: ncfg, reg: nreg, bld: nbld})
}

// mutate applies fn to a clone of the published registry and publishes the
// clone, so the published registry itself is never written to.
func mutate(fn func(*registry.Registry)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.reg.Clone()
	fn(next)
	publish(&state{cfg: old.cfg, reg: next, bld: old.bld})
}

// publish stores s after checking it is complete. Callers hold buildMu.
func publish(s *state) {
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	st.Store(s)
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable once published: neither its fields nor its registry are written
// to afterwards. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the configuration reg was built for.
	cfg apis.Config
	// reg is the master registry. Only ever read (cloned).
	reg *registry.Registry
	// bld builds reg on reconfiguration.
	bld builder.Builder
}
