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

package registry_test

import (
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/objprint/config"
	"dirpx.dev/objprint/registry"
)

// TestClonePerGoroutine_NoRace verifies the clone-before-use protocol: many
// goroutines clone one configured registry, mutate and resolve against their
// own clone, and never observe each other or disturb the source.
func TestClonePerGoroutine_NoRace(t *testing.T) {
	shared := newConverter("shared", tT1, tInt)
	master := registry.New(config.NewConfig()).
		AddValueConverter(shared).
		AddFieldHarvester(newHarvester("structs", tT1, tT2))

	workers := runtime.GOMAXPROCS(0) * 4
	iters := 500

	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan string, workers)

	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				snap := master.Clone()
				own := newConverter(fmt.Sprintf("own-%d", id), tStr)
				snap.AddValueConverter(own)

				if c, ok := snap.ResolveValueConverter(tStr); !ok || c != own {
					errCh <- fmt.Sprintf("worker %d: own converter not resolved", id)
					return
				}
				if c, ok := snap.ResolveValueConverter(tT1); !ok || c != shared {
					errCh <- fmt.Sprintf("worker %d: shared converter not resolved", id)
					return
				}
				if _, ok := snap.ResolveFieldHarvester(tT2); !ok {
					errCh <- fmt.Sprintf("worker %d: harvester not resolved", id)
					return
				}
				if n := len(snap.ValueConverters()); n != 2 {
					errCh <- fmt.Sprintf("worker %d: clone has %d converters, want 2", id, n)
					return
				}
			}
		}(w)
	}

	wg.Wait()
	close(errCh)
	for e := range errCh {
		t.Fatal(e)
	}

	if n := len(master.ValueConverters()); n != 1 {
		t.Fatalf("master has %d converters, want 1", n)
	}
	if _, ok := master.ResolveValueConverter(tStr); ok {
		t.Fatalf("master resolved a converter added to a clone")
	}
}

func BenchmarkResolveValueConverter(b *testing.B) {
	reg := registry.New(config.NewConfig())
	for i := 0; i < 32; i++ {
		reg.AddValueConverter(newConverter(fmt.Sprintf("c%d", i), tT1))
	}
	types := []reflect.Type{tT1, tT2, tInt, tStr}

	b.Run("cached", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			reg.ResolveValueConverter(types[i%len(types)])
		}
	})
	b.Run("clone_then_resolve", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			reg.Clone().ResolveValueConverter(types[i%len(types)])
		}
	})
}
