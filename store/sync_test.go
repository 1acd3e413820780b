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

package store_test

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/pile/apis"
	"dirpx.dev/pile/store"
)

// TestSynchronized_ConcurrentAddAndGet verifies that a synchronized store
// hands out unique ids and serves reads while writers are active.
func TestSynchronized_ConcurrentAddAndGet(t *testing.T) {
	s := store.Synchronized(newStore(t, apis.Config{}))

	workers := runtime.GOMAXPROCS(0) * 4
	const perWorker = 200

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[apis.ID]bool, workers*perWorker)
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				typ, raw := meshT, any(mesh{name: "m"})
				if i%2 == 1 {
					typ, raw = shaderT, any(shader{name: "s"})
				}
				id, err := s.Add(typ, raw)
				if err != nil {
					t.Errorf("Add: %v", err)
					return
				}
				if _, err := s.Get(typ, id); err != nil {
					t.Errorf("Get(%d) right after Add: %v", id, err)
					return
				}
				_ = s.Len()
				_ = s.Kinds()

				mu.Lock()
				if seen[id] {
					t.Errorf("duplicate id %d", id)
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if got, want := s.Len(), workers*perWorker; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for id := 0; id < workers*perWorker; id++ {
		if !seen[apis.ID(id)] {
			t.Fatalf("id %d never handed out; global ids must be dense", id)
		}
	}
}

func TestSynchronized_Passthrough(t *testing.T) {
	if store.Synchronized(nil) != nil {
		t.Fatalf("Synchronized(nil) should return nil")
	}

	s := store.Synchronized(newStore(t, apis.Config{IndexEntities: true}))
	if again := store.Synchronized(s); again != s {
		t.Fatalf("Synchronized should not double wrap")
	}

	id, err := s.Add(meshT, mesh{id: "m-9", name: "Cube"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got, ok := s.Lookup(meshT, "m-9"); !ok || got != id {
		t.Fatalf("Lookup = (%d,%v), want (%d,true)", got, ok, id)
	}
	if ids := s.IDs(meshT); len(ids) != 1 || ids[0] != id {
		t.Fatalf("IDs = %v, want [%d]", ids, id)
	}
	if len(s.Routes()) != 2 {
		t.Fatalf("Routes() len = %d, want 2", len(s.Routes()))
	}
	if _, err := s.Get(shaderT, id); !errors.Is(err, apis.ErrUnknownSlot) {
		t.Fatalf("Get(shader): want ErrUnknownSlot, got %v", err)
	}
	if err := s.Register(nil, nil); err == nil {
		t.Fatalf("Register(nil,nil): want error")
	}
}
