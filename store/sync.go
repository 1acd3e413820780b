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

package store

import (
	"reflect"
	"sync"

	"dirpx.dev/pile/apis"
)

// Synchronized wraps s so that every operation runs under one RWMutex:
// Register and Add take the write lock, everything else the read lock.
// Loaders therefore run while the write lock is held and must not call
// back into the same store.
func Synchronized(s apis.Store) apis.Store {
	if s == nil {
		return nil
	}
	if ss, ok := s.(*syncStore); ok {
		return ss
	}
	return &syncStore{s: s}
}

type syncStore struct {
	mu sync.RWMutex
	s  apis.Store
}

var _ apis.Store = (*syncStore)(nil)

func (ss *syncStore) Register(t reflect.Type, r apis.Router) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Register(t, r)
}

func (ss *syncStore) Add(t reflect.Type, raw any) (apis.ID, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Add(t, raw)
}

func (ss *syncStore) Get(t reflect.Type, id apis.ID) (apis.Resource, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Get(t, id)
}

func (ss *syncStore) Lookup(t reflect.Type, entityID string) (apis.ID, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Lookup(t, entityID)
}

func (ss *syncStore) IDs(t reflect.Type) []apis.ID {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.IDs(t)
}

func (ss *syncStore) Kinds() []reflect.Type {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Kinds()
}

func (ss *syncStore) Routes() []apis.Route {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Routes()
}

func (ss *syncStore) Len() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Len()
}
