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

package naming

import (
	"errors"
	"reflect"
	"sort"
	"sync"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("pile(naming): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("pile(naming): empty name provided")
	// ErrConflictingName indicates an attempt to re-register a type with a
	// different name.
	ErrConflictingName = errors.New("pile(naming): conflicting kind name")
)

// Entry is a single (type, name) association in a Table snapshot.
type Entry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Name is the associated kind name.
	Name string
}

// Table holds explicit, human-chosen kind names for raw types.
// It is safe for concurrent use.
type Table struct {
	// mu guards write-side consistency and count.
	mu sync.Mutex
	// m maps reflect.Type to registered name.
	m sync.Map // map[reflect.Type]string
	// count tracks the number of registered entries.
	count int
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{}
}

// Register associates t with name. Unlike routing, naming keys on the exact
// type: *Mesh and Mesh are separate entries.
// It is idempotent for the same (type,name) pair.
func (tb *Table) Register(t reflect.Type, name string) error {
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := tb.m.Load(t); ok {
		if old.(string) == name {
			return nil
		}
		return ErrConflictingName
	}

	tb.mu.Lock()
	defer tb.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := tb.m.Load(t); ok {
		if old.(string) == name {
			return nil
		}
		return ErrConflictingName
	}

	tb.m.Store(t, name)
	tb.count++
	return nil
}

// Lookup returns the name registered for t, if present.
func (tb *Table) Lookup(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	if v, ok := tb.m.Load(t); ok {
		return v.(string), true
	}
	return "", false
}

// Entries returns a snapshot ordered by name.
func (tb *Table) Entries() []Entry {
	entries := make([]Entry, 0, tb.Count())
	tb.m.Range(func(key, value any) bool {
		entries = append(entries, Entry{Type: key.(reflect.Type), Name: value.(string)})
		return true
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Count returns the number of registered entries.
func (tb *Table) Count() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.count
}
