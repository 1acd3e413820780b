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

package manifest

import (
	"errors"
	"fmt"
	"sort"

	"dirpx.dev/pile"
	"dirpx.dev/pile/apis"
)

var (
	// ErrUnknownKind is returned when an entry names a kind with no binder.
	ErrUnknownKind = errors.New("pile(manifest): unknown resource kind")
	// ErrDuplicateKind is returned when a kind is bound twice.
	ErrDuplicateKind = errors.New("pile(manifest): kind already bound")
)

// Manifest maps manifest kinds to typed decoders.
type Manifest struct {
	binders map[string]binder
}

// binder decodes an entry into its raw type and adds it to a store.
type binder func(s apis.Store, e Entry) (apis.ID, error)

// New returns a Manifest with no kinds bound.
func New() *Manifest {
	return &Manifest{binders: make(map[string]binder)}
}

// Bind maps kind to the raw type T: entries of that kind are decoded with
// decode and added to the store as T values.
func Bind[T any](m *Manifest, kind string, decode func(Entry) (T, error)) error {
	if _, ok := m.binders[kind]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, kind)
	}
	m.binders[kind] = func(s apis.Store, e Entry) (apis.ID, error) {
		v, err := decode(e)
		if err != nil {
			return 0, err
		}
		return pile.Add(s, v)
	}
	return nil
}

// Kinds returns the bound kinds in sorted order.
func (m *Manifest) Kinds() []string {
	out := make([]string, 0, len(m.binders))
	for k := range m.binders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Apply adds every entry of doc to s in document order and returns their
// ids. It stops at the first failing entry; entries added before it stay in
// the store, since stores never delete.
func (m *Manifest) Apply(s apis.Store, doc Document) ([]apis.ID, error) {
	ids := make([]apis.ID, 0, len(doc.Resources))
	for i, e := range doc.Resources {
		b, ok := m.binders[e.Kind]
		if !ok {
			return ids, fmt.Errorf("entry %d (%s %q): %w", i, e.Kind, e.Name, ErrUnknownKind)
		}
		id, err := b(s, e)
		if err != nil {
			return ids, fmt.Errorf("entry %d (%s %q): %w", i, e.Kind, e.Name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
