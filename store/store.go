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
	"sort"

	"go.uber.org/zap"

	"dirpx.dev/pile/apis"
	"dirpx.dev/pile/dispatch"
	"dirpx.dev/pile/naming"
	uref "dirpx.dev/pile/utils/reflect"
)

// New constructs an apis.Store that routes through d. A nil d gets a fresh
// dispatch.New().
//
// The store has a single owner and takes no locks; wrap it with
// Synchronized to share it between goroutines.
func New(cfg apis.Config, d apis.Dispatcher) apis.Store {
	if d == nil {
		d = dispatch.New()
	}
	return &store{
		cfg:      cfg,
		disp:     d,
		slots:    make(map[reflect.Type]map[apis.ID]apis.Resource),
		kindNext: make(map[reflect.Type]apis.ID),
		entities: make(map[reflect.Type]map[string]apis.ID),
	}
}

// store owns every transformed value. Slots go from absent to populated
// exactly once and are never rewritten.
type store struct {
	cfg  apis.Config
	disp apis.Dispatcher
	// slots maps raw type -> id -> transformed value.
	slots map[reflect.Type]map[apis.ID]apis.Resource
	// next is the shared counter under ScopeGlobal.
	next apis.ID
	// kindNext holds per-kind counters under ScopeKind.
	kindNext map[reflect.Type]apis.ID
	// entities maps raw type -> entity id -> id.
	entities map[reflect.Type]map[string]apis.ID
	// count is the total number of populated slots.
	count int
}

var _ apis.Store = (*store)(nil)

// Register binds r to t in the underlying dispatcher.
func (s *store) Register(t reflect.Type, r apis.Router) error {
	return s.disp.Register(t, r)
}

// Add transforms raw and stores the result under the next id.
func (s *store) Add(t reflect.Type, raw any) (apis.ID, error) {
	if !accepts(t, raw) {
		return 0, &apis.Error{
			Op:   "add",
			Kind: naming.Of(t),
			Want: t.String(),
			Got:  uref.TypeString(raw),
			Err:  apis.ErrTypeMismatch,
		}
	}

	entity := s.entityOf(raw)
	if entity != "" {
		if _, dup := s.entities[t][entity]; dup {
			return 0, &apis.Error{
				Op:     "add",
				Kind:   naming.Of(t),
				Entity: entity,
				Err:    apis.ErrDuplicateEntity,
			}
		}
	}

	// Peek first: a failed dispatch must not consume an id.
	id := s.peek(t)
	out, err := s.disp.Dispatch(t, raw)
	if err != nil {
		return 0, err
	}
	res := apis.Resource{Value: out}
	if r, ok := s.disp.Lookup(t); ok {
		res.Type = r.Transformed()
	}

	m, ok := s.slots[t]
	if !ok {
		m = make(map[apis.ID]apis.Resource)
		s.slots[t] = m
	}
	m[id] = res
	s.count++
	s.advance(t)

	if entity != "" {
		e, ok := s.entities[t]
		if !ok {
			e = make(map[string]apis.ID)
			s.entities[t] = e
		}
		e[entity] = id
	}

	if ce := Logger().Check(zap.DebugLevel, "resource added"); ce != nil {
		ce.Write(
			zap.String("kind", naming.Of(t)),
			zap.Uint64("id", uint64(id)),
			zap.String("entity", entity))
	}
	return id, nil
}

// Get returns the resource stored under (t, id).
func (s *store) Get(t reflect.Type, id apis.ID) (apis.Resource, error) {
	res, ok := s.slots[t][id]
	if !ok {
		return apis.Resource{}, &apis.Error{
			Op:    "get",
			Kind:  naming.Of(t),
			ID:    id,
			HasID: true,
			Err:   apis.ErrUnknownSlot,
		}
	}
	return res, nil
}

// Lookup returns the id indexed for (t, entityID).
func (s *store) Lookup(t reflect.Type, entityID string) (apis.ID, bool) {
	id, ok := s.entities[t][entityID]
	return id, ok
}

// IDs returns the ids stored for t in ascending order.
func (s *store) IDs(t reflect.Type) []apis.ID {
	m := s.slots[t]
	out := make([]apis.ID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Kinds returns the populated raw types ordered by kind name.
func (s *store) Kinds() []reflect.Type {
	out := make([]reflect.Type, 0, len(s.slots))
	for t := range s.slots {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		ni, nj := naming.Of(out[i]), naming.Of(out[j])
		if ni != nj {
			return ni < nj
		}
		return out[i].String() < out[j].String()
	})
	return out
}

// Routes returns the dispatcher's routes.
func (s *store) Routes() []apis.Route {
	return s.disp.Entries()
}

// Len returns the number of populated slots.
func (s *store) Len() int {
	return s.count
}

// entityOf returns the entity id reported by raw, if indexing is enabled.
func (s *store) entityOf(raw any) string {
	if !s.cfg.IndexEntities {
		return ""
	}
	idf, ok := raw.(apis.Identifier)
	if !ok {
		return ""
	}
	// A nil pointer carries the value-receiver methods of its element.
	if v := reflect.ValueOf(raw); v.Kind() == reflect.Pointer && v.IsNil() {
		return ""
	}
	return idf.EntityID()
}

// accepts reports whether raw can be routed by a loader keyed on t.
// A nil t is left to the dispatcher, which has no route for it.
func accepts(t reflect.Type, raw any) bool {
	if t == nil {
		return true
	}
	if raw == nil {
		return uref.Nilable(t)
	}
	rt := reflect.TypeOf(raw)
	if t.Kind() == reflect.Interface {
		return rt.Implements(t)
	}
	return rt == t
}

// peek returns the id the next Add for t will use.
func (s *store) peek(t reflect.Type) apis.ID {
	if s.cfg.IDScope == apis.ScopeKind {
		return s.kindNext[t]
	}
	return s.next
}

// advance moves the counter that served t past the id just used.
func (s *store) advance(t reflect.Type) {
	if s.cfg.IDScope == apis.ScopeKind {
		s.kindNext[t]++
		return
	}
	s.next++
}
