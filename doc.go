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

// Package pile provides a type-keyed resource pile.
//
// pile stores heterogeneous raw resources (mesh descriptions, shader
// source, ...) by first running each one through a loader chosen by the
// raw value's static type, and then keeping only the transformed result
// (a GPU mesh, a compiled shader, ...). Many unrelated raw and transformed
// types live side by side in one store; callers get them back with full
// static typing through generics.
//
// # Design
//
// The engine is split into small layers:
//
//   - Loader (apis.Loader[T, R]): user code that turns one raw T into one
//     transformed R. This is the only extension point.
//
//   - Router (package router): the type-erased form of a loader. It accepts
//     an opaque raw value, downcasts it back to T, and returns an opaque R.
//     The downcast can only fail if a router is fed a value registered
//     under another type, which the dispatcher rules out; such a failure
//     panics as a broken invariant.
//
//   - Dispatcher (package dispatch): one router per raw reflect.Type.
//     Registering again for the same type replaces the previous router.
//
//   - Store (package store): owns a dispatcher, the nested mapping
//     raw type -> id -> transformed value, and the id counter.
//
//   - Naming (package naming): stable kind names ("mesh", "opengl.Shader")
//     for raw types, used only in logs and error messages.
//
// The functions of this package are the typed front door to those layers:
//
//	s := pile.New()
//	pile.MustRegister[Mesh, GLMesh](s, MeshLoader{})
//	id, err := pile.Add(s, Mesh{Name: "Cube"})
//	gl, err := pile.Get[Mesh, GLMesh](s, id)
//
// # Ids
//
// By default every Add draws from one counter shared by all raw types, so
// ids are unique across the whole store and strictly increasing in call
// order, but not contiguous within one raw type. config.WithIDScope with
// apis.ScopeKind switches to one counter per raw type, which restarts at
// zero for each type. A failed Add never consumes an id.
//
// Raw values implementing apis.Identifier can additionally be indexed by
// their EntityID (config.WithIndexEntities) and found again with Lookup.
//
// # Errors
//
// Failures are returned as *apis.Error and match one of:
//
//   - apis.ErrMissingLoader: Add for a raw type without a loader.
//   - apis.ErrUnknownSlot: Get for a (type, id) pair never populated.
//   - apis.ErrTypeMismatch: Get asking for an R other than the exact type
//     the loader declared, or a store-level Add whose raw value is not of
//     the raw type it names.
//   - apis.ErrDuplicateEntity: Add of an entity id already indexed.
//
// The Must* variants panic instead, for callers that treat these as the
// programmer errors they usually are.
//
// # Concurrency model
//
// A store from New has a single owner and takes no locks. Stores from
// NewSynchronized (or store.Synchronized) serialize writers behind one
// RWMutex and let readers proceed in parallel.
//
// # Scope
//
// pile does not persist, update, delete, version, or reference-count
// resources. Transformed values are created once, at Add time, and live as
// long as the store.
package pile
