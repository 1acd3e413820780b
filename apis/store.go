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

package apis

import "reflect"

// Resource is a populated slot: the transformed value and the type its
// router declared as Transformed(). Value may be nil for nilable types.
type Resource struct {
	Value any
	Type  reflect.Type
}

// Store is the type-erased resource pile: a Dispatcher plus a two-level
// mapping raw type -> ID -> transformed value.
//
// Typed access goes through the generic helpers of package pile; Store
// itself only deals in reflect.Type keys and opaque values.
type Store interface {
	// Register binds r to the raw type t (see Dispatcher.Register).
	Register(t reflect.Type, r Router) error
	// Add transforms raw through the router for t and stores the result
	// under a freshly allocated ID. raw must hold a t (or be nil when t is
	// nilable); anything else fails with ErrTypeMismatch. On error nothing
	// is stored and no ID is consumed.
	Add(t reflect.Type, raw any) (ID, error)
	// Get returns the resource stored under (t, id), or an *Error
	// wrapping ErrUnknownSlot.
	Get(t reflect.Type, id ID) (Resource, error)
	// Lookup returns the ID of the resource of raw type t whose raw value
	// reported entityID through Identifier.
	Lookup(t reflect.Type, entityID string) (ID, bool)
	// IDs returns the ids stored for t in ascending order.
	IDs(t reflect.Type) []ID
	// Kinds returns the raw types that hold at least one resource.
	Kinds() []reflect.Type
	// Routes returns the registered routes (see Dispatcher.Entries).
	Routes() []Route
	// Len returns the total number of stored resources.
	Len() int
}
