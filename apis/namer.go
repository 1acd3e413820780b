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

// Namer identifies a raw kind by a stable, canonical name.
//
// Namer is a type-level contract: EntityName describes the kind of a
// resource ("mesh", "shader"), not a particular instance, and must not
// depend on instance state. It is consulted on the zero value of a type,
// so value receivers are required for it to take effect.
type Namer interface {
	EntityName() string
}

// Identifier extends Namer with a per-instance identifier.
//
// When a raw value implements Identifier and reports a non-empty EntityID,
// a Store with Config.IndexEntities set records the (kind, EntityID) pair
// so the resource can later be found without remembering its ID.
// EntityID must be deterministic for a given value.
type Identifier interface {
	Namer
	EntityID() string
}
