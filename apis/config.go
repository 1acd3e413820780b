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

import (
	"fmt"
	"strings"
)

// Config carries read-only knobs that influence how a Store assigns ids
// and indexes resources. It is passed by value and should be treated as
// immutable by implementations.
type Config struct {
	// IDScope selects whether ids come from one counter shared by every
	// raw kind (ScopeGlobal) or from one counter per raw kind (ScopeKind).
	IDScope Scope

	// IndexEntities controls whether raw values implementing Identifier are
	// indexed by their EntityID, enabling lookups by entity id.
	IndexEntities bool
}

// Scope is the id allocation scope of a Store.
type Scope int

const (
	// ScopeGlobal hands out ids from a single counter across all raw kinds.
	// Ids are unique within the store but not contiguous within a kind.
	ScopeGlobal Scope = iota
	// ScopeKind hands out ids from a separate counter per raw kind.
	// Ids restart at zero for every kind and are only unique per kind.
	ScopeKind
)

// String returns the canonical lowercase name of s.
func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeKind:
		return "kind"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// ParseScope parses the canonical name of a Scope. Matching is case-insensitive.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global", "":
		return ScopeGlobal, nil
	case "kind", "per-kind", "type":
		return ScopeKind, nil
	default:
		return 0, fmt.Errorf("unknown id scope %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scope) UnmarshalText(text []byte) error {
	v, err := ParseScope(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
