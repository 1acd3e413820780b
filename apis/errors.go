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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingLoader indicates a resource was added for a raw type that
	// has no registered loader.
	ErrMissingLoader = errors.New("no loader registered for raw type")
	// ErrUnknownSlot indicates a (raw type, id) pair that was never populated.
	ErrUnknownSlot = errors.New("unknown resource slot")
	// ErrTypeMismatch indicates the stored transformed value is not of the
	// type the caller asked for, or a raw value that is not of its raw type.
	ErrTypeMismatch = errors.New("transformed type mismatch")
	// ErrDuplicateEntity indicates a raw value whose entity id is already
	// indexed for the same raw type.
	ErrDuplicateEntity = errors.New("duplicate entity id")
)

// Error describes a failed Store operation. It unwraps to one of the
// sentinel errors above so callers can branch with errors.Is.
type Error struct {
	// Err is the sentinel kind of the failure.
	Err error
	// Op is the failing operation ("add", "get", "dispatch", ...).
	Op string
	// Kind is the resolved name of the raw type involved.
	Kind string
	// Entity is the entity id involved, if any.
	Entity string
	// Want and Got name the requested and stored transformed types on
	// ErrTypeMismatch.
	Want string
	Got  string
	// ID is the slot id involved; it is meaningful only when HasID is set.
	ID    ID
	HasID bool
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("pile: ")
	b.WriteString(e.Op)

	if e.Kind != "" {
		b.WriteString(" ")
		b.WriteString(e.Kind)
	}

	if e.HasID {
		fmt.Fprintf(&b, "#%d", e.ID)
	}

	if e.Entity != "" {
		fmt.Fprintf(&b, " (entity %q)", e.Entity)
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	if e.Want != "" || e.Got != "" {
		fmt.Fprintf(&b, ": want %s, got %s", e.Want, e.Got)
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}
