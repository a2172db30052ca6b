/*
   Copyright 2026 The VLAYER Authors

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

package code

// MemTrack classifies violations of object and memory lifetime rules:
// binding, mapping, aliasing, use-after-free and fence state.
//
// A memory-validation check selects exactly one MemTrack value per detected
// violation — the first or most specific one that applies to the call. If a
// memory/lifetime problem fits no value here, the enumeration is extended;
// it is never described with a code from another domain.
type MemTrack int32

const (
	// MemTrackNone is the sentinel: no memory violation detected.
	MemTrackNone MemTrack = iota

	// MemTrackInvalidCmdBuffer flags use of an invalid command buffer handle.
	MemTrackInvalidCmdBuffer

	// MemTrackInvalidMemObj flags use of an invalid memory object handle.
	MemTrackInvalidMemObj

	// MemTrackInvalidAliasing flags memory bindings that overlap illegally.
	MemTrackInvalidAliasing

	// MemTrackInternalError flags an inconsistency inside the tracker itself.
	MemTrackInternalError

	// MemTrackFreedMemRef flags a reference to already-freed memory.
	MemTrackFreedMemRef

	// MemTrackInvalidObject flags use of an invalid object handle.
	MemTrackInvalidObject

	// MemTrackMemoryLeak flags memory still allocated when its owner is destroyed.
	MemTrackMemoryLeak

	// MemTrackInvalidState flags an object used while in a state that does
	// not permit the operation.
	MemTrackInvalidState

	// MemTrackResetCmdBufferWhileInFlight flags a command buffer reset while
	// still in flight.
	MemTrackResetCmdBufferWhileInFlight

	// MemTrackInvalidFenceState flags a fence used in the wrong state
	// (e.g. waited on before being submitted).
	MemTrackInvalidFenceState

	// MemTrackRebindObject flags an object bound to memory while a previous
	// binding is still in effect.
	MemTrackRebindObject

	// MemTrackInvalidUsageFlag flags an operation the object's usage flags
	// do not permit.
	MemTrackInvalidUsageFlag

	// MemTrackInvalidMap flags an invalid map or unmap operation.
	MemTrackInvalidMap

	// MemTrackInvalidMemType flags a binding through an incompatible memory type.
	MemTrackInvalidMemType

	// MemTrackInvalidMemRegion flags a map request outside the allocation bounds.
	MemTrackInvalidMemRegion

	// MemTrackObjectNotBound flags an object used before being bound to memory.
	MemTrackObjectNotBound
)

// memTrackNames holds the stable symbolic name of every MemTrack value.
// Append-only: entries are never renamed or removed.
var memTrackNames = map[MemTrack]string{
	MemTrackNone:                        "none",
	MemTrackInvalidCmdBuffer:            "invalid_cmd_buffer",
	MemTrackInvalidMemObj:               "invalid_mem_obj",
	MemTrackInvalidAliasing:             "invalid_aliasing",
	MemTrackInternalError:               "internal_error",
	MemTrackFreedMemRef:                 "freed_mem_ref",
	MemTrackInvalidObject:               "invalid_object",
	MemTrackMemoryLeak:                  "memory_leak",
	MemTrackInvalidState:                "invalid_state",
	MemTrackResetCmdBufferWhileInFlight: "reset_cmd_buffer_while_in_flight",
	MemTrackInvalidFenceState:           "invalid_fence_state",
	MemTrackRebindObject:                "rebind_object",
	MemTrackInvalidUsageFlag:            "invalid_usage_flag",
	MemTrackInvalidMap:                  "invalid_map",
	MemTrackInvalidMemType:              "invalid_mem_type",
	MemTrackInvalidMemRegion:            "invalid_mem_region",
	MemTrackObjectNotBound:              "object_not_bound",
}

// Domain returns DomainMemTrack.
func (c MemTrack) Domain() Domain { return DomainMemTrack }

// Ordinal returns the stable numeric identifier of c within the domain.
func (c MemTrack) Ordinal() int32 { return int32(c) }

// IsNone reports whether c is the MemTrackNone sentinel.
func (c MemTrack) IsNone() bool { return c == MemTrackNone }

// Valid reports whether c is a registered value of this enumeration.
func (c MemTrack) Valid() bool { _, ok := memTrackNames[c]; return ok }

// Symbol returns the domain-qualified symbolic identifier, e.g.
// "memtrack.freed_mem_ref". Unregistered values render as "memtrack(N)".
func (c MemTrack) Symbol() string {
	if s, ok := memTrackNames[c]; ok {
		return "memtrack." + s
	}
	return unknownSymbol(DomainMemTrack, int32(c))
}

// String returns the same form as Symbol.
func (c MemTrack) String() string { return c.Symbol() }

// MarshalText implements encoding.TextMarshaler using the symbolic form.
// Unregistered values fail rather than leak an unstable identifier.
func (c MemTrack) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrUnknownCode
	}
	return []byte(c.Symbol()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input must be the
// domain-qualified symbol of a MemTrack value.
func (c *MemTrack) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	v, ok := parsed.(MemTrack)
	if !ok {
		return ErrDomainMismatch
	}
	*c = v
	return nil
}
