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

import "fmt"

// Code is the sum type over the four domain enumerations.
//
// It is implemented only by MemTrack, DrawState, ShaderCheck and DevLimits.
// Consumers that need to carry "a code from any domain" (error values,
// reports, wire adapters) hold a Code; consumers that validate one domain
// hold the concrete type and get compile-time scoping for free.
type Code interface {
	// Domain returns the partition this code belongs to.
	Domain() Domain

	// Ordinal returns the stable numeric identifier within the domain.
	// Ordinal zero is always the domain's "no violation" sentinel.
	Ordinal() int32

	// Symbol returns the stable, domain-qualified symbolic identifier,
	// e.g. "memtrack.freed_mem_ref". Symbols are lowercase, dot- and
	// underscore-separated, and never change once published.
	Symbol() string

	// IsNone reports whether this is the domain's zero sentinel.
	IsNone() bool
}

// Ensure the four enumerations stay in the sum type.
var (
	_ Code = MemTrackNone
	_ Code = DrawStateNone
	_ Code = ShaderCheckNone
	_ Code = DevLimitsNone
)

// Key is the (domain, ordinal) pair that identifies a code across the whole
// taxonomy. Two codes from different domains never share a Key even when
// their ordinals are equal, which makes Key safe to use as a map key or to
// compare across domain boundaries.
type Key struct {
	Domain  Domain
	Ordinal int32
}

// KeyOf returns the taxonomy-wide key of c. A nil Code yields the zero Key
// (DomainUnknown), which matches no registered code.
func KeyOf(c Code) Key {
	if c == nil {
		return Key{}
	}
	return Key{Domain: c.Domain(), Ordinal: c.Ordinal()}
}

// String renders the key as "domain/ordinal", e.g. "drawstate/55".
func (k Key) String() string {
	return fmt.Sprintf("%s/%d", k.Domain, k.Ordinal)
}

// unknownSymbol renders the symbol of a value outside the registered set,
// e.g. "memtrack(99)". Such values are invalid and rejected by MarshalText,
// but String/Symbol must still produce something printable for logs.
func unknownSymbol(d Domain, n int32) string {
	return fmt.Sprintf("%s(%d)", d, n)
}
