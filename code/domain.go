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

// TaxonomyVersion identifies the published revision of the four code sets.
// It changes only when codes are appended; existing identifiers keep their
// domain, symbol and ordinal across revisions.
const TaxonomyVersion = "v1"

// Domain tags one of the four partitions of the taxonomy.
//
// The tag travels with the ordinal wherever a code crosses a package or
// process boundary, so that numerically equal codes from different domains
// can never be confused (see Key).
type Domain uint8

const (
	// DomainUnknown is the zero Domain. It tags no partition and is the
	// value a Key holds before a real code was assigned.
	DomainUnknown Domain = iota

	// DomainMemTrack partitions object/memory lifetime and binding codes.
	DomainMemTrack

	// DomainDrawState partitions draw-state and command-buffer
	// state-machine codes.
	DomainDrawState

	// DomainShaderCheck partitions shader-interface consistency codes.
	DomainShaderCheck

	// DomainDevLimits partitions device limit/feature query codes.
	DomainDevLimits
)

// domainNames holds the canonical lowercase tag of each domain. These tags
// are the first component of every code symbol and are as stable as the
// codes themselves.
var domainNames = map[Domain]string{
	DomainUnknown:     "unknown",
	DomainMemTrack:    "memtrack",
	DomainDrawState:   "drawstate",
	DomainShaderCheck: "shadercheck",
	DomainDevLimits:   "devlimits",
}

// String returns the canonical lowercase tag, e.g. "drawstate".
func (d Domain) String() string {
	if s, ok := domainNames[d]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether d tags one of the four taxonomy partitions.
func (d Domain) Valid() bool {
	return d >= DomainMemTrack && d <= DomainDevLimits
}

// Domains returns the four taxonomy partitions in tag order.
// The returned slice is a fresh copy and safe to modify.
func Domains() []Domain {
	return []Domain{DomainMemTrack, DomainDrawState, DomainShaderCheck, DomainDevLimits}
}
