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

package apis

// Descriptor is a flat, transport-friendly description of a known code
// together with its resolved dispatch decision.
//
// It intentionally uses strings and plain integers (not the code or origin
// value types) so it can live at the public surface and be consumed by
// loggers, buses and adapters without importing the taxonomy packages.
// Implementations SHOULD store only registered, validated values here.
type Descriptor struct {
	// Domain, Symbol and Ordinal are the stable identity of the code.
	Domain  string `json:"domain"`
	Symbol  string `json:"symbol"`
	Ordinal int32  `json:"ordinal"`

	// Severity and Action are the resolved policy decision, as their
	// lowercase names. Empty means "not resolved".
	Severity string `json:"severity,omitempty"`
	Action   string `json:"action,omitempty"`

	// Message is an optional human-friendly default message for the code.
	Message string `json:"message,omitempty"`

	// Origin identifies the raising check, when known.
	Origin string `json:"origin,omitempty"`

	// Handle is the raw handle of the affected object, zero if none.
	Handle uint64 `json:"handle,omitempty"`
}
