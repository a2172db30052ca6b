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

// Detail is a single structured piece of information attached to a report:
// which binding failed, expected vs actual values, the conflicting object.
// It is a view type — small, transport-friendly, safe to marshal.
type Detail struct {
	// Type is a short classifier of the detail, e.g. "binding", "extent",
	// "mismatch". May be empty.
	Type string `json:"type,omitempty"`

	// Field carries the logical path to the offending parameter, e.g.
	// "create_info.image_extent". May be empty for non-parameter details.
	Field string `json:"field,omitempty"`

	// Reason is a short human-friendly explanation, e.g. "out_of_range".
	Reason string `json:"reason,omitempty"`

	// Info carries optional extra structured data (allowed values, queried
	// limits, conflicting handles). Keys and values should survive
	// JSON/proto round-trips.
	Info map[string]string `json:"info,omitempty"`
}

// Report is the serializable snapshot of one dispatched violation. It is
// what callbacks receive and what may be exposed over the wire or logged;
// it is not the concrete error type used internally.
type Report struct {
	// ID uniquely identifies this dispatch of the violation.
	ID string `json:"id,omitempty"`

	// Domain and Symbol are the stable identity of the code, Ordinal its
	// stable numeric form within the domain.
	Domain  string `json:"domain"`
	Symbol  string `json:"symbol"`
	Ordinal int32  `json:"ordinal"`

	// Severity and Action are the resolved dispatch decision.
	Severity Severity `json:"severity"`
	Action   Action   `json:"action"`

	// Message is the human-readable text: the error's own message when it
	// carries one, otherwise the catalog default for the code.
	Message string `json:"message,omitempty"`

	// Origin identifies the check that raised the report. May be empty.
	Origin string `json:"origin,omitempty"`

	// Handle is the raw handle of the affected object, zero if none.
	Handle uint64 `json:"handle,omitempty"`

	// TraceID and SpanID tie the report to a distributed trace, when the
	// reporting context carried one.
	TraceID string `json:"trace_id,omitempty"`
	SpanID  string `json:"span_id,omitempty"`

	// Details is an optional list of structured details.
	Details []Detail `json:"details,omitempty"`
}
