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

// DevLimits classifies violations found when comparing application
// requests against queried device capabilities: invalid instance or
// physical-device handles, count requests without a preceding query,
// unsupported feature requests and malformed queue-creation requests.
//
// This domain is checked before device and queue creation completes, so a
// DevLimits violation is always reported before any MemTrack code is
// reachable — no trackable object exists yet.
type DevLimits int32

const (
	// DevLimitsNone is the sentinel: no device-limits violation detected.
	DevLimitsNone DevLimits = iota

	// DevLimitsInvalidInstance flags use of an invalid instance handle.
	DevLimitsInvalidInstance

	// DevLimitsInvalidPhysicalDevice flags use of an invalid physical-device
	// handle.
	DevLimitsInvalidPhysicalDevice

	// DevLimitsMissingQueryCount flags a properties request made without
	// first querying the available count.
	DevLimitsMissingQueryCount

	// DevLimitsMustQueryCount flags a count request that ignored the value
	// returned by the preceding query.
	DevLimitsMustQueryCount

	// DevLimitsInvalidFeatureRequested flags a request for a feature the
	// device does not support.
	DevLimitsInvalidFeatureRequested

	// DevLimitsCountMismatch flags two related queries that returned
	// inconsistent counts.
	DevLimitsCountMismatch

	// DevLimitsInvalidQueueCreateRequest flags a queue-creation request
	// outside the queue-family limits.
	DevLimitsInvalidQueueCreateRequest
)

// devLimitsNames holds the stable symbolic name of every DevLimits value.
// Append-only: entries are never renamed or removed.
var devLimitsNames = map[DevLimits]string{
	DevLimitsNone:                      "none",
	DevLimitsInvalidInstance:           "invalid_instance",
	DevLimitsInvalidPhysicalDevice:     "invalid_physical_device",
	DevLimitsMissingQueryCount:         "missing_query_count",
	DevLimitsMustQueryCount:            "must_query_count",
	DevLimitsInvalidFeatureRequested:   "invalid_feature_requested",
	DevLimitsCountMismatch:             "count_mismatch",
	DevLimitsInvalidQueueCreateRequest: "invalid_queue_create_request",
}

// Domain returns DomainDevLimits.
func (c DevLimits) Domain() Domain { return DomainDevLimits }

// Ordinal returns the stable numeric identifier of c within the domain.
func (c DevLimits) Ordinal() int32 { return int32(c) }

// IsNone reports whether c is the DevLimitsNone sentinel.
func (c DevLimits) IsNone() bool { return c == DevLimitsNone }

// Valid reports whether c is a registered value of this enumeration.
func (c DevLimits) Valid() bool { _, ok := devLimitsNames[c]; return ok }

// Symbol returns the domain-qualified symbolic identifier, e.g.
// "devlimits.count_mismatch". Unregistered values render as "devlimits(N)".
func (c DevLimits) Symbol() string {
	if s, ok := devLimitsNames[c]; ok {
		return "devlimits." + s
	}
	return unknownSymbol(DomainDevLimits, int32(c))
}

// String returns the same form as Symbol.
func (c DevLimits) String() string { return c.Symbol() }

// MarshalText implements encoding.TextMarshaler using the symbolic form.
func (c DevLimits) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrUnknownCode
	}
	return []byte(c.Symbol()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input must be the
// domain-qualified symbol of a DevLimits value.
func (c *DevLimits) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	v, ok := parsed.(DevLimits)
	if !ok {
		return ErrDomainMismatch
	}
	*c = v
	return nil
}
