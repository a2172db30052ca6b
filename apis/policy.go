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

import (
	"vlayer.dev/verrors/code"
	"vlayer.dev/verrors/origin"
)

// Policy is an immutable, concurrency-safe view of the dispatch rules. It
// resolves a taxonomy code (and optionally the origin of the check that
// raised it) into a severity and an action.
//
// A Policy must be total: every registered code resolves to a valid
// Decision, falling back to code-level and then domain-level rules when no
// origin-specific rule exists. A code's resolved meaning is stable for the
// lifetime of the Policy snapshot.
type Policy interface {
	// SeverityOf returns the severity for the given code key and origin.
	SeverityOf(k code.Key, o origin.Origin) Severity

	// ActionOf returns the action for the given code key and origin.
	ActionOf(k code.Key, o origin.Origin) Action

	// Decide resolves both severity and action in a single call, using the
	// same matching logic for each.
	Decide(k code.Key, o origin.Origin) Decision

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(k code.Key, o origin.Origin) string
}
