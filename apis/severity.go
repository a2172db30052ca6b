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

// Severity classifies how serious a dispatched report is. Severities are
// ordered: a report at SeverityWarning passes a floor of SeverityInfo but
// not one of SeverityError.
//
// Severity is a dispatch-policy concern, not a taxonomy one: the code sets
// carry no severity, and the same code may be an error in one deployment
// and muted in another.
type Severity uint8

const (
	// SeverityDebug marks diagnostic chatter from the checks themselves.
	SeverityDebug Severity = iota

	// SeverityInfo marks neutral information with no violation implied.
	SeverityInfo

	// SeverityPerfWarning marks valid usage that is likely to perform badly.
	SeverityPerfWarning

	// SeverityWarning marks suspect usage that is not certainly invalid.
	SeverityWarning

	// SeverityError marks a definite violation of the validated API's rules.
	SeverityError
)

var severityNames = map[Severity]string{
	SeverityDebug:       "debug",
	SeverityInfo:        "info",
	SeverityPerfWarning: "perf_warning",
	SeverityWarning:     "warning",
	SeverityError:       "error",
}

// String returns the lowercase name, e.g. "perf_warning".
func (s Severity) String() string {
	if n, ok := severityNames[s]; ok {
		return n
	}
	return "unknown"
}

// Valid reports whether s is one of the defined severities.
func (s Severity) Valid() bool {
	_, ok := severityNames[s]
	return ok
}

// Action is what the dispatch layer does with a report once its severity is
// resolved.
type Action uint8

const (
	// ActionIgnore drops the report without invoking callbacks.
	ActionIgnore Action = iota

	// ActionLog delivers the report to the registered callbacks.
	ActionLog

	// ActionAbort delivers the report and tells the caller the validated
	// call must not proceed.
	ActionAbort
)

var actionNames = map[Action]string{
	ActionIgnore: "ignore",
	ActionLog:    "log",
	ActionAbort:  "abort",
}

// String returns the lowercase name, e.g. "abort".
func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "unknown"
}

// Valid reports whether a is one of the defined actions.
func (a Action) Valid() bool {
	_, ok := actionNames[a]
	return ok
}

// Decision is the resolved pair a Policy produces for a single report. It
// is the final output of dispatch resolution and can be acted on directly.
type Decision struct {
	Severity Severity
	Action   Action
}
