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

package dispatch

import (
	"vlayer.dev/verrors/apis"
	"vlayer.dev/verrors/code"
)

// prefixRule is an origin-prefix rule as provided by an option. The prefix
// is raw (may contain "*"); it is normalized and validated when the per-code
// trie is built in New.
type prefixRule struct {
	prefix string
	sev    apis.Severity
}

// builder accumulates option state before New freezes it into a policy.
type builder struct {
	// severity tiers

	// sevDomain holds per-domain base severities.
	sevDomain map[code.Domain]apis.Severity
	// sevDefault holds per-code defaults (library seeds plus user adjustments).
	sevDefault map[code.Key]apis.Severity
	// sevOverride holds exact per-code overrides (above prefix rules).
	sevOverride map[code.Key]apis.Severity
	// sevPrefixes holds per-code origin-prefix rules, compiled into tries
	// by New.
	sevPrefixes map[code.Key][]prefixRule

	// action tiers

	// actBySeverity maps a resolved severity to its default action.
	actBySeverity map[apis.Severity]apis.Action
	// actOverride holds exact per-code action overrides.
	actOverride map[code.Key]apis.Action

	// hard fallbacks when nothing else applies.
	fallbackSeverity apis.Severity
	fallbackAction   apis.Action
}

// newBuilder creates an empty builder with maps sized for the library
// defaults that will seed them.
func newBuilder() *builder {
	return &builder{
		sevDomain:   make(map[code.Domain]apis.Severity, len(defaultDomainSeverity)),
		sevDefault:  make(map[code.Key]apis.Severity, len(defaultCodeSeverity)),
		sevOverride: make(map[code.Key]apis.Severity),
		sevPrefixes: make(map[code.Key][]prefixRule),

		actBySeverity: make(map[apis.Severity]apis.Action, len(defaultSeverityAction)),
		actOverride:   make(map[code.Key]apis.Action),

		fallbackSeverity: apis.SeverityError,
		fallbackAction:   apis.ActionLog,
	}
}
