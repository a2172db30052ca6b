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

// Option adjusts the builder state before New freezes it into a policy.
type Option func(*builder)

// WithDomainSeverity sets the base severity for every code in domain d.
// It sits below per-code defaults in the resolution order.
func WithDomainSeverity(d code.Domain, s apis.Severity) Option {
	return func(b *builder) {
		b.sevDomain[d] = s
	}
}

// WithSeverityDefault sets the default severity for code c. It replaces the
// library seed for c if one exists, and sits below origin-prefix rules and
// overrides in the resolution order.
func WithSeverityDefault(c code.Code, s apis.Severity) Option {
	return func(b *builder) {
		b.sevDefault[code.KeyOf(c)] = s
	}
}

// WithSeverityOverride pins the severity of code c regardless of origin.
// Overrides beat every other severity tier.
func WithSeverityOverride(c code.Code, s apis.Severity) Option {
	return func(b *builder) {
		b.sevOverride[code.KeyOf(c)] = s
	}
}

// WithSeverityPrefix adds an origin-prefix rule for code c: errors whose
// origin matches prefix resolve to severity s. A "*" segment matches exactly
// one origin segment; when several rules match an origin the one with the
// most segments wins. The prefix is validated by New.
func WithSeverityPrefix(c code.Code, prefix string, s apis.Severity) Option {
	return func(b *builder) {
		k := code.KeyOf(c)
		b.sevPrefixes[k] = append(b.sevPrefixes[k], prefixRule{prefix: prefix, sev: s})
	}
}

// WithActionDefault sets the action taken for errors that resolve to
// severity s.
func WithActionDefault(s apis.Severity, a apis.Action) Option {
	return func(b *builder) {
		b.actBySeverity[s] = a
	}
}

// WithActionOverride pins the action for code c regardless of its resolved
// severity.
func WithActionOverride(c code.Code, a apis.Action) Option {
	return func(b *builder) {
		b.actOverride[code.KeyOf(c)] = a
	}
}

// WithFallbackSeverity replaces the severity used when no other tier
// applies. The library default is SeverityError.
func WithFallbackSeverity(s apis.Severity) Option {
	return func(b *builder) {
		b.fallbackSeverity = s
	}
}

// WithFallbackAction replaces the action used when no per-severity default
// applies. The library default is ActionLog.
func WithFallbackAction(a apis.Action) Option {
	return func(b *builder) {
		b.fallbackAction = a
	}
}
