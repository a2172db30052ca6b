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
	"fmt"
	"strings"

	"vlayer.dev/verrors/apis"
	"vlayer.dev/verrors/code"
	"vlayer.dev/verrors/dispatch/internal/segmenttrie"
	"vlayer.dev/verrors/origin"
)

// New constructs an immutable apis.Policy snapshot.
//
// The resulting apis.Policy is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained policy instance with no shared
// references to global state or user-provided structures.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (domain severities, per-code
//     severity seeds, per-severity actions).
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Validate every referenced code against the registry and every severity
//     and action value against its enum.
//  4. Normalize and validate all origin prefixes and build per-code segment
//     tries supporting longest-prefix-match with '*' as a single-segment
//     wildcard.
//  5. Freeze all maps and tries into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid prefixes, unregistered
// codes, or out-of-range severity/action values.
func New(opts ...Option) (apis.Policy, error) {
	// (0) Start with an empty builder; no pre-seeded state is assumed.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults. Copy into
	// builder-owned maps so options can adjust them freely.
	for d, s := range defaultDomainSeverity {
		b.sevDomain[d] = s
	}
	for k, s := range defaultCodeSeverity {
		b.sevDefault[k] = s
	}
	for s, a := range defaultSeverityAction {
		b.actBySeverity[s] = a
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate the accumulated state before freezing.
	if err := validateBuilder(b); err != nil {
		return nil, err
	}

	// (4) Build per-code prefix tries. Each rule prefix is normalized and
	// validated before insertion.
	tries := make(map[code.Key]*segmenttrie.Trie[apis.Severity], len(b.sevPrefixes))
	for k, rules := range b.sevPrefixes {
		if len(rules) == 0 {
			continue
		}
		t := segmenttrie.New[apis.Severity]()
		for _, r := range rules {
			p, err := normalizeAndValidatePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("dispatch: invalid origin prefix %q for code %q: %w", r.prefix, k, err)
			}
			if err := t.Insert(p, r.sev); err != nil {
				return nil, fmt.Errorf("dispatch: cannot insert prefix %q for code %q: %w", p, k, err)
			}
		}
		tries[k] = t
	}

	// (5) Freeze everything into a read-only snapshot. Each map is freshly
	// allocated; tries are shallow-copied (they are immutable after build).
	p := &policy{
		sevDomain:   freezeDomainSeverities(b.sevDomain),
		sevDefault:  freezeCodeSeverities(b.sevDefault),
		sevOverride: freezeCodeSeverities(b.sevOverride),
		sevTrie:     freezeTries(tries),

		actBySeverity: freezeSeverityActions(b.actBySeverity),
		actOverride:   freezeActions(b.actOverride),

		fallbackSeverity: b.fallbackSeverity,
		fallbackAction:   b.fallbackAction,
	}

	return p, nil
}

// validateBuilder rejects rules that reference unregistered codes or carry
// out-of-range severity/action values. Catching these at build time keeps
// the resolution paths free of defensive checks.
func validateBuilder(b *builder) error {
	for d, s := range b.sevDomain {
		if !d.Valid() {
			return fmt.Errorf("dispatch: severity rule for unknown domain %q", d)
		}
		if !s.Valid() {
			return fmt.Errorf("dispatch: invalid severity %d for domain %q", s, d)
		}
	}
	for _, m := range []map[code.Key]apis.Severity{b.sevDefault, b.sevOverride} {
		for k, s := range m {
			if _, ok := code.Lookup(k); !ok {
				return fmt.Errorf("dispatch: severity rule for unregistered code %q", k)
			}
			if !s.Valid() {
				return fmt.Errorf("dispatch: invalid severity %d for code %q", s, k)
			}
		}
	}
	for k, rules := range b.sevPrefixes {
		if _, ok := code.Lookup(k); !ok {
			return fmt.Errorf("dispatch: prefix rule for unregistered code %q", k)
		}
		for _, r := range rules {
			if !r.sev.Valid() {
				return fmt.Errorf("dispatch: invalid severity %d for prefix %q on code %q", r.sev, r.prefix, k)
			}
		}
	}
	for s, a := range b.actBySeverity {
		if !s.Valid() {
			return fmt.Errorf("dispatch: action rule for invalid severity %d", s)
		}
		if !a.Valid() {
			return fmt.Errorf("dispatch: invalid action %d for severity %q", a, s)
		}
	}
	for k, a := range b.actOverride {
		if _, ok := code.Lookup(k); !ok {
			return fmt.Errorf("dispatch: action rule for unregistered code %q", k)
		}
		if !a.Valid() {
			return fmt.Errorf("dispatch: invalid action %d for code %q", a, k)
		}
	}
	if !b.fallbackSeverity.Valid() {
		return fmt.Errorf("dispatch: invalid fallback severity %d", b.fallbackSeverity)
	}
	if !b.fallbackAction.Valid() {
		return fmt.Errorf("dispatch: invalid fallback action %d", b.fallbackAction)
	}
	return nil
}

// policy is an immutable policy implementation that combines per-domain
// bases, per-code defaults, per-code exact overrides, and per-code
// segment-aware prefix tries for origins. Lookups are O(depth) and safe for
// concurrent use once constructed.
type policy struct {
	// sevDomain holds the base severity for each domain. Used when no
	// code-specific rule is present.
	sevDomain map[code.Domain]apis.Severity

	// sevDefault holds the base severity for a given code. Above domain
	// bases, below per-origin LPM rules.
	sevDefault map[code.Key]apis.Severity

	// sevOverride holds explicit severities for specific codes. These take
	// precedence over every other severity tier.
	sevOverride map[code.Key]apis.Severity

	// sevTrie stores per-code tries that resolve severities based on origin
	// prefixes (dot-separated, with "*" for one-segment wildcards).
	sevTrie map[code.Key]*segmenttrie.Trie[apis.Severity]

	// actBySeverity maps a resolved severity to its action.
	actBySeverity map[apis.Severity]apis.Action

	// actOverride holds explicit actions for specific codes, above the
	// per-severity table.
	actOverride map[code.Key]apis.Action

	// fallbackSeverity is used when no tier at all applies for a code.
	fallbackSeverity apis.Severity

	// fallbackAction is used when no per-severity default applies.
	fallbackAction apis.Action
}

// SeverityOf resolves the severity for the given code key and origin.
//
// Resolution order (highest to lowest):
//  1. exact per-code override (explicitly registered);
//  2. per-code longest-prefix-match rule on the origin;
//  3. per-code default (library seed or user supplied);
//  4. per-domain base severity;
//  5. global fallback (SeverityError unless reconfigured).
//
// The origin is treated as a dot-separated string; LPM rules are stored
// per code.
func (p *policy) SeverityOf(k code.Key, o origin.Origin) apis.Severity {
	// 1. Fast path: exact override for this code.
	if s, ok := p.sevOverride[k]; ok {
		return s
	}

	// 2. Per-code prefix LPM over the origin.
	if idx, ok := p.sevTrie[k]; ok && idx != nil {
		if s, ok := idx.Match(string(o)); ok {
			return s
		}
	}

	// 3. Per-code default.
	if s, ok := p.sevDefault[k]; ok {
		return s
	}

	// 4. Per-domain base.
	if s, ok := p.sevDomain[k.Domain]; ok {
		return s
	}

	// 5. Ultimate fallback: severity must never be undefined.
	return p.fallbackSeverity
}

// ActionOf resolves the action for the given code key and origin.
//
// Resolution order:
//  1. exact per-code override;
//  2. per-severity default table, keyed by the resolved severity;
//  3. global fallback (ActionLog unless reconfigured).
func (p *policy) ActionOf(k code.Key, o origin.Origin) apis.Action {
	// 1. Exact override.
	if a, ok := p.actOverride[k]; ok {
		return a
	}

	// 2. Per-severity table, driven by the severity resolution above.
	if a, ok := p.actBySeverity[p.SeverityOf(k, o)]; ok {
		return a
	}

	// 3. Ultimate fallback.
	return p.fallbackAction
}

// Decide resolves both severity and action using the same inputs. This keeps
// the two halves of a decision consistent for a single logical error.
func (p *policy) Decide(k code.Key, o origin.Origin) apis.Decision {
	return apis.Decision{
		Severity: p.SeverityOf(k, o),
		Action:   p.ActionOf(k, o),
	}
}

// Explain produces a textual trace of how the policy resolved severity and
// action for a particular (code, origin) pair.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, prefix, default, domain, or fallback) and, for prefix matches,
// which pattern was used.
//
// Example output:
//
//	code="memtrack/3" origin="cmd_buffer.submit"
//	severity: source=prefix pattern="cmd_buffer" -> WARNING
//	action: source=severity -> LOG
//
// Notes:
//   - severity source ∈ {override | prefix | default | domain | fallback}
//   - action source ∈ {override | severity | fallback}
//   - pattern is the rule as it was stored in the trie (may contain "*")
func (p *policy) Explain(k code.Key, o origin.Origin) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q origin=%q\n", k, o)

	switch src, sevLine := p.explainSeverity(k, o); src {
	case "override", "prefix", "default", "domain", "fallback":
		_, _ = fmt.Fprintln(&b, sevLine)
	default:
		_, _ = fmt.Fprintln(&b, "severity: source=unknown")
	}

	switch src, actLine := p.explainAction(k, o); src {
	case "override", "severity", "fallback":
		_, _ = fmt.Fprintln(&b, actLine)
	default:
		_, _ = fmt.Fprintln(&b, "action: source=unknown")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// explainSeverity returns the tier name and a formatted line describing how
// the severity was chosen.
func (p *policy) explainSeverity(k code.Key, o origin.Origin) (source, line string) {
	// 1) exact per-code override
	if s, ok := p.sevOverride[k]; ok {
		return "override", fmt.Sprintf("severity: source=override -> %s", severityLabel(s))
	}

	// 2) per-code LPM against the origin
	if idx, ok := p.sevTrie[k]; ok && idx != nil {
		if s, ok2, pat := idx.MatchWithPattern(string(o)); ok2 {
			return "prefix", fmt.Sprintf("severity: source=prefix pattern=%q -> %s", pat, severityLabel(s))
		}
	}

	// 3) per-code default
	if s, ok := p.sevDefault[k]; ok {
		return "default", fmt.Sprintf("severity: source=default -> %s", severityLabel(s))
	}

	// 4) per-domain base
	if s, ok := p.sevDomain[k.Domain]; ok {
		return "domain", fmt.Sprintf("severity: source=domain -> %s", severityLabel(s))
	}

	// 5) global fallback
	return "fallback", fmt.Sprintf("severity: source=fallback -> %s", severityLabel(p.fallbackSeverity))
}

// explainAction returns the tier name and a formatted line describing how
// the action was chosen.
func (p *policy) explainAction(k code.Key, o origin.Origin) (source, line string) {
	// 1) exact per-code override
	if a, ok := p.actOverride[k]; ok {
		return "override", fmt.Sprintf("action: source=override -> %s", actionLabel(a))
	}

	// 2) per-severity table
	if a, ok := p.actBySeverity[p.SeverityOf(k, o)]; ok {
		return "severity", fmt.Sprintf("action: source=severity -> %s", actionLabel(a))
	}

	// 3) global fallback
	return "fallback", fmt.Sprintf("action: source=fallback -> %s", actionLabel(p.fallbackAction))
}

// severityLabel renders a severity in the upper-case form used by Explain.
func severityLabel(s apis.Severity) string {
	return strings.ToUpper(s.String())
}

// actionLabel renders an action in the upper-case form used by Explain.
func actionLabel(a apis.Action) string {
	return strings.ToUpper(a.String())
}

// normalizeAndValidatePrefix ensures an origin prefix is canonical and
// valid for trie insertion. It forbids empty prefixes and prefixes that
// consist of wildcards only.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := origin.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	segs := strings.Split(p, ".")
	allWild := true
	for _, seg := range segs {
		if !validPrefixSegment(seg) { // allows "*" or [a-z][a-z0-9_]*
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}

// validPrefixSegment reports whether seg is a valid trie segment.
// Rules:
//   - empty segments are invalid;
//   - the segment "*" is allowed;
//   - otherwise the segment must match: [a-z][a-z0-9_]*
func validPrefixSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
