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

// Package dispatch resolves taxonomy codes into severities and actions.
//
// # Overview
//
// The taxonomy (vlayer.dev/verrors/code) deliberately carries no severity:
// whether a violation is fatal, a warning, or a performance advisory is
// deployment policy, not classification. This package builds that policy as
// an immutable apis.Policy snapshot:
//
//   - immutable — built once, safe for concurrent reuse forever;
//   - total — every registered code resolves to a valid Decision;
//   - overridable — per-code rules sit on top of library defaults;
//   - origin-aware — rules can target the raising check by prefix.
//
// # Resolution model
//
// Severity resolves in the following order:
//
//  1. exact per-code override;
//  2. per-code longest-prefix-match (LPM) on the origin;
//  3. per-code default (library or user-adjusted);
//  4. per-domain default;
//  5. global fallback (SeverityError).
//
// Action resolves as:
//
//  1. exact per-code override;
//  2. per-severity default table (keyed on the resolved severity);
//  3. global fallback (ActionLog).
//
// Prefix rules are segment-aware: origins are "."-separated, and "*"
// matches exactly one segment. For example:
//
//	WithSeverityPrefix(code.DrawStateSwapchainBadExtents, "wsi.swapchain", apis.SeverityWarning)
//	WithSeverityPrefix(code.DrawStateObjectInUse, "core.*.destroy", apis.SeverityError)
//
// The more specific prefix wins.
//
// # Library defaults
//
// Every domain defaults to SeverityError. A small set of advisory codes
// (leak at teardown, unconsumed shader outputs, clear-before-draw) defaults
// lower; see defaults.go. Actions default to ActionLog for everything above
// SeverityDebug.
//
// # Building a policy
//
//	p, err := dispatch.New(
//	    dispatch.WithSeverityOverride(code.MemTrackMemoryLeak, apis.SeverityError),
//	    dispatch.WithActionOverride(code.DrawStateObjectInUse, apis.ActionAbort),
//	)
//
// # Diagnostics
//
// Policy.Explain returns a human-readable trace of which tier matched for a
// given (code, origin) pair. It is meant for inspection and tests, not for
// stable machine parsing.
package dispatch
