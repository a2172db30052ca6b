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

package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"vlayer.dev/verrors"
	"vlayer.dev/verrors/apis"
	"vlayer.dev/verrors/catalog"
	"vlayer.dev/verrors/code"
)

var (
	// ErrNilPolicy is returned by New when no dispatch policy is supplied.
	ErrNilPolicy = errors.New("report: nil policy")

	// ErrNilError is returned by Report for a nil *verrors.Error.
	ErrNilError = errors.New("report: nil error")

	// ErrNoCode is returned by Report for an error without a taxonomy code.
	ErrNoCode = errors.New("report: error carries no code")

	// ErrSentinelCode is returned by Report for an error carrying a domain's
	// zero sentinel. Sentinels mean "no violation" and must never be
	// dispatched.
	ErrSentinelCode = errors.New("report: sentinel code cannot be reported")

	// ErrUnregisteredCode is returned by Report for a code value outside the
	// registered set of its domain.
	ErrUnregisteredCode = errors.New("report: unregistered code")
)

// Callback receives each dispatched report. Callbacks run synchronously on
// the reporting goroutine and must not block for long.
type Callback func(apis.Report)

// Reporter dispatches violations: policy decides, catalog fills messages,
// callbacks consume. The zero value is not usable; construct with New.
type Reporter struct {
	policy      apis.Policy
	callbacks   []Callback
	minSeverity apis.Severity
	metrics     *metrics
}

// New constructs a Reporter around the given dispatch policy.
func New(policy apis.Policy, opts ...ReporterOption) (*Reporter, error) {
	if policy == nil {
		return nil, ErrNilPolicy
	}
	r := &Reporter{
		policy:      policy,
		minSeverity: apis.SeverityDebug,
	}
	cfg := reporterConfig{}
	for _, opt := range opts {
		opt(&cfg, r)
	}
	m, err := newMetrics(cfg.registerer)
	if err != nil {
		return nil, fmt.Errorf("report: register metrics: %w", err)
	}
	r.metrics = m
	return r, nil
}

// Report dispatches one violation.
//
// It validates the error's code, resolves the dispatch decision for the
// (code, origin) pair, and builds the serializable snapshot. Reports whose
// action is ActionIgnore, or whose severity falls below the configured
// floor, are counted but not delivered to callbacks.
//
// The abort flag is true when the resolved action is ActionAbort: the
// validated call must not proceed. An error return means the input was
// malformed and nothing was dispatched.
func (r *Reporter) Report(ctx context.Context, e *verrors.Error) (apis.Report, bool, error) {
	if e == nil {
		return apis.Report{}, false, ErrNilError
	}
	c := e.Code
	if c == nil {
		return apis.Report{}, false, ErrNoCode
	}
	if c.IsNone() {
		return apis.Report{}, false, fmt.Errorf("%w: %s", ErrSentinelCode, c.Symbol())
	}
	k := code.KeyOf(c)
	if _, ok := code.Lookup(k); !ok {
		return apis.Report{}, false, fmt.Errorf("%w: %s", ErrUnregisteredCode, c.Symbol())
	}

	d := r.policy.Decide(k, e.Origin)

	msg := e.Message
	if msg == "" {
		msg = catalog.Message(c)
	}

	rep := apis.Report{
		ID:       uuid.NewString(),
		Domain:   c.Domain().String(),
		Symbol:   c.Symbol(),
		Ordinal:  c.Ordinal(),
		Severity: d.Severity,
		Action:   d.Action,
		Message:  msg,
		Origin:   e.Origin.String(),
		Handle:   e.Handle,
		Details:  e.Details,
	}

	// Tie the report to the caller's trace when one is active.
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		rep.TraceID = sc.TraceID().String()
		rep.SpanID = sc.SpanID().String()
	}

	r.metrics.observe(rep)

	abort := d.Action == apis.ActionAbort
	if d.Action == apis.ActionIgnore || d.Severity < r.minSeverity {
		return rep, abort, nil
	}
	for _, cb := range r.callbacks {
		cb(rep)
	}
	return rep, abort, nil
}
