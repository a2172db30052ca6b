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

// Package verrors carries a validation violation from the check that
// detected it to the reporting boundary.
//
// A validation check selects exactly one taxonomy code for the violation it
// found and wraps it, together with contextual data (affected handle,
// raising check, structured details), into an Error. The taxonomy itself
// lives in vlayer.dev/verrors/code; dispatch policy in
// vlayer.dev/verrors/dispatch; delivery in vlayer.dev/verrors/report.
package verrors

import (
	"fmt"

	"vlayer.dev/verrors/apis"
	"vlayer.dev/verrors/code"
	"vlayer.dev/verrors/origin"
)

// Error is the canonical rich error value for a detected violation.
//
// It carries:
//   - Code: the taxonomy code of the violation (required, never a sentinel);
//   - Origin: optional identifier of the check that detected it;
//   - Handle: raw handle of the affected object, zero when none exists yet;
//   - Message: human-oriented description of what went wrong;
//   - Details: structured payload for callbacks and wire adapters;
//   - Cause: wrapped underlying error for unwrapping chains.
//
// All mutation helpers (WithX) return a shallow copy, so Error values can
// be shared across goroutines and refined in a functional style.
type Error struct {
	// Code is the primary classification of the violation. It must be a
	// registered, non-sentinel value from one of the four domains.
	Code code.Code

	// Origin identifies the validation check that raised the error, e.g.
	// "core.cmdbuffer.begin". May be empty.
	Origin origin.Origin

	// Handle is the raw handle of the object the violation was detected
	// on. Zero means no object is involved (device-limits violations are
	// raised before any object exists).
	Handle uint64

	// Message is a human-readable explanation. When empty, the reporting
	// layer substitutes the catalog default for the code.
	Message string

	// Details holds structured context (binding index, queried limit,
	// conflicting handle). Treated as immutable: WithDetail always copies.
	Details []apis.Detail

	// Cause holds the wrapped underlying error, if any.
	Cause error
}

// E constructs an Error for the given code.
//
// Usage:
//
//	return verrors.E(code.DrawStateNoActiveRenderpass, "draw recorded outside a render pass",
//	    verrors.WithOriginOption(chkDraw),
//	    verrors.WithHandleOption(cbHandle),
//	)
//
// It always returns a new Error and applies the options in order.
func E(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<symbol>: <message>
//
// or, when Origin is present:
//
//	<symbol>:<origin>: <message>
//
// which keeps log lines both human- and machine-scannable.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	sym := "unknown"
	if e.Code != nil {
		sym = e.Code.Symbol()
	}
	if e.Origin != "" {
		return fmt.Sprintf("%s:%s: %s", sym, e.Origin, e.Message)
	}
	return fmt.Sprintf("%s: %s", sym, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() code.Code { return e.Code }

// ErrorOrigin implements apis.OriginatedError.
func (e *Error) ErrorOrigin() string { return string(e.Origin) }

// ErrorHandle implements apis.HandledError.
func (e *Error) ErrorHandle() uint64 { return e.Handle }

// ErrorDetails implements apis.DetailedError. The returned slice must not
// be mutated by the caller.
func (e *Error) ErrorDetails() []apis.Detail { return e.Details }

// Key returns the taxonomy-wide key of the error's code.
func (e *Error) Key() code.Key { return code.KeyOf(e.Code) }

// WithOrigin returns a shallow copy of e with the given Origin set.
func (e *Error) WithOrigin(o origin.Origin) *Error {
	cp := *e
	cp.Origin = o
	return &cp
}

// WithHandle returns a shallow copy of e with the affected handle set.
func (e *Error) WithHandle(h uint64) *Error {
	cp := *e
	cp.Handle = h
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful to keep the code and context but rephrase for a different
// audience.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one more structured detail
// appended. The details slice is always copied to preserve immutability
// across shared error values.
func (e *Error) WithDetail(d apis.Detail) *Error {
	cp := *e
	ds := make([]apis.Detail, len(cp.Details), len(cp.Details)+1)
	copy(ds, cp.Details)
	cp.Details = append(ds, d)
	return &cp
}

// WithCause returns a shallow copy of e with the underlying cause attached.
// A nil err returns e unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
