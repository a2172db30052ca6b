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

package verrors

import (
	"vlayer.dev/verrors/apis"
	"vlayer.dev/verrors/origin"
)

// Option is a functional option for constructing or transforming an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithOriginOption sets the raising check on construction.
// Intended to be used with E(...).
func WithOriginOption(o origin.Origin) Option {
	return func(e *Error) *Error {
		return e.WithOrigin(o)
	}
}

// WithHandleOption sets the affected object handle on construction.
// Intended to be used with E(...).
func WithHandleOption(h uint64) Option {
	return func(e *Error) *Error {
		return e.WithHandle(h)
	}
}

// WithDetailOption appends one structured detail on construction.
// Intended to be used with E(...).
func WithDetailOption(d apis.Detail) Option {
	return func(e *Error) *Error {
		return e.WithDetail(d)
	}
}

// WithCauseOption attaches a cause on construction.
// Intended to be used with E(...).
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}
