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

import "vlayer.dev/verrors/code"

// CodedError represents an error classified by the taxonomy.
//
// Adapters use the returned code to resolve dispatch policy and to build
// the stable wire forms. Implementations MUST return a registered,
// non-sentinel code for any error that describes an actual violation; a
// nil or sentinel code at a reporting boundary is handled as a
// caller-side defect, never silently passed through.
type CodedError interface {
	error

	// ErrorCode returns the taxonomy code of the violation.
	ErrorCode() code.Code
}

// OriginatedError represents an error that identifies the validation check
// that raised it.
//
// While the code answers "which violation is this?", the origin answers
// "which check detected it?". Origins are dot-separated identifiers
// validated by the origin package. An error without a meaningful origin may
// return the empty string; callers must handle that case.
type OriginatedError interface {
	error

	// ErrorOrigin returns the origin identifier, or "" if not provided.
	ErrorOrigin() string
}

// HandledError represents an error that carries the API handle the
// violation was detected on. Zero means "no handle" (e.g. a device-limits
// violation raised before any object exists).
type HandledError interface {
	error

	// ErrorHandle returns the raw handle of the affected object, if any.
	ErrorHandle() uint64
}

// DetailedError represents an error exposing zero or more structured
// details. Implementations SHOULD return a slice that is safe to iterate
// and will not be modified by the callee; nil means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}

// CausedError is a contract for error types defined outside this module
// that carry an underlying cause into the reporting boundary. Errors built
// with this module expose their cause through errors.Unwrap instead, so
// consumers should try Unwrap first and fall back to this interface.
// Implementations SHOULD return the direct, immediate cause, or nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this one, if any.
	Cause() error
}
