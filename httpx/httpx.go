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

// Package httpx renders validation errors as HTTP responses for tooling
// that fronts the validation layer with a REST surface (capture browsers,
// replay dashboards).
//
// The body is a google.rpc.Status in its canonical JSON form, carrying the
// same ErrorInfo detail the gRPC boundary emits, so both transports expose
// one wire identity per code.
package httpx

import (
	"net/http"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"

	"vlayer.dev/verrors"
	"vlayer.dev/verrors/apis"
	"vlayer.dev/verrors/code"
	"vlayer.dev/verrors/grpcx"
)

// Meta carries extra context the HTTP layer adds on top of the error. All
// fields are optional and typically come from request context, headers, or
// rate-limiter output.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
}

// DomainStatus maps a taxonomy domain onto the HTTP status used for its
// violations, mirroring the gRPC projection: state-machine violations are
// conflicts with recorded state, interface and limit violations are bad
// requests.
func DomainStatus(d code.Domain) int {
	switch d {
	case code.DomainMemTrack, code.DomainDrawState:
		return http.StatusConflict
	case code.DomainShaderCheck, code.DomainDevLimits:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Writer turns a validation error into an HTTP response. The optional
// Policy annotates the response with the resolved severity and action.
type Writer struct {
	Policy apis.Policy
}

// Write resolves the HTTP status for err and writes a google.rpc.Status
// JSON body. A nil error writes nothing.
//
// No redaction is performed here: whatever is present in the error and
// Meta is exposed as-is. Higher-level handlers should apply policies if
// needed.
func (w Writer) Write(rw http.ResponseWriter, err *verrors.Error, meta Meta) {
	if err == nil {
		return
	}

	status := http.StatusInternalServerError
	if err.Code != nil {
		status = DomainStatus(err.Code.Domain())
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.Correlation != "" {
		rw.Header().Set("X-Correlation-Id", meta.Correlation)
	}
	if meta.TraceID != "" {
		rw.Header().Set("X-Trace-Id", meta.TraceID)
	}
	if meta.SpanID != "" {
		rw.Header().Set("X-Span-Id", meta.SpanID)
	}
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	if w.Policy != nil && err.Code != nil {
		d := w.Policy.Decide(code.KeyOf(err.Code), err.Origin)
		rw.Header().Set("X-Validation-Severity", d.Severity.String())
		rw.Header().Set("X-Validation-Action", d.Action.String())
	}
	rw.WriteHeader(status)

	// Reuse the gRPC projection so both transports agree on the wire
	// identity, then render it as canonical google.rpc.Status JSON.
	// protojson is required for correct Any packing and json_name output.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(grpcx.ToStatus(err).Proto())
	_, _ = rw.Write(b)
}
