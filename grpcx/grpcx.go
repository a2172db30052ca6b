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

// Package grpcx projects validation errors onto gRPC status errors, for
// deployments that stream validation results out of process (a capture
// service, a remote validation daemon).
//
// The code's stable identity travels in a google.rpc.ErrorInfo detail:
// Reason carries the symbol in UPPER_SNAKE form, Metadata the structured
// fields needed to reconstruct the code on the client side.
package grpcx

import (
	"context"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"vlayer.dev/verrors"
	"vlayer.dev/verrors/code"
	"vlayer.dev/verrors/origin"
)

// ErrorInfoDomain is the value of google.rpc.ErrorInfo.Domain for every
// error this package emits.
const ErrorInfoDomain = "vlayer.dev"

// Metadata keys used inside the ErrorInfo detail.
const (
	metaSymbol  = "symbol"
	metaDomain  = "domain"
	metaOrdinal = "ordinal"
	metaOrigin  = "origin"
	metaHandle  = "handle"
)

// DomainCode maps a taxonomy domain onto the gRPC status code used for its
// violations. State-machine violations are failed preconditions; interface
// mismatches are invalid arguments; limit violations are out of range.
func DomainCode(d code.Domain) gcodes.Code {
	switch d {
	case code.DomainMemTrack, code.DomainDrawState:
		return gcodes.FailedPrecondition
	case code.DomainShaderCheck:
		return gcodes.InvalidArgument
	case code.DomainDevLimits:
		return gcodes.OutOfRange
	default:
		return gcodes.Internal
	}
}

// ToStatus converts a validation error into a gRPC status carrying a
// google.rpc.ErrorInfo detail. A nil error yields an OK status.
func ToStatus(e *verrors.Error) *gstatus.Status {
	if e == nil {
		return gstatus.New(gcodes.OK, "")
	}
	if e.Code == nil {
		return gstatus.New(gcodes.Internal, e.Message)
	}

	st := gstatus.New(DomainCode(e.Code.Domain()), e.Error())

	info := &errdetails.ErrorInfo{
		Reason: wireReason(e.Code),
		Domain: ErrorInfoDomain,
		Metadata: map[string]string{
			metaSymbol:  e.Code.Symbol(),
			metaDomain:  e.Code.Domain().String(),
			metaOrdinal: strconv.FormatInt(int64(e.Code.Ordinal()), 10),
		},
	}
	if e.Origin != "" {
		info.Metadata[metaOrigin] = e.Origin.String()
	}
	if e.Handle != 0 {
		info.Metadata[metaHandle] = strconv.FormatUint(e.Handle, 16)
	}

	if with, err := st.WithDetails(info); err == nil {
		return with
	}
	return st
}

// FromStatus reconstructs a validation error from a gRPC error previously
// produced by ToStatus. It returns false when err carries no recognizable
// ErrorInfo detail.
//
// The symbol is authoritative; the ordinal in the metadata is verified
// against the registered code and a mismatch rejects the detail, so a
// client and server disagreeing on the taxonomy fail loudly.
func FromStatus(err error) (*verrors.Error, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorInfoDomain {
			continue
		}
		sym := info.GetMetadata()[metaSymbol]
		c, perr := code.ParseSymbol(sym)
		if perr != nil {
			continue
		}
		if raw, ok := info.GetMetadata()[metaOrdinal]; ok {
			n, cerr := strconv.ParseInt(raw, 10, 32)
			if cerr != nil || int32(n) != c.Ordinal() {
				continue
			}
		}

		e := &verrors.Error{Code: c, Message: st.Message()}
		if o, oerr := origin.Parse(info.GetMetadata()[metaOrigin]); oerr == nil {
			e.Origin = o
		}
		if raw, ok := info.GetMetadata()[metaHandle]; ok {
			if h, herr := strconv.ParseUint(raw, 16, 64); herr == nil {
				e.Handle = h
			}
		}
		return e, true
	}
	return nil, false
}

// UnaryServerInterceptor returns a gRPC interceptor that converts
// *verrors.Error return values into status errors via ToStatus. Other
// errors pass through untouched.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		ve, ok := err.(*verrors.Error)
		if !ok {
			// Not ours — return as-is.
			return nil, err
		}
		return nil, ToStatus(ve).Err()
	}
}

// wireReason renders a code's symbol in the UPPER_SNAKE form google.rpc
// reasons conventionally use, e.g. "DRAWSTATE_NO_ACTIVE_RENDERPASS".
func wireReason(c code.Code) string {
	s := strings.ReplaceAll(c.Symbol(), ".", "_")
	return strings.ToUpper(s)
}
