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

// Package adapter converts concrete validation errors into the flat view
// types of vlayer.dev/verrors/apis for loggers, buses and custom sinks
// that must not depend on the taxonomy packages directly.
package adapter

import (
	"vlayer.dev/verrors"
	"vlayer.dev/verrors/apis"
)

// ToDescriptor converts a validation error together with its resolved
// dispatch decision into a portable Descriptor.
//
// The descriptor is intended for structured logging, tracing, or message
// bus propagation. It carries both the logical identity (domain, symbol,
// ordinal) and the resolved decision.
func ToDescriptor(e *verrors.Error, d apis.Decision) apis.Descriptor {
	if e == nil {
		return apis.Descriptor{}
	}
	desc := apis.Descriptor{
		Severity: d.Severity.String(),
		Action:   d.Action.String(),
		Message:  e.Message,
		Origin:   e.Origin.String(),
		Handle:   e.Handle,
	}
	if e.Code != nil {
		desc.Domain = e.Code.Domain().String()
		desc.Symbol = e.Code.Symbol()
		desc.Ordinal = e.Code.Ordinal()
	}
	return desc
}

// ToReport converts a validation error and its decision into the same
// snapshot shape callbacks receive from the report package, minus the
// per-dispatch fields (ID, trace IDs) that only a Reporter can assign.
// This function performs no redaction; it exposes exactly what the error
// instance contains.
func ToReport(e *verrors.Error, d apis.Decision) apis.Report {
	if e == nil {
		return apis.Report{}
	}
	rep := apis.Report{
		Severity: d.Severity,
		Action:   d.Action,
		Message:  e.Message,
		Origin:   e.Origin.String(),
		Handle:   e.Handle,
	}
	if e.Code != nil {
		rep.Domain = e.Code.Domain().String()
		rep.Symbol = e.Code.Symbol()
		rep.Ordinal = e.Code.Ordinal()
	}
	// If the error provides structured details, propagate them directly.
	if de, ok := any(e).(apis.DetailedError); ok {
		if ds := de.ErrorDetails(); len(ds) > 0 {
			rep.Details = ds
		}
	}
	return rep
}
