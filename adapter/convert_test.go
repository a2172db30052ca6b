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

package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vlayer.dev/verrors"
	"vlayer.dev/verrors/apis"
	"vlayer.dev/verrors/code"
	"vlayer.dev/verrors/origin"
)

func TestToDescriptor(t *testing.T) {
	e := verrors.E(code.DevLimitsCountMismatch, "count changed between calls",
		verrors.WithOriginOption(origin.MustParse("device.queue_family")),
		verrors.WithHandleOption(9),
	)
	d := apis.Decision{Severity: apis.SeverityError, Action: apis.ActionLog}

	desc := ToDescriptor(e, d)
	assert.Equal(t, "devlimits", desc.Domain)
	assert.Equal(t, "devlimits.count_mismatch", desc.Symbol)
	assert.Equal(t, code.DevLimitsCountMismatch.Ordinal(), desc.Ordinal)
	assert.Equal(t, "error", desc.Severity)
	assert.Equal(t, "log", desc.Action)
	assert.Equal(t, "count changed between calls", desc.Message)
	assert.Equal(t, "device.queue_family", desc.Origin)
	assert.Equal(t, uint64(9), desc.Handle)

	assert.Equal(t, apis.Descriptor{}, ToDescriptor(nil, d))
}

func TestToReport(t *testing.T) {
	e := verrors.E(code.MemTrackObjectNotBound, "image used without memory",
		verrors.WithDetailOption(apis.Detail{Type: "binding", Field: "image"}),
	)
	d := apis.Decision{Severity: apis.SeverityWarning, Action: apis.ActionLog}

	rep := ToReport(e, d)
	assert.Equal(t, "memtrack", rep.Domain)
	assert.Equal(t, "memtrack.object_not_bound", rep.Symbol)
	assert.Equal(t, apis.SeverityWarning, rep.Severity)
	assert.Equal(t, apis.ActionLog, rep.Action)
	assert.Len(t, rep.Details, 1)
	assert.Empty(t, rep.ID, "adapter conversions never assign dispatch IDs")

	assert.Equal(t, apis.Report{}, ToReport(nil, d))

	// codeless errors still convert, with an empty identity
	bare := ToReport(&verrors.Error{Message: "m"}, d)
	assert.Empty(t, bare.Symbol)
	assert.Equal(t, "m", bare.Message)
}
