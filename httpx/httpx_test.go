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

package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vlayer.dev/verrors"
	"vlayer.dev/verrors/apis"
	"vlayer.dev/verrors/code"
	"vlayer.dev/verrors/dispatch"
	"vlayer.dev/verrors/origin"
)

func TestDomainStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, DomainStatus(code.DomainMemTrack))
	assert.Equal(t, http.StatusConflict, DomainStatus(code.DomainDrawState))
	assert.Equal(t, http.StatusBadRequest, DomainStatus(code.DomainShaderCheck))
	assert.Equal(t, http.StatusBadRequest, DomainStatus(code.DomainDevLimits))
	assert.Equal(t, http.StatusInternalServerError, DomainStatus(code.DomainUnknown))
}

func TestWrite_NilErrorWritesNothing(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, nil, Meta{})
	assert.Equal(t, http.StatusOK, rec.Code) // untouched recorder default
	assert.Empty(t, rec.Body.String())
}

func TestWrite_StatusAndBody(t *testing.T) {
	rec := httptest.NewRecorder()
	e := verrors.E(code.DrawStateNoActiveRenderpass, "draw outside render pass",
		verrors.WithOriginOption(origin.MustParse("core.cmdbuffer.draw")),
	)
	Writer{}.Write(rec, e, Meta{})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	// canonical google.rpc.Status JSON: code, message, details
	var body struct {
		Code    int32  `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Type     string            `json:"@type"`
			Reason   string            `json:"reason"`
			Domain   string            `json:"domain"`
			Metadata map[string]string `json:"metadata"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "drawstate.no_active_renderpass")
	require.Len(t, body.Details, 1)
	assert.Contains(t, body.Details[0].Type, "google.rpc.ErrorInfo")
	assert.Equal(t, "DRAWSTATE_NO_ACTIVE_RENDERPASS", body.Details[0].Reason)
	assert.Equal(t, "vlayer.dev", body.Details[0].Domain)
	assert.Equal(t, "drawstate.no_active_renderpass", body.Details[0].Metadata["symbol"])
}

func TestWrite_MetaHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	e := verrors.E(code.ShaderCheckInputNotProduced, "unmatched input")
	Writer{}.Write(rec, e, Meta{
		Correlation:       "req-17",
		TraceID:           "0102030405060708090a0b0c0d0e0f10",
		SpanID:            "0a0b0c0d0e0f1011",
		RetryAfterSeconds: 3,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "req-17", rec.Header().Get("X-Correlation-Id"))
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", rec.Header().Get("X-Trace-Id"))
	assert.Equal(t, "0a0b0c0d0e0f1011", rec.Header().Get("X-Span-Id"))
	assert.Equal(t, "3", rec.Header().Get("Retry-After"))
}

func TestWrite_PolicyAnnotations(t *testing.T) {
	p, err := dispatch.New(
		dispatch.WithSeverityOverride(code.MemTrackMemoryLeak, apis.SeverityInfo),
		dispatch.WithActionOverride(code.MemTrackMemoryLeak, apis.ActionIgnore),
	)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	Writer{Policy: p}.Write(rec, verrors.E(code.MemTrackMemoryLeak, "objects alive"), Meta{})

	assert.Equal(t, "info", rec.Header().Get("X-Validation-Severity"))
	assert.Equal(t, "ignore", rec.Header().Get("X-Validation-Action"))
}

func TestWrite_CodelessError(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, &verrors.Error{Message: "broken"}, Meta{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
