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
	"errors"
	"strings"
	"testing"

	"vlayer.dev/verrors/apis"
	"vlayer.dev/verrors/code"
	"vlayer.dev/verrors/origin"
)

func mustOrigin(t *testing.T, s string) origin.Origin {
	t.Helper()
	o, err := origin.Parse(s)
	if err != nil {
		t.Fatalf("parse origin: %v", err)
	}
	return o
}

func TestError_Basics(t *testing.T) {
	e := E(code.DrawStateNoActiveRenderpass, "draw recorded outside a render pass",
		WithOriginOption(mustOrigin(t, "core.cmdbuffer.draw")),
		WithHandleOption(0xbeef),
		WithDetailOption(apis.Detail{Type: "binding", Field: "cmd_buffer"}),
	)

	if e.Code != code.DrawStateNoActiveRenderpass {
		t.Fatal("code mismatch")
	}
	if e.Origin == "" {
		t.Fatal("origin must be set")
	}
	if e.Handle != 0xbeef {
		t.Fatal("handle mismatch")
	}
	if len(e.Details) != 1 || e.Details[0].Type != "binding" {
		t.Fatal("detail missing")
	}

	s := e.Error()
	wantSubs := []string{"drawstate.no_active_renderpass", "core.cmdbuffer.draw", "draw recorded outside a render pass"}
	for _, sub := range wantSubs {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestError_NoOriginFormat(t *testing.T) {
	e := E(code.MemTrackMemoryLeak, "objects alive at destroy")
	if got, want := e.Error(), "memtrack.memory_leak: objects alive at destroy"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := E(code.ShaderCheckInputNotProduced, "unmatched input").
		WithDetail(apis.Detail{Field: "location_0"})
	e2 := e1.WithDetail(apis.Detail{Field: "location_1"})

	if len(e1.Details) != 1 || len(e2.Details) != 2 {
		t.Fatal("details size mismatch")
	}
	if e1.Details[0].Field != "location_0" {
		t.Fatal("original mutated")
	}

	e3 := e1.WithOrigin(mustOrigin(t, "pipeline.link"))
	if e1.Origin != "" || e3.Origin == "" {
		t.Fatal("WithOrigin must copy")
	}
	e4 := e1.WithMessage("rephrased")
	if e1.Message == "rephrased" || e4.Message != "rephrased" {
		t.Fatal("WithMessage must copy")
	}
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := E(code.MemTrackInternalError, "tracker state broken").WithCause(root)
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap failed")
	}
	// nil cause leaves the value untouched
	if e2 := e.WithCause(nil); e2 != e {
		t.Fatal("WithCause(nil) must be a no-op")
	}
}

func TestError_Key(t *testing.T) {
	e := E(code.DevLimitsMustQueryCount, "query count first")
	k := e.Key()
	if k.Domain != code.DomainDevLimits || k.Ordinal != code.DevLimitsMustQueryCount.Ordinal() {
		t.Fatalf("Key() = %v", k)
	}
	codeless := &Error{}
	if got := codeless.Key(); got != (code.Key{}) {
		t.Fatalf("Key() without code = %v, want zero", got)
	}
}

func TestError_NilAndUnknownFormatting(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatal("nil receiver must format as <nil>")
	}
	if got := (&Error{Message: "m"}).Error(); got != "unknown: m" {
		t.Fatalf("codeless error = %q", got)
	}
}

func TestError_ContractInterfaces(t *testing.T) {
	e := E(code.DrawStateVtxIndexOutOfBounds, "index 12 beyond bound buffer",
		WithOriginOption(mustOrigin(t, "core.cmdbuffer.draw")),
		WithHandleOption(7),
		WithDetailOption(apis.Detail{Reason: "out_of_range"}),
	)

	var ce apis.CodedError = e
	if ce.ErrorCode() != code.DrawStateVtxIndexOutOfBounds {
		t.Fatal("CodedError mismatch")
	}
	var oe apis.OriginatedError = e
	if oe.ErrorOrigin() != "core.cmdbuffer.draw" {
		t.Fatal("OriginatedError mismatch")
	}
	var he apis.HandledError = e
	if he.ErrorHandle() != 7 {
		t.Fatal("HandledError mismatch")
	}
	var de apis.DetailedError = e
	if len(de.ErrorDetails()) != 1 {
		t.Fatal("DetailedError mismatch")
	}
}
