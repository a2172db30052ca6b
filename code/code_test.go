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

package code

import (
	"encoding"
	"errors"
	"testing"
)

func TestSentinels_AreZero(t *testing.T) {
	tests := []struct {
		name string
		c    Code
	}{
		{"memtrack", MemTrackNone},
		{"drawstate", DrawStateNone},
		{"shadercheck", ShaderCheckNone},
		{"devlimits", DevLimitsNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.c.Ordinal() != 0 {
				t.Fatalf("%s sentinel ordinal = %d, want 0", tt.name, tt.c.Ordinal())
			}
			if !tt.c.IsNone() {
				t.Fatalf("%s sentinel IsNone() = false", tt.name)
			}
		})
	}
	// and nothing else is a sentinel
	if MemTrackInvalidCmdBuffer.IsNone() || DrawStateNoActiveRenderpass.IsNone() {
		t.Fatal("non-sentinel reports IsNone")
	}
}

func TestSymbol_Form(t *testing.T) {
	tests := []struct {
		c    Code
		want string
	}{
		{MemTrackNone, "memtrack.none"},
		{MemTrackFreedMemRef, "memtrack.freed_mem_ref"},
		{DrawStateNoActiveRenderpass, "drawstate.no_active_renderpass"},
		{ShaderCheckOutputNotConsumed, "shadercheck.output_not_consumed"},
		{DevLimitsMustQueryCount, "devlimits.must_query_count"},
	}
	for _, tt := range tests {
		if got := tt.c.Symbol(); got != tt.want {
			t.Fatalf("Symbol() = %q, want %q", got, tt.want)
		}
	}
	// unregistered values render as domain(N), never as a stable symbol
	if got := MemTrack(99).Symbol(); got != "memtrack(99)" {
		t.Fatalf("unregistered Symbol() = %q, want %q", got, "memtrack(99)")
	}
}

func TestDomains(t *testing.T) {
	ds := Domains()
	if len(ds) != 4 {
		t.Fatalf("Domains() returned %d domains", len(ds))
	}
	for _, d := range ds {
		if !d.Valid() {
			t.Fatalf("domain %v not valid", d)
		}
	}
	if DomainUnknown.Valid() {
		t.Fatal("DomainUnknown must not be valid")
	}
	if got := Domain(99).String(); got != "unknown" {
		t.Fatalf("out-of-range Domain.String() = %q", got)
	}
}

func TestKeyOf(t *testing.T) {
	k := KeyOf(DrawStateNoActiveRenderpass)
	if k.Domain != DomainDrawState || k.Ordinal != DrawStateNoActiveRenderpass.Ordinal() {
		t.Fatalf("KeyOf = %v", k)
	}
	if KeyOf(nil) != (Key{}) {
		t.Fatal("KeyOf(nil) must be the zero key")
	}
	if got, want := k.String(), "drawstate/55"; got != want {
		t.Fatalf("Key.String() = %q, want %q", got, want)
	}
}

func TestMarshalText_RoundTrip(t *testing.T) {
	text, err := ShaderCheckOutputNotConsumed.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var back ShaderCheck
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if back != ShaderCheckOutputNotConsumed {
		t.Fatalf("round trip = %v, want %v", back, ShaderCheckOutputNotConsumed)
	}
}

func TestMarshalText_RejectsUnregistered(t *testing.T) {
	if _, err := DevLimits(42).MarshalText(); !errors.Is(err, ErrUnknownCode) {
		t.Fatalf("MarshalText on unregistered = %v, want ErrUnknownCode", err)
	}
}

func TestUnmarshalText_Errors(t *testing.T) {
	var c DrawState
	if err := c.UnmarshalText([]byte("drawstate.definitely_not_a_code")); !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("unknown symbol error = %v", err)
	}
	// a symbol from another domain must not silently coerce
	if err := c.UnmarshalText([]byte("memtrack.memory_leak")); !errors.Is(err, ErrDomainMismatch) {
		t.Fatalf("cross-domain error = %v, want ErrDomainMismatch", err)
	}
	// input is normalized like symbols are built
	if err := c.UnmarshalText([]byte("  DRAWSTATE.NO-ACTIVE-RENDERPASS  ")); err != nil {
		t.Fatalf("normalized input rejected: %v", err)
	}
	if c != DrawStateNoActiveRenderpass {
		t.Fatalf("UnmarshalText = %v", c)
	}
}

func TestCode_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = MemTrackNone
	var _ encoding.TextUnmarshaler = new(MemTrack)
	var _ encoding.TextMarshaler = DrawStateNone
	var _ encoding.TextUnmarshaler = new(DrawState)
	var _ encoding.TextMarshaler = ShaderCheckNone
	var _ encoding.TextUnmarshaler = new(ShaderCheck)
	var _ encoding.TextMarshaler = DevLimitsNone
	var _ encoding.TextUnmarshaler = new(DevLimits)
}
