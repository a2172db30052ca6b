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

package catalog

import (
	"strings"
	"testing"

	"vlayer.dev/verrors/code"
)

// Every registered code must have a default message, and every message
// table entry must belong to a registered code. The two directions together
// keep the catalog and the taxonomy from drifting apart.
func TestCatalog_CoversEveryCode(t *testing.T) {
	for _, d := range code.Domains() {
		for _, c := range code.Codes(d) {
			if Message(c) == "" {
				t.Errorf("no catalog message for %s", c.Symbol())
			}
		}
	}
}

func TestCatalog_NoOrphanedMessages(t *testing.T) {
	if got, want := len(memTrackMessages), code.Count(code.DomainMemTrack); got != want {
		t.Errorf("memtrack messages: %d entries, %d codes", got, want)
	}
	if got, want := len(drawStateMessages), code.Count(code.DomainDrawState); got != want {
		t.Errorf("drawstate messages: %d entries, %d codes", got, want)
	}
	if got, want := len(shaderCheckMessages), code.Count(code.DomainShaderCheck); got != want {
		t.Errorf("shadercheck messages: %d entries, %d codes", got, want)
	}
	if got, want := len(devLimitsMessages), code.Count(code.DomainDevLimits); got != want {
		t.Errorf("devlimits messages: %d entries, %d codes", got, want)
	}
}

func TestMessage_UnknownInputs(t *testing.T) {
	if Message(nil) != "" {
		t.Fatal("Message(nil) must be empty")
	}
	if Message(code.MemTrack(99)) != "" {
		t.Fatal("Message(unregistered) must be empty")
	}
}

func TestDescribe(t *testing.T) {
	d := Describe(code.DrawStateNoActiveRenderpass)
	if !strings.HasPrefix(d, "drawstate.no_active_renderpass: ") {
		t.Fatalf("Describe = %q", d)
	}
	if Describe(nil) != "" {
		t.Fatal("Describe(nil) must be empty")
	}
	// unregistered values fall back to the printable symbol alone
	if got := Describe(code.MemTrack(99)); got != "memtrack(99)" {
		t.Fatalf("Describe(unregistered) = %q", got)
	}
}

// Messages are one lowercase sentence fragment: no trailing period, no
// leading capital, so they compose into log lines and wire payloads.
func TestMessages_Style(t *testing.T) {
	for _, d := range code.Domains() {
		for _, c := range code.Codes(d) {
			m := Message(c)
			if m == "" {
				continue // covered by TestCatalog_CoversEveryCode
			}
			if strings.HasSuffix(m, ".") {
				t.Errorf("%s: message ends with a period: %q", c.Symbol(), m)
			}
			if m[0] >= 'A' && m[0] <= 'Z' {
				t.Errorf("%s: message starts uppercase: %q", c.Symbol(), m)
			}
		}
	}
}
