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
	"errors"
	"testing"
)

func TestCount_PerDomain(t *testing.T) {
	tests := []struct {
		d    Domain
		want int
	}{
		{DomainMemTrack, 17},
		{DomainDrawState, 98},
		{DomainShaderCheck, 19},
		{DomainDevLimits, 8},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if got := Count(tt.d); got != tt.want {
				t.Fatalf("Count(%v) = %d, want %d", tt.d, got, tt.want)
			}
			if got := len(Codes(tt.d)); got != tt.want {
				t.Fatalf("len(Codes(%v)) = %d, want %d", tt.d, got, tt.want)
			}
		})
	}
	if Count(DomainUnknown) != 0 || Codes(DomainUnknown) != nil {
		t.Fatal("unknown domain must have no codes")
	}
}

func TestCodes_OrdinalOrderAndIsolation(t *testing.T) {
	for _, d := range Domains() {
		cs := Codes(d)
		for i, c := range cs {
			if c.Ordinal() != int32(i) {
				t.Fatalf("%v: Codes()[%d].Ordinal() = %d", d, i, c.Ordinal())
			}
			if c.Domain() != d {
				t.Fatalf("%v: code %v reports domain %v", d, c, c.Domain())
			}
		}
		if !cs[0].IsNone() {
			t.Fatalf("%v: first code is not the sentinel", d)
		}
		// the returned slice is a copy; mutating it must not corrupt the registry
		cs[0] = nil
		if fresh := Codes(d); fresh[0] == nil {
			t.Fatalf("%v: Codes() exposed internal state", d)
		}
	}
}

func TestKeys_UniqueAcrossTaxonomy(t *testing.T) {
	seenKey := make(map[Key]Code)
	seenSym := make(map[string]Code)
	total := 0
	for _, d := range Domains() {
		for _, c := range Codes(d) {
			k := KeyOf(c)
			if prev, dup := seenKey[k]; dup {
				t.Fatalf("key %v shared by %v and %v", k, prev, c)
			}
			s := c.Symbol()
			if prev, dup := seenSym[s]; dup {
				t.Fatalf("symbol %q shared by %v and %v", s, prev, c)
			}
			seenKey[k] = c
			seenSym[s] = c
			total++
		}
	}
	if total != 17+98+19+8 {
		t.Fatalf("taxonomy has %d codes", total)
	}
}

func TestLookup(t *testing.T) {
	for _, d := range Domains() {
		for _, c := range Codes(d) {
			got, ok := Lookup(KeyOf(c))
			if !ok || got != c {
				t.Fatalf("Lookup(%v) = %v, %v", KeyOf(c), got, ok)
			}
		}
	}
	if _, ok := Lookup(Key{Domain: DomainMemTrack, Ordinal: 999}); ok {
		t.Fatal("Lookup must miss out-of-range ordinals")
	}
	if _, ok := Lookup(Key{}); ok {
		t.Fatal("Lookup must miss the zero key")
	}
}

func TestParseSymbol(t *testing.T) {
	// every symbol round-trips
	for _, d := range Domains() {
		for _, c := range Codes(d) {
			got, err := ParseSymbol(c.Symbol())
			if err != nil {
				t.Fatalf("ParseSymbol(%q): %v", c.Symbol(), err)
			}
			if got != c {
				t.Fatalf("ParseSymbol(%q) = %v, want %v", c.Symbol(), got, c)
			}
		}
	}

	// input is normalized: trimmed, lowercased, dashes folded
	got, err := ParseSymbol("  DrawState.Object-In-Use  ")
	if err != nil {
		t.Fatalf("normalized ParseSymbol: %v", err)
	}
	if got.Symbol() != "drawstate.object_in_use" {
		t.Fatalf("ParseSymbol normalization = %q", got.Symbol())
	}

	// unknown symbols fail with the sentinel error
	if _, err := ParseSymbol("drawstate.not_a_thing"); !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("ParseSymbol(unknown) = %v, want ErrUnknownSymbol", err)
	}
	if _, err := ParseSymbol(""); !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("ParseSymbol(empty) = %v, want ErrUnknownSymbol", err)
	}
}
