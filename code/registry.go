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
	"strings"
)

var (
	// ErrUnknownCode is returned when a code value is not a registered
	// member of its enumeration.
	ErrUnknownCode = errors.New("verrors: unknown code value")

	// ErrUnknownSymbol is returned when a symbol matches no registered code.
	ErrUnknownSymbol = errors.New("verrors: unknown code symbol")

	// ErrDomainMismatch is returned when a symbol resolves to a code from a
	// different domain than the target type.
	ErrDomainMismatch = errors.New("verrors: code domain mismatch")
)

// The registry indexes every registered code by Key and by symbol. It is
// built once from the four name tables and read-only afterwards.
var (
	byDomain map[Domain][]Code
	byKey    map[Key]Code
	bySymbol map[string]Code
)

func init() {
	byDomain = make(map[Domain][]Code, 4)
	register(DomainMemTrack, len(memTrackNames), func(i int32) Code { return MemTrack(i) })
	register(DomainDrawState, len(drawStateNames), func(i int32) Code { return DrawState(i) })
	register(DomainShaderCheck, len(shaderCheckNames), func(i int32) Code { return ShaderCheck(i) })
	register(DomainDevLimits, len(devLimitsNames), func(i int32) Code { return DevLimits(i) })

	total := 0
	for _, cs := range byDomain {
		total += len(cs)
	}
	byKey = make(map[Key]Code, total)
	bySymbol = make(map[string]Code, total)
	for _, cs := range byDomain {
		for _, c := range cs {
			k := KeyOf(c)
			if _, dup := byKey[k]; dup {
				panic("verrors: duplicate code key " + k.String())
			}
			s := c.Symbol()
			if _, dup := bySymbol[s]; dup {
				panic("verrors: duplicate code symbol " + s)
			}
			byKey[k] = c
			bySymbol[s] = c
		}
	}
}

// register fills the per-domain slice for ordinals 0..n-1. Ordinals must be
// contiguous from zero; a name table with a gap would produce an
// unregistered value here and trip the symbol check.
func register(d Domain, n int, mk func(int32) Code) {
	cs := make([]Code, 0, n)
	for i := int32(0); i < int32(n); i++ {
		c := mk(i)
		if strings.ContainsRune(c.Symbol(), '(') {
			panic("verrors: non-contiguous ordinals in domain " + d.String())
		}
		cs = append(cs, c)
	}
	byDomain[d] = cs
}

// Codes returns every registered code of d in ordinal order, starting with
// the domain's zero sentinel. The slice is a fresh copy. An invalid domain
// yields nil.
func Codes(d Domain) []Code {
	cs, ok := byDomain[d]
	if !ok {
		return nil
	}
	out := make([]Code, len(cs))
	copy(out, cs)
	return out
}

// Count returns the number of registered codes in d, sentinel included.
// An invalid domain yields zero.
func Count(d Domain) int {
	return len(byDomain[d])
}

// Lookup resolves a (domain, ordinal) key to its code. This is the stable
// numeric mapping consumers use when codes cross a process boundary in
// numeric form.
func Lookup(k Key) (Code, bool) {
	c, ok := byKey[k]
	return c, ok
}

// ParseSymbol resolves a domain-qualified symbol ("drawstate.object_in_use")
// to its code. Input is normalized the way symbols are built: trimmed,
// lowercased, dashes folded to underscores. This is the stable symbolic
// mapping for cross-boundary transmission.
func ParseSymbol(s string) (Code, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, "-", "_")
	if c, ok := bySymbol[s]; ok {
		return c, nil
	}
	return nil, ErrUnknownSymbol
}
