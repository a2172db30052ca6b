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

package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated keys (origins).
// Each node holds one segment; "*" matches exactly one segment. Lookups are
// longest-prefix-match on segment boundaries, so a more specific rule wins
// over a shorter one.
//
// A Trie is built once and read-only afterwards; concurrent lookups need no
// synchronization.
type Trie[T any] struct {
	// children maps the next segment (or "*") to its subtree.
	children map[string]*Trie[T]
	// hasVal marks that a rule ends at this node.
	hasVal bool
	val    T
	// pattern is the rule as inserted (may contain "*"), kept for Explain
	// so lookups never build strings.
	pattern string
}

// ErrInvalidPrefix is returned for a prefix that is empty, has empty or
// malformed segments, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a dot-separated prefix rule and associates it with val.
//
// Examples:
//
//	"wsi.swapchain"
//	"core.cmdbuffer.begin"
//	"core.*.begin"
//
// A prefix made only of "*" segments is rejected: it would catch everything.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	if prefix == "" {
		return ErrInvalidPrefix
	}
	allWild := true
	for _, seg := range segs {
		if !validSegment(seg) {
			return ErrInvalidPrefix
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, seg := range segs {
		child, ok := cur.children[seg]
		if !ok {
			child = New[T]()
			cur.children[seg] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	if cur.pattern == "" {
		cur.pattern = prefix
	}
	return nil
}

// Match returns the value of the deepest rule that prefixes key.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match plus the stored rule pattern, for Explain.
//
// The key is walked segment by segment; both the exact branch and the "*"
// branch are explored, and the deepest rule found wins. Segments must match
// [a-z][a-z0-9_]*; walking stops at the first malformed segment, keeping
// whatever rule matched up to that point.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	bestDepth := -1
	var bestVal T
	var bestPat string

	var walk func(n *Trie[T], off, depth int)
	walk = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if off >= len(key) {
			return
		}
		// scan the next segment [off:i) without allocating
		i := off
		if c := key[i]; c < 'a' || c > 'z' {
			return
		}
		i++
		for i < len(key) {
			c := key[i]
			if c == '.' {
				break
			}
			if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_') {
				return
			}
			i++
		}
		seg := key[off:i]
		nextOff := i
		if nextOff < len(key) && key[nextOff] == '.' {
			nextOff++
		}

		if next, ok := n.children[seg]; ok {
			walk(next, nextOff, depth+1)
		}
		if next, ok := n.children["*"]; ok {
			walk(next, nextOff, depth+1)
		}
	}

	walk(t, 0, 0)
	if bestDepth < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// validSegment reports whether seg can be a trie segment: "*" or
// [a-z][a-z0-9_]*. Empty segments are invalid.
func validSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
