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
	"math/rand"
	"strings"
	"testing"
	"time"
)

// genValidSegment returns a valid segment: [a-z][a-z0-9_]*
func genValidSegment(rng *rand.Rand, min, max int) string {
	n := min + rng.Intn(max-min+1)
	if n < 1 {
		n = 1
	}
	var b strings.Builder
	// first char: [a-z]
	b.WriteByte(byte('a' + rng.Intn(26)))
	// rest: [a-z0-9_]
	for i := 1; i < n; i++ {
		switch rng.Intn(3) {
		case 0:
			b.WriteByte(byte('a' + rng.Intn(26)))
		case 1:
			b.WriteByte(byte('0' + rng.Intn(10)))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// makePrefix builds a dot-separated prefix with optional single-segment
// wildcards ("*") every k segments (if k>0). depth = number of segments.
func makePrefix(rng *rand.Rand, depth int, wildcardEveryK int) string {
	segs := make([]string, depth)
	for i := 0; i < depth; i++ {
		if wildcardEveryK > 0 && (i+1)%wildcardEveryK == 0 {
			segs[i] = "*"
			continue
		}
		segs[i] = genValidSegment(rng, 3, 8)
	}
	return strings.Join(segs, ".")
}

// buildTrie inserts N prefixes of fixed depth into the trie and also returns
// a matching query set (origins) that are likely to hit via LPM.
func buildTrie(b *testing.B, N, depth, wildcardEveryK int) (*Trie[int], []string) {
	rng := rand.New(rand.NewSource(1)) // deterministic
	tr := New[int]()
	origins := make([]string, 0, N)

	for i := 0; i < N; i++ {
		p := makePrefix(rng, depth, wildcardEveryK)
		if err := tr.Insert(p, 100+i); err != nil {
			b.Fatalf("insert failed for %q: %v", p, err)
		}

		// build an origin that extends the prefix by +2 segments to test LPM
		ext := p
		if wildcardEveryK > 0 {
			// replace wildcards with some segment to form a valid origin
			parts := strings.Split(ext, ".")
			for j := range parts {
				if parts[j] == "*" {
					parts[j] = genValidSegment(rng, 3, 8)
				}
			}
			ext = strings.Join(parts, ".")
		}
		ext = ext + "." + genValidSegment(rng, 3, 8) + "." + genValidSegment(rng, 3, 8)
		origins = append(origins, ext)
	}

	return tr, origins
}

// ------- INSERT benchmarks -------

func BenchmarkTrieInsert_N16_Depth4_NoWildcard(b *testing.B)   { benchInsert(b, 16, 4, 0) }
func BenchmarkTrieInsert_N128_Depth4_NoWildcard(b *testing.B)  { benchInsert(b, 128, 4, 0) }
func BenchmarkTrieInsert_N1024_Depth4_NoWildcard(b *testing.B) { benchInsert(b, 1024, 4, 0) }

func BenchmarkTrieInsert_N1024_Depth4_WildcardEvery3(b *testing.B) { benchInsert(b, 1024, 4, 3) }

func benchInsert(b *testing.B, N, depth, wildcardEveryK int) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	prefixes := make([]string, N)
	for i := 0; i < N; i++ {
		prefixes[i] = makePrefix(rng, depth, wildcardEveryK)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := New[int]()
		for j := 0; j < N; j++ {
			if err := tr.Insert(prefixes[j], j); err != nil {
				b.Fatalf("insert failed: %v", err)
			}
		}
	}
}

// ------- MATCH benchmarks (sequential) -------

func BenchmarkTrieMatch_N16_Depth4_NoWildcard(b *testing.B)   { benchMatch(b, 16, 4, 0) }
func BenchmarkTrieMatch_N128_Depth4_NoWildcard(b *testing.B)  { benchMatch(b, 128, 4, 0) }
func BenchmarkTrieMatch_N1024_Depth4_NoWildcard(b *testing.B) { benchMatch(b, 1024, 4, 0) }

func BenchmarkTrieMatch_N1024_Depth4_WildcardEvery3(b *testing.B) { benchMatch(b, 1024, 4, 3) }

func benchMatch(b *testing.B, N, depth, wildcardEveryK int) {
	tr, origins := buildTrie(b, N, depth, wildcardEveryK)

	// add a few negative queries (no match)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < N/8+1; i++ {
		origins = append(origins, makePrefix(rng, depth, 0)+"."+genValidSegment(rng, 3, 8))
	}

	b.ReportAllocs()
	b.ResetTimer()
	idx := 0
	var sum int // prevent DCE
	for i := 0; i < b.N; i++ {
		o := origins[idx]
		if v, ok := tr.Match(o); ok {
			sum += v
		}
		idx++
		if idx == len(origins) {
			idx = 0
		}
	}
	// use sum
	if sum == 42 {
		b.Log("keep")
	}
}

// ------- MATCH benchmarks (parallel) -------

func BenchmarkTrieMatchParallel_N1024_Depth4_NoWildcard(b *testing.B) {
	tr, origins := buildTrie(b, 1024, 4, 0)
	benchMatchParallel(b, tr, origins)
}

func benchMatchParallel(b *testing.B, tr *Trie[int], origins []string) {
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		rng := rand.New(rand.NewSource(int64(rand.Int())))
		for pb.Next() {
			o := origins[rng.Intn(len(origins))]
			_, _ = tr.Match(o)
		}
	})
}
