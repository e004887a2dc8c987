/*
   Copyright 2025 The DIRPX Authors

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
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// genSegment returns a valid segment: [A-Z0-9]+
func genSegment(rng *rand.Rand, min, max int) string {
	n := min + rng.Intn(max-min+1)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 0 {
			b.WriteByte(byte('A' + rng.Intn(26)))
		} else {
			b.WriteByte(byte('0' + rng.Intn(10)))
		}
	}
	return b.String()
}

// buildTrie inserts N prefixes of fixed depth and returns codes that extend
// each prefix by two segments, so lookups exercise LPM.
func buildTrie(b *testing.B, n, depth, wildcardEveryK int) (*Trie[int], []string) {
	rng := rand.New(rand.NewSource(1))
	tr := New[int]()
	codes := make([]string, 0, n)

	for i := 0; i < n; i++ {
		segs := make([]string, depth)
		concrete := make([]string, depth)
		for j := range segs {
			concrete[j] = genSegment(rng, 3, 8)
			segs[j] = concrete[j]
			if wildcardEveryK > 0 && j > 0 && (j+1)%wildcardEveryK == 0 {
				segs[j] = "*"
			}
		}
		p := strings.Join(segs, "_")
		if err := tr.Insert(p, 100+i); err != nil {
			b.Fatalf("insert failed for %q: %v", p, err)
		}
		codes = append(codes, strings.Join(concrete, "_")+"_"+genSegment(rng, 3, 8)+"_"+genSegment(rng, 3, 8))
	}
	return tr, codes
}

func BenchmarkMatch(b *testing.B) {
	for _, tc := range []struct {
		n, depth, wildK int
	}{
		{100, 2, 0},
		{1000, 3, 0},
		{1000, 4, 2},
	} {
		b.Run(fmt.Sprintf("n=%d/depth=%d/wild=%d", tc.n, tc.depth, tc.wildK), func(b *testing.B) {
			tr, codes := buildTrie(b, tc.n, tc.depth, tc.wildK)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, ok := tr.Match(codes[i%len(codes)]); !ok {
					b.Fatalf("no match for %q", codes[i%len(codes)])
				}
			}
		})
	}
}
