// SPDX-License-Identifier: MIT

package analysis_test

import (
	"testing"

	"github.com/katalvlaran/sectormap/analysis"
)

// BenchmarkCalc measures one classification of a 4 KiB sector per method.
func BenchmarkCalc(b *testing.B) {
	const size = 4096
	buf := pseudoRandom(size, 99)
	for _, m := range analysis.Methods() {
		c, err := analysis.New(m, size, analysis.DefaultOptions())
		if err != nil {
			b.Fatal(err)
		}
		b.Run(m.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = c.Calc(buf)
			}
		})
	}
}

// BenchmarkSingleByte measures the short-circuit path on a zeroed sector.
func BenchmarkSingleByte(b *testing.B) {
	c, _ := analysis.New(analysis.MethodChiSquare4, 4096, analysis.DefaultOptions())
	buf := make([]byte, 4096)
	b.SetBytes(4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Calc(buf)
	}
}
