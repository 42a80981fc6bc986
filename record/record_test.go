// SPDX-License-Identifier: MIT

package record_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sectormap/analysis"
	"github.com/katalvlaran/sectormap/record"
	"github.com/stretchr/testify/assert"
)

func sampleRecords() []record.Record {
	return []record.Record{
		record.New(0, 512, analysis.PatternResult(0x00)),
		record.New(1, 512, analysis.PatternResult(0xff)),
		record.New(2, 512, analysis.Result{Randomness: 1, Flag: analysis.Random}),
		record.New(3, 512, analysis.Result{Randomness: 0.5, Flag: analysis.NotRandom}),
		record.New(4, 512, analysis.Result{Randomness: 0, Flag: analysis.RandomnessSuspiciouslyHigh}),
		record.New(5, 512, analysis.Result{Randomness: 0.9541015625, Flag: analysis.None}),
		record.New(6, 512, analysis.Result{Randomness: 0.123456789012345, Flag: analysis.None}),
	}
}

func TestNew_Offset(t *testing.T) {
	r := record.New(7, 4096, analysis.Result{})
	assert.Equal(t, int64(7), r.Number)
	assert.Equal(t, int64(7*4096), r.Offset)
}

func TestFields(t *testing.T) {
	recs := sampleRecords()
	assert.Equal(t, []string{"0", "0", "0.0", "1", "0"}, recs[0].Fields())
	assert.Equal(t, []string{"1", "512", "0.0", "1", "255"}, recs[1].Fields())
	assert.Equal(t, []string{"2", "1024", "1.0", "3", ""}, recs[2].Fields())
	assert.Equal(t, []string{"3", "1536", "0.5", "2", ""}, recs[3].Fields())
	assert.Equal(t, []string{"5", "2560", "0.9541015625", "0", ""}, recs[5].Fields())
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{0.5, "0.5"},
		{0.1, "0.1"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{math.Inf(1), "+Inf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, record.FormatFloat(tc.in), "%v", tc.in)
	}
}

func TestSampleLine(t *testing.T) {
	recs := sampleRecords()
	assert.Equal(t, "0 (0x0) - 0.0000, SINGLE_BYTE_PATTERN (pattern of 0x00)", recs[0].SampleLine())
	assert.Equal(t, "1 (0x200) - 0.0000, SINGLE_BYTE_PATTERN (pattern of 0xff)", recs[1].SampleLine())
	assert.Equal(t, "2 (0x400) - 1.0000, RANDOM", recs[2].SampleLine())
	assert.Equal(t, "4 (0x800) - 0.0000, RANDOMNESS_SUSPICIOUSLY_HIGH", recs[4].SampleLine())
	assert.Equal(t, "5 (0xa00) - 0.9541, NONE", recs[5].SampleLine())
}
