package buffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Push(t *testing.T) {

	l := 1001

	type test struct {
		transform func(i int) float64
		avg       float64
		count     int
		sum       float64
		min       float64
		max       float64
		stDev     float64
	}

	tests := map[string]test{
		"monotonically-increasing-+": {
			transform: func(i int) float64 {
				return float64(i)
			},
			avg:   float64(l / 2),
			count: l,
			sum:   float64(l) * 500,
			min:   0,
			max:   float64(l - 1),
			stDev: 289,
		},
		"monotonically-increasing-0": {
			transform: func(i int) float64 {
				return float64(-1*l/2) + float64(i)
			},
			avg:   0,
			count: l,
			sum:   0,
			min:   -500,
			max:   500,
			stDev: 289,
		},
		"monotonically-decreasing-+": {
			transform: func(i int) float64 {
				return float64(l) - float64(i)
			},
			avg:   float64((l + 1) / 2),
			count: l,
			sum:   float64(l) * 501,
			min:   1,
			max:   float64(l),
			stDev: 289,
		},
		"constant": {
			transform: func(i int) float64 {
				return 42
			},
			avg:   42,
			count: l,
			sum:   42 * float64(l),
			min:   42,
			max:   42,
			stDev: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := NewStats()
			for i := 0; i < l; i++ {
				stats.Push(tt.transform(i))
			}
			assert.Equal(t, tt.count, stats.Count())
			assert.InDelta(t, tt.avg, stats.Avg(), 1e-6)
			assert.InDelta(t, tt.sum, stats.Sum(), 1e-6)
			assert.Equal(t, tt.min, stats.Min())
			assert.Equal(t, tt.max, stats.Max())
			assert.Equal(t, tt.stDev, math.Round(stats.StDev()))
		})
	}
}

func TestStats_Last(t *testing.T) {
	stats := NewStats()
	stats.Push(3)
	stats.Push(-7)
	assert.Equal(t, -7.0, stats.Last())
	assert.Equal(t, -7.0, stats.Min())
	assert.Equal(t, 3.0, stats.Max())
}
