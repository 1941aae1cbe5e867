package bridge

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ Bridge = Native{}

func TestNativeSquareRoot(t *testing.T) {
	b := NewNative()

	tests := []struct {
		name string
		x    float64
	}{
		{"two", 2.0},
		{"perfect square", 16.0},
		{"fraction", 0.25},
		{"large", 1e6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := b.SquareRoot(tt.x)
			assert.Less(t, math.Abs(v*v-tt.x), 0.001)
		})
	}
}

func TestNativeRootsOfLargeInputs(t *testing.T) {
	b := NewNative()

	tests := []struct {
		name string
		root func(float64) float64
		x    float64
		want float64
	}{
		{"sqrt 1e200", b.SquareRoot, 1e200, 1e100},
		{"sqrt 1e300", b.SquareRoot, 1e300, 1e150},
		{"sqrt max float", b.SquareRoot, math.MaxFloat64, math.Sqrt(math.MaxFloat64)},
		{"cbrt 1e100", b.CubeRoot, 1e100, math.Cbrt(1e100)},
		{"cbrt 1e300", b.CubeRoot, 1e300, 1e100},
		{"cbrt -1e300", b.CubeRoot, -1e300, -1e100},
		{"cbrt 1e30", b.CubeRoot, 1e30, 1e10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.want, tt.root(tt.x), 1e-12)
		})
	}
}

func TestNativeInfinity(t *testing.T) {
	b := NewNative()
	assert.True(t, math.IsInf(b.SquareRoot(math.Inf(1)), 1))
	assert.True(t, math.IsInf(b.CubeRoot(math.Inf(-1)), -1))
	assert.True(t, math.IsNaN(b.CubeRoot(math.NaN())))
}

func TestNativeSquareRootNegative(t *testing.T) {
	assert.True(t, math.IsNaN(NewNative().SquareRoot(-1)))
}

func TestNativeCubeRoot(t *testing.T) {
	b := NewNative()

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"twenty seven", 27.0, 3.0},
		{"negative", -27.0, -3.0},
		{"eight", 8.0, 2.0},
		{"minus two", -2.0, math.Cbrt(-2.0)},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := b.CubeRoot(tt.x)
			assert.Less(t, math.Abs(v*v*v-tt.x), 0.001)
			assert.InDelta(t, tt.want, v, 0.1)
		})
	}
}

func TestNativeCubeRootOfTwentySevenIsThree(t *testing.T) {
	assert.InDelta(t, 3.0, NewNative().CubeRoot(27.0), 0.001)
}

func TestNativeCurrentTimeConcurrent(t *testing.T) {
	b := NewNative()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prev := b.CurrentTime()
			for j := 0; j < 1000; j++ {
				now := b.CurrentTime()
				assert.GreaterOrEqual(t, now, prev)
				prev = now
			}
		}()
	}
	wg.Wait()
}

func TestNativeCurrentTimeNonDecreasing(t *testing.T) {
	b := NewNative()

	prev := b.CurrentTime()
	assert.GreaterOrEqual(t, prev, 0.0)
	for i := 0; i < 1000; i++ {
		now := b.CurrentTime()
		assert.GreaterOrEqual(t, now, prev)
		prev = now
	}
}
