// Package bridge exposes the numeric module that lives on the other side of
// the cgo boundary: a monotonic timer and two root functions.
package bridge

// Bridge is the set of functions the loop controller calls into. They hold
// no mutable state and are safe to call from any goroutine. None of them
// report errors; a failure inside the module shows up only as a meaningless
// return value.
type Bridge interface {
	// CurrentTime returns a non-decreasing timestamp in seconds.
	CurrentTime() float64
	// SquareRoot returns the principal square root of x. Negative x yields NaN.
	SquareRoot(x float64) float64
	// CubeRoot returns the real cube root of x, negative x included.
	CubeRoot(x float64) float64
}

// Funcs adapts plain functions to Bridge. A nil field returns 0.
type Funcs struct {
	Time func() float64
	Sqrt func(float64) float64
	Cbrt func(float64) float64
}

func (f Funcs) CurrentTime() float64 {
	if f.Time == nil {
		return 0
	}
	return f.Time()
}

func (f Funcs) SquareRoot(x float64) float64 {
	if f.Sqrt == nil {
		return 0
	}
	return f.Sqrt(x)
}

func (f Funcs) CubeRoot(x float64) float64 {
	if f.Cbrt == nil {
		return 0
	}
	return f.Cbrt(x)
}
