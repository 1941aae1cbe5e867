package bridge

/*
#cgo LDFLAGS: -lm
#include <math.h>
#include <time.h>

#include <float.h>

#define FFI_TOLERANCE 0.001
#define FFI_MAX_STEPS 10000

static double ffi_offset;

static double ffi_clock(void) {
	struct timespec ts;
	clock_gettime(CLOCK_MONOTONIC, &ts);
	return (double)ts.tv_sec + (double)ts.tv_nsec / 1e9;
}

// Called once from the package init, before any goroutine can reach
// ffi_get_time; the offset is read-only afterwards.
static void ffi_timer_init(void) {
	ffi_offset = ffi_clock();
}

static double ffi_get_time(void) {
	return ffi_clock() - ffi_offset;
}

// ffi_settled reports whether an iteration has stopped moving: the step is
// within one ulp of the guess.
static int ffi_settled(double prev, double next) {
	return next == prev || fabs(next - prev) <= DBL_EPSILON * fabs(next);
}

static double ffi_sqrt(double x) {
	double guess = 1.0, next;
	int i;
	if (x < 0.0 || isnan(x)) {
		return NAN;
	}
	if (isinf(x)) {
		return x;
	}
	for (i = 0; i < FFI_MAX_STEPS; i++) {
		if (fabs(guess * guess - x) < FFI_TOLERANCE) {
			break;
		}
		next = (guess + x / guess) / 2.0;
		if (ffi_settled(guess, next)) {
			guess = next;
			break;
		}
		guess = next;
	}
	return guess;
}

static double ffi_cbrt(double x) {
	double y = 1.0, next;
	int i;
	if (isnan(x) || isinf(x)) {
		return x;
	}
	for (i = 0; i < FFI_MAX_STEPS; i++) {
		if (fabs(y * y * y - x) < FFI_TOLERANCE) {
			break;
		}
		if (y == 0.0) {
			y = FFI_TOLERANCE;
		}
		next = (x / (y * y) + 2.0 * y) / 3.0;
		if (ffi_settled(y, next)) {
			y = next;
			break;
		}
		y = next;
	}
	return y;
}
*/
import "C"

func init() {
	C.ffi_timer_init()
}

// Native calls the C implementation of the bridge.
type Native struct{}

// NewNative returns the cgo-backed bridge.
func NewNative() Native {
	return Native{}
}

// CurrentTime returns seconds elapsed since the package was initialized.
func (Native) CurrentTime() float64 {
	return float64(C.ffi_get_time())
}

// SquareRoot runs Heron's iteration from a guess of 1.0 until the square is
// within 0.001 of x or the guess stops changing.
func (Native) SquareRoot(x float64) float64 {
	return float64(C.ffi_sqrt(C.double(x)))
}

// CubeRoot runs Newton's iteration from 1.0 until the cube is within 0.001 of
// x or the guess stops changing.
func (Native) CubeRoot(x float64) float64 {
	return float64(C.ffi_cbrt(C.double(x)))
}
