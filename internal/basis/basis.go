// Package basis evaluates the eigenfunctions of an infinite square well of
// width L on [0, L] and their overlap integrals in closed form.
//
// Basis indices are 1-based: n = 1 is the ground state.
package basis

import "math"

// Function returns sqrt(2/L)·sin(nπx/L), the normalized n-th eigenfunction
// of an infinite well of width L. L must be positive.
func Function(x float64, n int, l float64) float64 {
	return math.Sqrt(2/l) * math.Sin(x*float64(n)*math.Pi/l)
}

// FreeEnergy returns n²π²/L², the n-th level of the infinite well in units
// where ħ²/2m = 1.
func FreeEnergy(n int, l float64) float64 {
	k := float64(n) * math.Pi / l
	return k * k
}

// Overlap returns the integral over [a, b] of (2/L)·sin(nπx/L)·sin(mπx/L).
// It is symmetric in n and m. Swapping a and b negates the result.
func Overlap(n, m int, a, b, l float64) float64 {
	alpha := float64(n) * math.Pi / l
	beta := float64(m) * math.Pi / l
	sum := alpha + beta

	var f func(x float64) float64
	if n != m {
		diff := alpha - beta
		f = func(x float64) float64 {
			return 0.5 * (math.Sin(diff*x)/diff - math.Sin(sum*x)/sum)
		}
	} else {
		f = func(x float64) float64 {
			return 0.5 * (x - math.Sin(sum*x)/sum)
		}
	}
	return 2 / l * (f(b) - f(a))
}
