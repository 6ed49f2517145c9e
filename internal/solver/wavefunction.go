package solver

import "github.com/san-kum/qwell/internal/basis"

// Wavefunction returns ψ_k(x), the k-th bound state (0-based) expanded in
// the basis.
func (r *Result) Wavefunction(k int, x float64) float64 {
	psi := 0.0
	for i, c := range r.Vectors[k] {
		psi += c * basis.Function(x, i+1, r.L)
	}
	return psi
}

// Sample evaluates ψ_k on n uniform points spanning [0, L].
func (r *Result) Sample(k, n int) (xs, psi []float64) {
	if n < 2 {
		n = 2
	}
	xs = make([]float64, n)
	psi = make([]float64, n)
	dx := r.L / float64(n-1)
	for i := range xs {
		xs[i] = float64(i) * dx
		psi[i] = r.Wavefunction(k, xs[i])
	}
	return xs, psi
}

// Density evaluates |ψ_k|² on n uniform points spanning [0, L].
func (r *Result) Density(k, n int) (xs, rho []float64) {
	xs, rho = r.Sample(k, n)
	for i, p := range rho {
		rho[i] = p * p
	}
	return xs, rho
}

// Norm returns the sum of squared coefficients of state k.
func (r *Result) Norm(k int) float64 {
	sum := 0.0
	for _, c := range r.Vectors[k] {
		sum += c * c
	}
	return sum
}

// Splitting returns E₁ − E₀ and false when fewer than two states are bound.
func (r *Result) Splitting() (float64, bool) {
	if len(r.Energies) < 2 {
		return 0, false
	}
	return r.Energies[1] - r.Energies[0], true
}
