package solver_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/qwell/internal/solver"
	"github.com/san-kum/qwell/internal/wells"
)

func doubleWell(vint float64) wells.Structure {
	return wells.Structure{
		Vext:     [2]float64{10, 10},
		Vint:     []float64{vint},
		Wells:    []float64{1, 1},
		Barriers: []float64{0.5},
	}
}

func expectSpectrumShape(res *solver.Result, limit float64) {
	Expect(res.Vectors).To(HaveLen(len(res.Energies)))
	for k, e := range res.Energies {
		Expect(e).To(BeNumerically("<", limit))
		if k > 0 {
			Expect(e).To(BeNumerically(">=", res.Energies[k-1]))
		}
		Expect(res.Vectors[k]).To(HaveLen(res.Basis))
		Expect(res.Norm(k)).To(BeNumerically("~", 1, 1e-9))
	}
}

var _ = Describe("Solve", func() {
	Context("with a single symmetric well", func() {
		var res *solver.Result

		BeforeEach(func() {
			var err error
			res, err = solver.Solve(wells.SingleWell(1, 10), 10)
			Expect(err).NotTo(HaveOccurred())
		})

		It("finds bound states inside (0, 10)", func() {
			Expect(res.Len()).To(BeNumerically(">", 0))
			Expect(res.Energies[0]).To(BeNumerically(">", 0))
			Expect(res.Energies[0]).To(BeNumerically("<", 10))
		})

		It("returns ascending energies and normalized rows", func() {
			expectSpectrumShape(res, 10)
		})

		It("places the ground state below the infinite-well bound of the inner well", func() {
			Expect(res.Energies[0]).To(BeNumerically("<", math.Pi*math.Pi))
		})

		It("reports the enclosing box", func() {
			Expect(res.L).To(BeNumerically("~", 3, 1e-12))
			Expect(res.H).To(BeNumerically("~", 1, 1e-12))
		})
	})

	Context("with a finite well resolved by a large basis", func() {
		// depth 10, width 1: the even ground state solves z·tan z = sqrt(z0² − z²)
		// with z0 = sqrt(10)/2, and E = 4z².
		It("converges to the analytic ground state", func() {
			z0 := math.Sqrt(10) / 2
			lo, hi := 0.0, math.Pi/2-1e-12
			for i := 0; i < 200; i++ {
				z := (lo + hi) / 2
				if z*math.Tan(z) < math.Sqrt(z0*z0-z*z) {
					lo = z
				} else {
					hi = z
				}
			}
			exact := 4 * lo * lo

			res, err := solver.Solve(wells.SingleWell(1, 10), 80)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Energies[0]).To(BeNumerically(">=", exact-1e-9))
			// the infinite box walls one width away shift it up slightly
			Expect(res.Energies[0]).To(BeNumerically("~", exact, 0.1))
		})
	})

	Context("with all potentials at zero", func() {
		It("finds no bound states", func() {
			s := doubleWell(0)
			s.Vext = [2]float64{0, 0}

			res, err := solver.Solve(s, 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Energies).To(BeEmpty())
			Expect(res.Vectors).To(BeEmpty())
		})
	})

	Context("with two identical wells", func() {
		It("splits the ground pair", func() {
			res, err := solver.Solve(doubleWell(5), 40)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Len()).To(BeNumerically(">=", 2))
			expectSpectrumShape(res, 10)

			split, ok := res.Splitting()
			Expect(ok).To(BeTrue())
			Expect(split).To(BeNumerically(">", 0))
			Expect(res.Energies[1]).To(BeNumerically("<", 10))
		})

		It("narrows the splitting as the barrier rises", func() {
			prev := math.Inf(1)
			for _, v := range []float64{3, 5, 7, 9} {
				res, err := solver.Solve(doubleWell(v), 40)
				Expect(err).NotTo(HaveOccurred())

				split, ok := res.Splitting()
				Expect(ok).To(BeTrue(), "barrier %g", v)
				Expect(split).To(BeNumerically("<", prev), "barrier %g", v)
				prev = split
			}
		})

		It("produces a symmetric ground state and an antisymmetric partner", func() {
			res, err := solver.Solve(doubleWell(5), 40)
			Expect(err).NotTo(HaveOccurred())

			mid := res.L / 2
			for _, d := range []float64{0.3, 0.8, 1.1} {
				Expect(math.Abs(res.Wavefunction(0, mid-d))).To(BeNumerically("~", math.Abs(res.Wavefunction(0, mid+d)), 1e-6))
				Expect(res.Wavefunction(1, mid-d)).To(BeNumerically("~", -res.Wavefunction(1, mid+d), 1e-6))
			}
		})
	})

	Context("with a one-function basis", func() {
		It("returns at most one eigenpair", func() {
			res, err := solver.Solve(doubleWell(5), 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Len()).To(BeNumerically("<=", 1))
			Expect(res.Vectors).To(HaveLen(res.Len()))
		})
	})

	Context("with invalid input", func() {
		It("rejects mismatched shapes", func() {
			s := doubleWell(5)
			s.Vint = nil
			_, err := solver.Solve(s, 10)
			Expect(err).To(MatchError(wells.ErrShapeMismatch))
		})

		It("rejects an empty basis", func() {
			_, err := solver.Solve(doubleWell(5), 0)
			Expect(err).To(MatchError(wells.ErrBasisSize))
		})

		It("rejects degenerate geometry", func() {
			_, err := solver.Solve(wells.SingleWell(0, 10), 10)
			Expect(err).To(MatchError(wells.ErrNonPositiveWidth))
		})
	})
})

var _ = Describe("Result", func() {
	It("samples a wavefunction that vanishes at the box edges", func() {
		res, err := solver.Solve(wells.SingleWell(1, 10), 20)
		Expect(err).NotTo(HaveOccurred())

		xs, psi := res.Sample(0, 61)
		Expect(xs).To(HaveLen(61))
		Expect(psi[0]).To(BeNumerically("~", 0, 1e-12))
		Expect(psi[60]).To(BeNumerically("~", 0, 1e-9))

		// rectangle rule of |ψ|² over the box recovers the coefficient norm
		_, rho := res.Density(0, 2001)
		dx := res.L / 2000
		sum := 0.0
		for _, p := range rho {
			sum += p * dx
		}
		Expect(sum).To(BeNumerically("~", 1, 1e-3))
	})

	It("reports no splitting with fewer than two states", func() {
		r := &solver.Result{Energies: []float64{1}}
		_, ok := r.Splitting()
		Expect(ok).To(BeFalse())
	})
})
