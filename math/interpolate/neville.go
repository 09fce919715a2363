package interpolate

// Neville interpolates with Neville's algorithm. For a query x it fills a
// table of P(m, n)(x), the value at x of the polynomial through points m..n,
// from adjacent pairs outwards:
//
//	P(i, i+1) = ((x - x_i) y_{i+1} - (x - x_{i+1}) y_i) / (x_{i+1} - x_i)
//	P(m, n)   = ((x - x_m) P(m+1, n) - (x - x_n) P(m, n-1)) / (x_n - x_m)
//
// Every entry is a number tied to the query x, so the table has to be
// rebuilt for each query.
type Neville struct {
	pts PointSet
}

// NewNeville creates a Neville interpolator. The points may be in any order.
func NewNeville(pts PointSet) (*Neville, error) {
	pts = pts.clone()
	if err := pts.validate(false); err != nil {
		return nil, err
	}
	return &Neville{pts: pts}, nil
}

// Tableau holds P(m, n)(X) for every interval 0 <= m < n < Size().
type Tableau struct {
	X float64
	// widths[w-1][m] is P(m, m+w).
	widths [][]float64
}

func newTableau(x float64, size int) *Tableau {
	tab := &Tableau{X: x, widths: make([][]float64, size-1)}
	for w := 1; w < size; w++ {
		tab.widths[w-1] = make([]float64, size-w)
	}
	return tab
}

// Size returns the number of points the tableau was built from.
func (tab *Tableau) Size() int { return len(tab.widths) + 1 }

// At returns P(m, n)(X). It panics unless 0 <= m < n < Size().
func (tab *Tableau) At(m, n int) float64 { return tab.widths[n-m-1][m] }

// Result returns P(0, Size()-1)(X), the value of the polynomial through every
// point.
func (tab *Tableau) Result() float64 { return tab.At(0, tab.Size()-1) }

func (tab *Tableau) set(m, n int, val float64) { tab.widths[n-m-1][m] = val }

// Tableau computes the full table of interval polynomials at x.
func (nev *Neville) Tableau(x float64) *Tableau {
	pts := nev.pts
	size := len(pts)
	tab := newTableau(x, size)

	for i := 0; i+1 < size; i++ {
		p1, p2 := pts[i], pts[i+1]
		tab.set(i, i+1, ((x-p1.X)*p2.Y-(x-p2.X)*p1.Y)/(p2.X-p1.X))
	}

	for w := 2; w < size; w++ {
		for m := 0; m+w < size; m++ {
			n := m + w
			xm, xn := pts[m].X, pts[n].X
			tab.set(m, n, ((x-xm)*tab.At(m+1, n)-(x-xn)*tab.At(m, n-1))/(xn-xm))
		}
	}

	return tab
}

// Eval returns the value of the interpolating polynomial at x.
func (nev *Neville) Eval(x float64) (float64, error) {
	return nev.Tableau(x).Result(), nil
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array.
func (nev *Neville) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	return evalAll(nev.Eval, xs, out)
}
