/*mat contains routines for executing operations on small dense matrices.

Two inversion routines are provided. Invert runs Gauss-Jordan elimination with
pivots taken in diagonal order and no row swaps, so its output is fully
determined by the input layout. LU runs a partially pivoted decomposition
which is better behaved on poorly conditioned input and can be reused across
many right-hand sides.

Pretty much everything only works on square matrices because that's all the
interpolators need.
*/
package mat

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSingular is returned when a zero pivot shows up during elimination.
	ErrSingular = errors.New("mat: matrix is singular")
	// ErrNonSquare is returned by routines that need a square matrix.
	ErrNonSquare = errors.New("mat: matrix is not square")
	// ErrDimensionMismatch is returned when operand sizes are incompatible.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")
)

// Matrix represents a row-major matrix of float64 values.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// LUFactors contains data fields neccessary for a number of matrix operations.
// Exporting this type allows calling routines to better manage their memory
// consumption and to prevent recomputing the same decomposition many times.
type LUFactors struct {
	lu Matrix
	// perm[i] is the row of the original matrix stored at row i of lu.
	perm []int
	d    float64
}

// NewMatrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(make([]float64, n*n), n, n)
	for i := 0; i < n; i++ {
		m.Vals[i*n+i] = 1
	}
	return m
}

// At returns the element in row i and column j.
func (m *Matrix) At(i, j int) float64 { return m.Vals[i*m.Width+j] }

// Copy returns a deep copy of m.
func (m *Matrix) Copy() *Matrix {
	vals := make([]float64, len(m.Vals))
	copy(vals, m.Vals)
	return NewMatrix(vals, m.Width, m.Height)
}

// Mult multiplies two matrices together.
func (m1 *Matrix) Mult(m2 *Matrix) (*Matrix, error) {
	h, w := m1.Height, m2.Width
	out := NewMatrix(make([]float64, h*w), w, h)
	return m1.MultAt(m2, out)
}

// MultAt multiplies two matrices together and writes the result to the
// specified matrix.
func (m1 *Matrix) MultAt(m2, out *Matrix) (*Matrix, error) {
	if m1.Width != m2.Height {
		return nil, fmt.Errorf(
			"mat: cannot multiply %dx%d by %dx%d: %w",
			m1.Height, m1.Width, m2.Height, m2.Width, ErrDimensionMismatch,
		)
	} else if out.Height != m1.Height || out.Width != m2.Width {
		return nil, fmt.Errorf(
			"mat: output is %dx%d, need %dx%d: %w",
			out.Height, out.Width, m1.Height, m2.Width, ErrDimensionMismatch,
		)
	}

	for i := range out.Vals {
		out.Vals[i] = 0
	}
	for i := 0; i < m1.Height; i++ {
		off := i * m1.Width
		for j := 0; j < m2.Width; j++ {
			outIdx := i*out.Width + j
			for k := 0; k < m1.Width; k++ {
				out.Vals[outIdx] += m1.Vals[off+k] * m2.Vals[k*m2.Width+j]
			}
		}
	}

	return out, nil
}

// MultVector computes m * vs, summing each row against vs componentwise.
func (m *Matrix) MultVector(vs []float64) ([]float64, error) {
	if m.Width != len(vs) {
		return nil, fmt.Errorf(
			"mat: %dx%d matrix times vector of length %d: %w",
			m.Height, m.Width, len(vs), ErrDimensionMismatch,
		)
	}

	out := make([]float64, m.Height)
	for i := range out {
		row := m.Vals[i*m.Width : (i+1)*m.Width]
		sum := 0.0
		for j := range row {
			sum += row[j] * vs[j]
		}
		out[i] = sum
	}
	return out, nil
}

// Invert computes the inverse of a matrix with Gauss-Jordan elimination.
//
// Pivots are used in diagonal order and rows are never swapped, so any zero
// on the diagonal at the time it is used as a pivot fails with ErrSingular,
// even if a row exchange would have rescued the elimination. Near-zero pivots
// are not guarded against.
func (m *Matrix) Invert() (*Matrix, error) {
	if m.Width != m.Height {
		return nil, fmt.Errorf(
			"mat: cannot invert %dx%d matrix: %w", m.Height, m.Width, ErrNonSquare,
		)
	}

	n := m.Width
	a := m.Copy().Vals
	inv := Identity(n)
	out := inv.Vals

	for fd := 0; fd < n; fd++ {
		fdOffset := fd * n
		if a[fdOffset+fd] == 0 {
			return nil, fmt.Errorf("mat: zero pivot in row %d: %w", fd, ErrSingular)
		}

		pivot := 1 / a[fdOffset+fd]
		for j := 0; j < n; j++ {
			a[fdOffset+j] *= pivot
			out[fdOffset+j] *= pivot
		}

		for i := 0; i < n; i++ {
			if i == fd {
				continue
			}
			iOffset := i * n
			scaler := a[iOffset+fd]
			for j := 0; j < n; j++ {
				a[iOffset+j] -= scaler * a[fdOffset+j]
				out[iOffset+j] -= scaler * out[fdOffset+j]
			}
		}
	}

	return inv, nil
}

// Determinant computes the determinant of a matrix. Singular matrices have a
// determinant of zero.
func (m *Matrix) Determinant() (float64, error) {
	lu, err := m.LU()
	if errors.Is(err, ErrSingular) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return lu.Determinant(), nil
}

// SolveVector solves the equation m * xs = bs for xs.
func (m *Matrix) SolveVector(bs []float64) ([]float64, error) {
	lu, err := m.LU()
	if err != nil {
		return nil, err
	}
	xs := make([]float64, len(bs))
	return lu.SolveVector(bs, xs)
}

// NewLUFactors creates an LUFactors instance of the requested dimensions.
func NewLUFactors(n int) *LUFactors {
	luf := new(LUFactors)

	luf.lu.Vals, luf.lu.Width, luf.lu.Height = make([]float64, n*n), n, n
	luf.perm = make([]int, n)
	luf.d = 1

	return luf
}

// LU returns the LU decomposition of a matrix.
func (m *Matrix) LU() (*LUFactors, error) {
	if m.Width != m.Height {
		return nil, fmt.Errorf(
			"mat: cannot decompose %dx%d matrix: %w", m.Height, m.Width, ErrNonSquare,
		)
	}

	lu := NewLUFactors(m.Width)
	if err := m.LUFactorsAt(lu); err != nil {
		return nil, err
	}
	return lu, nil
}

// LUFactorsAt stores the LU decomposition of a matrix at the specified
// location. The decomposition uses partial pivoting: at every column the row
// with the largest remaining magnitude is swapped into the pivot position.
func (m *Matrix) LUFactorsAt(luf *LUFactors) error {
	if luf.lu.Width != m.Width || luf.lu.Height != m.Height {
		return fmt.Errorf(
			"mat: LU storage is %dx%d, matrix is %dx%d: %w",
			luf.lu.Height, luf.lu.Width, m.Height, m.Width, ErrDimensionMismatch,
		)
	}

	n := m.Width
	lu := luf.lu.Vals
	copy(lu, m.Vals)
	for i := range luf.perm {
		luf.perm[i] = i
	}
	// Maintained for determinant calculations.
	luf.d = 1

	for k := 0; k < n; k++ {
		maxRow := findMaxRow(n, lu, k)
		if lu[maxRow*n+k] == 0 {
			return fmt.Errorf("mat: zero pivot in column %d: %w", k, ErrSingular)
		}
		if k != maxRow {
			swapRows(k, maxRow, n, lu)
			luf.perm[k], luf.perm[maxRow] = luf.perm[maxRow], luf.perm[k]
			luf.d = -luf.d
		}

		kOffset := k * n
		for i := k + 1; i < n; i++ {
			iOffset := i * n
			lu[iOffset+k] /= lu[kOffset+k]
			tmp := lu[iOffset+k]
			for j := k + 1; j < n; j++ {
				lu[iOffset+j] -= tmp * lu[kOffset+j]
			}
		}
	}

	return nil
}

// Finds the index of the row containing the maximum value in the column.
// Ignores the rows above col since those have already been pivoted.
func findMaxRow(n int, m []float64, col int) int {
	max, maxRow := -1.0, col

	for i := col; i < n; i++ {
		val := math.Abs(m[i*n+col])
		if val > max {
			max = val
			maxRow = i
		}
	}
	return maxRow
}

func swapRows(i1, i2, n int, lu []float64) {
	i1Offset, i2Offset := n*i1, n*i2
	for j := 0; j < n; j++ {
		idx1, idx2 := i1Offset+j, i2Offset+j
		lu[idx1], lu[idx2] = lu[idx2], lu[idx1]
	}
}

// SolveVector solves M * xs = bs for xs.
//
// bs and xs may point to the same physical memory.
func (luf *LUFactors) SolveVector(bs, xs []float64) ([]float64, error) {
	n := luf.lu.Width
	if n != len(bs) || n != len(xs) {
		return nil, fmt.Errorf(
			"mat: len(bs) = %d, len(xs) = %d, but matrix width is %d: %w",
			len(bs), len(xs), n, ErrDimensionMismatch,
		)
	}

	// A x = b -> (L U) x = P b -> L (U x) = P b -> L y = P b
	ys := make([]float64, n)
	// Solve L * y = P * b for y.
	forwardSubst(n, luf.perm, luf.lu.Vals, bs, ys)
	// Solve U * x = y for x.
	backSubst(n, luf.lu.Vals, ys, xs)

	return xs, nil
}

// Solves L * y = P * b for y. L has an implicit unit diagonal.
// y_i = b_perm(i) - sum_j=0^i-1 (alpha_ij y_j)
func forwardSubst(n int, perm []int, lu, bs, ys []float64) {
	for i := 0; i < n; i++ {
		ys[i] = bs[perm[i]]
	}
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < i; j++ {
			sum += lu[i*n+j] * ys[j]
		}
		ys[i] -= sum
	}
}

// Solves U * x = y for x.
// x_i = (y_i - sum_j=i+1^N-1 (beta_ij x_j)) / beta_ii
func backSubst(n int, lu, ys, xs []float64) {
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		for j := i + 1; j < n; j++ {
			sum += lu[i*n+j] * xs[j]
		}
		xs[i] = (ys[i] - sum) / lu[i*n+i]
	}
}

// InvertAt inverts the matrix represented by the given LU decomposition
// and writes the results into the specified out matrix.
func (luf *LUFactors) InvertAt(out *Matrix) (*Matrix, error) {
	n := luf.lu.Width
	if out.Width != n || out.Height != n {
		return nil, fmt.Errorf(
			"mat: output is %dx%d, need %dx%d: %w",
			out.Height, out.Width, n, n, ErrDimensionMismatch,
		)
	}

	e, col := make([]float64, n), make([]float64, n)
	for j := 0; j < n; j++ {
		for i := range e {
			e[i] = 0
		}
		e[j] = 1
		if _, err := luf.SolveVector(e, col); err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			out.Vals[i*n+j] = col[i]
		}
	}

	return out, nil
}

// Determinant computes the determinant of the matrix represented by the
// given LU decomposition.
func (luf *LUFactors) Determinant() float64 {
	d := luf.d
	lu := luf.lu.Vals
	n := luf.lu.Width

	for i := 0; i < n; i++ {
		d *= lu[i*n+i]
	}
	return d
}
