package hkernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGemm(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{5, 6, 7, 8})
	c := mat.NewDense(2, 2, nil)

	require.NoError(t, Gemm(1, a, b, 0, c))
	require.InDeltaSlice(t, []float64{19, 22, 43, 50}, c.RawMatrix().Data, 1e-9)
}

func TestGemmShapeMismatch(t *testing.T) {
	a := mat.NewDense(2, 3, nil)
	b := mat.NewDense(2, 2, nil)
	c := mat.NewDense(2, 2, nil)
	require.ErrorIs(t, Gemm(1, a, b, 0, c), ErrShapeMismatch)
}

func TestGetrfAndReconstruct(t *testing.T) {
	orig := mat.NewDense(3, 3, []float64{
		2, 1, 1,
		4, 3, 3,
		8, 7, 9,
	})
	work := mat.DenseCopyOf(orig)

	perm, err := Getrf(work)
	require.NoError(t, err)
	require.Len(t, perm, 3)

	m, _ := work.Dims()
	l := mat.NewDense(m, m, nil)
	u := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		l.Set(i, i, 1)
		for j := 0; j < m; j++ {
			if j < i {
				l.Set(i, j, work.At(i, j))
			} else {
				u.Set(i, j, work.At(i, j))
			}
		}
	}

	var lu mat.Dense
	lu.Mul(l, u)

	permuted := mat.NewDense(m, m, nil)
	for i, p := range perm {
		permuted.SetRow(i, mat.Row(nil, p, orig))
	}

	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			require.True(t, math.Abs(permuted.At(i, j)-lu.At(i, j)) < 1e-9)
		}
	}
}

func TestTrtrsLower(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{2, 0, 1, 3})
	b := mat.NewDense(2, 1, []float64{4, 5})

	require.NoError(t, Trtrs(true, false, a, b))
	require.InDelta(t, 2, b.At(0, 0), 1e-9)
	require.InDelta(t, 1, b.At(1, 0), 1e-9)
}

func TestQRReconstructs(t *testing.T) {
	a := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	q, r := QR(a)

	var recon mat.Dense
	recon.Mul(q, r)

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, a.At(i, j), recon.At(i, j), 1e-9)
		}
	}
}

func TestSVDReconstructs(t *testing.T) {
	a := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	u, sigma, v := SVD(a)

	require.Len(t, sigma, 2)
	require.GreaterOrEqual(t, sigma[0], sigma[1])

	sigmaDiag := mat.NewDense(2, 2, []float64{sigma[0], 0, 0, sigma[1]})
	var tmp, recon mat.Dense
	tmp.Mul(u, sigmaDiag)
	recon.Mul(&tmp, v.T())

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, a.At(i, j), recon.At(i, j), 1e-9)
		}
	}
}
