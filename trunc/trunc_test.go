package trunc

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCompressReconstructsWithinTolerance(t *testing.T) {
	c := mat.NewDense(3, 3, []float64{
		4, 0, 0,
		0, 1, 0,
		0, 0, 0.0001,
	})

	a, b := Compress(c, 1e-2, 0)
	require.Equal(t, 2, a.RawMatrix().Cols)

	var recon mat.Dense
	recon.Mul(a, b.T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, c.At(i, j), recon.At(i, j), 1e-2)
		}
	}
}

func TestCompressZeroMatrix(t *testing.T) {
	c := mat.NewDense(2, 2, nil)
	a, b := Compress(c, 1e-6, 0)
	require.Equal(t, 1, a.RawMatrix().Cols)
	require.Equal(t, 1, b.RawMatrix().Cols)
}

func TestCompressRankCap(t *testing.T) {
	c := mat.NewDense(3, 3, []float64{
		4, 0, 0,
		0, 3, 0,
		0, 0, 2,
	})
	a, _ := Compress(c, 1e-9, 1)
	require.Equal(t, 1, a.RawMatrix().Cols)
}

func TestAddLowRank(t *testing.T) {
	a1 := mat.NewDense(3, 1, []float64{1, 0, 0})
	b1 := mat.NewDense(3, 1, []float64{2, 0, 0})
	a2 := mat.NewDense(3, 1, []float64{0, 1, 0})
	b2 := mat.NewDense(3, 1, []float64{0, 3, 0})

	a, b := AddLowRank(a1, b1, a2, b2, 1, 1e-9, 0)

	var got mat.Dense
	got.Mul(a, b.T())

	want := mat.NewDense(3, 3, nil)
	want.Set(0, 0, 2)
	want.Set(1, 1, 3)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, want.At(i, j), got.At(i, j), 1e-9)
		}
	}
}
