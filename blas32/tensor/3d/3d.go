package tensor3d

import (
	"fmt"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/blas/blas32"
)

// General は Count 枚の Rows×Cols 画像を1つの連続したスライスで保持する。
// 画像 i の (row, col) は i*ImageStride + row*RowStride + col に位置する。
type General struct {
	Count       int
	Rows        int
	Cols        int
	ImageStride int
	RowStride   int
	Data        []float32
}

// New は data をコピーせずに包む。len(data) は count*rows*cols であること。
func New(count, rows, cols int, data []float32) General {
	rowStride := cols
	return General{
		Count:       count,
		Rows:        rows,
		Cols:        cols,
		ImageStride: rows * rowStride,
		RowStride:   rowStride,
		Data:        data,
	}
}

func NewZeros(count, rows, cols int) General {
	return New(count, rows, cols, make([]float32, count*rows*cols))
}

func (g General) N() int {
	return g.Count * g.Rows * g.Cols
}

func (g General) At(i, row, col int) int {
	return i*g.ImageStride + row*g.RowStride + col
}

// Image は i 番目の画像をコピーせずに blas32.General として返す。
func (g General) Image(i int) blas32.General {
	offset := i * g.ImageStride
	return blas32.General{
		Rows:   g.Rows,
		Cols:   g.Cols,
		Stride: g.RowStride,
		Data:   g.Data[offset : offset+g.ImageStride],
	}
}

func (g General) imageVector(i int) blas32.Vector {
	offset := i * g.ImageStride
	return blas32.Vector{
		N:    g.ImageStride,
		Inc:  1,
		Data: g.Data[offset : offset+g.ImageStride],
	}
}

// Gather は indices の順に画像を集めた新しい General を返す。
func (g General) Gather(indices []int) General {
	dst := NewZeros(len(indices), g.Rows, g.Cols)
	for i, idx := range indices {
		blas32.Copy(g.imageVector(idx), dst.imageVector(i))
	}
	return dst
}

// Concat は画像の軸に沿って連結する。Rows と Cols が一致しない場合はエラーを返す。
func Concat(gs ...General) (General, error) {
	if len(gs) == 0 {
		return General{}, fmt.Errorf("Concat: no tensors")
	}

	rows, cols := gs[0].Rows, gs[0].Cols
	count := 0
	for i, g := range gs {
		if g.Rows != rows || g.Cols != cols {
			return General{}, fmt.Errorf("Concat: shape mismatch at index %d: %dx%d != %dx%d", i, g.Rows, g.Cols, rows, cols)
		}
		count += g.Count
	}

	dst := NewZeros(count, rows, cols)
	offset := 0
	for _, g := range gs {
		n := g.N()
		copy(dst.Data[offset:offset+n], g.Data[:n])
		offset += n
	}
	return dst, nil
}

// MinMax は全画素の最小値と最大値を返す。空の場合は (+Inf, -Inf)。
func (g General) MinMax() (float32, float32) {
	lo, hi := math32.Inf(1), math32.Inf(-1)
	for _, e := range g.Data {
		lo = math32.Min(lo, e)
		hi = math32.Max(hi, e)
	}
	return lo, hi
}
