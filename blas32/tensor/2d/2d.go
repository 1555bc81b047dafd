package tensor2d

import (
	"gonum.org/v1/gonum/blas/blas32"
)

func NewZeros(rows, cols int) blas32.General {
	return blas32.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float32, rows*cols),
	}
}

func At(gen blas32.General, row, col int) int {
	return row*gen.Stride + col
}

// Row は row 行目をコピーせずに返す。
func Row(gen blas32.General, row int) blas32.Vector {
	offset := row * gen.Stride
	return blas32.Vector{
		N:    gen.Cols,
		Inc:  1,
		Data: gen.Data[offset : offset+gen.Cols],
	}
}

func GatherRows(gen blas32.General, rows []int) blas32.General {
	dst := NewZeros(len(rows), gen.Cols)
	for i, r := range rows {
		blas32.Copy(Row(gen, r), Row(dst, i))
	}
	return dst
}

// ArgMaxRows は各行の絶対値最大の列を返す。one-hot 行列ならラベルそのもの。
func ArgMaxRows(gen blas32.General) []int {
	idxs := make([]int, gen.Rows)
	for r := range gen.Rows {
		idxs[r] = blas32.Iamax(Row(gen, r))
	}
	return idxs
}
