package dataset

import (
	"fmt"

	"github.com/sw965/glyph/blas32/tensor/2d"
	"gonum.org/v1/gonum/blas/blas32"
)

// OneHot はラベルを len(labels)×classes の one-hot 行列に変換する。
func OneHot(labels []int, classes int) (blas32.General, error) {
	if classes <= 0 {
		return blas32.General{}, fmt.Errorf("OneHot: classes must be positive: %d", classes)
	}

	gen := tensor2d.NewZeros(len(labels), classes)
	for i, label := range labels {
		if label < 0 || label >= classes {
			return blas32.General{}, fmt.Errorf("%w at index %d: %d not in [0, %d)", ErrLabelOutOfRange, i, label, classes)
		}
		gen.Data[tensor2d.At(gen, i, label)] = 1.0
	}
	return gen, nil
}

func ArgMax(onehot blas32.General) []int {
	return tensor2d.ArgMaxRows(onehot)
}
