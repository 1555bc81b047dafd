package dataset_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sw965/glyph/blas32/tensor/3d"
	"github.com/sw965/glyph/dataset"
	"github.com/sw965/glyph/mathx/randx"
)

// 画像 i の画素はすべて i、ラベルも i。
func newIndexed(n int) (tensor3d.General, []int) {
	imgs := tensor3d.NewZeros(n, 2, 2)
	labels := make([]int, n)
	for i := range n {
		labels[i] = i
		for r := range 2 {
			for c := range 2 {
				imgs.Data[imgs.At(i, r, c)] = float32(i)
			}
		}
	}
	return imgs, labels
}

func TestTrainTestSplit(t *testing.T) {
	for _, n := range []int{1, 5, 10, 37, 100} {
		imgs, labels := newIndexed(n)
		split, err := dataset.TrainTestSplit(imgs, labels, 0.8, randx.NewMT19937(42))
		require.NoError(t, err)

		nTrain := int(float64(n) * 0.8)
		assert.Equal(t, nTrain, split.TrainImages.Count)
		assert.Equal(t, n-nTrain, split.TestImages.Count)
		assert.Len(t, split.TrainLabels, nTrain)
		assert.Len(t, split.TestLabels, n-nTrain)

		all := append(slices.Clone(split.TrainIndices), split.TestIndices...)
		slices.Sort(all)
		for i := range n {
			assert.Equal(t, i, all[i])
		}

		for i, idx := range split.TrainIndices {
			assert.Equal(t, idx, split.TrainLabels[i])
			assert.Equal(t, float32(idx), split.TrainImages.Data[split.TrainImages.At(i, 1, 1)])
		}
		for i, idx := range split.TestIndices {
			assert.Equal(t, idx, split.TestLabels[i])
			assert.Equal(t, float32(idx), split.TestImages.Data[split.TestImages.At(i, 0, 0)])
		}
	}
}

func TestTrainTestSplitDeterministic(t *testing.T) {
	imgs, labels := newIndexed(50)
	a, err := dataset.TrainTestSplit(imgs, labels, 0.8, randx.NewMT19937(42))
	require.NoError(t, err)
	b, err := dataset.TrainTestSplit(imgs, labels, 0.8, randx.NewMT19937(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTrainTestSplitErrors(t *testing.T) {
	imgs, labels := newIndexed(4)
	_, err := dataset.TrainTestSplit(imgs, labels[:3], 0.8, randx.NewMT19937(42))
	assert.Error(t, err)

	for _, size := range []float64{0, 1, -0.5, 1.5} {
		_, err := dataset.TrainTestSplit(imgs, labels, size, randx.NewMT19937(42))
		assert.Error(t, err, "train size %v", size)
	}
}
