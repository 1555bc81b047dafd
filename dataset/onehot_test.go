package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sw965/glyph/dataset"
)

func TestOneHot(t *testing.T) {
	labels := []int{2, 0, 1, 2}
	gen, err := dataset.OneHot(labels, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, gen.Rows)
	assert.Equal(t, 3, gen.Cols)

	for i, label := range labels {
		row := gen.Data[i*gen.Stride : i*gen.Stride+gen.Cols]
		ones := 0
		for j, v := range row {
			switch v {
			case 1:
				ones++
				assert.Equal(t, label, j)
			case 0:
			default:
				t.Errorf("row %d col %d: unexpected value %v", i, j, v)
			}
		}
		assert.Equal(t, 1, ones, "row %d", i)
	}

	assert.Equal(t, labels, dataset.ArgMax(gen))
	assert.Equal(t, []int{1, 1, 2}, dataset.ClassCounts(gen))
}

func TestOneHotOutOfRange(t *testing.T) {
	for _, labels := range [][]int{{0, 3}, {-1}} {
		_, err := dataset.OneHot(labels, 3)
		assert.ErrorIs(t, err, dataset.ErrLabelOutOfRange)
	}
}

func TestOneHotInvalidClasses(t *testing.T) {
	_, err := dataset.OneHot([]int{0}, 0)
	assert.Error(t, err)
}

func TestOneHotEmpty(t *testing.T) {
	gen, err := dataset.OneHot(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, gen.Rows)
	assert.Empty(t, dataset.ArgMax(gen))
}
