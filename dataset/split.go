package dataset

import (
	"fmt"
	"math/rand/v2"

	"github.com/sw965/glyph/blas32/tensor/3d"
)

type Split struct {
	TrainImages  tensor3d.General
	TrainLabels  []int
	TrainIndices []int
	TestImages   tensor3d.General
	TestLabels   []int
	TestIndices  []int
}

// TrainTestSplit は rng による置換の先頭 N-floor(N*trainSize) 件をテスト、残りを訓練に割り当てる。
func TrainTestSplit(imgs tensor3d.General, labels []int, trainSize float64, rng *rand.Rand) (Split, error) {
	n := imgs.Count
	if n != len(labels) {
		return Split{}, fmt.Errorf("TrainTestSplit: %d images != %d labels", n, len(labels))
	}
	if trainSize <= 0 || trainSize >= 1 {
		return Split{}, fmt.Errorf("TrainTestSplit: train size %v out of (0, 1)", trainSize)
	}

	nTrain := int(float64(n) * trainSize)
	nTest := n - nTrain

	perm := rng.Perm(n)
	testIdxs := perm[:nTest]
	trainIdxs := perm[nTest:]

	return Split{
		TrainImages:  imgs.Gather(trainIdxs),
		TrainLabels:  gatherLabels(labels, trainIdxs),
		TrainIndices: trainIdxs,
		TestImages:   imgs.Gather(testIdxs),
		TestLabels:   gatherLabels(labels, testIdxs),
		TestIndices:  testIdxs,
	}, nil
}

func gatherLabels(labels, idxs []int) []int {
	dst := make([]int, len(idxs))
	for i, idx := range idxs {
		dst[i] = labels[idx]
	}
	return dst
}
