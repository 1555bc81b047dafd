package dataset

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sw965/glyph/blas32/tensor/2d"
	"github.com/sw965/glyph/blas32/tensor/3d"
	"github.com/sw965/glyph/mathx/randx"
	"gonum.org/v1/gonum/blas/blas32"
)

var (
	ErrMissingHeader   = errors.New("missing header")
	ErrPixelCount      = errors.New("pixel count is not a square of the image size")
	ErrMalformedLine   = errors.New("malformed line")
	ErrLabelOutOfRange = errors.New("label out of range")
	ErrEmptyDataset    = errors.New("empty dataset")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Dataset は訓練用とテスト用の画像・one-hot ラベルを保持します
type Dataset struct {
	TrainImages  tensor3d.General
	TestImages   tensor3d.General
	TrainLabels  blas32.General
	TestLabels   blas32.General
	TrainIndices []int
	TestIndices  []int
}

// FileNames は x, y, z の3ファイル名を返す。side=24 なら x24x24.txt など。
func FileNames(side int) []string {
	bases := []string{"x", "y", "z"}
	names := make([]string, len(bases))
	for i, base := range bases {
		names[i] = fmt.Sprintf("%s%dx%d.txt", base, side, side)
	}
	return names
}

// Assemble は dir 内の names を順に読み込み、ファイル順を保ったまま連結する。
func Assemble(dir string, names []string, side int) (tensor3d.General, []int, error) {
	imgss := make([]tensor3d.General, 0, len(names))
	var labels []int
	for _, name := range names {
		imgs, ls, err := ReadFile(filepath.Join(dir, name), side)
		if err != nil {
			return tensor3d.General{}, nil, err
		}
		imgss = append(imgss, imgs)
		labels = append(labels, ls...)
	}

	imgs, err := tensor3d.Concat(imgss...)
	if err != nil {
		return tensor3d.General{}, nil, err
	}
	return imgs, labels, nil
}

// Load は既定の設定で dir を読み込みます
func Load(dir string) (Dataset, error) {
	cfg := DefaultConfig()
	cfg.Dir = dir
	return LoadWithConfig(cfg)
}

func LoadWithConfig(cfg Config) (Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return Dataset{}, err
	}

	imgs, labels, err := Assemble(cfg.Dir, cfg.Files, cfg.ImageSize)
	if err != nil {
		return Dataset{}, err
	}
	if len(labels) == 0 {
		return Dataset{}, fmt.Errorf("%s: %w", cfg.Dir, ErrEmptyDataset)
	}

	onehot, err := OneHot(labels, cfg.Classes)
	if err != nil {
		return Dataset{}, err
	}

	split, err := TrainTestSplit(imgs, labels, cfg.TrainSize, randx.NewMT19937(cfg.Seed))
	if err != nil {
		return Dataset{}, err
	}

	trainLabels := tensor2d.GatherRows(onehot, split.TrainIndices)
	testLabels := tensor2d.GatherRows(onehot, split.TestIndices)

	return Dataset{
		TrainImages:  split.TrainImages,
		TestImages:   split.TestImages,
		TrainLabels:  trainLabels,
		TestLabels:   testLabels,
		TrainIndices: split.TrainIndices,
		TestIndices:  split.TestIndices,
	}, nil
}

// ClassCounts は one-hot 行列の列ごとの件数を返す。
func ClassCounts(onehot blas32.General) []int {
	counts := make([]int, onehot.Cols)
	for _, label := range ArgMax(onehot) {
		counts[label]++
	}
	return counts
}
