package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sw965/glyph/blas32/tensor/3d"
)

// 画素の後ろにメタデータが1つ入り、その次がラベル。
const labelOffset = 2

// ReadFile は path のテキストファイルを読み込み、side×side の画像とラベルを返す。
func ReadFile(path string, side int) (tensor3d.General, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return tensor3d.General{}, nil, err
	}
	defer f.Close()

	imgs, labels, err := Parse(f, side)
	if err != nil {
		return tensor3d.General{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	return imgs, labels, nil
}

// Parse は1行目を読み飛ばし、2行目の画素数 P を読み、以降の各行から
// P 個の画素と P+2 番目のラベルを取り出す。
func Parse(r io.Reader, side int) (tensor3d.General, []int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return tensor3d.General{}, nil, err
		}
		return tensor3d.General{}, nil, ErrMissingHeader
	}

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return tensor3d.General{}, nil, err
		}
		return tensor3d.General{}, nil, ErrMissingHeader
	}

	pixels, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return tensor3d.General{}, nil, fmt.Errorf("line 2: %w", err)
	}
	if pixels != side*side {
		return tensor3d.General{}, nil, fmt.Errorf("line 2: %w: %d != %d*%d", ErrPixelCount, pixels, side, side)
	}

	var data []float32
	var labels []int
	lineNo := 2
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) < pixels+labelOffset+1 {
			return tensor3d.General{}, nil, fmt.Errorf("line %d: %w: got %d tokens, need %d", lineNo, ErrMalformedLine, len(fields), pixels+labelOffset+1)
		}

		for _, tok := range fields[:pixels] {
			v, err := strconv.ParseFloat(tok, 32)
			if err != nil {
				return tensor3d.General{}, nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			data = append(data, float32(v))
		}

		label, err := strconv.Atoi(fields[pixels+labelOffset])
		if err != nil {
			return tensor3d.General{}, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		labels = append(labels, label)
	}
	if err := scanner.Err(); err != nil {
		return tensor3d.General{}, nil, err
	}

	return tensor3d.New(len(labels), side, side, data), labels, nil
}
